package language

import "strings"

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "ger" vs "deu")
	display string   // English name
	native  string   // Name in the language itself
	words   []string // Full word forms (e.g. "english", "deutsch")
}

// Report languages, in fallback order.
var languages = []entry{
	{"en", "eng", "", "English", "English", []string{"english"}},
	{"de", "deu", "ger", "German", "Deutsch", []string{"german", "deutsch"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

// base strips region and script subtags ("de-AT", "en_GB.UTF-8").
func base(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_."); i > 0 {
		code = code[:i]
	}
	return code
}

func lookup(code string) *entry {
	code = base(code)
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// ToISO2 converts a supported language code, locale, or word to ISO 639-1.
// Returns empty string for languages reports are not written in.
func ToISO2(code string) string {
	if e := lookup(code); e != nil {
		return e.code2
	}
	return ""
}

// Supported reports whether reports can be rendered in code.
func Supported(code string) bool {
	return lookup(code) != nil
}

// Codes lists the supported ISO 639-1 codes in fallback order.
func Codes() []string {
	out := make([]string, len(languages))
	for i, e := range languages {
		out[i] = e.code2
	}
	return out
}

// DisplayName returns the English name for a supported code, "Unknown" for
// empty input, or the uppercased code otherwise.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// NativeName returns the name of a supported language in that language.
func NativeName(code string) string {
	if e := lookup(code); e != nil {
		return e.native
	}
	return DisplayName(code)
}
