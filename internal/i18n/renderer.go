package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	msgcat "golang.org/x/text/message/catalog"

	"rgadiag/internal/catalog"
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/engine"
	reportlang "rgadiag/internal/language"
)

// Supported tags in fallback order.
var supported = []language.Tag{language.English, language.German}

var (
	matcher = language.NewMatcher(supported)
	tables  = map[language.Tag]map[string]string{
		language.English: english,
		language.German:  german,
	}
	messages = buildCatalog()
)

func buildCatalog() *msgcat.Builder {
	b := msgcat.NewBuilder(msgcat.Fallback(language.English))
	for tag, table := range tables {
		for key, msg := range table {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Renderer formats report text for one language.
type Renderer struct {
	tag      language.Tag
	printer  *message.Printer
	fallback *message.Printer
}

// New returns a renderer for lang. Codes, locales, and language names are
// accepted; anything unsupported renders in English.
func New(lang string) *Renderer {
	if iso := reportlang.ToISO2(lang); iso != "" {
		lang = iso
	}
	tag := supported[0]
	if _, idx, conf := matcher.Match(language.Make(lang)); conf != language.No {
		tag = supported[idx]
	}
	return &Renderer{
		tag:      tag,
		printer:  message.NewPrinter(tag, message.Catalog(messages)),
		fallback: message.NewPrinter(language.English, message.Catalog(messages)),
	}
}

// Language is the ISO 639-1 code actually used for output.
func (r *Renderer) Language() string {
	base, _ := r.tag.Base()
	return base.String()
}

// Has reports whether key resolves in the renderer's language or English.
func (r *Renderer) Has(key string) bool {
	if _, ok := tables[r.tag][key]; ok {
		return true
	}
	_, ok := english[key]
	return ok
}

// Text renders key with args.
func (r *Renderer) Text(key string, args ...any) string {
	if _, ok := tables[r.tag][key]; ok {
		return r.printer.Sprintf(key, args...)
	}
	if _, ok := english[key]; ok {
		return r.fallback.Sprintf(key, args...)
	}
	return key
}

// Number formats v with the given decimals in the renderer's locale.
func (r *Renderer) Number(v float64, decimals int) string {
	return r.printer.Sprintf("%.*f", decimals, v)
}

func diagnosisKey(t diagnosis.Type, part string) string {
	return "diagnosis." + string(t) + "." + part
}

// Name is the display name of t.
func (r *Renderer) Name(t diagnosis.Type) string {
	return r.Text(diagnosisKey(t, "name"))
}

// Description explains res, preferring the text for its variant.
func (r *Renderer) Description(res diagnosis.Result) string {
	return r.variantText(res, "description")
}

// Recommendation is the operator guidance for res.
func (r *Renderer) Recommendation(res diagnosis.Result) string {
	return r.variantText(res, "recommendation")
}

func (r *Renderer) variantText(res diagnosis.Result, part string) string {
	if res.Variant != "" {
		if key := diagnosisKey(res.Type, part+"."+res.Variant); r.Has(key) {
			return r.Text(key)
		}
	}
	return r.Text(diagnosisKey(res.Type, part))
}

// Evidence renders one evidence line from its key and parameters.
func (r *Renderer) Evidence(ev diagnosis.Evidence) string {
	return r.Text(ev.Key, ev.Params...)
}

func (r *Renderer) Severity(s diagnosis.Severity) string {
	return r.Text("severity." + string(s))
}

func (r *Renderer) Status(s engine.Status) string {
	return r.Text("status." + string(s))
}

func (r *Renderer) State(s engine.State) string {
	return r.Text("state." + string(s))
}

func (r *Renderer) Category(c catalog.Category) string {
	return r.Text("category." + string(c))
}

func (r *Renderer) Method(m catalog.MethodConfidence) string {
	return r.Text("method." + string(m))
}

// Label renders a fixed report label such as "label.confidence".
func (r *Renderer) Label(name string, args ...any) string {
	return r.Text("label."+name, args...)
}
