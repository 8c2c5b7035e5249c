package i18n

import (
	"context"
	"strings"
	"testing"

	"rgadiag/internal/detectors"
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/engine"
	"rgadiag/internal/spectrum"
	"rgadiag/internal/testsupport"
)

func TestNewMatchesLanguages(t *testing.T) {
	cases := map[string]string{
		"":            "en",
		"en":          "en",
		"de":          "de",
		"de-AT":       "de",
		"de_DE.UTF-8": "de",
		"deutsch":     "de",
		"ger":         "de",
		"fr":          "en",
		"not a tag!":  "en",
	}
	for in, want := range cases {
		if got := New(in).Language(); got != want {
			t.Fatalf("New(%q).Language() = %q, want %q", in, got, want)
		}
	}
}

func TestGermanKeysExistInEnglish(t *testing.T) {
	for key := range german {
		if _, ok := english[key]; !ok {
			t.Fatalf("german key %q has no english source", key)
		}
	}
}

func TestEveryDiagnosisIsTranslated(t *testing.T) {
	cat, err := detectors.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	variants := map[diagnosis.Type][]string{
		diagnosis.TypeMass28Attribution: {detectors.VariantN2Dominant, detectors.VariantCODominant, detectors.VariantMixture},
		diagnosis.TypeArgonIsotope:      {detectors.VariantAtmospheric, detectors.VariantProcess},
		diagnosis.TypeSolventAlcohol:    {detectors.VariantIsopropanol, detectors.VariantEthanol, detectors.VariantMethanol},
		diagnosis.TypeSulfurCompounds:   {detectors.VariantSO2, detectors.VariantH2S, detectors.VariantSO2 + "+" + detectors.VariantH2S},
	}
	for _, table := range []map[string]string{english, german} {
		for _, typ := range cat.Types() {
			for _, part := range []string{"name", "description", "recommendation"} {
				if _, ok := table[diagnosisKey(typ, part)]; !ok {
					t.Fatalf("missing %s", diagnosisKey(typ, part))
				}
			}
			for _, v := range variants[typ] {
				if _, ok := table[diagnosisKey(typ, "description."+v)]; !ok {
					t.Fatalf("missing variant description %s/%s", typ, v)
				}
			}
		}
		for _, entry := range cat.Entries() {
			if _, ok := table["category."+string(entry.Display.Category)]; !ok {
				t.Fatalf("missing category %s", entry.Display.Category)
			}
			if _, ok := table["method."+string(entry.Validation.Method)]; !ok {
				t.Fatalf("missing method %s", entry.Validation.Method)
			}
		}
	}
}

func TestEvidenceRendersWithoutFormatErrors(t *testing.T) {
	cat, err := detectors.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	eng := engine.New(cat, engine.Options{})
	fixtures := []spectrum.Input{
		testsupport.AirLeakWithArgon36(),
		testsupport.CleanBakeout(),
		testsupport.CoolingWater(),
		testsupport.UnbakedWater(),
		testsupport.PFPE(),
		testsupport.MineralOil(),
	}
	for _, lang := range []string{"en", "de"} {
		r := New(lang)
		for _, in := range fixtures {
			report := eng.Run(context.Background(), in)
			for _, res := range report.Results {
				for _, ev := range res.Evidence {
					line := r.Evidence(ev)
					if line == ev.Key || strings.Contains(line, "%!") {
						t.Fatalf("%s: bad rendering of %s: %q", lang, ev.Key, line)
					}
				}
				for _, s := range []string{r.Name(res.Type), r.Description(res), r.Recommendation(res), r.Severity(res.Severity)} {
					if strings.HasPrefix(s, "diagnosis.") || strings.HasPrefix(s, "severity.") {
						t.Fatalf("%s: untranslated text %q", lang, s)
					}
				}
			}
			if s := r.State(report.Summary.State); strings.HasPrefix(s, "state.") {
				t.Fatalf("%s: untranslated state %q", lang, s)
			}
		}
	}
}

func TestGermanUsesDecimalComma(t *testing.T) {
	ev := diagnosis.Ratio("N2/O2", 28, 32, 3.8, true, diagnosis.Between(3, 4.5))
	de := New("de").Evidence(ev)
	if !strings.Contains(de, "3,800") || !strings.Contains(de, "Verhältnis") {
		t.Fatalf("german evidence = %q", de)
	}
	en := New("en").Evidence(ev)
	if en != "N2/O2 ratio (m28/m32) = 3.800, expected 3.000–4.500" {
		t.Fatalf("english evidence = %q", en)
	}
}

func TestVariantTextFallsBackToBase(t *testing.T) {
	r := New("en")
	res := diagnosis.Result{Type: diagnosis.TypeMass28Attribution, Variant: detectors.VariantCODominant}
	if got := r.Description(res); got != "Mass 28 is mostly carbon monoxide." {
		t.Fatalf("variant description = %q", got)
	}
	res.Variant = detectors.VariantN2Dominant
	if got := r.Recommendation(res); got != english[diagnosisKey(res.Type, "recommendation")] {
		t.Fatalf("recommendation should fall back to the base text, got %q", got)
	}
	res.Variant = "unknown"
	if got := r.Description(res); got != "Mass 28 is shared by N2 and CO." {
		t.Fatalf("unknown variant description = %q", got)
	}
}

func TestMissingKeysFallBack(t *testing.T) {
	de := New("de")
	if got := de.Label("supports"); got != "+" {
		t.Fatalf("german label should fall back to english, got %q", got)
	}
	if got := de.Text("no.such.key"); got != "no.such.key" {
		t.Fatalf("unknown key = %q", got)
	}
	if got := de.Status(engine.StatusCritical); got != "kritisch" {
		t.Fatalf("status = %q", got)
	}
	if got := de.Label("counts", 1, 0, 2); got != "1 kritisch, 0 Warnung, 2 Hinweis" {
		t.Fatalf("counts = %q", got)
	}
}
