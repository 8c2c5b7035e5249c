package detectors

import (
	"testing"

	"rgadiag/internal/diagnosis"
	"rgadiag/internal/spectrum"
)

func mustCatalogEntries(t *testing.T) []diagnosis.Type {
	t.Helper()
	cat, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return cat.Types()
}

// runAll evaluates every registered detector and returns the fired results.
func runAll(t *testing.T, in spectrum.Input) map[diagnosis.Type]*diagnosis.Result {
	t.Helper()
	cat, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	out := map[diagnosis.Type]*diagnosis.Result{}
	for _, e := range cat.Entries() {
		r := e.Detect(in)
		if r == nil {
			continue
		}
		if r.Type != e.Type {
			t.Fatalf("%s detector reported type %s", e.Type, r.Type)
		}
		if err := diagnosis.Validate(r); err != nil {
			t.Fatalf("%s: %v", e.Type, err)
		}
		out[e.Type] = r
	}
	return out
}

func firedTypes(results map[diagnosis.Type]*diagnosis.Result) []diagnosis.Type {
	out := make([]diagnosis.Type, 0, len(results))
	for t := range results {
		out = append(out, t)
	}
	return out
}

func peaks(p spectrum.Peaks) spectrum.Input {
	return spectrum.NewInput(p)
}
