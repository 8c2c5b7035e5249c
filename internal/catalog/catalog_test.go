package catalog_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rgadiag/internal/catalog"
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/spectrum"
)

func noVerdict(spectrum.Input) *diagnosis.Result { return nil }

func entry(t diagnosis.Type, cat catalog.Category, priority int) catalog.Entry {
	return catalog.Entry{
		Type:    t,
		Detect:  noVerdict,
		Display: catalog.Display{Icon: "dot", Priority: priority, Category: cat},
		Validation: catalog.Validation{
			Method:  catalog.MethodMedium,
			Sources: []string{"bench notes"},
		},
	}
}

func buildCatalog(t *testing.T, entries ...catalog.Entry) *catalog.Catalog {
	t.Helper()
	b := catalog.NewBuilder()
	for _, e := range entries {
		if err := b.Register(e); err != nil {
			t.Fatalf("Register(%s): %v", e.Type, err)
		}
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

func TestRegisterRejectsDuplicatesAndInvalidEntries(t *testing.T) {
	b := catalog.NewBuilder()
	if err := b.Register(entry(diagnosis.TypeAirLeak, catalog.CategoryLeak, 1)); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := b.Register(entry(diagnosis.TypeAirLeak, catalog.CategoryLeak, 1)); !errors.Is(err, catalog.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, catalog.ErrDuplicate) {
		t.Fatalf("Build should surface the first registration error, got %v", err)
	}

	b = catalog.NewBuilder()
	bad := entry(diagnosis.TypeAirLeak, catalog.CategoryLeak, 1)
	bad.Detect = nil
	if err := b.Register(bad); !errors.Is(err, catalog.ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry for nil detector, got %v", err)
	}
	if err := b.Register(entry("", catalog.CategoryLeak, 1)); !errors.Is(err, catalog.ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry for empty type, got %v", err)
	}
}

func TestLookupUnknownIsNotFound(t *testing.T) {
	c := buildCatalog(t, entry(diagnosis.TypeAirLeak, catalog.CategoryLeak, 1))
	if _, ok := c.Lookup("NOPE"); ok {
		t.Fatal("unknown type must not be found")
	}
	got, ok := c.Lookup(diagnosis.TypeAirLeak)
	if !ok || got.Type != diagnosis.TypeAirLeak {
		t.Fatalf("Lookup = %+v %v", got, ok)
	}
	var nilCatalog *catalog.Catalog
	if _, ok := nilCatalog.Lookup(diagnosis.TypeAirLeak); ok || nilCatalog.Len() != 0 {
		t.Fatal("nil catalog must behave as empty")
	}
}

func TestEntriesKeepRegistrationOrder(t *testing.T) {
	c := buildCatalog(t,
		entry(diagnosis.TypeWaterOutgassing, catalog.CategoryOutgassing, 2),
		entry(diagnosis.TypeAirLeak, catalog.CategoryLeak, 1),
		entry(diagnosis.TypeHydrogenDominant, catalog.CategoryOutgassing, 1),
	)
	want := []diagnosis.Type{diagnosis.TypeWaterOutgassing, diagnosis.TypeAirLeak, diagnosis.TypeHydrogenDominant}
	if diff := cmp.Diff(want, c.Types()); diff != "" {
		t.Fatalf("Types() mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d", c.Len())
	}
}

func TestByCategoryGroupsAndSortsByPriority(t *testing.T) {
	c := buildCatalog(t,
		entry(diagnosis.TypeWaterOutgassing, catalog.CategoryOutgassing, 2),
		entry(diagnosis.TypeAirLeak, catalog.CategoryLeak, 1),
		entry(diagnosis.TypeHydrogenDominant, catalog.CategoryOutgassing, 1),
	)
	groups := c.ByCategory()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Category != catalog.CategoryOutgassing {
		t.Fatalf("first group = %s", groups[0].Category)
	}
	if groups[0].Entries[0].Type != diagnosis.TypeHydrogenDominant {
		t.Fatalf("expected priority ordering, got %s first", groups[0].Entries[0].Type)
	}
	if diff := cmp.Diff([]catalog.Category{catalog.CategoryOutgassing, catalog.CategoryLeak}, c.Categories()); diff != "" {
		t.Fatalf("Categories() mismatch:\n%s", diff)
	}
	if got := c.InCategory(catalog.CategoryArtifact); got != nil {
		t.Fatalf("unknown category returned %v", got)
	}
}

func TestWithoutDerivesPartialCatalog(t *testing.T) {
	c := buildCatalog(t,
		entry(diagnosis.TypeAirLeak, catalog.CategoryLeak, 1),
		entry(diagnosis.TypeHeliumTrace, catalog.CategoryGas, 1),
	)
	partial := c.Without(diagnosis.TypeHeliumTrace, "UNKNOWN")
	if partial.Len() != 1 || c.Len() != 2 {
		t.Fatalf("Without changed the wrong catalog: partial=%d full=%d", partial.Len(), c.Len())
	}
	if _, ok := partial.Lookup(diagnosis.TypeHeliumTrace); ok {
		t.Fatal("removed type still present")
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	c := buildCatalog(t, entry(diagnosis.TypeAirLeak, catalog.CategoryLeak, 1))
	entries := c.Entries()
	entries[0].Validation.Sources[0] = "tampered"
	entries[0].Display.Priority = 99
	got, _ := c.Lookup(diagnosis.TypeAirLeak)
	if got.Validation.Sources[0] != "bench notes" || got.Display.Priority != 1 {
		t.Fatalf("catalog state leaked through Entries(): %+v", got)
	}
}
