package catalog

import (
	"errors"
	"fmt"
	"sort"

	"rgadiag/internal/diagnosis"
)

// Category groups related diagnoses for display.
type Category string

const (
	CategoryLeak          Category = "leak"
	CategoryOutgassing    Category = "outgassing"
	CategoryContamination Category = "contamination"
	CategoryGas           Category = "gas"
	CategoryIsotope       Category = "isotope"
	CategoryArtifact      Category = "artifact"
)

// MethodConfidence is how much trust the detection method itself has earned.
type MethodConfidence string

const (
	MethodHigh   MethodConfidence = "high"
	MethodMedium MethodConfidence = "medium"
	MethodLow    MethodConfidence = "low"
)

// Display is the default presentation metadata of an entry.
type Display struct {
	Icon     string   `json:"icon" yaml:"icon"`
	Priority int      `json:"priority" yaml:"priority"`
	Category Category `json:"category" yaml:"category"`
}

// Validation documents how a detector was validated.
type Validation struct {
	Method          MethodConfidence `json:"method" yaml:"method"`
	CrossValidation string           `json:"cross_validation,omitempty" yaml:"cross_validation,omitempty"`
	FixesApplied    []string         `json:"fixes_applied,omitempty" yaml:"fixes_applied,omitempty"`
	Sources         []string         `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// Entry binds one diagnosis type to its detector and metadata.
type Entry struct {
	Type       diagnosis.Type     `json:"type" yaml:"type"`
	Detect     diagnosis.Detector `json:"-" yaml:"-"`
	Display    Display            `json:"display" yaml:"display"`
	Validation Validation         `json:"validation" yaml:"validation"`
}

// Group is one category with its entries.
type Group struct {
	Category Category `json:"category" yaml:"category"`
	Entries  []Entry  `json:"entries" yaml:"entries"`
}

var (
	ErrDuplicate    = errors.New("diagnosis type already registered")
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

// Builder collects entries before the catalog is frozen. The first
// registration error is kept and returned by Build.
type Builder struct {
	entries []Entry
	index   map[diagnosis.Type]int
	err     error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{index: map[diagnosis.Type]int{}}
}

// Register appends e. Empty types, nil detectors, and duplicates are rejected.
func (b *Builder) Register(e Entry) error {
	var err error
	switch {
	case e.Type == "":
		err = fmt.Errorf("%w: empty diagnosis type", ErrInvalidEntry)
	case e.Detect == nil:
		err = fmt.Errorf("%w: %s has no detector", ErrInvalidEntry, e.Type)
	default:
		if _, ok := b.index[e.Type]; ok {
			err = fmt.Errorf("%w: %s", ErrDuplicate, e.Type)
		}
	}
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return err
	}
	b.index[e.Type] = len(b.entries)
	b.entries = append(b.entries, cloneEntry(e))
	return nil
}

// Build freezes the registered entries.
func (b *Builder) Build() (*Catalog, error) {
	if b.err != nil {
		return nil, b.err
	}
	return newCatalog(b.entries), nil
}

// Catalog is an immutable, ordered set of entries.
type Catalog struct {
	entries []Entry
	index   map[diagnosis.Type]int
}

func newCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		index:   make(map[diagnosis.Type]int, len(entries)),
	}
	for i, e := range entries {
		c.entries[i] = cloneEntry(e)
		c.index[e.Type] = i
	}
	return c
}

// Len is the number of registered detectors.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Lookup returns the entry for t. ok is false for unknown types.
func (c *Catalog) Lookup(t diagnosis.Type) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.index[t]
	if !ok {
		return Entry{}, false
	}
	return cloneEntry(c.entries[i]), true
}

// Entries lists all entries in registration order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// Types lists registered identifiers in registration order.
func (c *Catalog) Types() []diagnosis.Type {
	if c == nil {
		return nil
	}
	out := make([]diagnosis.Type, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Type
	}
	return out
}

// Categories lists categories in order of first registration.
func (c *Catalog) Categories() []Category {
	groups := c.ByCategory()
	out := make([]Category, len(groups))
	for i, g := range groups {
		out[i] = g.Category
	}
	return out
}

// ByCategory groups entries by category. Groups keep first-registration
// order; entries inside a group are ordered by display priority, then by
// registration order.
func (c *Catalog) ByCategory() []Group {
	if c == nil {
		return nil
	}
	var groups []Group
	pos := map[Category]int{}
	for _, e := range c.entries {
		i, ok := pos[e.Display.Category]
		if !ok {
			i = len(groups)
			pos[e.Display.Category] = i
			groups = append(groups, Group{Category: e.Display.Category})
		}
		groups[i].Entries = append(groups[i].Entries, cloneEntry(e))
	}
	for i := range groups {
		entries := groups[i].Entries
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Display.Priority < entries[b].Display.Priority
		})
	}
	return groups
}

// InCategory returns the entries of one category, or nil when it is unknown.
func (c *Catalog) InCategory(cat Category) []Entry {
	for _, g := range c.ByCategory() {
		if g.Category == cat {
			return g.Entries
		}
	}
	return nil
}

// Without derives a catalog omitting the given types. Unknown types are
// ignored.
func (c *Catalog) Without(types ...diagnosis.Type) *Catalog {
	if c == nil {
		return newCatalog(nil)
	}
	skip := make(map[diagnosis.Type]struct{}, len(types))
	for _, t := range types {
		skip[t] = struct{}{}
	}
	kept := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if _, ok := skip[e.Type]; ok {
			continue
		}
		kept = append(kept, e)
	}
	return newCatalog(kept)
}

func cloneEntry(e Entry) Entry {
	e.Validation.FixesApplied = append([]string(nil), e.Validation.FixesApplied...)
	e.Validation.Sources = append([]string(nil), e.Validation.Sources...)
	return e
}
