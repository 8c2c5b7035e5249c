package diagnosis

import (
	"strconv"
	"strings"

	"rgadiag/internal/isotope"
)

// EvidenceKind tags what sort of check an Evidence item records.
type EvidenceKind string

const (
	KindPresence  EvidenceKind = "presence"
	KindAbsence   EvidenceKind = "absence"
	KindRatio     EvidenceKind = "ratio"
	KindPattern   EvidenceKind = "pattern"
	KindPeak      EvidenceKind = "peak"
	KindMetadata  EvidenceKind = "metadata"
	KindAggregate EvidenceKind = "aggregate"
)

// Message keys for evidence lines. Parameter order is documented per key and
// mirrored by the i18n catalog.
const (
	// label, numerator mass, denominator mass, value, lo, hi
	KeyRatioBetween = "evidence.ratio.between"
	// label, numerator mass, denominator mass, value, min
	KeyRatioAtLeast = "evidence.ratio.at_least"
	// label, numerator mass, denominator mass, value, max
	KeyRatioAtMost = "evidence.ratio.at_most"
	// label, numerator mass, denominator mass
	KeyRatioUndefined = "evidence.ratio.undefined"
	// species, mass, value, floor
	KeyPresence = "evidence.presence"
	// species, mass, value, ceiling
	KeyAbsence = "evidence.absence"
	// species, mass, value
	KeyDominant = "evidence.dominant"
	// species, mass, value
	KeyNotDominant = "evidence.not_dominant"
	// element, heavy mass, light mass, observed, natural, tolerance percent
	KeyIsotope = "evidence.isotope"
	// label, masses
	KeyPattern = "evidence.pattern"
	// label, masses
	KeyPatternMissing = "evidence.pattern.missing"
	// label, value, min
	KeyFraction = "evidence.fraction"
	// label, value
	KeyMixture = "evidence.mixture"
	// pressure, lo, hi
	KeyPressure = "evidence.pressure"
	// lo mass, hi mass, value, min
	KeyRangeSum = "evidence.range_sum"
	// lo mass, hi mass, count, min
	KeyRangeCount = "evidence.range_count"
	// factor
	KeyBakeDamping = "evidence.bakeout.damping"
	// factor
	KeyBakeBoost = "evidence.bakeout.boost"
)

// Range is an expected interval or exact value. Nil bounds are open.
type Range struct {
	Min   *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max   *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Exact *float64 `json:"exact,omitempty" yaml:"exact,omitempty"`
}

// Between is the inclusive interval [lo, hi].
func Between(lo, hi float64) Range { return Range{Min: ptr(lo), Max: ptr(hi)} }

// AtLeast is the half-open interval [min, +inf).
func AtLeast(min float64) Range { return Range{Min: ptr(min)} }

// AtMost is the half-open interval (-inf, max].
func AtMost(max float64) Range { return Range{Max: ptr(max)} }

// Exactly is a single expected value.
func Exactly(v float64) Range { return Range{Exact: ptr(v)} }

// Contains applies the range with inclusive bounds.
func (r Range) Contains(v float64) bool {
	if r.Exact != nil && v != *r.Exact {
		return false
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Evidence is one atomic justification produced by a detector.
type Evidence struct {
	Kind     EvidenceKind `json:"kind" yaml:"kind"`
	Key      string       `json:"key" yaml:"key"`
	Params   []any        `json:"params,omitempty" yaml:"params,omitempty"`
	Supports bool         `json:"supports" yaml:"supports"`
	Value    *float64     `json:"value,omitempty" yaml:"value,omitempty"`
	Expected *Range       `json:"expected,omitempty" yaml:"expected,omitempty"`
	Masses   []int        `json:"masses,omitempty" yaml:"masses,omitempty"`
}

// Ratio records an intensity ratio num/den checked against want. Pass ok as
// false when the ratio is undefined (empty denominator).
func Ratio(label string, num, den int, value float64, ok bool, want Range) Evidence {
	ev := Evidence{
		Kind:     KindRatio,
		Masses:   []int{num, den},
		Expected: &want,
	}
	if !ok {
		ev.Key = KeyRatioUndefined
		ev.Params = []any{label, num, den}
		return ev
	}
	ev.Value = ptr(value)
	switch {
	case want.Min != nil && want.Max != nil:
		ev.Key = KeyRatioBetween
		ev.Params = []any{label, num, den, value, *want.Min, *want.Max}
	case want.Max != nil:
		ev.Key = KeyRatioAtMost
		ev.Params = []any{label, num, den, value, *want.Max}
	default:
		min := 0.0
		if want.Min != nil {
			min = *want.Min
		}
		ev.Key = KeyRatioAtLeast
		ev.Params = []any{label, num, den, value, min}
	}
	return ev
}

// Presence records that species at mass reaches floor.
func Presence(species string, mass int, value, floor float64) Evidence {
	want := AtLeast(floor)
	return Evidence{
		Kind:     KindPresence,
		Key:      KeyPresence,
		Params:   []any{species, mass, value, floor},
		Value:    ptr(value),
		Expected: &want,
		Masses:   []int{mass},
	}
}

// Absence records that species at mass stays at or below ceiling.
func Absence(species string, mass int, value, ceiling float64) Evidence {
	want := AtMost(ceiling)
	return Evidence{
		Kind:     KindAbsence,
		Key:      KeyAbsence,
		Params:   []any{species, mass, value, ceiling},
		Value:    ptr(value),
		Expected: &want,
		Masses:   []int{mass},
	}
}

// Dominant records whether mass is the largest peak of interest.
func Dominant(species string, mass int, value float64, dominant bool) Evidence {
	key := KeyDominant
	if !dominant {
		key = KeyNotDominant
	}
	return Evidence{
		Kind:   KindPeak,
		Key:    key,
		Params: []any{species, mass, value},
		Value:  ptr(value),
		Masses: []int{mass},
	}
}

// Isotope records an isotope-pair comparison against natural abundance.
func Isotope(c isotope.Comparison) Evidence {
	ev := Evidence{
		Kind:   KindRatio,
		Masses: c.Pair.Masses(),
	}
	if !c.Valid {
		ev.Key = KeyRatioUndefined
		ev.Params = []any{c.Pair.Element, c.Pair.Heavy, c.Pair.Light}
		return ev
	}
	want := Exactly(c.Pair.Natural)
	ev.Key = KeyIsotope
	ev.Params = []any{c.Pair.Element, c.Pair.Heavy, c.Pair.Light, c.Observed, c.Pair.Natural, c.Tolerance * 100}
	ev.Value = ptr(c.Observed)
	ev.Expected = &want
	return ev
}

// Pattern records whether a named fragment series is visible.
func Pattern(label string, present bool, masses ...int) Evidence {
	key := KeyPattern
	if !present {
		key = KeyPatternMissing
	}
	return Evidence{
		Kind:   KindPattern,
		Key:    key,
		Params: []any{label, joinMasses(masses)},
		Masses: append([]int(nil), masses...),
	}
}

// Fraction records a derived fraction (0..1) checked against min.
func Fraction(label string, value, min float64, masses ...int) Evidence {
	want := AtLeast(min)
	return Evidence{
		Kind:     KindAggregate,
		Key:      KeyFraction,
		Params:   []any{label, value, min},
		Value:    ptr(value),
		Expected: &want,
		Masses:   append([]int(nil), masses...),
	}
}

// Mixture records an estimated mixture fraction between two species.
func Mixture(label string, value float64, masses ...int) Evidence {
	want := Between(0, 1)
	return Evidence{
		Kind:     KindAggregate,
		Key:      KeyMixture,
		Params:   []any{label, value},
		Value:    ptr(value),
		Expected: &want,
		Masses:   append([]int(nil), masses...),
	}
}

// Pressure records the externally supplied total pressure against [lo, hi].
func Pressure(value, lo, hi float64) Evidence {
	want := Between(lo, hi)
	return Evidence{
		Kind:     KindMetadata,
		Key:      KeyPressure,
		Params:   []any{value, lo, hi},
		Value:    ptr(value),
		Expected: &want,
	}
}

// RangeSum records a whole-range intensity aggregate against min.
func RangeSum(lo, hi int, value, min float64) Evidence {
	want := AtLeast(min)
	return Evidence{
		Kind:     KindAggregate,
		Key:      KeyRangeSum,
		Params:   []any{lo, hi, value, min},
		Value:    ptr(value),
		Expected: &want,
	}
}

// RangeCount records how many distinct peaks a mass range holds.
func RangeCount(lo, hi, count, min int) Evidence {
	want := AtLeast(float64(min))
	return Evidence{
		Kind:     KindAggregate,
		Key:      KeyRangeCount,
		Params:   []any{lo, hi, count, min},
		Value:    ptr(float64(count)),
		Expected: &want,
	}
}

func joinMasses(masses []int) string {
	parts := make([]string, 0, len(masses))
	for _, m := range masses {
		parts = append(parts, strconv.Itoa(m))
	}
	return strings.Join(parts, ", ")
}

func ptr(v float64) *float64 { return &v }
