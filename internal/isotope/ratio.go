package isotope

import (
	"math"

	"rgadiag/internal/spectrum"
)

// Ratio divides num by den. ok is false when den is not positive or either
// operand is not finite.
func Ratio(num, den float64) (float64, bool) {
	if den <= 0 || math.IsNaN(den) || math.IsInf(den, 0) || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num / den, true
}

// PeakRatio is Ratio over two spectrum masses.
func PeakRatio(p spectrum.Peaks, num, den int) (float64, bool) {
	return Ratio(p.At(num), p.At(den))
}

// InRange reports lo <= v <= hi. Boundary values satisfy the interval.
func InRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// Pair describes the natural heavy/light intensity ratio of two isotopologue
// peaks of the same species.
type Pair struct {
	Element string
	Light   int
	Heavy   int
	Natural float64
}

// Natural-abundance pairs used by the detector rules.
var (
	Argon36  = Pair{Element: "Ar", Light: 40, Heavy: 36, Natural: 0.003378}
	Argon38  = Pair{Element: "Ar", Light: 40, Heavy: 38, Natural: 0.000635}
	Chlorine = Pair{Element: "Cl", Light: 35, Heavy: 37, Natural: 0.3196}
	HCl      = Pair{Element: "HCl", Light: 36, Heavy: 38, Natural: 0.3196}
	Carbon13 = Pair{Element: "CO2", Light: 44, Heavy: 45, Natural: 0.0119}
	Sulfur34 = Pair{Element: "SO2", Light: 64, Heavy: 66, Natural: 0.0443}
)

// Comparison is the outcome of checking one Pair against a spectrum.
type Comparison struct {
	Pair      Pair
	Observed  float64
	Deviation float64
	Tolerance float64
	// Valid is false when the light peak is absent and no ratio exists.
	Valid bool
	// Within is true when the relative deviation is inside the tolerance.
	Within bool
}

// Compare measures the heavy/light ratio of pair in p and its relative
// deviation from the natural value. A missing heavy peak yields a valid
// comparison with Observed 0, which never matches.
func Compare(p spectrum.Peaks, pair Pair, tolerance float64) Comparison {
	c := Comparison{Pair: pair, Tolerance: tolerance}
	observed, ok := PeakRatio(p, pair.Heavy, pair.Light)
	if !ok || pair.Natural <= 0 {
		return c
	}
	c.Valid = true
	c.Observed = observed
	c.Deviation = math.Abs(observed-pair.Natural) / pair.Natural
	c.Within = observed > 0 && c.Deviation <= tolerance
	return c
}

// Masses returns the two peaks a pair reads, light first.
func (p Pair) Masses() []int {
	return []int{p.Light, p.Heavy}
}
