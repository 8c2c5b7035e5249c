package spectrum

import (
	"math"
	"sort"
)

// DefaultReferenceMass is the mass conventionally scaled to 1.0 (H2).
const DefaultReferenceMass = 2

// Peaks maps mass-to-charge ratio to normalized relative intensity.
type Peaks map[int]float64

// At returns the intensity at mass. Missing and malformed values read as 0.
func (p Peaks) At(mass int) float64 {
	return sanitize(p[mass])
}

// Has reports whether mass carries a positive intensity.
func (p Peaks) Has(mass int) bool {
	return p.At(mass) > 0
}

// Sum adds the valid intensities of all masses in [lo, hi]. Masses are added
// in ascending order so repeated calls are bit-identical.
func (p Peaks) Sum(lo, hi int) float64 {
	total := 0.0
	for _, mass := range p.Masses() {
		if mass < lo || mass > hi {
			continue
		}
		total += p[mass]
	}
	return total
}

// Total adds every valid intensity in the spectrum.
func (p Peaks) Total() float64 {
	return p.Sum(math.MinInt, math.MaxInt)
}

// Max returns the largest peak. Ties resolve to the lower mass. ok is false
// when the spectrum has no positive intensity.
func (p Peaks) Max() (mass int, value float64, ok bool) {
	return p.MaxIn(math.MinInt, math.MaxInt)
}

// MaxIn is Max restricted to masses in [lo, hi].
func (p Peaks) MaxIn(lo, hi int) (mass int, value float64, ok bool) {
	for m, raw := range p {
		if m < lo || m > hi {
			continue
		}
		v := sanitize(raw)
		if v <= 0 {
			continue
		}
		if !ok || v > value || (v == value && m < mass) {
			mass, value, ok = m, v, true
		}
	}
	return mass, value, ok
}

// CountAbove counts masses in [lo, hi] whose intensity is at least floor.
// A non-positive floor still ignores zero peaks.
func (p Peaks) CountAbove(lo, hi int, floor float64) int {
	n := 0
	for m, raw := range p {
		if m < lo || m > hi {
			continue
		}
		v := sanitize(raw)
		if v > 0 && v >= floor {
			n++
		}
	}
	return n
}

// Masses returns the masses with positive intensity in ascending order.
func (p Peaks) Masses() []int {
	out := make([]int, 0, len(p))
	for m, v := range p {
		if sanitize(v) > 0 {
			out = append(out, m)
		}
	}
	sort.Ints(out)
	return out
}

// Clone returns an independent copy holding only valid positive intensities.
func (p Peaks) Clone() Peaks {
	out := make(Peaks, len(p))
	for m, v := range p {
		if s := sanitize(v); s > 0 {
			out[m] = s
		}
	}
	return out
}

// Normalize returns a copy scaled so the reference mass reads 1.0. When the
// reference peak is absent the largest peak is used instead. An empty
// spectrum is returned unchanged.
func (p Peaks) Normalize(reference int) Peaks {
	scale := p.At(reference)
	if scale <= 0 {
		_, scale, _ = p.Max()
	}
	out := p.Clone()
	if scale <= 0 {
		return out
	}
	for m, v := range out {
		out[m] = v / scale
	}
	return out
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
