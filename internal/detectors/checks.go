package detectors

import (
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/isotope"
	"rgadiag/internal/spectrum"
)

// tracePeak is the smallest normalized intensity treated as a real peak.
const tracePeak = 0.001

// checkRatio records the num/den ratio against want and adds weight when it
// holds. An undefined ratio is recorded as non-supporting.
func checkRatio(b *diagnosis.Builder, p spectrum.Peaks, label string, num, den int, want diagnosis.Range, weight float64) bool {
	v, ok := isotope.PeakRatio(p, num, den)
	return b.Check(ok && want.Contains(v), weight, diagnosis.Ratio(label, num, den, v, ok, want))
}

// checkIsotope compares pair against natural abundance within tolerance.
func checkIsotope(b *diagnosis.Builder, p spectrum.Peaks, pair isotope.Pair, tolerance, weight float64) bool {
	c := isotope.Compare(p, pair, tolerance)
	return b.Check(c.Within, weight, diagnosis.Isotope(c))
}

// checkPresence records species at mass against floor.
func checkPresence(b *diagnosis.Builder, p spectrum.Peaks, species string, mass int, floor, weight float64) bool {
	v := p.At(mass)
	return b.Check(v >= floor && v > 0, weight, diagnosis.Presence(species, mass, v, floor))
}

func present(p spectrum.Peaks, masses ...int) bool {
	for _, m := range masses {
		if p.At(m) < tracePeak {
			return false
		}
	}
	return true
}
