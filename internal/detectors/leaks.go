package detectors

import (
	"math"

	"rgadiag/internal/diagnosis"
	"rgadiag/internal/isotope"
	"rgadiag/internal/spectrum"
)

const (
	minN2Peak       = 0.005
	minVentN2Peak   = 0.01
	minCoolingWater = 0.7
	strongCooling   = 0.9
	maxOHFragment   = 0.35
)

// Atmospheric N2/O2 and Ar/N2 windows shared by the leak rules.
var (
	airN2O2 = diagnosis.Between(3.0, 4.5)
	airArN2 = diagnosis.Between(0.01, 0.1)
	n2Frag  = diagnosis.Between(0.03, 0.15)
)

// AirLeak reads the atmospheric N2/O2 ratio, confirmed by argon.
func AirLeak(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if p.At(28) < minN2Peak || !p.Has(32) {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeAirLeak)
	if !checkRatio(b, p, "N2/O2", 28, 32, airN2O2, 0.4) {
		return nil
	}
	checkRatio(b, p, "Ar/N2", 40, 28, airArN2, 0.2)
	checkRatio(b, p, "Ar++/Ar", 20, 40, diagnosis.Between(0.05, 0.25), 0.1)
	checkRatio(b, p, "N+/N2", 14, 28, n2Frag, 0.1)
	checkIsotope(b, p, isotope.Argon36, 0.25, 0.1)
	return b.Finish(2, diagnosis.ByConfidence(0.7, 0.5))
}

// AirLeakO2Depleted covers air leaks whose oxygen was consumed by a hot
// filament or getter: argon stays atmospheric while O2 is missing.
func AirLeakO2Depleted(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if p.At(28) < minN2Peak || !p.Has(40) {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeAirLeakO2Depleted)
	var depleted diagnosis.Evidence
	r, ok := isotope.PeakRatio(p, 28, 32)
	if ok {
		depleted = diagnosis.Ratio("N2/O2", 28, 32, r, true, diagnosis.AtLeast(10))
	} else {
		depleted = diagnosis.Absence("O2", 32, 0, 0)
	}
	if !b.Check(!ok || r >= 10, 0.3, depleted) {
		return nil
	}
	if !checkRatio(b, p, "Ar/N2", 40, 28, airArN2, 0.3) {
		return nil
	}
	checkRatio(b, p, "N+/N2", 14, 28, n2Frag, 0.1)
	checkIsotope(b, p, isotope.Argon36, 0.25, 0.1)
	return b.Finish(2, diagnosis.ByConfidence(0, 0.6))
}

// N2VentResidue is nitrogen left over from a vent: N2 without the oxygen and
// argon that air would bring along.
func N2VentResidue(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	n2 := p.At(28)
	if n2 < minVentN2Peak {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeN2VentResidue)
	checkRatio(b, p, "N+/N2", 14, 28, n2Frag, 0.3)
	o2 := p.At(32)
	b.Check(o2 <= 0.02*n2, 0.2, diagnosis.Absence("O2", 32, o2, 0.02*n2))
	ar := p.At(40)
	b.Check(ar <= 0.002*n2, 0.2, diagnosis.Absence("Ar", 40, ar, 0.002*n2))
	return b.Finish(3, diagnosis.Fixed(diagnosis.SeverityInfo))
}

// CoolingWaterLeak fires when water is nearly the whole spectrum. A total
// pressure near the vapour pressure of water at room temperature is strong
// confirmation.
func CoolingWaterLeak(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	frac, ok := isotope.Ratio(waterSignal(p), p.Total())
	if !ok || frac < minCoolingWater {
		return nil
	}
	masses := []int{18}
	if p.Has(17) {
		masses = []int{17, 18}
	}
	b := diagnosis.NewBuilder(diagnosis.TypeCoolingWaterLeak)
	if frac >= strongCooling {
		b.Support(0.55, diagnosis.Fraction("H2O/Σ", frac, strongCooling, masses...))
	} else {
		b.Support(0.3, diagnosis.Fraction("H2O/Σ", frac, minCoolingWater, masses...))
	}
	if mbar, ok := in.Pressure(); ok {
		b.Check(isotope.InRange(mbar, 15, 30), 0.4, diagnosis.Pressure(mbar, 15, 30))
	}
	checkRatio(b, p, "OH+/H2O", 17, 18, diagnosis.Between(0.15, 0.35), 0.05)
	return b.Finish(1, diagnosis.ByConfidence(0.9, 0.5))
}

// waterSignal is H2O+ plus its OH+ fragment, counting mass 17 only up to the
// largest share water cracking produces.
func waterSignal(p spectrum.Peaks) float64 {
	h2o := p.At(18)
	return h2o + math.Min(p.At(17), maxOHFragment*h2o)
}
