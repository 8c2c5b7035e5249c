package detectors

import (
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/isotope"
	"rgadiag/internal/spectrum"
)

// Alcohol variants.
const (
	VariantIsopropanol = "isopropanol"
	VariantEthanol     = "ethanol"
	VariantMethanol    = "methanol"
)

// SolventAcetone is cleaning-solvent acetone: the acetyl base peak at 43 with
// the parent ion at 58.
func SolventAcetone(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if p.At(58) < tracePeak {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeSolventAcetone)
	if !checkRatio(b, p, "C2H3O+/C3H6O+", 43, 58, diagnosis.Between(2.0, 4.5), 0.4) {
		return nil
	}
	checkRatio(b, p, "CH3+/C3H6O+", 15, 58, diagnosis.Between(0.3, 1.5), 0.1)
	checkRatio(b, p, "C4H9+/C2H3O+", 57, 43, diagnosis.AtMost(0.3), 0.1)
	return b.Finish(2, diagnosis.ByConfidence(0, 0.5))
}

// SolventAlcohol tells isopropanol, ethanol and methanol apart by their base
// peaks and the fragments next to them. With CH2OH+ as base peak, ethanol and
// methanol are both scored and the stronger reading wins.
func SolventAlcohol(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	ch2oh := p.At(31)
	c2h5o := p.At(45)
	if ch2oh < tracePeak && c2h5o < tracePeak {
		return nil
	}
	if c2h5o >= ch2oh {
		b := diagnosis.NewBuilder(diagnosis.TypeSolventAlcohol)
		b.SetVariant(VariantIsopropanol)
		b.Support(0.2, diagnosis.Dominant("C2H5O+", 45, c2h5o, true))
		checkRatio(b, p, "C3H7+/C2H5O+", 43, 45, diagnosis.Between(0.1, 0.4), 0.2)
		checkRatio(b, p, "C2H3+/C2H5O+", 27, 45, diagnosis.Between(0.1, 0.4), 0.15)
		checkRatio(b, p, "C3H7O+/C2H5O+", 59, 45, diagnosis.Between(0.02, 0.1), 0.1)
		return b.Finish(2, alcoholSeverity)
	}
	if p.At(69) >= ch2oh {
		// CF+ at 31 from a fluorinated source, not CH2OH+.
		return nil
	}
	best := methanol(p, ch2oh)
	if p.Has(46) {
		if eth := ethanol(p, ch2oh); eth.Confidence() >= best.Confidence() {
			best = eth
		}
	}
	return best.Finish(2, alcoholSeverity)
}

var alcoholSeverity = diagnosis.ByConfidence(0, 0.5)

func ethanol(p spectrum.Peaks, ch2oh float64) *diagnosis.Builder {
	b := diagnosis.NewBuilder(diagnosis.TypeSolventAlcohol)
	b.SetVariant(VariantEthanol)
	b.Support(0.2, diagnosis.Dominant("CH2OH+", 31, ch2oh, true))
	checkRatio(b, p, "C2H5O+/CH2OH+", 45, 31, diagnosis.Between(0.2, 0.7), 0.2)
	checkRatio(b, p, "C2H5OH+/CH2OH+", 46, 31, diagnosis.Between(0.1, 0.4), 0.15)
	return b
}

func methanol(p spectrum.Peaks, ch2oh float64) *diagnosis.Builder {
	b := diagnosis.NewBuilder(diagnosis.TypeSolventAlcohol)
	b.SetVariant(VariantMethanol)
	b.Support(0.2, diagnosis.Dominant("CH2OH+", 31, ch2oh, true))
	checkRatio(b, p, "CH3OH+/CH2OH+", 32, 31, diagnosis.Between(0.5, 0.9), 0.2)
	checkRatio(b, p, "CHO+/CH2OH+", 29, 31, diagnosis.Between(0.3, 0.9), 0.15)
	return b
}

// ChlorinatedSolvent is a chlorine-bearing solvent (TCE, PCE, DCM), confirmed
// by the natural 37Cl/35Cl abundance.
func ChlorinatedSolvent(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if p.At(35) < tracePeak || !p.Has(37) {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeChlorinatedSolvent)
	if !checkIsotope(b, p, isotope.Chlorine, 0.2, 0.4) {
		return nil
	}
	checkIsotope(b, p, isotope.HCl, 0.2, 0.2)
	checkRatio(b, p, "C2HCl3+", 132, 130, diagnosis.Between(0.8, 1.3), 0.2)
	checkRatio(b, p, "C2HCl2+", 97, 95, diagnosis.Between(0.5, 0.8), 0.1)
	return b.Finish(1, diagnosis.ByConfidence(0, 0.6))
}
