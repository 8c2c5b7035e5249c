package detectors

import (
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/isotope"
	"rgadiag/internal/spectrum"
)

const (
	minAlkylSum    = 0.005
	minHeavyShare  = 0.03
	heavyRangeLo   = 45
	heavyRangeHi   = 100
	minHeavyPeaks  = 5
	oilHeavyShare  = 0.05
	richHeavyShare = 0.1
)

// OilBackstreaming is hydrocarbon pump oil: the CnH2n+1 series at 43/57/71
// with its CnH2n-1 companions at 41/55.
func OilBackstreaming(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if p.At(41)+p.At(43)+p.At(55)+p.At(57) < minAlkylSum {
		return nil
	}
	if pfpeSignature(p) {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeOilBackstreaming)
	alkyl := present(p, 43, 57)
	b.Check(alkyl, 0.3, diagnosis.Pattern("CnH2n+1", alkyl, 43, 57))
	alkenyl := present(p, 41, 55)
	b.Check(alkenyl, 0.2, diagnosis.Pattern("CnH2n-1", alkenyl, 41, 55))
	checkRatio(b, p, "C4H9+/C3H7+", 57, 43, diagnosis.Between(0.4, 1.5), 0.2)
	share, _ := isotope.Ratio(p.Sum(heavyRangeLo, heavyRangeHi), p.Total())
	b.Check(share >= oilHeavyShare, 0.2, diagnosis.RangeSum(heavyRangeLo, heavyRangeHi, share, oilHeavyShare))
	checkPresence(b, p, "C5H11+", 71, tracePeak, 0.1)
	return b.Finish(2, diagnosis.ByConfidence(0.7, 0.5))
}

// PFPEContamination is perfluoropolyether (Fomblin, Krytox) from pump fluids
// or greases, dominated by CF3+ at 69.
func PFPEContamination(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if !pfpeSignature(p) {
		return nil
	}
	cf3 := p.At(69)
	b := diagnosis.NewBuilder(diagnosis.TypePFPEContamination)
	top, _, _ := p.MaxIn(heavyRangeLo, 1000)
	b.Check(top == 69, 0.3, diagnosis.Dominant("CF3+", 69, cf3, top == 69))
	checkRatio(b, p, "CF+/CF3+", 31, 69, diagnosis.Between(0.05, 0.5), 0.15)
	checkRatio(b, p, "CF2+/CF3+", 50, 69, diagnosis.Between(0.02, 0.3), 0.15)
	checkRatio(b, p, "C2F5+/CF3+", 119, 69, diagnosis.Between(0.02, 0.5), 0.1)
	checkRatio(b, p, "C2F4+/CF3+", 100, 69, diagnosis.Between(0.01, 0.3), 0.1)
	c3h7 := p.At(43)
	b.Check(c3h7 <= 0.1*cf3, 0.1, diagnosis.Absence("C3H7+", 43, c3h7, 0.1*cf3))
	return b.Finish(2, diagnosis.ByConfidence(0.7, 0.5))
}

// SiliconeContamination is PDMS (silicone grease, O-ring lubricant) by its
// trimethylsilyl and cyclic siloxane fragments.
func SiliconeContamination(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if p.At(73) < tracePeak {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeSiliconeContamination)
	checkPresence(b, p, "Si(CH3)3+", 73, tracePeak, 0.3)
	checkPresence(b, p, "C5H15OSi2+", 147, tracePeak, 0.2)
	checkPresence(b, p, "D3-CH3", 207, tracePeak, 0.2)
	checkPresence(b, p, "D4-CH3", 281, tracePeak, 0.1)
	return b.Finish(2, diagnosis.WhenSupporting(3, diagnosis.SeverityWarning, diagnosis.Fixed(diagnosis.SeverityInfo)))
}

// UnidentifiedOrganics is the catch-all for heavy organic load that matches
// none of the known signatures.
func UnidentifiedOrganics(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	share, ok := isotope.Ratio(p.Sum(heavyRangeLo, heavyRangeHi), p.Total())
	if !ok || share < minHeavyShare {
		return nil
	}
	if pfpeSignature(p) || alkylSignature(p) || siloxaneSignature(p) || acetoneSignature(p) {
		return nil
	}
	if sf6Signature(p) || so2Signature(p) {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeUnidentifiedOrganics)
	b.Support(0.3, diagnosis.RangeSum(heavyRangeLo, heavyRangeHi, share, minHeavyShare))
	b.Check(share >= richHeavyShare, 0.2, diagnosis.RangeSum(heavyRangeLo, heavyRangeHi, share, richHeavyShare))
	n := p.CountAbove(heavyRangeLo, heavyRangeHi, tracePeak)
	b.Check(n >= minHeavyPeaks, 0.1, diagnosis.RangeCount(heavyRangeLo, heavyRangeHi, n, minHeavyPeaks))
	return b.Finish(1, diagnosis.ByConfidence(0, 0.5))
}
