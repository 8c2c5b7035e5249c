package detectors

import (
	"strings"

	"rgadiag/internal/diagnosis"
	"rgadiag/internal/isotope"
	"rgadiag/internal/spectrum"
)

// Mass-28 attribution variants.
const (
	VariantN2Dominant = "n2_dominant"
	VariantCODominant = "co_dominant"
	VariantMixture    = "mixture"
)

// Argon origin variants.
const (
	VariantAtmospheric = "atmospheric"
	VariantProcess     = "process"
)

// Sulfur variants; both may appear joined by "+".
const (
	VariantSO2 = "so2"
	VariantH2S = "h2s"
)

// Cracking-pattern fragment shares for the mass-28 split: N+/N2 and C+/CO.
const (
	n2Fragment14 = 0.072
	coFragment12 = 0.045
)

// Mass28Attribution splits the mass-28 peak between N2 and CO from the
// fragments each leaves at 14 and 12.
func Mass28Attribution(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if p.At(28) < minN2Peak {
		return nil
	}
	r14, _ := isotope.PeakRatio(p, 14, 28)
	r12, _ := isotope.PeakRatio(p, 12, 28)
	if r14 <= 0 && r12 <= 0 {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeMass28Attribution)
	b.Check(r14 >= 0.01, 0.25, diagnosis.Ratio("N+/m28", 14, 28, r14, true, diagnosis.AtLeast(0.01)))
	b.Check(r12 >= 0.005, 0.25, diagnosis.Ratio("C+/m28", 12, 28, r12, true, diagnosis.AtLeast(0.005)))
	n2 := r14 / n2Fragment14
	co := r12 / coFragment12
	share := n2 / (n2 + co)
	mixture := diagnosis.Mixture("x(N2)", share, 28)
	switch {
	case share >= 0.8:
		b.SetVariant(VariantN2Dominant)
		b.Support(0.3, mixture)
	case share <= 0.2:
		b.SetVariant(VariantCODominant)
		b.Support(0.3, mixture)
	default:
		b.SetVariant(VariantMixture)
		b.Support(0.2, mixture)
	}
	return b.Finish(2, diagnosis.Fixed(diagnosis.SeverityInfo))
}

// CO2Elevated checks the CO2 parent at 44 against its doubly charged ion and
// the 13C isotopologue.
func CO2Elevated(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if p.At(44) < minN2Peak {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeCO2Elevated)
	checkPresence(b, p, "CO2", 44, 0.02, 0.3)
	checkRatio(b, p, "CO2++/CO2+", 22, 44, diagnosis.Between(0.005, 0.03), 0.2)
	checkIsotope(b, p, isotope.Carbon13, 0.3, 0.2)
	checkRatio(b, p, "O+/CO2+", 16, 44, diagnosis.Between(0.05, 0.2), 0.1)
	return b.Finish(2, diagnosis.ByConfidence(0, 0.6))
}

// ArgonIsotope confirms argon by its natural 36Ar and 38Ar abundance and
// tells atmospheric argon from process gas by the N2/O2 balance beside it.
func ArgonIsotope(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if p.At(40) < tracePeak || !p.Has(36) {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeArgonIsotope)
	if !checkIsotope(b, p, isotope.Argon36, 0.25, 0.5) {
		return nil
	}
	checkIsotope(b, p, isotope.Argon38, 0.4, 0.2)
	checkRatio(b, p, "Ar++/Ar", 20, 40, diagnosis.Between(0.05, 0.25), 0.2)
	if r, ok := isotope.PeakRatio(p, 28, 32); ok && airN2O2.Contains(r) {
		b.SetVariant(VariantAtmospheric)
	} else {
		b.SetVariant(VariantProcess)
	}
	return b.Finish(1, diagnosis.Fixed(diagnosis.SeverityInfo))
}

// HeliumTrace is helium at 4, usually from leak testing. A larger HD peak at
// 3 means 4 is D2 instead.
func HeliumTrace(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	he := p.At(4)
	if he < tracePeak || p.At(3) > he {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeHeliumTrace)
	b.Support(0.35, diagnosis.Presence("He", 4, he, tracePeak))
	checkRatio(b, p, "He/H2", 4, 2, diagnosis.AtLeast(0.05), 0.2)
	return b.Finish(1, diagnosis.ByConfidence(0, 0.5))
}

// MethanePresent reads the CH4 cracking pattern 16/15/13/12.
func MethanePresent(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if !present(p, 15, 16) {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeMethanePresent)
	if !checkRatio(b, p, "CH3+/CH4+", 15, 16, diagnosis.Between(0.7, 1.0), 0.4) {
		return nil
	}
	checkRatio(b, p, "CH+/CH4+", 13, 16, diagnosis.Between(0.05, 0.12), 0.1)
	checkRatio(b, p, "C+/CH4+", 12, 16, diagnosis.Between(0.01, 0.05), 0.1)
	return b.Finish(2, diagnosis.Fixed(diagnosis.SeverityInfo))
}

// AmmoniaPresent is NH3: mass 17 too strong to be the OH+ fragment of water.
func AmmoniaPresent(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	nh3 := p.At(17)
	if nh3 < minN2Peak {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeAmmoniaPresent)
	r, ok := isotope.PeakRatio(p, 17, 18)
	excess := diagnosis.Absence("H2O", 18, 0, 0)
	if ok {
		excess = diagnosis.Ratio("m17/H2O", 17, 18, r, true, diagnosis.AtLeast(0.5))
	}
	if !b.Check(!ok || r >= 0.5, 0.4, excess) {
		return nil
	}
	checkRatio(b, p, "NH2+/NH3+", 16, 17, diagnosis.Between(0.6, 1.0), 0.2)
	checkRatio(b, p, "NH+/NH3+", 15, 17, diagnosis.Between(0.05, 0.15), 0.1)
	return b.Finish(2, diagnosis.ByConfidence(0, 0.6))
}

// SF6Present is sulfur hexafluoride, seen only through its fragments since
// the parent ion does not survive ionization.
func SF6Present(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	if p.At(127) < tracePeak {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeSF6Present)
	checkPresence(b, p, "SF5+", 127, tracePeak, 0.3)
	checkRatio(b, p, "SF3+/SF5+", 89, 127, diagnosis.Between(0.15, 0.4), 0.2)
	checkRatio(b, p, "SF4+/SF5+", 108, 127, diagnosis.Between(0.05, 0.2), 0.1)
	checkRatio(b, p, "SF2+/SF5+", 70, 127, diagnosis.Between(0.03, 0.15), 0.1)
	checkRatio(b, p, "SF+/SF5+", 51, 127, diagnosis.Between(0.05, 0.2), 0.1)
	return b.Finish(2, diagnosis.ByConfidence(0, 0.6))
}

// SulfurCompounds looks for SO2 and H2S independently and reports whichever
// is confirmed.
func SulfurCompounds(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	so2 := p.At(64) >= tracePeak
	h2s := p.At(34) >= tracePeak
	if !so2 && !h2s {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeSulfurCompounds)
	var found []string
	if so2 {
		fragment := checkRatio(b, p, "SO+/SO2+", 48, 64, diagnosis.Between(0.3, 0.7), 0.3)
		heavy := checkIsotope(b, p, isotope.Sulfur34, 0.3, 0.3)
		if fragment || heavy {
			found = append(found, VariantSO2)
		}
	}
	if h2s {
		// 34 is also the 16O18O isotopologue of oxygen.
		if r, ok := isotope.PeakRatio(p, 34, 32); ok && r <= 0.01 {
			b.Against(diagnosis.Ratio("m34/O2", 34, 32, r, true, diagnosis.AtLeast(0.01)))
		} else {
			if checkRatio(b, p, "HS+/H2S+", 33, 34, diagnosis.Between(0.3, 0.6), 0.3) {
				found = append(found, VariantH2S)
			}
			checkRatio(b, p, "S+/H2S+", 32, 34, diagnosis.Between(0.3, 0.6), 0.1)
		}
	}
	b.SetVariant(strings.Join(found, "+"))
	return b.Finish(2, diagnosis.ByConfidence(0, 0.6))
}
