package detectors

import (
	"rgadiag/internal/isotope"
	"rgadiag/internal/spectrum"
)

// Minimum CF3+ intensity before a spectrum is read as PFPE.
const pfpeMinCF3 = 0.005

// pfpeSignature is a CF3+ peak at 69 that outweighs the alkyl series.
func pfpeSignature(p spectrum.Peaks) bool {
	cf3 := p.At(69)
	return cf3 >= pfpeMinCF3 && p.At(43)+p.At(57) <= cf3
}

// alkylSignature is the paired 43/57 series of hydrocarbon oils.
func alkylSignature(p spectrum.Peaks) bool {
	if !present(p, 43, 57) {
		return false
	}
	r, ok := isotope.PeakRatio(p, 57, 43)
	return ok && isotope.InRange(r, 0.4, 1.5)
}

// siloxaneSignature is the 73/147 pair of PDMS fragments.
func siloxaneSignature(p spectrum.Peaks) bool {
	return present(p, 73, 147)
}

// acetoneSignature is a parent ion at 58 with the acetyl base peak at 43.
func acetoneSignature(p spectrum.Peaks) bool {
	if !present(p, 58) {
		return false
	}
	r, ok := isotope.PeakRatio(p, 43, 58)
	return ok && isotope.InRange(r, 2.0, 4.5)
}

// sf6Signature is the SF5+ fragment, whose companions fall in the heavy range.
func sf6Signature(p spectrum.Peaks) bool {
	return present(p, 127)
}

// so2Signature is SO2+ at 64 with its SO+ fragment at 48.
func so2Signature(p spectrum.Peaks) bool {
	if !present(p, 64) {
		return false
	}
	r, ok := isotope.PeakRatio(p, 48, 64)
	return ok && isotope.InRange(r, 0.3, 0.7)
}
