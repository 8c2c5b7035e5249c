package detectors

import (
	"math"

	"rgadiag/internal/diagnosis"
	"rgadiag/internal/spectrum"
)

// ESDArtifact flags ions desorbed from surfaces by electron impact rather
// than ionized from the gas phase: F+ without HF, excess O+, and Cl+ without
// HCl.
func ESDArtifact(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	fluorine := p.At(19)
	oxygen := p.At(16)
	chlorine := p.At(35)
	if fluorine < tracePeak && oxygen < tracePeak && chlorine < tracePeak {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeESDArtifact)

	freeF := fluorine >= tracePeak && p.At(20) <= 0.5*fluorine && p.At(69) < fluorine
	b.Check(freeF, 0.3, diagnosis.Presence("F+", 19, fluorine, tracePeak))

	// O+ expected from cracking of water, O2 and CO2.
	cracked := 0.02*p.At(18) + 0.15*p.At(32) + 0.1*p.At(44)
	floor := math.Max(minN2Peak, 2*cracked)
	freeO := oxygen >= floor && p.At(15) < 0.3*oxygen
	b.Check(freeO, 0.3, diagnosis.Presence("O+", 16, oxygen, floor))

	freeCl := chlorine >= tracePeak && p.At(36) <= 0.1*chlorine
	b.Check(freeCl, 0.2, diagnosis.Presence("Cl+", 35, chlorine, tracePeak))

	return b.Finish(2, diagnosis.Fixed(diagnosis.SeverityInfo))
}
