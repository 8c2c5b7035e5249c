package detectors

import (
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/spectrum"
)

const minWaterPeak = 0.05

// WaterOutgassing is adsorbed water desorbing from unbaked walls. A reported
// bakeout damps the verdict.
func WaterOutgassing(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	water := p.At(18)
	if water < minWaterPeak {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeWaterOutgassing)
	checkRatio(b, p, "H2O/H2", 18, 2, diagnosis.AtLeast(0.5), 0.3)
	top, _, _ := p.Max()
	b.Check(top == 18, 0.2, diagnosis.Dominant("H2O", 18, water, top == 18))
	checkRatio(b, p, "OH+/H2O", 17, 18, diagnosis.Between(0.15, 0.35), 0.2)
	checkRatio(b, p, "H2O/m28", 18, 28, diagnosis.AtLeast(2), 0.1)
	if in.Metadata.Baked {
		b.Scale(diagnosis.BakedDamping)
	}
	return b.Finish(2, diagnosis.ByConfidence(0, 0.6))
}

// HydrogenDominant is the residual gas of a well-baked UHV system: hydrogen
// from the steel bulk above everything else.
func HydrogenDominant(in spectrum.Input) *diagnosis.Result {
	p := in.Peaks
	h2 := p.At(2)
	top, _, ok := p.Max()
	if !ok || top != 2 || h2 <= 0 {
		return nil
	}
	b := diagnosis.NewBuilder(diagnosis.TypeHydrogenDominant)
	b.Support(0.4, diagnosis.Dominant("H2", 2, h2, true))
	checkRatio(b, p, "H2O/H2", 18, 2, diagnosis.AtMost(0.1), 0.2)
	checkRatio(b, p, "m28/H2", 28, 2, diagnosis.AtMost(0.1), 0.2)
	checkRatio(b, p, "CO2/H2", 44, 2, diagnosis.AtMost(0.05), 0.1)
	if in.Metadata.Baked {
		b.Scale(diagnosis.BakedBoost)
	}
	return b.Finish(2, diagnosis.Fixed(diagnosis.SeverityInfo))
}
