package detectors

import (
	"testing"

	"rgadiag/internal/diagnosis"
	"rgadiag/internal/spectrum"
	"rgadiag/internal/testsupport"
)

func TestRulesOnReferenceSpectra(t *testing.T) {
	cases := []struct {
		name       string
		detect     diagnosis.Detector
		in         spectrum.Input
		confidence float64
		severity   diagnosis.Severity
		variant    string
	}{
		{"air leak", AirLeak, testsupport.AirLeak(), 0.8, diagnosis.SeverityCritical, ""},
		{"air leak with 36Ar", AirLeak, testsupport.AirLeakWithArgon36(), 0.9, diagnosis.SeverityCritical, ""},
		{
			"o2 depleted air leak", AirLeakO2Depleted,
			peaks(spectrum.Peaks{28: 0.2, 40: 0.012, 14: 0.014, 36: 0.012 * 0.003378}),
			0.8, diagnosis.SeverityWarning, "",
		},
		{"vent nitrogen", N2VentResidue, peaks(spectrum.Peaks{28: 0.5, 14: 0.036}), 0.7, diagnosis.SeverityInfo, ""},
		{"cooling water at 22 mbar", CoolingWaterLeak, testsupport.CoolingWater(), 1, diagnosis.SeverityCritical, ""},
		{
			"cooling water without pressure", CoolingWaterLeak,
			peaks(spectrum.Peaks{18: 1.0, 17: 0.23, 28: 0.02}),
			0.6, diagnosis.SeverityWarning, "",
		},
		{"unbaked water", WaterOutgassing, testsupport.UnbakedWater(), 0.8, diagnosis.SeverityWarning, ""},
		{"hydrogen background", HydrogenDominant, testsupport.CleanBakeout(), 0.9, diagnosis.SeverityInfo, ""},
		{"hydrogen after bakeout", HydrogenDominant, testsupport.CleanBakeout().WithBaked(true), 1, diagnosis.SeverityInfo, ""},
		{"mineral oil", OilBackstreaming, testsupport.MineralOil(), 1, diagnosis.SeverityCritical, ""},
		{"pfpe", PFPEContamination, testsupport.PFPE(), 0.9, diagnosis.SeverityCritical, ""},
		{
			"silicone three fragments", SiliconeContamination,
			peaks(spectrum.Peaks{73: 0.05, 147: 0.02, 207: 0.01}),
			0.7, diagnosis.SeverityWarning, "",
		},
		{
			"silicone two fragments", SiliconeContamination,
			peaks(spectrum.Peaks{73: 0.05, 147: 0.02}),
			0.5, diagnosis.SeverityInfo, "",
		},
		{"acetone", SolventAcetone, peaks(spectrum.Peaks{58: 0.03, 43: 0.1, 15: 0.03}), 0.6, diagnosis.SeverityWarning, ""},
		{
			"isopropanol", SolventAlcohol,
			peaks(spectrum.Peaks{45: 0.1, 43: 0.02, 27: 0.015, 59: 0.004}),
			0.65, diagnosis.SeverityWarning, VariantIsopropanol,
		},
		{
			"ethanol", SolventAlcohol,
			peaks(spectrum.Peaks{31: 0.1, 45: 0.05, 46: 0.02}),
			0.55, diagnosis.SeverityWarning, VariantEthanol,
		},
		{
			"methanol", SolventAlcohol,
			peaks(spectrum.Peaks{31: 0.1, 32: 0.07, 29: 0.045}),
			0.55, diagnosis.SeverityWarning, VariantMethanol,
		},
		{
			"trichloroethylene", ChlorinatedSolvent,
			peaks(spectrum.Peaks{35: 0.1, 37: 0.032, 130: 0.02, 132: 0.02}),
			0.6, diagnosis.SeverityWarning, "",
		},
		{"mass 28 from air", Mass28Attribution, testsupport.AirLeak(), 0.55, diagnosis.SeverityInfo, VariantN2Dominant},
		{"mass 28 from CO", Mass28Attribution, peaks(spectrum.Peaks{28: 0.3, 12: 0.0135}), 0.55, diagnosis.SeverityInfo, VariantCODominant},
		{
			"mass 28 mixture", Mass28Attribution,
			peaks(spectrum.Peaks{28: 0.3, 14: 0.0108, 12: 0.00675}),
			0.7, diagnosis.SeverityInfo, VariantMixture,
		},
		{
			"co2", CO2Elevated,
			peaks(spectrum.Peaks{44: 0.1, 22: 0.0015, 45: 0.00119, 16: 0.01}),
			0.8, diagnosis.SeverityWarning, "",
		},
		{"atmospheric argon", ArgonIsotope, testsupport.AirLeakWithArgon36(), 0.7, diagnosis.SeverityInfo, VariantAtmospheric},
		{
			"process argon", ArgonIsotope,
			peaks(spectrum.Peaks{40: 1.0, 36: 0.003378, 38: 0.000635}),
			0.7, diagnosis.SeverityInfo, VariantProcess,
		},
		{"helium", HeliumTrace, peaks(spectrum.Peaks{4: 0.01, 2: 0.1}), 0.55, diagnosis.SeverityWarning, ""},
		{
			"methane", MethanePresent,
			peaks(spectrum.Peaks{16: 0.1, 15: 0.085, 13: 0.008, 12: 0.003}),
			0.6, diagnosis.SeverityInfo, "",
		},
		{"ammonia", AmmoniaPresent, peaks(spectrum.Peaks{17: 0.1, 16: 0.08, 15: 0.0075}), 0.7, diagnosis.SeverityWarning, ""},
		{"esd ions", ESDArtifact, peaks(spectrum.Peaks{19: 0.01, 16: 0.05, 35: 0.005, 2: 1}), 0.8, diagnosis.SeverityInfo, ""},
		{
			"sf6", SF6Present,
			peaks(spectrum.Peaks{127: 0.1, 89: 0.025, 108: 0.01, 70: 0.008, 51: 0.01}),
			0.8, diagnosis.SeverityWarning, "",
		},
		{"so2", SulfurCompounds, peaks(spectrum.Peaks{64: 0.1, 48: 0.05, 66: 0.00443}), 0.6, diagnosis.SeverityWarning, VariantSO2},
		{"h2s", SulfurCompounds, peaks(spectrum.Peaks{34: 0.1, 33: 0.045, 32: 0.04}), 0.4, diagnosis.SeverityInfo, VariantH2S},
		{
			"unknown organics", UnidentifiedOrganics,
			peaks(spectrum.Peaks{2: 0.5, 50: 0.02, 60: 0.02, 65: 0.02, 78: 0.02, 91: 0.02}),
			0.6, diagnosis.SeverityWarning, "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.detect(tc.in)
			if r == nil {
				t.Fatal("expected a result")
			}
			if err := diagnosis.Validate(r); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if r.Confidence != tc.confidence {
				t.Fatalf("confidence = %v, want %v", r.Confidence, tc.confidence)
			}
			if r.Severity != tc.severity {
				t.Fatalf("severity = %s, want %s", r.Severity, tc.severity)
			}
			if r.Variant != tc.variant {
				t.Fatalf("variant = %q, want %q", r.Variant, tc.variant)
			}
		})
	}
}

func TestRulesStaySilent(t *testing.T) {
	cases := []struct {
		name   string
		detect diagnosis.Detector
		in     spectrum.Input
	}{
		{"air leak outside N2/O2 window", AirLeak, peaks(spectrum.Peaks{28: 0.5, 32: 0.01, 40: 0.02})},
		{"o2 depleted needs argon", AirLeakO2Depleted, peaks(spectrum.Peaks{28: 0.2, 14: 0.014})},
		{"o2 depleted ignores normal air", AirLeakO2Depleted, testsupport.AirLeakWithArgon36()},
		{"vent residue with air", N2VentResidue, testsupport.AirLeak()},
		{"cooling water below fraction", CoolingWaterLeak, testsupport.UnbakedWater()},
		{"water damped by bakeout", WaterOutgassing, testsupport.UnbakedWater().WithBaked(true)},
		{"hydrogen not dominant", HydrogenDominant, testsupport.UnbakedWater()},
		{"oil suppressed by pfpe", OilBackstreaming, testsupport.PFPE()},
		{"pfpe suppressed by oil", PFPEContamination, testsupport.MineralOil()},
		{"alcohol rejects CF+", SolventAlcohol, testsupport.PFPE()},
		{"acetone needs acetyl peak", SolventAcetone, peaks(spectrum.Peaks{58: 0.05, 43: 0.01})},
		{"chlorine off isotope ratio", ChlorinatedSolvent, peaks(spectrum.Peaks{35: 0.1, 37: 0.1})},
		{"helium behind HD", HeliumTrace, peaks(spectrum.Peaks{3: 0.02, 4: 0.01})},
		{"methane wrong pattern", MethanePresent, peaks(spectrum.Peaks{16: 0.1, 15: 0.01})},
		{"ammonia is water fragment", AmmoniaPresent, peaks(spectrum.Peaks{18: 1, 17: 0.23, 16: 0.02})},
		{"sulfur 34 from oxygen", SulfurCompounds, peaks(spectrum.Peaks{32: 1.0, 34: 0.004, 33: 0.001})},
		{"organics explained by oil", UnidentifiedOrganics, testsupport.MineralOil()},
		{"organics explained by pfpe", UnidentifiedOrganics, testsupport.PFPE()},
		{"organics explained by sf6", UnidentifiedOrganics, peaks(spectrum.Peaks{127: 0.1, 89: 0.025, 70: 0.008, 51: 0.01})},
		{"organics explained by acetone", UnidentifiedOrganics, peaks(spectrum.Peaks{58: 0.03, 43: 0.1, 15: 0.03})},
		{"argon without 36", ArgonIsotope, testsupport.AirLeak()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if r := tc.detect(tc.in); r != nil {
				t.Fatalf("expected no verdict, got %s %.2f", r.Type, r.Confidence)
			}
		})
	}
}
