package testsupport

import "rgadiag/internal/spectrum"

// AirLeak is a normalized spectrum of an atmospheric leak without the
// 36Ar isotope peak.
func AirLeak() spectrum.Input {
	return spectrum.NewInput(spectrum.Peaks{28: 0.21, 32: 0.055, 40: 0.012, 20: 0.0015, 14: 0.015})
}

// AirLeakWithArgon36 adds the natural 36Ar peak to AirLeak.
func AirLeakWithArgon36() spectrum.Input {
	in := AirLeak()
	in.Peaks[36] = 0.012 * 0.00338
	return in
}

// CleanBakeout is a hydrogen dominated UHV spectrum. The baked flag is not
// set.
func CleanBakeout() spectrum.Input {
	return spectrum.NewInput(spectrum.Peaks{2: 1.0, 18: 0.01, 28: 0.02, 44: 0.002})
}

// CoolingWater is a chamber flooded by a cooling-water leak at 22 mbar.
func CoolingWater() spectrum.Input {
	return spectrum.NewInput(spectrum.Peaks{18: 1.0, 17: 0.23, 28: 0.02}).WithPressure(22)
}

// UnbakedWater is water outgassing from an unbaked chamber.
func UnbakedWater() spectrum.Input {
	return spectrum.NewInput(spectrum.Peaks{18: 1.0, 2: 0.5, 17: 0.23, 28: 0.2})
}

// PFPE is perfluoropolyether contamination over a hydrogen background.
func PFPE() spectrum.Input {
	return spectrum.NewInput(spectrum.Peaks{2: 1.0, 69: 0.2, 31: 0.04, 50: 0.02, 119: 0.03, 100: 0.01})
}

// MineralOil is hydrocarbon pump oil backstreaming.
func MineralOil() spectrum.Input {
	return spectrum.NewInput(spectrum.Peaks{2: 0.05, 41: 0.05, 43: 0.1, 55: 0.04, 57: 0.07, 69: 0.02, 71: 0.03, 85: 0.01})
}
