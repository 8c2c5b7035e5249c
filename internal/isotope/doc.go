// Package isotope holds the ratio arithmetic shared by the detector rules.
//
// Ratio guards against empty denominators, InRange applies the inclusive
// acceptance intervals used throughout the catalog, and Compare checks an
// observed isotope-pair ratio against its natural abundance within a relative
// tolerance band. The natural-abundance table lives here so several detectors
// can reuse the same confirmation (for example the 36Ar/40Ar check serves both
// the air-leak and argon-confirmation rules).
package isotope
