// Package spectrum models the normalized peak spectrum every detector reads.
//
// A spectrum is a sparse mapping from integer mass-to-charge ratio to relative
// intensity, scaled so the reference peak (conventionally H2 at mass 2) is 1.0.
// Absent masses read as zero. Malformed intensities (negative, NaN, infinite)
// are clamped to zero at lookup time so upstream parsing mistakes never leak
// into detector arithmetic.
//
// Input bundles the spectrum with the optional total pressure and run metadata
// (bakeout state) that some detectors condition on. Callers must treat Input as
// read-only for the duration of a diagnostic pass; the engine clones it before
// fanning out.
package spectrum
