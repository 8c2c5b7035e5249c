// Package diagnosis defines the evidence and result model shared by every
// detector rule, plus the pure-function contract detectors implement.
//
// A Detector reads a spectrum.Input and returns either one *Result or nil
// ("no verdict"). Detectors build results through a Builder:
//
//   - Support appends a supporting Evidence item and adds a fixed weight
//   - Against records a failed check without touching confidence
//   - Scale applies a fixed metadata multiplier (bakeout damping or boost)
//   - Finish clamps confidence to [0,1] and enforces MinConfidence and the
//     detector's minimum count of independent supporting criteria
//
// Evidence carries a language-neutral message key plus parameters; rendering
// into operator-facing text is left to internal/i18n. Severity derivation is a
// separate SeverityRule over the final confidence and evidence list so it can
// be tested independently of the scoring.
package diagnosis
