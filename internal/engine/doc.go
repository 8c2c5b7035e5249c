// Package engine runs every catalog detector against one spectrum and folds
// the verdicts into a Report.
//
// Detectors run concurrently on a bounded errgroup, but results are written
// into an index-addressed slice so the output order always follows the
// catalog. A detector that panics or returns a result breaking the evidence
// invariants loses only its own verdict; the failure is logged and recorded
// in Report.Faults. Summarize derives severity counts, the overall status,
// and the system-state label from the surviving results.
package engine
