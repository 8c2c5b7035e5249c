// Package detectors holds the diagnostic rules of the engine, one pure function
// per diagnosis type, and NewCatalog, which registers them with their display
// and validation metadata.
//
// Every rule reads a spectrum.Input and either returns nil or a result built
// through diagnosis.Builder. Rules are grouped by category: leaks.go,
// outgassing.go, organics.go, solvents.go, gases.go and artifacts.go. Rules
// that could explain the same peaks share the signature helpers in
// signatures.go so exclusive pairs stay consistent.
package detectors
