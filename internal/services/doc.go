// Package services defines shared utilities consumed by the CLI, the spectrum
// loader, and the diagnostic engine.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and command names for logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent process exit codes.
//
// Use these helpers when wiring new commands so operational behaviour (error
// handling, observability) stays uniform across the tool.
package services
