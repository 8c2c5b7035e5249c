// Package logging assembles structured slog loggers and formatting helpers used
// across rgadiag.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so commands can tag log lines
// with run IDs and command names. Console output defaults to stderr so report
// output on stdout stays machine readable. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
package logging
