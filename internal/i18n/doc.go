// Package i18n renders diagnoses, evidence lines, and report labels in the
// operator's language.
//
// Detectors only emit language-neutral message keys with positional
// parameters. A Renderer resolves those keys through a golang.org/x/text
// message catalog, so numbers follow the locale's conventions (German output
// uses a decimal comma). Keys missing from a translation fall back to
// English, and keys missing from English render as the key itself.
package i18n
