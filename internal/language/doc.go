// Package language normalizes the language codes accepted for report output.
//
// Users may configure a two-letter code, a three-letter ISO 639-2 code, a
// POSIX-style locale such as de_DE.UTF-8, or a plain word such as "deutsch".
// All of them collapse to the ISO 639-1 codes the message catalogs are keyed
// by.
package language
