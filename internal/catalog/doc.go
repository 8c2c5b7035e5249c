// Package catalog is the registry binding each diagnosis type to its detector
// function, display metadata, and validation notes.
//
// A Catalog is built once through a Builder and is immutable afterwards; it is
// passed explicitly to the engine rather than living in a package global, so
// tests and configuration can derive partial catalogs with Without. Lookups of
// unknown identifiers report "not found" and never panic. Validation metadata
// (method confidence, cross-validation notes, sources) exists for transparency
// only and never alters runtime confidence.
package catalog
