// Package spectrumfile loads normalized peak maps from TOML, JSON, or YAML
// fixture files.
//
// A document carries an optional label, an optional bakeout flag, an
// optional total pressure in mbar, and a peaks table keyed by integer mass
// ("28" or "m28"). Instrument exports are out of scope; callers convert them
// to this shape first.
package spectrumfile
