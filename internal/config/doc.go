// Package config loads, normalizes, and validates rgadiag configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the RGADIAG_LANG environment
// override for the output language. The Config type centralizes every knob the
// CLI needs: engine concurrency and disabled detectors, output language and
// format, logging, and spectrum normalization.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical formats, and clear validation errors.
package config
