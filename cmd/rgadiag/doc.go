// Command rgadiag diagnoses residual-gas analyser spectra from the command
// line.
//
// It loads a normalized peak map from a TOML, JSON, or YAML file, runs every
// enabled detector, and prints the findings with their evidence as a table or
// as machine-readable JSON or YAML. The detectors subcommands describe the
// built-in rule catalog and the config subcommands manage the TOML
// configuration file.
package main
