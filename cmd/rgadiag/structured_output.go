package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rgadiag/internal/config"
	"rgadiag/internal/services"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML encodes v as a YAML document to the command's stdout.
func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// writeStructured handles the machine-readable formats. It reports false for
// the table format so the caller renders its own view.
func writeStructured(cmd *cobra.Command, format string, v any) (bool, error) {
	switch format {
	case config.FormatJSON:
		return true, writeJSON(cmd, v)
	case config.FormatYAML:
		return true, writeYAML(cmd, v)
	case config.FormatTable:
		return false, nil
	default:
		return true, services.Wrap(services.ErrValidation, "cli", "output",
			fmt.Sprintf("unknown format %q (use table, json, yaml)", format), nil)
	}
}
