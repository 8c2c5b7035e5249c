package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	reportlang "rgadiag/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEngine(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Spectrum.ReferenceMass < 1 {
		return errors.New("spectrum.reference_mass must be a positive integer mass")
	}
	return nil
}

func (c *Config) validateEngine() error {
	if c.Engine.Workers < 0 {
		return errors.New("engine.workers must be 0 (automatic) or positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if _, err := language.Parse(c.Output.Language); err != nil {
		return fmt.Errorf("output.language %q is not a valid language tag: %w", c.Output.Language, err)
	}
	if !reportlang.Supported(c.Output.Language) {
		return fmt.Errorf("output.language %q is not available; supported: %s", c.Output.Language, strings.Join(reportlang.Codes(), ", "))
	}
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be one of table, json, yaml (got %q)", c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be one of auto, always, never (got %q)", c.Output.Color)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}
