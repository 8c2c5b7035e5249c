package config

import (
	"fmt"
	"os"
	"strings"

	reportlang "rgadiag/internal/language"
)

func (c *Config) normalize() error {
	c.normalizeEngine()
	c.normalizeOutput()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	if c.Spectrum.ReferenceMass == 0 {
		c.Spectrum.ReferenceMass = defaultReferenceMass
	}
	return nil
}

func (c *Config) normalizeEngine() {
	if len(c.Engine.DisabledDetectors) == 0 {
		return
	}
	seen := make(map[string]struct{}, len(c.Engine.DisabledDetectors))
	out := make([]string, 0, len(c.Engine.DisabledDetectors))
	for _, name := range c.Engine.DisabledDetectors {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	c.Engine.DisabledDetectors = out
}

func (c *Config) normalizeOutput() {
	if value, ok := os.LookupEnv(LanguageEnv); ok && strings.TrimSpace(value) != "" {
		c.Output.Language = value
	}
	c.Output.Language = strings.TrimSpace(c.Output.Language)
	if c.Output.Language == "" {
		c.Output.Language = defaultLanguage
	}
	if iso := reportlang.ToISO2(c.Output.Language); iso != "" {
		c.Output.Language = iso
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColorMode
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
