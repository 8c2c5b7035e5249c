package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"rgadiag/internal/catalog"
	"rgadiag/internal/config"
	"rgadiag/internal/detectors"
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/logging"
	"rgadiag/internal/services"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "configuration rejected", err)
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "ensure directories", resolved, err)
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// logger builds the run logger; console lines go to the command's stderr.
// The caller closes the returned log file when the command finishes.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, io.Closer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, closer, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, services.Wrap(services.ErrConfiguration, "logging", "init", "create logger", err)
	}
	return logger, closer, nil
}

// catalog returns the built-in catalog minus the configured disabled detectors.
func (c *commandContext) catalog() (*catalog.Catalog, error) {
	cat, err := detectors.NewCatalog()
	if err != nil {
		return nil, services.Wrap(services.ErrInternal, "detectors", "build catalog", "built-in catalog is inconsistent", err)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if len(cfg.Engine.DisabledDetectors) == 0 {
		return cat, nil
	}
	disabled := make([]diagnosis.Type, 0, len(cfg.Engine.DisabledDetectors))
	for _, name := range cfg.Engine.DisabledDetectors {
		t := diagnosis.Type(name)
		if _, ok := cat.Lookup(t); !ok {
			return nil, services.Wrap(services.ErrConfiguration, "config", "disable detectors",
				fmt.Sprintf("engine.disabled_detectors names unknown detector %q", name), nil)
		}
		disabled = append(disabled, t)
	}
	return cat.Without(disabled...), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// useColor resolves the configured color mode against the output stream.
func useColor(cmd *cobra.Command, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return shouldColorize(cmd.OutOrStdout())
}
