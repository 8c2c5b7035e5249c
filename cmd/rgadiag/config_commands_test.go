package main

import (
	"os"
	"path/filepath"
	"testing"

	"rgadiag/internal/services"
	"rgadiag/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithLanguage("de"))

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "Report language: German (de)")
	requireContains(t, out, "Enabled detectors: 22")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if services.ExitCode(err) != services.ExitUsage {
		t.Fatalf("existing config exit code = %d (%v)", services.ExitCode(err), err)
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, env.configPath); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateWithoutFileUsesDefaults(t *testing.T) {
	setupCLITestEnv(t)
	t.Chdir(t.TempDir())

	out, _, err := runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "defaults were used")
}

func TestInvalidConfigMapsToConfigurationExitCode(t *testing.T) {
	env := setupCLITestEnv(t)
	bad := testsupport.WriteFile(t, env.dataDir, "bad.toml", "[output]\nformat = \"xml\"\n")

	_, _, err := runCLI(t, []string{"detectors", "list"}, bad)
	if services.ExitCode(err) != services.ExitConfiguration {
		t.Fatalf("invalid config exit code = %d (%v)", services.ExitCode(err), err)
	}

	// config init never loads the broken file.
	target := filepath.Join(env.dataDir, "fresh.toml")
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, bad); err != nil {
		t.Fatalf("config init with broken config: %v", err)
	}
}
