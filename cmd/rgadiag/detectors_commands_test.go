package main

import (
	"encoding/json"
	"testing"

	"rgadiag/internal/services"
	"rgadiag/internal/testsupport"
)

func TestDetectorsList(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"detectors", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("detectors list: %v", err)
	}
	requireContains(t, out, "22 detectors")
	requireContains(t, out, "AIR_LEAK")
	requireContains(t, out, "Cooling water leak")

	out, _, err = runCLI(t, []string{"detectors", "list", "--category", "isotope", "--format", "json"}, env.configPath)
	if err != nil {
		t.Fatalf("detectors list --category: %v", err)
	}
	var views []detectorView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(views) != 1 || views[0].Type != "ARGON_ISOTOPE_CONFIRMED" {
		t.Fatalf("isotope detectors = %+v", views)
	}

	_, _, err = runCLI(t, []string{"detectors", "list", "--category", "plasma"}, env.configPath)
	if services.ExitCode(err) != services.ExitInput {
		t.Fatalf("unknown category exit code = %d (%v)", services.ExitCode(err), err)
	}
}

func TestDetectorsListSkipsDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDisabledDetectors("HELIUM_TRACE", "ESD_ARTIFACT"))

	out, _, err := runCLI(t, []string{"detectors", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("detectors list: %v", err)
	}
	requireContains(t, out, "20 detectors")
	requireNotContains(t, out, "HELIUM_TRACE")
}

func TestDetectorsShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"detectors", "show", "air_leak"}, env.configPath)
	if err != nil {
		t.Fatalf("detectors show: %v", err)
	}
	requireContains(t, out, "Air leak (AIR_LEAK)")
	requireContains(t, out, "Method confidence: high")
	requireContains(t, out, "Sources:")

	out, _, err = runCLI(t, []string{"detectors", "show", "--lang", "de", "COOLING_WATER_LEAK"}, env.configPath)
	if err != nil {
		t.Fatalf("detectors show --lang de: %v", err)
	}
	requireContains(t, out, "Kühlwasserleck")
	requireContains(t, out, "Kategorie: Lecks")

	_, _, err = runCLI(t, []string{"detectors", "show", "FLUX_CAPACITOR"}, env.configPath)
	if services.ExitCode(err) != services.ExitInput {
		t.Fatalf("unknown detector exit code = %d (%v)", services.ExitCode(err), err)
	}
}

func TestDetectorsCategories(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"detectors", "categories", "-o", "yaml"}, env.configPath)
	if err != nil {
		t.Fatalf("detectors categories: %v", err)
	}
	requireContains(t, out, "category: leak")
	requireContains(t, out, "- COOLING_WATER_LEAK")

	out, _, err = runCLI(t, []string{"detectors", "categories"}, env.configPath)
	if err != nil {
		t.Fatalf("detectors categories table: %v", err)
	}
	requireContains(t, out, "Contamination")
}
