package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"rgadiag/internal/engine"
	"rgadiag/internal/services"
	"rgadiag/internal/testsupport"
)

const unbakedWaterJSON = `{"peaks": {"2": 0.5, "17": 0.23, "18": 1.0, "28": 0.2}}`

func TestDiagnoseTableOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.spectrum(t, "air.toml", testsupport.AirLeakTOML)

	out, _, err := runCLI(t, []string{"diagnose", path}, env.configPath)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	requireContains(t, out, "chamber A after vent")
	requireContains(t, out, "Air leak")
	requireContains(t, out, "critical")
	requireContains(t, out, "N2/O2 ratio (m28/m32)")
	requireContains(t, out, "1 critical, 0 warning, 1 info")
	requireNotContains(t, out, "\x1b[")
}

func TestDiagnoseJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.spectrum(t, "cooling.json", testsupport.CoolingWaterJSON)

	out, _, err := runCLI(t, []string{"diagnose", "--format", "json", path}, env.configPath)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	var got diagnoseOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if _, err := uuid.Parse(got.RunID); err != nil {
		t.Fatalf("run id %q: %v", got.RunID, err)
	}
	if got.Summary.State != engine.StateWaterIngress || got.Summary.Status != engine.StatusCritical {
		t.Fatalf("summary = %+v", got.Summary)
	}
	if len(got.Findings) == 0 || got.Findings[0].Type != "COOLING_WATER_LEAK" {
		t.Fatalf("findings = %+v", got.Findings)
	}
	if got.TotalPressure == nil || *got.TotalPressure != 22 {
		t.Fatalf("pressure = %v", got.TotalPressure)
	}
}

func TestDiagnoseGermanYAML(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.spectrum(t, "bakeout.yaml", testsupport.CleanBakeoutYAML)

	out, _, err := runCLI(t, []string{"diagnose", "--lang", "de", "-o", "yaml", path}, env.configPath)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	var got diagnoseOutput
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, out)
	}
	if got.Language != "de" || !got.Baked {
		t.Fatalf("language=%q baked=%v", got.Language, got.Baked)
	}
	if len(got.Findings) != 1 || got.Findings[0].Name != "Wasserstoff dominiert" {
		t.Fatalf("findings = %+v", got.Findings)
	}
	if got.Summary.State != engine.StateBaked {
		t.Fatalf("state = %s", got.Summary.State)
	}
}

func TestDiagnoseFlagsOverrideFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.spectrum(t, "water.json", unbakedWaterJSON)

	out, _, err := runCLI(t, []string{"diagnose", "-o", "json", path}, env.configPath)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	requireContains(t, out, "WATER_OUTGASSING")

	out, _, err = runCLI(t, []string{"diagnose", "-o", "json", "--baked", path}, env.configPath)
	if err != nil {
		t.Fatalf("diagnose --baked: %v", err)
	}
	requireNotContains(t, out, "WATER_OUTGASSING")

	_, _, err = runCLI(t, []string{"diagnose", "--pressure", "-1", path}, env.configPath)
	if services.ExitCode(err) != services.ExitUsage {
		t.Fatalf("negative pressure exit code = %d (%v)", services.ExitCode(err), err)
	}
}

func TestDiagnoseNormalizesToReferenceMass(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.spectrum(t, "raw.json", `{"peaks": {"2": 0.01, "17": 0.005, "18": 0.02, "28": 0.004}}`)

	out, _, err := runCLI(t, []string{"diagnose", "-o", "json", path}, env.configPath)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	requireNotContains(t, out, "WATER_OUTGASSING")

	out, _, err = runCLI(t, []string{"diagnose", "-o", "json", "--normalize", "--reference-mass", "18", path}, env.configPath)
	if err != nil {
		t.Fatalf("diagnose --normalize: %v", err)
	}
	requireContains(t, out, "WATER_OUTGASSING")
}

func TestDiagnoseNormalizeFlagOverridesConfig(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithNormalization(18))
	path := env.spectrum(t, "raw.json", `{"peaks": {"2": 0.01, "17": 0.005, "18": 0.02, "28": 0.004}}`)

	out, _, err := runCLI(t, []string{"diagnose", "-o", "json", path}, env.configPath)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	requireContains(t, out, "WATER_OUTGASSING")

	out, _, err = runCLI(t, []string{"diagnose", "-o", "json", "--normalize=false", path}, env.configPath)
	if err != nil {
		t.Fatalf("diagnose --normalize=false: %v", err)
	}
	requireNotContains(t, out, "WATER_OUTGASSING")
}

func TestDiagnoseErrorsMapToExitCodes(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"diagnose", filepath.Join(env.dataDir, "missing.toml")}, env.configPath)
	if services.ExitCode(err) != services.ExitInput {
		t.Fatalf("missing file exit code = %d (%v)", services.ExitCode(err), err)
	}

	bad := env.spectrum(t, "bad.json", `{"peaks": {}}`)
	_, _, err = runCLI(t, []string{"diagnose", bad}, env.configPath)
	if services.ExitCode(err) != services.ExitInput {
		t.Fatalf("empty peaks exit code = %d (%v)", services.ExitCode(err), err)
	}

	good := env.spectrum(t, "air.toml", testsupport.AirLeakTOML)
	_, _, err = runCLI(t, []string{"diagnose", "-o", "xml", good}, env.configPath)
	if services.ExitCode(err) != services.ExitUsage {
		t.Fatalf("unknown format exit code = %d (%v)", services.ExitCode(err), err)
	}
}

func TestDiagnoseHonoursDisabledDetectors(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDisabledDetectors("air_leak"))
	path := env.spectrum(t, "air.toml", testsupport.AirLeakTOML)

	out, _, err := runCLI(t, []string{"diagnose", "-o", "json", path}, env.configPath)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	requireNotContains(t, out, `"AIR_LEAK"`)
	requireContains(t, out, "MASS28_ATTRIBUTION")

	broken := setupCLITestEnv(t, testsupport.WithDisabledDetectors("NOT_A_DETECTOR"))
	_, _, err = runCLI(t, []string{"diagnose", path}, broken.configPath)
	if services.ExitCode(err) != services.ExitConfiguration {
		t.Fatalf("unknown disabled detector exit code = %d (%v)", services.ExitCode(err), err)
	}
}

func TestDiagnoseWritesRunLog(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Logging.Level = "info"
	configPath := testsupport.WriteConfig(t, env.cfg)
	path := env.spectrum(t, "air.toml", testsupport.AirLeakTOML)

	_, stderr, err := runCLI(t, []string{"diagnose", "-o", "json", path}, configPath)
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	requireContains(t, stderr, "diagnosis finished")

	data, err := os.ReadFile(filepath.Join(env.cfg.Logging.Dir, "rgadiag.log"))
	if err != nil {
		t.Fatalf("read run log: %v", err)
	}
	requireContains(t, string(data), `"event_type":"diagnose_complete"`)
	requireContains(t, string(data), `"run_id":`)
}
