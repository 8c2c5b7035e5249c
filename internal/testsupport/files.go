package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name inside dir, creating parents as needed,
// and returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// AirLeakTOML is the air leak fixture as a spectrum file.
const AirLeakTOML = `label = "chamber A after vent"
total_pressure = 2.5e-6

[peaks]
14 = 0.015
20 = 0.0015
28 = 0.21
32 = 0.055
40 = 0.012
`

// AnnotatedTOML is a hand-written spectrum file with comments, a quoted
// mass key and an "m" prefixed one.
const AnnotatedTOML = `label = "chamber A after vent"   # optional, defaults to the file name
baked = false                     # optional
total_pressure = 1.2e-7           # optional, mbar
[peaks]
"2" = 1.0                          # mass keys, optional "m" prefix
m28 = 0.45
`

// CleanBakeoutYAML is the clean bakeout fixture as a spectrum file.
const CleanBakeoutYAML = `label: after bakeout
baked: true
peaks:
  "2": 1.0
  "18": 0.01
  "28": 0.02
  "44": 0.002
`

// CoolingWaterJSON is the cooling water fixture as a spectrum file.
const CoolingWaterJSON = `{
  "label": "flooded chamber",
  "total_pressure": 22,
  "peaks": {"17": 0.23, "18": 1.0, "28": 0.02}
}`
