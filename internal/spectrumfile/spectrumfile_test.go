package spectrumfile_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rgadiag/internal/services"
	"rgadiag/internal/spectrum"
	"rgadiag/internal/spectrumfile"
	"rgadiag/internal/testsupport"
)

func TestLoadAllFormats(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
		want    spectrum.Input
	}{
		{
			name:    "air.toml",
			content: testsupport.AirLeakTOML,
			want: func() spectrum.Input {
				in := testsupport.AirLeak().WithPressure(2.5e-6)
				in.Metadata.Label = "chamber A after vent"
				return in
			}(),
		},
		{
			name:    "bakeout.yml",
			content: testsupport.CleanBakeoutYAML,
			want: func() spectrum.Input {
				in := testsupport.CleanBakeout().WithBaked(true)
				in.Metadata.Label = "after bakeout"
				return in
			}(),
		},
		{
			name:    "cooling.json",
			content: testsupport.CoolingWaterJSON,
			want: func() spectrum.Input {
				in := testsupport.CoolingWater()
				in.Metadata.Label = "flooded chamber"
				return in
			}(),
		},
		{
			name:    "annotated.toml",
			content: testsupport.AnnotatedTOML,
			want: func() spectrum.Input {
				in := spectrum.NewInput(spectrum.Peaks{2: 1.0, 28: 0.45}).WithPressure(1.2e-7)
				in.Metadata.Label = "chamber A after vent"
				return in
			}(),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := testsupport.WriteFile(t, dir, tc.name, tc.content)
			got, err := spectrumfile.Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("decoded input mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadDefaultsLabelToFileName(t *testing.T) {
	path := testsupport.WriteFile(t, t.TempDir(), "run-42.json", `{"peaks": {"m2": 1, "m18": 0.4}}`)
	got, err := spectrumfile.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Metadata.Label != "run-42" {
		t.Fatalf("label = %q", got.Metadata.Label)
	}
	if diff := cmp.Diff(spectrum.Peaks{2: 1, 18: 0.4}, got.Peaks); diff != "" {
		t.Fatalf("peaks mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsBadDocuments(t *testing.T) {
	cases := map[string]struct {
		format  spectrumfile.Format
		content string
		hint    string
	}{
		"empty peaks":    {spectrumfile.FormatJSON, `{"peaks": {}}`, "peaks table is empty"},
		"bad mass":       {spectrumfile.FormatJSON, `{"peaks": {"abc": 1}}`, "not a positive integer mass"},
		"zero mass":      {spectrumfile.FormatJSON, `{"peaks": {"0": 1}}`, "not a positive integer mass"},
		"duplicate mass": {spectrumfile.FormatJSON, `{"peaks": {"18": 1, "m18": 2}}`, "listed twice"},
		"string value":   {spectrumfile.FormatYAML, "peaks:\n  \"18\": high\n", "non-numeric"},
		"unknown field":  {spectrumfile.FormatTOML, "pressure = 1\n[peaks]\n2 = 1.0\n", "parse toml"},
		"nan value":      {spectrumfile.FormatTOML, "[peaks]\n2 = nan\n", "NaN"},
		"bad format":     {spectrumfile.Format("csv"), "", "unsupported format"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := spectrumfile.Decode(strings.NewReader(tc.content), tc.format)
			if !errors.Is(err, services.ErrInput) {
				t.Fatalf("expected ErrInput, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.hint) {
				t.Fatalf("error %q does not mention %q", err, tc.hint)
			}
		})
	}
}

func TestLoadReportsMissingFileAndExtension(t *testing.T) {
	dir := t.TempDir()
	if _, err := spectrumfile.Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	path := testsupport.WriteFile(t, dir, "spectrum.csv", "2,1.0\n")
	if _, err := spectrumfile.Load(path); !errors.Is(err, services.ErrInput) {
		t.Fatalf("expected ErrInput for unknown extension, got %v", err)
	}
}

func TestNegativeIntensitiesAreKeptForClamping(t *testing.T) {
	in, err := spectrumfile.Decode(strings.NewReader(`{"peaks": {"2": 1, "18": -0.5}}`), spectrumfile.FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if in.Peaks.At(18) != 0 {
		t.Fatalf("negative intensity must read as missing, got %v", in.Peaks.At(18))
	}
}
