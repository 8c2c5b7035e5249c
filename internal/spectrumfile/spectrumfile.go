package spectrumfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"rgadiag/internal/services"
	"rgadiag/internal/spectrum"
)

// Format names a supported encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is the on-disk shape of a spectrum file.
type Document struct {
	Label         string         `toml:"label" json:"label" yaml:"label"`
	Baked         bool           `toml:"baked" json:"baked" yaml:"baked"`
	TotalPressure *float64       `toml:"total_pressure" json:"total_pressure" yaml:"total_pressure"`
	Peaks         map[string]any `toml:"peaks" json:"peaks" yaml:"peaks"`
}

// FormatFromPath infers the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", services.Wrap(services.ErrInput, "spectrumfile", "detect format",
			fmt.Sprintf("unsupported extension %q (use .toml, .json, .yaml)", filepath.Ext(path)), nil)
	}
}

// Load reads and decodes the spectrum at path.
func Load(path string) (spectrum.Input, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return spectrum.Input{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return spectrum.Input{}, services.Wrap(services.ErrNotFound, "spectrumfile", "read", path, err)
		}
		return spectrum.Input{}, services.Wrap(services.ErrInput, "spectrumfile", "read", path, err)
	}
	in, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return spectrum.Input{}, err
	}
	if in.Metadata.Label == "" {
		in.Metadata.Label = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return in, nil
}

// Decode parses one document in the given format.
func Decode(r io.Reader, format Format) (spectrum.Input, error) {
	var doc Document
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	default:
		return spectrum.Input{}, services.Wrap(services.ErrInput, "spectrumfile", "decode",
			fmt.Sprintf("unsupported format %q", format), nil)
	}
	if err != nil {
		return spectrum.Input{}, services.Wrap(services.ErrInput, "spectrumfile", "decode",
			fmt.Sprintf("parse %s document", format), err)
	}
	return doc.Input()
}

// Input converts the document into detector input.
func (d Document) Input() (spectrum.Input, error) {
	if len(d.Peaks) == 0 {
		return spectrum.Input{}, services.Wrap(services.ErrInput, "spectrumfile", "convert", "peaks table is empty", nil)
	}
	keys := make([]string, 0, len(d.Peaks))
	for k := range d.Peaks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	peaks := make(spectrum.Peaks, len(d.Peaks))
	for _, key := range keys {
		mass, err := parseMass(key)
		if err != nil {
			return spectrum.Input{}, err
		}
		value, err := parseIntensity(key, d.Peaks[key])
		if err != nil {
			return spectrum.Input{}, err
		}
		if _, dup := peaks[mass]; dup {
			return spectrum.Input{}, services.Wrap(services.ErrInput, "spectrumfile", "convert",
				fmt.Sprintf("mass %d listed twice", mass), nil)
		}
		peaks[mass] = value
	}

	in := spectrum.NewInput(peaks).WithBaked(d.Baked)
	in.Metadata.Label = strings.TrimSpace(d.Label)
	if d.TotalPressure != nil {
		in = in.WithPressure(*d.TotalPressure)
	}
	return in, nil
}

func parseMass(key string) (int, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(key)), "m")
	mass, err := strconv.Atoi(trimmed)
	if err != nil || mass <= 0 {
		return 0, services.Wrap(services.ErrInput, "spectrumfile", "convert",
			fmt.Sprintf("peak key %q is not a positive integer mass", key), err)
	}
	return mass, nil
}

func parseIntensity(key string, raw any) (float64, error) {
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint64:
		v = float64(n)
	default:
		return 0, services.Wrap(services.ErrInput, "spectrumfile", "convert",
			fmt.Sprintf("peak %q has non-numeric intensity %v", key, raw), nil)
	}
	if math.IsNaN(v) {
		return 0, services.Wrap(services.ErrInput, "spectrumfile", "convert",
			fmt.Sprintf("peak %q intensity is NaN", key), nil)
	}
	return v, nil
}
