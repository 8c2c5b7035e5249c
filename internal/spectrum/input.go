package spectrum

import "math"

// Metadata carries optional run context supplied by the caller.
type Metadata struct {
	// Baked is true when the system is known to have been thermally baked.
	Baked bool `json:"baked" yaml:"baked" toml:"baked"`
	// Label is a free-form run label used only for display.
	Label string `json:"label,omitempty" yaml:"label,omitempty" toml:"label"`
}

// Input is the unit of work handed to every detector.
type Input struct {
	Peaks         Peaks    `json:"peaks" yaml:"peaks"`
	TotalPressure *float64 `json:"total_pressure_mbar,omitempty" yaml:"total_pressure_mbar,omitempty"`
	Metadata      Metadata `json:"metadata" yaml:"metadata"`
}

// NewInput wraps peaks with no pressure and empty metadata.
func NewInput(peaks Peaks) Input {
	return Input{Peaks: peaks}
}

// WithPressure returns a copy of in carrying the given total pressure (mbar).
func (in Input) WithPressure(mbar float64) Input {
	v := mbar
	in.TotalPressure = &v
	return in
}

// WithBaked returns a copy of in with the bakeout flag set.
func (in Input) WithBaked(baked bool) Input {
	in.Metadata.Baked = baked
	return in
}

// Pressure returns the total pressure when present and physically valid.
func (in Input) Pressure() (float64, bool) {
	if in.TotalPressure == nil {
		return 0, false
	}
	v := *in.TotalPressure
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// Clone returns a deep copy safe to share across goroutines.
func (in Input) Clone() Input {
	out := Input{Peaks: in.Peaks.Clone(), Metadata: in.Metadata}
	if in.TotalPressure != nil {
		v := *in.TotalPressure
		out.TotalPressure = &v
	}
	return out
}
