package engine

import (
	"rgadiag/internal/diagnosis"
	"rgadiag/internal/spectrum"
)

// Status is the worst severity present, or clean.
type Status string

const (
	StatusClean    Status = "clean"
	StatusInfo     Status = "info"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// State is the coarse system-state label.
type State string

const (
	StateWaterIngress State = "water_ingress"
	StateAirLeak      State = "air_leak"
	StateContaminated State = "contaminated"
	StateUnbaked      State = "unbaked"
	StateBaked        State = "baked"
	StateUnknown      State = "unknown"
)

// Summary aggregates one run.
type Summary struct {
	Critical int              `json:"critical" yaml:"critical"`
	Warning  int              `json:"warning" yaml:"warning"`
	Info     int              `json:"info" yaml:"info"`
	Status   Status           `json:"status" yaml:"status"`
	State    State            `json:"state" yaml:"state"`
	Types    []diagnosis.Type `json:"types" yaml:"types"`
}

type stateRule struct {
	state   State
	matches func(fired map[diagnosis.Type]bool, meta spectrum.Metadata) bool
}

func anyOf(types ...diagnosis.Type) func(map[diagnosis.Type]bool, spectrum.Metadata) bool {
	return func(fired map[diagnosis.Type]bool, _ spectrum.Metadata) bool {
		for _, t := range types {
			if fired[t] {
				return true
			}
		}
		return false
	}
}

// First match wins.
var stateRules = []stateRule{
	{StateWaterIngress, anyOf(diagnosis.TypeCoolingWaterLeak)},
	{StateAirLeak, anyOf(diagnosis.TypeAirLeak, diagnosis.TypeAirLeakO2Depleted)},
	{StateContaminated, anyOf(
		diagnosis.TypeOilBackstreaming,
		diagnosis.TypePFPEContamination,
		diagnosis.TypeSiliconeContamination,
		diagnosis.TypeSolventAcetone,
		diagnosis.TypeSolventAlcohol,
		diagnosis.TypeChlorinatedSolvent,
		diagnosis.TypeSulfurCompounds,
		diagnosis.TypeUnidentifiedOrganics,
	)},
	{StateUnbaked, func(fired map[diagnosis.Type]bool, meta spectrum.Metadata) bool {
		return fired[diagnosis.TypeWaterOutgassing] && !meta.Baked
	}},
	{StateBaked, anyOf(diagnosis.TypeHydrogenDominant)},
}

// Summarize counts severities and derives status and state from results.
func Summarize(results []diagnosis.Result, meta spectrum.Metadata) Summary {
	s := Summary{Status: StatusClean, State: StateUnknown, Types: make([]diagnosis.Type, 0, len(results))}
	fired := make(map[diagnosis.Type]bool, len(results))
	worst := diagnosis.Severity("")
	for _, r := range results {
		switch r.Severity {
		case diagnosis.SeverityCritical:
			s.Critical++
		case diagnosis.SeverityWarning:
			s.Warning++
		case diagnosis.SeverityInfo:
			s.Info++
		}
		worst = diagnosis.Worst(worst, r.Severity)
		fired[r.Type] = true
		s.Types = append(s.Types, r.Type)
	}
	if worst.Valid() {
		s.Status = Status(worst)
	}
	for _, rule := range stateRules {
		if rule.matches(fired, meta) {
			s.State = rule.state
			break
		}
	}
	return s
}
