package diagnosis

import "rgadiag/internal/spectrum"

// MinConfidence is the shared floor below which no result is reported.
const MinConfidence = 0.3

// Type identifies one diagnosis.
type Type string

const (
	TypeAirLeak               Type = "AIR_LEAK"
	TypeAirLeakO2Depleted     Type = "AIR_LEAK_O2_DEPLETED"
	TypeN2VentResidue         Type = "N2_VENT_RESIDUE"
	TypeWaterOutgassing       Type = "WATER_OUTGASSING"
	TypeHydrogenDominant      Type = "HYDROGEN_DOMINANT"
	TypeCoolingWaterLeak      Type = "COOLING_WATER_LEAK"
	TypeOilBackstreaming      Type = "OIL_BACKSTREAMING"
	TypePFPEContamination     Type = "PFPE_CONTAMINATION"
	TypeSiliconeContamination Type = "SILICONE_CONTAMINATION"
	TypeSolventAcetone        Type = "SOLVENT_ACETONE"
	TypeSolventAlcohol        Type = "SOLVENT_ALCOHOL"
	TypeChlorinatedSolvent    Type = "CHLORINATED_SOLVENT"
	TypeMass28Attribution     Type = "MASS28_ATTRIBUTION"
	TypeCO2Elevated           Type = "CO2_ELEVATED"
	TypeArgonIsotope          Type = "ARGON_ISOTOPE_CONFIRMED"
	TypeHeliumTrace           Type = "HELIUM_TRACE"
	TypeMethanePresent        Type = "METHANE_PRESENT"
	TypeAmmoniaPresent        Type = "AMMONIA_PRESENT"
	TypeESDArtifact           Type = "ESD_ARTIFACT"
	TypeSF6Present            Type = "SF6_PRESENT"
	TypeSulfurCompounds       Type = "SULFUR_COMPOUNDS"
	TypeUnidentifiedOrganics  Type = "UNIDENTIFIED_ORGANICS"
)

// Severity classifies how urgently a fired diagnosis needs attention.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank orders severities; unknown values rank below info.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// Result is one detector's verdict.
type Result struct {
	Type Type `json:"type" yaml:"type"`
	// Variant selects a sub-outcome for detectors that discriminate between
	// several explanations (for example n2_dominant vs co_dominant).
	Variant        string     `json:"variant,omitempty" yaml:"variant,omitempty"`
	Confidence     float64    `json:"confidence" yaml:"confidence"`
	Severity       Severity   `json:"severity" yaml:"severity"`
	Evidence       []Evidence `json:"evidence" yaml:"evidence"`
	AffectedMasses []int      `json:"affected_masses" yaml:"affected_masses"`
}

// Detector is the pure rule contract. A nil result means no verdict.
type Detector func(in spectrum.Input) *Result
