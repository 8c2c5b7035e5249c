package detectors

import (
	"rgadiag/internal/catalog"
	"rgadiag/internal/diagnosis"
)

// NewCatalog registers every built-in rule in evaluation order.
func NewCatalog() (*catalog.Catalog, error) {
	b := catalog.NewBuilder()
	for _, e := range builtin() {
		if err := b.Register(e); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func builtin() []catalog.Entry {
	return []catalog.Entry{
		{
			Type:    diagnosis.TypeAirLeak,
			Detect:  AirLeak,
			Display: catalog.Display{Icon: "🌬", Priority: 1, Category: catalog.CategoryLeak},
			Validation: catalog.Validation{
				Method:          catalog.MethodHigh,
				CrossValidation: "N2/O2 window checked against dry air composition (78.08 % N2, 20.95 % O2) with O2 fragmentation",
				FixesApplied:    []string{"argon ratio reads Ar/N2, not Ar/O2"},
				Sources:         []string{"Pfeiffer Vacuum, Mass Spectrometry Handbook", "NIST Chemistry WebBook"},
			},
		},
		{
			Type:    diagnosis.TypeAirLeakO2Depleted,
			Detect:  AirLeakO2Depleted,
			Display: catalog.Display{Icon: "🌬", Priority: 2, Category: catalog.CategoryLeak},
			Validation: catalog.Validation{
				Method:          catalog.MethodMedium,
				CrossValidation: "O2 consumption by hot filaments and getters reported in RGA application notes",
				Sources:         []string{"SRS RGA application note #7"},
			},
		},
		{
			Type:    diagnosis.TypeN2VentResidue,
			Detect:  N2VentResidue,
			Display: catalog.Display{Icon: "🧯", Priority: 3, Category: catalog.CategoryLeak},
			Validation: catalog.Validation{
				Method:  catalog.MethodMedium,
				Sources: []string{"NIST Chemistry WebBook, N2 electron ionization spectrum"},
			},
		},
		{
			Type:    diagnosis.TypeCoolingWaterLeak,
			Detect:  CoolingWaterLeak,
			Display: catalog.Display{Icon: "🚰", Priority: 0, Category: catalog.CategoryLeak},
			Validation: catalog.Validation{
				Method:          catalog.MethodMedium,
				CrossValidation: "pressure window bracketing the vapour pressure of water at 13-24 °C",
				FixesApplied:    []string{"pressure evidence only used when supplied"},
				Sources:         []string{"CRC Handbook, vapour pressure of water"},
			},
		},
		{
			Type:    diagnosis.TypeWaterOutgassing,
			Detect:  WaterOutgassing,
			Display: catalog.Display{Icon: "💧", Priority: 1, Category: catalog.CategoryOutgassing},
			Validation: catalog.Validation{
				Method:          catalog.MethodHigh,
				CrossValidation: "OH+/H2O fragment ratio from NIST reference spectrum",
				FixesApplied:    []string{"damped for systems reported as baked"},
				Sources:         []string{"NIST Chemistry WebBook, water"},
			},
		},
		{
			Type:    diagnosis.TypeHydrogenDominant,
			Detect:  HydrogenDominant,
			Display: catalog.Display{Icon: "✨", Priority: 2, Category: catalog.CategoryOutgassing},
			Validation: catalog.Validation{
				Method:  catalog.MethodHigh,
				Sources: []string{"Redhead, Extreme High Vacuum residual gas composition"},
			},
		},
		{
			Type:    diagnosis.TypeOilBackstreaming,
			Detect:  OilBackstreaming,
			Display: catalog.Display{Icon: "🛢", Priority: 1, Category: catalog.CategoryContamination},
			Validation: catalog.Validation{
				Method:          catalog.MethodHigh,
				CrossValidation: "alkyl series spacing of 14 u checked against mineral oil spectra",
				FixesApplied:    []string{"suppressed when CF3+ dominates the alkyl series"},
				Sources:         []string{"Pfeiffer Vacuum, Mass Spectrometry Handbook"},
			},
		},
		{
			Type:    diagnosis.TypePFPEContamination,
			Detect:  PFPEContamination,
			Display: catalog.Display{Icon: "🧴", Priority: 2, Category: catalog.CategoryContamination},
			Validation: catalog.Validation{
				Method:          catalog.MethodHigh,
				CrossValidation: "Fomblin Y and Krytox reference spectra",
				FixesApplied:    []string{"mass 69 is only read as CF3+ when it outweighs 43 and 57"},
				Sources:         []string{"Solvay Fomblin technical data", "NIST Chemistry WebBook"},
			},
		},
		{
			Type:    diagnosis.TypeSiliconeContamination,
			Detect:  SiliconeContamination,
			Display: catalog.Display{Icon: "🧪", Priority: 3, Category: catalog.CategoryContamination},
			Validation: catalog.Validation{
				Method:  catalog.MethodMedium,
				Sources: []string{"NIST Chemistry WebBook, hexamethylcyclotrisiloxane"},
			},
		},
		{
			Type:    diagnosis.TypeSolventAcetone,
			Detect:  SolventAcetone,
			Display: catalog.Display{Icon: "🧽", Priority: 4, Category: catalog.CategoryContamination},
			Validation: catalog.Validation{
				Method:  catalog.MethodHigh,
				Sources: []string{"NIST Chemistry WebBook, acetone"},
			},
		},
		{
			Type:    diagnosis.TypeSolventAlcohol,
			Detect:  SolventAlcohol,
			Display: catalog.Display{Icon: "🧽", Priority: 5, Category: catalog.CategoryContamination},
			Validation: catalog.Validation{
				Method:          catalog.MethodMedium,
				CrossValidation: "isopropanol, ethanol and methanol reference spectra",
				FixesApplied:    []string{"mass 31 ignored when CF3+ marks it as CF+"},
				Sources:         []string{"NIST Chemistry WebBook"},
			},
		},
		{
			Type:    diagnosis.TypeChlorinatedSolvent,
			Detect:  ChlorinatedSolvent,
			Display: catalog.Display{Icon: "☣", Priority: 6, Category: catalog.CategoryContamination},
			Validation: catalog.Validation{
				Method:  catalog.MethodHigh,
				Sources: []string{"IUPAC isotopic abundances, chlorine"},
			},
		},
		{
			Type:    diagnosis.TypeUnidentifiedOrganics,
			Detect:  UnidentifiedOrganics,
			Display: catalog.Display{Icon: "❓", Priority: 9, Category: catalog.CategoryContamination},
			Validation: catalog.Validation{
				Method:          catalog.MethodLow,
				CrossValidation: "fires only when no known organic signature explains the heavy range",
			},
		},
		{
			Type:    diagnosis.TypeMass28Attribution,
			Detect:  Mass28Attribution,
			Display: catalog.Display{Icon: "⚖", Priority: 1, Category: catalog.CategoryGas},
			Validation: catalog.Validation{
				Method:          catalog.MethodMedium,
				CrossValidation: "N+/N2 7.2 % and C+/CO 4.5 % cracking shares",
				Sources:         []string{"NIST Chemistry WebBook, N2 and CO"},
			},
		},
		{
			Type:    diagnosis.TypeCO2Elevated,
			Detect:  CO2Elevated,
			Display: catalog.Display{Icon: "🫧", Priority: 2, Category: catalog.CategoryGas},
			Validation: catalog.Validation{
				Method:  catalog.MethodHigh,
				Sources: []string{"NIST Chemistry WebBook, carbon dioxide", "IUPAC isotopic abundances, carbon"},
			},
		},
		{
			Type:    diagnosis.TypeHeliumTrace,
			Detect:  HeliumTrace,
			Display: catalog.Display{Icon: "🎈", Priority: 3, Category: catalog.CategoryGas},
			Validation: catalog.Validation{
				Method:       catalog.MethodMedium,
				FixesApplied: []string{"suppressed when HD at 3 exceeds mass 4"},
			},
		},
		{
			Type:    diagnosis.TypeMethanePresent,
			Detect:  MethanePresent,
			Display: catalog.Display{Icon: "🔥", Priority: 4, Category: catalog.CategoryGas},
			Validation: catalog.Validation{
				Method:  catalog.MethodHigh,
				Sources: []string{"NIST Chemistry WebBook, methane"},
			},
		},
		{
			Type:    diagnosis.TypeAmmoniaPresent,
			Detect:  AmmoniaPresent,
			Display: catalog.Display{Icon: "🧂", Priority: 5, Category: catalog.CategoryGas},
			Validation: catalog.Validation{
				Method:          catalog.MethodMedium,
				CrossValidation: "17/18 threshold above the OH+ share of water",
				Sources:         []string{"NIST Chemistry WebBook, ammonia"},
			},
		},
		{
			Type:    diagnosis.TypeSF6Present,
			Detect:  SF6Present,
			Display: catalog.Display{Icon: "⚡", Priority: 6, Category: catalog.CategoryGas},
			Validation: catalog.Validation{
				Method:  catalog.MethodHigh,
				Sources: []string{"NIST Chemistry WebBook, sulfur hexafluoride"},
			},
		},
		{
			Type:    diagnosis.TypeSulfurCompounds,
			Detect:  SulfurCompounds,
			Display: catalog.Display{Icon: "🟡", Priority: 7, Category: catalog.CategoryGas},
			Validation: catalog.Validation{
				Method:       catalog.MethodMedium,
				FixesApplied: []string{"mass 34 ignored when it matches the 16O18O share of O2"},
				Sources:      []string{"NIST Chemistry WebBook, SO2 and H2S"},
			},
		},
		{
			Type:    diagnosis.TypeArgonIsotope,
			Detect:  ArgonIsotope,
			Display: catalog.Display{Icon: "🔬", Priority: 1, Category: catalog.CategoryIsotope},
			Validation: catalog.Validation{
				Method:  catalog.MethodHigh,
				Sources: []string{"IUPAC isotopic abundances, argon"},
			},
		},
		{
			Type:    diagnosis.TypeESDArtifact,
			Detect:  ESDArtifact,
			Display: catalog.Display{Icon: "⚠", Priority: 1, Category: catalog.CategoryArtifact},
			Validation: catalog.Validation{
				Method:          catalog.MethodLow,
				CrossValidation: "electron stimulated desorption of F+, O+ and Cl+ from ionizer surfaces",
				Sources:         []string{"Redhead, electron stimulated desorption"},
			},
		},
	}
}
