package i18n

var english = map[string]string{
	"evidence.ratio.between":   "%s ratio (m%d/m%d) = %.3f, expected %.3f–%.3f",
	"evidence.ratio.at_least":  "%s ratio (m%d/m%d) = %.3f, expected at least %.3f",
	"evidence.ratio.at_most":   "%s ratio (m%d/m%d) = %.3f, expected at most %.3f",
	"evidence.ratio.undefined": "%s ratio (m%d/m%d) undefined, reference peak absent",
	"evidence.presence":        "%s at m%d = %.4f (floor %.4f)",
	"evidence.absence":         "%s at m%d = %.4f (ceiling %.4f)",
	"evidence.dominant":        "%s at m%d is the largest peak (%.3f)",
	"evidence.not_dominant":    "%s at m%d is not the largest peak (%.3f)",
	"evidence.isotope":         "%s isotope ratio m%d/m%d = %.4f, natural %.4f (±%.0f %%)",
	"evidence.pattern":         "%s fragment series present at m/z %s",
	"evidence.pattern.missing": "%s fragment series missing at m/z %s",
	"evidence.fraction":        "%s = %.2f (threshold %.2f)",
	"evidence.mixture":         "estimated %s = %.2f",
	"evidence.pressure":        "total pressure %.1f mbar (expected %.0f–%.0f mbar)",
	"evidence.range_sum":       "intensity share m%d–m%d = %.3f (threshold %.3f)",
	"evidence.range_count":     "m%d–m%d holds %d distinct peaks (at least %d)",
	"evidence.bakeout.damping": "system baked: confidence scaled by %.2f",
	"evidence.bakeout.boost":   "system baked: confidence scaled by %.2f",

	"severity.info":     "info",
	"severity.warning":  "warning",
	"severity.critical": "critical",

	"status.clean":    "clean",
	"status.info":     "informational",
	"status.warning":  "needs attention",
	"status.critical": "critical",

	"state.water_ingress": "water ingress",
	"state.air_leak":      "air leak",
	"state.contaminated":  "contaminated",
	"state.unbaked":       "not baked out",
	"state.baked":         "baked out",
	"state.unknown":       "undetermined",

	"category.leak":          "Leaks",
	"category.outgassing":    "Outgassing",
	"category.contamination": "Contamination",
	"category.gas":           "Gases",
	"category.isotope":       "Isotope confirmation",
	"category.artifact":      "Instrument artifacts",

	"method.high":   "high",
	"method.medium": "medium",
	"method.low":    "low",

	"label.type":             "Type",
	"label.diagnosis":        "Diagnosis",
	"label.confidence":       "Confidence",
	"label.severity":         "Severity",
	"label.masses":           "Masses",
	"label.evidence":         "Evidence",
	"label.recommendation":   "Recommendation",
	"label.category":         "Category",
	"label.priority":         "Priority",
	"label.method":           "Method confidence",
	"label.cross_validation": "Cross-validation",
	"label.fixes":            "Fixes applied",
	"label.sources":          "Sources",
	"label.status":           "Status",
	"label.state":            "System state",
	"label.spectrum":         "Spectrum",
	"label.run":              "Run",
	"label.counts":           "%d critical, %d warning, %d info",
	"label.no_findings":      "No diagnosis reached the confidence threshold.",
	"label.faults":           "Detectors skipped",
	"label.supports":         "+",
	"label.against":          "-",
	"label.detectors":        "%d detectors",

	"diagnosis.AIR_LEAK.name":           "Air leak",
	"diagnosis.AIR_LEAK.description":    "Nitrogen, oxygen and argon appear in atmospheric proportions.",
	"diagnosis.AIR_LEAK.recommendation": "Helium leak test recently opened seals and feedthroughs.",

	"diagnosis.AIR_LEAK_O2_DEPLETED.name":           "Air leak (oxygen depleted)",
	"diagnosis.AIR_LEAK_O2_DEPLETED.description":    "Nitrogen and argon match air while oxygen is consumed inside the chamber, typically by hot filaments or getters.",
	"diagnosis.AIR_LEAK_O2_DEPLETED.recommendation": "Leak test with helium; the missing oxygen does not rule out an air leak.",

	"diagnosis.N2_VENT_RESIDUE.name":           "Nitrogen vent residue",
	"diagnosis.N2_VENT_RESIDUE.description":    "Nitrogen without oxygen or argon remains from venting with dry nitrogen.",
	"diagnosis.N2_VENT_RESIDUE.recommendation": "Keep pumping; the signal should decay. Leak test only if it does not.",

	"diagnosis.COOLING_WATER_LEAK.name":           "Cooling water leak",
	"diagnosis.COOLING_WATER_LEAK.description":    "Water dominates the whole spectrum far beyond normal outgassing.",
	"diagnosis.COOLING_WATER_LEAK.recommendation": "Stop heating, isolate the cooling circuits and check them one by one.",

	"diagnosis.WATER_OUTGASSING.name":           "Water outgassing",
	"diagnosis.WATER_OUTGASSING.description":    "Adsorbed water desorbs from the chamber walls.",
	"diagnosis.WATER_OUTGASSING.recommendation": "Bake out the system or allow more pump-down time.",

	"diagnosis.HYDROGEN_DOMINANT.name":           "Hydrogen dominant",
	"diagnosis.HYDROGEN_DOMINANT.description":    "Hydrogen from the bulk metal is the largest residual gas, typical of a clean baked system.",
	"diagnosis.HYDROGEN_DOMINANT.recommendation": "No action needed; a NEG or ion pump lowers the hydrogen base pressure further.",

	"diagnosis.OIL_BACKSTREAMING.name":           "Hydrocarbon oil backstreaming",
	"diagnosis.OIL_BACKSTREAMING.description":    "Alkyl fragment series from mineral or diffusion pump oil.",
	"diagnosis.OIL_BACKSTREAMING.recommendation": "Check the foreline trap and pump oil; consider an oil-free backing pump.",

	"diagnosis.PFPE_CONTAMINATION.name":           "PFPE contamination",
	"diagnosis.PFPE_CONTAMINATION.description":    "Fluorocarbon fragments from perfluoropolyether oil or grease.",
	"diagnosis.PFPE_CONTAMINATION.recommendation": "Look for Fomblin or Krytox sources; clean affected parts with a fluorinated solvent.",

	"diagnosis.SILICONE_CONTAMINATION.name":           "Silicone contamination",
	"diagnosis.SILICONE_CONTAMINATION.description":    "Siloxane fragments from silicone grease, oil or seals.",
	"diagnosis.SILICONE_CONTAMINATION.recommendation": "Replace silicone parts and clean surfaces; silicone residues are hard to bake off.",

	"diagnosis.SOLVENT_ACETONE.name":           "Acetone residue",
	"diagnosis.SOLVENT_ACETONE.description":    "Acetone left over from cleaning.",
	"diagnosis.SOLVENT_ACETONE.recommendation": "Pump longer or bake; rinse with isopropanol after acetone next time.",

	"diagnosis.SOLVENT_ALCOHOL.name":                    "Alcohol residue",
	"diagnosis.SOLVENT_ALCOHOL.description":             "An alcohol left over from cleaning.",
	"diagnosis.SOLVENT_ALCOHOL.description.isopropanol": "Isopropanol left over from cleaning.",
	"diagnosis.SOLVENT_ALCOHOL.description.ethanol":     "Ethanol left over from cleaning.",
	"diagnosis.SOLVENT_ALCOHOL.description.methanol":    "Methanol left over from cleaning.",
	"diagnosis.SOLVENT_ALCOHOL.recommendation":          "Pump longer or bake; dry cleaned parts before installation.",

	"diagnosis.CHLORINATED_SOLVENT.name":           "Chlorinated solvent",
	"diagnosis.CHLORINATED_SOLVENT.description":    "Chlorine isotope pattern from a chlorinated cleaning agent such as trichloroethylene.",
	"diagnosis.CHLORINATED_SOLVENT.recommendation": "Remove the source; chlorinated solvents attack seals and are hard to pump.",

	"diagnosis.UNIDENTIFIED_ORGANICS.name":           "Unidentified organics",
	"diagnosis.UNIDENTIFIED_ORGANICS.description":    "Heavy organic fragments that match no known contaminant pattern.",
	"diagnosis.UNIDENTIFIED_ORGANICS.recommendation": "Review recent changes to the chamber and record a full mass scan for comparison.",

	"diagnosis.MASS28_ATTRIBUTION.name":                       "Mass 28 attribution",
	"diagnosis.MASS28_ATTRIBUTION.description":                "Mass 28 is shared by N2 and CO.",
	"diagnosis.MASS28_ATTRIBUTION.description.n2_dominant":    "Mass 28 is mostly nitrogen.",
	"diagnosis.MASS28_ATTRIBUTION.description.co_dominant":    "Mass 28 is mostly carbon monoxide.",
	"diagnosis.MASS28_ATTRIBUTION.description.mixture":        "Mass 28 is a mixture of nitrogen and carbon monoxide.",
	"diagnosis.MASS28_ATTRIBUTION.recommendation":             "Use the attribution when interpreting other mass 28 findings.",
	"diagnosis.MASS28_ATTRIBUTION.recommendation.co_dominant": "CO usually comes from hot filaments or metal outgassing; degas the filament.",

	"diagnosis.CO2_ELEVATED.name":           "Elevated CO2",
	"diagnosis.CO2_ELEVATED.description":    "Carbon dioxide above the usual background.",
	"diagnosis.CO2_ELEVATED.recommendation": "Check for organic residues and bake; CO2 often follows carbon contamination.",

	"diagnosis.ARGON_ISOTOPE_CONFIRMED.name":                    "Argon confirmed",
	"diagnosis.ARGON_ISOTOPE_CONFIRMED.description":             "Argon isotope ratios match natural abundance.",
	"diagnosis.ARGON_ISOTOPE_CONFIRMED.description.atmospheric": "Argon with atmospheric isotope ratios, accompanied by air.",
	"diagnosis.ARGON_ISOTOPE_CONFIRMED.description.process":     "Argon with natural isotope ratios but without air, typical of process gas.",
	"diagnosis.ARGON_ISOTOPE_CONFIRMED.recommendation":          "Correlate with the air leak finding.",
	"diagnosis.ARGON_ISOTOPE_CONFIRMED.recommendation.process":  "Check the process gas valves for leaks into the chamber.",

	"diagnosis.HELIUM_TRACE.name":           "Helium trace",
	"diagnosis.HELIUM_TRACE.description":    "Helium above the atmospheric background.",
	"diagnosis.HELIUM_TRACE.recommendation": "Expected during a helium leak test; otherwise look for helium permeation through elastomers.",

	"diagnosis.METHANE_PRESENT.name":           "Methane",
	"diagnosis.METHANE_PRESENT.description":    "Methane fragment pattern, often produced on hot filaments.",
	"diagnosis.METHANE_PRESENT.recommendation": "Usually harmless; reduce the emission current if it interferes.",

	"diagnosis.AMMONIA_PRESENT.name":           "Ammonia",
	"diagnosis.AMMONIA_PRESENT.description":    "Mass 17 exceeds what water fragmentation explains.",
	"diagnosis.AMMONIA_PRESENT.recommendation": "Check for nitride processes or ammonia in the gas supply.",

	"diagnosis.ESD_ARTIFACT.name":           "ESD artifact",
	"diagnosis.ESD_ARTIFACT.description":    "Ions desorbed from the ion source surfaces by electron impact, not gas in the chamber.",
	"diagnosis.ESD_ARTIFACT.recommendation": "Degas the ion source; treat the affected masses as instrument artifacts.",

	"diagnosis.SF6_PRESENT.name":           "SF6",
	"diagnosis.SF6_PRESENT.description":    "Sulfur hexafluoride fragment pattern.",
	"diagnosis.SF6_PRESENT.recommendation": "Check SF6-insulated equipment or leak test gas nearby.",

	"diagnosis.SULFUR_COMPOUNDS.name":                "Sulfur compounds",
	"diagnosis.SULFUR_COMPOUNDS.description":         "Volatile sulfur compounds.",
	"diagnosis.SULFUR_COMPOUNDS.description.so2":     "Sulfur dioxide.",
	"diagnosis.SULFUR_COMPOUNDS.description.h2s":     "Hydrogen sulfide.",
	"diagnosis.SULFUR_COMPOUNDS.description.so2+h2s": "Sulfur dioxide and hydrogen sulfide.",
	"diagnosis.SULFUR_COMPOUNDS.recommendation":      "Identify the sulfur source; sulfur compounds corrode copper and poison getters.",
}
