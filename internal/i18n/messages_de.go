package i18n

var german = map[string]string{
	"evidence.ratio.between":   "Verhältnis %s (m%d/m%d) = %.3f, erwartet %.3f–%.3f",
	"evidence.ratio.at_least":  "Verhältnis %s (m%d/m%d) = %.3f, erwartet mindestens %.3f",
	"evidence.ratio.at_most":   "Verhältnis %s (m%d/m%d) = %.3f, erwartet höchstens %.3f",
	"evidence.ratio.undefined": "Verhältnis %s (m%d/m%d) nicht bestimmbar, Bezugspeak fehlt",
	"evidence.presence":        "%s bei m%d = %.4f (Schwelle %.4f)",
	"evidence.absence":         "%s bei m%d = %.4f (Obergrenze %.4f)",
	"evidence.dominant":        "%s bei m%d ist der größte Peak (%.3f)",
	"evidence.not_dominant":    "%s bei m%d ist nicht der größte Peak (%.3f)",
	"evidence.isotope":         "Isotopenverhältnis %s m%d/m%d = %.4f, natürlich %.4f (±%.0f %%)",
	"evidence.pattern":         "Fragmentserie %s vorhanden bei m/z %s",
	"evidence.pattern.missing": "Fragmentserie %s fehlt bei m/z %s",
	"evidence.fraction":        "%s = %.2f (Schwelle %.2f)",
	"evidence.mixture":         "geschätzt %s = %.2f",
	"evidence.pressure":        "Totaldruck %.1f mbar (erwartet %.0f–%.0f mbar)",
	"evidence.range_sum":       "Intensitätsanteil m%d–m%d = %.3f (Schwelle %.3f)",
	"evidence.range_count":     "m%d–m%d enthält %d verschiedene Peaks (mindestens %d)",
	"evidence.bakeout.damping": "System ausgeheizt: Konfidenz mit %.2f skaliert",
	"evidence.bakeout.boost":   "System ausgeheizt: Konfidenz mit %.2f skaliert",

	"severity.info":     "Hinweis",
	"severity.warning":  "Warnung",
	"severity.critical": "kritisch",

	"status.clean":    "unauffällig",
	"status.info":     "Hinweise",
	"status.warning":  "Handlungsbedarf",
	"status.critical": "kritisch",

	"state.water_ingress": "Wassereinbruch",
	"state.air_leak":      "Luftleck",
	"state.contaminated":  "kontaminiert",
	"state.unbaked":       "nicht ausgeheizt",
	"state.baked":         "ausgeheizt",
	"state.unknown":       "unbestimmt",

	"category.leak":          "Lecks",
	"category.outgassing":    "Ausgasung",
	"category.contamination": "Kontamination",
	"category.gas":           "Gase",
	"category.isotope":       "Isotopenbestätigung",
	"category.artifact":      "Gerätebedingte Artefakte",

	"method.high":   "hoch",
	"method.medium": "mittel",
	"method.low":    "niedrig",

	"label.type":             "Typ",
	"label.diagnosis":        "Diagnose",
	"label.confidence":       "Konfidenz",
	"label.severity":         "Schweregrad",
	"label.masses":           "Massen",
	"label.evidence":         "Belege",
	"label.recommendation":   "Empfehlung",
	"label.category":         "Kategorie",
	"label.priority":         "Priorität",
	"label.method":           "Methodenvertrauen",
	"label.cross_validation": "Gegenprüfung",
	"label.fixes":            "Korrekturen",
	"label.sources":          "Quellen",
	"label.status":           "Status",
	"label.state":            "Systemzustand",
	"label.spectrum":         "Spektrum",
	"label.run":              "Lauf",
	"label.counts":           "%d kritisch, %d Warnung, %d Hinweis",
	"label.no_findings":      "Keine Diagnose hat die Konfidenzschwelle erreicht.",
	"label.faults":           "Übersprungene Detektoren",
	"label.detectors":        "%d Detektoren",

	"diagnosis.AIR_LEAK.name":           "Luftleck",
	"diagnosis.AIR_LEAK.description":    "Stickstoff, Sauerstoff und Argon treten im Verhältnis der Atmosphäre auf.",
	"diagnosis.AIR_LEAK.recommendation": "Zuletzt geöffnete Dichtungen und Durchführungen mit Helium lecksuchen.",

	"diagnosis.AIR_LEAK_O2_DEPLETED.name":           "Luftleck (Sauerstoff verbraucht)",
	"diagnosis.AIR_LEAK_O2_DEPLETED.description":    "Stickstoff und Argon entsprechen Luft, der Sauerstoff wird in der Kammer verbraucht, meist durch heiße Filamente oder Getter.",
	"diagnosis.AIR_LEAK_O2_DEPLETED.recommendation": "Mit Helium lecksuchen; fehlender Sauerstoff schließt ein Luftleck nicht aus.",

	"diagnosis.N2_VENT_RESIDUE.name":           "Stickstoff vom Belüften",
	"diagnosis.N2_VENT_RESIDUE.description":    "Stickstoff ohne Sauerstoff und Argon ist vom Belüften mit trockenem Stickstoff übrig.",
	"diagnosis.N2_VENT_RESIDUE.recommendation": "Weiter pumpen, das Signal sollte abklingen. Nur lecksuchen, wenn es bleibt.",

	"diagnosis.COOLING_WATER_LEAK.name":           "Kühlwasserleck",
	"diagnosis.COOLING_WATER_LEAK.description":    "Wasser dominiert das gesamte Spektrum weit über normale Ausgasung hinaus.",
	"diagnosis.COOLING_WATER_LEAK.recommendation": "Heizung abschalten, Kühlkreise absperren und einzeln prüfen.",

	"diagnosis.WATER_OUTGASSING.name":           "Wasserausgasung",
	"diagnosis.WATER_OUTGASSING.description":    "Adsorbiertes Wasser desorbiert von den Kammerwänden.",
	"diagnosis.WATER_OUTGASSING.recommendation": "System ausheizen oder länger pumpen.",

	"diagnosis.HYDROGEN_DOMINANT.name":           "Wasserstoff dominiert",
	"diagnosis.HYDROGEN_DOMINANT.description":    "Wasserstoff aus dem Metall ist das größte Restgas, typisch für ein sauberes, ausgeheiztes System.",
	"diagnosis.HYDROGEN_DOMINANT.recommendation": "Kein Handlungsbedarf; eine NEG- oder Ionengetterpumpe senkt den Wasserstoffanteil weiter.",

	"diagnosis.OIL_BACKSTREAMING.name":           "Öl-Rückströmung",
	"diagnosis.OIL_BACKSTREAMING.description":    "Alkyl-Fragmentserie aus Mineral- oder Diffusionspumpenöl.",
	"diagnosis.OIL_BACKSTREAMING.recommendation": "Vorvakuumfalle und Pumpenöl prüfen; eine ölfreie Vorpumpe erwägen.",

	"diagnosis.PFPE_CONTAMINATION.name":           "PFPE-Kontamination",
	"diagnosis.PFPE_CONTAMINATION.description":    "Fluorkohlenstoff-Fragmente aus Perfluorpolyether-Öl oder -Fett.",
	"diagnosis.PFPE_CONTAMINATION.recommendation": "Nach Fomblin- oder Krytox-Quellen suchen; betroffene Teile mit fluoriertem Lösemittel reinigen.",

	"diagnosis.SILICONE_CONTAMINATION.name":           "Silikon-Kontamination",
	"diagnosis.SILICONE_CONTAMINATION.description":    "Siloxan-Fragmente aus Silikonfett, -öl oder -dichtungen.",
	"diagnosis.SILICONE_CONTAMINATION.recommendation": "Silikonteile ersetzen und Oberflächen reinigen; Silikonreste lassen sich kaum ausheizen.",

	"diagnosis.SOLVENT_ACETONE.name":           "Acetonrückstand",
	"diagnosis.SOLVENT_ACETONE.description":    "Aceton aus der Reinigung.",
	"diagnosis.SOLVENT_ACETONE.recommendation": "Länger pumpen oder ausheizen; künftig nach Aceton mit Isopropanol spülen.",

	"diagnosis.SOLVENT_ALCOHOL.name":                    "Alkoholrückstand",
	"diagnosis.SOLVENT_ALCOHOL.description":             "Ein Alkohol aus der Reinigung.",
	"diagnosis.SOLVENT_ALCOHOL.description.isopropanol": "Isopropanol aus der Reinigung.",
	"diagnosis.SOLVENT_ALCOHOL.description.ethanol":     "Ethanol aus der Reinigung.",
	"diagnosis.SOLVENT_ALCOHOL.description.methanol":    "Methanol aus der Reinigung.",
	"diagnosis.SOLVENT_ALCOHOL.recommendation":          "Länger pumpen oder ausheizen; gereinigte Teile vor dem Einbau trocknen.",

	"diagnosis.CHLORINATED_SOLVENT.name":           "Chlorierte Lösemittel",
	"diagnosis.CHLORINATED_SOLVENT.description":    "Chlor-Isotopenmuster eines chlorierten Reinigungsmittels wie Trichlorethylen.",
	"diagnosis.CHLORINATED_SOLVENT.recommendation": "Quelle entfernen; chlorierte Lösemittel greifen Dichtungen an und pumpen schlecht ab.",

	"diagnosis.UNIDENTIFIED_ORGANICS.name":           "Nicht zugeordnete Organik",
	"diagnosis.UNIDENTIFIED_ORGANICS.description":    "Schwere organische Fragmente, die zu keinem bekannten Kontaminationsmuster passen.",
	"diagnosis.UNIDENTIFIED_ORGANICS.recommendation": "Letzte Änderungen an der Kammer prüfen und einen vollständigen Massenscan zum Vergleich aufnehmen.",

	"diagnosis.MASS28_ATTRIBUTION.name":                       "Zuordnung Masse 28",
	"diagnosis.MASS28_ATTRIBUTION.description":                "Masse 28 teilen sich N2 und CO.",
	"diagnosis.MASS28_ATTRIBUTION.description.n2_dominant":    "Masse 28 ist überwiegend Stickstoff.",
	"diagnosis.MASS28_ATTRIBUTION.description.co_dominant":    "Masse 28 ist überwiegend Kohlenmonoxid.",
	"diagnosis.MASS28_ATTRIBUTION.description.mixture":        "Masse 28 ist eine Mischung aus Stickstoff und Kohlenmonoxid.",
	"diagnosis.MASS28_ATTRIBUTION.recommendation":             "Zuordnung bei der Bewertung anderer Befunde auf Masse 28 berücksichtigen.",
	"diagnosis.MASS28_ATTRIBUTION.recommendation.co_dominant": "CO stammt meist von heißen Filamenten oder ausgasendem Metall; Filament entgasen.",

	"diagnosis.CO2_ELEVATED.name":           "Erhöhtes CO2",
	"diagnosis.CO2_ELEVATED.description":    "Kohlendioxid über dem üblichen Untergrund.",
	"diagnosis.CO2_ELEVATED.recommendation": "Auf organische Rückstände prüfen und ausheizen; CO2 folgt oft auf Kohlenstoffkontamination.",

	"diagnosis.ARGON_ISOTOPE_CONFIRMED.name":                    "Argon bestätigt",
	"diagnosis.ARGON_ISOTOPE_CONFIRMED.description":             "Die Argon-Isotopenverhältnisse entsprechen der natürlichen Häufigkeit.",
	"diagnosis.ARGON_ISOTOPE_CONFIRMED.description.atmospheric": "Argon mit atmosphärischen Isotopenverhältnissen, begleitet von Luft.",
	"diagnosis.ARGON_ISOTOPE_CONFIRMED.description.process":     "Argon mit natürlichen Isotopenverhältnissen, aber ohne Luft, typisch für Prozessgas.",
	"diagnosis.ARGON_ISOTOPE_CONFIRMED.recommendation":          "Mit dem Luftleck-Befund abgleichen.",
	"diagnosis.ARGON_ISOTOPE_CONFIRMED.recommendation.process":  "Prozessgasventile auf Undichtigkeit zur Kammer prüfen.",

	"diagnosis.HELIUM_TRACE.name":           "Heliumspur",
	"diagnosis.HELIUM_TRACE.description":    "Helium über dem atmosphärischen Untergrund.",
	"diagnosis.HELIUM_TRACE.recommendation": "Bei einer Helium-Lecksuche erwartet; sonst nach Permeation durch Elastomere suchen.",

	"diagnosis.METHANE_PRESENT.name":           "Methan",
	"diagnosis.METHANE_PRESENT.description":    "Methan-Fragmentmuster, oft an heißen Filamenten gebildet.",
	"diagnosis.METHANE_PRESENT.recommendation": "Meist harmlos; bei Störungen den Emissionsstrom senken.",

	"diagnosis.AMMONIA_PRESENT.name":           "Ammoniak",
	"diagnosis.AMMONIA_PRESENT.description":    "Masse 17 übersteigt den Anteil aus der Wasserfragmentierung.",
	"diagnosis.AMMONIA_PRESENT.recommendation": "Auf Nitrierprozesse oder Ammoniak in der Gasversorgung prüfen.",

	"diagnosis.ESD_ARTIFACT.name":           "ESD-Artefakt",
	"diagnosis.ESD_ARTIFACT.description":    "Durch Elektronenstoß von Oberflächen der Ionenquelle desorbierte Ionen, kein Gas in der Kammer.",
	"diagnosis.ESD_ARTIFACT.recommendation": "Ionenquelle entgasen; betroffene Massen als Geräteartefakte behandeln.",

	"diagnosis.SF6_PRESENT.name":           "SF6",
	"diagnosis.SF6_PRESENT.description":    "Fragmentmuster von Schwefelhexafluorid.",
	"diagnosis.SF6_PRESENT.recommendation": "SF6-isolierte Anlagen oder Prüfgas in der Nähe kontrollieren.",

	"diagnosis.SULFUR_COMPOUNDS.name":                "Schwefelverbindungen",
	"diagnosis.SULFUR_COMPOUNDS.description":         "Flüchtige Schwefelverbindungen.",
	"diagnosis.SULFUR_COMPOUNDS.description.so2":     "Schwefeldioxid.",
	"diagnosis.SULFUR_COMPOUNDS.description.h2s":     "Schwefelwasserstoff.",
	"diagnosis.SULFUR_COMPOUNDS.description.so2+h2s": "Schwefeldioxid und Schwefelwasserstoff.",
	"diagnosis.SULFUR_COMPOUNDS.recommendation":      "Schwefelquelle finden; Schwefelverbindungen korrodieren Kupfer und vergiften Getter.",
}
