package diagnosis

// SeverityRule derives a severity from the final confidence and evidence.
type SeverityRule func(confidence float64, evidence []Evidence) Severity

// Fixed always reports s.
func Fixed(s Severity) SeverityRule {
	return func(float64, []Evidence) Severity { return s }
}

// ByConfidence reports critical at or above critical, warning at or above
// warning, and info otherwise. A non-positive cutoff disables that level.
func ByConfidence(critical, warning float64) SeverityRule {
	return func(confidence float64, _ []Evidence) Severity {
		switch {
		case critical > 0 && confidence >= critical:
			return SeverityCritical
		case warning > 0 && confidence >= warning:
			return SeverityWarning
		default:
			return SeverityInfo
		}
	}
}

// WhenSupporting reports s once at least n supporting items exist and defers
// to fallback otherwise.
func WhenSupporting(n int, s Severity, fallback SeverityRule) SeverityRule {
	return func(confidence float64, evidence []Evidence) Severity {
		if CountSupporting(evidence) >= n {
			return s
		}
		if fallback == nil {
			return SeverityInfo
		}
		return fallback(confidence, evidence)
	}
}

// CountSupporting counts supporting criteria, excluding bakeout adjustments.
func CountSupporting(evidence []Evidence) int {
	n := 0
	for _, ev := range evidence {
		if ev.Supports && !isAdjustment(ev) {
			n++
		}
	}
	return n
}

func isAdjustment(ev Evidence) bool {
	return ev.Key == KeyBakeBoost || ev.Key == KeyBakeDamping
}

// Worst returns the more severe of a and b.
func Worst(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}
