package diagnosis

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvariant marks a result that breaks the evidence model's invariants.
var ErrInvariant = errors.New("diagnostic invariant violated")

// Validate checks the invariants every reported result must hold. Detectors
// never call it; the engine and the tests do.
func Validate(r *Result) error {
	if r == nil {
		return nil
	}
	if r.Type == "" {
		return fmt.Errorf("%w: empty diagnosis type", ErrInvariant)
	}
	if math.IsNaN(r.Confidence) || r.Confidence < MinConfidence || r.Confidence > 1 {
		return fmt.Errorf("%w: %s confidence %v outside [%v,1]", ErrInvariant, r.Type, r.Confidence, MinConfidence)
	}
	if !r.Severity.Valid() {
		return fmt.Errorf("%w: %s severity %q unknown", ErrInvariant, r.Type, r.Severity)
	}
	if CountSupporting(r.Evidence) == 0 {
		return fmt.Errorf("%w: %s reported without supporting evidence", ErrInvariant, r.Type)
	}
	referenced := map[int]struct{}{}
	for i, ev := range r.Evidence {
		if ev.Key == "" {
			return fmt.Errorf("%w: %s evidence %d has no message key", ErrInvariant, r.Type, i)
		}
		if ev.Value != nil && (math.IsNaN(*ev.Value) || math.IsInf(*ev.Value, 0)) {
			return fmt.Errorf("%w: %s evidence %d value not finite", ErrInvariant, r.Type, i)
		}
		if !ev.Supports {
			continue
		}
		for _, m := range ev.Masses {
			referenced[m] = struct{}{}
		}
	}
	for i, m := range r.AffectedMasses {
		if i > 0 && m <= r.AffectedMasses[i-1] {
			return fmt.Errorf("%w: %s affected masses not strictly ascending", ErrInvariant, r.Type)
		}
		if _, ok := referenced[m]; !ok {
			return fmt.Errorf("%w: %s affected mass %d not referenced by supporting evidence", ErrInvariant, r.Type, m)
		}
	}
	return nil
}
