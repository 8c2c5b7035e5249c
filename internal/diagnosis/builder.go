package diagnosis

import (
	"math"
	"sort"
)

// Fixed metadata multipliers applied when a run is known to be post-bakeout.
const (
	BakedDamping = 0.3
	BakedBoost   = 1.25
)

// Builder accumulates evidence and confidence for one detector invocation.
type Builder struct {
	typ        Type
	variant    string
	score      float64
	scale      float64
	supporting int
	evidence   []Evidence
}

// NewBuilder starts an empty verdict for t.
func NewBuilder(t Type) *Builder {
	return &Builder{typ: t, scale: 1}
}

// SetVariant records the sub-outcome chosen by the detector.
func (b *Builder) SetVariant(v string) {
	b.variant = v
}

// Support appends a supporting item and adds weight. Negative weights are
// ignored so confidence never decreases as evidence is added.
func (b *Builder) Support(weight float64, ev Evidence) {
	ev.Supports = true
	if weight > 0 {
		b.score += weight
	}
	b.supporting++
	b.evidence = append(b.evidence, ev)
}

// Against appends a non-supporting item. Confidence is unchanged.
func (b *Builder) Against(ev Evidence) {
	ev.Supports = false
	b.evidence = append(b.evidence, ev)
}

// Check calls Support when ok holds and Against otherwise. It returns ok.
func (b *Builder) Check(ok bool, weight float64, ev Evidence) bool {
	if ok {
		b.Support(weight, ev)
	} else {
		b.Against(ev)
	}
	return ok
}

// Scale applies a fixed metadata multiplier to the final confidence and
// records it as metadata evidence. It does not count as a criterion.
func (b *Builder) Scale(factor float64) {
	if factor < 0 || math.IsNaN(factor) {
		return
	}
	b.scale *= factor
	key := KeyBakeBoost
	if factor < 1 {
		key = KeyBakeDamping
	}
	b.evidence = append(b.evidence, Evidence{
		Kind:     KindMetadata,
		Key:      key,
		Params:   []any{factor},
		Supports: factor >= 1,
		Value:    ptr(factor),
	})
}

// Confidence is the clamped confidence as it currently stands.
func (b *Builder) Confidence() float64 {
	return roundConfidence(b.score * b.scale)
}

// Supporting counts the supporting criteria recorded so far.
func (b *Builder) Supporting() int {
	return b.supporting
}

// Finish produces the result, or nil when confidence is below MinConfidence
// or fewer than minSupport criteria were satisfied.
func (b *Builder) Finish(minSupport int, rule SeverityRule) *Result {
	confidence := b.Confidence()
	if confidence < MinConfidence || b.supporting < minSupport {
		return nil
	}
	evidence := make([]Evidence, len(b.evidence))
	copy(evidence, b.evidence)
	if rule == nil {
		rule = Fixed(SeverityInfo)
	}
	return &Result{
		Type:           b.typ,
		Variant:        b.variant,
		Confidence:     confidence,
		Severity:       rule(confidence, evidence),
		Evidence:       evidence,
		AffectedMasses: affectedMasses(evidence),
	}
}

func affectedMasses(evidence []Evidence) []int {
	seen := map[int]struct{}{}
	out := make([]int, 0)
	for _, ev := range evidence {
		if !ev.Supports {
			continue
		}
		for _, m := range ev.Masses {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	sort.Ints(out)
	return out
}

// roundConfidence clamps to [0,1] and rounds to four decimals so summed
// weights print cleanly and compare stably against thresholds.
func roundConfidence(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return math.Round(v*1e4) / 1e4
}
