package isotope

import (
	"math"
	"testing"

	"rgadiag/internal/spectrum"
)

func TestRatioRejectsEmptyDenominator(t *testing.T) {
	if _, ok := Ratio(1, 0); ok {
		t.Fatal("expected zero denominator to be rejected")
	}
	if _, ok := Ratio(1, math.NaN()); ok {
		t.Fatal("expected NaN denominator to be rejected")
	}
	if v, ok := Ratio(0.21, 0.055); !ok || math.Abs(v-3.818181) > 1e-5 {
		t.Fatalf("Ratio = %v %v", v, ok)
	}
}

func TestInRangeIsInclusive(t *testing.T) {
	if !InRange(3.0, 3.0, 4.5) || !InRange(4.5, 3.0, 4.5) {
		t.Fatal("boundaries must satisfy the interval")
	}
	if InRange(4.5000001, 3.0, 4.5) {
		t.Fatal("value above hi accepted")
	}
}

func TestCompareArgonMatch(t *testing.T) {
	p := spectrum.Peaks{40: 0.012, 36: 0.012 * 0.00338}
	c := Compare(p, Argon36, 0.25)
	if !c.Valid || !c.Within {
		t.Fatalf("expected argon match, got %+v", c)
	}
	if c.Deviation > 0.01 {
		t.Fatalf("unexpected deviation %v", c.Deviation)
	}
}

func TestCompareMissingPeaks(t *testing.T) {
	c := Compare(spectrum.Peaks{40: 0.1}, Argon36, 0.25)
	if !c.Valid || c.Within {
		t.Fatalf("missing heavy isotope must not match: %+v", c)
	}
	c = Compare(spectrum.Peaks{36: 0.1}, Argon36, 0.25)
	if c.Valid {
		t.Fatalf("missing light isotope must be invalid: %+v", c)
	}
}

func TestCompareChlorineOutsideTolerance(t *testing.T) {
	p := spectrum.Peaks{35: 0.1, 37: 0.1}
	c := Compare(p, Chlorine, 0.2)
	if c.Within {
		t.Fatalf("1:1 chlorine ratio should not match natural abundance: %+v", c)
	}
}
