package spread

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/seenimoa/yieldspread/pkg/models"
)

func gov(id string, term, yield float64) models.BondRecord {
	return models.BondRecord{ID: id, Category: models.Government, Term: term, Yield: yield}
}

func corp(id string, term, yield float64) models.BondRecord {
	return models.BondRecord{ID: id, Category: models.Corporate, Term: term, Yield: yield}
}

func TestMatcherExampleScenario(t *testing.T) {
	m, err := NewMatcher([]models.BondRecord{gov("G1", 2, 1.0), gov("G2", 5, 2.0)}, DefaultOptions())
	if err != nil {
		t.Fatalf("NewMatcher() error: %v", err)
	}
	r := m.Match(corp("C1", 4, 3.0))
	if r.Benchmark != "G2" {
		t.Errorf("Benchmark: got %q, want G2", r.Benchmark)
	}
	if !r.Spread.Equal(decimal.NewFromFloat(1.0)) {
		t.Errorf("Spread: got %s, want 1", r.Spread)
	}
	if r.Convention != models.SpreadSigned {
		t.Errorf("Convention: got %q", r.Convention)
	}
}

func TestMatcherNearestIsMinimal(t *testing.T) {
	govs := []models.BondRecord{
		gov("G1", 9.4, 3.70), gov("G2", 12, 4.80), gov("G3", 16.3, 5.50), gov("G4", 17.8, 7.20), gov("G5", 0.5, 0.9),
	}
	m, err := NewMatcher(govs, DefaultOptions())
	if err != nil {
		t.Fatalf("NewMatcher() error: %v", err)
	}
	for _, term := range []float64{0.1, 1, 5, 9.4, 10.3, 10.7, 11, 14.15, 15.2, 17, 20, 30} {
		chosen := m.Nearest(term)
		for _, g := range govs {
			if math.Abs(chosen.Term-term) > math.Abs(g.Term-term) {
				t.Errorf("term %v: chose %s (dist %v) but %s is closer (dist %v)",
					term, chosen.ID, math.Abs(chosen.Term-term), g.ID, math.Abs(g.Term-term))
			}
		}
	}
}

func TestMatcherSampleData(t *testing.T) {
	m, _ := NewMatcher([]models.BondRecord{
		gov("G1", 9.4, 3.70), gov("G2", 12, 4.80), gov("G3", 16.3, 5.50), gov("G4", 17.8, 7.20),
	}, DefaultOptions())

	tests := []struct {
		bond      models.BondRecord
		benchmark string
		spread    string
	}{
		{corp("C1", 10.3, 5.30), "G1", "1.6"},
		{corp("C2", 15.2, 8.30), "G3", "2.8"},
	}
	for _, tt := range tests {
		r := m.Match(tt.bond)
		if r.Benchmark != tt.benchmark {
			t.Errorf("%s: benchmark got %q, want %q", tt.bond.ID, r.Benchmark, tt.benchmark)
		}
		if r.Spread.String() != tt.spread {
			t.Errorf("%s: spread got %s, want %s", tt.bond.ID, r.Spread, tt.spread)
		}
	}
}

// ── Tie-break ──

func TestMatcherTieBreakLowestTerm(t *testing.T) {
	// both 1 year away; loading order must not matter
	for _, govs := range [][]models.BondRecord{
		{gov("GB", 5, 2.0), gov("GA", 3, 1.0)},
		{gov("GA", 3, 1.0), gov("GB", 5, 2.0)},
	} {
		m, _ := NewMatcher(govs, DefaultOptions())
		if got := m.Nearest(4).ID; got != "GA" {
			t.Errorf("Nearest(4): got %s, want GA (lower term)", got)
		}
	}
}

func TestMatcherTieBreakSmallestID(t *testing.T) {
	for _, govs := range [][]models.BondRecord{
		{gov("G9", 5, 2.0), gov("G1", 5, 2.5)},
		{gov("G1", 5, 2.5), gov("G9", 5, 2.0)},
	} {
		m, _ := NewMatcher(govs, DefaultOptions())
		if got := m.Nearest(5).ID; got != "G1" {
			t.Errorf("Nearest(5): got %s, want G1", got)
		}
	}
}

// ── Conventions / errors ──

func TestMatcherAbsoluteConvention(t *testing.T) {
	opts := DefaultOptions()
	opts.Convention = models.SpreadAbsolute
	m, _ := NewMatcher([]models.BondRecord{gov("G1", 5, 4.0)}, opts)

	r := m.Match(corp("C1", 5, 3.25))
	if r.Spread.String() != "0.75" {
		t.Errorf("absolute spread: got %s, want 0.75", r.Spread)
	}

	signed, _ := NewMatcher([]models.BondRecord{gov("G1", 5, 4.0)}, DefaultOptions())
	if got := signed.Match(corp("C1", 5, 3.25)).Spread.String(); got != "-0.75" {
		t.Errorf("signed spread: got %s, want -0.75", got)
	}
}

func TestMatcherEmptyBenchmarkSet(t *testing.T) {
	_, err := NewMatcher(nil, DefaultOptions())
	if !errors.Is(err, ErrEmptyBenchmarkSet) {
		t.Errorf("expected ErrEmptyBenchmarkSet, got %v", err)
	}
}

func TestMatcherDoesNotMutateInput(t *testing.T) {
	govs := []models.BondRecord{gov("G2", 5, 2.0), gov("G1", 2, 1.0)}
	NewMatcher(govs, DefaultOptions())
	if govs[0].ID != "G2" {
		t.Error("NewMatcher reordered the caller's slice")
	}
}

// ── Rounding ──

func TestDifferenceRounding(t *testing.T) {
	tests := []struct {
		c, r   float64
		places int32
		want   string
	}{
		{3.25, 2.10, 2, "1.15"},
		{1.005, 0, 2, "1.01"},  // half away from zero
		{-1.005, 0, 2, "-1.01"}, // half away from zero
		{3.0, 1.6666666666666667, 2, "1.33"},
		{2.0, 2.0, 2, "0"},
		{5.3, 3.7, 2, "1.6"},
	}
	for _, tt := range tests {
		got := Difference(tt.c, tt.r, models.SpreadSigned, tt.places)
		if got.String() != tt.want {
			t.Errorf("Difference(%v, %v) = %s, want %s", tt.c, tt.r, got, tt.want)
		}
	}
}
