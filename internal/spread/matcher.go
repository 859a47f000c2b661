package spread

import (
	"math"
	"sort"

	"github.com/seenimoa/yieldspread/pkg/models"
)

// Matcher finds the nearest-term government benchmark for a corporate bond.
//
// Ties on distance resolve to the lowest government term, then to the
// lexicographically smallest identifier. The result does not depend on the
// order in which government bonds were loaded.
type Matcher struct {
	benchmarks []models.BondRecord // sorted by (Term, ID)
	opts       Options
}

// NewMatcher builds a matcher over the government bonds.
func NewMatcher(government []models.BondRecord, opts Options) (*Matcher, error) {
	if len(government) == 0 {
		return nil, ErrEmptyBenchmarkSet
	}
	benchmarks := make([]models.BondRecord, len(government))
	copy(benchmarks, government)
	sort.Slice(benchmarks, func(i, j int) bool {
		if benchmarks[i].Term != benchmarks[j].Term {
			return benchmarks[i].Term < benchmarks[j].Term
		}
		return benchmarks[i].ID < benchmarks[j].ID
	})
	return &Matcher{benchmarks: benchmarks, opts: opts.withDefaults()}, nil
}

// Nearest returns the government bond whose term is closest to term.
func (m *Matcher) Nearest(term float64) models.BondRecord {
	best := m.benchmarks[0]
	bestDist := math.Abs(best.Term - term)
	for _, g := range m.benchmarks[1:] {
		// strict < keeps the earliest (lowest term, smallest id) on ties
		if d := math.Abs(g.Term - term); d < bestDist {
			best, bestDist = g, d
		}
	}
	return best
}

// Match pairs a corporate bond with its benchmark and computes the spread.
func (m *Matcher) Match(corporate models.BondRecord) models.SpreadResult {
	g := m.Nearest(corporate.Term)
	return models.SpreadResult{
		Bond:       corporate.ID,
		Benchmark:  g.ID,
		Spread:     Difference(corporate.Yield, g.Yield, m.opts.Convention, m.opts.Decimals),
		Convention: m.opts.Convention,
	}
}
