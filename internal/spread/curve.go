package spread

import (
	"math"
	"sort"

	"github.com/seenimoa/yieldspread/pkg/models"
)

// YieldCurve is a piecewise-linear government yield curve. It is immutable
// once built.
type YieldCurve struct {
	points      []models.CurvePoint // ascending, distinct terms
	extrapolate bool
}

// NewYieldCurve builds a curve from government bonds. Bonds sharing a term
// collapse into one knot whose yield is their mean. At least two distinct
// terms are required.
func NewYieldCurve(government []models.BondRecord, extrapolate bool) (*YieldCurve, error) {
	if len(government) == 0 {
		return nil, ErrEmptyBenchmarkSet
	}

	sorted := make([]models.BondRecord, len(government))
	copy(sorted, government)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Term < sorted[j].Term })

	points := make([]models.CurvePoint, 0, len(sorted))
	for i := 0; i < len(sorted); {
		j, sum := i, 0.0
		for j < len(sorted) && sorted[j].Term == sorted[i].Term {
			sum += sorted[j].Yield
			j++
		}
		points = append(points, models.CurvePoint{
			Term:  sorted[i].Term,
			Yield: sum / float64(j-i),
		})
		i = j
	}

	if len(points) < 2 {
		return nil, ErrInsufficientCurvePoints
	}
	return &YieldCurve{points: points, extrapolate: extrapolate}, nil
}

// Points returns a copy of the curve knots.
func (c *YieldCurve) Points() []models.CurvePoint {
	out := make([]models.CurvePoint, len(c.points))
	copy(out, c.points)
	return out
}

// Domain returns the shortest and longest knot terms.
func (c *YieldCurve) Domain() (min, max float64) {
	return c.points[0].Term, c.points[len(c.points)-1].Term
}

// YieldAt evaluates the curve at term. A term equal to a knot returns that
// knot's yield exactly. Terms outside the domain fail with *OutOfRangeError
// unless the curve was built with extrapolation enabled.
func (c *YieldCurve) YieldAt(term float64) (float64, error) {
	lo, hi := c.Domain()
	if math.IsNaN(term) || ((term < lo || term > hi) && !c.extrapolate) {
		return 0, &OutOfRangeError{Term: term, Min: lo, Max: hi}
	}

	n := len(c.points)
	i := sort.Search(n, func(i int) bool { return c.points[i].Term >= term })
	switch {
	case i < n && c.points[i].Term == term:
		return c.points[i].Yield, nil
	case i == 0:
		return lerp(c.points[0], c.points[1], term), nil
	case i == n:
		return lerp(c.points[n-2], c.points[n-1], term), nil
	default:
		return lerp(c.points[i-1], c.points[i], term), nil
	}
}

// Spread computes corporate yield minus the curve yield at the bond's term.
func (c *YieldCurve) Spread(corporate models.BondRecord, conv models.SpreadConvention, places int32) (models.CurveSpreadResult, error) {
	y, err := c.YieldAt(corporate.Term)
	if err != nil {
		if oor, ok := err.(*OutOfRangeError); ok {
			oor.Bond = corporate.ID
		}
		return models.CurveSpreadResult{}, err
	}
	return models.CurveSpreadResult{
		Bond:              corporate.ID,
		Term:              corporate.Term,
		InterpolatedYield: y,
		Spread:            Difference(corporate.Yield, y, conv, places),
	}, nil
}

func lerp(a, b models.CurvePoint, t float64) float64 {
	return a.Yield + (b.Yield-a.Yield)*(t-a.Term)/(b.Term-a.Term)
}
