package models

import "github.com/shopspring/decimal"

// --- Fixed Income / Bonds ---

// BondCategory identifies which table a bond belongs to.
type BondCategory string

const (
	Corporate  BondCategory = "corporate"
	Government BondCategory = "government"
)

// ParseBondCategory maps a raw category label to a BondCategory.
// The match is exact and case-sensitive; anything else reports false.
func ParseBondCategory(label string) (BondCategory, bool) {
	switch BondCategory(label) {
	case Corporate:
		return Corporate, true
	case Government:
		return Government, true
	default:
		return "", false
	}
}

// BondRecord is a single bond as loaded from the input table.
type BondRecord struct {
	ID       string       `json:"id"`
	Category BondCategory `json:"category"`
	Term     float64      `json:"term"`  // years to maturity
	Yield    float64      `json:"yield"` // percent, e.g. 3.25 for "3.25%"
}

// CurvePoint is one knot of a government yield curve.
type CurvePoint struct {
	Term  float64 `json:"term"`
	Yield float64 `json:"yield"`
}

// --- Fixed Income / Spreads ---

// SpreadConvention selects how a yield difference is reported.
type SpreadConvention string

const (
	SpreadSigned   SpreadConvention = "signed"   // corporate - reference
	SpreadAbsolute SpreadConvention = "absolute" // |corporate - reference|
)

// SpreadResult is the benchmark spread of one corporate bond.
type SpreadResult struct {
	Bond       string           `json:"bond"`
	Benchmark  string           `json:"benchmark"`
	Spread     decimal.Decimal  `json:"spread_to_benchmark"`
	Convention SpreadConvention `json:"convention"`
}

// CurveSpreadResult is the spread of one corporate bond to the interpolated government curve.
type CurveSpreadResult struct {
	Bond              string          `json:"bond"`
	Term              float64         `json:"term"`
	InterpolatedYield float64         `json:"interpolated_yield"`
	Spread            decimal.Decimal `json:"spread_to_curve"`
}
