// Package spread computes corporate bond yield spreads against government
// benchmarks: the nearest-term benchmark bond and an interpolated government curve.
package spread

import (
	"github.com/shopspring/decimal"

	"github.com/seenimoa/yieldspread/pkg/models"
)

// Options controls how spreads are computed.
type Options struct {
	Convention  models.SpreadConvention // default: signed
	Decimals    int32                   // rounding precision (default: 2)
	Extrapolate bool                    // extend the curve linearly beyond its end knots
	Workers     int                     // >1 evaluates bonds concurrently (default: 1)
}

// DefaultOptions returns signed spreads rounded to 2 decimals, no
// extrapolation, evaluated sequentially.
func DefaultOptions() Options {
	return Options{
		Convention: models.SpreadSigned,
		Decimals:   2,
		Workers:    1,
	}
}

func (o Options) withDefaults() Options {
	if o.Convention == "" {
		o.Convention = models.SpreadSigned
	}
	if o.Decimals < 0 {
		o.Decimals = 0
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

// Difference returns corporate - reference under the given convention,
// rounded half away from zero to places decimals. Both yields are converted
// to their shortest decimal form first, so 3.25 - 2.10 is exactly 1.15.
func Difference(corporate, reference float64, conv models.SpreadConvention, places int32) decimal.Decimal {
	d := decimal.NewFromFloat(corporate).Sub(decimal.NewFromFloat(reference))
	if conv == models.SpreadAbsolute {
		d = d.Abs()
	}
	return d.Round(places)
}
