package spread

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBenchmarkSet       = errors.New("no government bonds available as benchmarks")
	ErrInsufficientCurvePoints = errors.New("yield curve needs at least 2 distinct government terms")
	ErrOutOfRange              = errors.New("term outside yield curve range")
)

// OutOfRangeError reports a term that falls outside the government curve
// while extrapolation is disabled.
type OutOfRangeError struct {
	Bond string // empty when the lookup was not made for a specific bond
	Term float64
	Min  float64
	Max  float64
}

func (e *OutOfRangeError) Error() string {
	if e.Bond == "" {
		return fmt.Sprintf("term %g outside curve range [%g, %g]", e.Term, e.Min, e.Max)
	}
	return fmt.Sprintf("bond %s: term %g outside curve range [%g, %g]", e.Bond, e.Term, e.Min, e.Max)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }
