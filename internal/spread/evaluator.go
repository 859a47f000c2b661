package spread

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/yieldspread/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Evaluator
// ════════════════════════════════════════════════════════════════════

// Evaluator computes benchmark and curve spreads for a set of corporate
// bonds. Results are returned in the order of the input bonds regardless of
// how many workers are used.
type Evaluator struct {
	opts   Options
	logger *slog.Logger
}

// NewEvaluator creates an evaluator. A nil logger discards output.
func NewEvaluator(opts Options, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Evaluator{opts: opts.withDefaults(), logger: logger}
}

// Options returns the effective options.
func (e *Evaluator) Options() Options { return e.opts }

// BenchmarkSpreads matches every corporate bond to its nearest government bond.
func (e *Evaluator) BenchmarkSpreads(ctx context.Context, corporate, government []models.BondRecord) ([]models.SpreadResult, error) {
	m, err := NewMatcher(government, e.opts)
	if err != nil {
		return nil, err
	}
	return evaluate(ctx, e.opts.Workers, corporate, func(c models.BondRecord) (models.SpreadResult, error) {
		r := m.Match(c)
		e.logger.Debug("benchmark matched",
			slog.String("bond", r.Bond),
			slog.String("benchmark", r.Benchmark),
			slog.String("spread", r.Spread.String()),
		)
		return r, nil
	})
}

// CurveSpreads evaluates every corporate bond against the interpolated
// government curve.
func (e *Evaluator) CurveSpreads(ctx context.Context, corporate, government []models.BondRecord) ([]models.CurveSpreadResult, error) {
	curve, err := NewYieldCurve(government, e.opts.Extrapolate)
	if err != nil {
		return nil, err
	}
	lo, hi := curve.Domain()
	e.logger.Debug("yield curve built",
		slog.Int("knots", len(curve.points)),
		slog.Float64("min_term", lo),
		slog.Float64("max_term", hi),
	)
	return evaluate(ctx, e.opts.Workers, corporate, func(c models.BondRecord) (models.CurveSpreadResult, error) {
		r, err := curve.Spread(c, e.opts.Convention, e.opts.Decimals)
		if err != nil {
			return r, err
		}
		e.logger.Debug("curve spread",
			slog.String("bond", r.Bond),
			slog.Float64("interpolated_yield", r.InterpolatedYield),
			slog.String("spread", r.Spread.String()),
		)
		return r, nil
	})
}

// evaluate applies fn to every bond. With more than one worker the calls run
// concurrently; results keep input order and the error reported is the one
// for the earliest failing bond.
func evaluate[T any](ctx context.Context, workers int, bonds []models.BondRecord, fn func(models.BondRecord) (T, error)) ([]T, error) {
	results := make([]T, len(bonds))

	if workers <= 1 {
		for i, b := range bonds {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r, err := fn(b)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	errs := make([]error, len(bonds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, b := range bonds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = fn(b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate bonds: %w", err)
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
