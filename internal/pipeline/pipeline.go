// Package pipeline composes one yield-spread run: load the bond table,
// compute spreads, write the reports.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seenimoa/yieldspread/internal/bondstore"
	"github.com/seenimoa/yieldspread/internal/config"
	"github.com/seenimoa/yieldspread/internal/report"
	"github.com/seenimoa/yieldspread/internal/spread"
	"github.com/seenimoa/yieldspread/pkg/models"
)

// Reports selects which result sets a run produces.
type Reports struct {
	Benchmark bool
	Curve     bool
}

// AllReports selects both the benchmark and the curve report.
func AllReports() Reports { return Reports{Benchmark: true, Curve: true} }

// Result is the in-memory outcome of a run.
type Result struct {
	RunID     string
	Stats     bondstore.LoadStats
	Benchmark []models.SpreadResult
	Curve     []models.CurveSpreadResult
}

// Pipeline runs load → compute → write with a fixed configuration.
type Pipeline struct {
	cfg       *config.Config
	evaluator *spread.Evaluator
	writer    *report.Writer
	logger    *slog.Logger
}

// New validates cfg and prepares a pipeline. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:       cfg,
		evaluator: spread.NewEvaluator(SpreadOptions(cfg), logger),
		writer: report.NewWriter(report.Config{
			Format:        format,
			Decimals:      int32(cfg.Spread.Decimals),
			PercentSuffix: cfg.Output.PercentSuffix,
		}),
		logger: logger,
	}, nil
}

// SpreadOptions maps configuration onto spread computation options.
func SpreadOptions(cfg *config.Config) spread.Options {
	return spread.Options{
		Convention:  models.SpreadConvention(cfg.Spread.Convention),
		Decimals:    int32(cfg.Spread.Decimals),
		Extrapolate: cfg.Curve.Extrapolate,
		Workers:     cfg.Compute.Workers,
	}
}

// Run loads the configured input, computes the selected reports and writes
// them to their configured paths. Any error aborts the run; reports already
// written are left in place.
func (p *Pipeline) Run(ctx context.Context, which Reports) (*Result, error) {
	runID := uuid.NewString()
	log := p.logger.With(slog.String("run_id", runID))

	store, err := bondstore.LoadFile(p.cfg.Input.Path)
	if err != nil {
		return nil, err
	}
	log.Info("bonds loaded",
		slog.String("input", p.cfg.Input.Path),
		slog.Int("rows", store.Stats.Rows),
		slog.Int("corporate", store.Stats.Corporate),
		slog.Int("government", store.Stats.Government),
		slog.Int("skipped", store.Stats.Skipped),
		slog.Int("duplicates", store.Stats.Duplicates),
	)
	if store.Stats.Duplicates > 0 {
		log.Warn("duplicate bond identifiers overwritten", slog.Int("count", store.Stats.Duplicates))
	}

	res, err := p.Compute(ctx, store, which)
	if err != nil {
		return nil, err
	}
	res.RunID = runID

	if which.Benchmark {
		if err := p.writer.BenchmarkFile(p.cfg.Output.BenchmarkPath, res.Benchmark); err != nil {
			return nil, err
		}
		log.Info("benchmark report written",
			slog.String("path", p.cfg.Output.BenchmarkPath),
			slog.Int("rows", len(res.Benchmark)),
		)
	}
	if which.Curve {
		if err := p.writer.CurveFile(p.cfg.Output.CurvePath, res.Curve); err != nil {
			return nil, err
		}
		log.Info("curve report written",
			slog.String("path", p.cfg.Output.CurvePath),
			slog.Int("rows", len(res.Curve)),
		)
	}

	return res, nil
}

// Compute runs the selected calculations over an already loaded store.
// It performs no I/O.
func (p *Pipeline) Compute(ctx context.Context, store *bondstore.Store, which Reports) (*Result, error) {
	corporate := store.Corporate.Records()
	government := store.Government.Records()
	res := &Result{Stats: store.Stats}

	if which.Benchmark {
		out, err := p.evaluator.BenchmarkSpreads(ctx, corporate, government)
		if err != nil {
			return nil, fmt.Errorf("benchmark spreads: %w", err)
		}
		res.Benchmark = out
	}
	if which.Curve {
		out, err := p.evaluator.CurveSpreads(ctx, corporate, government)
		if err != nil {
			return nil, fmt.Errorf("curve spreads: %w", err)
		}
		res.Curve = out
	}
	return res, nil
}
