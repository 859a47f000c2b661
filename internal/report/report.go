// Package report renders spread results as tabular output.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/seenimoa/yieldspread/pkg/models"
	"github.com/seenimoa/yieldspread/pkg/utils"
)

// ════════════════════════════════════════════════════════════════════
// Report Kinds & Formats
// ════════════════════════════════════════════════════════════════════

// Kind selects which result set a report carries.
type Kind string

const (
	KindBenchmark Kind = "benchmark"
	KindCurve     Kind = "curve"
)

// Header returns the fixed column header for the report kind.
func (k Kind) Header() []string {
	switch k {
	case KindBenchmark:
		return []string{"bond", "benchmark", "spread_to_benchmark"}
	case KindCurve:
		return []string{"bond", "spread_to_curve"}
	default:
		return nil
	}
}

// Format specifies the output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want csv, text or json)", s)
	}
}

// Config controls report rendering.
type Config struct {
	Format        Format // output encoding (default: csv)
	Decimals      int32  // digits printed after the decimal point (default: 2)
	PercentSuffix bool   // append "%" to spread values in csv/text output
}

// DefaultConfig returns csv output with 2 decimals.
func DefaultConfig() Config {
	return Config{Format: FormatCSV, Decimals: 2}
}

// ════════════════════════════════════════════════════════════════════
// Writer
// ════════════════════════════════════════════════════════════════════

// Writer renders benchmark and curve reports. Rows appear in the order of
// the results passed in.
type Writer struct {
	cfg Config
}

// NewWriter creates a writer, filling unset config fields with defaults.
func NewWriter(cfg Config) *Writer {
	if cfg.Format == "" {
		cfg.Format = FormatCSV
	}
	if cfg.Decimals < 0 {
		cfg.Decimals = 0
	}
	return &Writer{cfg: cfg}
}

// Benchmark writes a benchmark-spread report to w.
func (wr *Writer) Benchmark(w io.Writer, results []models.SpreadResult) error {
	if wr.cfg.Format == FormatJSON {
		return wr.writeJSON(w, KindBenchmark, results)
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Bond, r.Benchmark, wr.value(r.Spread)})
	}
	return wr.writeTable(w, KindBenchmark, rows)
}

// Curve writes a curve-spread report to w.
func (wr *Writer) Curve(w io.Writer, results []models.CurveSpreadResult) error {
	if wr.cfg.Format == FormatJSON {
		return wr.writeJSON(w, KindCurve, results)
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Bond, wr.value(r.Spread)})
	}
	return wr.writeTable(w, KindCurve, rows)
}

// BenchmarkFile writes a benchmark-spread report to path.
func (wr *Writer) BenchmarkFile(path string, results []models.SpreadResult) error {
	return writeFile(path, func(w io.Writer) error { return wr.Benchmark(w, results) })
}

// CurveFile writes a curve-spread report to path.
func (wr *Writer) CurveFile(path string, results []models.CurveSpreadResult) error {
	return writeFile(path, func(w io.Writer) error { return wr.Curve(w, results) })
}

func (wr *Writer) value(d decimal.Decimal) string {
	return utils.FormatFixed(d, wr.cfg.Decimals, wr.cfg.PercentSuffix)
}

// ════════════════════════════════════════════════════════════════════
// Renderers
// ════════════════════════════════════════════════════════════════════

func (wr *Writer) writeTable(w io.Writer, kind Kind, rows [][]string) error {
	if wr.cfg.Format == FormatText {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(kind.Header(), "\t"))
		for _, row := range rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(kind.Header()); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s report: %w", kind, err)
	}
	return nil
}

type jsonReport struct {
	Kind    Kind `json:"kind"`
	Results any  `json:"results"`
}

func (wr *Writer) writeJSON(w io.Writer, kind Kind, results any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Kind: kind, Results: results})
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("write report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", path, err)
	}
	return nil
}
