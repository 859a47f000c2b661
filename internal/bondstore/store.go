// Package bondstore loads the bond universe from CSV into per-category tables.
package bondstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seenimoa/yieldspread/pkg/models"
	"github.com/seenimoa/yieldspread/pkg/utils"
)

// fieldsPerRow is the number of columns a data row must carry:
// identifier, category, term text, yield text.
const fieldsPerRow = 4

// LoadStats summarises one load.
type LoadStats struct {
	Rows       int // data rows read, header excluded
	Corporate  int
	Government int
	Skipped    int // rows with an unrecognised category
	Duplicates int // rows that overwrote an earlier identifier in the same category
}

// Store holds the corporate and government tables of one run.
type Store struct {
	Corporate  *BondTable
	Government *BondTable
	Stats      LoadStats
}

// NewStore returns a store with two empty tables.
func NewStore() *Store {
	return &Store{
		Corporate:  NewBondTable(models.Corporate),
		Government: NewBondTable(models.Government),
	}
}

// Add routes r to the table for its category. Bonds of any other category are
// ignored and counted as skipped.
func (s *Store) Add(r models.BondRecord) {
	var table *BondTable
	switch r.Category {
	case models.Corporate:
		table = s.Corporate
	case models.Government:
		table = s.Government
	default:
		s.Stats.Skipped++
		return
	}
	if table.Put(r) {
		s.Stats.Duplicates++
	}
	s.Stats.Corporate = s.Corporate.Len()
	s.Stats.Government = s.Government.Len()
}

// ParseRow converts one data row into a bond. ok is false when the category
// label is neither "corporate" nor "government"; such rows carry no error.
func ParseRow(fields []string, line int) (rec models.BondRecord, ok bool, err error) {
	if len(fields) < fieldsPerRow {
		return rec, false, &ParseError{
			Line:  line,
			Field: "row",
			Value: strings.Join(fields, ","),
			Err:   fmt.Errorf("want %d fields, got %d", fieldsPerRow, len(fields)),
		}
	}

	category, known := models.ParseBondCategory(fields[1])
	if !known {
		return rec, false, nil
	}

	term, err := utils.TermYears(fields[2])
	if err != nil {
		return rec, false, &ParseError{Line: line, Field: "term", Value: fields[2], Err: err}
	}
	yield, err := utils.YieldPercent(fields[3])
	if err != nil {
		return rec, false, &ParseError{Line: line, Field: "yield", Value: fields[3], Err: err}
	}

	return models.BondRecord{
		ID:       fields[0],
		Category: category,
		Term:     term,
		Yield:    yield,
	}, true, nil
}

// Load reads a CSV bond table from r. The first row is a header and is
// discarded. The first malformed row aborts the load.
func Load(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	store := NewStore()

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return store, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		store.Stats.Rows++

		rec, ok, err := ParseRow(fields, line)
		if err != nil {
			return nil, err
		}
		if !ok {
			store.Stats.Skipped++
			continue
		}
		store.Add(rec)
	}

	return store, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	defer f.Close()

	store, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return store, nil
}
