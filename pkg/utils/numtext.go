// Package utils provides small text helpers shared by the loader and the report writer.
package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFinite is returned for text such as "inf" or "nan" that parses to a
// non-finite value.
var ErrNotFinite = errors.New("value is not a finite number")

// LeadingNumber parses the numeric token that precedes sep in text.
// "5 years" with sep " " yields 5; "3.25%" with sep "%" yields 3.25.
// Surrounding whitespace is ignored. Text without sep is parsed whole.
func LeadingNumber(text, sep string) (float64, error) {
	token := strings.TrimSpace(text)
	if i := strings.Index(token, sep); i >= 0 {
		token = token[:i]
	}
	token = strings.TrimSpace(token)
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", text, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse %q: %w", text, ErrNotFinite)
	}
	return v, nil
}

// TermYears extracts the term value from text such as "10.3 years".
func TermYears(text string) (float64, error) {
	return LeadingNumber(text, " ")
}

// YieldPercent extracts the yield value from text such as "5.30%".
func YieldPercent(text string) (float64, error) {
	return LeadingNumber(text, "%")
}

// FormatFixed renders d with exactly places decimals, optionally with a "%" suffix.
func FormatFixed(d decimal.Decimal, places int32, percent bool) string {
	s := d.StringFixed(places)
	if percent {
		return s + "%"
	}
	return s
}
