package utils

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTermYears(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5 years", 5},
		{"10.3 years", 10.3},
		{" 2.5 years ", 2.5},
		{"7", 7},
		{"0.25 months", 0.25},
	}
	for _, tt := range tests {
		got, err := TermYears(tt.in)
		if err != nil {
			t.Fatalf("TermYears(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("TermYears(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestYieldPercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3.25%", 3.25},
		{"2.10%", 2.10},
		{"-0.15%", -0.15},
		{"4", 4},
		{" 5.30% ", 5.30},
	}
	for _, tt := range tests {
		got, err := YieldPercent(tt.in)
		if err != nil {
			t.Fatalf("YieldPercent(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("YieldPercent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLeadingNumberInvalid(t *testing.T) {
	for _, in := range []string{"", "years", "five years", "%", "abc%"} {
		if _, err := TermYears(in); err == nil {
			t.Errorf("TermYears(%q) expected error", in)
		}
		if _, err := YieldPercent(in); err == nil {
			t.Errorf("YieldPercent(%q) expected error", in)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		d       decimal.Decimal
		places  int32
		percent bool
		want    string
	}{
		{decimal.NewFromFloat(1), 2, false, "1.00"},
		{decimal.NewFromFloat(1.33), 2, false, "1.33"},
		{decimal.NewFromFloat(-0.5), 2, true, "-0.50%"},
		{decimal.NewFromFloat(1.6), 1, true, "1.6%"},
	}
	for _, tt := range tests {
		if got := FormatFixed(tt.d, tt.places, tt.percent); got != tt.want {
			t.Errorf("FormatFixed(%s, %d, %v) = %q, want %q", tt.d, tt.places, tt.percent, got, tt.want)
		}
	}
}

func TestLeadingNumberNonFinite(t *testing.T) {
	for _, in := range []string{"inf%", "nan%", "-Inf%", "Infinity%", "NaN"} {
		_, err := YieldPercent(in)
		if !errors.Is(err, ErrNotFinite) {
			t.Errorf("YieldPercent(%q): expected ErrNotFinite, got %v", in, err)
		}
	}
	if _, err := TermYears("Inf years"); !errors.Is(err, ErrNotFinite) {
		t.Errorf("TermYears(\"Inf years\"): expected ErrNotFinite, got %v", err)
	}
}
