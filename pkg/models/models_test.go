package models

import "testing"

// ── BondCategory Tests ──

func TestParseBondCategory(t *testing.T) {
	tests := []struct {
		label string
		want  BondCategory
		ok    bool
	}{
		{"corporate", Corporate, true},
		{"government", Government, true},
		{"Corporate", "", false},
		{"GOVERNMENT", "", false},
		{" corporate", "", false},
		{"municipal", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseBondCategory(tt.label)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseBondCategory(%q) = (%q, %v), want (%q, %v)", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}
