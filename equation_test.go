package kirchhoff

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Equation
		want Equation
	}{
		{"pivot A", Equation{2, -2, -2, 0}, Equation{1, -1, -1, 0}},
		{"pivot B", Equation{0, 180, -220, -5}, Equation{0, 1, -220.0 / 180, -5.0 / 180}},
		{"pivot C", Equation{0, 0, -4, 8}, Equation{0, 0, 1, -2}},
		{"negative pivot", Equation{-120, 0, -220, 15}, Equation{1, 0, 220.0 / 120, -15.0 / 120}},
		{"degenerate", Equation{0, 0, 0, 7}, Equation{0, 0, 0, 7}},
		{"blank", Equation{}, Equation{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Normalize(tt.in), approx); diff != "" {
				t.Errorf("Normalize(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []Equation{
		{1, -1, -1, 0},
		{-120, 0, -220, 15},
		{0, 180, -220, -5},
		{0, 0, 3.5, -1.25},
		{-0.001, 42, 7, 1e6},
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if diff := cmp.Diff(once, twice, approx); diff != "" {
			t.Errorf("Normalize not idempotent for %v (-once +twice):\n%s", in, diff)
		}
	}
}

func TestCompareEquations(t *testing.T) {
	set1 := Circuit{V1: 15, V2: 5, R1: 120, R2: 180, R3: 220}
	expected := ExpectedEquations(set1, false)

	tests := []struct {
		name    string
		student []Equation
		want    []bool
	}{
		{"scale invariance", []Equation{{2, -2, -2, 0}}, []bool{true}},
		{"left loop multiple", []Equation{{-1, 0, -11.0 / 6, 0.125}}, []bool{true}},
		{"all three", []Equation{{-1, 1, 1, 0}, {120, 0, 220, -15}, {0, -180, 220, 5}}, []bool{true, true, true}},
		{"sign flipped constant", []Equation{{-120, 0, -220, -15}}, []bool{false}},
		{"duplicates both match", []Equation{{1, -1, -1, 0}, {3, -3, -3, 0}}, []bool{true, true}},
		{"degenerate never matches", []Equation{{0, 0, 0, 0}, {0, 0, 0, 1}}, []bool{false, false}},
		{"outer loop absent", []Equation{{-120, -180, 0, 20}}, []bool{false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareEquations(tt.student, expected, DEFAULT_EQUATION_TOLERANCE)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CompareEquations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompareEquations_Tolerance(t *testing.T) {
	expected := []Equation{{1, -1, -1, 0}}

	got := CompareEquations([]Equation{{1, -1.09, -1, 0}, {1, -1.11, -1, 0}}, expected, 0.1)
	if diff := cmp.Diff([]bool{true, false}, got); diff != "" {
		t.Errorf("CompareEquations mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareEquations_NonFinite(t *testing.T) {
	c := Circuit{V1: 15, V2: 5, R1: 120, R2: 180, R3: 220}
	nan, inf := math.NaN(), math.Inf(1)

	student := []Equation{
		{nan, 0, 0, 0},
		{1, -1, -1, nan},
		{inf, 0, 0, 0},
		{1, -1, -1, inf},
		{-120, 0, -220, math.Inf(-1)},
	}
	got := CompareEquations(student, ExpectedEquations(c, true), DEFAULT_EQUATION_TOLERANCE)
	if diff := cmp.Diff(make([]bool, len(student)), got); diff != "" {
		t.Errorf("CompareEquations mismatch (-want +got):\n%s", diff)
	}
}

func TestIsLinearlyIndependent(t *testing.T) {
	tests := []struct {
		name string
		eqs  []Equation
		want bool
	}{
		{"empty", nil, true},
		{"single", []Equation{{1, -1, -1, 0}}, true},
		{"scalar multiple", []Equation{{1, -1, -1, 0}, {2, -2, -2, 0}, {0, 1, -1, 0}}, false},
		{"course set", []Equation{{1, -1, -1, 0}, {-120, 0, -220, 15}, {0, 180, -220, -5}}, true},
		{"constant ignored", []Equation{{1, -1, -1, 0}, {1, -1, -1, 9}}, false},
		{"combination", []Equation{{-120, 0, -220, 15}, {0, 180, -220, -5}, {-120, -180, 0, 20}}, false},
		{"zero row", []Equation{{1, -1, -1, 0}, {0, 0, 0, 4}}, false},
		{"four equations", []Equation{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {1, 1, 1, 0}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLinearlyIndependent(tt.eqs); got != tt.want {
				t.Errorf("IsLinearlyIndependent = %v, want %v", got, tt.want)
			}
		})
	}
}
