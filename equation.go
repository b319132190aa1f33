// Package kirchhoff grades student work on the PHY 132 two-loop circuit:
// branch currents against an answer key and Kirchhoff equations against the
// junction and loop equations of the circuit.
package kirchhoff

import (
	"fmt"
	"math"

	"kirchhoff/internal/matrix"
)

const (
	DEFAULT_EQUATION_TOLERANCE float64 = 0.1
	DEFAULT_RANK_EPSILON       float64 = 1e-9
)

// Equation holds the coefficients (A, B, C, D) of A·I1 + B·I2 + C·I3 + D = 0.
// Two equations are equivalent when one is a nonzero multiple of the other.
type Equation [4]float64

// Degenerate reports whether all three current coefficients are zero.
func (e Equation) Degenerate() bool {
	return e[0] == 0 && e[1] == 0 && e[2] == 0
}

// Blank reports an unfilled equation slot.
func (e Equation) Blank() bool {
	return e == Equation{}
}

func (e Equation) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", e[0], e[1], e[2], e[3])
}

// Normalize divides the equation by its pivot coefficient, the first nonzero
// of A, B, C. Degenerate equations are returned unchanged.
func Normalize(eq Equation) Equation {
	for i := 0; i < 3; i++ {
		if pivot := eq[i]; pivot != 0 {
			return Equation{eq[0] / pivot, eq[1] / pivot, eq[2] / pivot, eq[3] / pivot}
		}
	}
	return eq
}

// CompareEquations reports, for every student equation, whether it agrees
// with at least one expected equation on all four normalized components
// within tolerance. Several student equations may match the same expected
// one.
func CompareEquations(student, expected []Equation, tolerance float64) []bool {
	normalizedExpected := make([]Equation, len(expected))
	for i, eq := range expected {
		normalizedExpected[i] = Normalize(eq)
	}

	matches := make([]bool, len(student))
	for i, eq := range student {
		if eq.Degenerate() {
			continue
		}
		normalized := Normalize(eq)
		for _, exp := range normalizedExpected {
			if allClose(normalized, exp, tolerance) {
				matches[i] = true
				break
			}
		}
	}
	return matches
}

// allClose is false when any component is NaN.
func allClose(a, b Equation, tolerance float64) bool {
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= tolerance) {
			return false
		}
	}
	return true
}

// IsLinearlyIndependent reports whether the current coefficients of eqs have
// full row rank. The constant terms are ignored.
func IsLinearlyIndependent(eqs []Equation) bool {
	if len(eqs) == 0 {
		return true
	}
	return Rank(eqs) == len(eqs)
}

// Rank returns the rank of the n x 3 coefficient matrix of eqs.
func Rank(eqs []Equation) int {
	size := max(len(eqs), 3)

	A, err := matrix.Create(int64(size), &matrix.Configuration{
		Scaling:     true,
		RankEpsilon: DEFAULT_RANK_EPSILON,
	})
	if err != nil {
		return 0
	}
	defer A.Destroy()

	for i, eq := range eqs {
		for j := 0; j < 3; j++ {
			if eq[j] != 0 {
				A.GetElement(int64(i+1), int64(j+1)).Real += eq[j]
			}
		}
	}

	return int(A.Rank())
}
