package kirchhoff

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"

	"kirchhoff/internal/matrix"
)

// Circuit is the fixed two-loop network: V1 and R1 on the left branch, V2
// and R2 on the right branch, R3 shared. I1 enters the junction, I2 and I3
// leave it.
type Circuit struct {
	V1 float64 `yaml:"v1" json:"v1" validate:"gt=0"`
	V2 float64 `yaml:"v2" json:"v2" validate:"gt=0"`
	R1 float64 `yaml:"r1" json:"r1" validate:"gt=0"`
	R2 float64 `yaml:"r2" json:"r2" validate:"gt=0"`
	R3 float64 `yaml:"r3" json:"r3" validate:"gt=0"`
}

// Currents are I1, I2, I3 in mA.
type Currents [3]float64

func (c Currents) String() string {
	return fmt.Sprintf("I1=%.2f mA, I2=%.2f mA, I3=%.2f mA", c[0], c[1], c[2])
}

// JunctionEquation is I1 - I2 - I3 = 0.
func JunctionEquation() Equation {
	return Equation{1, -1, -1, 0}
}

// LeftLoop is V1 - R1·I1 - R3·I3 = 0.
func (c Circuit) LeftLoop() Equation {
	return Equation{-c.R1, 0, -c.R3, c.V1}
}

// RightLoop is R2·I2 - R3·I3 - V2 = 0.
func (c Circuit) RightLoop() Equation {
	return Equation{0, c.R2, -c.R3, -c.V2}
}

// OuterLoop is the left loop minus the right loop.
func (c Circuit) OuterLoop() Equation {
	return Equation{-c.R1, -c.R2, 0, c.V1 + c.V2}
}

// ExpectedEquations returns the junction, left and right loop equations,
// followed by the outer loop when outerLoop is set.
func ExpectedEquations(c Circuit, outerLoop bool) []Equation {
	eqs := []Equation{JunctionEquation(), c.LeftLoop(), c.RightLoop()}
	if outerLoop {
		eqs = append(eqs, c.OuterLoop())
	}
	return eqs
}

// BuildSystem stamps the junction and both loop equations into a 3x3
// matrix and returns it with the 1-based right-hand side.
func BuildSystem(c Circuit, config *matrix.Configuration) (*matrix.Matrix, []float64, error) {
	A, err := matrix.Create(3, config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create matrix: %w", err)
	}

	eqs := ExpectedEquations(c, false)
	rhs := make([]float64, A.Size+1)
	for i, eq := range eqs {
		row := int64(i + 1)
		for j := 0; j < 3; j++ {
			if eq[j] != 0 {
				A.GetElement(row, int64(j+1)).Real += eq[j]
			}
		}
		rhs[row] = -eq[3]
	}

	return A, rhs, nil
}

// SolveCurrents solves the circuit and returns the branch currents in mA.
func SolveCurrents(c Circuit) (Currents, error) {
	return solveCurrents(c, nil)
}

// SolveCurrentsVerbose is SolveCurrents that prints the matrix before and
// after factorization to w.
func SolveCurrentsVerbose(c Circuit, w io.Writer) (Currents, error) {
	return solveCurrents(c, w)
}

func solveCurrents(c Circuit, w io.Writer) (Currents, error) {
	A, rhs, err := BuildSystem(c, &matrix.Configuration{
		Scaling:      true,
		RelThreshold: matrix.DEFAULT_REL_THRESHOLD,
		PrinterWidth: 100,
	})
	if err != nil {
		return Currents{}, err
	}
	defer A.Destroy()

	if w != nil {
		A.Print(w, false, true, true)
	}

	A.Preorder()
	if err := A.Factor(); err != nil {
		return Currents{}, fmt.Errorf("failed to factor circuit matrix: %w", err)
	}

	if w != nil {
		A.Print(w, true, true, true)
	}

	x, err := A.Solve(rhs)
	if err != nil {
		return Currents{}, fmt.Errorf("failed to solve circuit matrix: %w", err)
	}

	return Currents{x[1] * 1000, x[2] * 1000, x[3] * 1000}, nil
}

func round[T constraints.Float](v T, places int) T {
	scale := math.Pow(10, float64(places))
	return T(math.Round(float64(v)*scale) / scale)
}
