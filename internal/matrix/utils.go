package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

func elementMag(e *Element) float64 {
	return math.Abs(e.Real)
}

func largest[T constraints.Float](values ...T) T {
	var result T
	for _, v := range values {
		if v < 0 {
			v = -v
		}
		if v > result {
			result = v
		}
	}
	return result
}

// largestElement returns the largest magnitude in the active submatrix
// starting at step.
func (m *Matrix) largestElement(step int64) float64 {
	result := 0.0
	for i := step; i <= m.Size; i++ {
		for j := step; j <= m.Size; j++ {
			if element := m.Rows[i][j]; element != nil {
				result = largest(result, element.Real)
			}
		}
	}
	return result
}
