package matrix

import (
	"fmt"
)

// Solve returns x for Ax = rhs. Both rhs and the solution are 1-based in
// external ordering; index 0 is ignored.
func (m *Matrix) Solve(rhs []float64) (solution []float64, err error) {
	if !m.Factored {
		return nil, fmt.Errorf("matrix is not factored")
	}
	if len(rhs) < int(m.Size)+1 {
		return nil, fmt.Errorf("rhs array size(%d) is smaller than matrix size(%d)+1", len(rhs), m.Size)
	}
	if m.Intermediate == nil {
		return nil, fmt.Errorf("intermediate vector not allocated")
	}

	size := m.Size
	intermediate := m.Intermediate
	intToExtRowMap := m.IntToExtRowMap
	intToExtColMap := m.IntToExtColMap

	for i := size; i > 0; i-- {
		ext := intToExtRowMap[i]
		intermediate[i] = rhs[ext] * m.RowScale[ext]
	}

	// Forward elimination - Solves Lc = b
	for i := int64(1); i <= size; i++ {
		temp := intermediate[i]
		if temp != 0.0 {
			pivot := m.diag(i)
			if pivot == nil {
				return nil, fmt.Errorf("nil diagonal element at %d", i)
			}
			temp *= pivot.Real
			intermediate[i] = temp

			for row := i + 1; row <= size; row++ {
				if element := m.Rows[row][i]; element != nil {
					intermediate[row] -= temp * element.Real
				}
			}
		}
	}

	// Backward Substitution - Solves Ux = c
	for i := size; i > 0; i-- {
		temp := intermediate[i]
		for col := i + 1; col <= size; col++ {
			if element := m.Rows[i][col]; element != nil {
				temp -= element.Real * intermediate[col]
			}
		}
		intermediate[i] = temp
	}

	// Unscramble Intermediate vector - reorder from internal to external ordering
	solution = make([]float64, size+1)
	for i := size; i > 0; i-- {
		solution[intToExtColMap[i]] = intermediate[i]
	}

	return solution, nil
}
