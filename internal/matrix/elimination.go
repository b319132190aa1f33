package matrix

import (
	"fmt"
)

// RealRowColElimination replaces the pivot with its reciprocal, scales the
// upper row by it and subtracts the outer product from the lower-right
// submatrix.
func (m *Matrix) RealRowColElimination(pivot *Element) error {
	if elementMag(pivot) == 0.0 {
		m.SingularRow = m.IntToExtRowMap[pivot.Row]
		m.SingularCol = m.IntToExtColMap[pivot.Col]
		return fmt.Errorf("matrix is singular at row %d", m.SingularRow)
	}

	step := pivot.Row
	pivot.Real = 1.0 / pivot.Real

	for col := step + 1; col <= m.Size; col++ {
		pUpper := m.Rows[step][col]
		if pUpper == nil {
			continue
		}
		pUpper.Real *= pivot.Real

		for row := step + 1; row <= m.Size; row++ {
			pLower := m.Rows[row][step]
			if pLower == nil {
				continue
			}

			pSub := m.Rows[row][col]
			if pSub == nil {
				pSub = m.createElement(row, col, true)
			}
			pSub.Real -= pUpper.Real * pLower.Real
		}
	}

	return nil
}
