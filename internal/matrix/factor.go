package matrix

import (
	"fmt"
	"io"
	"math"
	"os"
)

func (m *Matrix) Factor() error {
	if m.Factored {
		return nil
	}
	if m.Config.Scaling {
		m.ScaleRows()
	}

	for step := int64(1); step <= m.Size; step++ {
		pivot := m.SearchForPivot(step)
		if pivot == nil {
			m.SingularRow = m.IntToExtRowMap[step]
			m.SingularCol = m.IntToExtColMap[step]
			return fmt.Errorf("matrix is singular at step %d", step)
		}

		m.ExchangeRowsAndCols(pivot, step)

		if err := m.RealRowColElimination(pivot); err != nil {
			return err
		}

		if m.Config.Annotate > 0 {
			m.WriteStatus(m.output(), step)
		}
	}

	m.Reordered = true
	m.Factored = true
	return nil
}

// Rank eliminates with full pivoting until nothing in the active submatrix
// exceeds RankEpsilon times the largest element, and returns the number of
// pivots taken. The matrix is factored only when the rank is full.
func (m *Matrix) Rank() int64 {
	if m.Config.Scaling {
		m.ScaleRows()
	}

	largestMag := m.largestElement(1)
	if largestMag == 0.0 {
		return 0
	}

	savedThreshold := m.AbsThreshold
	m.AbsThreshold = math.Max(savedThreshold, largestMag*m.Config.RankEpsilon*float64(m.Size))
	defer func() { m.AbsThreshold = savedThreshold }()

	var rank int64
	for step := int64(1); step <= m.Size; step++ {
		pivot := m.SearchForPivot(step)
		if pivot == nil {
			break
		}

		m.ExchangeRowsAndCols(pivot, step)

		if err := m.RealRowColElimination(pivot); err != nil {
			break
		}
		rank++

		if m.Config.Annotate > 0 {
			m.WriteStatus(m.output(), step)
		}
	}

	m.Reordered = true
	m.Factored = rank == m.Size
	return rank
}

// ScaleRows divides every row by its largest magnitude. The factors are
// kept by external row so Solve can scale the right-hand side to match.
func (m *Matrix) ScaleRows() {
	if m.Scaled {
		return
	}

	for i := int64(1); i <= m.Size; i++ {
		rowMax := 0.0
		for _, element := range m.Rows[i] {
			if element != nil {
				rowMax = largest(rowMax, element.Real)
			}
		}
		if rowMax == 0.0 {
			continue
		}

		scale := 1.0 / rowMax
		for _, element := range m.Rows[i] {
			if element != nil {
				element.Real *= scale
			}
		}
		m.RowScale[m.IntToExtRowMap[i]] = scale
	}

	m.Scaled = true
}

// Determinant returns the determinant of a factored matrix, undoing row
// scaling.
func (m *Matrix) Determinant() (float64, error) {
	if !m.Factored {
		return 0.0, fmt.Errorf("matrix is not factored")
	}

	determinant := 1.0
	for i := int64(1); i <= m.Size; i++ {
		pivot := m.diag(i)
		if pivot == nil || pivot.Real == 0.0 {
			return 0.0, nil
		}
		determinant /= pivot.Real // diagonal holds reciprocals
		determinant /= m.RowScale[m.IntToExtRowMap[i]]
	}

	if m.NumberOfInterchangesIsOdd {
		determinant = -determinant
	}
	return determinant, nil
}

func (m *Matrix) output() io.Writer {
	if m.Output != nil {
		return m.Output
	}
	return os.Stdout
}
