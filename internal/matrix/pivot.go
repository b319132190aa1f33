package matrix

func (m *Matrix) SearchForPivot(step int64) *Element {
	pivot := m.SearchEntireMatrix(step)
	if pivot != nil {
		m.PivotsOriginalRow = m.IntToExtRowMap[pivot.Row]
		m.PivotsOriginalCol = m.IntToExtColMap[pivot.Col]
	}
	return pivot
}

// FindBiggestInCol returns the largest magnitude in col at or below step.
func (m *Matrix) FindBiggestInCol(col, step int64) float64 {
	largestMag := 0.0
	for row := step; row <= m.Size; row++ {
		if element := m.Rows[row][col]; element != nil {
			if magnitude := elementMag(element); magnitude > largestMag {
				largestMag = magnitude
			}
		}
	}
	return largestMag
}

// SearchEntireMatrix picks the acceptable element closest to the largest of
// its column, breaking ties by magnitude. Nothing above AbsThreshold means
// the active submatrix is numerically zero and nil is returned.
func (m *Matrix) SearchEntireMatrix(step int64) *Element {
	var chosenPivot *Element
	chosenMag := 0.0
	ratioOfAccepted := 0.0

	for col := step; col <= m.Size; col++ {
		largestInCol := m.FindBiggestInCol(col, step)
		if largestInCol == 0.0 {
			continue
		}

		for row := step; row <= m.Size; row++ {
			current := m.Rows[row][col]
			if current == nil {
				continue
			}

			magnitude := elementMag(current)
			if magnitude <= m.RelThreshold*largestInCol || magnitude <= m.AbsThreshold {
				continue
			}

			ratio := largestInCol / magnitude
			if chosenPivot == nil || ratio < ratioOfAccepted ||
				(ratio == ratioOfAccepted && magnitude > chosenMag) {
				chosenPivot = current
				chosenMag = magnitude
				ratioOfAccepted = ratio
			}
		}
	}

	return chosenPivot
}
