package matrix

// Preorder removes structural zeros from the diagonal before factoring by
// swapping each such column with a twin: a column r where both (r, col) and
// (col, r) are present. Loop and junction equations routinely leave a zero
// on the diagonal, and the swap lets the first pivot search find it filled.
func (m *Matrix) Preorder() {
	if m.Factored {
		return
	}

	startAt := int64(1)
	for {
		anotherPassNeeded := false
		swapped := false

		for j := startAt; j <= m.Size; j++ {
			if !nonzero(m.diag(j)) {
				twins, twin := m.CountTwins(j)

				if twins == 1 {
					m.SwapCols(j, twin)
					swapped = true
				} else if twins > 1 && !anotherPassNeeded {
					anotherPassNeeded = true
					startAt = j
				}
			}
		}

		if anotherPassNeeded {
			for j := startAt; !swapped && j <= m.Size; j++ {
				if !nonzero(m.diag(j)) {
					if twins, twin := m.CountTwins(j); twins > 0 {
						m.SwapCols(j, twin)
						swapped = true
					}
				}
			}
		}

		if !anotherPassNeeded || !swapped {
			break
		}
	}

	m.Reordered = true
}

// CountTwins counts the twins of col, stopping at two, and returns the
// first one found.
func (m *Matrix) CountTwins(col int64) (twins int, twin int64) {
	for row := int64(1); row <= m.Size; row++ {
		if row == col || !nonzero(m.Rows[row][col]) || !nonzero(m.Rows[col][row]) {
			continue
		}

		twins++
		if twins == 1 {
			twin = row
		}
		if twins >= 2 {
			return
		}
	}
	return
}

// SwapCols exchanges two internal columns.
func (m *Matrix) SwapCols(col1, col2 int64) {
	m.colExchange(col1, col2)
	m.NumberOfInterchangesIsOdd = !m.NumberOfInterchangesIsOdd
}

func nonzero(element *Element) bool {
	return element != nil && element.Real != 0.0
}
