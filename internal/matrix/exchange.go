package matrix

func (m *Matrix) ExchangeRowsAndCols(pivot *Element, step int64) {
	row, col := pivot.Row, pivot.Col

	if row != step {
		m.rowExchange(step, row)
		m.NumberOfInterchangesIsOdd = !m.NumberOfInterchangesIsOdd
	}
	if col != step {
		m.colExchange(step, col)
		m.NumberOfInterchangesIsOdd = !m.NumberOfInterchangesIsOdd
	}
}

func (m *Matrix) rowExchange(row1, row2 int64) {
	m.Rows[row1], m.Rows[row2] = m.Rows[row2], m.Rows[row1]

	for _, element := range m.Rows[row1] {
		if element != nil {
			element.Row = row1
		}
	}
	for _, element := range m.Rows[row2] {
		if element != nil {
			element.Row = row2
		}
	}

	m.IntToExtRowMap[row1], m.IntToExtRowMap[row2] = m.IntToExtRowMap[row2], m.IntToExtRowMap[row1]
	m.ExtToIntRowMap[m.IntToExtRowMap[row1]] = row1
	m.ExtToIntRowMap[m.IntToExtRowMap[row2]] = row2
}

func (m *Matrix) colExchange(col1, col2 int64) {
	for i := int64(1); i <= m.Size; i++ {
		row := m.Rows[i]
		row[col1], row[col2] = row[col2], row[col1]
		if row[col1] != nil {
			row[col1].Col = col1
		}
		if row[col2] != nil {
			row[col2].Col = col2
		}
	}

	m.IntToExtColMap[col1], m.IntToExtColMap[col2] = m.IntToExtColMap[col2], m.IntToExtColMap[col1]
	m.ExtToIntColMap[m.IntToExtColMap[col1]] = col1
	m.ExtToIntColMap[m.IntToExtColMap[col2]] = col2
}
