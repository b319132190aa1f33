package matrix

import (
	"fmt"
)

func Create(size int64, config *Configuration) (*Matrix, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size: %d", size)
	}

	defaultConfig := Configuration{
		Scaling:      false,
		RelThreshold: DEFAULT_REL_THRESHOLD,
		AbsThreshold: 0.0,
		RankEpsilon:  DEFAULT_RANK_EPSILON,
		PrinterWidth: DEFAULT_PRINTER_WIDTH,
		Annotate:     0,
	}

	if config == nil {
		config = &defaultConfig
	}

	matrixSize := size + 1 // 1-based indexing

	m := &Matrix{
		Config:         *config,
		Size:           size,
		Rows:           make([][]*Element, matrixSize),
		Intermediate:   make([]float64, matrixSize),
		RowScale:       make([]float64, matrixSize),
		RelThreshold:   config.RelThreshold,
		AbsThreshold:   config.AbsThreshold,
		IntToExtRowMap: make([]int64, matrixSize),
		IntToExtColMap: make([]int64, matrixSize),
		ExtToIntRowMap: make([]int64, matrixSize),
		ExtToIntColMap: make([]int64, matrixSize),
	}

	if m.RelThreshold <= 0.0 || m.RelThreshold > 1.0 {
		m.RelThreshold = DEFAULT_REL_THRESHOLD
	}
	if m.AbsThreshold < 0.0 {
		m.AbsThreshold = 0.0
	}
	if m.Config.RankEpsilon <= 0.0 {
		m.Config.RankEpsilon = DEFAULT_RANK_EPSILON
	}
	if m.Config.PrinterWidth <= 0 {
		m.Config.PrinterWidth = DEFAULT_PRINTER_WIDTH
	}

	for i := int64(0); i <= size; i++ {
		m.Rows[i] = make([]*Element, matrixSize)
		m.IntToExtRowMap[i] = i
		m.IntToExtColMap[i] = i
		m.ExtToIntRowMap[i] = i
		m.ExtToIntColMap[i] = i
		m.RowScale[i] = 1.0
	}

	return m, nil
}

// GetElement returns the element at the external (row, col), creating it
// when absent. Row or column 0 is the ground node: the returned element is
// a detached sink and writes to it are discarded.
func (m *Matrix) GetElement(row, col int64) *Element {
	if row < 0 || col < 0 || row > m.Size || col > m.Size {
		return nil
	}
	if row == 0 || col == 0 {
		return &Element{}
	}

	internalRow := m.ExtToIntRowMap[row]
	internalCol := m.ExtToIntColMap[col]

	if element := m.Rows[internalRow][internalCol]; element != nil {
		return element
	}

	return m.createElement(internalRow, internalCol, false)
}

func (m *Matrix) createElement(row, col int64, fillin bool) *Element {
	element := &Element{Row: row, Col: col, Real: 0.0}
	m.Rows[row][col] = element

	if fillin {
		m.Fillins++
	}
	m.Elements++

	return element
}

func (m *Matrix) Clear() {
	for i := m.Size; i > 0; i-- {
		for _, element := range m.Rows[i] {
			if element != nil {
				element.Real = 0.0
			}
		}
		m.RowScale[i] = 1.0
	}

	m.Factored = false
	m.Scaled = false
	m.SingularCol = 0
	m.SingularRow = 0
}

func (m *Matrix) Destroy() {
	m.Rows = nil
	m.Intermediate = nil
	m.RowScale = nil

	m.IntToExtColMap = nil
	m.IntToExtRowMap = nil
	m.ExtToIntColMap = nil
	m.ExtToIntRowMap = nil

	m.Elements = 0
	m.Fillins = 0

	m.Size = 0
	m.Factored = false
	m.Reordered = false
	m.Scaled = false

	m.SingularRow = 0
	m.SingularCol = 0

	m.PivotsOriginalRow = 0
	m.PivotsOriginalCol = 0
}

func (m *Matrix) ElementCount() int {
	return m.Elements
}

func (m *Matrix) FillinCount() int {
	return m.Fillins
}

// diag returns the element on the internal diagonal, nil when structurally zero.
func (m *Matrix) diag(index int64) *Element {
	return m.Rows[index][index]
}
