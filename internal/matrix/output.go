package matrix

import (
	"fmt"
	"io"
	"math"
)

func (m *Matrix) WriteStatus(w io.Writer, step int64) {
	fmt.Fprintf(w, "Step = %d   ", step)
	fmt.Fprintf(w, "Pivot found at %d,%d using SearchEntireMatrix\n", m.PivotsOriginalRow, m.PivotsOriginalCol)

	// Mapping information
	fmt.Fprintf(w, "IntToExtRowMap     = ")
	for i := int64(1); i <= m.Size; i++ {
		fmt.Fprintf(w, "%2d  ", m.IntToExtRowMap[i])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "IntToExtColMap     = ")
	for i := int64(1); i <= m.Size; i++ {
		fmt.Fprintf(w, "%2d  ", m.IntToExtColMap[i])
	}
	fmt.Fprintf(w, "\n\n")
}

// Print writes the matrix to w. With printReordered the internal ordering is
// shown, otherwise rows and columns appear in external order. data prints
// values instead of a structure map, header adds the summary.
func (m *Matrix) Print(w io.Writer, printReordered bool, data bool, header bool) {
	if m == nil {
		return
	}

	if header {
		fmt.Fprintf(w, "MATRIX SUMMARY\n\n")
		fmt.Fprintf(w, "Size of matrix = %d x %d.\n", m.Size, m.Size)
		if m.Reordered && printReordered {
			fmt.Fprintf(w, "Matrix has been reordered.\n")
		}
		fmt.Fprintln(w)

		if m.Factored {
			fmt.Fprintf(w, "Matrix after factorization:\n")
		} else {
			fmt.Fprintf(w, "Matrix before factorization:\n")
		}
	}

	if m.Size == 0 {
		return
	}

	columns := m.Config.PrinterWidth
	if header {
		columns -= 5
	}
	if data {
		columns = (columns + 1) / 10
	}
	if columns < 1 {
		columns = 1
	}

	getRow := func(i int64) int64 {
		if printReordered {
			return i
		}
		return m.ExtToIntRowMap[i]
	}

	getCol := func(j int64) int64 {
		if printReordered {
			return j
		}
		return m.ExtToIntColMap[j]
	}

	startCol := int64(1)
	for startCol <= m.Size {
		stopCol := startCol + int64(columns) - 1
		if stopCol > m.Size {
			stopCol = m.Size
		}

		if header {
			if data {
				fmt.Fprintf(w, "    ")
				for col := startCol; col <= stopCol; col++ {
					fmt.Fprintf(w, " %9d", m.IntToExtColMap[getCol(col)])
				}
				fmt.Fprintf(w, "\n\n")
			} else {
				fmt.Fprintf(w, "Columns %d to %d.\n", startCol, stopCol)
			}
		}

		for i := int64(1); i <= m.Size; i++ {
			row := getRow(i)

			if header {
				fmt.Fprintf(w, "%4d", m.IntToExtRowMap[row])
				if !data {
					fmt.Fprintf(w, " ")
				}
			}

			for colIndex := startCol; colIndex <= stopCol; colIndex++ {
				element := m.Rows[row][getCol(colIndex)]

				if element != nil {
					if data {
						fmt.Fprintf(w, " %9.3g", element.Real)
					} else {
						fmt.Fprintf(w, "x")
					}
				} else {
					if data {
						fmt.Fprintf(w, "       ...")
					} else {
						fmt.Fprintf(w, ".")
					}
				}
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w)
		startCol = stopCol + 1
	}

	if header {
		stats := m.calculateStatistics()
		fmt.Fprintf(w, "\nLargest element in matrix = %-1.4g.\n", stats.largestElement)
		fmt.Fprintf(w, "Smallest element in matrix = %-1.4g.\n", stats.smallestElement)

		if m.Factored {
			// Diagonal holds reciprocals once factored.
			fmt.Fprintf(w, "\nLargest diagonal element = %-1.4g.\n", stats.largestDiag)
			fmt.Fprintf(w, "Smallest diagonal element = %-1.4g.\n", stats.smallestDiag)
		} else {
			fmt.Fprintf(w, "\nLargest pivot element = %-1.4g.\n", stats.largestDiag)
			fmt.Fprintf(w, "Smallest pivot element = %-1.4g.\n", stats.smallestDiag)
		}

		density := float64(stats.elementCount) * 100.0 / float64(m.Size*m.Size)
		fmt.Fprintf(w, "\nDensity = %.2f%%.\n", density)
		if m.Factored {
			fmt.Fprintf(w, "Number of fill-ins = %d.\n", m.Fillins)
		}
		fmt.Fprintln(w)
	}
}

type matrixStats struct {
	largestElement  float64
	smallestElement float64
	largestDiag     float64
	smallestDiag    float64
	elementCount    int64
}

func (m *Matrix) calculateStatistics() matrixStats {
	stats := matrixStats{
		smallestElement: math.MaxFloat64,
		smallestDiag:    math.MaxFloat64,
	}

	for i := int64(1); i <= m.Size; i++ {
		for j := int64(1); j <= m.Size; j++ {
			element := m.Rows[i][j]
			if element == nil {
				continue
			}
			stats.elementCount++

			magnitude := elementMag(element)
			stats.largestElement = math.Max(stats.largestElement, magnitude)
			stats.smallestElement = math.Min(stats.smallestElement, magnitude)

			if i == j {
				stats.largestDiag = math.Max(stats.largestDiag, magnitude)
				stats.smallestDiag = math.Min(stats.smallestDiag, magnitude)
			}
		}
	}

	if stats.elementCount == 0 {
		stats.smallestElement = 0.0
	}
	if stats.smallestDiag == math.MaxFloat64 {
		stats.smallestDiag = 0.0
	}
	return stats
}
