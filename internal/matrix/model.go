package matrix

import "io"

const (
	DEFAULT_REL_THRESHOLD float64 = 1e-3
	DEFAULT_RANK_EPSILON  float64 = 1e-9
	DEFAULT_PRINTER_WIDTH int     = 80
)

type Configuration struct {
	Scaling      bool    // Equilibrate rows by their largest magnitude before factoring
	RelThreshold float64 // Relative pivot threshold, (0, 1]
	AbsThreshold float64 // Absolute pivot threshold
	RankEpsilon  float64 // Rank cutoff relative to the largest element
	PrinterWidth int     // Default: 80
	Annotate     int     // 0: None, 1: Pivot steps
}

type Matrix struct {
	Config Configuration

	Size int64 // Matrix size

	Rows         [][]*Element // Elements by internal row and column [1...Size][1...Size], nil is a structural zero
	Intermediate []float64    // Temporary vector for rhs and solution [1...Size]
	RowScale     []float64    // Row equilibration factors by external row [1...Size]
	RelThreshold float64      // Relative threshold
	AbsThreshold float64      // Absolute threshold

	// Factoring status flags
	NumberOfInterchangesIsOdd bool // number of row and column interchanges is odd
	Factored                  bool // factor done
	Reordered                 bool // reorder done
	Scaled                    bool // rows equilibrated

	SingularRow int64 // Singular row number (external)
	SingularCol int64 // Singular column number (external)

	// Counts
	Elements int // Element count
	Fillins  int // Fill-in count

	// Pivot
	PivotsOriginalRow int64 // Original pivot row number
	PivotsOriginalCol int64 // Original pivot column number

	IntToExtRowMap []int64 // Internal->External rows map [1...Size]
	IntToExtColMap []int64 // Internal->External columns map [1...Size]
	ExtToIntRowMap []int64 // External->Internal rows map [1...Size]
	ExtToIntColMap []int64 // External->Internal columns map [1...Size]

	Output io.Writer // Annotation sink, os.Stdout when nil
}

type Element struct {
	Real float64
	Row  int64 // internal row
	Col  int64 // internal column
}
