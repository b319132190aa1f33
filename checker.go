package kirchhoff

import (
	"fmt"
	"math"
	"strings"
)

// toleranceSlack absorbs binary rounding so that expected+tolerance still
// lands inside the band.
const toleranceSlack = 1e-9

type Outcome int

const (
	Mismatch Outcome = iota
	WithinTolerance
	Exact
)

func (o Outcome) String() string {
	switch o {
	case Exact:
		return "exact"
	case WithinTolerance:
		return "within_tolerance"
	default:
		return "mismatch"
	}
}

// Label is the classification written to the submission log.
func (o Outcome) Label() string {
	switch o {
	case Exact:
		return "Correct"
	case WithinTolerance:
		return "Almost correct"
	default:
		return "Incorrect"
	}
}

type Verdict struct {
	SetID       string
	Outcome     Outcome
	Submitted   Currents
	Expected    Currents
	Differences Currents
}

// Message renders the student-facing feedback.
func (v Verdict) Message() string {
	switch v.Outcome {
	case Exact:
		return "✅ Correct! All currents exactly match the answer key."
	case WithinTolerance:
		lines := []string{"⚠️ Almost correct (within rounding tolerance)."}
		for i, diff := range v.Differences {
			lines = append(lines, fmt.Sprintf("I%d: off by %.2f mA", i+1, diff))
		}
		return strings.Join(lines, "\n")
	default:
		return "❌ Incorrect. Try again!"
	}
}

const InvalidSetMessage = "⚠️ Invalid set number. Please check with your instructor."

// Checker grades submitted currents against the answer key.
type Checker struct {
	repo      *Repository
	tolerance float64
}

func NewChecker(repo *Repository, cfg Configuration) *Checker {
	return &Checker{repo: repo, tolerance: cfg.Tolerance}
}

func (c *Checker) Tolerance() float64 {
	return c.tolerance
}

// Check compares submitted against the key for setID. Unknown sets return an
// error wrapping ErrUnknownSet.
func (c *Checker) Check(setID string, submitted Currents) (Verdict, error) {
	set, err := c.repo.Lookup(setID)
	if err != nil {
		return Verdict{}, err
	}

	expected := *set.Answer
	v := Verdict{
		SetID:     setID,
		Submitted: submitted,
		Expected:  expected,
	}

	if submitted == expected {
		v.Outcome = Exact
		return v, nil
	}

	within := true
	for i := range submitted {
		v.Differences[i] = math.Abs(submitted[i] - expected[i])
		// NaN differences fail the band.
		if !(v.Differences[i] <= c.tolerance+toleranceSlack) {
			within = false
		}
	}
	if within {
		v.Outcome = WithinTolerance
	}

	return v, nil
}
