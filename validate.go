package kirchhoff

import (
	"errors"
	"fmt"
)

var ErrEquationCheckingDisabled = errors.New("equation checking is disabled")

type EquationReport struct {
	SetID     string
	Equations []Equation
	Matches   []bool
	Expected  []Equation

	// Independent is meaningful only when IndependenceChecked is set. It
	// covers the non-blank equations.
	IndependenceChecked bool
	Independent         bool
}

func (r EquationReport) AllMatched() bool {
	for _, ok := range r.Matches {
		if !ok {
			return false
		}
	}
	return len(r.Matches) > 0
}

// Outcome classifies the report for logging and metrics.
func (r EquationReport) Outcome() Outcome {
	matched := 0
	for _, ok := range r.Matches {
		if ok {
			matched++
		}
	}
	switch {
	case matched == len(r.Matches) && matched > 0:
		return Exact
	case matched > 0:
		return WithinTolerance
	default:
		return Mismatch
	}
}

// Messages renders one line per equation plus the redundancy warning.
func (r EquationReport) Messages() []string {
	messages := make([]string, 0, len(r.Matches)+1)
	for i, ok := range r.Matches {
		if ok {
			messages = append(messages, fmt.Sprintf("✅ Equation %d is correctly set up.", i+1))
		} else {
			messages = append(messages, fmt.Sprintf("❌ Equation %d does not match any expected Kirchhoff equation. Check signs and coefficients.", i+1))
		}
	}
	if r.IndependenceChecked && !r.Independent {
		messages = append(messages, "⚠️ Your equations are not linearly independent. One of them repeats information from the others.")
	}
	return messages
}

// EquationValidator checks student Kirchhoff equations for a problem set.
type EquationValidator struct {
	repo *Repository
	cfg  Configuration
}

func NewEquationValidator(repo *Repository, cfg Configuration) *EquationValidator {
	return &EquationValidator{repo: repo, cfg: cfg}
}

func (v *EquationValidator) Expected(setID string) ([]Equation, error) {
	set, err := v.repo.Lookup(setID)
	if err != nil {
		return nil, err
	}
	return ExpectedEquations(set.Circuit, v.cfg.OuterLoop), nil
}

func (v *EquationValidator) Validate(setID string, eqs []Equation) (EquationReport, error) {
	if !v.cfg.EquationChecking {
		return EquationReport{}, ErrEquationCheckingDisabled
	}

	expected, err := v.Expected(setID)
	if err != nil {
		return EquationReport{}, err
	}

	report := EquationReport{
		SetID:     setID,
		Equations: eqs,
		Matches:   CompareEquations(eqs, expected, v.cfg.EquationTolerance),
		Expected:  expected,
	}

	if v.cfg.IndependenceCheck {
		filled := make([]Equation, 0, len(eqs))
		for _, eq := range eqs {
			if !eq.Blank() {
				filled = append(filled, eq)
			}
		}
		report.IndependenceChecked = true
		report.Independent = IsLinearlyIndependent(filled)
	}

	return report, nil
}
