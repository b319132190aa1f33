package kirchhoff

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed problems.yaml
var defaultProblems []byte

var ErrUnknownSet = errors.New("unknown problem set")

var structValidator = validator.New()

// ProblemSet is one preset circuit. Answer is nil in the file when the key
// should be derived from the circuit; after loading it is always set.
type ProblemSet struct {
	ID            int       `yaml:"id" json:"id" validate:"min=1,max=10"`
	Circuit       Circuit   `yaml:"circuit" json:"circuit"`
	Answer        *Currents `yaml:"answer,omitempty" json:"answer,omitempty"`
	AnswerDerived bool      `yaml:"-" json:"answer_derived"`
}

type repositoryFile struct {
	Sets []ProblemSet `yaml:"sets" validate:"required,min=1,dive"`
}

// Repository maps set ids ("1".."10") to problem sets. It is immutable once
// loaded.
type Repository struct {
	sets map[string]ProblemSet
}

// Discrepancy is a configured answer that disagrees with the one solved
// from the circuit.
type Discrepancy struct {
	SetID      string
	Configured Currents
	Derived    Currents
}

func DefaultRepository() (*Repository, error) {
	return ParseRepository(defaultProblems)
}

// LoadRepository reads a problem file. YAML and JSON are both accepted.
func LoadRepository(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problems: %w", err)
	}
	return ParseRepository(data)
}

func ParseRepository(data []byte) (*Repository, error) {
	var file repositoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse problems: %w", err)
	}
	if err := structValidator.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid problems: %w", err)
	}

	r := &Repository{sets: make(map[string]ProblemSet, len(file.Sets))}
	for _, set := range file.Sets {
		id := strconv.Itoa(set.ID)
		if _, ok := r.sets[id]; ok {
			return nil, fmt.Errorf("invalid problems: duplicate set %s", id)
		}

		if set.Answer == nil {
			derived, err := SolveCurrents(set.Circuit)
			if err != nil {
				return nil, fmt.Errorf("derive answer for set %s: %w", id, err)
			}
			answer := Currents{round(derived[0], 2), round(derived[1], 2), round(derived[2], 2)}
			set.Answer = &answer
			set.AnswerDerived = true
		}
		r.sets[id] = set
	}

	return r, nil
}

func (r *Repository) Lookup(id string) (ProblemSet, error) {
	id = strings.TrimSpace(id)
	set, ok := r.sets[id]
	if !ok {
		return ProblemSet{}, fmt.Errorf("%w: %q", ErrUnknownSet, id)
	}
	return set, nil
}

// IDs returns the set ids in numeric order.
func (r *Repository) IDs() []string {
	ids := make([]string, 0, len(r.sets))
	for id := range r.sets {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		return r.sets[a].ID - r.sets[b].ID
	})
	return ids
}

func (r *Repository) Len() int {
	return len(r.sets)
}

// CrossCheck solves every circuit and reports configured answers that are
// further than tolerance from the solution in any component.
func (r *Repository) CrossCheck(tolerance float64) ([]Discrepancy, error) {
	var discrepancies []Discrepancy
	for _, id := range r.IDs() {
		set := r.sets[id]
		if set.AnswerDerived {
			continue
		}

		derived, err := SolveCurrents(set.Circuit)
		if err != nil {
			return nil, fmt.Errorf("solve set %s: %w", id, err)
		}
		for i := range derived {
			if math.Abs(derived[i]-set.Answer[i]) > tolerance {
				discrepancies = append(discrepancies, Discrepancy{SetID: id, Configured: *set.Answer, Derived: derived})
				break
			}
		}
	}
	return discrepancies, nil
}
