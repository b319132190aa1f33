package kirchhoff

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Variant selects a feature-flag preset. Each preset corresponds to one
// deployed revision of the checker.
type Variant string

const (
	VariantCurrents  Variant = "v1" // currents only
	VariantEquations Variant = "v2" // currents, equations, submission log
	VariantFull      Variant = "v3" // v2 plus outer loop and independence warning

	DefaultVariant    = VariantEquations
	DefaultDiagramURL = "https://raw.githubusercontent.com/ZAKI1905/phy132-kirchhoff-checker/main/Diagrams/circuit_set_%d.png"
	DefaultListen     = ":8501"
)

type LoggingConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Endpoint      string        `yaml:"endpoint" validate:"omitempty,url"`
	Timeout       time.Duration `yaml:"timeout" validate:"gte=0"`
	RatePerMinute int           `yaml:"rate_per_minute" validate:"gte=0"`
}

// Configuration is loaded once at startup and passed by value to everything
// that needs it.
type Configuration struct {
	Variant           Variant       `yaml:"variant" validate:"oneof=v1 v2 v3"`
	Tolerance         float64       `yaml:"tolerance" validate:"gt=0"`
	EquationTolerance float64       `yaml:"equation_tolerance" validate:"gt=0"`
	EquationChecking  bool          `yaml:"equation_checking"`
	OuterLoop         bool          `yaml:"outer_loop"`
	IndependenceCheck bool          `yaml:"independence_check"`
	ProblemsPath      string        `yaml:"problems_path"`
	DiagramURL        string        `yaml:"diagram_url"`
	Listen            string        `yaml:"listen" validate:"required"`
	Logging           LoggingConfig `yaml:"logging"`
}

func DefaultConfiguration(variant Variant) (Configuration, error) {
	cfg := Configuration{
		Variant:           variant,
		EquationTolerance: DEFAULT_EQUATION_TOLERANCE,
		DiagramURL:        DefaultDiagramURL,
		Listen:            DefaultListen,
		Logging: LoggingConfig{
			Timeout:       10 * time.Second,
			RatePerMinute: 120,
		},
	}

	switch variant {
	case VariantCurrents:
		cfg.Tolerance = 0.5
	case VariantEquations:
		cfg.Tolerance = 1
		cfg.EquationChecking = true
		cfg.Logging.Enabled = true
	case VariantFull:
		cfg.Tolerance = 1
		cfg.EquationChecking = true
		cfg.OuterLoop = true
		cfg.IndependenceCheck = true
		cfg.Logging.Enabled = true
	default:
		return Configuration{}, fmt.Errorf("unknown variant %q", variant)
	}

	return cfg, nil
}

// LoadConfiguration reads a YAML file whose fields override the preset of
// the variant it names (DefaultVariant when absent).
func LoadConfiguration(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfiguration(data)
}

func ParseConfiguration(data []byte) (Configuration, error) {
	var head struct {
		Variant Variant `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Configuration{}, fmt.Errorf("parse config: %w", err)
	}
	if head.Variant == "" {
		head.Variant = DefaultVariant
	}

	cfg, err := DefaultConfiguration(head.Variant)
	if err != nil {
		return Configuration{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Variant = head.Variant

	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

func (c Configuration) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Repository loads ProblemsPath, or the embedded course sets when empty.
func (c Configuration) Repository() (*Repository, error) {
	if c.ProblemsPath == "" {
		return DefaultRepository()
	}
	return LoadRepository(c.ProblemsPath)
}

// DiagramFor returns the circuit diagram URL of a set, empty when no
// template is configured.
func (c Configuration) DiagramFor(id int) string {
	if c.DiagramURL == "" {
		return ""
	}
	return fmt.Sprintf(c.DiagramURL, id)
}
