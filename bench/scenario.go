package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrBadOp      = errors.New("bench: unknown operation")
	ErrBadElement = errors.New("bench: unknown element kind")
	ErrBadItems   = errors.New("bench: items must be positive")
	ErrNoScenario = errors.New("bench: config has no scenarios")
)

// Op selects the operation mix a scenario exercises.
type Op string

const (
	// OpPush appends items one at a time.
	OpPush Op = "push"
	// OpInsertFront inserts every item at index 0, the worst-case shift.
	OpInsertFront Op = "insert-front"
	// OpEraseFront fills the array and then erases index 0 until empty.
	OpEraseFront Op = "erase-front"
	// OpMixed interleaves pushes, front inserts and pops.
	OpMixed Op = "mixed"
)

// Element selects the element shape, chosen to exercise the plain and
// pointer-carrying lifetime paths and a large payload.
type Element string

const (
	// ElementSmall is a 4-byte pointer-free element.
	ElementSmall Element = "small"
	// ElementLarge is a 64-byte pointer-free element.
	ElementLarge Element = "large"
	// ElementBoxed carries a string and takes the slot-clearing path.
	ElementBoxed Element = "boxed"
)

// Threshold is the inline capacity used by every scenario workload, matching
// the library's suggested default for gameplay scratch lists.
const Threshold = 64

// Scenario is one named workload.
type Scenario struct {
	Name    string  `yaml:"name"`
	Op      Op      `yaml:"op"`
	Element Element `yaml:"element"`
	// Items is the number of elements handled per iteration. At or below
	// Threshold the workload should not allocate for plain elements.
	Items int `yaml:"items"`
}

func (s Scenario) Validate() error {
	switch s.Op {
	case OpPush, OpInsertFront, OpEraseFront, OpMixed:
	default:
		return fmt.Errorf("%w: %q in scenario %q", ErrBadOp, s.Op, s.Name)
	}
	switch s.Element {
	case ElementSmall, ElementLarge, ElementBoxed:
	default:
		return fmt.Errorf("%w: %q in scenario %q", ErrBadElement, s.Element, s.Name)
	}
	if s.Items <= 0 {
		return fmt.Errorf("%w: %d in scenario %q", ErrBadItems, s.Items, s.Name)
	}
	return nil
}

// Config is the root of a scenarios YAML file.
type Config struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

func (c Config) Validate() error {
	if len(c.Scenarios) == 0 {
		return ErrNoScenario
	}
	for _, s := range c.Scenarios {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig reads and validates a scenarios YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("bench: reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("bench: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfig returns the built-in scenario set used when no config file is
// given: each operation below and above the inline threshold.
func DefaultConfig() Config {
	mk := func(op Op, el Element, items int) Scenario {
		return Scenario{
			Name:    fmt.Sprintf("%s-%s-%d", op, el, items),
			Op:      op,
			Element: el,
			Items:   items,
		}
	}
	return Config{Scenarios: []Scenario{
		mk(OpPush, ElementSmall, Threshold-16),
		mk(OpPush, ElementSmall, Threshold*16),
		mk(OpPush, ElementLarge, Threshold-16),
		mk(OpPush, ElementBoxed, Threshold-16),
		mk(OpInsertFront, ElementSmall, Threshold),
		mk(OpEraseFront, ElementSmall, Threshold),
		mk(OpMixed, ElementSmall, Threshold*4),
		mk(OpMixed, ElementBoxed, Threshold*4),
	}}
}
