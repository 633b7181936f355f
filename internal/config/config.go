// Package config loads solver configuration from YAML files. Defaults are a
// pure function; file loading lives here and in the CLI, never in the engine.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bzhhan/autoopus/internal/solver"
)

// ErrDegraded wraps any load/parse failure. Callers log it and continue on
// defaults; it never aborts construction.
var ErrDegraded = errors.New("config: using defaults")

// Solver is the on-disk shape of the engine configuration.
type Solver struct {
	HeuristicWeights solver.Weights   `yaml:"heuristic_weights"`
	Interrupt        solver.Interrupt `yaml:"interrupt"`
}

// Defaults returns the documented default configuration: the standard
// heuristic weights and a disabled interrupt policy.
func Defaults() Solver {
	return Solver{HeuristicWeights: solver.DefaultWeights()}
}

// Load reads path and overlays it on Defaults. On a missing or malformed
// file it returns Defaults together with a non-nil warning wrapping
// ErrDegraded; the returned configuration is always usable.
func Load(path string) (Solver, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), fmt.Errorf("%w: read %s: %v", ErrDegraded, path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("%w: parse %s: %v", ErrDegraded, path, err)
	}
	return cfg, nil
}
