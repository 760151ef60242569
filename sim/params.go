package sim

import (
	"fmt"
	"math"
)

// Params holds the constants of a run.
type Params struct {
	// Alpha is the pheromone exponent (≥ 0).
	Alpha float64 `yaml:"alpha"`

	// Beta is the inverse-distance exponent (≥ 0).
	Beta float64 `yaml:"beta"`

	// TotalPheromone is the budget Q an ant spreads over its tour (> 0).
	TotalPheromone float64 `yaml:"total_pheromone"`

	// InitialPheromone is the starting level on every edge (≥ 0).
	InitialPheromone float64 `yaml:"initial_pheromone"`
}

// Default values, the usual textbook starting point.
const (
	DefaultAlpha            = 1.0
	DefaultBeta             = 2.0
	DefaultTotalPheromone   = 100.0
	DefaultInitialPheromone = 1.0
)

// DefaultParams returns α=1, β=2, Q=100, τ0=1.
func DefaultParams() Params {
	return Params{
		Alpha:            DefaultAlpha,
		Beta:             DefaultBeta,
		TotalPheromone:   DefaultTotalPheromone,
		InitialPheromone: DefaultInitialPheromone,
	}
}

// Validate reports the first invalid field wrapped in ErrInvalidParams.
//
// τ0 == 0 with α > 0 is accepted; it yields a degenerate distribution that
// the ants report on their first step.
func (p Params) Validate() error {
	switch {
	case !finite(p.Alpha) || p.Alpha < 0:
		return fmt.Errorf("alpha=%v must be finite and >= 0: %w", p.Alpha, ErrInvalidParams)
	case !finite(p.Beta) || p.Beta < 0:
		return fmt.Errorf("beta=%v must be finite and >= 0: %w", p.Beta, ErrInvalidParams)
	case !finite(p.TotalPheromone) || p.TotalPheromone <= 0:
		return fmt.Errorf("total_pheromone=%v must be finite and > 0: %w", p.TotalPheromone, ErrInvalidParams)
	case !finite(p.InitialPheromone) || p.InitialPheromone < 0:
		return fmt.Errorf("initial_pheromone=%v must be finite and >= 0: %w", p.InitialPheromone, ErrInvalidParams)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
