package aco

// Environment is the oracle an Ant consults while building and reinforcing a
// tour. Node indices are in [0, n). Implementations report invalid indices
// and self-loops with an error wrapping ErrOutOfRange.
//
// Pheromone reads may observe slightly stale values while other ants deposit;
// AddPheromone must not lose concurrent updates to the same edge.
type Environment interface {
	// EdgeLength returns the positive length of edge (i,j). Symmetric.
	EdgeLength(i, j int) (float64, error)

	// PheromoneLevel returns the current non-negative pheromone on edge (i,j).
	PheromoneLevel(i, j int) (float64, error)

	// AddPheromone adds amount to the pheromone on edge (i,j).
	AddPheromone(i, j int, amount float64) error

	// Alpha is the pheromone exponent, constant for a run.
	Alpha() float64

	// Beta is the inverse-distance exponent, constant for a run.
	Beta() float64

	// TotalPheromone is the budget Q one ant spreads over a completed tour,
	// scaled by 1/tourLength.
	TotalPheromone() float64
}

// RandomSource supplies the uniform draws used by an Ant.
// *math/rand.Rand satisfies it. Implementations need not be goroutine-safe;
// each Ant owns its source.
type RandomSource interface {
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64

	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}
