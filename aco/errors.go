package aco

import "errors"

// Sentinel errors. Callers match them with errors.Is; wrapped forms carry the
// failing operation as context.
var (
	// ErrNilEnvironment is returned when an Ant is built without an Environment.
	ErrNilEnvironment = errors.New("aco: nil environment")

	// ErrInvalidNodeCount is returned for problems with fewer than two nodes.
	ErrInvalidNodeCount = errors.New("aco: node count must be >= 2")

	// ErrOutOfRange marks an invalid node index or self-loop passed to an
	// Environment. Environments wrap it; the core only propagates it.
	ErrOutOfRange = errors.New("aco: node index out of range")

	// ErrDimensionMismatch is returned when aligned inputs differ in length.
	ErrDimensionMismatch = errors.New("aco: dimension mismatch")

	// ErrNoCandidates is returned when a selection phase receives no candidates.
	ErrNoCandidates = errors.New("aco: empty candidate list")

	// ErrDegenerateDistribution is returned when a cumulative distribution
	// holds NaN or negative values, typically after every desirability was 0.
	ErrDegenerateDistribution = errors.New("aco: degenerate probability distribution")

	// ErrTourNotConstructed is returned by LayPheromone before a tour with a
	// positive length exists.
	ErrTourNotConstructed = errors.New("aco: tour not constructed")
)
