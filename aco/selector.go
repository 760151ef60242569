// Package aco - edge selection phases.
//
// Each phase is a small pure function over aligned slices:
//
//	candidates[k] ↔ lengths[k] ↔ levels[k] ↔ probabilities[k] ↔ cumulative[k]
//
// Position k always refers to edge (current, candidates[k]).
//
// Numeric policy:
//   - Exponentiation follows math.Pow: Pow(0, 0) == 1, so a zero pheromone
//     with α == 0 still scores 1.
//   - A zero length yields 1/0 == +Inf and is not rewritten.
//   - If every desirability is 0 the normalization is 0/0 == NaN. The NaN is
//     returned as-is; ChooseIndex rejects it with ErrDegenerateDistribution.
package aco

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// UnvisitedNodes returns the indices i with visited[i]==false, ascending.
//
// Complexity: O(n) time, O(n) space.
func UnvisitedNodes(visited []bool) []int {
	out := make([]int, 0, len(visited))

	var i int
	for i = 0; i < len(visited); i++ {
		if !visited[i] {
			out = append(out, i)
		}
	}

	return out
}

// EdgeLengths returns the lengths of edges (current, candidates[k]).
// Environment errors are returned wrapped with the failing edge.
//
// Complexity: O(k) oracle calls.
func EdgeLengths(env Environment, current int, candidates []int) ([]float64, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	lengths := make([]float64, len(candidates))

	var (
		k   int
		err error
	)
	for k = 0; k < len(candidates); k++ {
		lengths[k], err = env.EdgeLength(current, candidates[k])
		if err != nil {
			return nil, fmt.Errorf("EdgeLengths(%d,%d): %w", current, candidates[k], err)
		}
	}

	return lengths, nil
}

// PheromoneLevels returns the pheromone on edges (current, candidates[k]).
//
// Complexity: O(k) oracle calls.
func PheromoneLevels(env Environment, current int, candidates []int) ([]float64, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	levels := make([]float64, len(candidates))

	var (
		k   int
		err error
	)
	for k = 0; k < len(candidates); k++ {
		levels[k], err = env.PheromoneLevel(current, candidates[k])
		if err != nil {
			return nil, fmt.Errorf("PheromoneLevels(%d,%d): %w", current, candidates[k], err)
		}
	}

	return levels, nil
}

// Desirability returns τ^α · (1/length)^β for a single edge.
func Desirability(level, length, alpha, beta float64) float64 {
	return math.Pow(level, alpha) * math.Pow(1/length, beta)
}

// EdgeProbabilities normalizes per-edge desirabilities into a distribution:
//
//	p[k] = Desirability(levels[k], lengths[k]) / Σ_j Desirability(levels[j], lengths[j])
//
// Contract:
//   - len(levels) == len(lengths) > 0, else ErrDimensionMismatch / ErrNoCandidates.
//   - For positive lengths and α,β ≥ 0 the result sums to 1 (up to rounding)
//     and every entry lies in [0,1].
//   - Degenerate inputs are not repaired (see the package numeric policy).
//
// Complexity: O(k) time, O(k) space.
func EdgeProbabilities(levels, lengths []float64, alpha, beta float64) ([]float64, error) {
	if len(levels) != len(lengths) {
		return nil, ErrDimensionMismatch
	}
	if len(levels) == 0 {
		return nil, ErrNoCandidates
	}

	probs := make([]float64, len(levels))

	var k int
	for k = 0; k < len(levels); k++ {
		probs[k] = Desirability(levels[k], lengths[k], alpha, beta)
	}

	total := floats.Sum(probs)
	for k = 0; k < len(probs); k++ {
		probs[k] /= total
	}

	return probs, nil
}

// CumulativeProbabilities returns inclusive prefix sums of probabilities:
// out[i] = probabilities[0] + … + probabilities[i].
//
// Complexity: O(k) time, O(k) space.
func CumulativeProbabilities(probabilities []float64) []float64 {
	return floats.CumSum(make([]float64, len(probabilities)), probabilities)
}

// ChooseIndex performs the roulette-wheel scan for a given uniform draw:
// it returns the smallest i with cumulative[i] >= draw.
//
// Behavior:
//   - If rounding leaves every cumulative value below draw, the last index is
//     returned instead of running past the end.
//   - A NaN or negative cumulative value yields ErrDegenerateDistribution;
//     no index is guessed.
//   - An empty slice yields ErrNoCandidates.
//
// Complexity: O(k).
func ChooseIndex(cumulative []float64, draw float64) (int, error) {
	var n = len(cumulative)
	if n == 0 {
		return 0, ErrNoCandidates
	}

	var (
		i int
		c float64
	)
	// Validate the whole wheel before sampling so a bad tail is never masked
	// by an early hit.
	for i = 0; i < n; i++ {
		c = cumulative[i]
		if math.IsNaN(c) || c < 0 {
			return 0, fmt.Errorf("ChooseIndex: cumulative[%d]=%v: %w", i, c, ErrDegenerateDistribution)
		}
	}

	for i = 0; i < n; i++ {
		if cumulative[i] >= draw {
			return i, nil
		}
	}

	return n - 1, nil
}

// Roulette draws r ∈ [0,1) from rng and returns ChooseIndex(cumulative, r).
func Roulette(cumulative []float64, rng RandomSource) (int, error) {
	return ChooseIndex(cumulative, rng.Float64())
}
