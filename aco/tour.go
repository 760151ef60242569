// Package aco - tour utilities.
//
// A tour here is an open permutation of {0..n-1}; the edge from the last
// element back to the first is implicit. These helpers let callers (and
// tests) check what an Ant produced without trusting its bookkeeping.
package aco

import "fmt"

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
// Returns ErrInvalidNodeCount for n<2 and ErrDimensionMismatch for a wrong
// length, an out-of-range element or a duplicate.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n < 2 {
		return ErrInvalidNodeCount
	}
	if len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("ValidatePermutation: position %d holds %d: %w", i, v, ErrDimensionMismatch)
		}
		seen[v] = true
	}

	return nil
}

// ClosedTourLength sums env.EdgeLength over the n edges of the closed tour
// tour[0]→tour[1]→…→tour[n-1]→tour[0].
//
// Complexity: O(n) oracle calls.
func ClosedTourLength(env Environment, tour []int) (float64, error) {
	if env == nil {
		return 0, ErrNilEnvironment
	}
	if len(tour) < 2 {
		return 0, ErrInvalidNodeCount
	}

	var (
		sum float64
		w   float64
		n   = len(tour)
		k   int
		err error
	)
	for k = 0; k < n; k++ {
		w, err = env.EdgeLength(tour[k], tour[(k+1)%n])
		if err != nil {
			return 0, fmt.Errorf("ClosedTourLength: %w", err)
		}
		sum += w
	}

	return sum, nil
}
