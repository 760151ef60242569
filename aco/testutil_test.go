// Package aco_test holds the shared fixtures: a slice-backed Environment and a
// scripted RandomSource that replays fixed draws.
package aco_test

import (
	"fmt"

	"github.com/katalvlaran/acotsp/aco"
)

const (
	// eps is the tolerance for sums that should equal 1 exactly in reals.
	eps = 1e-9

	// seedDet is the fixed seed used where a test only needs reproducibility.
	seedDet = int64(42)
)

// gridEnv is a minimal symmetric Environment backed by [][]float64.
// It is not safe for concurrent use; the sim package covers that.
type gridEnv struct {
	dist  [][]float64
	pher  [][]float64
	alpha float64
	beta  float64
	q     float64
}

var _ aco.Environment = (*gridEnv)(nil)

// newGridEnv builds an env with uniform pheromone tau0.
func newGridEnv(dist [][]float64, tau0, alpha, beta, q float64) *gridEnv {
	n := len(dist)
	pher := make([][]float64, n)
	for i := range pher {
		pher[i] = make([]float64, n)
		for j := range pher[i] {
			if i != j {
				pher[i][j] = tau0
			}
		}
	}

	return &gridEnv{dist: dist, pher: pher, alpha: alpha, beta: beta, q: q}
}

func (e *gridEnv) check(i, j int) error {
	n := len(e.dist)
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		return fmt.Errorf("gridEnv(%d,%d): %w", i, j, aco.ErrOutOfRange)
	}

	return nil
}

func (e *gridEnv) EdgeLength(i, j int) (float64, error) {
	if err := e.check(i, j); err != nil {
		return 0, err
	}

	return e.dist[i][j], nil
}

func (e *gridEnv) PheromoneLevel(i, j int) (float64, error) {
	if err := e.check(i, j); err != nil {
		return 0, err
	}

	return e.pher[i][j], nil
}

func (e *gridEnv) AddPheromone(i, j int, amount float64) error {
	if err := e.check(i, j); err != nil {
		return err
	}
	e.pher[i][j] += amount
	e.pher[j][i] += amount

	return nil
}

func (e *gridEnv) Alpha() float64          { return e.alpha }
func (e *gridEnv) Beta() float64           { return e.beta }
func (e *gridEnv) TotalPheromone() float64 { return e.q }

// snapshot copies the pheromone grid.
func (e *gridEnv) snapshot() [][]float64 {
	cp := make([][]float64, len(e.pher))
	for i := range e.pher {
		cp[i] = append([]float64(nil), e.pher[i]...)
	}

	return cp
}

// fourNodes is the symmetric instance
//
//	d(0,1)=1 d(0,2)=2 d(0,3)=3 d(1,2)=1 d(1,3)=2 d(2,3)=1
//
// whose Hamiltonian cycles have lengths 6, 6 and 8.
func fourNodes() [][]float64 {
	return [][]float64{
		{0, 1, 2, 3},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{3, 2, 1, 0},
	}
}

// scriptedRand replays fixed draws and fails the test run loudly (panic) when
// the script is exhausted, which would mean the Ant drew more than expected.
type scriptedRand struct {
	ints   []int
	floats []float64
}

var _ aco.RandomSource = (*scriptedRand)(nil)

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		panic("scriptedRand: Intn script exhausted")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]

	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		panic("scriptedRand: Float64 script exhausted")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]

	return v
}

// failingEnv wraps an env and fails PheromoneLevel for one source node.
type failingEnv struct {
	*gridEnv
	badFrom int
}

func (e *failingEnv) PheromoneLevel(i, j int) (float64, error) {
	if i == e.badFrom {
		return 0, fmt.Errorf("failingEnv(%d,%d): %w", i, j, aco.ErrOutOfRange)
	}

	return e.gridEnv.PheromoneLevel(i, j)
}
