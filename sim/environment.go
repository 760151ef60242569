package sim

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/acotsp/aco"
	"github.com/katalvlaran/acotsp/matrix"
)

// symTol is the structural tolerance for symmetry and zero-diagonal checks.
const symTol = 1e-12

// maxStripes bounds the number of pheromone locks.
const maxStripes = 64

// Environment is a matrix-backed aco.Environment. Build it with New.
type Environment struct {
	n       int
	params  Params
	dist    *matrix.Dense // immutable after New
	pher    *matrix.Dense
	stripes []sync.RWMutex
}

var _ aco.Environment = (*Environment)(nil)

// New validates dist and p and returns an Environment with every edge's
// pheromone set to p.InitialPheromone.
//
// dist must be square with n ≥ 2, finite, symmetric within 1e-12, with a
// zero diagonal and strictly positive off-diagonal entries. It is copied.
//
// Errors: ErrInvalidParams, ErrTooFewNodes, ErrNonPositiveLength, or the
// matrix validator sentinels (ErrNonSquare, ErrNaNInf, ErrAsymmetry,
// ErrNonZeroDiagonal).
//
// Complexity: O(n²).
func New(dist matrix.Matrix, p Params) (*Environment, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, fmt.Errorf("sim.New: %w", err)
	}
	n := dist.Rows()
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	if err := matrix.ValidateFinite(dist); err != nil {
		return nil, fmt.Errorf("sim.New: %w", err)
	}
	if err := matrix.ValidateZeroDiagonal(dist, symTol); err != nil {
		return nil, fmt.Errorf("sim.New: %w", err)
	}
	if err := matrix.ValidateSymmetric(dist, symTol); err != nil {
		return nil, fmt.Errorf("sim.New: %w", err)
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w, _ = dist.At(i, j)
			if i != j && w <= 0 {
				return nil, fmt.Errorf("sim.New: d(%d,%d)=%v: %w", i, j, w, ErrNonPositiveLength)
			}
			_ = d.Set(i, j, w)
		}
	}

	pher, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	pher.Fill(p.InitialPheromone, 0)

	stripes := n * (n - 1) / 2
	if stripes > maxStripes {
		stripes = maxStripes
	}

	return &Environment{
		n:       n,
		params:  p,
		dist:    d,
		pher:    pher,
		stripes: make([]sync.RWMutex, stripes),
	}, nil
}

// NewFromRows is New over a [][]float64 distance table.
func NewFromRows(rows [][]float64, p Params) (*Environment, error) {
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("sim.NewFromRows: %w", err)
	}

	return New(d, p)
}

// edge validates (i,j) and returns the stripe guarding it.
// Out-of-range indices and self-loops wrap aco.ErrOutOfRange; out-of-range
// indices additionally wrap matrix.ErrOutOfRange.
func (e *Environment) edge(i, j int) (*sync.RWMutex, error) {
	if i < 0 || i >= e.n || j < 0 || j >= e.n {
		return nil, fmt.Errorf("sim: edge (%d,%d) with n=%d: %w: %w", i, j, e.n, aco.ErrOutOfRange, matrix.ErrOutOfRange)
	}
	if i == j {
		return nil, fmt.Errorf("sim: self-loop (%d,%d): %w", i, j, aco.ErrOutOfRange)
	}
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}

	return &e.stripes[(lo*e.n+hi)%len(e.stripes)], nil
}

// EdgeLength returns d(i,j).
func (e *Environment) EdgeLength(i, j int) (float64, error) {
	if _, err := e.edge(i, j); err != nil {
		return 0, err
	}

	return e.dist.At(i, j)
}

// PheromoneLevel returns the current pheromone on (i,j).
func (e *Environment) PheromoneLevel(i, j int) (float64, error) {
	mu, err := e.edge(i, j)
	if err != nil {
		return 0, err
	}
	mu.RLock()
	defer mu.RUnlock()

	return e.pher.At(i, j)
}

// AddPheromone adds amount to both (i,j) and (j,i) atomically with respect
// to other deposits on the same edge.
func (e *Environment) AddPheromone(i, j int, amount float64) error {
	mu, err := e.edge(i, j)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()

	if _, err = e.pher.Add(i, j, amount); err != nil {
		return err
	}
	_, err = e.pher.Add(j, i, amount)

	return err
}

// Alpha returns Params.Alpha.
func (e *Environment) Alpha() float64 { return e.params.Alpha }

// Beta returns Params.Beta.
func (e *Environment) Beta() float64 { return e.params.Beta }

// TotalPheromone returns Params.TotalPheromone.
func (e *Environment) TotalPheromone() float64 { return e.params.TotalPheromone }

// Params returns the run constants.
func (e *Environment) Params() Params { return e.params }

// NumNodes returns n.
func (e *Environment) NumNodes() int { return e.n }

// Distances returns a copy of the distance matrix.
func (e *Environment) Distances() *matrix.Dense { return e.dist.Copy() }

// Pheromone returns a consistent snapshot of the pheromone matrix. It holds
// every stripe's read lock while copying, so no deposit is half-visible.
//
// Complexity: O(n²).
func (e *Environment) Pheromone() *matrix.Dense {
	var k int
	for k = range e.stripes {
		e.stripes[k].RLock()
	}
	cp := e.pher.Copy()
	for k = range e.stripes {
		e.stripes[k].RUnlock()
	}

	return cp
}

// NewAnt returns an ant over every node of e.
func (e *Environment) NewAnt(opts ...aco.Option) (*aco.Ant, error) {
	return aco.NewAnt(e, e.n, opts...)
}
