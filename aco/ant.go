package aco

import (
	"fmt"
	"strconv"
	"strings"
)

// Ant constructs one closed tour at a time and can reinforce it with
// pheromone. The zero value is not usable; build ants with NewAnt.
//
// Lifecycle per ConstructTour call:
//
//	Start        random start node, fresh visited set, length 0
//	Constructing one roulette step per remaining node
//	Closed       closing edge added; tour and length committed
//
// A failed construction leaves the previously committed tour untouched.
type Ant struct {
	env      Environment
	rng      RandomSource
	numNodes int

	tour       []int   // permutation of [0,numNodes); implicitly closed
	tourLength float64 // sum of the numNodes traversed edges
	built      bool    // true once a tour has been committed
}

// NewAnt returns an Ant over numNodes nodes of env.
// Without options the Ant draws from a private stream seeded off the global
// source; use WithSeed or WithRand for reproducible runs.
//
// Errors: ErrNilEnvironment, ErrInvalidNodeCount (numNodes < 2).
func NewAnt(env Environment, numNodes int, opts ...Option) (*Ant, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	if numNodes < 2 {
		return nil, fmt.Errorf("NewAnt(%d): %w", numNodes, ErrInvalidNodeCount)
	}

	a := &Ant{
		env:      env,
		numNodes: numNodes,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = freshRand()
	}

	return a, nil
}

// ConstructTour visits every node once, starting from a uniformly random
// node, closes the cycle back to the start and returns the tour length.
//
// Every step runs the selection phases in order: UnvisitedNodes,
// EdgeLengths, PheromoneLevels, EdgeProbabilities, CumulativeProbabilities,
// Roulette. Environment errors and ErrDegenerateDistribution abort the run;
// in that case the Ant keeps its previous tour.
//
// Complexity: O(n²) time (n steps over up to n candidates), O(n) space.
func (a *Ant) ConstructTour() (float64, error) {
	var (
		n       = a.numNodes
		tour    = make([]int, n)
		visited = make([]bool, n)
		current = a.rng.Intn(n)
		length  float64
		next    int
		edge    float64
		count   int
		err     error
	)
	visited[current] = true
	tour[0] = current

	for count = 1; count < n; count++ {
		next, edge, err = a.step(current, visited)
		if err != nil {
			return 0, fmt.Errorf("ConstructTour: step %d from %d: %w", count, current, err)
		}
		visited[next] = true
		tour[count] = next
		length += edge
		current = next
	}

	// Closing edge: last node back to the start node.
	edge, err = a.env.EdgeLength(tour[n-1], tour[0])
	if err != nil {
		return 0, fmt.Errorf("ConstructTour: closing edge (%d,%d): %w", tour[n-1], tour[0], err)
	}
	length += edge

	a.tour = tour
	a.tourLength = length
	a.built = true

	return length, nil
}

// step picks the successor of current among unvisited nodes and returns it
// together with the length of the traversed edge.
func (a *Ant) step(current int, visited []bool) (int, float64, error) {
	candidates := UnvisitedNodes(visited)
	if len(candidates) == 0 {
		return 0, 0, ErrNoCandidates
	}

	lengths, err := EdgeLengths(a.env, current, candidates)
	if err != nil {
		return 0, 0, err
	}
	levels, err := PheromoneLevels(a.env, current, candidates)
	if err != nil {
		return 0, 0, err
	}
	probs, err := EdgeProbabilities(levels, lengths, a.env.Alpha(), a.env.Beta())
	if err != nil {
		return 0, 0, err
	}
	idx, err := Roulette(CumulativeProbabilities(probs), a.rng)
	if err != nil {
		return 0, 0, err
	}

	return candidates[idx], lengths[idx], nil
}

// LayPheromone adds TotalPheromone()/TourLength() to every edge of the
// committed tour, closing edge included. The Ant itself is not modified.
//
// Errors: ErrTourNotConstructed if no tour with a positive length exists;
// environment errors are propagated. A failure part-way leaves earlier
// deposits in place.
//
// Complexity: O(n) AddPheromone calls.
func (a *Ant) LayPheromone() error {
	if !a.built || !(a.tourLength > 0) {
		return ErrTourNotConstructed
	}

	var (
		perEdge = a.env.TotalPheromone() / a.tourLength
		n       = len(a.tour)
		k       int
		from    int
		to      int
		err     error
	)
	for k = 0; k < n; k++ {
		from = a.tour[k]
		to = a.tour[(k+1)%n]
		if err = a.env.AddPheromone(from, to, perEdge); err != nil {
			return fmt.Errorf("LayPheromone(%d,%d): %w", from, to, err)
		}
	}

	return nil
}

// TourLength returns the length of the committed tour (0 before the first).
func (a *Ant) TourLength() float64 { return a.tourLength }

// Tour returns a copy of the committed visiting order (nil before the first).
// The closing return to Tour()[0] is implicit.
func (a *Ant) Tour() []int {
	if !a.built {
		return nil
	}

	return append([]int(nil), a.tour...)
}

// NumNodes returns the problem size.
func (a *Ant) NumNodes() int { return a.numNodes }

// String renders the committed tour, e.g.
// "tour length 4, visiting the nodes in this order: 0, 1, 2, 3."
func (a *Ant) String() string {
	if !a.built {
		return "tour not constructed"
	}

	var sb strings.Builder
	sb.WriteString("tour length ")
	sb.WriteString(strconv.FormatFloat(a.tourLength, 'g', -1, 64))
	sb.WriteString(", visiting the nodes in this order: ")
	for i, v := range a.tour {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString(".")

	return sb.String()
}
