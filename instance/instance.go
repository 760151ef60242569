package instance

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/acotsp/matrix"
	"github.com/katalvlaran/acotsp/sim"
)

var (
	// ErrNoGeometry is returned when neither points nor distances are given.
	ErrNoGeometry = errors.New("instance: points or distances required")

	// ErrAmbiguousGeometry is returned when both points and distances are given.
	ErrAmbiguousGeometry = errors.New("instance: points and distances are mutually exclusive")

	// ErrTooFewNodes is returned for fewer than two nodes.
	ErrTooFewNodes = errors.New("instance: at least 2 nodes required")
)

// Point is a planar node location.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Instance is a resolved problem: geometry plus run parameters.
type Instance struct {
	Name      string
	Params    sim.Params
	Points    []Point
	Distances [][]float64
}

// file mirrors the YAML layout; pointer params distinguish "absent" from 0.
type file struct {
	Name      string      `yaml:"name,omitempty"`
	Params    *fileParams `yaml:"params,omitempty"`
	Points    []Point     `yaml:"points,omitempty,flow"`
	Distances [][]float64 `yaml:"distances,omitempty,flow"`
}

type fileParams struct {
	Alpha            *float64 `yaml:"alpha,omitempty"`
	Beta             *float64 `yaml:"beta,omitempty"`
	TotalPheromone   *float64 `yaml:"total_pheromone,omitempty"`
	InitialPheromone *float64 `yaml:"initial_pheromone,omitempty"`
}

// Load reads and parses the YAML problem file at path.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	inst, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Parse decodes a YAML problem, fills omitted params with defaults and
// validates the result.
func Parse(data []byte) (*Instance, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}

	inst := &Instance{
		Name:      f.Name,
		Params:    sim.DefaultParams(),
		Points:    f.Points,
		Distances: f.Distances,
	}
	if fp := f.Params; fp != nil {
		if fp.Alpha != nil {
			inst.Params.Alpha = *fp.Alpha
		}
		if fp.Beta != nil {
			inst.Params.Beta = *fp.Beta
		}
		if fp.TotalPheromone != nil {
			inst.Params.TotalPheromone = *fp.TotalPheromone
		}
		if fp.InitialPheromone != nil {
			inst.Params.InitialPheromone = *fp.InitialPheromone
		}
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	return inst, nil
}

// Validate checks geometry shape and params. Metric properties of an
// explicit distance table are checked by sim.New.
func (in *Instance) Validate() error {
	switch {
	case len(in.Points) == 0 && len(in.Distances) == 0:
		return ErrNoGeometry
	case len(in.Points) > 0 && len(in.Distances) > 0:
		return ErrAmbiguousGeometry
	case in.NumNodes() < 2:
		return ErrTooFewNodes
	}

	return in.Params.Validate()
}

// NumNodes returns the number of nodes.
func (in *Instance) NumNodes() int {
	if len(in.Points) > 0 {
		return len(in.Points)
	}

	return len(in.Distances)
}

// DistanceMatrix returns the explicit table, or pairwise Euclidean distances
// between Points.
//
// Complexity: O(n²).
func (in *Instance) DistanceMatrix() (*matrix.Dense, error) {
	if len(in.Distances) > 0 {
		return matrix.NewDenseFrom(in.Distances)
	}
	n := len(in.Points)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}

	var (
		i, j int
		d    float64
		a, b = make([]float64, 2), make([]float64, 2)
	)
	for i = 0; i < n; i++ {
		a[0], a[1] = in.Points[i].X, in.Points[i].Y
		for j = i + 1; j < n; j++ {
			b[0], b[1] = in.Points[j].X, in.Points[j].Y
			d = floats.Distance(a, b, 2)
			_ = m.Set(i, j, d)
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}

// Environment validates the instance and builds a sim.Environment from it.
func (in *Instance) Environment() (*sim.Environment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	dist, err := in.DistanceMatrix()
	if err != nil {
		return nil, err
	}

	return sim.New(dist, in.Params)
}

// Marshal encodes the instance as YAML with every param spelled out.
func (in *Instance) Marshal() ([]byte, error) {
	p := in.Params

	return yaml.Marshal(file{
		Name: in.Name,
		Params: &fileParams{
			Alpha:            &p.Alpha,
			Beta:             &p.Beta,
			TotalPheromone:   &p.TotalPheromone,
			InitialPheromone: &p.InitialPheromone,
		},
		Points:    in.Points,
		Distances: in.Distances,
	})
}

// Save writes Marshal's output to path.
func (in *Instance) Save(path string) error {
	data, err := in.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
