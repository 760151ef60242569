package instance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/acotsp/aco"
	"github.com/katalvlaran/acotsp/sim"
)

// Circle places n points evenly on a circle of the given radius. The optimal
// tour walks the circle in index order.
//
// Errors: ErrTooFewNodes for n<2; radius must be > 0.
func Circle(n int, radius float64) (*Instance, error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("instance: circle radius %v must be finite and > 0", radius)
	}

	pts := make([]Point, n)
	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: radius * math.Cos(th), Y: radius * math.Sin(th)}
	}

	return &Instance{
		Name:   fmt.Sprintf("circle-%d", n),
		Params: sim.DefaultParams(),
		Points: pts,
	}, nil
}

// RandomUniform draws n points uniformly from [0,side)², deterministic for a
// given seed (aco.NewRand seed policy).
func RandomUniform(n int, side float64, seed int64) (*Instance, error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	if !(side > 0) || math.IsInf(side, 0) {
		return nil, fmt.Errorf("instance: side %v must be finite and > 0", side)
	}
	rng := aco.NewRand(seed)

	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: side * rng.Float64(), Y: side * rng.Float64()}
	}

	return &Instance{
		Name:   fmt.Sprintf("uniform-%d-s%d", n, seed),
		Params: sim.DefaultParams(),
		Points: pts,
	}, nil
}
