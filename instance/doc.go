// Package instance loads and generates TSP problem files.
//
// A problem file is YAML with either planar points (Euclidean distances are
// derived) or an explicit symmetric distance table, plus optional run
// parameters. Omitted parameters fall back to sim.DefaultParams.
//
//	name: square
//	params:
//	  alpha: 1
//	  beta: 2
//	  total_pheromone: 100
//	  initial_pheromone: 1
//	points:
//	  - {x: 0, y: 0}
//	  - {x: 1, y: 0}
//	  - {x: 1, y: 1}
//	  - {x: 0, y: 1}
package instance
