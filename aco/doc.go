// Package aco implements the single-ant core of Ant Colony Optimization for
// the Travelling Salesman Problem.
//
// An Ant builds one closed tour over nodes 0..n-1. At every step it scores
// the edges leading to unvisited nodes with the classic ACO rule
//
//	p(i) = τ_i^α · (1/L_i)^β / Σ_j τ_j^α · (1/L_j)^β
//
// and samples the next node by roulette-wheel selection over the cumulative
// distribution. After construction the ant may deposit Q/length pheromone on
// every edge of its tour, including the closing edge back to the start.
//
// The selection phases are exported separately so each can be exercised on
// its own:
//
//	UnvisitedNodes → EdgeLengths / PheromoneLevels → EdgeProbabilities
//	→ CumulativeProbabilities → ChooseIndex (Roulette)
//
// Distances, pheromone and the α/β/Q constants belong to an Environment.
// The package never assumes a storage layout for them; see package sim for a
// matrix-backed implementation that is safe for concurrent deposits.
//
// Determinism: the only randomness is the start-node draw and one uniform
// draw per step, both taken from the Ant's RandomSource. Pass WithSeed or
// WithRand to reproduce a run exactly.
//
// Concurrency: an Ant is not safe for concurrent use. Distinct ants may run
// in parallel against one Environment if the Environment serializes
// AddPheromone per edge.
package aco
