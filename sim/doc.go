// Package sim provides the matrix-backed Environment that ants run against.
//
// An Environment owns:
//   - a read-only symmetric distance matrix (positive off-diagonal, zero
//     diagonal), copied at construction;
//   - a shared pheromone matrix, initialized to Params.InitialPheromone;
//   - the run constants α, β and Q (Params).
//
// Concurrency: pheromone cells are guarded by striped RWMutexes keyed by the
// undirected edge {min(i,j), max(i,j)}. AddPheromone updates both (i,j) and
// (j,i) under one write lock, so concurrent deposits from many ants never
// lose updates. PheromoneLevel takes the read lock; a constructing ant may
// observe deposits that land mid-tour, which is ordinary ACO behaviour.
//
// Evaporation and colony iteration are left to the caller.
package sim
