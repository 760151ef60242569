// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage used for distance and
// pheromone tables.
//
// Surface:
//   - Matrix: minimal interface (Rows, Cols, At, Set, Clone).
//   - Dense: flat row-major buffer; At/Set/Add never panic, they return
//     ErrOutOfRange wrapped with coordinates.
//   - Validators: ValidateSquare, ValidateSymmetric, ValidateZeroDiagonal,
//     ValidateFinite.
//
// Determinism: fixed i→j loop orders everywhere; no map iteration.
//
// Concurrency: Dense is not goroutine-safe. Callers that share one across
// goroutines (see package sim) guard it themselves.
package matrix
