// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every sentinel is prefixed with "matrix: ". Public methods wrap them with
// call-site context via %w; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates non-positive requested dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	// At/Set/Add return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil Matrix argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals |A[i,j]-A[j,i]| > tol for some i<j.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals |A[i,i]| > tol for some i.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrRagged signals rows of unequal length in a [][]float64 source.
	ErrRagged = errors.New("matrix: ragged rows")
)
