package sim

import "errors"

var (
	// ErrInvalidParams wraps every Params.Validate failure.
	ErrInvalidParams = errors.New("sim: invalid params")

	// ErrTooFewNodes is returned for distance matrices smaller than 2×2.
	ErrTooFewNodes = errors.New("sim: at least 2 nodes required")

	// ErrNonPositiveLength is returned when an off-diagonal distance is <= 0.
	ErrNonPositiveLength = errors.New("sim: edge length must be > 0")
)
