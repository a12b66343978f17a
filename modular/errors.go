package modular

import "errors"

var (
	// ErrBadGrid indicates a grid with fewer than two points per row or a
	// non-positive height.
	ErrBadGrid = errors.New("modular: invalid grid")

	// ErrShortSeries indicates a coefficient table too short to evaluate.
	ErrShortSeries = errors.New("modular: series needs at least two terms")
)
