package elem

import "errors"

var (
	// ErrExponentOverflow indicates |x/ln2| >= 2^30 in Exp.
	ErrExponentOverflow = errors.New("elem: exponent overflow")

	// ErrUninitialized indicates the default tables could not be built.
	ErrUninitialized = errors.New("elem: tables not initialized")

	// ErrShortTable indicates fewer Chebyshev polynomials than requested.
	ErrShortTable = errors.New("elem: chebyshev table too short")
)
