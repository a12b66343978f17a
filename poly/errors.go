package poly

import "errors"

// ErrNegativeDegree indicates a request for a polynomial of degree below zero.
var ErrNegativeDegree = errors.New("poly: negative degree")
