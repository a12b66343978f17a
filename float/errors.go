package float

import "errors"

var (
	// ErrDivideByZero indicates a reciprocal or quotient of an exact zero.
	ErrDivideByZero = errors.New("float: division by zero")

	// ErrZeroToNegativePower indicates IntPow of zero with a negative exponent.
	ErrZeroToNegativePower = errors.New("float: zero raised to a negative power")

	// ErrSyntax indicates a string that Parse could not interpret as a number.
	ErrSyntax = errors.New("float: invalid syntax")
)
