// Package elem provides the elementary transcendental functions exp, cos and
// sin for float.Float, plus the constants pi and ln 2.
//
// # Tables
//
// The functions are driven by two power series built once from exact
// Chebyshev polynomials and Bessel function values:
//
//	2^x         = I0(ln2) + 2 * sum I_n(ln2) T_n(x)                 x in [-1, 1]
//	cos(x pi/2) = J0(pi/2) + 2 * sum (-1)^n J_2n(pi/2) T_2n(x)     x in [-1, 1]
//
// The second series only has even powers and is stored as a series in x^2.
// Build constructs a private set of tables in a caller-supplied poly.Space;
// the package-level functions share one default set built on first use.
//
// # Reduction
//
// Exp rewrites e^x as 2^(x/ln2), splits off the integer part and applies it
// to the exponent. Cos and Sin reduce the argument modulo 2 pi and fold it
// into [-pi/2, pi/2] for CoreCos. Arguments beyond about pi*2^200 lose all
// significance in the reduction.
//
// # Thread Safety
//
// A built Tables value is read-only and safe for concurrent use. Build
// itself mutates the Space it is given.
package elem
