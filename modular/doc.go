// Package modular computes the q-expansion of the elliptic modular
// j-invariant and evaluates it over the fundamental domain.
//
// The coefficients come from
//
//	j(q) = E4(q)^3 / (q * prod_{n>=1} (1 - q^n)^24)
//	E4(q) = 1 + 240 * sum_{n>=1} sigma3(n) q^n
//
// computed as power series in a poly.Space. JSeries returns the series of
// q*j(q), so index k holds the coefficient of q^(k-1):
//
//	1, 744, 196884, 21493760, 864299970, ...
//
// An Evaluator turns a coefficient table into j(tau) with
// q = exp(2 pi i tau), and Tabulate walks a Grid of tau values lifted from
// the unit-circle arc at the bottom of the fundamental domain.
package modular
