package modular

import (
	"fmt"

	"github.com/joshuapare/modfloat/float"
	"github.com/joshuapare/modfloat/poly"
)

// DefaultTerms is the number of j coefficients used when none is configured.
const DefaultTerms = 50

// etaSlack pads the eta product beyond the j series so the division keeps
// every requested term.
const etaSlack = 5

// Sigma3 returns the series sum_{n=1..limit} sigma3(n) q^n, where sigma3(n)
// is the sum of the cubes of the divisors of n.
func Sigma3(sp *poly.Space, limit int) (poly.Poly, error) {
	s, err := sp.New(limit)
	if err != nil {
		return poly.Poly{}, fmt.Errorf("modular: sigma3: %w", err)
	}
	c := sp.Coef(s)
	for d := 1; d <= limit; d++ {
		n := float.FromInt(int64(d))
		cube := float.Mul(n, float.Mul(n, n))
		for m := d; m <= limit; m += d {
			c[m] = float.Add(c[m], cube)
		}
	}
	return s, nil
}

// Binomial24 returns the 25 coefficients of (1-q)^24.
func Binomial24(sp *poly.Space) (poly.Poly, error) {
	b, err := sp.New(24)
	if err != nil {
		return poly.Poly{}, fmt.Errorf("modular: binomial: %w", err)
	}
	c := sp.Coef(b)
	c[0] = float.One()
	for i := int64(1); i <= 24; i++ {
		next := float.Mul(c[i-1], float.FromInt(25-i))
		next, _ = float.Quo(next, float.FromInt(i))
		c[i] = float.Round(float.Neg(next))
	}
	return b, nil
}

// EtaProduct returns prod_{n>=1} (1-q^n)^24 truncated to the given degree.
// Its coefficient at q^n is Ramanujan's tau(n+1).
func EtaProduct(sp *poly.Space, degree int) (poly.Poly, error) {
	binom, err := Binomial24(sp)
	if err != nil {
		return poly.Poly{}, err
	}
	defer func() { _ = sp.Free(binom) }()

	prod, err := sp.New(degree)
	if err != nil {
		return poly.Poly{}, fmt.Errorf("modular: eta: %w", err)
	}
	factor, err := sp.New(degree)
	if err != nil {
		_ = sp.Free(prod)
		return poly.Poly{}, fmt.Errorf("modular: eta: %w", err)
	}
	defer func() { _ = sp.Free(factor) }()

	sp.Coef(prod)[0] = float.One()
	for n := 1; n <= degree; n++ {
		// factor = (1 - q^n)^24, spread over every n-th coefficient.
		f, b := sp.Coef(factor), sp.Coef(binom)
		clear(f)
		for i := 0; i <= 24 && i*n <= degree; i++ {
			f[i*n] = b[i]
		}

		next, err := sp.PowerMul(prod, factor)
		if err != nil {
			_ = sp.Free(prod)
			return poly.Poly{}, fmt.Errorf("modular: eta factor %d: %w", n, err)
		}
		sp.Round(next)
		if err := sp.Rebind(&prod, next); err != nil {
			return poly.Poly{}, err
		}
	}
	return prod, nil
}

// JSeries returns the coefficients of q*j(q) through q^limit, rounded to
// the integers they are.
func JSeries(sp *poly.Space, limit int) (poly.Poly, error) {
	e4, err := Sigma3(sp, limit)
	if err != nil {
		return poly.Poly{}, err
	}
	defer func() { _ = sp.Free(e4) }()

	c := sp.Coef(e4)
	c[0] = float.One()
	k := float.FromInt(240)
	for i := 1; i < len(c); i++ {
		c[i] = float.Mul(k, c[i])
	}

	sq, err := sp.PowerMul(e4, e4)
	if err != nil {
		return poly.Poly{}, fmt.Errorf("modular: E4^2: %w", err)
	}
	cube, err := sp.PowerMul(e4, sq)
	_ = sp.Free(sq)
	if err != nil {
		return poly.Poly{}, fmt.Errorf("modular: E4^3: %w", err)
	}
	defer func() { _ = sp.Free(cube) }()

	eta, err := EtaProduct(sp, limit+etaSlack)
	if err != nil {
		return poly.Poly{}, err
	}
	defer func() { _ = sp.Free(eta) }()

	j, err := sp.PowerDiv(cube, eta)
	if err != nil {
		return poly.Poly{}, fmt.Errorf("modular: j: %w", err)
	}
	sp.Round(j)
	return j, nil
}
