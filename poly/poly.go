package poly

import (
	"fmt"

	"github.com/joshuapare/modfloat/float"
)

// Add returns the exact polynomial a+b, trimming zero leading terms.
func (s *Space) Add(a, b Poly) (Poly, error) {
	r, err := s.sum(a, b, false)
	if err != nil {
		return Poly{}, fmt.Errorf("poly: add: %w", err)
	}
	return r, nil
}

// Sub returns the exact polynomial a-b, trimming zero leading terms.
func (s *Space) Sub(a, b Poly) (Poly, error) {
	r, err := s.sum(a, b, true)
	if err != nil {
		return Poly{}, fmt.Errorf("poly: sub: %w", err)
	}
	return r, nil
}

func (s *Space) sum(a, b Poly, negB bool) (Poly, error) {
	r, err := s.New(max(a.Degree, b.Degree))
	if err != nil {
		return Poly{}, err
	}

	ca, cb, cr := s.Coef(a), s.Coef(b), s.Coef(r)
	for i := range cr {
		var x, y float.Float
		if i < len(ca) {
			x = ca[i]
		}
		if i < len(cb) {
			y = cb[i]
		}
		if negB {
			y = float.Neg(y)
		}
		cr[i] = float.Add(x, y)
	}

	for r.Degree > 0 && cr[r.Degree].IsZero() {
		r.Degree--
	}
	return r, nil
}

// Mul returns the exact product a*b of degree deg a + deg b.
func (s *Space) Mul(a, b Poly) (Poly, error) {
	r, err := s.New(a.Degree + b.Degree)
	if err != nil {
		return Poly{}, fmt.Errorf("poly: mul: %w", err)
	}

	long, short := a, b
	if b.Degree > a.Degree {
		long, short = b, a
	}
	cl, cs, cr := s.Coef(long), s.Coef(short), s.Coef(r)
	ns, nl := short.Degree, long.Degree

	term := func(k, lo, hi int) {
		var sum float.Float
		for i := lo; i <= hi; i++ {
			sum = float.Add(sum, float.Mul(cs[i], cl[k-i]))
		}
		cr[k] = sum
	}
	// Rising overlap, plateau, then falling overlap.
	for k := 0; k < ns; k++ {
		term(k, 0, k)
	}
	for k := ns; k < nl; k++ {
		term(k, 0, ns)
	}
	for k := nl; k <= r.Degree; k++ {
		term(k, k-nl, ns)
	}
	return r, nil
}
