package poly

import (
	"fmt"

	"github.com/joshuapare/modfloat/float"
)

// PowerAdd returns the truncated series a+b with degree max(deg a, deg b).
func (s *Space) PowerAdd(a, b Poly) (Poly, error) {
	long, short := a, b
	if b.Degree > a.Degree {
		long, short = b, a
	}
	r, err := s.New(long.Degree)
	if err != nil {
		return Poly{}, fmt.Errorf("poly: power add: %w", err)
	}

	ca, cb, cr := s.Coef(long), s.Coef(short), s.Coef(r)
	for i := range cb {
		cr[i] = float.Add(ca[i], cb[i])
	}
	copy(cr[len(cb):], ca[len(cb):])
	return r, nil
}

// PowerMul returns the series product a*b truncated to max(deg a, deg b).
func (s *Space) PowerMul(a, b Poly) (Poly, error) {
	deg := max(a.Degree, b.Degree)
	r, err := s.New(deg)
	if err != nil {
		return Poly{}, fmt.Errorf("poly: power mul: %w", err)
	}

	ca, cb, cr := s.Coef(a), s.Coef(b), s.Coef(r)
	for i := 0; i <= deg; i++ {
		var sum float.Float
		for k := max(0, i-b.Degree); k <= min(i, a.Degree); k++ {
			sum = float.Add(sum, float.Mul(ca[k], cb[i-k]))
		}
		cr[i] = sum
	}
	return r, nil
}

// PowerDiv returns the series quotient a/b truncated to min(deg a, deg b).
// It fails with float.ErrDivideByZero when b has a zero constant term.
func (s *Space) PowerDiv(a, b Poly) (Poly, error) {
	inv, err := float.Reciprocal(s.Coef(b)[0])
	if err != nil {
		return Poly{}, fmt.Errorf("poly: power div: constant term: %w", err)
	}
	deg := min(a.Degree, b.Degree)
	r, err := s.New(deg)
	if err != nil {
		return Poly{}, fmt.Errorf("poly: power div: %w", err)
	}

	// c_n = (a_n - sum_{k<n} c_k b_{n-k}) / b_0; n <= deg b keeps every
	// b index in range.
	ca, cb, cr := s.Coef(a), s.Coef(b), s.Coef(r)
	for n := 0; n <= deg; n++ {
		var sum float.Float
		for k := 0; k < n; k++ {
			sum = float.Add(sum, float.Mul(cr[k], cb[n-k]))
		}
		cr[n] = float.Mul(float.Sub(ca[n], sum), inv)
	}
	return r, nil
}
