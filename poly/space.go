package poly

import (
	"fmt"

	"github.com/joshuapare/modfloat/arena"
	"github.com/joshuapare/modfloat/float"
)

// Poly names Degree+1 coefficients owned by a Space.
type Poly struct {
	Degree int
	h      arena.Handle
}

// Handle returns the arena handle backing p.
func (p Poly) Handle() arena.Handle { return p.h }

// Space owns the coefficient storage for a family of polynomials.
// It is not safe for concurrent use.
type Space struct {
	pool *arena.Pool[float.Float]
}

// NewSpace creates a Space holding up to capacity coefficients.
func NewSpace(capacity int, opts ...arena.Option) *Space {
	return &Space{pool: arena.New[float.Float](capacity, opts...)}
}

// Pool exposes the underlying arena for statistics and compaction.
func (s *Space) Pool() *arena.Pool[float.Float] { return s.pool }

// New allocates a zero polynomial of the given degree.
func (s *Space) New(degree int) (Poly, error) {
	if degree < 0 {
		return Poly{}, fmt.Errorf("%w: %d", ErrNegativeDegree, degree)
	}
	h, err := s.pool.Alloc(degree + 1)
	if err != nil {
		return Poly{}, fmt.Errorf("poly: degree %d: %w", degree, err)
	}
	return Poly{Degree: degree, h: h}, nil
}

// FromCoefs allocates a polynomial with the given coefficients, lowest first.
func (s *Space) FromCoefs(coefs ...float.Float) (Poly, error) {
	if len(coefs) == 0 {
		return Poly{}, fmt.Errorf("%w: no coefficients", ErrNegativeDegree)
	}
	p, err := s.New(len(coefs) - 1)
	if err != nil {
		return Poly{}, err
	}
	copy(s.Coef(p), coefs)
	return p, nil
}

// Free releases p's storage.
func (s *Space) Free(p Poly) error {
	return s.pool.Free(p.h)
}

// Dup returns an independent copy of p.
func (s *Space) Dup(p Poly) (Poly, error) {
	h, err := s.pool.Dup(p.h)
	if err != nil {
		return Poly{}, fmt.Errorf("poly: dup: %w", err)
	}
	return Poly{Degree: p.Degree, h: h}, nil
}

// Coef borrows the coefficients of p, lowest first. The slice is valid
// until the next allocating call on s.
func (s *Space) Coef(p Poly) []float.Float {
	return s.pool.Slice(p.h)[:p.Degree+1]
}

// Rebind frees the storage currently bound to *dst, unless it is p's own,
// and binds *dst to p.
func (s *Space) Rebind(dst *Poly, p Poly) error {
	var err error
	if dst.h != p.h && s.pool.Live(dst.h) {
		err = s.pool.Free(dst.h)
	}
	*dst = p
	return err
}

// Stats reports the state of the underlying arena.
func (s *Space) Stats() arena.Stats { return s.pool.Stats() }

// Eval evaluates p at x by Horner's rule.
func (s *Space) Eval(p Poly, x float.Float) float.Float {
	c := s.Coef(p)
	sum := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		sum = float.Add(float.Mul(sum, x), c[i])
	}
	return sum
}

// Round replaces every coefficient of p with the nearest integer, in place.
func (s *Space) Round(p Poly) {
	c := s.Coef(p)
	for i := range c {
		c[i] = float.Round(c[i])
	}
}

// Scale returns c*p.
func (s *Space) Scale(p Poly, c float.Float) (Poly, error) {
	r, err := s.New(p.Degree)
	if err != nil {
		return Poly{}, err
	}
	src, dst := s.Coef(p), s.Coef(r)
	for i := range dst {
		dst[i] = float.Mul(src[i], c)
	}
	return r, nil
}
