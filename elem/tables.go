package elem

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joshuapare/modfloat/float"
	"github.com/joshuapare/modfloat/poly"
)

// Defaults used by the package-level functions.
const (
	DefaultChebyshev  = 54
	DefaultTwoXDegree = 44
	DefaultCosDegree  = 54
	DefaultCapacity   = 1 << 13
)

// Options controls table generation.
type Options struct {
	// Chebyshev is the highest Chebyshev polynomial generated.
	Chebyshev int
	// TwoXDegree is the degree of the 2^x series.
	TwoXDegree int
	// CosDegree is the highest (even) Chebyshev degree used for cos; the
	// stored series in x^2 has half this degree.
	CosDegree int
	// Capacity sizes the Space Build allocates when given none.
	Capacity int
	// Logger receives debug output; nil means slog.Default.
	Logger *slog.Logger
}

// DefaultOptions returns the settings of the default tables.
func DefaultOptions() Options {
	return Options{
		Chebyshev:  DefaultChebyshev,
		TwoXDegree: DefaultTwoXDegree,
		CosDegree:  DefaultCosDegree,
		Capacity:   DefaultCapacity,
	}
}

// Tables holds the constants and series behind Exp, Cos and Sin.
type Tables struct {
	sp   *poly.Space
	twoX poly.Poly
	cos  poly.Poly

	pi, halfPi, twoPi, threeHalfPi float.Float
	ln2                            float.Float
	invLn2, invHalfPi, invTwoPi    float.Float
}

// Build generates a set of tables in sp, or in a new Space of
// opts.Capacity coefficients when sp is nil. The Chebyshev polynomials are
// released before returning; only the two series stay allocated.
func Build(sp *poly.Space, opts Options) (*Tables, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if sp == nil {
		sp = poly.NewSpace(opts.Capacity)
	}
	need := max(opts.TwoXDegree, opts.CosDegree&^1)
	if opts.Chebyshev < need {
		return nil, fmt.Errorf("%w: have degree %d, need %d", ErrShortTable, opts.Chebyshev, need)
	}

	began := time.Now()
	cheb, err := Chebyshev(sp, opts.Chebyshev)
	if err != nil {
		return nil, err
	}
	defer func() {
		for _, p := range cheb {
			_ = sp.Free(p)
		}
	}()

	t := &Tables{sp: sp}
	t.ln2 = computeLn2()
	t.invLn2, _ = float.Reciprocal(t.ln2)
	t.pi = computePi()
	t.halfPi = float.Ldexp(t.pi, -1)
	t.twoPi = float.Ldexp(t.pi, 1)
	t.threeHalfPi = float.Add(t.pi, t.halfPi)
	t.invHalfPi, _ = float.Reciprocal(t.halfPi)
	t.invTwoPi, _ = float.Reciprocal(t.twoPi)

	if t.twoX, err = twoXSeries(sp, cheb, opts.TwoXDegree, t.ln2); err != nil {
		return nil, err
	}
	if t.cos, err = cosSeries(sp, cheb, opts.CosDegree, t.halfPi); err != nil {
		_ = sp.Free(t.twoX)
		return nil, err
	}

	log.Debug("elem tables built",
		slog.Int("chebyshev", opts.Chebyshev),
		slog.Int("twox_degree", t.twoX.Degree),
		slog.Int("cos_degree", t.cos.Degree),
		slog.Duration("elapsed", time.Since(began)))
	return t, nil
}

// twoXSeries combines I_n(ln2) with T_n into the power series of 2^x.
func twoXSeries(sp *poly.Space, cheb []poly.Poly, degree int, ln2 float.Float) (poly.Poly, error) {
	sum, err := sp.FromCoefs(Bessel(BesselI, 0, ln2))
	if err != nil {
		return poly.Poly{}, fmt.Errorf("elem: 2^x series: %w", err)
	}
	for n := 1; n <= degree; n++ {
		c := float.Ldexp(Bessel(BesselI, n, ln2), 1)
		if err := accumulate(sp, &sum, cheb[n], c); err != nil {
			_ = sp.Free(sum)
			return poly.Poly{}, fmt.Errorf("elem: 2^x series term %d: %w", n, err)
		}
	}
	return sum, nil
}

// cosSeries combines J_2n(pi/2) with T_2n into cos(x pi/2) and keeps only
// the even powers, as a series in x^2.
func cosSeries(sp *poly.Space, cheb []poly.Poly, degree int, halfPi float.Float) (poly.Poly, error) {
	sum, err := sp.FromCoefs(Bessel(BesselJ, 0, halfPi))
	if err != nil {
		return poly.Poly{}, fmt.Errorf("elem: cos series: %w", err)
	}
	defer func() { _ = sp.Free(sum) }()

	for n := 1; n <= degree/2; n++ {
		c := float.Ldexp(Bessel(BesselJ, 2*n, halfPi), 1)
		if n&1 != 0 {
			c = float.Neg(c)
		}
		if err := accumulate(sp, &sum, cheb[2*n], c); err != nil {
			return poly.Poly{}, fmt.Errorf("elem: cos series term %d: %w", 2*n, err)
		}
	}

	half, err := sp.New(sum.Degree / 2)
	if err != nil {
		return poly.Poly{}, fmt.Errorf("elem: cos series: %w", err)
	}
	src, dst := sp.Coef(sum), sp.Coef(half)
	for k := range dst {
		dst[k] = src[2*k]
	}
	return half, nil
}

// accumulate sets *sum = *sum + c*t, releasing the old sum.
func accumulate(sp *poly.Space, sum *poly.Poly, t poly.Poly, c float.Float) error {
	term, err := sp.Scale(t, c)
	if err != nil {
		return err
	}
	next, err := sp.Add(term, *sum)
	_ = sp.Free(term)
	if err != nil {
		return err
	}
	return sp.Rebind(sum, next)
}

// Pi returns pi.
func (t *Tables) Pi() float.Float { return t.pi }

// HalfPi returns pi/2.
func (t *Tables) HalfPi() float.Float { return t.halfPi }

// Ln2 returns the natural logarithm of 2.
func (t *Tables) Ln2() float.Float { return t.ln2 }

// TwoXCoef returns a copy of the 2^x series coefficients, lowest first.
func (t *Tables) TwoXCoef() []float.Float {
	return append([]float.Float(nil), t.sp.Coef(t.twoX)...)
}

// CosCoef returns a copy of the cos(x pi/2) coefficients in powers of x^2.
func (t *Tables) CosCoef() []float.Float {
	return append([]float.Float(nil), t.sp.Coef(t.cos)...)
}

// Space returns the Space holding the series.
func (t *Tables) Space() *poly.Space { return t.sp }
