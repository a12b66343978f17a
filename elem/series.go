package elem

import (
	"fmt"

	"github.com/joshuapare/modfloat/float"
	"github.com/joshuapare/modfloat/poly"
)

// Kind selects the Bessel function family.
type Kind int

const (
	// BesselJ is the ordinary Bessel function of the first kind.
	BesselJ Kind = -1
	// BesselI is the modified Bessel function of the first kind.
	BesselI Kind = 1
)

// Series terms stop once they fall this many bits below the first term.
const (
	ln2Cutoff    = 256
	besselCutoff = 250
	piTerms      = 122
)

// Chebyshev returns T_0..T_n as exact polynomials allocated in sp. If the
// space runs out the polynomials built so far are freed and the error wraps
// both ErrShortTable and the allocation failure.
func Chebyshev(sp *poly.Space, n int) ([]poly.Poly, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: degree %d", ErrShortTable, n)
	}
	table := make([]poly.Poly, 0, n+1)
	fail := func(err error) ([]poly.Poly, error) {
		for _, p := range table {
			_ = sp.Free(p)
		}
		return nil, fmt.Errorf("%w: built %d of %d: %w", ErrShortTable, len(table), n+1, err)
	}

	t0, err := sp.FromCoefs(float.One())
	if err != nil {
		return fail(err)
	}
	table = append(table, t0)
	if n == 0 {
		return table, nil
	}
	t1, err := sp.FromCoefs(float.Float{}, float.One())
	if err != nil {
		return fail(err)
	}
	table = append(table, t1)

	twoX, err := sp.FromCoefs(float.Float{}, float.FromInt(2))
	if err != nil {
		return fail(err)
	}
	defer func() { _ = sp.Free(twoX) }()

	for k := 2; k <= n; k++ {
		prod, err := sp.Mul(twoX, table[k-1])
		if err != nil {
			return fail(err)
		}
		tk, err := sp.Sub(prod, table[k-2])
		_ = sp.Free(prod)
		if err != nil {
			return fail(err)
		}
		table = append(table, tk)
	}
	return table, nil
}

// Bessel returns J_n(x) or I_n(x) by the factorial series
//
//	(x/2)^n * sum_k (±x^2/4)^k / (k! (n+k)!)
//
// summed until terms drop about 250 bits below the first. The sign of n is
// ignored.
func Bessel(kind Kind, n int, x float.Float) float.Float {
	if n < 0 {
		n = -n
	}
	z2 := float.Ldexp(x, -1)
	z4 := float.Mul(z2, z2)
	if kind == BesselJ {
		z4 = float.Neg(z4)
	}

	fact := float.One()
	for j := n; j > 1; j-- {
		fact = float.Mul(fact, float.FromInt(int64(j)))
	}
	sum, _ := float.Reciprocal(fact)
	start := sum.Exponent()

	t := sum
	for j, k := int64(n), int64(0); ; {
		j++
		k++
		t, _ = float.Quo(t, float.FromInt(j))
		t = float.Mul(z4, t)
		t, _ = float.Quo(t, float.FromInt(k))
		sum = float.Add(sum, t)
		if t.IsZero() || t.Exponent()-start <= -besselCutoff {
			break
		}
	}

	p, _ := float.IntPow(z2, n)
	return float.Mul(p, sum)
}

// computeLn2 sums ln 2 = 2 * sum 1/((2k+1) 3^(2k+1)).
func computeLn2() float.Float {
	tk, _ := float.Reciprocal(float.FromInt(3))
	start := tk.Exponent()
	ninth := float.Mul(tk, tk)

	var sum float.Float
	for k := int64(0); ; k++ {
		sum = float.Add(sum, tk)
		tk = float.Mul(tk, float.FromInt(2*k+1))
		tk, _ = float.Quo(tk, float.FromInt(2*k+3))
		tk = float.Mul(tk, ninth)
		if tk.Exponent()-start <= -ln2Cutoff {
			break
		}
	}
	return float.Ldexp(sum, 1)
}

// computePi uses arcsin(1/2) = pi/6, written as
// pi = 3 * (1 + sum_{i>=1} t_i), t_1 = 1/24,
// t_i = t_{i-1} (2i-1)^2 / (8 i (2i+1)).
func computePi() float.Float {
	tn, _ := float.Quo(float.Ldexp(float.One(), -3), float.FromInt(3))
	sum := tn
	for i := int64(2); i <= piTerms; i++ {
		c := float.FromInt(2*i - 1)
		tn = float.Mul(tn, float.Mul(c, c))
		tn, _ = float.Quo(tn, float.FromInt(2*i+1))
		tn, _ = float.Quo(tn, float.FromInt(i))
		tn = float.Ldexp(tn, -3)
		sum = float.Add(tn, sum)
	}
	sum = float.Add(float.One(), sum)
	return float.Mul(float.FromInt(3), sum)
}
