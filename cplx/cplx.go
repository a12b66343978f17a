// Package cplx implements Cartesian complex arithmetic on float.Float.
package cplx

import (
	"fmt"
	"strings"

	"github.com/joshuapare/modfloat/elem"
	"github.com/joshuapare/modfloat/float"
)

// Complex is Re + i*Im. The zero value is 0.
type Complex struct {
	Re, Im float.Float
}

// New returns re + i*im.
func New(re, im float.Float) Complex { return Complex{Re: re, Im: im} }

// One returns 1 + 0i.
func One() Complex { return Complex{Re: float.One()} }

// I returns the imaginary unit.
func I() Complex { return Complex{Im: float.One()} }

// IsZero reports whether both parts are exactly zero.
func (z Complex) IsZero() bool { return z.Re.IsZero() && z.Im.IsZero() }

func (z Complex) String() string {
	im := z.Im.Text('g', 20)
	if !strings.HasPrefix(im, "-") {
		im = "+" + im
	}
	return fmt.Sprintf("(%s%si)", z.Re.Text('g', 20), im)
}

// Add returns a+b.
func Add(a, b Complex) Complex {
	return Complex{float.Add(a.Re, b.Re), float.Add(a.Im, b.Im)}
}

// Sub returns a-b.
func Sub(a, b Complex) Complex {
	return Complex{float.Sub(a.Re, b.Re), float.Sub(a.Im, b.Im)}
}

// Neg returns -z.
func Neg(z Complex) Complex {
	return Complex{float.Neg(z.Re), float.Neg(z.Im)}
}

// Conj returns the complex conjugate of z.
func Conj(z Complex) Complex {
	return Complex{z.Re, float.Neg(z.Im)}
}

// Scale returns f*z for real f.
func Scale(z Complex, f float.Float) Complex {
	return Complex{float.Mul(z.Re, f), float.Mul(z.Im, f)}
}

// Mul returns a*b.
func Mul(a, b Complex) Complex {
	re := float.Sub(float.Mul(a.Re, b.Re), float.Mul(a.Im, b.Im))
	im := float.Add(float.Mul(a.Re, b.Im), float.Mul(a.Im, b.Re))
	return Complex{re, im}
}

// Norm returns |z|^2.
func Norm(z Complex) float.Float {
	return float.Add(float.Mul(z.Re, z.Re), float.Mul(z.Im, z.Im))
}

// Abs returns |z|.
func Abs(z Complex) float.Float {
	return float.Sqrt(Norm(z))
}

// Quo returns a/b as a*conj(b)/|b|^2. It fails with float.ErrDivideByZero
// exactly when b is zero.
func Quo(a, b Complex) (Complex, error) {
	inv, err := float.Reciprocal(Norm(b))
	if err != nil {
		return Complex{}, fmt.Errorf("cplx: quo: %w", err)
	}
	return Scale(Mul(a, Conj(b)), inv), nil
}

// IntPow returns z^k by binary exponentiation. Zero to a negative power
// fails with float.ErrZeroToNegativePower.
func IntPow(z Complex, k int) (Complex, error) {
	n := uint(k)
	if k < 0 {
		n = uint(-k)
	}

	t := One()
	for n != 0 {
		if n&1 != 0 {
			t = Mul(t, z)
		}
		n >>= 1
		if n != 0 {
			z = Mul(z, z)
		}
	}

	if k < 0 {
		r, err := Quo(One(), t)
		if err != nil {
			return Complex{}, float.ErrZeroToNegativePower
		}
		return r, nil
	}
	return t, nil
}

// Exp returns e^z = e^Re (cos Im + i sin Im). If e^Re overflows it returns
// the saturated real part with a zero imaginary part and an error wrapping
// elem.ErrExponentOverflow.
func Exp(z Complex) (Complex, error) {
	t, err := elem.Default()
	if err != nil {
		return Complex{}, err
	}
	return ExpWith(t, z)
}

// ExpWith is Exp using the given tables.
func ExpWith(t *elem.Tables, z Complex) (Complex, error) {
	m, err := t.Exp(z.Re)
	if err != nil {
		return Complex{Re: m}, fmt.Errorf("cplx: exp: %w", err)
	}
	return Complex{float.Mul(m, t.Cos(z.Im)), float.Mul(m, t.Sin(z.Im))}, nil
}
