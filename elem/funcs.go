package elem

import (
	"fmt"

	"github.com/joshuapare/modfloat/float"
)

// maxExpBits bounds |x/ln2|. Successful results stay below 2^(2^30+2),
// under the exponent of float.Max.
const maxExpBits = 30

// TwoExp returns 2^x for x in [-1, 1]. No range check is made.
func (t *Tables) TwoExp(x float.Float) float.Float {
	return t.sp.Eval(t.twoX, x)
}

// CoreCos returns cos(z) for z in [-pi/2, pi/2]. No range check is made.
func (t *Tables) CoreCos(z float.Float) float.Float {
	x := float.Mul(z, t.invHalfPi)
	return t.sp.Eval(t.cos, float.Mul(x, x))
}

// Exp returns e^x. When |x/ln2| >= 2^30 it returns float.Max() for positive
// x or zero for negative x, together with ErrExponentOverflow.
func (t *Tables) Exp(x float.Float) (float.Float, error) {
	z := float.Mul(x, t.invLn2)
	if z.Exponent() > maxExpBits {
		err := fmt.Errorf("%w: exp of %s", ErrExponentOverflow, x.Text('e', 10))
		if x.Sign() < 0 {
			return float.Float{}, err
		}
		return float.Max(), err
	}
	ipart, frac := float.Split(z)
	return float.Ldexp(t.TwoExp(frac), float.Int(ipart)), nil
}

// reduce returns x modulo 2 pi, keeping the sign of x, when |x| > 2 pi.
func (t *Tables) reduce(x float.Float) float.Float {
	if float.CmpAbs(x, t.twoPi) <= 0 {
		return x
	}
	_, frac := float.Split(float.Mul(x, t.invTwoPi))
	return float.Mul(t.twoPi, frac)
}

// Cos returns cos(x).
func (t *Tables) Cos(x float.Float) float.Float {
	z := float.Abs(t.reduce(x))
	switch {
	case float.Cmp(z, t.halfPi) <= 0:
		return t.CoreCos(z)
	case float.Cmp(z, t.threeHalfPi) > 0:
		return t.CoreCos(float.Sub(t.twoPi, z))
	}
	return float.Neg(t.CoreCos(float.Sub(t.pi, z)))
}

// Sin returns sin(x).
func (t *Tables) Sin(x float.Float) float.Float {
	z := t.reduce(x)
	neg := z.Sign() < 0
	z = float.Abs(z)
	if float.Cmp(z, t.pi) > 0 {
		neg = !neg
		z = float.Sub(z, t.pi)
	}
	y := t.CoreCos(float.Sub(z, t.halfPi))
	if neg {
		y = float.Neg(y)
	}
	return y
}
