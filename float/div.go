package float

import (
	"math"
	"math/bits"
)

const heronSteps = 5

// Rational seed for sqrt on [1/4, 1), Hart et al. #0293.
var (
	sqrtP0 = ratio(1767767142, 10_000_000_000)
	sqrtP1 = ratio(36969180041, 10_000_000_000)
	sqrtP2 = ratio(36423916087, 10_000_000_000)
	sqrtQ0 = ratio(12876239803, 10_000_000_000)
	sqrtQ1 = ratio(52281136434, 10_000_000_000)
)

func ratio(n, d int64) Float {
	r, err := Quo(FromInt(n), FromInt(d))
	if err != nil {
		panic(err)
	}
	return r
}

// Reciprocal returns 1/b by Newton iteration from a 64-bit seed.
func Reciprocal(b Float) (Float, error) {
	if b.mant.zero() {
		return Float{}, ErrDivideByZero
	}
	neg := b.mant.negative()
	if neg {
		b.mant.neg()
	}

	if b.powerOfTwo() {
		x := Float{exp: 2 - b.exp}
		x.mant[top] = leadBit
		if neg {
			x.mant.neg()
		}
		return x, nil
	}

	// d is in [2^62, 2^63); q = floor(2^126 / d) fits in 64 bits except at
	// the lower bound.
	d := uint64(b.mant[top])<<32 | uint64(b.mant[top-1])
	var q uint64
	if d == 1<<62 {
		q = math.MaxUint64
	} else {
		q, _ = bits.Div64(1<<62, 0, d)
	}

	x := Float{exp: 1 - b.exp}
	x.mant[top] = uint32(q >> 33)
	x.mant[top-1] = uint32(q >> 1)
	x.normalize()

	two := FromInt(2)
	for i := 0; i < newtonSteps; i++ {
		x = Mul(x, Sub(two, Mul(b, x)))
	}

	if neg {
		x.mant.neg()
	}
	return x, nil
}

// powerOfTwo reports whether a positive normal x is exactly 2^k.
func (x *Float) powerOfTwo() bool {
	if x.mant[top] != leadBit {
		return false
	}
	for i := 0; i < top; i++ {
		if x.mant[i] != 0 {
			return false
		}
	}
	return true
}

// Quo returns a/b.
func Quo(a, b Float) (Float, error) {
	r, err := Reciprocal(b)
	if err != nil {
		return Float{}, err
	}
	return Mul(a, r), nil
}

// IntPow returns x^k by binary exponentiation. Zero to a negative power
// fails with ErrZeroToNegativePower.
func IntPow(x Float, k int) (Float, error) {
	n := uint(k)
	if k < 0 {
		n = uint(-k)
	}

	t, z := One(), x
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
		r, err := Reciprocal(t)
		if err != nil {
			return Float{}, ErrZeroToNegativePower
		}
		return r, nil
	}
	return t, nil
}

// Sqrt returns the square root of |x|.
func Sqrt(x Float) Float {
	if x.mant.zero() {
		return Float{}
	}
	x = Abs(x)

	// Reduce to [1/4, 1) with an even exponent difference.
	var outExp int64
	if x.exp&1 != 0 {
		outExp = (x.exp + 1) / 2
		x.exp = -1
	} else {
		outExp = x.exp / 2
		x.exp = 0
	}

	num := Add(Mul(Add(Mul(sqrtP2, x), sqrtP1), x), sqrtP0)
	den := Add(Mul(Add(x, sqrtQ1), x), sqrtQ0)
	y, _ := Quo(num, den)

	for i := 0; i < heronSteps; i++ {
		q, _ := Quo(x, y)
		y = Add(y, q)
		y.exp--
	}

	y.exp += outExp
	return y
}
