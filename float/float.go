package float

import (
	"math"
	"math/bits"
)

const (
	// Words is the number of 32-bit words in a mantissa. Change it to trade
	// speed for precision; it must be at least 2.
	Words = 8

	// Bits is the total mantissa width in bits, sign bit included.
	Bits = 32 * Words

	// MaxExp is the exponent of the saturated value returned by Max.
	MaxExp = math.MaxInt32

	top = Words - 1

	signBit uint32 = 0x80000000
	leadBit uint32 = 0x40000000
)

// newtonSteps is ceil(log2(Words)); each reciprocal step doubles the number
// of correct bits starting from a 64-bit seed.
var newtonSteps = bits.Len(uint(Words - 1))

// mantissa is a little-endian two's-complement fixed-point fraction.
type mantissa [Words]uint32

// Float is an arbitrary-precision binary floating point number.
// The zero value is 0.
type Float struct {
	exp  int64
	mant mantissa
}

// FromInt converts a machine integer exactly.
func FromInt(n int64) Float {
	x := Float{exp: 63}
	x.mant[top] = uint32(uint64(n) >> 32)
	x.mant[top-1] = uint32(n)
	x.normalize()
	return x
}

// FromBits builds a Float from a raw exponent and little-endian mantissa
// words and normalizes it.
func FromBits(exp int64, mant [Words]uint32) Float {
	x := Float{exp: exp, mant: mant}
	x.normalize()
	return x
}

// Normalize returns x in normal form. Every Float produced by this package
// is already normal, so Normalize(Normalize(x)) == Normalize(x).
func Normalize(x Float) Float {
	x.normalize()
	return x
}

// One returns 1.
func One() Float {
	var x Float
	x.exp = 1
	x.mant[top] = leadBit
	return x
}

// Half returns 1/2.
func Half() Float {
	var x Float
	x.mant[top] = leadBit
	return x
}

// Max returns the largest magnitude positive value, used as the saturated
// result of overflowing operations.
func Max() Float {
	x := Float{exp: MaxExp}
	for i := range x.mant {
		x.mant[i] = ^uint32(0)
	}
	x.mant[top] = ^signBit
	return x
}

// Bits returns the raw exponent and mantissa words of x.
func (x Float) Bits() (int64, [Words]uint32) {
	return x.exp, x.mant
}

// Exponent returns the binary exponent; |x| lies in [2^(e-1), 2^e).
func (x Float) Exponent() int64 { return x.exp }

// IsZero reports whether x is exactly zero.
func (x Float) IsZero() bool { return x.mant.zero() }

// Sign returns -1, 0 or +1.
func (x Float) Sign() int {
	switch {
	case x.mant.zero():
		return 0
	case x.mant.negative():
		return -1
	}
	return 1
}

// Neg returns -x.
func Neg(x Float) Float {
	if x.mant.zero() {
		return x
	}
	x.mant.neg()
	return x
}

// Abs returns |x|.
func Abs(x Float) Float {
	if x.mant.negative() {
		x.mant.neg()
	}
	return x
}

// Ldexp returns x * 2^n exactly.
func Ldexp(x Float, n int64) Float {
	if x.mant.zero() {
		return x
	}
	x.exp += n
	return x
}

// CmpAbs compares magnitudes: +1 if |a| > |b|, -1 if |a| < |b|, 0 if equal.
// Zero is smaller than every nonzero value.
func CmpAbs(a, b Float) int {
	az, bz := a.mant.zero(), b.mant.zero()
	switch {
	case az && bz:
		return 0
	case az:
		return -1
	case bz:
		return 1
	}
	if a.exp != b.exp {
		if a.exp > b.exp {
			return 1
		}
		return -1
	}
	ma, mb := a.mant, b.mant
	if ma.negative() {
		ma.neg()
	}
	if mb.negative() {
		mb.neg()
	}
	for i := top; i >= 0; i-- {
		if ma[i] != mb[i] {
			if ma[i] > mb[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Cmp compares signed values: -1 if a < b, 0 if a == b, +1 if a > b.
func Cmp(a, b Float) int {
	sa, sb := a.Sign(), b.Sign()
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	c := CmpAbs(a, b)
	if sa < 0 {
		return -c
	}
	return c
}

// normalize shifts the mantissa until the leading magnitude bit sits just
// below the sign bit. Exponent overflow is not checked; the int64 exponent
// wraps.
func (x *Float) normalize() {
	neg := x.mant.negative()
	if neg {
		x.mant.neg()
	}

	i := top
	for i >= 0 && x.mant[i] == 0 {
		i--
	}
	if i < 0 {
		*x = Float{}
		return
	}
	if i != top {
		n := 32 * (top - i)
		x.mant.shl(uint(n))
		x.exp -= int64(n)
	}

	// The magnitude is now read unsigned, so the most negative pattern
	// (sign bit alone) lands in the first case.
	switch msb := bits.Len32(x.mant[top]); {
	case msb == 32:
		x.mant.shr(1)
		x.exp++
	case msb < 31:
		up := uint(31 - msb)
		x.mant.shl(up)
		x.exp -= int64(up)
	}

	if neg {
		x.mant.neg()
	}
}

func (m *mantissa) negative() bool { return m[top]&signBit != 0 }

func (m *mantissa) zero() bool {
	for _, w := range m {
		if w != 0 {
			return false
		}
	}
	return true
}

// ext returns the word that sign-extends m.
func (m *mantissa) ext() uint32 {
	if m.negative() {
		return ^uint32(0)
	}
	return 0
}

// neg negates m in place (two's complement).
func (m *mantissa) neg() {
	carry := uint64(1)
	for i := range m {
		s := uint64(^m[i]) + carry
		m[i] = uint32(s)
		carry = s >> 32
	}
}

// shl shifts left by n < Bits bits, filling with zeros.
func (m *mantissa) shl(n uint) {
	w, b := int(n/32), n%32
	if w > 0 {
		for i := top; i >= 0; i-- {
			if i >= w {
				m[i] = m[i-w]
			} else {
				m[i] = 0
			}
		}
	}
	if b > 0 {
		for i := top; i > 0; i-- {
			m[i] = m[i]<<b | m[i-1]>>(32-b)
		}
		m[0] <<= b
	}
}

// shr shifts right by n bits, filling with zeros.
func (m *mantissa) shr(n uint) {
	m.shift(n, 0)
}

// sar shifts right by n bits, replicating the sign bit.
func (m *mantissa) sar(n uint) {
	m.shift(n, m.ext())
}

func (m *mantissa) shift(n uint, fill uint32) {
	if n >= Bits {
		for i := range m {
			m[i] = fill
		}
		return
	}
	w, b := int(n/32), n%32
	if w > 0 {
		for i := 0; i < Words; i++ {
			if i+w < Words {
				m[i] = m[i+w]
			} else {
				m[i] = fill
			}
		}
	}
	if b > 0 {
		for i := 0; i < top; i++ {
			m[i] = m[i]>>b | m[i+1]<<(32-b)
		}
		m[top] = m[top]>>b | fill<<(32-b)
	}
}
