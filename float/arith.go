package float

import "math/bits"

// Add returns a+b. The result is commutative and exact up to the bits of the
// smaller operand shifted out during alignment.
func Add(a, b Float) Float {
	if a.mant.zero() {
		return b
	}
	if b.mant.zero() {
		return a
	}

	big, small := a, b
	switch CmpAbs(a, b) {
	case 0:
		if a.mant.negative() != b.mant.negative() {
			return Float{}
		}
		a.exp++
		return a
	case -1:
		big, small = b, a
	}

	gap := big.exp - small.exp
	if gap >= Bits {
		return big
	}
	small.mant.sar(uint(gap))

	var sum mantissa
	var carry uint64
	for i := range sum {
		s := uint64(big.mant[i]) + uint64(small.mant[i]) + carry
		sum[i] = uint32(s)
		carry = s >> 32
	}
	ext := big.mant.ext() + small.mant.ext() + uint32(carry)

	r := Float{exp: big.exp, mant: sum}
	if ext != sum.ext() {
		// The sum needs one more bit than fits; the extension word's low
		// bit is the true sign.
		r.mant.shr(1)
		r.mant[top] |= ext << 31
		r.exp++
	}
	r.normalize()
	return r
}

// Sub returns a-b.
func Sub(a, b Float) Float {
	return Add(a, Neg(b))
}

// Mul returns a*b, keeping the upper half of the double-length product.
func Mul(a, b Float) Float {
	if a.mant.zero() || b.mant.zero() {
		return Float{}
	}

	neg := false
	ma, mb := a.mant, b.mant
	if ma.negative() {
		ma.neg()
		neg = !neg
	}
	if mb.negative() {
		mb.neg()
		neg = !neg
	}

	var prod [2 * Words]uint32
	for i := 0; i < Words; i++ {
		var carry uint64
		for j := 0; j < Words; j++ {
			t := uint64(ma[i])*uint64(mb[j]) + uint64(prod[i+j]) + carry
			prod[i+j] = uint32(t)
			carry = t >> 32
		}
		prod[i+Words] = uint32(carry)
	}

	// Two normal fractions multiply into [1/4, 1/2); pull the missing
	// bits up from the discarded half before truncating.
	r := Float{exp: a.exp + b.exp + 1}
	shift := 31 - bits.Len32(prod[2*Words-1])
	for i := 0; i < Words; i++ {
		w := prod[Words+i]
		if shift > 0 {
			w = w<<uint(shift) | prod[Words+i-1]>>uint(32-shift)
		}
		r.mant[i] = w
	}
	if shift > 0 {
		r.exp -= int64(shift)
	}
	r.normalize()

	if neg {
		r.mant.neg()
	}
	return r
}
