package float

import "math"

// Round returns the nearest integer to x, rounding halves away from zero.
func Round(x Float) Float {
	if x.mant.zero() {
		return x
	}
	neg := x.mant.negative()
	r := Add(Abs(x), Half())
	r.truncate()
	if neg {
		r = Neg(r)
	}
	return r
}

// Split separates x into its integer part, truncated toward zero, and the
// remaining fraction. Both parts carry the sign of x and sum to x exactly.
func Split(x Float) (ipart, frac Float) {
	if x.exp <= 0 {
		return Float{}, x
	}
	neg := x.mant.negative()
	ipart = Abs(x)
	ipart.truncate()
	if neg {
		ipart = Neg(ipart)
	}
	return ipart, Sub(x, ipart)
}

// Int converts x to a machine integer, truncating toward zero and
// saturating at the int64 limits.
func Int(x Float) int64 {
	if x.mant.zero() || x.exp < 1 {
		return 0
	}
	neg := x.mant.negative()
	if x.exp > 63 {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	m := Abs(x).mant
	v := (uint64(m[top])<<32 | uint64(m[top-1])) >> uint(63-x.exp)
	if neg {
		return -int64(v)
	}
	return int64(v)
}

// truncate clears the fractional bits of a non-negative x.
func (x *Float) truncate() {
	if x.exp <= 0 {
		*x = Float{}
		return
	}
	if x.exp >= Bits-1 {
		return
	}
	n := uint(Bits - 1 - x.exp)
	w, b := int(n/32), n%32
	for i := 0; i < w; i++ {
		x.mant[i] = 0
	}
	if b > 0 {
		x.mant[w] &^= 1<<b - 1
	}
}
