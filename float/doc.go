// Package float implements fixed-width, arbitrary-precision binary floating
// point numbers built entirely from 32-bit machine words.
//
// # Representation
//
// A Float is a signed binary exponent plus a mantissa of Words little-endian
// 32-bit words holding a two's-complement fixed-point fraction:
//
//	value = (M / 2^(Bits-1)) * 2^exp
//
// where M is the mantissa read as a signed Bits-wide integer. Every Float
// returned by this package is in normal form:
//
//   - zero is exactly (exp 0, all-zero mantissa)
//   - a positive value has the top mantissa bit clear and the next bit set,
//     so its fraction lies in [1/2, 1)
//   - a negative value is the two's-complement negation of a positive normal
//     mantissa
//
// Floats are plain values. They can be copied, compared with == for bitwise
// identity, and stored in slices without any ownership concerns.
//
// # Precision
//
// With the default Words = 8 the mantissa carries 256 bits; operations keep
// roughly 250 of them. Multiplication truncates the low half of the double
// length product, addition truncates the bits shifted out of the smaller
// operand. Nothing in the package uses hardware floating point except the
// lossy Float64 display helper.
//
// # Errors
//
// Operations that can fail return an error instead of panicking:
//
//	r, err := float.Quo(a, b)
//	if errors.Is(err, float.ErrDivideByZero) {
//	    ...
//	}
//
// # Thread Safety
//
// Floats are immutable values and safe to share between goroutines.
package float
