package float

import (
	"math/big"
	"testing"
)

var (
	sinkFloat Float
	sinkBig   *big.Float
)

// Every benchmark runs the same operation on Float ("modfloat") and on a
// 256-bit big.Float ("big") so scripts/benchmark_parser can compare them.

func benchOperands() (Float, Float) {
	return MustParse("3.14159265358979323846264338327950288419716939937510"),
		MustParse("-2.71828182845904523536028747135266249775724709369995")
}

func BenchmarkMul(b *testing.B) {
	x, y := benchOperands()
	b.Run("modfloat", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			sinkFloat = Mul(x, y)
		}
	})
	b.Run("big", func(b *testing.B) {
		bx, by, z := x.BigFloat(), y.BigFloat(), new(big.Float).SetPrec(Bits)
		b.ReportAllocs()
		for range b.N {
			sinkBig = z.Mul(bx, by)
		}
	})
}

func BenchmarkAdd(b *testing.B) {
	x, y := benchOperands()
	y = Ldexp(y, -40)
	b.Run("modfloat", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			sinkFloat = Add(x, y)
		}
	})
	b.Run("big", func(b *testing.B) {
		bx, by, z := x.BigFloat(), y.BigFloat(), new(big.Float).SetPrec(Bits)
		b.ReportAllocs()
		for range b.N {
			sinkBig = z.Add(bx, by)
		}
	})
}

func BenchmarkQuo(b *testing.B) {
	x, y := benchOperands()
	b.Run("modfloat", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			sinkFloat, _ = Quo(x, y)
		}
	})
	b.Run("big", func(b *testing.B) {
		bx, by, z := x.BigFloat(), y.BigFloat(), new(big.Float).SetPrec(Bits)
		b.ReportAllocs()
		for range b.N {
			sinkBig = z.Quo(bx, by)
		}
	})
}

func BenchmarkSqrt(b *testing.B) {
	x := FromInt(2)
	b.Run("modfloat", func(b *testing.B) {
		b.ReportAllocs()
		for range b.N {
			sinkFloat = Sqrt(x)
		}
	})
	b.Run("big", func(b *testing.B) {
		bx, z := x.BigFloat(), new(big.Float).SetPrec(Bits)
		b.ReportAllocs()
		for range b.N {
			sinkBig = z.Sqrt(bx)
		}
	})
}

// BenchmarkReciprocal_Seeded has no big.Float counterpart.
func BenchmarkReciprocal_Seeded(b *testing.B) {
	x := MustParse("7.389056098930650227230427460575007813180315570551847")
	b.ReportAllocs()
	for range b.N {
		sinkFloat, _ = Reciprocal(x)
	}
}
