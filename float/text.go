package float

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// BigFloat converts x exactly to a math/big value with Bits of precision.
func (x Float) BigFloat() *big.Float {
	z := new(big.Float).SetPrec(Bits)
	if x.mant.zero() {
		return z
	}
	m := x.mant
	neg := m.negative()
	if neg {
		m.neg()
	}
	var buf [Words * 4]byte
	for i := 0; i < Words; i++ {
		binary.BigEndian.PutUint32(buf[(top-i)*4:], m[i])
	}
	z.SetInt(new(big.Int).SetBytes(buf[:]))
	z.SetMantExp(z, int(x.exp)-(Bits-1))
	if neg {
		z.Neg(z)
	}
	return z
}

// FromBig converts f to a Float, truncating bits beyond the mantissa width.
func FromBig(f *big.Float) Float {
	if f.Sign() == 0 {
		return Float{}
	}
	var mant big.Float
	e := f.MantExp(&mant)
	mant.Abs(&mant)
	mant.SetMantExp(&mant, Bits-1)
	i, _ := mant.Int(nil)

	var buf [Words * 4]byte
	i.FillBytes(buf[:])
	x := Float{exp: int64(e)}
	for k := 0; k < Words; k++ {
		x.mant[k] = binary.BigEndian.Uint32(buf[(top-k)*4:])
	}
	x.normalize()
	if f.Sign() < 0 {
		x.mant.neg()
	}
	return x
}

// Parse reads a decimal number. It accepts Go float syntax ("3.25",
// "-1e-40", "0x1p-3") and the scientific dump form "E<exp10> <mantissa>",
// for example "E+12 -1.5".
func Parse(s string) (Float, error) {
	t := strings.TrimSpace(s)
	if len(t) > 1 && (t[0] == 'E' || t[0] == 'e') && (t[1] == '+' || t[1] == '-' || isDigit(t[1])) {
		exp, mant, ok := strings.Cut(t[1:], " ")
		if !ok {
			return Float{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		e, err := strconv.ParseInt(strings.TrimSpace(exp), 10, 32)
		if err != nil {
			return Float{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		t = strings.TrimSpace(mant) + "e" + strconv.FormatInt(e, 10)
	}
	f, _, err := big.ParseFloat(t, 0, Bits+32, big.ToZero)
	if err != nil || f.IsInf() {
		return Float{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return FromBig(f), nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// constants in tests and tables.
func MustParse(s string) Float {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// wideExp is the binary exponent past which decimal output is produced by
// rescaling with a power of ten rather than by exact expansion.
const wideExp = 1 << 12

// Text formats x like big.Float.Text. Values with |exponent| > wideExp
// print in 'e' form for every decimal format.
func (x Float) Text(format byte, digits int) string {
	switch format {
	case 'b', 'p', 'x', 'X':
	default:
		if x.wide() {
			return x.scaledText(format, digits)
		}
	}
	return x.BigFloat().Text(format, digits)
}

func (x Float) wide() bool {
	return !x.mant.zero() && (x.exp > wideExp || x.exp < -wideExp)
}

// scaledText divides x by 10^d, formats the quotient, and adds d back to
// the printed decimal exponent.
func (x Float) scaledText(format byte, digits int) string {
	const prec = Bits + 64
	sep := byte('e')
	if format == 'E' || format == 'G' {
		sep = 'E'
	}
	if (format == 'g' || format == 'G') && digits > 0 {
		digits--
	}

	// Stay a few binades under x so 10^|d| keeps a finite big.Float exponent.
	e := x.exp - 4
	if e < 0 {
		e = x.exp + 4
	}
	d := int64(math.Floor(float64(e) * math.Log10(2)))
	ad := d
	if ad < 0 {
		ad = -ad
	}
	p := pow10(uint64(ad), prec)
	m := new(big.Float).SetPrec(prec).Set(x.BigFloat())
	if d >= 0 {
		m.Quo(m, p)
	} else {
		m.Mul(m, p)
	}

	mant, exp, _ := strings.Cut(m.Text(sep, digits), string(sep))
	k, _ := strconv.ParseInt(exp, 10, 64)
	return fmt.Sprintf("%s%c%+03d", mant, sep, k+d)
}

// pow10 returns 10^n rounded to prec bits.
func pow10(n uint64, prec uint) *big.Float {
	r := new(big.Float).SetPrec(prec).SetInt64(1)
	b := new(big.Float).SetPrec(prec).SetInt64(10)
	for ; n > 0; n >>= 1 {
		if n&1 != 0 {
			r.Mul(r, b)
		}
		if n > 1 {
			b.Mul(b, b)
		}
	}
	return r
}

// Sci formats x in the scientific dump form read back by Parse, with the
// given number of mantissa digits.
func (x Float) Sci(digits int) string {
	if digits < 1 {
		digits = 1
	}
	s := x.Text('e', digits-1)
	mant, exp, _ := strings.Cut(s, "e")
	if mant[0] != '-' {
		mant = "+" + mant
	}
	e, _ := strconv.ParseInt(exp, 10, 64)
	return fmt.Sprintf("E%+010d %s", e, mant)
}

func (x Float) String() string {
	return x.Text('g', 30)
}

// Format implements fmt.Formatter. %s prints String; the numeric verbs
// and %v follow big.Float.
func (x Float) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprintf(s, fmt.FormatString(s, verb), x.String())
		return
	case 'v', 'e', 'E', 'f', 'F', 'g', 'G':
		if x.wide() {
			x.formatWide(s, verb)
			return
		}
	case 'b', 'p', 'x', 'X':
	default:
		fmt.Fprintf(s, "%%!%c(float.Float=%s)", verb, x.String())
		return
	}
	x.BigFloat().Format(s, verb)
}

func (x Float) formatWide(s fmt.State, verb rune) {
	format := byte(verb)
	switch verb {
	case 'v':
		format = 'g'
	case 'F':
		format = 'f'
	}
	prec, ok := s.Precision()
	if !ok {
		prec = 30
		if format != 'g' && format != 'G' {
			prec = 29
		}
	}
	width, _ := s.Width()
	if s.Flag('-') {
		width = -width
	}
	fmt.Fprintf(s, "%*s", width, x.Text(format, prec))
}

// Float64 returns the nearest float64. It exists for display and tests
// only; no arithmetic in this module goes through it.
func (x Float) Float64() float64 {
	f, _ := x.BigFloat().Float64()
	return f
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
