package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/modfloat/arena"
	"github.com/joshuapare/modfloat/float"
)

func ints(ns ...int64) []float.Float {
	out := make([]float.Float, len(ns))
	for i, n := range ns {
		out[i] = float.FromInt(n)
	}
	return out
}

func mustPoly(t *testing.T, sp *Space, ns ...int64) Poly {
	t.Helper()
	p, err := sp.FromCoefs(ints(ns...)...)
	require.NoError(t, err)
	return p
}

func requireCoefs(t *testing.T, sp *Space, p Poly, ns ...int64) {
	t.Helper()
	require.Equal(t, len(ns)-1, p.Degree, "degree")
	assert.Equal(t, ints(ns...), sp.Coef(p))
}

// TestSpace_FreeCompactReuse frees the middle of three polynomials and
// checks the released descriptor is handed out next.
func TestSpace_FreeCompactReuse(t *testing.T) {
	sp := NewSpace(100)
	a, err := sp.New(10)
	require.NoError(t, err)
	b, err := sp.New(20)
	require.NoError(t, err)
	c, err := sp.New(5)
	require.NoError(t, err)
	sp.Coef(c)[5] = float.FromInt(9)

	require.NoError(t, sp.Free(b))
	sp.Pool().Compact()

	st := sp.Stats()
	assert.Equal(t, 2, st.LiveBlocks)
	assert.Equal(t, 17, st.LiveSlots)
	assert.Equal(t, 1, st.Released)
	assert.Equal(t, float.FromInt(9), sp.Coef(c)[5])

	d, err := sp.New(3)
	require.NoError(t, err)
	assert.Equal(t, b.Handle(), d.Handle())
	assert.True(t, sp.Pool().Live(a.Handle()))
}

// TestSpace_NewRejectsNegative covers degree validation.
func TestSpace_NewRejectsNegative(t *testing.T) {
	sp := NewSpace(10)
	_, err := sp.New(-1)
	require.ErrorIs(t, err, ErrNegativeDegree)
	_, err = sp.FromCoefs()
	require.ErrorIs(t, err, ErrNegativeDegree)
}

// TestSpace_NoSpaceLeavesInputs reports exhaustion without touching operands.
func TestSpace_NoSpaceLeavesInputs(t *testing.T) {
	sp := NewSpace(8)
	a := mustPoly(t, sp, 1, 2, 3)
	b := mustPoly(t, sp, 4, 5)

	_, err := sp.Mul(a, b)
	require.ErrorIs(t, err, arena.ErrNoSpace)
	requireCoefs(t, sp, a, 1, 2, 3)
	requireCoefs(t, sp, b, 4, 5)

	_, err = sp.PowerAdd(a, b)
	require.NoError(t, err)
	_, err = sp.Dup(a)
	require.ErrorIs(t, err, arena.ErrNoSpace)
}

// TestSpace_Rebind frees the old binding.
func TestSpace_Rebind(t *testing.T) {
	sp := NewSpace(20)
	acc := mustPoly(t, sp, 1, 1)
	old := acc.Handle()
	term := mustPoly(t, sp, 0, 0, 1)

	sum, err := sp.Add(acc, term)
	require.NoError(t, err)
	require.NoError(t, sp.Rebind(&acc, sum))
	assert.False(t, sp.Pool().Live(old))
	requireCoefs(t, sp, acc, 1, 1, 1)

	// Rebinding to itself keeps the storage.
	require.NoError(t, sp.Rebind(&acc, acc))
	assert.True(t, sp.Pool().Live(acc.Handle()))

	var empty Poly
	require.NoError(t, sp.Rebind(&empty, term))
	assert.Equal(t, term, empty)
}

// TestAdd_Trims drops exactly-zero leading terms.
func TestAdd_Trims(t *testing.T) {
	sp := NewSpace(100)
	a := mustPoly(t, sp, 1, 1, 1)
	b := mustPoly(t, sp, 0, 0, -1)

	r, err := sp.Add(a, b)
	require.NoError(t, err)
	requireCoefs(t, sp, r, 1, 1)

	r, err = sp.Sub(a, a)
	require.NoError(t, err)
	requireCoefs(t, sp, r, 0)

	r, err = sp.Sub(mustPoly(t, sp, 5), a)
	require.NoError(t, err)
	requireCoefs(t, sp, r, 4, -1, -1)
}

// TestMul_DegreeLaw checks the full convolution and degree sum.
func TestMul_DegreeLaw(t *testing.T) {
	sp := NewSpace(200)

	r, err := sp.Mul(mustPoly(t, sp, 1, 1), mustPoly(t, sp, 1, 1))
	require.NoError(t, err)
	requireCoefs(t, sp, r, 1, 2, 1)

	r, err = sp.Mul(mustPoly(t, sp, 1, 1), mustPoly(t, sp, 1, -1))
	require.NoError(t, err)
	requireCoefs(t, sp, r, 1, 0, -1)

	// Unequal degrees, both operand orders.
	a := mustPoly(t, sp, 2, 0, 3, 1)
	b := mustPoly(t, sp, -1, 4)
	r, err = sp.Mul(a, b)
	require.NoError(t, err)
	requireCoefs(t, sp, r, -2, 8, -3, 11, 4)
	r, err = sp.Mul(b, a)
	require.NoError(t, err)
	requireCoefs(t, sp, r, -2, 8, -3, 11, 4)

	r, err = sp.Mul(mustPoly(t, sp, 3), a)
	require.NoError(t, err)
	requireCoefs(t, sp, r, 6, 0, 9, 3)
}

// TestPowerAdd copies the longer tail.
func TestPowerAdd(t *testing.T) {
	sp := NewSpace(100)
	r, err := sp.PowerAdd(mustPoly(t, sp, 1, 2), mustPoly(t, sp, 3, 4, 5, 6))
	require.NoError(t, err)
	requireCoefs(t, sp, r, 4, 6, 5, 6)

	r, err = sp.PowerAdd(mustPoly(t, sp, 1, 2, 0), mustPoly(t, sp, -1, -2))
	require.NoError(t, err)
	requireCoefs(t, sp, r, 0, 0, 0)
}

// TestPowerMul truncates and uses every coefficient of both inputs.
func TestPowerMul(t *testing.T) {
	sp := NewSpace(100)

	r, err := sp.PowerMul(mustPoly(t, sp, 1, 1), mustPoly(t, sp, 1, 1))
	require.NoError(t, err)
	requireCoefs(t, sp, r, 1, 2)

	// (1 + x + x^2 + x^3)(1 - x) needs b's top coefficient.
	r, err = sp.PowerMul(mustPoly(t, sp, 1, 1, 1, 1), mustPoly(t, sp, 1, -1))
	require.NoError(t, err)
	requireCoefs(t, sp, r, 1, 0, 0, 0)

	r, err = sp.PowerMul(mustPoly(t, sp, 1, -1), mustPoly(t, sp, 1, 1, 1, 1))
	require.NoError(t, err)
	requireCoefs(t, sp, r, 1, 0, 0, 0)
}

// TestPowerDiv expands 1/(1-x) and inverts PowerMul.
func TestPowerDiv(t *testing.T) {
	sp := NewSpace(200)

	r, err := sp.PowerDiv(mustPoly(t, sp, 1, 0, 0, 0, 0, 0), mustPoly(t, sp, 1, -1, 0, 0, 0, 0))
	require.NoError(t, err)
	requireCoefs(t, sp, r, 1, 1, 1, 1, 1, 1)

	// Degree is the smaller of the two.
	r, err = sp.PowerDiv(mustPoly(t, sp, 1, 0, 0, 0, 0, 0), mustPoly(t, sp, 1, -1))
	require.NoError(t, err)
	requireCoefs(t, sp, r, 1, 1)

	a := mustPoly(t, sp, 3, -1, 4, 1, -5)
	b := mustPoly(t, sp, 2, 7, 1, 8, 2)
	prod, err := sp.PowerMul(a, b)
	require.NoError(t, err)
	q, err := sp.PowerDiv(prod, b)
	require.NoError(t, err)
	for i, c := range sp.Coef(q) {
		want := sp.Coef(a)[i]
		diff := float.Sub(c, want)
		if !diff.IsZero() {
			assert.LessOrEqual(t, diff.Exponent(), want.Exponent()-float.Bits+20, "coefficient %d", i)
		}
	}
	sp.Round(q)
	assert.Equal(t, sp.Coef(a), sp.Coef(q))
}

// TestPowerDiv_ZeroConstant fails on a zero constant term.
func TestPowerDiv_ZeroConstant(t *testing.T) {
	sp := NewSpace(20)
	_, err := sp.PowerDiv(mustPoly(t, sp, 1, 1), mustPoly(t, sp, 0, 1))
	require.ErrorIs(t, err, float.ErrDivideByZero)
}

// TestEval uses Horner's rule.
func TestEval(t *testing.T) {
	sp := NewSpace(20)
	p := mustPoly(t, sp, 1, 2, 3)
	assert.Equal(t, float.FromInt(17), sp.Eval(p, float.FromInt(2)))
	assert.Equal(t, float.FromInt(2), sp.Eval(p, float.FromInt(-1)))
	assert.Equal(t, float.One(), sp.Eval(p, float.Float{}))
}

// TestScaleRound scales then rounds coefficients in place.
func TestScaleRound(t *testing.T) {
	sp := NewSpace(20)
	p := mustPoly(t, sp, 1, -3, 5)
	half, err := sp.Scale(p, float.Half())
	require.NoError(t, err)
	assert.Equal(t, float.MustParse("-1.5"), sp.Coef(half)[1])

	sp.Round(half)
	requireCoefs(t, sp, half, 1, -2, 3)
}
