package modular

import (
	"fmt"

	"github.com/joshuapare/modfloat/cplx"
	"github.com/joshuapare/modfloat/elem"
	"github.com/joshuapare/modfloat/float"
	"github.com/joshuapare/modfloat/poly"
)

// Evaluator computes j(tau) from a fixed coefficient table.
type Evaluator struct {
	coef   []float.Float
	tables *elem.Tables
	twoPiI cplx.Complex
}

// NewEvaluator copies the coefficients of a JSeries result out of sp.
func NewEvaluator(sp *poly.Space, series poly.Poly, t *elem.Tables) (*Evaluator, error) {
	if series.Degree < 1 {
		return nil, ErrShortSeries
	}
	return &Evaluator{
		coef:   append([]float.Float(nil), sp.Coef(series)...),
		tables: t,
		twoPiI: cplx.New(float.Float{}, float.Ldexp(t.Pi(), 1)),
	}, nil
}

// Coefficients returns a copy of the table; index k multiplies q^(k-1).
func (e *Evaluator) Coefficients() []float.Float {
	return append([]float.Float(nil), e.coef...)
}

// Q returns the nome q = exp(2 pi i tau).
func (e *Evaluator) Q(tau cplx.Complex) (cplx.Complex, error) {
	return cplx.ExpWith(e.tables, cplx.Mul(e.twoPiI, tau))
}

// J returns j(tau) = 1/q + 744 + 196884 q + ... over the table.
func (e *Evaluator) J(tau cplx.Complex) (cplx.Complex, error) {
	q, err := e.Q(tau)
	if err != nil {
		return cplx.Complex{}, fmt.Errorf("modular: q(%s): %w", tau, err)
	}
	inv, err := cplx.Quo(cplx.One(), q)
	if err != nil {
		return cplx.Complex{}, fmt.Errorf("modular: 1/q at %s: %w", tau, err)
	}

	j := cplx.Add(cplx.Scale(inv, e.coef[0]), cplx.New(e.coef[1], float.Float{}))
	qn := q
	for k := 2; k < len(e.coef); k++ {
		j = cplx.Add(j, cplx.Scale(qn, e.coef[k]))
		qn = cplx.Mul(q, qn)
	}
	return j, nil
}
