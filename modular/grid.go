package modular

import (
	"context"
	"fmt"

	"github.com/joshuapare/modfloat/cplx"
	"github.com/joshuapare/modfloat/float"
)

// Default grid shape.
const (
	DefaultGridSize   = 512
	DefaultGridHeight = 10
)

// Grid describes Size rows of Size points. Row 0 is the arc |tau| = 1 from
// arg 2pi/3 down to pi/3; row r is that arc shifted up by i*Height*r/Size.
type Grid struct {
	Size   int
	Height int
}

// DefaultGrid returns the 512x512 grid reaching Im(tau) = 10.
func DefaultGrid() Grid {
	return Grid{Size: DefaultGridSize, Height: DefaultGridHeight}
}

// Validate reports whether the grid can be walked.
func (g Grid) Validate() error {
	if g.Size < 2 {
		return fmt.Errorf("%w: size %d", ErrBadGrid, g.Size)
	}
	if g.Height <= 0 {
		return fmt.Errorf("%w: height %d", ErrBadGrid, g.Height)
	}
	return nil
}

// Point is one evaluated grid position.
type Point struct {
	X, Y uint32
	Tau  cplx.Complex
	J    cplx.Complex
}

// Arc returns the Size base points of the grid on the unit circle.
func (e *Evaluator) Arc(g Grid) ([]cplx.Complex, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	third, _ := float.Quo(e.tables.Pi(), float.FromInt(3))
	theta := float.Ldexp(third, 1)
	step, _ := float.Quo(third, float.FromInt(int64(g.Size-1)))

	arc := make([]cplx.Complex, g.Size)
	for i := range arc {
		arc[i] = cplx.New(e.tables.Cos(theta), e.tables.Sin(theta))
		theta = float.Sub(theta, step)
	}
	return arc, nil
}

// Tabulate evaluates j over the grid row by row and passes each point to
// emit. The context is checked between rows; an error from emit stops the
// walk and is returned.
func Tabulate(ctx context.Context, e *Evaluator, g Grid, emit func(Point) error) error {
	arc, err := e.Arc(g)
	if err != nil {
		return err
	}
	lift, _ := float.Quo(float.FromInt(int64(g.Height)), float.FromInt(int64(g.Size)))

	for row := 0; row < g.Size; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		up := cplx.New(float.Float{}, float.Mul(lift, float.FromInt(int64(row))))
		for col, base := range arc {
			tau := cplx.Add(up, base)
			j, err := e.J(tau)
			if err != nil {
				return fmt.Errorf("modular: point (%d, %d): %w", col, row, err)
			}
			if err := emit(Point{X: uint32(col), Y: uint32(row), Tau: tau, J: j}); err != nil {
				return err
			}
		}
	}
	return nil
}
