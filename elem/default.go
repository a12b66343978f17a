package elem

import (
	"fmt"
	"sync"

	"github.com/joshuapare/modfloat/float"
)

var (
	stdOnce sync.Once
	std     *Tables
	stdErr  error
)

// Init builds the default tables. It runs the build at most once per
// process; later calls return the first result. Calling it is optional:
// every package-level function initializes on first use.
func Init() error {
	stdOnce.Do(func() {
		std, stdErr = Build(nil, DefaultOptions())
		if stdErr != nil {
			stdErr = fmt.Errorf("%w: %w", ErrUninitialized, stdErr)
		}
	})
	return stdErr
}

// Default returns the shared default tables.
func Default() (*Tables, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return std, nil
}

func mustDefault() *Tables {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// Exp returns e^x using the default tables.
func Exp(x float.Float) (float.Float, error) {
	t, err := Default()
	if err != nil {
		return float.Float{}, err
	}
	return t.Exp(x)
}

// Cos returns cos(x) using the default tables.
func Cos(x float.Float) float.Float { return mustDefault().Cos(x) }

// Sin returns sin(x) using the default tables.
func Sin(x float.Float) float.Float { return mustDefault().Sin(x) }

// TwoExp returns 2^x for x in [-1, 1] using the default tables.
func TwoExp(x float.Float) float.Float { return mustDefault().TwoExp(x) }

// CoreCos returns cos(z) for z in [-pi/2, pi/2] using the default tables.
func CoreCos(z float.Float) float.Float { return mustDefault().CoreCos(z) }

// Pi returns pi.
func Pi() float.Float { return mustDefault().Pi() }

// Ln2 returns ln 2.
func Ln2() float.Float { return mustDefault().Ln2() }
