package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/modfloat/cplx"
	"github.com/joshuapare/modfloat/float"
)

var (
	evalTau    string
	evalDigits int
)

func init() {
	cmd := newEvalCmd()
	cmd.Flags().StringVar(&evalTau, "tau", "0,1", "Point of the upper half plane as re,im")
	cmd.Flags().IntVar(&evalDigits, "digits", 40, "Significant digits to print")
	rootCmd.AddCommand(cmd)
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate j at one point",
		Long: `The eval command evaluates j(tau) from the q-expansion.

Example:
  jplot eval --tau 0,1              # j(i) = 1728
  jplot eval --tau -0.5,0.8660254037844386467637231707529361834714
  jplot eval --tau 0.1,1.2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval()
		},
	}
	return cmd
}

// parseTau reads "re,im" with both parts in any syntax float.Parse accepts.
func parseTau(s string) (cplx.Complex, error) {
	re, im, ok := strings.Cut(s, ",")
	if !ok {
		return cplx.Complex{}, fmt.Errorf("tau %q: want re,im", s)
	}
	x, err := float.Parse(re)
	if err != nil {
		return cplx.Complex{}, fmt.Errorf("tau real part: %w", err)
	}
	y, err := float.Parse(im)
	if err != nil {
		return cplx.Complex{}, fmt.Errorf("tau imaginary part: %w", err)
	}
	if y.Sign() <= 0 {
		return cplx.Complex{}, fmt.Errorf("tau %q: imaginary part must be positive", s)
	}
	return cplx.New(x, y), nil
}

type evalResult struct {
	Tau [2]string `json:"tau"`
	J   [2]string `json:"j"`
}

func runEval() error {
	tau, err := parseTau(evalTau)
	if err != nil {
		return err
	}
	e, err := newEngine(cfg)
	if err != nil {
		return err
	}
	j, err := e.eval.J(tau)
	if err != nil {
		return err
	}

	res := evalResult{
		Tau: [2]string{tau.Re.Text('g', evalDigits), tau.Im.Text('g', evalDigits)},
		J:   [2]string{j.Re.Text('g', evalDigits), j.Im.Text('g', evalDigits)},
	}
	if jsonOut {
		return printJSON(res)
	}
	printInfo("tau = (%s, %s)\n", res.Tau[0], res.Tau[1])
	printInfo("j   = (%s, %s)\n", res.J[0], res.J[1])
	return nil
}
