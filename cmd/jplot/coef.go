package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/modfloat/float"
)

func init() {
	rootCmd.AddCommand(newCoefCmd())
}

func newCoefCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coef",
		Short: "Print the q-expansion coefficients of j",
		Long: `The coef command prints the integer coefficients c(n) of
j(tau) = 1/q + 744 + 196884 q + ... up to the configured number of terms.

Example:
  jplot coef
  jplot coef --json
  MODFLOAT_SERIES_TERMS=10 jplot coef`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoef()
		},
	}
	return cmd
}

type coefEntry struct {
	Power int    `json:"power"`
	Value string `json:"value"`
}

func runCoef() error {
	e, err := newEngine(cfg)
	if err != nil {
		return err
	}

	coef := e.eval.Coefficients()
	entries := make([]coefEntry, len(coef))
	for k, c := range coef {
		entries[k] = coefEntry{Power: k - 1, Value: float.Round(c).Text('f', 0)}
	}

	if jsonOut {
		return printJSON(entries)
	}
	for _, c := range entries {
		printInfo("%s %s\n", fmt.Sprintf("q^%-3d", c.Power), c.Value)
	}
	return nil
}
