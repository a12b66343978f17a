package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/modfloat/elem"
	"github.com/joshuapare/modfloat/float"
)

var constsDigits int

func init() {
	cmd := newConstsCmd()
	cmd.Flags().IntVar(&constsDigits, "digits", 70, "Significant digits to print")
	rootCmd.AddCommand(cmd)
}

func newConstsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consts",
		Short: "Print pi, ln 2 and e at full precision",
		Long: `The consts command generates the elementary-function tables and prints
the constants they are built from, plus e computed through exp.

Example:
  jplot consts
  jplot consts --digits 30 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsts()
		},
	}
	return cmd
}

type constEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func runConsts() error {
	opts := cfg.TableOptions()
	t, err := elem.Build(nil, opts)
	if err != nil {
		return err
	}
	e, err := t.Exp(float.One())
	if err != nil {
		return err
	}

	entries := []constEntry{
		{"pi", t.Pi().Text('g', constsDigits)},
		{"ln2", t.Ln2().Text('g', constsDigits)},
		{"e", e.Text('g', constsDigits)},
		{"sqrt2", float.Sqrt(float.FromInt(2)).Text('g', constsDigits)},
	}
	if jsonOut {
		return printJSON(entries)
	}
	for _, c := range entries {
		printInfo("%s %s\n", fmt.Sprintf("%-6s", c.Name), c.Value)
	}
	return nil
}
