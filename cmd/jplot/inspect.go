package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/modfloat/internal/format"
	"github.com/joshuapare/modfloat/internal/mmfile"
)

var (
	inspectDump   int
	inspectDigits int
)

func init() {
	cmd := newInspectCmd()
	cmd.Flags().IntVarP(&inspectDump, "dump", "n", 0, "Print the first n records")
	cmd.Flags().IntVar(&inspectDigits, "digits", 20, "Mantissa digits for dumped values")
	rootCmd.AddCommand(cmd)
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <plot-file>",
		Short: "Summarize or dump a plot file",
		Long: `The inspect command maps a plot file and reports its record count
and grid extent. With --dump it prints records in scientific form.

Example:
  jplot inspect j.bin
  jplot inspect j.bin --dump 4
  jplot inspect j.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
	return cmd
}

type inspectRecord struct {
	X     uint32    `json:"x"`
	Y     uint32    `json:"y"`
	Start [2]string `json:"start"`
	JT    [2]string `json:"jt"`
}

type inspectResult struct {
	Path    string          `json:"path"`
	Bytes   int             `json:"bytes"`
	Records int             `json:"records"`
	Columns uint32          `json:"columns"`
	Rows    uint32          `json:"rows"`
	Dump    []inspectRecord `json:"dump,omitempty"`
}

func runInspect(args []string) error {
	path := args[0]
	printVerbose("Mapping plot file: %s\n", path)

	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("map plot file: %w", err)
	}
	defer unmap()

	n, err := format.Count(data)
	if err != nil {
		return err
	}
	res := inspectResult{Path: path, Bytes: len(data), Records: n}

	for r, err := range format.Decode(data) {
		if err != nil {
			return err
		}
		res.Columns = max(res.Columns, r.X+1)
		res.Rows = max(res.Rows, r.Y+1)
		if len(res.Dump) < inspectDump {
			res.Dump = append(res.Dump, inspectRecord{
				X:     r.X,
				Y:     r.Y,
				Start: [2]string{r.Start.Re.Sci(inspectDigits), r.Start.Im.Sci(inspectDigits)},
				JT:    [2]string{r.JT.Re.Sci(inspectDigits), r.JT.Im.Sci(inspectDigits)},
			})
		}
	}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("%s: %d records, %s\n", res.Path, res.Records, humanize.IBytes(uint64(res.Bytes)))
	printInfo("grid: %d columns x %d rows\n", res.Columns, res.Rows)
	for _, r := range res.Dump {
		printInfo("[%d,%d] start %s %s\n", r.X, r.Y, r.Start[0], r.Start[1])
		printInfo("      jt    %s %s\n", r.JT[0], r.JT[1])
	}
	return nil
}
