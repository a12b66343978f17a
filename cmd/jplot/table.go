package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/modfloat/internal/format"
	"github.com/joshuapare/modfloat/internal/logger"
	"github.com/joshuapare/modfloat/internal/writer"
	"github.com/joshuapare/modfloat/modular"
)

var (
	tableOut    string
	tableSize   int
	tableHeight int
)

func init() {
	cmd := newTableCmd()
	cmd.Flags().StringVarP(&tableOut, "output", "o", "", "Plot file to write (default from config)")
	cmd.Flags().IntVar(&tableSize, "size", 0, "Grid points per row and number of rows (default from config)")
	cmd.Flags().IntVar(&tableHeight, "height", 0, "Im(tau) reached by the top row (default from config)")
	rootCmd.AddCommand(cmd)
}

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate j over the fundamental domain",
		Long: `The table command evaluates j on a size x size grid covering the
fundamental domain: the arc |tau| = 1 from 2pi/3 to pi/3, lifted towards
Im(tau) = height. Each point is written as a fixed-size binary record.

Example:
  jplot table -o j.bin
  jplot table -o small.bin --size 32 --height 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runTable(ctx)
		},
	}
	return cmd
}

type tableResult struct {
	Path    string `json:"path"`
	Records int    `json:"records"`
	Bytes   int64  `json:"bytes"`
	Synced  bool   `json:"synced"`
	Elapsed string `json:"elapsed"`
}

func runTable(ctx context.Context) error {
	grid := cfg.GridSpec()
	if tableSize != 0 {
		grid.Size = tableSize
	}
	if tableHeight != 0 {
		grid.Height = tableHeight
	}
	if err := grid.Validate(); err != nil {
		return err
	}
	path := tableOut
	if path == "" {
		path = cfg.Output.Path
	}

	e, err := newEngine(cfg)
	if err != nil {
		return err
	}

	began := time.Now()
	out := &writer.FileWriter{Path: path, Sync: cfg.Output.Sync, FullSync: cfg.Output.FullSync}
	if err := out.Open(); err != nil {
		return fmt.Errorf("plot file: %w", err)
	}
	defer out.Abort()

	w := format.NewWriter(out)
	err = modular.Tabulate(ctx, e.eval, grid, func(p modular.Point) error {
		if p.X == uint32(grid.Size-1) {
			logger.Debug("row done", "row", p.Y, "of", grid.Size)
		}
		return w.Write(format.Record{X: p.X, Y: p.Y, Start: p.Tau, JT: p.J})
	})
	if errors.Is(err, context.Canceled) {
		printInfo("interrupted after %d records\n", w.Count())
	}
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush plot file: %w", err)
	}
	if err := out.Commit(); err != nil {
		return fmt.Errorf("plot file: %w", err)
	}

	res := tableResult{
		Path:    path,
		Records: w.Count(),
		Bytes:   int64(w.Count()) * format.RecordSize,
		Synced:  cfg.Output.Sync,
		Elapsed: time.Since(began).Round(time.Millisecond).String(),
	}
	if jsonOut {
		return printJSON(res)
	}
	printInfo("wrote %d records (%s) to %s\n", res.Records, humanize.IBytes(uint64(res.Bytes)), res.Path)
	printVerbose("elapsed %s, synced %v\n", res.Elapsed, res.Synced)
	return nil
}
