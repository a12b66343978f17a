package main

import (
	"os"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/joshuapare/modfloat/arena"
	"github.com/joshuapare/modfloat/arena/promstats"
	"github.com/joshuapare/modfloat/float"
)

var statsMetrics bool

func init() {
	cmd := newStatsCmd()
	cmd.Flags().BoolVar(&statsMetrics, "metrics", false, "Print prometheus text exposition instead")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show coefficient arena statistics",
		Long: `The stats command builds the tables and the j series in one arena and
reports allocator counters and occupancy.

Example:
  jplot stats
  jplot stats --json
  jplot stats --metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
	return cmd
}

type statsResult struct {
	Capacity  int         `json:"capacity"`
	SlotBytes int         `json:"slot_bytes"`
	Arena     arena.Stats `json:"arena"`
}

func runStats() error {
	e, err := newEngine(cfg)
	if err != nil {
		return err
	}
	pool := e.sp.Pool()

	if statsMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(promstats.NewCollector(prometheus.Opts{Namespace: "jplot", Name: "arena"}, pool))
		mfs, err := reg.Gather()
		if err != nil {
			return err
		}
		for _, mf := range mfs {
			if _, err := expfmt.MetricFamilyToText(os.Stdout, mf); err != nil {
				return err
			}
		}
		return nil
	}

	res := statsResult{
		Capacity:  pool.Capacity(),
		SlotBytes: int(unsafe.Sizeof(float.Float{})),
		Arena:     pool.Stats(),
	}
	if jsonOut {
		return printJSON(res)
	}

	s := res.Arena
	size := func(slots int) string { return humanize.IBytes(uint64(slots * res.SlotBytes)) }
	printInfo("capacity    %d slots (%s)\n", res.Capacity, size(res.Capacity))
	printInfo("live        %d blocks, %d slots (%s)\n", s.LiveBlocks, s.LiveSlots, size(s.LiveSlots))
	printInfo("dead        %d blocks, %d slots\n", s.DeadBlocks, s.DeadSlots)
	printInfo("tail        %d slots (%s)\n", s.TailSlots, size(s.TailSlots))
	printInfo("allocs      %d\n", s.Allocs)
	printInfo("frees       %d\n", s.Frees)
	printInfo("compactions %d (%d moves, %d merges)\n", s.Compactions, s.Moves, s.Merges)
	printInfo("descriptors %d used, %d released\n", s.Descriptors, s.Released)
	return nil
}
