// Package promstats publishes arena allocator statistics to prometheus.
package promstats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/modfloat/arena"
)

// Source is anything that reports arena statistics; *arena.Pool[T] for any T
// satisfies it.
type Source interface {
	Stats() arena.Stats
}

type collector struct {
	src Source

	allocs      *prometheus.Desc
	frees       *prometheus.Desc
	compactions *prometheus.Desc
	moves       *prometheus.Desc
	merges      *prometheus.Desc
	blocks      *prometheus.Desc
	slots       *prometheus.Desc
}

// NewCollector returns a prometheus.Collector that snapshots src on every
// scrape. The returned collector still needs to be registered.
func NewCollector(opts prometheus.Opts, src Source) prometheus.Collector {
	name := func(n string) string {
		return prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name+"_"+n)
	}
	return &collector{
		src:         src,
		allocs:      prometheus.NewDesc(name("allocs_total"), "Blocks allocated.", nil, opts.ConstLabels),
		frees:       prometheus.NewDesc(name("frees_total"), "Blocks freed.", nil, opts.ConstLabels),
		compactions: prometheus.NewDesc(name("compactions_total"), "Compaction passes run.", nil, opts.ConstLabels),
		moves:       prometheus.NewDesc(name("moves_total"), "Live blocks moved by compaction.", nil, opts.ConstLabels),
		merges:      prometheus.NewDesc(name("merges_total"), "Dead blocks merged by compaction.", nil, opts.ConstLabels),
		blocks:      prometheus.NewDesc(name("blocks"), "Blocks by state.", []string{"state"}, opts.ConstLabels),
		slots:       prometheus.NewDesc(name("slots"), "Element slots by state.", []string{"state"}, opts.ConstLabels),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocs
	ch <- c.frees
	ch <- c.compactions
	ch <- c.moves
	ch <- c.merges
	ch <- c.blocks
	ch <- c.slots
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.allocs, prometheus.CounterValue, float64(st.Allocs))
	ch <- prometheus.MustNewConstMetric(c.frees, prometheus.CounterValue, float64(st.Frees))
	ch <- prometheus.MustNewConstMetric(c.compactions, prometheus.CounterValue, float64(st.Compactions))
	ch <- prometheus.MustNewConstMetric(c.moves, prometheus.CounterValue, float64(st.Moves))
	ch <- prometheus.MustNewConstMetric(c.merges, prometheus.CounterValue, float64(st.Merges))
	ch <- prometheus.MustNewConstMetric(c.blocks, prometheus.GaugeValue, float64(st.LiveBlocks), "live")
	ch <- prometheus.MustNewConstMetric(c.blocks, prometheus.GaugeValue, float64(st.DeadBlocks), "dead")
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(st.LiveSlots), "live")
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(st.DeadSlots), "dead")
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(st.TailSlots), "tail")
}
