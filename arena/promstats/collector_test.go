package promstats

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/modfloat/arena"
)

func TestCollector_ReportsPoolState(t *testing.T) {
	p := arena.New[int](100)
	a, err := p.Alloc(10)
	require.NoError(t, err)
	_, err = p.Alloc(30)
	require.NoError(t, err)
	require.NoError(t, p.Free(a))

	c := NewCollector(prometheus.Opts{Namespace: "modfloat", Name: "arena"}, p)

	want := `
# HELP modfloat_arena_allocs_total Blocks allocated.
# TYPE modfloat_arena_allocs_total counter
modfloat_arena_allocs_total 2
# HELP modfloat_arena_blocks Blocks by state.
# TYPE modfloat_arena_blocks gauge
modfloat_arena_blocks{state="dead"} 1
modfloat_arena_blocks{state="live"} 1
# HELP modfloat_arena_slots Element slots by state.
# TYPE modfloat_arena_slots gauge
modfloat_arena_slots{state="dead"} 10
modfloat_arena_slots{state="live"} 30
modfloat_arena_slots{state="tail"} 60
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(want),
		"modfloat_arena_allocs_total", "modfloat_arena_blocks", "modfloat_arena_slots"))

	p.Compact()
	require.Equal(t, 10, testutil.CollectAndCount(c))

	after := `
# HELP modfloat_arena_compactions_total Compaction passes run.
# TYPE modfloat_arena_compactions_total counter
modfloat_arena_compactions_total 1
# HELP modfloat_arena_slots Element slots by state.
# TYPE modfloat_arena_slots gauge
modfloat_arena_slots{state="dead"} 0
modfloat_arena_slots{state="live"} 30
modfloat_arena_slots{state="tail"} 70
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(after),
		"modfloat_arena_compactions_total", "modfloat_arena_slots"))
}
