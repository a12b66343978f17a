package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/modfloat/internal/format"
)

func TestCoefCommand(t *testing.T) {
	useTestConfig(t)

	output, err := captureOutput(t, runCoef)
	require.NoError(t, err)
	for _, want := range []string{"q^-1  1\n", "q^0   744\n", "q^1   196884\n", "q^2   21493760\n", "q^3   864299970\n"} {
		assert.Contains(t, output, want)
	}
	assert.Equal(t, 21, strings.Count(output, "\n"))

	jsonOut = true
	output, err = captureOutput(t, runCoef)
	require.NoError(t, err)
	var entries []coefEntry
	decodeJSON(t, output, &entries)
	require.Len(t, entries, 21)
	assert.Equal(t, coefEntry{Power: 4, Value: "20245856256"}, entries[5])
}

func TestParseTau(t *testing.T) {
	tau, err := parseTau("-0.5, 2")
	require.NoError(t, err)
	assert.Equal(t, -0.5, tau.Re.Float64())
	assert.Equal(t, 2.0, tau.Im.Float64())

	for _, bad := range []string{"1", "x,1", "0,y", "0,0", "0,-1"} {
		_, err := parseTau(bad)
		assert.Error(t, err, bad)
	}
}

func TestEvalCommand(t *testing.T) {
	useTestConfig(t)
	evalTau, evalDigits = "0,1", 10
	t.Cleanup(func() { evalTau, evalDigits = "0,1", 40 })

	jsonOut = true
	output, err := captureOutput(t, runEval)
	require.NoError(t, err)

	var res evalResult
	decodeJSON(t, output, &res)
	assert.Equal(t, "1728", res.J[0])
	assert.Equal(t, [2]string{"0", "1"}, res.Tau)

	evalTau = "0,-1"
	_, err = captureOutput(t, runEval)
	require.Error(t, err)
}

func TestTableAndInspect(t *testing.T) {
	c := useTestConfig(t)
	path := filepath.Join(t.TempDir(), "j.bin")
	tableOut, tableSize, tableHeight = path, 0, 0
	t.Cleanup(func() { tableOut = "" })

	output, err := captureOutput(t, func() error { return runTable(context.Background()) })
	require.NoError(t, err)
	assert.Contains(t, output, "wrote 9 records")

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.EqualValues(t, 9*format.RecordSize, info.Size())

	inspectDump, inspectDigits = 2, 12
	t.Cleanup(func() { inspectDump, inspectDigits = 0, 20 })
	jsonOut = true
	output, err = captureOutput(t, func() error { return runInspect([]string{path}) })
	require.NoError(t, err)

	var res inspectResult
	decodeJSON(t, output, &res)
	assert.Equal(t, 9, res.Records)
	assert.EqualValues(t, c.Grid.Size, res.Columns)
	assert.EqualValues(t, c.Grid.Size, res.Rows)
	require.Len(t, res.Dump, 2)

	// Row 0 starts at e^(2 pi i/3) where j vanishes.
	assert.Equal(t, "E-000000001 -5.00000000000", res.Dump[0].Start[0])
	assert.True(t, strings.HasPrefix(res.Dump[0].JT[0], "E-0000000"), "j(rho) is tiny: %s", res.Dump[0].JT[0])
}

func TestTableCommand_Cancelled(t *testing.T) {
	useTestConfig(t)
	path := filepath.Join(t.TempDir(), "j.bin")
	tableOut = path
	t.Cleanup(func() { tableOut = "" })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	output, err := captureOutput(t, func() error { return runTable(ctx) })
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, output, "interrupted after 0 records")
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist, "partial plot file is removed")
}

func TestInspectCommand_PartialFile(t *testing.T) {
	useTestConfig(t)
	path := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, format.RecordSize+5), 0o644))

	_, err := captureOutput(t, func() error { return runInspect([]string{path}) })
	require.ErrorIs(t, err, format.ErrPartialRecord)
}

func TestConstsCommand(t *testing.T) {
	useTestConfig(t)
	constsDigits = 30
	t.Cleanup(func() { constsDigits = 70 })

	output, err := captureOutput(t, runConsts)
	require.NoError(t, err)
	assert.Contains(t, output, "pi     3.14159265358979323846264338328")
	assert.Contains(t, output, "ln2    0.693147180559945309417232121458")
	assert.Contains(t, output, "e      2.71828182845904523536028747135")
	assert.Contains(t, output, "sqrt2  1.41421356237309504880168872421")
}

func TestStatsCommand(t *testing.T) {
	useTestConfig(t)

	jsonOut = true
	output, err := captureOutput(t, runStats)
	require.NoError(t, err)
	var res statsResult
	decodeJSON(t, output, &res)
	assert.Equal(t, cfg.Arena.Capacity, res.Capacity)
	assert.Equal(t, 40, res.SlotBytes)
	assert.Positive(t, res.Arena.LiveBlocks)
	assert.Positive(t, res.Arena.Frees, "chebyshev table is released")

	jsonOut = false
	statsMetrics = true
	t.Cleanup(func() { statsMetrics = false })
	output, err = captureOutput(t, runStats)
	require.NoError(t, err)
	assert.Contains(t, output, "# TYPE jplot_arena_allocs_total counter")
	assert.Contains(t, output, `jplot_arena_slots{state="live"}`)
}

func TestRootCommand_ConfigFlag(t *testing.T) {
	useTestConfig(t)
	path := filepath.Join(t.TempDir(), "jplot.toml")
	require.NoError(t, os.WriteFile(path, []byte("[series]\nterms = 7\n"), 0o644))
	configPath = path
	t.Cleanup(func() { configPath = "" })

	require.NoError(t, setup(rootCmd, nil))
	assert.Equal(t, 7, cfg.Series.Terms)

	logLevel = "loud"
	t.Cleanup(func() { logLevel = "" })
	require.Error(t, setup(rootCmd, nil))
}
