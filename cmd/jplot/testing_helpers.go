package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/joshuapare/modfloat/internal/config"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// useTestConfig installs a small, fast configuration and resets the global
// flags for the duration of the test.
func useTestConfig(t *testing.T) *config.Config {
	t.Helper()

	prev := cfg
	c := config.Default()
	c.Series.Terms = 20
	c.Grid.Size = 3
	c.Grid.Height = 2
	c.Output.Sync = true
	cfg = c

	quiet, verbose, jsonOut = false, false, false
	t.Cleanup(func() {
		cfg = prev
		quiet, verbose, jsonOut = false, false, false
	})
	return c
}

// decodeJSON unmarshals captured output into v.
func decodeJSON(t *testing.T, output string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}
