// Package writer exposes atomic sinks for plot files.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuapare/modfloat/internal/mmfile"
)

// FileWriter writes a plot file to a filesystem path atomically: data goes
// to a temp file in the same directory which replaces Path only on Commit.
type FileWriter struct {
	Path     string
	Sync     bool // flush to stable storage before the rename
	FullSync bool // request a drive cache flush where the platform has one

	tmp *os.File
}

// Open creates the temp file. It must be followed by Commit or Abort.
func (w *FileWriter) Open() error {
	if w.tmp != nil {
		return fmt.Errorf("writer: %s already open", w.Path)
	}
	tmp, err := os.CreateTemp(filepath.Dir(w.Path), ".jplot-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	w.tmp = tmp
	return nil
}

// Write appends p to the temp file.
func (w *FileWriter) Write(p []byte) (int, error) {
	if w.tmp == nil {
		return 0, fmt.Errorf("writer: %s not open", w.Path)
	}
	return w.tmp.Write(p)
}

// Commit syncs if requested, closes, and renames the temp file over Path.
func (w *FileWriter) Commit() error {
	if w.tmp == nil {
		return fmt.Errorf("writer: %s not open", w.Path)
	}
	tmp := w.tmp
	w.tmp = nil
	tmpPath := tmp.Name()

	if w.Sync {
		if err := mmfile.Sync(tmp, w.FullSync); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
			return fmt.Errorf("sync temp file: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Abort discards the temp file. It is a no-op when nothing is open, so it
// can be deferred unconditionally.
func (w *FileWriter) Abort() {
	if w.tmp == nil {
		return
	}
	_ = w.tmp.Close()
	_ = os.Remove(w.tmp.Name())
	w.tmp = nil
}
