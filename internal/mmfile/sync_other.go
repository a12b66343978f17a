//go:build !linux && !freebsd && !darwin

package mmfile

import "os"

// Sync flushes f to stable storage.
func Sync(f *os.File, _ bool) error {
	return f.Sync()
}
