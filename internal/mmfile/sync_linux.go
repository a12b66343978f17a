//go:build linux || freebsd

package mmfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// Sync flushes the data of f to stable storage. full is ignored; fdatasync
// already waits for the device.
func Sync(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}
