//go:build darwin

package mmfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// Sync flushes f to disk. With full set it issues F_FULLFSYNC so the drive
// cache is flushed as well.
func Sync(f *os.File, full bool) error {
	if full {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}
