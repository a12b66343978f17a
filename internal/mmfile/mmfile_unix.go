//go:build unix

package mmfile

import (
	"fmt"
	"math"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// Map maps a plot file read-only. The release function unmaps it and is
// safe to call more than once; data must not be touched afterwards.
func Map(path string) ([]byte, func() error, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	defer unix.Close(fd)

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, nil, &os.PathError{Op: "fstat", Path: path, Err: err}
	}
	if st.Size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if uint64(st.Size) > math.MaxInt {
		return nil, nil, fmt.Errorf("mmfile: %s is %d bytes, too large to map", path, st.Size)
	}

	data, err := unix.Mmap(fd, 0, int(st.Size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, &os.PathError{Op: "mmap", Path: path, Err: err}
	}
	var (
		once    sync.Once
		release error
	)
	return data, func() error {
		once.Do(func() { release = unix.Munmap(data) })
		return release
	}, nil
}
