//go:build unix

package input

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MmapFile memory-maps a file read-only.
// Returns the mapped byte slice and a cleanup function that unmaps the file.
//
// IMPORTANT: Do not use the data slice after calling cleanup().
func MmapFile(filename string) ([]byte, func(), error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	size := stat.Size()
	if size == 0 {
		return []byte{}, func() { _ = f.Close() }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("failed to mmap file: %w", err)
	}

	cleanup := func() {
		_ = unix.Munmap(data)
		_ = f.Close()
	}

	return data, cleanup, nil
}
