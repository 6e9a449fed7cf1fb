//go:build !unix

package input

import (
	"fmt"
	"os"
)

// MmapFile reads a file into memory on platforms without mmap support.
// The cleanup function is a no-op kept for API compatibility.
func MmapFile(filename string) ([]byte, func(), error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, func() {}, nil
}
