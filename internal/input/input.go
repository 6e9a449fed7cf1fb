// Package input loads the buffers handed to the csvn scanner.
//
// Plain files are memory-mapped where the platform allows it so the scanner
// reads the page cache directly. Files ending in ".lz4" are decompressed into
// memory first.
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// LZ4Ext is the file suffix that selects lz4 decompression.
const LZ4Ext = ".lz4"

// Load returns the contents of filename and a cleanup function that must be
// called once the data (and any token spans into it) is no longer used.
//
//	data, cleanup, err := input.Load("large.csv")
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
func Load(filename string) ([]byte, func(), error) {
	if strings.HasSuffix(filename, LZ4Ext) {
		data, err := readLZ4(filename)
		if err != nil {
			return nil, nil, err
		}
		return data, func() {}, nil
	}
	return MmapFile(filename)
}

// readLZ4 decompresses an lz4 frame file into memory.
func readLZ4(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decompress(f)
}

// Decompress reads a whole lz4 frame stream from r.
func Decompress(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, lz4.NewReader(r)); err != nil {
		return nil, fmt.Errorf("failed to decompress lz4: %w", err)
	}
	return buf.Bytes(), nil
}

// Compress writes data to w as a single lz4 frame with 64KB blocks.
func Compress(w io.Writer, data []byte) error {
	lw := lz4.NewWriter(w)
	if err := lw.Apply(lz4.BlockSizeOption(lz4.Block64Kb)); err != nil {
		return fmt.Errorf("failed to configure lz4 writer: %w", err)
	}
	if _, err := lw.Write(data); err != nil {
		return fmt.Errorf("failed to compress: %w", err)
	}
	if err := lw.Close(); err != nil {
		return fmt.Errorf("failed to flush lz4 frame: %w", err)
	}
	return nil
}
