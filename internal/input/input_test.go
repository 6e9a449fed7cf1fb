package input

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shapestone/shape-csvn/pkg/csvn"
)

func TestMmapFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.csv")

	content := []byte("a,b,c\nd,e,f\ng,h,i")
	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	data, cleanup, err := MmapFile(testFile)
	if err != nil {
		t.Fatalf("MmapFile() error = %v", err)
	}
	defer cleanup()

	if string(data) != string(content) {
		t.Errorf("MmapFile() data = %q, want %q", string(data), string(content))
	}

	// Spans into the mapping resolve to the same bytes as the file.
	tokens, err := csvn.Tokenize(data, csvn.DefaultOptions())
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	defer csvn.Release(tokens)

	want := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if got := string(tok.Bytes(data)); got != want[i] {
			t.Errorf("token %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestMmapFile_EmptyFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(testFile, []byte{}, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	data, cleanup, err := MmapFile(testFile)
	if err != nil {
		t.Fatalf("MmapFile() error = %v", err)
	}
	defer cleanup()

	if len(data) != 0 {
		t.Errorf("MmapFile() returned %d bytes for empty file, want 0", len(data))
	}
}

func TestMmapFile_NonexistentFile(t *testing.T) {
	if _, _, err := MmapFile("/nonexistent/file.csv"); err == nil {
		t.Error("MmapFile() expected error for nonexistent file, got nil")
	}
}

func TestCompressRoundTrip(t *testing.T) {
	content := bytes.Repeat([]byte("\"quoted, field\",plain,,x\n"), 500)

	var buf bytes.Buffer
	if err := Compress(&buf, content); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if buf.Len() >= len(content) {
		t.Errorf("compressed size %d not smaller than input %d", buf.Len(), len(content))
	}

	got, err := Decompress(&buf)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatal("Decompress() output differs from input")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("x,\"y\"\nz")

	plain := filepath.Join(tmpDir, "data.csv")
	if err := os.WriteFile(plain, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	var compressed bytes.Buffer
	if err := Compress(&compressed, content); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	packed := filepath.Join(tmpDir, "data.csv"+LZ4Ext)
	if err := os.WriteFile(packed, compressed.Bytes(), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	for _, name := range []string{plain, packed} {
		t.Run(filepath.Base(name), func(t *testing.T) {
			data, cleanup, err := Load(name)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			defer cleanup()

			if !bytes.Equal(data, content) {
				t.Errorf("Load() = %q, want %q", data, content)
			}
			n, err := csvn.Count(data, csvn.DefaultOptions())
			if err != nil {
				t.Fatalf("Count() error = %v", err)
			}
			if n != 3 {
				t.Errorf("Count() = %d, want 3", n)
			}
		})
	}
}

func TestLoad_CorruptLZ4(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bad.csv"+LZ4Ext)
	if err := os.WriteFile(name, []byte("not an lz4 frame"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	if _, _, err := Load(name); err == nil {
		t.Error("Load() expected error for corrupt lz4 input, got nil")
	}
}
