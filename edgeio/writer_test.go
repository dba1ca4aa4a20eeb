package edgeio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/stream"
)

func TestWriterWritesLittleEndianFixedWidth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	w, err := NewWriter(path, config.Width32)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.WriteEdge(1, 0x01020304); err != nil {
		t.Fatalf("WriteEdge: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := w.EdgesWritten(); got != 1 {
		t.Fatalf("EdgesWritten = %d, want 1", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != 8 {
		t.Fatalf("file length = %d, want 8", len(data))
	}
	from := binary.LittleEndian.Uint32(data[0:4])
	to := binary.LittleEndian.Uint32(data[4:8])
	if from != 1 || to != 0x01020304 {
		t.Fatalf("got (%d,%d), want (1, %d)", from, to, uint32(0x01020304))
	}
}

func TestWriterRejectsOverflowingID(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(filepath.Join(dir, "out.bin"), config.Width32)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	defer w.Close()

	if err := w.WriteEdge(1, 1<<33); err == nil {
		t.Fatalf("expected ErrNodeOverflow for an id past the 32-bit width")
	}
}

func TestWriterWriteAllFromStream(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")

	w, err := NewWriter(path, config.Width64)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	edges := stream.NewSlice([]Edge{{From: 1, To: 2}, {From: 3, To: 4}})
	if err := w.WriteAll(edges); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := w.EdgesWritten(); got != 2 {
		t.Fatalf("EdgesWritten = %d, want 2", got)
	}
}
