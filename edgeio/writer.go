package edgeio

import (
	"bufio"
	"encoding/binary"
	"os"

	"github.com/pkg/errors"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/stream"
)

// ErrNodeOverflow is returned when a vertex id does not fit the
// configured on-disk node width.
var ErrNodeOverflow = errors.New("edgeio: vertex id exceeds configured node width")

// Writer materializes an Edge stream into the binary edge-list file spec
// §6.1 describes: no header, little-endian unsigned integers, a fixed
// width per node selected by config.NodeWidth. Grounded on
// EdgeWriter.hpp, minus its STXXL-vector preallocation (Go's bufio.Writer
// over a plain os.File plays the same "buffered sequential append" role).
type Writer struct {
	f     *os.File
	w     *bufio.Writer
	width config.NodeWidth

	edgesWritten uint64
}

// NewWriter creates (truncating) the file at path and returns a Writer
// that encodes vertex ids at width bytes each.
func NewWriter(path string, width config.NodeWidth) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "edgeio: creating %s", path)
	}
	return &Writer{f: f, w: bufio.NewWriter(f), width: width}, nil
}

func (w *Writer) writeNode(v uint64) error {
	if w.width < 8 && v>>(8*uint(w.width)) != 0 {
		return errors.Wrapf(ErrNodeOverflow, "id=%d width=%d", v, w.width)
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.w.Write(buf[:w.width])
	return err
}

// WriteEdge appends one edge as two little-endian node ids.
func (w *Writer) WriteEdge(from, to uint64) error {
	if err := w.writeNode(from); err != nil {
		return err
	}
	if err := w.writeNode(to); err != nil {
		return err
	}
	w.edgesWritten++
	return nil
}

// WriteAll drains in, writing every edge it yields.
func (w *Writer) WriteAll(in stream.Stream[Edge]) error {
	for !in.Empty() {
		e := in.Peek()
		if err := w.WriteEdge(e.From, e.To); err != nil {
			return err
		}
		if err := in.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// EdgesWritten reports the number of edges written so far, mirroring
// EdgeWriter.hpp's edgesWritten().
func (w *Writer) EdgesWritten() uint64 { return w.edgesWritten }

// Close flushes buffered output and closes the underlying file. Only
// after Close returns is the file guaranteed complete, matching
// EdgeWriter.hpp's destructor contract.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		return errors.Wrap(err, "edgeio: flushing writer")
	}
	return w.f.Close()
}
