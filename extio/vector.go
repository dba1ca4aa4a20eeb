package extio

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// Vector is a fixed-width-record, disk-backed vector: sequential
// buffered writes during a build phase, then random-access reads (one
// unbuffered ReadAt per Get) once Freeze()'d. Unlike Sorter and PQ it has
// no ecosystem analog in the retrieval pack — the pack's badger-based
// structures are all key-ordered stores, not flat positional arrays — so
// it is built directly on bufio/os, the same pair the fixed-width binary
// edge-list writer in package edgeio uses.
type Vector[T any] struct {
	width  int
	encode func(T, []byte)
	decode func([]byte) T

	f      *os.File
	w      *bufio.Writer
	frozen bool
	len    int64
}

// NewVector creates a Vector backed by a fresh temp file, with width
// bytes per record and the given fixed-width codec functions.
func NewVector[T any](width int, encode func(T, []byte), decode func([]byte) T) (*Vector[T], error) {
	f, err := os.CreateTemp("", "pagraph-vec-*")
	if err != nil {
		return nil, errors.Wrap(err, "extio: creating vector backing file")
	}
	return &Vector[T]{
		width:  width,
		encode: encode,
		decode: decode,
		f:      f,
		w:      bufio.NewWriterSize(f, 1<<20),
	}, nil
}

// Append writes v as the next record. Not valid after Freeze.
func (v *Vector[T]) Append(val T) error {
	if v.frozen {
		return errors.New("extio: append after freeze")
	}
	buf := make([]byte, v.width)
	v.encode(val, buf)
	if _, err := v.w.Write(buf); err != nil {
		return errors.Wrap(err, "extio: appending to vector")
	}
	v.len++
	return nil
}

// Freeze flushes buffered writes and enables random-access Get.
func (v *Vector[T]) Freeze() error {
	if v.frozen {
		return nil
	}
	if err := v.w.Flush(); err != nil {
		return errors.Wrap(err, "extio: flushing vector")
	}
	v.frozen = true
	return nil
}

// Len returns the number of appended records.
func (v *Vector[T]) Len() int64 { return v.len }

// Get reads the record at position i. Freeze must have been called.
func (v *Vector[T]) Get(i int64) (T, error) {
	var zero T
	if !v.frozen {
		return zero, errors.New("extio: get before freeze")
	}
	if i < 0 || i >= v.len {
		return zero, errors.Errorf("extio: index %d out of range [0,%d)", i, v.len)
	}
	buf := make([]byte, v.width)
	if _, err := v.f.ReadAt(buf, i*int64(v.width)); err != nil {
		return zero, errors.Wrap(err, "extio: reading vector record")
	}
	return v.decode(buf), nil
}

// Close removes the backing file.
func (v *Vector[T]) Close() error {
	if v.f == nil {
		return nil
	}
	name := v.f.Name()
	err := v.f.Close()
	v.f = nil
	os.Remove(name)
	return err
}
