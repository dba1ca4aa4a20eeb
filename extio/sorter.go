package extio

import (
	"os"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/scalefreegen/pagraph/config"
)

// Sorter is a bounded-RAM, stable, ascending external sort, grounded on
// lib2x3/catalog/catalog.go's embedded-badger technique: once the
// in-memory buffer would exceed its budget, it spills into a badger
// instance opened against a temp directory (not InMemory, unlike
// catalog.go's empty-path case, since the point here is to actually leave
// RAM) and leans on badger's key-ordered LSM iteration to do the merge.
//
// A Sorter is single-writer-then-single-reader: Push until done, call
// Sort once, then drain with Empty/Peek/Advance. This matches the
// merge-sort usage in package model and package edgeio, where an entire
// pass is produced before the next stage starts consuming it.
type Sorter[T any] struct {
	codec  Codec[T]
	budget uint64
	used   uint64
	seq    uint64

	buf    []T
	sorted bool

	dir *string
	db  *badger.DB
	txn *badger.Txn
	it  *badger.Iterator

	cur   T
	curOK bool
}

// NewSorter returns an empty Sorter bounded by budget bytes of in-memory
// element storage (per codec.ElemSize), falling back to a temp-directory
// badger instance beyond that.
func NewSorter[T any](codec Codec[T], budget config.Memory) *Sorter[T] {
	return &Sorter[T]{codec: codec, budget: uint64(budget)}
}

// Push appends v. Push after Sort returns ErrAlreadySorted.
func (s *Sorter[T]) Push(v T) error {
	if s.sorted {
		return ErrAlreadySorted
	}
	s.buf = append(s.buf, v)
	s.used += uint64(s.codec.ElemSize())
	if s.budget > 0 && s.used > s.budget {
		return s.spill()
	}
	return nil
}

func (s *Sorter[T]) openDB() error {
	if s.db != nil {
		return nil
	}
	dir, err := os.MkdirTemp("", "pagraph-sort-*")
	if err != nil {
		return errors.Wrap(err, "extio: allocating spill directory")
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.MetricsEnabled = false
	opts.DetectConflicts = false
	db, err := badger.Open(opts)
	if err != nil {
		os.RemoveAll(dir)
		return errors.Wrap(err, "extio: opening spill store")
	}
	s.dir = &dir
	s.db = db
	return nil
}

// spill flushes the current in-memory buffer into badger. A trailing
// 8-byte sequence number is appended to every key so that the many
// equal-valued tokens produced by a wide fan-out (e.g. a highly
// preferentially-attached hub vertex) each get a distinct badger key
// while still sorting together, breaking ties by insertion order.
func (s *Sorter[T]) spill() error {
	if err := s.openDB(); err != nil {
		return err
	}
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	width := s.codec.Width()
	key := make([]byte, 0, width+8)
	for _, v := range s.buf {
		key = s.codec.Encode(v, key[:0])
		key = appendSeq(key, s.seq)
		s.seq++
		if err := wb.Set(append([]byte(nil), key...), nil); err != nil {
			return errors.Wrap(err, "extio: spilling sort buffer")
		}
	}
	if err := wb.Flush(); err != nil {
		return errors.Wrap(err, "extio: flushing spilled sort buffer")
	}
	s.buf = s.buf[:0]
	s.used = 0
	return nil
}

// Sort finalizes insertion and positions the cursor at the smallest
// element. After Sort, Push returns ErrAlreadySorted.
func (s *Sorter[T]) Sort() error {
	if s.sorted {
		return nil
	}
	s.sorted = true
	if s.db == nil {
		sort.SliceStable(s.buf, func(i, j int) bool {
			width := s.codec.Width()
			ki := s.codec.Encode(s.buf[i], make([]byte, 0, width))
			kj := s.codec.Encode(s.buf[j], make([]byte, 0, width))
			return bytesLess(ki, kj)
		})
		s.curOK = len(s.buf) > 0
		if s.curOK {
			s.cur = s.buf[0]
			s.buf = s.buf[1:]
		}
		return nil
	}
	if len(s.buf) > 0 {
		if err := s.spill(); err != nil {
			return err
		}
	}
	s.txn = s.db.NewTransaction(false)
	s.it = s.txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
	s.it.Rewind()
	return s.advanceFromIterator()
}

func (s *Sorter[T]) advanceFromIterator() error {
	if !s.it.Valid() {
		s.curOK = false
		return nil
	}
	key := s.it.Item().KeyCopy(nil)
	width := s.codec.Width()
	if len(key) < width {
		return errors.New("extio: corrupt spill key")
	}
	s.cur = s.codec.Decode(key[:width])
	s.curOK = true
	s.it.Next()
	return nil
}

// Empty reports whether every pushed element has been consumed. Sort
// must have been called.
func (s *Sorter[T]) Empty() bool { return !s.curOK }

// Peek returns the current smallest unconsumed element. Valid iff
// !Empty().
func (s *Sorter[T]) Peek() T { return s.cur }

// Advance discards the current element and exposes the next one.
func (s *Sorter[T]) Advance() error {
	if !s.curOK {
		return nil
	}
	if s.db == nil {
		s.curOK = len(s.buf) > 0
		if s.curOK {
			s.cur = s.buf[0]
			s.buf = s.buf[1:]
		}
		return nil
	}
	return s.advanceFromIterator()
}

// Close releases the spill store, if one was opened. Safe to call
// multiple times.
func (s *Sorter[T]) Close() error {
	if s.it != nil {
		s.it.Close()
		s.it = nil
	}
	if s.txn != nil {
		s.txn.Discard()
		s.txn = nil
	}
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		if s.dir != nil {
			os.RemoveAll(*s.dir)
			s.dir = nil
		}
		return err
	}
	return nil
}

func appendSeq(key []byte, seq uint64) []byte {
	var b [8]byte
	for i := 7; i >= 0; i-- {
		b[i] = byte(seq)
		seq >>= 8
	}
	return append(key, b[:]...)
}

func bytesLess(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
