package extio

import (
	"os"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/pkg/errors"

	"github.com/scalefreegen/pagraph/config"
)

// comparator adapts a Codec's byte order into a gods-style ascending
// comparator, matching the token.CompareAsc convention used elsewhere in
// this module so both the sequential (package tfp) and parallel (package
// ptfp) engines share one comparator idiom.
func comparator[T any](codec Codec[T]) func(a, b interface{}) int {
	width := codec.Width()
	return func(a, b interface{}) int {
		ka := codec.Encode(a.(T), make([]byte, 0, width))
		kb := codec.Encode(b.(T), make([]byte, 0, width))
		switch {
		case bytesLess(ka, kb):
			return -1
		case bytesLess(kb, ka):
			return 1
		default:
			return 0
		}
	}
}

// PQ is a bounded-RAM ascending priority queue (the process loop in
// package tfp pops in ascending token order; package ptfp's bulk variant
// is built on the same structure). The in-memory tier is an
// emirpasic/gods binary heap; anything that would push the heap over
// budget spills to an embedded badger instance instead, exactly as
// extio.Sorter spills — see lib2x3/sets.go for the sibling pattern of an
// embedded badger instance backing an otherwise in-memory structure.
//
// PQ additionally implements the bulk-push epoch contract the parallel
// engine needs (original_source/main_pba.cpp's bulk_push_begin / push /
// push_end): pushes made between BeginBulkPush and EndBulkPush are
// staged in a separately-locked buffer and are not visible to Pop until
// EndBulkPush drains them, so concurrent producer goroutines can call
// BulkPush without contending on the heap lock.
type PQ[T any] struct {
	codec  Codec[T]
	cmp    func(a, b interface{}) int
	budget uint64

	mu       sync.Mutex
	heap     *binaryheap.Heap
	heapUsed uint64

	db      *badger.DB
	dir     *string
	seq     uint64
	spilled uint64 // count of elements currently resident in db

	stageMu sync.Mutex
	staging []T
}

// NewPQ returns an empty PQ bounded by budget bytes of in-memory element
// storage.
func NewPQ[T any](codec Codec[T], budget config.Memory) *PQ[T] {
	cmp := comparator(codec)
	return &PQ[T]{
		codec:  codec,
		cmp:    cmp,
		budget: uint64(budget),
		heap:   binaryheap.NewWith(cmp),
	}
}

func (q *PQ[T]) openDB() error {
	if q.db != nil {
		return nil
	}
	dir, err := os.MkdirTemp("", "pagraph-pq-*")
	if err != nil {
		return errors.Wrap(err, "extio: allocating pq spill directory")
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.MetricsEnabled = false
	opts.DetectConflicts = false
	db, err := badger.Open(opts)
	if err != nil {
		os.RemoveAll(dir)
		return errors.Wrap(err, "extio: opening pq spill store")
	}
	q.dir = &dir
	q.db = db
	return nil
}

// Push adds a single value. Callers outside a bulk-push epoch use this;
// it takes the main lock directly.
func (q *PQ[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pushLocked(v)
}

func (q *PQ[T]) pushLocked(v T) error {
	elemSize := uint64(q.codec.ElemSize())
	if q.budget == 0 || q.heapUsed+elemSize <= q.budget {
		q.heap.Push(v)
		q.heapUsed += elemSize
		return nil
	}
	if err := q.openDB(); err != nil {
		return err
	}
	width := q.codec.Width()
	key := q.codec.Encode(v, make([]byte, 0, width+8))
	key = appendSeq(key, q.seq)
	q.seq++
	err := q.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, nil)
	})
	if err != nil {
		return errors.Wrap(err, "extio: spilling pq push")
	}
	q.spilled++
	return nil
}

// Len reports the total number of resident elements, heap plus spilled.
func (q *PQ[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.heap.Size() + int(q.spilled)
}

// Empty reports whether the queue has no elements.
func (q *PQ[T]) Empty() bool { return q.Len() == 0 }

// peekSpilledLocked returns the smallest key currently spilled to
// badger, if any. Caller holds q.mu.
func (q *PQ[T]) peekSpilledLocked() (T, []byte, bool) {
	var zero T
	if q.db == nil || q.spilled == 0 {
		return zero, nil, false
	}
	var key []byte
	var val T
	_ = q.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
		defer it.Close()
		it.Rewind()
		if !it.Valid() {
			return nil
		}
		key = it.Item().KeyCopy(nil)
		val = q.codec.Decode(key[:q.codec.Width()])
		return nil
	})
	if key == nil {
		return zero, nil, false
	}
	return val, key, true
}

// Pop removes and returns the smallest element. ok is false if the
// queue was empty.
func (q *PQ[T]) Pop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.popLocked()
}

func (q *PQ[T]) popLocked() (v T, ok bool) {
	heapTop, heapHasTop := q.heap.Peek()
	spillVal, spillKey, spillHasTop := q.peekSpilledLocked()

	switch {
	case !heapHasTop && !spillHasTop:
		return v, false
	case heapHasTop && !spillHasTop:
		popped, _ := q.heap.Pop()
		t := popped.(T)
		q.heapUsed -= uint64(q.codec.ElemSize())
		return t, true
	case !heapHasTop && spillHasTop:
		q.deleteSpilled(spillKey)
		return spillVal, true
	default:
		if q.cmp(heapTop, spillVal) <= 0 {
			popped, _ := q.heap.Pop()
			t := popped.(T)
			q.heapUsed -= uint64(q.codec.ElemSize())
			return t, true
		}
		q.deleteSpilled(spillKey)
		return spillVal, true
	}
}

// Peek returns the smallest element without removing it. ok is false if
// the queue is empty. Package tfp's process loop uses this to compare
// against a merged input stream's front element before deciding which
// side to pop from.
func (q *PQ[T]) Peek() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	heapTop, heapHasTop := q.heap.Peek()
	spillVal, _, spillHasTop := q.peekSpilledLocked()
	switch {
	case !heapHasTop && !spillHasTop:
		return v, false
	case heapHasTop && !spillHasTop:
		return heapTop.(T), true
	case !heapHasTop && spillHasTop:
		return spillVal, true
	default:
		if q.cmp(heapTop, spillVal) <= 0 {
			return heapTop.(T), true
		}
		return spillVal, true
	}
}

func (q *PQ[T]) deleteSpilled(key []byte) {
	_ = q.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	q.spilled--
}

// BeginBulkPush opens a push epoch. Pushes made via BulkPush before the
// matching EndBulkPush are invisible to Pop/Len until EndBulkPush
// returns, mirroring main_pba.cpp's bulk_push_begin/push_end window.
func (q *PQ[T]) BeginBulkPush() {
	q.stageMu.Lock()
	q.staging = q.staging[:0]
	q.stageMu.Unlock()
}

// BulkPush stages v for visibility at the next EndBulkPush. Safe to call
// concurrently from multiple goroutines during one epoch.
func (q *PQ[T]) BulkPush(v T) {
	q.stageMu.Lock()
	q.staging = append(q.staging, v)
	q.stageMu.Unlock()
}

// EndBulkPush drains every value staged since BeginBulkPush into the
// queue proper, making them visible to Pop.
func (q *PQ[T]) EndBulkPush() error {
	q.stageMu.Lock()
	batch := q.staging
	q.staging = nil
	q.stageMu.Unlock()

	q.mu.Lock()
	defer q.mu.Unlock()
	for _, v := range batch {
		if err := q.pushLocked(v); err != nil {
			return err
		}
	}
	return nil
}

// BulkPop drains up to n elements in ascending order, appending them to
// dst, and returns the extended slice. It is the mirror of main_pba.cpp's
// bulk_pop, used by package ptfp to pull a work batch for a strip.
func (q *PQ[T]) BulkPop(dst []T, n int) []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := 0; i < n; i++ {
		v, ok := q.popLocked()
		if !ok {
			break
		}
		dst = append(dst, v)
	}
	return dst
}

// Close releases the spill store, if one was opened.
func (q *PQ[T]) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.db == nil {
		return nil
	}
	err := q.db.Close()
	q.db = nil
	if q.dir != nil {
		os.RemoveAll(*q.dir)
		q.dir = nil
	}
	return err
}
