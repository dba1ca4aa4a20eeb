package extio

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"
)

// EdgeSet is an in-memory-backed, concurrency-safe set of edges, grounded
// directly on lib2x3/sets.go's lsmSet: an embedded, in-memory badger
// instance used purely as a concurrent-safe ordered key set, here keyed
// by the edge's two node ids instead of a canonical graph encoding.
//
// It backs SPEC_FULL.md §6's DedupAcrossShards: when a parallel writer
// pool's workers each emit into their own shard file, multi-edge
// filtering within one shard's sorted run (package edgeio) cannot see a
// duplicate another shard already wrote. EdgeSet gives every worker a
// shared, lock-free-to-the-caller view of what has been written so far.
type EdgeSet struct {
	db *badger.DB
}

// NewEdgeSet opens the backing in-memory store, exactly as
// lsmSet.autoOpen does.
func NewEdgeSet() *EdgeSet {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	opts.MetricsEnabled = false
	db, err := badger.Open(opts)
	if err != nil {
		panic(err)
	}
	return &EdgeSet{db: db}
}

func edgeKey(from, to uint64) []byte {
	var key [16]byte
	binary.BigEndian.PutUint64(key[0:8], from)
	binary.BigEndian.PutUint64(key[8:16], to)
	return key[:]
}

// TryAdd adds the (from, to) edge if it is not already present, returning
// true if it was newly added. Safe for concurrent use by writer-pool
// workers.
func (s *EdgeSet) TryAdd(from, to uint64) bool {
	key := edgeKey(from, to)
	added := false
	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch err {
		case nil:
			return nil
		case badger.ErrKeyNotFound:
			added = true
			return txn.Set(key, nil)
		default:
			return err
		}
	})
	if err != nil {
		panic(err)
	}
	return added
}

// Close discards the set.
func (s *EdgeSet) Close() {
	if s.db != nil {
		s.db.Close()
		s.db = nil
	}
}
