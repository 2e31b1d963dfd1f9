package datagen

import (
	"io"
	"sync/atomic"
)

// Source is the interface for getting generated records one at a time.
// Record returns io.EOF once the source is exhausted. Implementations of
// Source should be thread safe.
type Source interface {
	Record() (interface{}, error)
}

// SliceSource is a Source backed by an in-memory slice of records.
type SliceSource struct {
	i    *uint64
	recs []interface{}
}

// NewSliceSource returns a SliceSource which yields each record in recs in
// order.
func NewSliceSource(recs []interface{}) *SliceSource {
	var i uint64
	return &SliceSource{
		i:    &i,
		recs: recs,
	}
}

// Record implements Source.
func (s *SliceSource) Record() (interface{}, error) {
	next := atomic.AddUint64(s.i, 1)
	if next > uint64(len(s.recs)) {
		return nil, io.EOF
	}
	return s.recs[next-1], nil
}

// Nexter is a threadsafe monotonic unique id generator.
type Nexter struct {
	id *uint64
}

// NewNexter creates a new id generator starting at 0.
func NewNexter() *Nexter {
	var id uint64
	return &Nexter{
		id: &id,
	}
}

// Next generates a new id and returns it.
func (n *Nexter) Next() (nextID uint64) {
	nextID = atomic.AddUint64(n.id, 1)
	return nextID - 1
}

// Last returns the most recently generated id.
func (n *Nexter) Last() (lastID uint64) {
	lastID = atomic.LoadUint64(n.id) - 1
	return
}
