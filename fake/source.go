package fake

import (
	"io"
	"math"

	datagen "github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system"
)

// SessionSource is a datagen.Source which generates session records on
// demand. It builds the catalog (categories, products, users) up front from
// the given seed and config, then produces one session per Record call until
// max records have been returned. Using the same seed should give the same
// series of sessions on a given version of Go.
type SessionSource struct {
	max uint64
	n   *datagen.Nexter
	gn  *Generator
	ds  *Dataset
}

// NewSessionSource creates a SessionSource. A max of 0 means effectively
// unlimited.
func NewSessionSource(seed int64, max uint64, cfg Config, opts ...Option) *SessionSource {
	if max == 0 {
		max = math.MaxUint64
	}
	gn := NewGenerator(seed, cfg, opts...)
	return &SessionSource{
		max: max,
		n:   datagen.NewNexter(),
		gn:  gn,
		ds:  gn.catalog(),
	}
}

// Record implements datagen.Source and returns the next *Session, or io.EOF
// once max sessions have been produced.
func (s *SessionSource) Record() (interface{}, error) {
	if s.n.Next() >= s.max {
		return nil, io.EOF
	}
	return s.gn.genSession(s.ds), nil
}
