// Package fake generates a synthetic e-commerce dataset: a category taxonomy,
// a product catalog with price histories, user profiles, and simulated
// transaction and session activity over them. Generation is sequential and
// single threaded; every random draw comes from one seeded source, so the same
// seed, configuration and reference time reproduce the same dataset byte for
// byte.
package fake

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/fake/gen"
)

// Config holds the knobs for one dataset run. It is embedded verbatim in the
// summary file as the configuration snapshot.
type Config struct {
	Users        int `json:"users"`
	Products     int `json:"products"`
	Categories   int `json:"categories"`
	Transactions int `json:"transactions"`
	Sessions     int `json:"sessions"`
	TimespanDays int `json:"timespan_days"`
	ChunkSize    int `json:"chunk_size"`
}

// DefaultConfig returns the scale used for a full-size dataset.
func DefaultConfig() Config {
	return Config{
		Users:        10000,
		Products:     5000,
		Categories:   25,
		Transactions: 50000,
		Sessions:     200000,
		TimespanDays: 90,
		ChunkSize:    10000,
	}
}

// Dataset holds one generated dataset. Transactions mutate product stock and
// user aggregates in place while they are generated; after Generate returns,
// the collections are value data and are never mutated again.
type Dataset struct {
	Categories   []*Category
	Products     []*Product
	Users        []*User
	Transactions []*Transaction
	Sessions     []*Session

	// SkippedTransactions counts attempts dropped because fewer usable
	// products remained than the drawn basket size. The realized
	// transaction count is Config.Transactions minus this.
	SkippedTransactions int
}

// Generator builds Datasets from a seeded random source.
type Generator struct {
	cfg Config
	g   *gen.Generator
	now time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// OptNow pins the reference time all generated timestamps derive from.
// Without it the wall clock is used, which makes otherwise identical runs
// differ in their timestamps.
func OptNow(now time.Time) Option {
	return func(gn *Generator) {
		gn.now = now
	}
}

// NewGenerator creates a Generator with the given random seed. Using the same
// seed should give the same dataset on a given version of Go.
func NewGenerator(seed int64, cfg Config, opts ...Option) *Generator {
	gn := &Generator{
		cfg: cfg,
		g:   gen.NewGenerator(seed),
		now: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(gn)
	}
	return gn
}

// Generate runs every stage in order and returns the finished dataset:
// categories, then products, then users, then the transaction and session
// simulations over them. Stage order is load bearing; it fixes the sequence
// of random draws.
func (gn *Generator) Generate() *Dataset {
	ds := gn.catalog()
	gn.genTransactions(ds, gn.cfg.Transactions)
	gn.genSessions(ds, gn.cfg.Sessions)
	return ds
}

// catalog generates the three static collections behavioral simulation draws
// from.
func (gn *Generator) catalog() *Dataset {
	ds := &Dataset{}
	ds.Categories = gn.genCategories(gn.cfg.Categories)
	ds.Products = gn.genProducts(ds, gn.cfg.Products)
	ds.Users = gn.genUsers(ds, gn.cfg.Users)
	return ds
}

// spanStart is the beginning of the simulated activity window.
func (gn *Generator) spanStart() time.Time {
	return gn.now.AddDate(0, 0, -gn.cfg.TimespanDays)
}

// newID returns prefix plus n hex characters derived from the run's random
// source, so ids are unique-looking but reproducible for a given seed.
func (gn *Generator) newID(prefix string, n int) string {
	u, _ := uuid.NewRandomFromReader(gn.g.Rand())
	return fmt.Sprintf("%s%x", prefix, u[:])[:len(prefix)+n]
}

func (gn *Generator) timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
