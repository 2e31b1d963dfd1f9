// Package generate wires the dataset generator to the filesystem: it runs
// every generation stage in order and writes the JSON artifacts downstream
// loaders consume.
package generate

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	datagen "github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system"
	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/fake"
)

// Main holds the options for generating a dataset and writing it to disk.
type Main struct {
	Seed         int64  `help:"Random seed. -1 will use current nanosecond."`
	Users        int    `help:"Number of user profiles to generate."`
	Products     int    `help:"Number of catalog products to generate."`
	Categories   int    `help:"Number of categories to generate (clamped to the built-in taxonomy)."`
	Transactions int    `help:"Number of transaction attempts. The realized count can be lower when stock runs out."`
	Sessions     int    `help:"Number of browsing sessions to generate."`
	TimespanDays int    `help:"Length in days of the simulated activity window."`
	ChunkSize    int    `help:"Records per session chunk file."`
	Dir          string `help:"Directory to write dataset files into."`
	RefTime      string `help:"RFC3339 reference time for generated timestamps. Empty uses the current time."`
}

// NewMain returns a new Main with the default full-size configuration.
func NewMain() *Main {
	cfg := fake.DefaultConfig()
	return &Main{
		Seed:         42,
		Users:        cfg.Users,
		Products:     cfg.Products,
		Categories:   cfg.Categories,
		Transactions: cfg.Transactions,
		Sessions:     cfg.Sessions,
		TimespanDays: cfg.TimespanDays,
		ChunkSize:    cfg.ChunkSize,
		Dir:          filepath.Join("data", "raw"),
	}
}

// Config returns the generator configuration described by the options.
func (m *Main) Config() fake.Config {
	return fake.Config{
		Users:        m.Users,
		Products:     m.Products,
		Categories:   m.Categories,
		Transactions: m.Transactions,
		Sessions:     m.Sessions,
		TimespanDays: m.TimespanDays,
		ChunkSize:    m.ChunkSize,
	}
}

// Run generates the dataset and writes every artifact. The only fatal
// failure mode is I/O: generation itself always succeeds.
func (m *Main) Run() error {
	seed := m.Seed
	if seed == -1 {
		seed = time.Now().UnixNano()
	}
	var opts []fake.Option
	if m.RefTime != "" {
		ref, err := time.Parse(time.RFC3339, m.RefTime)
		if err != nil {
			return errors.Wrap(err, "parsing ref time")
		}
		opts = append(opts, fake.OptNow(ref))
	}
	cfg := m.Config()

	log.Printf("generating dataset: seed=%d users=%d products=%d categories=%d transactions=%d sessions=%d",
		seed, cfg.Users, cfg.Products, cfg.Categories, cfg.Transactions, cfg.Sessions)
	gn := fake.NewGenerator(seed, cfg, opts...)
	ds := gn.Generate()
	if ds.SkippedTransactions > 0 {
		log.Printf("skipped %d transaction attempts for lack of usable products", ds.SkippedTransactions)
	}

	if err := os.MkdirAll(m.Dir, 0755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	if err := m.writeDataset(ds); err != nil {
		return err
	}

	summary := fake.BuildSummary(ds, cfg, time.Now())
	if err := datagen.WriteJSON(filepath.Join(m.Dir, "dataset_summary.json"), summary); err != nil {
		return errors.Wrap(err, "writing summary")
	}
	log.Printf("dataset complete: %d records, total revenue %.2f, avg transaction %.2f, conversion rate %.2f%%",
		summary.DataVolumes.TotalRecords,
		summary.BusinessMetrics.TotalRevenue,
		summary.BusinessMetrics.AverageTransactionValue,
		summary.BusinessMetrics.ConversionRate)
	return nil
}

func (m *Main) writeDataset(ds *fake.Dataset) error {
	collections := []struct {
		file string
		data interface{}
		n    int
	}{
		{"categories.json", ds.Categories, len(ds.Categories)},
		{"products.json", ds.Products, len(ds.Products)},
		{"users.json", ds.Users, len(ds.Users)},
		{"transactions.json", ds.Transactions, len(ds.Transactions)},
	}
	for _, c := range collections {
		if err := datagen.WriteJSON(filepath.Join(m.Dir, c.file), c.data); err != nil {
			return errors.Wrapf(err, "writing %s", c.file)
		}
		log.Printf("wrote %d records to %s", c.n, c.file)
	}

	recs := make([]interface{}, len(ds.Sessions))
	for i, s := range ds.Sessions {
		recs[i] = s
	}
	written, err := datagen.WriteChunks(m.Dir, "sessions", datagen.NewSliceSource(recs), m.ChunkSize)
	if err != nil {
		return errors.Wrap(err, "writing session chunks")
	}
	log.Printf("wrote %d sessions in chunks of %d", written, m.ChunkSize)
	return nil
}
