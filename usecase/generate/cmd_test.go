package generate_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/fake"
	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/fake/gen"
	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/usecase/generate"
)

const testRefTime = "2025-06-01T12:00:00Z"

func smallMain(dir string) *generate.Main {
	m := generate.NewMain()
	m.Seed = 42
	m.Categories = 2
	m.Products = 10
	m.Users = 5
	m.Transactions = 20
	m.Sessions = 50
	m.TimespanDays = 30
	m.Dir = dir
	m.RefTime = testRefTime
	return m
}

func readJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshaling %s: %v", path, err)
	}
}

func TestRunSmallDataset(t *testing.T) {
	dir := t.TempDir()
	if err := smallMain(dir).Run(); err != nil {
		t.Fatalf("running generation: %v", err)
	}

	var categories []*fake.Category
	readJSON(t, filepath.Join(dir, "categories.json"), &categories)
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	subcats := 0
	for _, cat := range categories {
		subcats += len(cat.Subcategories)
	}
	if subcats != 10 {
		t.Errorf("expected 10 subcategories across 2 categories, got %d", subcats)
	}

	var products []*fake.Product
	readJSON(t, filepath.Join(dir, "products.json"), &products)
	if len(products) != 10 {
		t.Fatalf("expected 10 products, got %d", len(products))
	}
	ids := make(map[string]struct{})
	for i, p := range products {
		if want := fmt.Sprintf("prod_%05d", i); p.ProductID != want {
			t.Errorf("product id exp: %s, got: %s", want, p.ProductID)
		}
		if _, ok := ids[p.ProductID]; ok {
			t.Errorf("duplicate product id %s", p.ProductID)
		}
		ids[p.ProductID] = struct{}{}
	}

	var users []*fake.User
	readJSON(t, filepath.Join(dir, "users.json"), &users)
	if len(users) != 5 {
		t.Fatalf("expected 5 users, got %d", len(users))
	}

	var transactions []*fake.Transaction
	readJSON(t, filepath.Join(dir, "transactions.json"), &transactions)
	if len(transactions) > 20 {
		t.Fatalf("expected at most 20 transactions, got %d", len(transactions))
	}

	var sessions []*fake.Session
	readJSON(t, filepath.Join(dir, "sessions_000.json"), &sessions)
	if len(sessions) != 50 {
		t.Fatalf("expected 50 sessions in one chunk, got %d", len(sessions))
	}

	var summary fake.Summary
	readJSON(t, filepath.Join(dir, "dataset_summary.json"), &summary)
	wantTotal := len(categories) + len(products) + len(users) + len(transactions) + len(sessions)
	if summary.DataVolumes.TotalRecords != wantTotal {
		t.Errorf("summary total records exp: %d, got: %d", wantTotal, summary.DataVolumes.TotalRecords)
	}
	wantConversion := gen.Round2(float64(len(transactions)) / 50 * 100)
	if summary.BusinessMetrics.ConversionRate != wantConversion {
		t.Errorf("conversion rate exp: %v, got: %v", wantConversion, summary.BusinessMetrics.ConversionRate)
	}
	if summary.GenerationMetadata.Configuration.Users != 5 {
		t.Errorf("configuration snapshot users exp: 5, got: %d", summary.GenerationMetadata.Configuration.Users)
	}
}

func TestRunDeterministicOutput(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	if err := smallMain(dirA).Run(); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := smallMain(dirB).Run(); err != nil {
		t.Fatalf("second run: %v", err)
	}

	// dataset_summary.json embeds the wall-clock generation timestamp, so
	// only the data artifacts are compared
	files := []string{"categories.json", "products.json", "users.json", "transactions.json", "sessions_000.json"}
	for _, name := range files {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between identically seeded runs", name)
		}
	}
}

func TestRunSessionChunking(t *testing.T) {
	dir := t.TempDir()
	m := smallMain(dir)
	m.Sessions = 25
	m.ChunkSize = 10
	if err := m.Run(); err != nil {
		t.Fatalf("running generation: %v", err)
	}

	for i, want := range []int{10, 10, 5} {
		var chunk []*fake.Session
		readJSON(t, filepath.Join(dir, fmt.Sprintf("sessions_%03d.json", i)), &chunk)
		if len(chunk) != want {
			t.Errorf("chunk %d: expected %d sessions, got %d", i, want, len(chunk))
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "sessions_003.json")); !os.IsNotExist(err) {
		t.Errorf("unexpected fourth session chunk")
	}
}

func TestRunBadRefTime(t *testing.T) {
	m := smallMain(t.TempDir())
	m.RefTime = "not-a-time"
	if err := m.Run(); err == nil {
		t.Fatalf("expected error for malformed ref time")
	}
}
