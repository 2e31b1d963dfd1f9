package fake

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/fake/gen"
)

func TestGenTransactions(t *testing.T) {
	cfg := Config{Categories: 10, Products: 200, Users: 100, Transactions: 1000, TimespanDays: 90}
	gn := testGenerator(23, cfg)
	ds := gn.Generate()

	if len(ds.Transactions)+ds.SkippedTransactions != cfg.Transactions {
		t.Fatalf("transactions %d + skipped %d != attempts %d",
			len(ds.Transactions), ds.SkippedTransactions, cfg.Transactions)
	}

	users := make(map[string]*User)
	for _, u := range ds.Users {
		users[u.UserID] = u
	}
	products := make(map[string]*Product)
	for _, p := range ds.Products {
		products[p.ProductID] = p
		if p.CurrentStock < 0 {
			t.Errorf("product %s stock went negative: %d", p.ProductID, p.CurrentStock)
		}
	}

	ids := make(map[string]struct{})
	orders := make(map[string]int)
	spend := make(map[string]float64)
	statuses := make(map[string]int)
	discounted := 0
	for _, txn := range ds.Transactions {
		if _, ok := ids[txn.TransactionID]; ok {
			t.Errorf("duplicate transaction id %s", txn.TransactionID)
		}
		ids[txn.TransactionID] = struct{}{}

		u, ok := users[txn.UserID]
		if !ok {
			t.Fatalf("transaction %s references unknown user %s", txn.TransactionID, txn.UserID)
		}
		if u.AccountStatus != "active" {
			t.Errorf("transaction %s belongs to %s user %s", txn.TransactionID, u.AccountStatus, u.UserID)
		}

		if len(txn.Items) < 1 || len(txn.Items) > 5 {
			t.Errorf("transaction %s has %d items", txn.TransactionID, len(txn.Items))
		}
		itemSum := 0.0
		lineProducts := make(map[string]struct{})
		for _, item := range txn.Items {
			p, ok := products[item.ProductID]
			if !ok {
				t.Fatalf("transaction %s references unknown product %s", txn.TransactionID, item.ProductID)
			}
			if _, ok := lineProducts[item.ProductID]; ok {
				t.Errorf("transaction %s has duplicate product %s", txn.TransactionID, item.ProductID)
			}
			lineProducts[item.ProductID] = struct{}{}
			if item.Quantity < 1 || item.Quantity > maxQuantityPerItem {
				t.Errorf("item quantity out of range: %d", item.Quantity)
			}
			if item.UnitPrice != p.BasePrice {
				t.Errorf("item unit price %v != product base price %v", item.UnitPrice, p.BasePrice)
			}
			if want := gen.Round2(float64(item.Quantity) * item.UnitPrice); math.Abs(item.Subtotal-want) > 1e-9 {
				t.Errorf("item subtotal exp: %v, got: %v", want, item.Subtotal)
			}
			itemSum += item.Subtotal
		}
		if math.Abs(txn.Subtotal-gen.Round2(itemSum)) > 1e-9 {
			t.Errorf("transaction %s subtotal %v != item sum %v", txn.TransactionID, txn.Subtotal, itemSum)
		}

		if math.Abs(txn.Tax-gen.Round2(txn.Subtotal*taxRate)) > 1e-9 {
			t.Errorf("transaction %s tax %v for subtotal %v", txn.TransactionID, txn.Tax, txn.Subtotal)
		}
		wantShipping := flatShippingFee
		if txn.Subtotal > freeShippingOver {
			wantShipping = 0
		}
		if txn.Shipping != wantShipping {
			t.Errorf("transaction %s shipping %v for subtotal %v", txn.TransactionID, txn.Shipping, txn.Subtotal)
		}
		if want := gen.Round2(txn.Subtotal - txn.Discount + txn.Tax + txn.Shipping); math.Abs(txn.Total-want) > 1e-9 {
			t.Errorf("transaction %s total exp: %v, got: %v", txn.TransactionID, want, txn.Total)
		}
		if txn.Discount > 0 {
			discounted++
		}

		statuses[txn.Status]++
		orders[txn.UserID]++
		spend[txn.UserID] += txn.Total
	}

	for _, u := range ds.Users {
		if u.TotalOrders != orders[u.UserID] {
			t.Errorf("user %s total orders %d, transactions say %d", u.UserID, u.TotalOrders, orders[u.UserID])
		}
		if math.Abs(u.LifetimeValue-spend[u.UserID]) > 1e-6 {
			t.Errorf("user %s lifetime value %v, transactions say %v", u.UserID, u.LifetimeValue, spend[u.UserID])
		}
	}

	if statuses["completed"] < statuses["cancelled"] {
		t.Errorf("unexpected status distribution: %v", statuses)
	}
	if discounted == 0 || discounted == len(ds.Transactions) {
		t.Errorf("expected some but not all transactions discounted, got %d of %d", discounted, len(ds.Transactions))
	}
}

func TestTransactionsExhaustInventory(t *testing.T) {
	// Far more attempts than the tiny catalog can serve; generation must
	// terminate with the shortfall recorded as skips.
	cfg := Config{Categories: 2, Products: 4, Users: 10, Transactions: 5000, TimespanDays: 30}
	ds := testGenerator(29, cfg).Generate()

	if len(ds.Transactions)+ds.SkippedTransactions != cfg.Transactions {
		t.Fatalf("transactions %d + skipped %d != attempts %d",
			len(ds.Transactions), ds.SkippedTransactions, cfg.Transactions)
	}
	if ds.SkippedTransactions == 0 {
		t.Errorf("expected attempts to be skipped once stock ran out")
	}
	for _, p := range ds.Products {
		if p.CurrentStock < 0 {
			t.Errorf("product %s stock went negative: %d", p.ProductID, p.CurrentStock)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := Config{Categories: 5, Products: 100, Users: 50, Transactions: 200, Sessions: 300, TimespanDays: 60}
	a := testGenerator(42, cfg).Generate()
	b := testGenerator(42, cfg).Generate()

	aj, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshaling first dataset: %v", err)
	}
	bj, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshaling second dataset: %v", err)
	}
	if string(aj) != string(bj) {
		t.Fatalf("datasets from identical seeds differ")
	}

	c := testGenerator(43, cfg).Generate()
	cj, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshaling third dataset: %v", err)
	}
	if string(aj) == string(cj) {
		t.Fatalf("datasets from different seeds are identical")
	}
}
