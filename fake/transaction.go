package fake

import (
	"github.com/IRUMVAEmmanuel1/multi-database-e-commerce-analytics-system/fake/gen"
)

// Transaction is one simulated checkout. Total = Subtotal - Discount + Tax +
// Shipping, with each term rounded to cents independently before combination.
type Transaction struct {
	TransactionID   string  `json:"transaction_id"`
	UserID          string  `json:"user_id"`
	Timestamp       string  `json:"timestamp"`
	Items           []Item  `json:"items"`
	Subtotal        float64 `json:"subtotal"`
	Discount        float64 `json:"discount"`
	Tax             float64 `json:"tax"`
	Shipping        float64 `json:"shipping"`
	Total           float64 `json:"total"`
	PaymentMethod   string  `json:"payment_method"`
	Status          string  `json:"status"`
	BillingAddress  GeoData `json:"billing_address"`
	ShippingAddress GeoData `json:"shipping_address"`
}

// Item is one line of a transaction.
type Item struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

const (
	taxRate            = 0.08
	freeShippingOver   = 50.0
	flatShippingFee    = 9.99
	discountChance     = 0.25
	maxQuantityPerItem = 3
)

var basketSizeWeights = []float64{0.4, 0.3, 0.15, 0.1, 0.05}
var discountRates = []float64{0.05, 0.10, 0.15, 0.20}

var paymentMethods = []string{
	"credit_card", "debit_card", "paypal", "apple_pay",
	"google_pay", "bank_transfer", "gift_card",
}

var transactionStatuses = []string{"completed", "processing", "shipped", "delivered", "cancelled"}
var transactionStatusWeights = []float64{0.7, 0.1, 0.1, 0.08, 0.02}

// genTransactions simulates m checkout attempts over the generated users and
// products. Each attempt picks a random active user and a weighted basket of
// 1-5 distinct active in-stock products; stock is reserved immediately, so
// later attempts in the same run see reduced inventory. An attempt with fewer
// usable products than its basket size is skipped, not retried, so the
// realized count can be below m.
func (gn *Generator) genTransactions(ds *Dataset, m int) {
	ds.Transactions = make([]*Transaction, 0, m)
	activeUsers := make([]*User, 0, len(ds.Users))
	for _, u := range ds.Users {
		if u.AccountStatus == "active" {
			activeUsers = append(activeUsers, u)
		}
	}
	if len(activeUsers) == 0 {
		ds.SkippedTransactions = m
		return
	}

	inv := NewInventory(ds.Products)
	for i := 0; i < m; i++ {
		user := activeUsers[gn.g.IntIn(0, len(activeUsers)-1)]

		numItems := 1 + gn.g.Weighted(basketSizeWeights)
		available := make([]*Product, 0, len(ds.Products))
		for _, p := range ds.Products {
			if p.IsActive && p.CurrentStock > 0 {
				available = append(available, p)
			}
		}
		if len(available) < numItems {
			ds.SkippedTransactions++
			continue
		}

		items := make([]Item, 0, numItems)
		subtotal := 0.0
		for _, idx := range gn.g.Sample(len(available), numItems) {
			p := available[idx]
			max := p.CurrentStock
			if max > maxQuantityPerItem {
				max = maxQuantityPerItem
			}
			qty := gn.g.IntIn(1, max)
			if !inv.Reserve(p.ProductID, qty) {
				// qty was derived from current stock, so this only
				// happens with a concurrent writer.
				continue
			}
			lineTotal := gen.Round2(float64(qty) * p.BasePrice)
			items = append(items, Item{
				ProductID: p.ProductID,
				Quantity:  qty,
				UnitPrice: p.BasePrice,
				Subtotal:  lineTotal,
			})
			subtotal += lineTotal
		}

		subtotal = gen.Round2(subtotal)
		discount := 0.0
		if gn.g.Bool(discountChance) {
			rate := discountRates[gn.g.IntIn(0, len(discountRates)-1)]
			discount = gen.Round2(subtotal * rate)
		}
		tax := gen.Round2(subtotal * taxRate)
		shipping := flatShippingFee
		if subtotal > freeShippingOver {
			shipping = 0
		}
		total := gen.Round2(subtotal - discount + tax + shipping)

		txn := &Transaction{
			TransactionID:   gn.newID("txn_", 12),
			UserID:          user.UserID,
			Timestamp:       gn.timestamp(gn.g.TimeIn(gn.spanStart(), gn.now)),
			Items:           items,
			Subtotal:        subtotal,
			Discount:        discount,
			Tax:             tax,
			Shipping:        shipping,
			Total:           total,
			PaymentMethod:   gn.g.Choice(paymentMethods),
			Status:          transactionStatuses[gn.g.Weighted(transactionStatusWeights)],
			BillingAddress:  user.GeoData,
			ShippingAddress: user.GeoData,
		}
		ds.Transactions = append(ds.Transactions, txn)

		// Aggregates count every transaction, cancelled included.
		user.TotalOrders++
		user.LifetimeValue += total
	}
}
