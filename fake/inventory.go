package fake

import "sync"

// Inventory is the single mutation path for product stock levels during
// transaction generation. The sequential generator doesn't need the lock, but
// the contract lets a concurrent producer reserve stock safely: Reserve either
// decrements the full quantity or changes nothing.
type Inventory struct {
	mu       sync.Mutex
	products map[string]*Product
}

// NewInventory wraps the given products. The products are shared, not copied;
// reservations are visible through the original slice.
func NewInventory(products []*Product) *Inventory {
	byID := make(map[string]*Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}
	return &Inventory{products: byID}
}

// Reserve decrements the product's stock by qty and reports whether it
// succeeded. It fails if the product is unknown, qty is not positive, or
// fewer than qty units remain; stock never goes below zero.
func (inv *Inventory) Reserve(productID string, qty int) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	p, ok := inv.products[productID]
	if !ok || qty <= 0 || p.CurrentStock < qty {
		return false
	}
	p.CurrentStock -= qty
	return true
}

// Stock returns the current stock level for the product, or 0 if it is
// unknown.
func (inv *Inventory) Stock(productID string) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	p, ok := inv.products[productID]
	if !ok {
		return 0
	}
	return p.CurrentStock
}
