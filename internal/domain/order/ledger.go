// internal/domain/order/ledger.go
package order

import (
	"fmt"
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

// Ledger is the append-only order history of one session. Orders are never
// mutated or removed after Append.
type Ledger struct {
	mu     sync.RWMutex
	orders []Order
	seq    uint
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append captures the cart lines and quote into a new immutable order,
// allocates its identifiers and stores it. The returned order is a copy.
func (l *Ledger) Append(lines []cart.Line, quote pricing.Quote) Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	now := time.Now().UTC()

	items := make([]Item, len(lines))
	for i, line := range lines {
		items[i] = Item{
			ProductID: line.Product.ID,
			SKU:       line.Product.SKU,
			Name:      line.Product.Name,
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal(),
		}
	}

	o := Order{
		ID:          l.seq,
		Number:      fmt.Sprintf("ORD-%s-%05d", now.Format("20060102"), l.seq),
		Items:       items,
		Subtotal:    quote.Subtotal,
		ShippingFee: quote.ShippingFee,
		Tax:         quote.Tax,
		Total:       quote.Total,
		Currency:    quote.Currency,
		CreatedAt:   now,
	}

	l.orders = append(l.orders, o)
	return copyOrder(o)
}

// History returns the most recent orders, newest first. A non-positive
// limit returns the full history.
func (l *Ledger) History(limit int) []Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.orders)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]Order, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, copyOrder(l.orders[i]))
	}
	return out
}

// ByNumber looks up an order by its order number
func (l *Ledger) ByNumber(number string) (Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.orders {
		if l.orders[i].Number == number {
			return copyOrder(l.orders[i]), nil
		}
	}
	return Order{}, fmt.Errorf("%s: %w", number, ErrOrderNotFound)
}

// Count returns the number of committed orders
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

// copyOrder deep-copies the items slice so callers cannot reach into the
// ledger's stored state.
func copyOrder(o Order) Order {
	items := make([]Item, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
