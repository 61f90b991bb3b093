// internal/domain/order/entity.go
package order

import (
	"time"
)

// Order is one committed checkout. Orders are immutable once created: the
// ledger hands out copies, and the financial fields capture the pricing at
// purchase time.
type Order struct {
	ID     uint   `json:"id"`
	Number string `json:"number"` // ORD-YYYYMMDD-NNNNN

	Items []Item `json:"items"`

	// Financial information, in cents
	Subtotal    int64 `json:"subtotal"`
	ShippingFee int64 `json:"shipping_fee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`

	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// Item is a purchased line captured at checkout time
type Item struct {
	ProductID uint   `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"` // cents, price at purchase
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"` // UnitPrice * Quantity
}

// TotalQuantity returns the number of units across all items
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// GetFormattedTotal returns the total as a float in major currency units
func (o *Order) GetFormattedTotal() float64 {
	return float64(o.Total) / 100
}
