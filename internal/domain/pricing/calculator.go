// internal/domain/pricing/calculator.go
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// Config holds the pricing rules for a deployment. Amounts are in cents;
// the tax rate is a fraction (0.08 for 8%).
type Config struct {
	FreeShippingThreshold int64           `json:"free_shipping_threshold"`
	FlatShippingFee       int64           `json:"flat_shipping_fee"`
	TaxRate               decimal.Decimal `json:"tax_rate"`
	Currency              string          `json:"currency"`
}

// Validate checks the configuration invariants
func (c Config) Validate() error {
	if c.FreeShippingThreshold <= 0 {
		return fmt.Errorf("free shipping threshold must be positive: %w", ErrInvalidConfiguration)
	}
	if c.FlatShippingFee < 0 {
		return fmt.Errorf("flat shipping fee cannot be negative: %w", ErrInvalidConfiguration)
	}
	if c.TaxRate.IsNegative() {
		return fmt.Errorf("tax rate cannot be negative: %w", ErrInvalidConfiguration)
	}
	return nil
}

// Quote is the full pricing breakdown for a cart snapshot
type Quote struct {
	ItemCount            int     `json:"item_count"`     // distinct lines
	TotalQuantity        int     `json:"total_quantity"` // sum of quantities
	Subtotal             int64   `json:"subtotal"`
	ShippingFee          int64   `json:"shipping_fee"`
	Tax                  int64   `json:"tax"`
	Total                int64   `json:"total"`
	FreeShippingProgress float64 `json:"free_shipping_progress"` // 0 to 1
	AmountToFreeShipping int64   `json:"amount_to_free_shipping"`
	Currency             string  `json:"currency"`
}

// Subtotal sums price times quantity over all lines. Lines carry the
// product resolved from the catalog at add time; since the catalog is
// immutable, this is also the current price.
func Subtotal(lines []cart.Line) int64 {
	var total int64
	for i := range lines {
		total += lines[i].LineTotal()
	}
	return total
}

// ShippingFee returns zero when the subtotal reaches the free-shipping
// threshold, the flat fee otherwise.
func ShippingFee(subtotal int64, cfg Config) int64 {
	if subtotal >= cfg.FreeShippingThreshold {
		return 0
	}
	return cfg.FlatShippingFee
}

// Tax computes the tax on a subtotal, rounded to the nearest cent
func Tax(subtotal int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(subtotal).Mul(rate).Round(0).IntPart()
}

// Total sums subtotal, shipping fee and tax
func Total(subtotal, shippingFee, tax int64) int64 {
	return subtotal + shippingFee + tax
}

// ShippingProgress reports how close the subtotal is to free shipping,
// capped at 1. The threshold must be positive.
func ShippingProgress(subtotal, threshold int64) (float64, error) {
	if threshold <= 0 {
		return 0, fmt.Errorf("free shipping threshold must be positive: %w", ErrInvalidConfiguration)
	}
	progress := float64(subtotal) / float64(threshold)
	if progress > 1 {
		progress = 1
	}
	return progress, nil
}

// Calculate produces the full quote for a cart snapshot. It is a pure
// function: identical inputs always yield the identical quote.
func Calculate(lines []cart.Line, cfg Config) (Quote, error) {
	if err := cfg.Validate(); err != nil {
		return Quote{}, err
	}

	subtotal := Subtotal(lines)
	fee := ShippingFee(subtotal, cfg)
	tax := Tax(subtotal, cfg.TaxRate)
	progress, err := ShippingProgress(subtotal, cfg.FreeShippingThreshold)
	if err != nil {
		return Quote{}, err
	}

	remaining := cfg.FreeShippingThreshold - subtotal
	if remaining < 0 {
		remaining = 0
	}

	totalQuantity := 0
	for i := range lines {
		totalQuantity += lines[i].Quantity
	}

	return Quote{
		ItemCount:            len(lines),
		TotalQuantity:        totalQuantity,
		Subtotal:             subtotal,
		ShippingFee:          fee,
		Tax:                  tax,
		Total:                Total(subtotal, fee, tax),
		FreeShippingProgress: progress,
		AmountToFreeShipping: remaining,
		Currency:             cfg.Currency,
	}, nil
}
