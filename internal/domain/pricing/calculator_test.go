// internal/domain/pricing/calculator_test.go
package pricing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

func testConfig() Config {
	return Config{
		FreeShippingThreshold: 10000,
		FlatShippingFee:       999,
		TaxRate:               decimal.RequireFromString("0.08"),
		Currency:              "USD",
	}
}

func line(id uint, price int64, qty int) cart.Line {
	return cart.Line{Product: catalog.Product{ID: id, Price: price}, Quantity: qty}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []cart.Line
		want  int64
	}{
		{name: "empty cart", lines: nil, want: 0},
		{name: "single line", lines: []cart.Line{line(1, 2000, 3)}, want: 6000},
		{name: "multiple lines", lines: []cart.Line{line(1, 2000, 2), line(2, 999, 1)}, want: 4999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtotal(tt.lines))
		})
	}
}

func TestSubtotal_Linear(t *testing.T) {
	lines := []cart.Line{line(1, 2000, 2), line(2, 999, 1)}
	extra := line(3, 2499, 4)

	assert.Equal(t, Subtotal(lines)+2499*4, Subtotal(append(lines, extra)))
}

func TestShippingFee(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{name: "below threshold", subtotal: 9999, want: 999},
		{name: "at threshold", subtotal: 10000, want: 0},
		{name: "above threshold", subtotal: 25000, want: 0},
		{name: "empty cart", subtotal: 0, want: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := ShippingFee(tt.subtotal, cfg)
			assert.Equal(t, tt.want, fee)

			// Fee is zero exactly when the threshold is reached
			assert.Equal(t, tt.subtotal >= cfg.FreeShippingThreshold, fee == 0)
		})
	}
}

func TestTax_RoundsToNearestCent(t *testing.T) {
	rate := decimal.RequireFromString("0.08")

	tests := []struct {
		subtotal int64
		want     int64
	}{
		{subtotal: 6000, want: 480},
		{subtotal: 0, want: 0},
		{subtotal: 101, want: 8},  // 8.08 rounds down
		{subtotal: 119, want: 10}, // 9.52 rounds up
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Tax(tt.subtotal, rate), "subtotal %d", tt.subtotal)
	}
}

func TestShippingProgress(t *testing.T) {
	progress, err := ShippingProgress(5000, 10000)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, progress, 1e-9)

	progress, err = ShippingProgress(25000, 10000)
	require.NoError(t, err)
	assert.Equal(t, 1.0, progress)

	progress, err = ShippingProgress(0, 10000)
	require.NoError(t, err)
	assert.Equal(t, 0.0, progress)

	_, err = ShippingProgress(5000, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = ShippingProgress(5000, -1)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{name: "defaults", mutate: func(*Config) {}, valid: true},
		{name: "zero threshold", mutate: func(c *Config) { c.FreeShippingThreshold = 0 }, valid: false},
		{name: "negative fee", mutate: func(c *Config) { c.FlatShippingFee = -1 }, valid: false},
		{name: "negative tax rate", mutate: func(c *Config) { c.TaxRate = decimal.RequireFromString("-0.01") }, valid: false},
		{name: "zero fee", mutate: func(c *Config) { c.FlatShippingFee = 0 }, valid: true},
		{name: "zero tax rate", mutate: func(c *Config) { c.TaxRate = decimal.Zero }, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			}
		})
	}
}

// A cart with 3 units at $20.00 and the $100 threshold not reached:
// $60.00 subtotal + $9.99 shipping + $4.80 tax = $74.79.
func TestCalculate_WorkedScenario(t *testing.T) {
	lines := []cart.Line{line(1, 2000, 3)}

	quote, err := Calculate(lines, testConfig())
	require.NoError(t, err)

	want := Quote{
		ItemCount:            1,
		TotalQuantity:        3,
		Subtotal:             6000,
		ShippingFee:          999,
		Tax:                  480,
		Total:                7479,
		FreeShippingProgress: 0.6,
		AmountToFreeShipping: 4000,
		Currency:             "USD",
	}
	if diff := cmp.Diff(want, quote); diff != "" {
		t.Errorf("quote mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_EmptyCart(t *testing.T) {
	quote, err := Calculate(nil, testConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(0), quote.Subtotal)
	assert.Equal(t, int64(999), quote.ShippingFee)
	assert.Equal(t, int64(0), quote.Tax)
	assert.Equal(t, int64(999), quote.Total)
	assert.Equal(t, int64(10000), quote.AmountToFreeShipping)
}

func TestCalculate_FreeShipping(t *testing.T) {
	lines := []cart.Line{line(1, 2000, 5)}

	quote, err := Calculate(lines, testConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(10000), quote.Subtotal)
	assert.Equal(t, int64(0), quote.ShippingFee)
	assert.Equal(t, 1.0, quote.FreeShippingProgress)
	assert.Equal(t, int64(0), quote.AmountToFreeShipping)
	assert.Equal(t, int64(10800), quote.Total)
}

func TestCalculate_InvalidConfiguration(t *testing.T) {
	cfg := testConfig()
	cfg.FreeShippingThreshold = 0

	_, err := Calculate([]cart.Line{line(1, 2000, 1)}, cfg)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestCalculate_Deterministic(t *testing.T) {
	lines := []cart.Line{line(1, 2000, 2), line(2, 999, 4)}
	cfg := testConfig()

	first, err := Calculate(lines, cfg)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Calculate(lines, cfg)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
