// internal/domain/catalog/entity.go
package catalog

// Product represents one sellable product
type Product struct {
	ID            uint    `json:"id"`
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         int64   `json:"price"`          // Price in cents
	OriginalPrice int64   `json:"original_price"` // Pre-sale price for discounts
	OnSale        bool    `json:"on_sale"`
	Rating        float64 `json:"rating"` // 0 to 5
	Stock         int     `json:"stock"`
	Emoji         string  `json:"emoji"`
}

func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}

func (p *Product) GetDiscountPercentage() int {
	if p.OnSale && p.OriginalPrice > 0 && p.Price < p.OriginalPrice {
		return int(((p.OriginalPrice - p.Price) * 100) / p.OriginalPrice)
	}
	return 0
}
