// internal/domain/catalog/seed.go
package catalog

// Default returns the built-in demo catalog used when no catalog file is
// configured.
func Default() *Catalog {
	c, err := New([]Product{
		{
			ID: 1, SKU: "FTW-001", Name: "Classic White Sneakers",
			Description: "Comfortable, versatile white sneakers for everyday wear",
			Category: "Footwear", Price: 7999, OriginalPrice: 9999, OnSale: true,
			Rating: 4.5, Stock: 15, Emoji: "👟",
		},
		{
			ID: 2, SKU: "ELC-002", Name: "Wireless Bluetooth Headphones",
			Description: "Noise-cancelling headphones with 30-hour battery",
			Category: "Electronics", Price: 12999,
			Rating: 4.8, Stock: 8, Emoji: "🎧",
		},
		{
			ID: 3, SKU: "CLO-003", Name: "Organic Cotton T-Shirt",
			Description: "Soft, sustainable cotton t-shirt in multiple colors",
			Category: "Clothing", Price: 2499, OriginalPrice: 3499, OnSale: true,
			Rating: 4.3, Stock: 25, Emoji: "👕",
		},
		{
			ID: 4, SKU: "ELC-004", Name: "Smart Watch Series 5",
			Description: "Fitness tracking, heart rate monitor, GPS",
			Category: "Electronics", Price: 29999,
			Rating: 4.7, Stock: 5, Emoji: "⌚",
		},
		{
			ID: 5, SKU: "ACC-005", Name: "Leather Backpack",
			Description: "Genuine leather backpack with laptop compartment",
			Category: "Accessories", Price: 8999, OriginalPrice: 11999, OnSale: true,
			Rating: 4.6, Stock: 12, Emoji: "🎒",
		},
		{
			ID: 6, SKU: "FIT-006", Name: "Yoga Mat Premium",
			Description: "Non-slip, eco-friendly yoga mat with carrying strap",
			Category: "Fitness", Price: 3999,
			Rating: 4.4, Stock: 20, Emoji: "🧘",
		},
		{
			ID: 7, SKU: "HOM-007", Name: "Ceramic Coffee Mug",
			Description: "Handcrafted ceramic mug with insulated design",
			Category: "Home", Price: 1699, OriginalPrice: 2299, OnSale: true,
			Rating: 4.2, Stock: 30, Emoji: "☕",
		},
		{
			ID: 8, SKU: "ELC-008", Name: "Gaming Mouse Pro",
			Description: "RGB gaming mouse with customizable buttons",
			Category: "Electronics", Price: 5999,
			Rating: 4.9, Stock: 7, Emoji: "🖱️",
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
