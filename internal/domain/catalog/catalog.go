// internal/domain/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Catalog is an immutable set of products, fixed at construction. It never
// changes after New returns, so reads need no locking and every lookup across
// the process sees the same data.
type Catalog struct {
	products []Product
	byID     map[uint]Product
}

// New validates the products and builds a catalog from them. The input slice
// is copied; the caller keeps ownership of it.
func New(products []Product) (*Catalog, error) {
	byID := make(map[uint]Product, len(products))
	copied := make([]Product, len(products))

	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, err
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("product ID %d: %w", p.ID, ErrDuplicateProduct)
		}
		byID[p.ID] = p
		copied[i] = p
	}

	return &Catalog{products: copied, byID: byID}, nil
}

// LoadFile reads a JSON product list and builds a catalog from it
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(products)
}

// ByID looks up a product by its ID
func (c *Catalog) ByID(id uint) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns a copy of all products in catalog order
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the distinct product categories, sorted
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

func validateProduct(p Product) error {
	if p.Name == "" {
		return fmt.Errorf("product ID %d: name is required: %w", p.ID, ErrInvalidProduct)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %q: price cannot be negative: %w", p.Name, ErrInvalidProduct)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product %q: stock cannot be negative: %w", p.Name, ErrInvalidProduct)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %q: rating must be between 0 and 5: %w", p.Name, ErrInvalidProduct)
	}
	if p.OnSale && p.OriginalPrice <= 0 {
		return fmt.Errorf("product %q: on sale without an original price: %w", p.Name, ErrInvalidProduct)
	}
	return nil
}
