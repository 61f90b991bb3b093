// internal/domain/catalog/filter.go
package catalog

import "sort"

// Sort options for Filter. SortFeatured keeps catalog order, which places
// the curated products first.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// FeaturedRatingFloor is the minimum rating that makes a product featured
// without being on sale.
const FeaturedRatingFloor = 4.7

// FilterOptions narrows and orders a product listing. Zero values mean
// unconstrained: empty category matches everything, MaxPrice 0 means no
// upper bound.
type FilterOptions struct {
	Category string
	MinPrice int64 // cents, inclusive
	MaxPrice int64 // cents, inclusive; 0 disables the bound
	SortBy   string
}

// Filter returns the products matching the options, ordered by the sort
// option. The catalog itself is never reordered.
func (c *Catalog) Filter(opts FilterOptions) []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if p.Price < opts.MinPrice {
			continue
		}
		if opts.MaxPrice > 0 && p.Price > opts.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch opts.SortBy {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}

	return out
}

// Featured returns the products that are on sale or rated at least the
// featured floor, in catalog order.
func (c *Catalog) Featured() []Product {
	out := make([]Product, 0)
	for _, p := range c.products {
		if p.OnSale || p.Rating >= FeaturedRatingFloor {
			out = append(out, p)
		}
	}
	return out
}
