// internal/domain/catalog/errors.go
package catalog

import "errors"

var (
	// ErrUnknownProduct is returned when a product ID is not in the catalog
	ErrUnknownProduct = errors.New("unknown product")

	// ErrDuplicateProduct is returned when two catalog products share an ID
	ErrDuplicateProduct = errors.New("duplicate product")

	// ErrInvalidProduct is returned when a product fails validation
	ErrInvalidProduct = errors.New("invalid product")
)
