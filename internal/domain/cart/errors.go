// internal/domain/cart/errors.go
package cart

import "errors"

var (
	// ErrOutOfStock is returned when the requested quantity exceeds the
	// available stock for a product.
	ErrOutOfStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned when a quantity below one is requested
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrLineNotFound is returned when an update targets a product that is
	// not in the cart.
	ErrLineNotFound = errors.New("product not in cart")
)
