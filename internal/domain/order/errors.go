// internal/domain/order/errors.go
package order

import "errors"

var (
	// ErrEmptyCart is returned when checkout is invoked with no cart lines
	ErrEmptyCart = errors.New("cannot checkout an empty cart")

	// ErrOrderNotFound is returned when an order number is not in the ledger
	ErrOrderNotFound = errors.New("order not found")
)
