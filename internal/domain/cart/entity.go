// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Line is one cart position: a resolved product and the requested quantity.
// A line exists only while its quantity is positive. Lines returned from the
// store are snapshots; mutating them has no effect on the cart.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

// LineTotal returns price times quantity in cents
func (l *Line) LineTotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}
