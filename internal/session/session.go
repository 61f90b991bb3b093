// internal/session/session.go
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
)

// Session owns the mutable state of one shopper: exactly one cart, one
// order ledger and one wishlist, all created empty. Sessions are never
// shared; the manager hands the same instance back for the same ID.
//
// All state access goes through Session methods, which serialize on one
// session-level lock. That makes checkout's order-append plus cart-clear a
// single observable step.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.RWMutex
	lastSeen time.Time

	catalog  *catalog.Catalog
	cart     *cart.Store
	orders   *order.Ledger
	wishlist *wishlist.List
	pricing  pricing.Config

	cartObservers []func()
}

func newSession(id string, cat *catalog.Catalog, cfg pricing.Config) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		catalog:   cat,
		cart:      cart.NewStore(cat),
		orders:    order.NewLedger(),
		wishlist:  wishlist.NewList(),
		pricing:   cfg,
	}
}

// Cart operations

// AddItem adds quantity units of a product to the cart and returns the new
// line quantity.
func (s *Session) AddItem(productID uint, quantity int) (int, error) {
	s.mu.Lock()
	qty, err := s.cart.AddItem(productID, quantity)
	s.mu.Unlock()

	if err == nil {
		s.notifyCartChanged()
	}
	return qty, err
}

// UpdateItem sets the absolute quantity of a cart line; zero removes it
func (s *Session) UpdateItem(productID uint, quantity int) error {
	s.mu.Lock()
	changed, err := s.cart.UpdateItem(productID, quantity)
	s.mu.Unlock()

	if changed {
		s.notifyCartChanged()
	}
	return err
}

// RemoveItem deletes a cart line; absent lines are a no-op
func (s *Session) RemoveItem(productID uint) {
	s.mu.Lock()
	removed := s.cart.RemoveItem(productID)
	s.mu.Unlock()

	if removed {
		s.notifyCartChanged()
	}
}

// ClearCart deletes all cart lines
func (s *Session) ClearCart() {
	s.mu.Lock()
	cleared := s.cart.Clear()
	s.mu.Unlock()

	if cleared {
		s.notifyCartChanged()
	}
}

// Lines returns a snapshot of the cart in insertion order
func (s *Session) Lines() []cart.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Lines()
}

// ItemCount returns the sum of cart line quantities
func (s *Session) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.ItemCount()
}

// OnCartChange registers a callback fired after every cart mutation.
// Callbacks run outside the session lock, so they may read session state.
func (s *Session) OnCartChange(fn func()) {
	s.mu.Lock()
	s.cartObservers = append(s.cartObservers, fn)
	s.mu.Unlock()
}

// notifyCartChanged must be called without the lock held
func (s *Session) notifyCartChanged() {
	s.mu.RLock()
	observers := s.cartObservers
	s.mu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}

// Pricing and checkout

// Quote prices the current cart snapshot
func (s *Session) Quote() (pricing.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pricing.Calculate(s.cart.Lines(), s.pricing)
}

// Checkout commits the cart as a new order. It fails on an empty cart and
// re-validates stock before committing; on any failure nothing changes.
// On success the order is appended and the cart cleared within the same
// critical section.
func (s *Session) Checkout() (order.Order, error) {
	s.mu.Lock()
	o, err := s.checkoutLocked()
	s.mu.Unlock()

	if err == nil {
		s.notifyCartChanged()
	}
	return o, err
}

func (s *Session) checkoutLocked() (order.Order, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return order.Order{}, order.ErrEmptyCart
	}

	// Stock could have dropped since the lines were added once the catalog
	// is backed by live inventory, so the whole checkout is re-validated.
	for _, line := range lines {
		product, ok := s.catalog.ByID(line.Product.ID)
		if !ok {
			return order.Order{}, fmt.Errorf("product %d: %w", line.Product.ID, catalog.ErrUnknownProduct)
		}
		if line.Quantity > product.Stock {
			return order.Order{}, fmt.Errorf("product %d: available %d, requested %d: %w",
				product.ID, product.Stock, line.Quantity, cart.ErrOutOfStock)
		}
	}

	quote, err := pricing.Calculate(lines, s.pricing)
	if err != nil {
		return order.Order{}, err
	}

	o := s.orders.Append(lines, quote)
	s.cart.Clear()
	return o, nil
}

// Order history

// History returns the most recent orders, newest first; a non-positive
// limit returns all.
func (s *Session) History(limit int) []order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.History(limit)
}

// OrderByNumber looks up one committed order
func (s *Session) OrderByNumber(number string) (order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.ByNumber(number)
}

// OrderCount returns the ledger length
func (s *Session) OrderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.Count()
}

// Wishlist

// ToggleWishlist flips a product's wishlist membership and reports whether
// it is on the list afterwards. The product must exist in the catalog.
func (s *Session) ToggleWishlist(productID uint) (bool, error) {
	if _, ok := s.catalog.ByID(productID); !ok {
		return false, fmt.Errorf("product %d: %w", productID, catalog.ErrUnknownProduct)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Toggle(productID), nil
}

// RemoveFromWishlist drops a product from the wishlist
func (s *Session) RemoveFromWishlist(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist.Remove(productID)
}

// WishlistIDs returns the saved product IDs in insertion order
func (s *Session) WishlistIDs() []uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wishlist.IDs()
}

// Expiry bookkeeping

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now().UTC()
	s.mu.Unlock()
}

func (s *Session) expired(ttl time.Duration, now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.lastSeen) > ttl
}
