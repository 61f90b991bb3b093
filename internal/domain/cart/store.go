// internal/domain/cart/store.go
package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Store holds the cart lines for a single session. At most one line exists
// per product; lines keep their insertion order. All operations are atomic:
// a failed mutation leaves the store unchanged.
//
// The store validates every add against the catalog, so a line always
// references a known product.
type Store struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	lines   []Line

	observers []func()
}

// NewStore creates an empty cart bound to the given catalog
func NewStore(cat *catalog.Catalog) *Store {
	return &Store{catalog: cat}
}

// OnChange registers a callback invoked after every successful mutation.
// The presentation layer owns when and how to redraw; the store only
// signals that state changed.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// AddItem increments the quantity of a line, creating it if absent, and
// returns the new quantity. The product must exist in the catalog and have
// enough stock to cover the combined quantity.
func (s *Store) AddItem(productID uint, quantity int) (int, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}

	product, ok := s.catalog.ByID(productID)
	if !ok {
		return 0, fmt.Errorf("product %d: %w", productID, catalog.ErrUnknownProduct)
	}

	s.mu.Lock()
	newQuantity := quantity
	if i := s.indexOf(productID); i >= 0 {
		newQuantity = s.lines[i].Quantity + quantity
	}
	if newQuantity > product.Stock {
		s.mu.Unlock()
		return 0, fmt.Errorf("product %d: available %d, requested %d: %w",
			productID, product.Stock, newQuantity, ErrOutOfStock)
	}

	if i := s.indexOf(productID); i >= 0 {
		s.lines[i].Quantity = newQuantity
	} else {
		s.lines = append(s.lines, Line{
			Product:  product,
			Quantity: quantity,
			AddedAt:  time.Now().UTC(),
		})
	}
	s.mu.Unlock()

	s.notify()
	return newQuantity, nil
}

// UpdateItem sets the absolute quantity of a line and reports whether the
// cart changed. Zero removes the line; the line must already exist for a
// non-zero update (ErrLineNotFound).
func (s *Store) UpdateItem(productID uint, quantity int) (bool, error) {
	if quantity < 0 {
		return false, ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.RemoveItem(productID), nil
	}

	product, ok := s.catalog.ByID(productID)
	if !ok {
		return false, fmt.Errorf("product %d: %w", productID, catalog.ErrUnknownProduct)
	}
	if quantity > product.Stock {
		return false, fmt.Errorf("product %d: available %d, requested %d: %w",
			productID, product.Stock, quantity, ErrOutOfStock)
	}

	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return false, fmt.Errorf("product %d: %w", productID, ErrLineNotFound)
	}
	s.lines[i].Quantity = quantity
	s.mu.Unlock()

	s.notify()
	return true, nil
}

// RemoveItem deletes the line for the product and reports whether it was
// present. Removing an absent product is a no-op, not an error.
func (s *Store) RemoveItem(productID uint) bool {
	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.mu.Unlock()

	s.notify()
	return true
}

// Clear deletes all lines and reports whether there were any
func (s *Store) Clear() bool {
	s.mu.Lock()
	changed := len(s.lines) > 0
	s.lines = nil
	s.mu.Unlock()

	if changed {
		s.notify()
	}
	return changed
}

// Drain returns a snapshot of all lines and clears the store in a single
// critical section. Checkout uses it to capture the lines it commits.
func (s *Store) Drain() []Line {
	s.mu.Lock()
	lines := s.lines
	s.lines = nil
	s.mu.Unlock()

	if len(lines) > 0 {
		s.notify()
	}
	return lines
}

// Lines returns a snapshot of the cart in insertion order. Callers can
// enumerate it safely while the store is mutated.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// ItemCount returns the sum of all line quantities
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Len returns the number of distinct lines
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// indexOf must be called with the lock held
func (s *Store) indexOf(productID uint) int {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) notify() {
	s.mu.RLock()
	observers := s.observers
	s.mu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}
