// internal/domain/wishlist/wishlist.go
package wishlist

import "sync"

// List is a per-session set of saved product IDs, kept in insertion order
type List struct {
	mu   sync.RWMutex
	ids  []uint
	seen map[uint]struct{}
}

// NewList creates an empty wishlist
func NewList() *List {
	return &List{seen: make(map[uint]struct{})}
}

// Toggle adds the product if absent or removes it if present, and reports
// whether the product is on the list afterwards.
func (l *List) Toggle(productID uint) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.seen[productID]; ok {
		l.remove(productID)
		return false
	}
	l.seen[productID] = struct{}{}
	l.ids = append(l.ids, productID)
	return true
}

// Remove deletes the product from the list; absent products are a no-op
func (l *List) Remove(productID uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.remove(productID)
}

// Has reports whether the product is on the list
func (l *List) Has(productID uint) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.seen[productID]
	return ok
}

// IDs returns a snapshot of the saved product IDs in insertion order
func (l *List) IDs() []uint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]uint, len(l.ids))
	copy(out, l.ids)
	return out
}

// Len returns the number of saved products
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}

// remove must be called with the lock held
func (l *List) remove(productID uint) {
	if _, ok := l.seen[productID]; !ok {
		return
	}
	delete(l.seen, productID)
	for i, id := range l.ids {
		if id == productID {
			l.ids = append(l.ids[:i], l.ids[i+1:]...)
			break
		}
	}
}
