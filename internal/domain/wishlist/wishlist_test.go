// internal/domain/wishlist/wishlist_test.go
package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList_Toggle(t *testing.T) {
	l := NewList()

	assert.True(t, l.Toggle(1))
	assert.True(t, l.Has(1))
	assert.Equal(t, 1, l.Len())

	assert.False(t, l.Toggle(1))
	assert.False(t, l.Has(1))
	assert.Equal(t, 0, l.Len())
}

func TestList_InsertionOrder(t *testing.T) {
	l := NewList()

	l.Toggle(3)
	l.Toggle(1)
	l.Toggle(2)
	assert.Equal(t, []uint{3, 1, 2}, l.IDs())

	// Removing from the middle keeps the rest in order
	l.Remove(1)
	assert.Equal(t, []uint{3, 2}, l.IDs())

	// Re-adding appends at the end
	l.Toggle(1)
	assert.Equal(t, []uint{3, 2, 1}, l.IDs())
}

func TestList_Remove_AbsentIsNoOp(t *testing.T) {
	l := NewList()
	l.Toggle(1)

	l.Remove(42)
	assert.Equal(t, []uint{1}, l.IDs())
}

func TestList_IDs_Snapshot(t *testing.T) {
	l := NewList()
	l.Toggle(1)
	l.Toggle(2)

	ids := l.IDs()
	ids[0] = 99
	assert.Equal(t, []uint{1, 2}, l.IDs())
}
