// internal/domain/cart/store_test.go
package cart

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	faker := gofakeit.New(7)
	c, err := catalog.New([]catalog.Product{
		{ID: 1, SKU: faker.LetterN(6), Name: "Sneakers", Description: faker.Sentence(6), Category: "Footwear", Price: 2000, Rating: 4.5, Stock: 5},
		{ID: 2, SKU: faker.LetterN(6), Name: "Headphones", Description: faker.Sentence(6), Category: "Electronics", Price: 999, Rating: 4.8, Stock: 0},
		{ID: 3, SKU: faker.LetterN(6), Name: "T-Shirt", Description: faker.Sentence(6), Category: "Clothing", Price: 2499, Rating: 4.3, Stock: 25},
	})
	require.NoError(t, err)
	return c
}

func TestStore_AddItem(t *testing.T) {
	s := NewStore(testCatalog(t))

	qty, err := s.AddItem(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, qty)

	// Adding again increments the same line
	qty, err = s.AddItem(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, qty)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 5, s.ItemCount())
}

func TestStore_AddItem_UnknownProduct(t *testing.T) {
	s := NewStore(testCatalog(t))

	_, err := s.AddItem(999, 1)
	assert.ErrorIs(t, err, catalog.ErrUnknownProduct)
	assert.Equal(t, 0, s.ItemCount())
}

func TestStore_AddItem_OutOfStock(t *testing.T) {
	s := NewStore(testCatalog(t))

	// Product 2 has zero stock
	_, err := s.AddItem(2, 1)
	assert.ErrorIs(t, err, ErrOutOfStock)

	// Combined quantity above stock fails and leaves the line unchanged
	_, err = s.AddItem(1, 4)
	require.NoError(t, err)
	_, err = s.AddItem(1, 2)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, 4, s.ItemCount())
}

func TestStore_AddItem_InvalidQuantity(t *testing.T) {
	s := NewStore(testCatalog(t))

	for _, qty := range []int{0, -1} {
		_, err := s.AddItem(1, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestStore_AddThenRemove_RestoresPriorState(t *testing.T) {
	s := NewStore(testCatalog(t))

	_, err := s.AddItem(1, 2)
	require.NoError(t, err)
	before := s.Lines()

	_, err = s.AddItem(3, 4)
	require.NoError(t, err)
	s.RemoveItem(3)

	assert.Equal(t, before, s.Lines())
}

func TestStore_RemoveItem_AbsentIsNoOp(t *testing.T) {
	s := NewStore(testCatalog(t))

	_, err := s.AddItem(1, 1)
	require.NoError(t, err)

	s.RemoveItem(999)
	assert.Equal(t, 1, s.ItemCount())
}

func TestStore_UpdateItem(t *testing.T) {
	s := NewStore(testCatalog(t))

	_, err := s.AddItem(3, 2)
	require.NoError(t, err)

	changed, err := s.UpdateItem(3, 10)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 10, s.ItemCount())

	// Zero removes the line
	changed, err = s.UpdateItem(3, 0)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, s.Len())

	// Zero on an absent line is a no-op
	changed, err = s.UpdateItem(3, 0)
	require.NoError(t, err)
	assert.False(t, changed)

	// Absolute quantity above stock fails
	_, err = s.AddItem(3, 2)
	require.NoError(t, err)
	_, err = s.UpdateItem(3, 26)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, 2, s.ItemCount())
}

func TestStore_UpdateItem_LineNotFound(t *testing.T) {
	s := NewStore(testCatalog(t))

	// Product 1 exists in the catalog but has no cart line
	changed, err := s.UpdateItem(1, 2)
	assert.ErrorIs(t, err, ErrLineNotFound)
	assert.False(t, changed)

	_, err = s.UpdateItem(999, 2)
	assert.ErrorIs(t, err, catalog.ErrUnknownProduct)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(testCatalog(t))

	_, err := s.AddItem(1, 2)
	require.NoError(t, err)
	_, err = s.AddItem(3, 1)
	require.NoError(t, err)

	s.Clear()

	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.ItemCount())

	// Clearing an empty store is fine
	s.Clear()
	assert.Equal(t, 0, s.ItemCount())
}

func TestStore_Lines_SnapshotInInsertionOrder(t *testing.T) {
	s := NewStore(testCatalog(t))

	_, err := s.AddItem(3, 1)
	require.NoError(t, err)
	_, err = s.AddItem(1, 2)
	require.NoError(t, err)

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, uint(3), lines[0].Product.ID)
	assert.Equal(t, uint(1), lines[1].Product.ID)

	// Mutating the snapshot does not touch the store
	lines[0].Quantity = 99
	assert.Equal(t, 3, s.ItemCount())
}

func TestStore_ItemCount_MatchesLines(t *testing.T) {
	s := NewStore(testCatalog(t))

	_, err := s.AddItem(1, 2)
	require.NoError(t, err)
	_, err = s.AddItem(3, 5)
	require.NoError(t, err)
	s.RemoveItem(1)
	_, err = s.AddItem(1, 1)
	require.NoError(t, err)

	sum := 0
	for _, l := range s.Lines() {
		sum += l.Quantity
	}
	assert.Equal(t, sum, s.ItemCount())
}

func TestStore_Drain(t *testing.T) {
	s := NewStore(testCatalog(t))

	_, err := s.AddItem(1, 2)
	require.NoError(t, err)

	lines := s.Drain()
	require.Len(t, lines, 1)
	assert.Equal(t, 0, s.ItemCount())

	assert.Empty(t, s.Drain())
}

func TestStore_OnChange(t *testing.T) {
	s := NewStore(testCatalog(t))

	notified := 0
	s.OnChange(func() { notified++ })

	_, err := s.AddItem(1, 1)
	require.NoError(t, err)
	s.RemoveItem(1)
	s.Clear() // empty, no notification

	assert.Equal(t, 2, notified)

	// Failed mutations do not notify
	_, err = s.AddItem(999, 1)
	require.Error(t, err)
	assert.Equal(t, 2, notified)
}

func TestLine_LineTotal(t *testing.T) {
	l := Line{Product: catalog.Product{Price: 2499}, Quantity: 3}
	assert.Equal(t, int64(7497), l.LineTotal())
}
