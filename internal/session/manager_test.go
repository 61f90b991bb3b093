// internal/session/manager_test.go
package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testManager(t *testing.T) *Manager {
	t.Helper()

	m := NewManager(testCatalog(t), testPricing(), time.Hour, time.Hour)
	t.Cleanup(func() { require.NoError(t, m.Close()) })
	return m
}

func TestManager_GetOrCreate(t *testing.T) {
	m := testManager(t)

	s := m.GetOrCreate("shopper-a")
	require.NotNil(t, s)
	assert.Equal(t, "shopper-a", s.ID)

	// Same ID hands back the same instance
	assert.Same(t, s, m.GetOrCreate("shopper-a"))
	assert.Equal(t, 1, m.Len())
}

func TestManager_GetOrCreate_MintsID(t *testing.T) {
	m := testManager(t)

	s := m.GetOrCreate("")
	require.NotNil(t, s)
	assert.NotEmpty(t, s.ID)

	assert.Same(t, s, m.GetOrCreate(s.ID))
}

func TestManager_SessionIsolation(t *testing.T) {
	m := testManager(t)

	a := m.GetOrCreate("shopper-a")
	b := m.GetOrCreate("shopper-b")

	_, err := a.AddItem(1, 2)
	require.NoError(t, err)
	_, err = a.Checkout()
	require.NoError(t, err)
	_, err = a.ToggleWishlist(3)
	require.NoError(t, err)

	// Nothing leaks across sessions
	assert.Equal(t, 0, b.ItemCount())
	assert.Equal(t, 0, b.OrderCount())
	assert.Empty(t, b.WishlistIDs())
}

func TestManager_Get(t *testing.T) {
	m := testManager(t)

	_, ok := m.Get("missing")
	assert.False(t, ok)

	created := m.GetOrCreate("shopper-a")
	got, ok := m.Get("shopper-a")
	assert.True(t, ok)
	assert.Same(t, created, got)
}

func TestManager_Delete(t *testing.T) {
	m := testManager(t)

	s := m.GetOrCreate("shopper-a")
	_, err := s.AddItem(1, 1)
	require.NoError(t, err)

	m.Delete("shopper-a")
	_, ok := m.Get("shopper-a")
	assert.False(t, ok)

	// A recreated session starts empty
	assert.Equal(t, 0, m.GetOrCreate("shopper-a").ItemCount())
}

func TestManager_ExpireSessions(t *testing.T) {
	m := testManager(t)

	stale := m.GetOrCreate("stale")
	fresh := m.GetOrCreate("fresh")

	stale.mu.Lock()
	stale.lastSeen = time.Now().UTC().Add(-2 * time.Hour)
	stale.mu.Unlock()

	m.expireSessions()

	_, ok := m.Get("stale")
	assert.False(t, ok)
	got, ok := m.Get("fresh")
	assert.True(t, ok)
	assert.Same(t, fresh, got)
}

func TestManager_AccessRefreshesIdleTimer(t *testing.T) {
	m := testManager(t)

	s := m.GetOrCreate("shopper-a")
	s.mu.Lock()
	s.lastSeen = time.Now().UTC().Add(-2 * time.Hour)
	s.mu.Unlock()

	// GetOrCreate touches the session before the janitor can expire it
	m.GetOrCreate("shopper-a")
	m.expireSessions()

	_, ok := m.Get("shopper-a")
	assert.True(t, ok)
}

func TestManager_Close(t *testing.T) {
	m := NewManager(testCatalog(t), testPricing(), time.Hour, 10*time.Millisecond)
	m.GetOrCreate("shopper-a")

	require.NoError(t, m.Close())
}
