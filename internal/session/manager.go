// internal/session/manager.go
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

// Manager keeps the live sessions of a server deployment, keyed by session
// ID. Each session is exclusively owned by one shopper; the manager only
// creates, looks up and expires them.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog *catalog.Catalog
	pricing pricing.Config
	ttl     time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewManager creates a session registry. Sessions idle longer than ttl are
// removed by a background janitor running every cleanupInterval.
func NewManager(cat *catalog.Catalog, cfg pricing.Config, ttl, cleanupInterval time.Duration) *Manager {
	m := &Manager{
		sessions:    make(map[string]*Session),
		catalog:     cat,
		pricing:     cfg,
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop(cleanupInterval)

	return m
}

// NewID mints a fresh session identifier
func (m *Manager) NewID() string {
	return uuid.New().String()
}

// GetOrCreate returns the session for the given ID, creating an empty one
// if it does not exist yet. The access refreshes the session's idle timer.
func (m *Manager) GetOrCreate(id string) *Session {
	if id == "" {
		id = m.NewID()
	}

	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.touch()
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.touch()
		return s
	}
	s = newSession(id, m.catalog, m.pricing)
	m.sessions[id] = s
	return s
}

// Get returns the session for the given ID if it exists
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.touch()
	}
	return s, ok
}

// Delete discards a session and all its state
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the janitor and waits for it to finish
func (m *Manager) Close() error {
	close(m.stopCleanup)
	m.wg.Wait()
	return nil
}

func (m *Manager) cleanupLoop(interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.expireSessions()
		case <-m.stopCleanup:
			return
		}
	}
}

// expireSessions drops every session idle longer than the TTL
func (m *Manager) expireSessions() {
	now := time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.expired(m.ttl, now) {
			delete(m.sessions, id)
		}
	}
}
