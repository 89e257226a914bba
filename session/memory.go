package session

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryItem
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore creates an in-memory store whose sessions expire after ttl
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryItem),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Save implements Store
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	if s.Token == "" {
		s.Token = newToken()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = m.now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[s.Token] = memoryItem{session: *s, expiresAt: m.now().Add(m.ttl)}
	return nil
}

// Get implements Store
func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[token]
	if !ok {
		return nil, ErrNotFound
	}
	if m.now().After(item.expiresAt) {
		delete(m.items, token)
		return nil, ErrNotFound
	}
	s := item.session
	return &s, nil
}

// Delete implements Store
func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, token)
	return nil
}
