// README: Session store contract and the in-memory implementation.
package planner

import (
	"context"
	"sync"
)

// Store owns session state. Callers never retain references across calls;
// implementations hand out copies. The service layer serializes mutations
// per session id, so implementations only need to be safe for concurrent
// access, not to order competing writers.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	AppendTurn(ctx context.Context, id string, role Role, content string) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process memory. This is the default backend:
// sessions expire with the process and carry no durability guarantee.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = copySession(s)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return copySession(s), nil
}

func (m *MemoryStore) AppendTurn(_ context.Context, id string, role Role, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.History = append(s.History, Turn{Role: role, Content: content})
	if role == RoleAssistant {
		s.CurrentItinerary = content
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// copySession clones s including its history so store-owned state is never
// aliased by callers.
func copySession(s *Session) *Session {
	out := *s
	out.History = make([]Turn, len(s.History))
	copy(out.History, s.History)
	return &out
}
