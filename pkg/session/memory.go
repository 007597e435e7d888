package session

import (
	"context"
	"sync"

	"github.com/askern/polycipher/pkg/observability"
)

// MemoryStore is an in-memory Store guarded by a mutex. It is safe for
// concurrent use by the HTTP handlers.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
	}
}

// Get retrieves a session by ID. Expired sessions are removed on access
// so a dedicated Cleanup pass is an optimization, not a requirement.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	if sess.IsExpired() {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		observability.Session().OnSessionExpire(context.Background(), sessionID)
		return nil, ErrExpired
	}

	return sess, nil
}

// Set stores a session, replacing any existing session with the same ID.
func (s *MemoryStore) Set(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

// Delete removes a session. Deleting a missing session is a no-op.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Cleanup removes all expired sessions.
func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	var expired []string
	for id, sess := range s.sessions {
		if sess.IsExpired() {
			delete(s.sessions, id)
			expired = append(expired, id)
		}
	}
	s.mu.Unlock()

	for _, id := range expired {
		observability.Session().OnSessionExpire(ctx, id)
	}
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
