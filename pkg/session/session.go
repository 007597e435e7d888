// Package session provides transient game-session state for PolyCipher
// drivers.
//
// A session holds everything one user's play-through needs: the current
// level, the plaintext being worked on, and the cipher pipeline under
// construction. Sessions are deliberately ephemeral - persistence is a
// non-goal of this system - so the only Store implementation is in-memory
// with TTL expiry. The Store interface keeps the shape a persistent backend
// would need, without shipping one.
//
// # Usage
//
//	store := session.NewMemoryStore()
//	sess := session.New(0, "ATTACK AT DAWN", session.DefaultTTL)
//	store.Set(ctx, sess)
//
//	sess, err := store.Get(ctx, sess.ID)
//	if err != nil {
//	    // session.ErrNotFound or session.ErrExpired
//	}
//	sess.Pipeline.AddNode(cipher.NewShift(3))
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/askern/polycipher/pkg/cipher"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("session not found")

	// ErrExpired is returned when a session has exceeded its TTL.
	ErrExpired = errors.New("session expired")
)

// DefaultTTL is the default session duration. Long enough for a full play
// session, short enough that abandoned pipelines do not pile up in memory.
const DefaultTTL = 2 * time.Hour

// Session is one user's transient play-through state. A session owns its
// pipeline exclusively; pipelines are never shared between sessions.
type Session struct {
	ID        string           `json:"id"`
	Level     int              `json:"level"`
	Plaintext string           `json:"plaintext"`
	Pipeline  *cipher.Pipeline `json:"-"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// New creates a session with a fresh pipeline and a random ID.
func New(level int, plaintext string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Level:     level,
		Plaintext: plaintext,
		Pipeline:  cipher.NewPipeline(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session doesn't exist and ErrExpired if
	// it exists but has exceeded its TTL.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, session *Session) error

	// Delete removes a session. Deleting a missing session is a no-op.
	Delete(ctx context.Context, sessionID string) error

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}
