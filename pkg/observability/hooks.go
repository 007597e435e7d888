// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about cipher-engine operations and session lifecycle.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    // ... run application
//	}
//
// Drivers call hooks to emit events:
//
//	start := time.Now()
//	ciphertext := p.Encrypt(plaintext)
//	observability.Engine().OnEncrypt(ctx, p.Len(), len(plaintext), time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the cipher engine drivers.
type EngineHooks interface {
	// OnEncrypt records a pipeline encryption: node count, input length,
	// and elapsed time.
	OnEncrypt(ctx context.Context, nodes, textLen int, duration time.Duration)

	// OnScore records a scoring run and its final score.
	OnScore(ctx context.Context, finalScore float64, duration time.Duration)

	// OnAttack records an attack simulation and its total penalty.
	OnAttack(ctx context.Context, totalPenalty int, duration time.Duration)

	// OnPolygonRejected records a vertex list that failed validation.
	OnPolygonRejected(ctx context.Context, reason string)
}

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from session lifecycle operations.
type SessionHooks interface {
	// OnSessionCreate records a new session.
	OnSessionCreate(ctx context.Context, sessionID string)

	// OnSessionExpire records an expired session being reaped.
	OnSessionExpire(ctx context.Context, sessionID string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnEncrypt(context.Context, int, int, time.Duration) {}
func (NoopEngineHooks) OnScore(context.Context, float64, time.Duration)    {}
func (NoopEngineHooks) OnAttack(context.Context, int, time.Duration)       {}
func (NoopEngineHooks) OnPolygonRejected(context.Context, string)          {}

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnSessionCreate(context.Context, string) {}
func (NoopSessionHooks) OnSessionExpire(context.Context, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks  EngineHooks  = NoopEngineHooks{}
	sessionHooks SessionHooks = NoopSessionHooks{}
	hooksMu      sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any engine operations.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before any session operations.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	sessionHooks = NoopSessionHooks{}
}
