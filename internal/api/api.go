// Package api implements the PolyCipher HTTP API.
//
// The API exposes the cipher engine over JSON: stateless endpoints for
// encrypting, scoring, and attacking a chain supplied in the request, and
// session endpoints that hold a pipeline server-side while a player builds
// it up node by node against a level's budgets.
//
// # Endpoints
//
//	POST   /v1/encrypt                  encrypt plaintext with a chain
//	POST   /v1/score                    score a chain against a plaintext
//	POST   /v1/attack                   run attack simulations on a chain
//	POST   /v1/polygon/validate         validate polygon vertices
//	POST   /v1/visualize                render a chain as DOT, SVG, or PNG
//	GET    /v1/levels                   list difficulty levels
//	POST   /v1/sessions                 start a play session
//	GET    /v1/sessions/{id}            inspect a session
//	DELETE /v1/sessions/{id}            abandon a session
//	POST   /v1/sessions/{id}/nodes      append a node to the session chain
//	DELETE /v1/sessions/{id}/nodes/{i}  remove a node by index
//	POST   /v1/sessions/{id}/submit     score the chain against the level
//
// Errors are returned as JSON objects with a machine-readable code:
//
//	{"error": {"code": "INVALID_POLYGON", "message": "polygon too small"}}
package api

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/askern/polycipher/pkg/level"
	"github.com/askern/polycipher/pkg/session"
)

// Server wires the cipher engine to an HTTP router.
type Server struct {
	router   chi.Router
	store    session.Store
	levels   *level.Set
	logger   *log.Logger
	ttl      time.Duration
	randText func(choices []string) string
}

// Option customizes a Server.
type Option func(*Server)

// WithSessionTTL overrides the session lifetime (default session.DefaultTTL).
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) { s.ttl = ttl }
}

// WithLevels overrides the level set (default level.Defaults()).
func WithLevels(set *level.Set) Option {
	return func(s *Server) { s.levels = set }
}

// NewServer creates a server backed by the given session store.
func NewServer(store session.Store, logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		store:  store,
		levels: level.Defaults(),
		logger: logger,
		ttl:    session.DefaultTTL,
		randText: func(choices []string) string {
			return choices[rand.Intn(len(choices))]
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/encrypt", s.handleEncrypt)
		r.Post("/score", s.handleScore)
		r.Post("/attack", s.handleAttack)
		r.Post("/polygon/validate", s.handleValidatePolygon)
		r.Post("/visualize", s.handleVisualize)
		r.Get("/levels", s.handleLevels)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDeleteSession)
				r.Post("/nodes", s.handleAddNode)
				r.Delete("/nodes/{index}", s.handleRemoveNode)
				r.Post("/submit", s.handleSubmit)
			})
		})
	})

	s.router = r
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// logRequests logs each request with method, path, status, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
