package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/askern/polycipher/pkg/attack"
	"github.com/askern/polycipher/pkg/errors"
	"github.com/askern/polycipher/pkg/observability"
	"github.com/askern/polycipher/pkg/scoring"
	"github.com/askern/polycipher/pkg/session"
)

// =============================================================================
// Session lifecycle
// =============================================================================

type createSessionRequest struct {
	Level int `json:"level"`
}

type sessionResponse struct {
	ID         string    `json:"id"`
	Level      int       `json:"level"`
	LevelName  string    `json:"level_name"`
	Plaintext  string    `json:"plaintext"`
	Ciphertext string    `json:"ciphertext"`
	Chain      []string  `json:"chain"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (s *Server) sessionResponse(sess *session.Session) sessionResponse {
	lvl, _ := s.levels.Get(sess.Level)
	return sessionResponse{
		ID:         sess.ID,
		Level:      sess.Level,
		LevelName:  lvl.Name,
		Plaintext:  sess.Plaintext,
		Ciphertext: sess.Pipeline.Encrypt(sess.Plaintext),
		Chain:      sess.Pipeline.Describe(),
		ExpiresAt:  sess.ExpiresAt,
	}
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	lvl, err := s.levels.Get(req.Level)
	if err != nil {
		writeError(w, err)
		return
	}

	sess := session.New(req.Level, s.randText(lvl.Plaintexts), s.ttl)
	if err := s.store.Set(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	observability.Session().OnSessionCreate(r.Context(), sess.ID)

	writeJSON(w, http.StatusCreated, s.sessionResponse(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.sessionResponse(sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Chain editing
// =============================================================================

func (s *Server) handleAddNode(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, err)
		return
	}
	lvl, err := s.levels.Get(sess.Level)
	if err != nil {
		writeError(w, err)
		return
	}

	var spec NodeSpec
	if err := decodeBody(r, &spec); err != nil {
		writeError(w, err)
		return
	}

	if err := lvl.CheckNodeBudget(sess.Pipeline.Len()); err != nil {
		writeError(w, err)
		return
	}
	if strings.EqualFold(spec.Type, "polygon") {
		if err := lvl.CheckVertexBudget(len(spec.Vertices)); err != nil {
			writeError(w, err)
			return
		}
	}

	node, err := buildNode(r.Context(), spec)
	if err != nil {
		writeError(w, err)
		return
	}
	sess.Pipeline.AddNode(node)

	if err := s.store.Set(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.sessionResponse(sess))
}

func (s *Server) handleRemoveNode(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, err)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "node index must be an integer"))
		return
	}
	if err := sess.Pipeline.RemoveNode(index); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeIndexOutOfRange, err, "remove node %d", index))
		return
	}

	if err := s.store.Set(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.sessionResponse(sess))
}

// =============================================================================
// Submission
// =============================================================================

type submitResponse struct {
	Session   sessionResponse   `json:"session"`
	Breakdown scoring.Breakdown `json:"breakdown"`
	Report    attack.Report     `json:"report"`
	Threshold float64           `json:"threshold"`
	Passed    bool              `json:"passed"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, err)
		return
	}
	lvl, err := s.levels.Get(sess.Level)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	ciphertext := sess.Pipeline.Encrypt(sess.Plaintext)
	breakdown := scoring.Evaluate(sess.Plaintext, ciphertext, sess.Pipeline)
	report := attack.RunAttacks(sess.Plaintext, ciphertext, sess.Pipeline)
	observability.Engine().OnScore(r.Context(), breakdown.Final, time.Since(start))

	writeJSON(w, http.StatusOK, submitResponse{
		Session:   s.sessionResponse(sess),
		Breakdown: breakdown,
		Report:    report,
		Threshold: lvl.PassThreshold,
		Passed:    scoring.CheckPass(breakdown.Final, lvl.PassThreshold),
	})
}
