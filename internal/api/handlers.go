package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/askern/polycipher/pkg/attack"
	"github.com/askern/polycipher/pkg/errors"
	"github.com/askern/polycipher/pkg/geometry"
	"github.com/askern/polycipher/pkg/observability"
	"github.com/askern/polycipher/pkg/render"
	"github.com/askern/polycipher/pkg/scoring"
)

// =============================================================================
// Stateless engine endpoints
// =============================================================================

type chainRequest struct {
	Plaintext string     `json:"plaintext"`
	Chain     []NodeSpec `json:"chain"`
}

type encryptResponse struct {
	Ciphertext string   `json:"ciphertext"`
	Steps      []string `json:"steps"`
}

func (s *Server) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	var req chainRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidatePlaintext(req.Plaintext); err != nil {
		writeError(w, err)
		return
	}
	p, err := buildPipeline(r.Context(), req.Chain)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	ciphertext := p.Encrypt(req.Plaintext)
	observability.Engine().OnEncrypt(r.Context(), p.Len(), len(req.Plaintext), time.Since(start))

	writeJSON(w, http.StatusOK, encryptResponse{
		Ciphertext: ciphertext,
		Steps:      p.Describe(),
	})
}

type scoreResponse struct {
	Ciphertext string            `json:"ciphertext"`
	Breakdown  scoring.Breakdown `json:"breakdown"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req chainRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidatePlaintext(req.Plaintext); err != nil {
		writeError(w, err)
		return
	}
	p, err := buildPipeline(r.Context(), req.Chain)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	ciphertext := p.Encrypt(req.Plaintext)
	breakdown := scoring.Evaluate(req.Plaintext, ciphertext, p)
	observability.Engine().OnScore(r.Context(), breakdown.Final, time.Since(start))

	writeJSON(w, http.StatusOK, scoreResponse{
		Ciphertext: ciphertext,
		Breakdown:  breakdown,
	})
}

type attackResponse struct {
	Ciphertext string        `json:"ciphertext"`
	Report     attack.Report `json:"report"`
	Patterns   []string      `json:"patterns,omitempty"`
}

func (s *Server) handleAttack(w http.ResponseWriter, r *http.Request) {
	var req chainRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidatePlaintext(req.Plaintext); err != nil {
		writeError(w, err)
		return
	}
	p, err := buildPipeline(r.Context(), req.Chain)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	ciphertext := p.Encrypt(req.Plaintext)
	report := attack.RunAttacks(req.Plaintext, ciphertext, p)
	observability.Engine().OnAttack(r.Context(), report.TotalPenalty, time.Since(start))

	writeJSON(w, http.StatusOK, attackResponse{
		Ciphertext: ciphertext,
		Report:     report,
		Patterns:   attack.DetectPatterns(ciphertext),
	})
}

// =============================================================================
// Polygon validation
// =============================================================================

type validatePolygonRequest struct {
	Vertices []geometry.Point `json:"vertices"`
}

type validatePolygonResponse struct {
	Valid    bool               `json:"valid"`
	Reason   string             `json:"reason,omitempty"`
	Analysis *geometry.Analysis `json:"analysis,omitempty"`
}

func (s *Server) handleValidatePolygon(w http.ResponseWriter, r *http.Request) {
	var req validatePolygonRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result := geometry.Validate(req.Vertices)
	resp := validatePolygonResponse{Valid: result.Valid, Reason: result.Reason}
	if result.Valid {
		analysis := geometry.Analyze(req.Vertices)
		resp.Analysis = &analysis
	} else {
		observability.Engine().OnPolygonRejected(r.Context(), result.Reason)
	}

	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Visualization
// =============================================================================

type visualizeRequest struct {
	Chain    []NodeSpec `json:"chain"`
	Format   string     `json:"format,omitempty"` // dot (default), svg, png
	Detailed bool       `json:"detailed,omitempty"`
}

func (s *Server) handleVisualize(w http.ResponseWriter, r *http.Request) {
	var req visualizeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	p, err := buildPipeline(r.Context(), req.Chain)
	if err != nil {
		writeError(w, err)
		return
	}

	dot := render.ToDOT(p, render.Options{Detailed: req.Detailed})

	switch strings.ToLower(req.Format) {
	case "", "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(dot))
	case "svg":
		svg, err := render.SVG(dot)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render SVG"))
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(svg)
	case "png":
		png, err := render.PNG(dot)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render PNG"))
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	default:
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want dot, svg, or png)", req.Format))
	}
}

// =============================================================================
// Levels
// =============================================================================

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"levels": s.levels.Levels})
}
