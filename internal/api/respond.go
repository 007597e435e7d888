package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/askern/polycipher/pkg/errors"
	"github.com/askern/polycipher/pkg/session"
)

// errorBody is the JSON shape of all error responses.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to an HTTP status via its error code and writes
// the standard error body.
func writeError(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = string(codeFor(err))
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, statusFor(err), body)
}

func codeFor(err error) errors.Code {
	switch {
	case stderrors.Is(err, session.ErrNotFound):
		return errors.ErrCodeSessionNotFound
	case stderrors.Is(err, session.ErrExpired):
		return errors.ErrCodeSessionExpired
	}
	if code := errors.GetCode(err); code != "" {
		return code
	}
	return errors.ErrCodeInternal
}

func statusFor(err error) int {
	switch codeFor(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPolygon, errors.ErrCodeInvalidKey,
		errors.ErrCodeInvalidChain, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidLevel,
		errors.ErrCodeIndexOutOfRange:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case errors.ErrCodeSessionExpired:
		return http.StatusGone
	case errors.ErrCodeLevelLimit:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body, rejecting unknown fields so typos
// in client payloads fail loudly instead of silently doing nothing.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}
