package http

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	codeInvalidJSON      = "INVALID_JSON"
	codeInvalidInput     = "INVALID_INPUT"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codeNotFound         = "NOT_FOUND"
	codeRateLimited      = "RATE_LIMITED"
	codeInternal         = "INTERNAL_ERROR"
)

// Meta holds metadata for every API response.
type Meta struct {
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
}

// Error represents a structured API error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Envelope is the standard API response wrapper.
type Envelope struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
	Meta  Meta   `json:"meta"`
}

func newMeta(requestID string) Meta {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return Meta{
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// writeJSON encodes env before touching the response, so an unencodable
// payload becomes a 500 envelope instead of a bare status line.
func writeJSON(w http.ResponseWriter, status int, env Envelope) {
	body, err := json.Marshal(env)
	if err != nil {
		log.Error().Err(err).Str("requestId", env.Meta.RequestID).Msg("failed to encode response")
		status = http.StatusInternalServerError
		body, err = json.Marshal(Envelope{
			Error: &Error{Code: codeInternal, Message: "failed to encode response"},
			Meta:  env.Meta,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Debug().Err(err).Str("requestId", env.Meta.RequestID).Msg("failed to write response")
	}
}

func writeSuccess(w http.ResponseWriter, status int, data any, requestID string) {
	writeJSON(w, status, Envelope{Data: data, Meta: newMeta(requestID)})
}

func writeError(w http.ResponseWriter, status int, code, message, requestID string) {
	writeJSON(w, status, Envelope{
		Error: &Error{Code: code, Message: message},
		Meta:  newMeta(requestID),
	})
}
