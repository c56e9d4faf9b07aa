// Package respond writes JSON responses in the shape the frontend expects:
// success payloads as-is, failures as {"error": "..."}.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes a payload with the given status code.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	// Headers are already on the wire if encoding fails mid-stream.
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes an error body with the given status. The message goes to the
// client; err is logged server-side only, so internal detail never leaks.
func Error(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	logger := zerolog.Ctx(r.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Int("status", status).
		Str("path", r.URL.Path).
		Err(err).
		Msg(message)

	JSON(w, status, errorBody{Error: message})
}
