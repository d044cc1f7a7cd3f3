// Package response provides standardized HTTP response formatting for
// middleware-level errors that never reach an API handler.
package response

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"

	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
)

// Body is the error envelope every endpoint uses: a machine-readable code
// under "error" and a human-readable message.
type Body struct {
	Error   domainerrors.Code `json:"error"`
	Message string            `json:"message"`
}

// Error writes an error response with the given status, code and message.
func Error(w http.ResponseWriter, status int, code domainerrors.Code, message string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.MarshalWrite(w, Body{Error: code, Message: message}); err != nil {
		if logger != nil {
			logger.Error("Failed to encode error response", "error", err)
		}
	}
}

// DomainError writes a domain error using its own status code mapping.
func DomainError(w http.ResponseWriter, err *domainerrors.Error, logger *slog.Logger) {
	Error(w, err.HTTPStatus(), err.Code, err.Message, logger)
}

// TooManyRequests writes a 429 response.
func TooManyRequests(w http.ResponseWriter, logger *slog.Logger) {
	Error(w, http.StatusTooManyRequests, domainerrors.CodeTooManyRequests, "too many requests", logger)
}

// MethodNotAllowed writes a 405 response.
func MethodNotAllowed(w http.ResponseWriter, logger *slog.Logger) {
	Error(w, http.StatusMethodNotAllowed, domainerrors.CodeMethodNotAllowed, "method not allowed", logger)
}

// InternalServerError writes a 500 response without leaking internals.
func InternalServerError(w http.ResponseWriter, logger *slog.Logger) {
	Error(w, http.StatusInternalServerError, domainerrors.CodeInternal, "internal server error", logger)
}
