package api

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
	"github.com/shelfspace/shelfspace-server/internal/store"
)

// APIError is a custom error type that implements huma.StatusError.
// It maps domain errors to HTTP responses with consistent structure: the
// machine-readable code travels in the "error" field next to a human-readable
// message.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Code    string `json:"error" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		// Domain errors carry their own status and code.
		for _, err := range errs {
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				return &APIError{
					status:  domainErr.HTTPStatus(),
					Code:    string(domainErr.Code),
					Message: domainErr.Message,
					Details: domainErr.Details,
				}
			}

			// A store miss that escaped the service layer is still a 404.
			if errors.Is(err, store.ErrNotFound) {
				return &APIError{
					status:  http.StatusNotFound,
					Code:    string(domainerrors.CodeNotFound),
					Message: err.Error(),
				}
			}
		}

		// huma reports malformed or schema-invalid request bodies as 422;
		// the API contract calls those 400 INVALID_DATA.
		if status == http.StatusUnprocessableEntity {
			return &APIError{
				status:  http.StatusBadRequest,
				Code:    string(domainerrors.CodeInvalidData),
				Message: message,
				Details: errorMessages(errs),
			}
		}

		return &APIError{
			status:  status,
			Code:    statusToCode(status),
			Message: message,
		}
	}
}

// errorMessages flattens error values into strings for the details field.
func errorMessages(errs []error) any {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return msgs
}

// statusToCode maps HTTP status codes to domain error codes.
func statusToCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(domainerrors.CodeInvalidData)
	case http.StatusUnauthorized:
		return string(domainerrors.CodeUnauthorized)
	case http.StatusForbidden:
		return string(domainerrors.CodeAccessDenied)
	case http.StatusNotFound:
		return string(domainerrors.CodeNotFound)
	case http.StatusMethodNotAllowed:
		return string(domainerrors.CodeMethodNotAllowed)
	case http.StatusConflict:
		return string(domainerrors.CodeQuotaExceeded)
	case http.StatusTooManyRequests:
		return string(domainerrors.CodeTooManyRequests)
	default:
		return string(domainerrors.CodeInternal)
	}
}
