package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/helixml/antigone/application/service"
	"github.com/helixml/antigone/infrastructure/api/v1/dto"
	"github.com/helixml/antigone/internal/database"
)

// internalMessage is returned for errors that carry no client-safe message.
const internalMessage = "Internal server error"

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound), errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes an {"error": "..."} response. Validation and not-found
// errors expose their message; anything else is logged and reported as an
// internal error.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := StatusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = internalMessage
	}

	var validation *service.ValidationError
	var notFound *service.NotFoundError
	switch {
	case errors.As(err, &validation):
		message = validation.Message
	case errors.As(err, &notFound):
		message = notFound.Message
	}

	if logger != nil && status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request error",
			slog.String("correlation_id", GetCorrelationID(r.Context())),
			slog.Int("status", status),
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
	}

	WriteJSON(w, status, dto.Error{Error: message})
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
