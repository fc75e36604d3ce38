package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/helixml/antigone/application/service"
	"github.com/helixml/antigone/infrastructure/api/v1/dto"
	"github.com/helixml/antigone/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &service.ValidationError{Message: "bad"}, http.StatusBadRequest},
		{"not found", &service.NotFoundError{Message: "gone"}, http.StatusNotFound},
		{"wrapped row", fmt.Errorf("form: %w", database.ErrNotFound), http.StatusNotFound},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	t.Run("client error exposes message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/lines/0", nil)
		WriteError(w, r, fmt.Errorf("wrapped: %w", &service.ValidationError{Message: "Invalid start line"}), logger)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body dto.Error
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Invalid start line", body.Error)
		assert.Empty(t, logs.String())
	})

	t.Run("server error hides message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/search", nil)
		WriteError(w, r, errors.New("connection refused"), logger)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
		assert.Contains(t, logs.String(), "connection refused")
		assert.Contains(t, logs.String(), `"msg":"request error"`)
	})
}

func TestCorrelationID(t *testing.T) {
	var seen string
	handler := chimiddleware.RequestID(CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCorrelationID(r.Context())
	})))

	t.Run("uses header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(CorrelationIDHeader, "abc-123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(CorrelationIDHeader))
	})

	t.Run("falls back to request id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(CorrelationIDHeader))
	})
}

func TestLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusNotFound, dto.Error{Error: "Word not found"})
	}))

	r := httptest.NewRequest(http.MethodGet, "/word-details/x", nil)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "/word-details/x", entry["path"])
}
