// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logging returns a middleware that logs HTTP requests. Failed requests
// are logged at warn level, server errors at error level.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				level := slog.LevelInfo
				switch {
				case ww.Status() >= http.StatusInternalServerError:
					level = slog.LevelError
				case ww.Status() >= http.StatusBadRequest:
					level = slog.LevelWarn
				}
				logger.LogAttrs(r.Context(), level, "request completed",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("correlation_id", GetCorrelationID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Int64("duration_ms", time.Since(start).Milliseconds()),
					slog.String("remote_addr", r.RemoteAddr),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
