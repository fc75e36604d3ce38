// Package log provides structured logging with request correlation.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/helixml/antigone/internal/config"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for logging.
const (
	CorrelationIDKey ContextKey = "correlation_id"
	RequestIDKey     ContextKey = "request_id"
)

// Logger wraps slog.Logger with context-aware helpers.
type Logger struct {
	handler slog.Handler
	logger  *slog.Logger
}

// NewLogger creates a Logger writing to stdout based on configuration.
func NewLogger(cfg config.AppConfig) *Logger {
	return NewLoggerWithWriter(os.Stdout, cfg.LogFormat(), cfg.LogLevel())
}

// NewLoggerWithWriter creates a Logger that writes to the specified writer.
func NewLoggerWithWriter(w io.Writer, format config.LogFormat, level string) *Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = newTerminalHandler(w, opts)
	}

	return &Logger{
		handler: handler,
		logger:  slog.New(handler),
	}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1})
	return &Logger{handler: handler, logger: slog.New(handler)}
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Handler returns the underlying slog.Handler.
func (l *Logger) Handler() slog.Handler {
	return l.handler
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// With returns a new Logger with additional attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		handler: l.handler,
		logger:  l.logger.With(args...),
	}
}

// Component returns a logger tagged with the emitting component.
func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}

// WithContext returns a logger carrying the correlation and request IDs
// found in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	attrs := make([]any, 0, 4)

	if corrID := CorrelationID(ctx); corrID != "" {
		attrs = append(attrs, "correlation_id", corrID)
	}
	if reqID := RequestID(ctx); reqID != "" {
		attrs = append(attrs, "request_id", reqID)
	}

	if len(attrs) == 0 {
		return l
	}
	return l.With(attrs...)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// DebugContext logs at debug level with context.
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.DebugContext(ctx, msg, args...)
}

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// InfoContext logs at info level with context.
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.InfoContext(ctx, msg, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// WarnContext logs at warn level with context.
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.WarnContext(ctx, msg, args...)
}

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// ErrorContext logs at error level with context.
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.ErrorContext(ctx, msg, args...)
}

// WithCorrelationID adds a correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// CorrelationID extracts the correlation ID from context.
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestID extracts the request ID from context.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// Configure builds a logger from configuration and installs it as the
// slog default.
func Configure(cfg config.AppConfig) *Logger {
	l := NewLogger(cfg)
	slog.SetDefault(l.logger)
	return l
}
