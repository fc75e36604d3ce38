package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// slogGormLogger adapts slog to GORM's logger.Interface. Every query is
// emitted at debug level; level filtering is left to the slog handler, and
// the SQL string is only formatted when debug is enabled.
type slogGormLogger struct {
	logger *slog.Logger
}

func newGormLogger(l *slog.Logger) slogGormLogger {
	return slogGormLogger{logger: l}
}

func (l slogGormLogger) log() *slog.Logger {
	if l.logger == nil {
		return slog.Default()
	}
	return l.logger
}

// LogMode is a no-op; level filtering is handled by slog.
func (l slogGormLogger) LogMode(logger.LogLevel) logger.Interface { return l }

// Info logs informational messages from GORM.
func (l slogGormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log().InfoContext(ctx, fmt.Sprintf(msg, args...))
}

// Warn logs warning messages from GORM.
func (l slogGormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log().WarnContext(ctx, fmt.Sprintf(msg, args...))
}

// Error logs error messages from GORM.
func (l slogGormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log().ErrorContext(ctx, fmt.Sprintf(msg, args...))
}

// maxSQLLength is the longest SQL string logged before truncation.
const maxSQLLength = 200

// truncateSQL shortens a SQL string, replacing the middle with "...".
func truncateSQL(sql string) string {
	if len(sql) <= maxSQLLength {
		return sql
	}
	half := (maxSQLLength - 3) / 2
	return sql[:half] + "..." + sql[len(sql)-half:]
}

// Trace is called by GORM after every SQL operation. ErrRecordNotFound is
// the normal "no rows" result of First and is logged with successful queries.
func (l slogGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	log := l.log()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, context.Canceled) {
		sql, rows := fc()
		log.ErrorContext(ctx, "gorm query error",
			"sql", truncateSQL(sql),
			"rows", rows,
			"duration", elapsed,
			"error", err,
		)
		return
	}

	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	sql, rows := fc()
	log.DebugContext(ctx, "gorm query",
		"sql", truncateSQL(sql),
		"rows", rows,
		"duration", elapsed,
	)
}
