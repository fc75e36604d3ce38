package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	ts := time.Date(2026, 1, 15, 10, 30, 45, 123000000, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "server started", 0)
	r.AddAttrs(slog.String("addr", "0.0.0.0:8080"))

	require.NoError(t, h.Handle(context.Background(), r))

	output := buf.String()
	assert.Contains(t, output, "10:30:45.123")
	assert.Contains(t, output, "INF")
	assert.Contains(t, output, "server started")
	assert.Contains(t, output, "addr=")
	assert.Contains(t, output, "0.0.0.0:8080")
	assert.True(t, strings.HasSuffix(output, "\n"))
}

func TestTerminalHandler_Component(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newTerminalHandler(&buf, nil))

	logger.With("component", "api").Info("request completed", "status", 200)

	output := buf.String()
	assert.Contains(t, output, "[api]")
	assert.NotContains(t, output, "component=")
	assert.Contains(t, output, "200")
}

func TestTerminalHandler_RecordComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newTerminalHandler(&buf, nil))

	logger.Info("imported", "component", "corpus", "rows", 3)

	assert.Contains(t, buf.String(), "[corpus]")
}

func TestTerminalHandler_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newTerminalHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("skipped")
	logger.Warn("careful")
	logger.Error("broken")

	output := buf.String()
	assert.NotContains(t, output, "skipped")
	assert.Contains(t, output, "WRN")
	assert.Contains(t, output, "ERR")
}

func TestTerminalHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newTerminalHandler(&buf, nil))

	logger.With("db", "sqlite").WithGroup("query").Info("slow", "rows", 4)

	output := buf.String()
	assert.Contains(t, output, "db=")
	assert.Contains(t, output, "query.rows=")
}

func TestTerminalHandler_QuotesStrings(t *testing.T) {
	assert.Equal(t, `"two words"`, formatAttrValue(slog.StringValue("two words")))
	assert.Equal(t, `""`, formatAttrValue(slog.StringValue("")))
	assert.Equal(t, "plain", formatAttrValue(slog.StringValue("plain")))
}
