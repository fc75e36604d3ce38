package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
)

// componentKey is rendered as a bracketed prefix instead of a key=value pair.
const componentKey = "component"

// TerminalHandler formats log records as coloured terminal output.
//
// Output format:
//
//	15:04:05.000 INF [api] request completed status=200 path=/AntigoneApp/lines/1
type TerminalHandler struct {
	writer    io.Writer
	level     slog.Leveler
	component string
	attrs     []slog.Attr
	groups    []string
	mu        *sync.Mutex
}

func newTerminalHandler(w io.Writer, opts *slog.HandlerOptions) *TerminalHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &TerminalHandler{
		writer: w,
		level:  level,
		mu:     &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats a log record and writes it as one line.
func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.Grow(256)

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(ansiDim)
	buf.WriteString(ts.Format("15:04:05.000"))
	buf.WriteString(ansiReset)
	buf.WriteByte(' ')

	color, label := levelStyle(r.Level)
	buf.WriteString(color)
	buf.WriteString(label)
	buf.WriteString(ansiReset)
	buf.WriteByte(' ')

	component := h.component
	var recordAttrs []slog.Attr
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == componentKey && len(h.groups) == 0 {
			component = a.Value.String()
			return true
		}
		recordAttrs = append(recordAttrs, a)
		return true
	})

	if component != "" {
		buf.WriteString(ansiBlue)
		buf.WriteByte('[')
		buf.WriteString(component)
		buf.WriteByte(']')
		buf.WriteString(ansiReset)
		buf.WriteByte(' ')
	}

	buf.WriteString(ansiBold)
	buf.WriteString(r.Message)
	buf.WriteString(ansiReset)

	for _, a := range h.attrs {
		appendAttr(&buf, a, nil)
	}
	for _, a := range recordAttrs {
		appendAttr(&buf, a, h.groups)
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

// WithAttrs returns a new handler whose attributes consist of both the
// existing attributes and attrs.
func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		if a.Key == componentKey && len(h.groups) == 0 {
			next.component = a.Value.String()
			continue
		}
		next.attrs = append(next.attrs, qualify(a, h.groups))
	}
	return next
}

// WithGroup returns a new handler with the given group name prepended to
// subsequent attribute keys.
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.groups = append(next.groups, name)
	return next
}

func (h *TerminalHandler) clone() *TerminalHandler {
	return &TerminalHandler{
		writer:    h.writer,
		level:     h.level,
		component: h.component,
		attrs:     append([]slog.Attr(nil), h.attrs...),
		groups:    append([]string(nil), h.groups...),
		mu:        h.mu,
	}
}

// qualify folds the open groups into the attribute key so attributes added
// before a later WithGroup keep their original prefix.
func qualify(a slog.Attr, groups []string) slog.Attr {
	if len(groups) == 0 {
		return a
	}
	return slog.Any(strings.Join(groups, ".")+"."+a.Key, a.Value)
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level < slog.LevelInfo:
		return ansiCyan, "DBG"
	case level < slog.LevelWarn:
		return ansiGreen, "INF"
	case level < slog.LevelError:
		return ansiYellow, "WRN"
	default:
		return ansiRed, "ERR"
	}
}

func appendAttr(buf *bytes.Buffer, a slog.Attr, groups []string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			appendAttr(buf, ga, prefix)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(ansiDim)
	for _, g := range groups {
		buf.WriteString(g)
		buf.WriteByte('.')
	}
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	buf.WriteString(ansiReset)
	buf.WriteString(formatAttrValue(a.Value))
}

func formatAttrValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"\\") {
			return fmt.Sprintf("%q", s)
		}
		return s
	case slog.KindDuration:
		return v.Duration().Round(time.Microsecond).String()
	default:
		return v.String()
	}
}
