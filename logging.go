package i8080

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// LogHandler is a slog.Handler that writes one compact line per record:
// timestamp, level, message, then attrs in order. Grounded on
// rcornwell-S370's util/logger.LogHandler, trimmed to this module's
// needs (no separate debug-mirroring-to-stderr path).
type LogHandler struct {
	out io.Writer
	mu  *sync.Mutex
	min slog.Level
}

// NewLogHandler wraps out with the given minimum level.
func NewLogHandler(out io.Writer, min slog.Level) *LogHandler {
	return &LogHandler{out: out, mu: &sync.Mutex{}, min: min}
}

func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *LogHandler) Handle(_ context.Context, r slog.Record) error {
	parts := []string{
		r.Time.Format("2006/01/02 15:04:05"),
		r.Level.String() + ":",
		r.Message,
	}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.Key+"="+a.Value.String())
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, strings.Join(parts, " ")+"\n")
	return err
}
