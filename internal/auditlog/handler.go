package auditlog

import (
	"context"
	"log/slog"
)

// Handler is an slog.Handler that captures records into a Buffer. It is
// meant to be teed with the primary JSON handler via logger.NewWithHandlers
// so every structured log also lands in the audit buffer.
type Handler struct {
	buffer *Buffer
	level  slog.Level
	attrs  []slog.Attr
}

// NewHandler creates a handler capturing records at or above level.
func NewHandler(buffer *Buffer, level slog.Level) *Handler {
	return &Handler{buffer: buffer, level: level}
}

// Enabled reports whether records at the given level are captured.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle appends the record to the buffer. Attrs become string metadata.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	metadata := make(map[string]string, record.NumAttrs()+len(h.attrs))
	for _, attr := range h.attrs {
		metadata[attr.Key] = attr.Value.String()
	}
	record.Attrs(func(attr slog.Attr) bool {
		metadata[attr.Key] = attr.Value.String()
		return true
	})

	h.buffer.Append(Entry{
		Timestamp: record.Time.UTC(),
		Level:     levelString(record.Level),
		Message:   record.Message,
		Metadata:  metadata,
	})
	return nil
}

// WithAttrs returns a handler whose captured entries include the attrs.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{buffer: h.buffer, level: h.level, attrs: merged}
}

// WithGroup is accepted but flattened: audit metadata stays a single map.
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

func levelString(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}
