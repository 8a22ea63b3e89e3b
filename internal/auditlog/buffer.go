// Package auditlog keeps a capped in-memory buffer of structured log
// entries, mirroring every record the service logger emits. Admins can
// query, export, and clear it over HTTP.
package auditlog

import (
	"sync"
	"time"
)

// MaxEntries is the buffer capacity. When full, the oldest entries are
// dropped so the newest MaxEntries are always retained.
const MaxEntries = 1000

// Log levels as stored in entries.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Entry is one captured log record.
type Entry struct {
	Timestamp time.Time         `json:"timestamp"`
	Level     string            `json:"level"`
	Message   string            `json:"message"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Filter narrows a buffer query. Zero-valued fields are ignored.
type Filter struct {
	Level  string
	Module string
	From   time.Time
	To     time.Time
}

// Buffer is a fixed-capacity ring of log entries, oldest first.
type Buffer struct {
	mu      sync.RWMutex
	entries []Entry
	head    int
	size    int
	cap     int
}

// NewBuffer creates a buffer with the given capacity; non-positive values
// fall back to MaxEntries.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = MaxEntries
	}
	return &Buffer{
		entries: make([]Entry, capacity),
		cap:     capacity,
	}
}

// Append adds an entry, evicting the oldest when the buffer is full.
func (b *Buffer) Append(e Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := (b.head + b.size) % b.cap
	b.entries[idx] = e
	if b.size < b.cap {
		b.size++
	} else {
		b.head = (b.head + 1) % b.cap
	}
}

// Len returns the number of retained entries.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// Entries returns all retained entries, oldest first.
func (b *Buffer) Entries() []Entry {
	return b.Query(Filter{})
}

// Query returns retained entries matching the filter, oldest first. Level
// and Module match exactly; From and To bound the timestamp inclusively.
func (b *Buffer) Query(f Filter) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Entry, 0, b.size)
	for i := 0; i < b.size; i++ {
		e := b.entries[(b.head+i)%b.cap]
		if f.Level != "" && e.Level != f.Level {
			continue
		}
		if f.Module != "" && e.Metadata["module"] != f.Module {
			continue
		}
		if !f.From.IsZero() && e.Timestamp.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && e.Timestamp.After(f.To) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Clear discards all retained entries.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.head = 0
	b.size = 0
}
