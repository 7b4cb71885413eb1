// Package trace implements the event trace ring buffer and the pure state
// validator (spec.md C8). Both are read-only observers: the trace records
// what the reducer did, the validator checks what the reducer left behind.
package trace

import (
	"github.com/adereth/ttwm/internal/layout"
)

// EventType names the kind of transition recorded in an Entry.
type EventType string

const (
	EventDisplay         EventType = "display"
	EventCommand         EventType = "command"
	EventFocusChanged    EventType = "focus-changed"
	EventTabSwitched     EventType = "tab-switched"
	EventFrameSplit      EventType = "frame-split"
	EventSplitResized    EventType = "split-resized"
	EventWindowMoved     EventType = "window-moved"
	EventFrameRemoved    EventType = "frame-removed"
	EventWindowManaged   EventType = "window-managed"
	EventWindowUnmanaged EventType = "window-unmanaged"
)

// Entry is one trace record (spec.md §4.8).
type Entry struct {
	Sequence    uint64               `json:"sequence"`
	TimestampMs int64                `json:"timestamp_ms"`
	EventType   EventType            `json:"event_type"`
	Window      *layout.WindowHandle `json:"window,omitempty"`
	Details     string               `json:"details,omitempty"`
}

// Ring is a fixed-capacity ring buffer of Entry, overwriting the oldest
// entry once full.
type Ring struct {
	buf      []Entry
	start    int
	len      int
	sequence uint64
}

// NewRing returns a ring buffer with room for capacity entries.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring{buf: make([]Entry, capacity)}
}

// Append records a new entry, stamping it with the next sequence number.
// nowMs is supplied by the caller (the reducer's clock), never read from
// the wall clock here, so the trace stays deterministic under replay.
func (r *Ring) Append(nowMs int64, typ EventType, window *layout.WindowHandle, details string) Entry {
	e := Entry{Sequence: r.sequence, TimestampMs: nowMs, EventType: typ, Window: window, Details: details}
	r.sequence++

	idx := (r.start + r.len) % len(r.buf)
	r.buf[idx] = e
	if r.len < len(r.buf) {
		r.len++
	} else {
		r.start = (r.start + 1) % len(r.buf)
	}
	return e
}

// Last returns the most recent n entries, oldest first. n <= 0 or n greater
// than the buffer's length returns everything available.
func (r *Ring) Last(n int) []Entry {
	if n <= 0 || n > r.len {
		n = r.len
	}
	out := make([]Entry, n)
	first := r.len - n
	for i := 0; i < n; i++ {
		out[i] = r.buf[(r.start+first+i)%len(r.buf)]
	}
	return out
}

// Len returns the number of entries currently held.
func (r *Ring) Len() int { return r.len }
