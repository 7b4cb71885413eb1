// Package registry implements the window registry (spec.md C4): the single
// source of truth for per-window metadata. The layout tree only ever stores
// bare handles; everything else about a window lives here.
package registry

import (
	"encoding/json"

	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
)

// Placement describes where a window currently lives: tiled in a frame, or
// floating with its own geometry.
type Placement uint8

const (
	PlacementTiled Placement = iota
	PlacementFloating
)

func (p Placement) String() string {
	if p == PlacementFloating {
		return "floating"
	}
	return "tiled"
}

func (p Placement) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Entry is a WindowEntry (spec.md §3).
type Entry struct {
	Handle           layout.WindowHandle `json:"handle"`
	WorkspaceIndex   int                 `json:"workspace_index"`
	Placement        Placement           `json:"placement"`
	Frame            layout.NodeId       `json:"frame"`      // valid when Placement == PlacementTiled
	FloatGeom        geom.Rect           `json:"float_geom"` // valid when Placement == PlacementFloating
	Title            string              `json:"title"`
	ClassInstance    string              `json:"class_instance,omitempty"`
	IconARGB         []uint32            `json:"-"`
	OverrideRedirect bool                `json:"override_redirect,omitempty"`
	MinW, MinH       int32               `json:"-"`
	MaxW, MaxH       int32               `json:"-"`
	Urgent           bool                `json:"urgent"`
}

// FixedSize reports whether the window's min/max size hints pin it to a
// single size.
func (e *Entry) FixedSize() bool {
	return e.MinW > 0 && e.MinW == e.MaxW && e.MinH > 0 && e.MinH == e.MaxH
}

// Registry maps window handles to their managed metadata.
type Registry struct {
	entries map[layout.WindowHandle]*Entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[layout.WindowHandle]*Entry)}
}

// Add inserts a new entry for handle, overwriting any existing one.
func (r *Registry) Add(e *Entry) {
	r.entries[e.Handle] = e
}

// Get returns the entry for handle, if managed.
func (r *Registry) Get(handle layout.WindowHandle) (*Entry, bool) {
	e, ok := r.entries[handle]
	return e, ok
}

// Remove deletes the entry for handle.
func (r *Registry) Remove(handle layout.WindowHandle) {
	delete(r.entries, handle)
}

// All returns every managed entry. Order is unspecified.
func (r *Registry) All() []*Entry {
	out := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out
}

// Count returns the number of managed windows.
func (r *Registry) Count() int { return len(r.entries) }

// SetTitle updates an entry's title, returning false if the window isn't
// managed.
func (r *Registry) SetTitle(handle layout.WindowHandle, title string) bool {
	e, ok := r.entries[handle]
	if !ok {
		return false
	}
	e.Title = title
	return true
}

// SetClass updates an entry's class/instance string.
func (r *Registry) SetClass(handle layout.WindowHandle, class string) bool {
	e, ok := r.entries[handle]
	if !ok {
		return false
	}
	e.ClassInstance = class
	return true
}

// SetIcon updates an entry's icon pixel data.
func (r *Registry) SetIcon(handle layout.WindowHandle, argb []uint32) bool {
	e, ok := r.entries[handle]
	if !ok {
		return false
	}
	e.IconARGB = argb
	return true
}

// SetUrgent flags or clears a window's urgency bit.
func (r *Registry) SetUrgent(handle layout.WindowHandle, urgent bool) bool {
	e, ok := r.entries[handle]
	if !ok {
		return false
	}
	e.Urgent = urgent
	return true
}

// Floating returns every currently floating window, in registry iteration
// order (callers needing a stable order should sort by handle).
func (r *Registry) Floating() []*Entry {
	var out []*Entry
	for _, e := range r.entries {
		if e.Placement == PlacementFloating {
			out = append(out, e)
		}
	}
	return out
}

// UrgentQueue is the FIFO of urgent window handles (spec.md §3). Insertion
// order is preserved; a handle is never queued twice.
type UrgentQueue struct {
	order []layout.WindowHandle
	set   map[layout.WindowHandle]bool
}

// NewUrgentQueue returns an empty urgent queue.
func NewUrgentQueue() *UrgentQueue {
	return &UrgentQueue{set: make(map[layout.WindowHandle]bool)}
}

// Push appends handle to the queue unless it is already present.
func (q *UrgentQueue) Push(handle layout.WindowHandle) {
	if q.set[handle] {
		return
	}
	q.set[handle] = true
	q.order = append(q.order, handle)
}

// Remove drops handle from the queue, if present.
func (q *UrgentQueue) Remove(handle layout.WindowHandle) {
	if !q.set[handle] {
		return
	}
	delete(q.set, handle)
	for i, h := range q.order {
		if h == handle {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
}

// Front returns the oldest urgent handle, if any.
func (q *UrgentQueue) Front() (layout.WindowHandle, bool) {
	if len(q.order) == 0 {
		return 0, false
	}
	return q.order[0], true
}

// All returns the urgent queue contents in FIFO order.
func (q *UrgentQueue) All() []layout.WindowHandle {
	out := make([]layout.WindowHandle, len(q.order))
	copy(out, q.order)
	return out
}

// Len returns the number of urgent windows queued.
func (q *UrgentQueue) Len() int { return len(q.order) }

// TagSet is the set of windows marked for batch move (spec.md §3). Insertion
// order is preserved so move-tagged can move windows in the order they were
// tagged (spec.md §4.5.5).
type TagSet struct {
	order []layout.WindowHandle
	tags  map[layout.WindowHandle]bool
}

// NewTagSet returns an empty tag set.
func NewTagSet() *TagSet {
	return &TagSet{tags: make(map[layout.WindowHandle]bool)}
}

// Toggle adds handle if absent, removes it if present. Returns the new
// tagged state.
func (s *TagSet) Toggle(handle layout.WindowHandle) bool {
	if s.tags[handle] {
		s.Untag(handle)
		return false
	}
	s.Tag(handle)
	return true
}

// Tag marks handle as tagged.
func (s *TagSet) Tag(handle layout.WindowHandle) {
	if s.tags[handle] {
		return
	}
	s.tags[handle] = true
	s.order = append(s.order, handle)
}

// Untag clears handle's tag.
func (s *TagSet) Untag(handle layout.WindowHandle) {
	if !s.tags[handle] {
		return
	}
	delete(s.tags, handle)
	for i, h := range s.order {
		if h == handle {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Has reports whether handle is tagged.
func (s *TagSet) Has(handle layout.WindowHandle) bool { return s.tags[handle] }

// All returns every tagged handle in the order it was tagged.
func (s *TagSet) All() []layout.WindowHandle {
	out := make([]layout.WindowHandle, len(s.order))
	copy(out, s.order)
	return out
}

// Clear empties the tag set.
func (s *TagSet) Clear() {
	s.tags = make(map[layout.WindowHandle]bool)
	s.order = nil
}

// Len returns the number of tagged windows.
func (s *TagSet) Len() int { return len(s.order) }
