package layout

import (
	"fmt"

	"github.com/adereth/ttwm/internal/geom"
)

// Tree is a single workspace's layout: an arena of frame/split nodes plus
// the currently focused frame.
type Tree struct {
	arena   []node
	free    []int
	root    NodeId
	focused NodeId
}

// New returns a tree with a single empty frame as root, focused on it.
func New() *Tree {
	t := &Tree{}
	root := t.alloc(node{kind: kindFrame, parent: Nil})
	t.root = root
	t.focused = root
	return t
}

func (t *Tree) alloc(n node) NodeId {
	for i, slot := range t.arena {
		if slot.kind == kindFree {
			gen := slot.gen + 1
			n.gen = gen
			t.arena[i] = n
			return NodeId{index: i, gen: gen}
		}
	}
	n.gen = 1
	t.arena = append(t.arena, n)
	return NodeId{index: len(t.arena) - 1, gen: 1}
}

func (t *Tree) free2(id NodeId) {
	if !t.valid(id) {
		return
	}
	t.arena[id.index] = node{kind: kindFree, gen: t.arena[id.index].gen}
}

func (t *Tree) valid(id NodeId) bool {
	return id.Valid() && id.index >= 0 && id.index < len(t.arena) && t.arena[id.index].gen == id.gen && t.arena[id.index].kind != kindFree
}

func (t *Tree) node(id NodeId) *node {
	if !t.valid(id) {
		return nil
	}
	return &t.arena[id.index]
}

// Root returns the root node's id.
func (t *Tree) Root() NodeId { return t.root }

// Focused returns the currently focused frame's id.
func (t *Tree) Focused() NodeId { return t.focused }

// IsFrame reports whether id names a live frame node.
func (t *Tree) IsFrame(id NodeId) bool {
	n := t.node(id)
	return n != nil && n.kind == kindFrame
}

// IsSplit reports whether id names a live split node.
func (t *Tree) IsSplit(id NodeId) bool {
	n := t.node(id)
	return n != nil && n.kind == kindSplit
}

// Parent returns id's parent, or Nil if id is the root or invalid.
func (t *Tree) Parent(id NodeId) NodeId {
	n := t.node(id)
	if n == nil {
		return Nil
	}
	return n.parent
}

// FrameWindows returns the tab list of the frame id, or nil if id is not a
// live frame.
func (t *Tree) FrameWindows(id NodeId) []WindowHandle {
	n := t.node(id)
	if n == nil || n.kind != kindFrame {
		return nil
	}
	return n.windows
}

// FocusedTab returns the focused tab index of frame id.
func (t *Tree) FocusedTab(id NodeId) int {
	n := t.node(id)
	if n == nil || n.kind != kindFrame {
		return 0
	}
	return n.focusedTab
}

// VerticalTabs reports whether frame id renders its tab bar vertically.
func (t *Tree) VerticalTabs(id NodeId) bool {
	n := t.node(id)
	return n != nil && n.kind == kindFrame && n.verticalTabs
}

// SetVerticalTabs toggles the vertical-tabs flag on frame id.
func (t *Tree) SetVerticalTabs(id NodeId, v bool) {
	if n := t.node(id); n != nil && n.kind == kindFrame {
		n.verticalTabs = v
	}
}

// SplitInfo returns the direction, ratio and children of split id.
func (t *Tree) SplitInfo(id NodeId) (dir geom.Orientation, ratio float64, first, second NodeId, ok bool) {
	n := t.node(id)
	if n == nil || n.kind != kindSplit {
		return 0, 0, Nil, Nil, false
	}
	return n.direction, n.ratio, n.first, n.second, true
}

// FocusedWindow returns the window under the focused tab of the focused
// frame, or false if the focused frame is empty.
func (t *Tree) FocusedWindow() (WindowHandle, bool) {
	n := t.node(t.focused)
	if n == nil || n.kind != kindFrame || len(n.windows) == 0 {
		return 0, false
	}
	return n.windows[n.focusedTab], true
}

// SetFocused sets the focused frame directly. It is a no-op if id is not a
// live frame.
func (t *Tree) SetFocused(id NodeId) {
	if t.IsFrame(id) {
		t.focused = id
	}
}

// AddWindow appends w to the focused frame's tab list and focuses the new
// tab. Returns an error if the focused node is not a frame (an internal
// invariant violation, not a user-facing condition).
func (t *Tree) AddWindow(w WindowHandle) error {
	n := t.node(t.focused)
	if n == nil || n.kind != kindFrame {
		return fmt.Errorf("layout: focused node %v is not a frame", t.focused)
	}
	n.windows = append(n.windows, w)
	n.focusedTab = len(n.windows) - 1
	return nil
}

// AddWindowToFrame appends w to the tab list of an arbitrary frame and
// focuses the new tab within that frame, without changing which frame is
// globally focused.
func (t *Tree) AddWindowToFrame(frame NodeId, w WindowHandle) error {
	n := t.node(frame)
	if n == nil || n.kind != kindFrame {
		return fmt.Errorf("layout: node %v is not a frame", frame)
	}
	n.windows = append(n.windows, w)
	n.focusedTab = len(n.windows) - 1
	return nil
}

// FindWindow returns the frame containing w, if any.
func (t *Tree) FindWindow(w WindowHandle) (NodeId, bool) {
	for i := range t.arena {
		if t.arena[i].kind != kindFrame {
			continue
		}
		for _, ww := range t.arena[i].windows {
			if ww == w {
				return NodeId{index: i, gen: t.arena[i].gen}, true
			}
		}
	}
	return Nil, false
}

// RemoveWindow removes w from whichever frame holds it. If that frame
// becomes empty and is non-root, it is pruned. Focus is kept on the
// surviving frame if it still exists, otherwise moved to the nearest
// remaining frame.
func (t *Tree) RemoveWindow(w WindowHandle) error {
	frame, ok := t.FindWindow(w)
	if !ok {
		return nil
	}
	n := t.node(frame)
	idx := -1
	for i, ww := range n.windows {
		if ww == w {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	n.windows = append(n.windows[:idx], n.windows[idx+1:]...)
	if n.focusedTab >= len(n.windows) {
		n.focusedTab = max(0, len(n.windows)-1)
	}

	wasFocused := t.focused == frame
	sibling := t.pruneIfEmpty(frame)
	if wasFocused && !t.IsFrame(t.focused) {
		if sibling != Nil {
			t.focused = t.firstFrame(sibling)
		} else {
			t.focused = t.firstFrame(t.root)
		}
	}
	return nil
}

// pruneIfEmpty implements the pruning rule: an empty non-root frame is
// removed, its parent split collapses to the surviving sibling, and focus
// recovery happens in the caller (RemoveWindow).
// It returns the surviving sibling's id, or Nil if no pruning happened -
// spec.md §4.2's focus recovery rule is "the surviving sibling's first
// in-order frame", not the whole tree's left-most frame, so the caller
// needs the sibling, not just a signal that pruning occurred.
func (t *Tree) pruneIfEmpty(frame NodeId) NodeId {
	n := t.node(frame)
	if n == nil || n.kind != kindFrame || len(n.windows) != 0 {
		return Nil
	}
	if frame == t.root {
		return Nil // rule 1: keep the root even if empty
	}
	parentId := n.parent
	parent := t.node(parentId)
	if parent == nil || parent.kind != kindSplit {
		return Nil
	}
	var sibling NodeId
	if parent.first == frame {
		sibling = parent.second
	} else {
		sibling = parent.first
	}
	grandparentId := parent.parent
	if grandparentId == Nil {
		t.root = sibling
	} else {
		gp := t.node(grandparentId)
		if gp.first == parentId {
			gp.first = sibling
		} else {
			gp.second = sibling
		}
	}
	if sib := t.node(sibling); sib != nil {
		sib.parent = grandparentId
	}
	t.free2(frame)
	t.free2(parentId)

	// The sibling subtree may itself now contain an empty frame that was
	// previously tolerated because it wasn't the sole frame; nothing further
	// to prune here since pruning only ever removes the frame that just went
	// empty and its immediate parent split.
	return sibling
}

// firstFrame returns the left-most (first, in tree order) frame reachable
// from id.
func (t *Tree) firstFrame(id NodeId) NodeId {
	n := t.node(id)
	if n == nil {
		return Nil
	}
	if n.kind == kindFrame {
		return id
	}
	if f := t.firstFrame(n.first); f.Valid() {
		return f
	}
	return t.firstFrame(n.second)
}

// SplitFocused replaces the focused frame with a split of direction dir and
// ratio 0.5, whose first child is the old frame and whose second child is a
// new empty frame. Focus moves to the new frame.
func (t *Tree) SplitFocused(dir geom.Orientation) (newFrame NodeId, err error) {
	old := t.focused
	oldNode := t.node(old)
	if oldNode == nil || oldNode.kind != kindFrame {
		return Nil, fmt.Errorf("layout: focused node %v is not a frame", old)
	}
	parentId := oldNode.parent

	newFrame = t.alloc(node{kind: kindFrame, parent: Nil})
	splitId := t.alloc(node{kind: kindSplit, direction: dir, ratio: 0.5, first: old, second: newFrame, parent: parentId})

	// re-fetch pointers: alloc may have reallocated/reused slots
	t.node(old).parent = splitId
	t.node(newFrame).parent = splitId

	if parentId == Nil {
		t.root = splitId
	} else {
		gp := t.node(parentId)
		if gp.first == old {
			gp.first = splitId
		} else {
			gp.second = splitId
		}
	}
	t.focused = newFrame
	return newFrame, nil
}

// CycleTab rotates the focused frame's focusedTab by delta (+1 or -1),
// modulo the window count.
func (t *Tree) CycleTab(delta int) {
	n := t.node(t.focused)
	if n == nil || n.kind != kindFrame || len(n.windows) == 0 {
		return
	}
	count := len(n.windows)
	n.focusedTab = ((n.focusedTab+delta)%count + count) % count
}

// FocusTab sets the focused frame's focusedTab to i, or no-ops if i is out
// of range.
func (t *Tree) FocusTab(i int) {
	n := t.node(t.focused)
	if n == nil || n.kind != kindFrame {
		return
	}
	if i >= 0 && i < len(n.windows) {
		n.focusedTab = i
	}
}

// FindFrameInDirection computes frame geometries over area and returns the
// frame strictly beyond `from` in direction dir with the smallest
// centre-to-centre distance, if any.
func (t *Tree) FindFrameInDirection(from NodeId, dir geom.Direction, area geom.Rect, gap int32) (NodeId, bool) {
	geoms := t.CalculateGeometries(area, gap)
	fromRect, ok := geoms[from]
	if !ok {
		return Nil, false
	}
	var best NodeId
	var bestDist int64 = -1
	for id, r := range geoms {
		if id == from || !t.IsFrame(id) {
			continue
		}
		if !geom.IsBeyond(fromRect, r, dir) {
			continue
		}
		d := geom.DistanceSq(fromRect, r)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = id
		}
	}
	if bestDist < 0 {
		return Nil, false
	}
	return best, true
}

// MoveWindowBetweenFrames removes the focused tab from the focused frame and
// appends it to the frame found in direction dir, if any. The moved window
// becomes the new focused tab of the target frame and focus follows it.
func (t *Tree) MoveWindowBetweenFrames(dir geom.Direction, area geom.Rect, gap int32) error {
	w, ok := t.FocusedWindow()
	if !ok {
		return nil
	}
	target, ok := t.FindFrameInDirection(t.focused, dir, area, gap)
	if !ok {
		return nil
	}
	if err := t.RemoveWindow(w); err != nil {
		return err
	}
	if err := t.AddWindowToFrame(target, w); err != nil {
		return err
	}
	t.focused = target
	return nil
}

// ResizeFocusedSplit walks up from the focused frame to the first ancestor
// split whose orientation matches axis, and clamps its ratio by delta.
func (t *Tree) ResizeFocusedSplit(axis geom.Orientation, delta float64) bool {
	id := t.focused
	for {
		n := t.node(id)
		if n == nil {
			return false
		}
		parentId := n.parent
		if parentId == Nil {
			return false
		}
		parent := t.node(parentId)
		if parent.direction == axis {
			parent.ratio = geom.ClampRatio(parent.ratio + delta)
			return true
		}
		id = parentId
	}
}

// SetSplitRatio directly sets split id's ratio, clamped to [0.1, 0.9].
// Used by drag-resize, which targets whichever split geometry the pointer
// landed on rather than walking up from the focused frame.
func (t *Tree) SetSplitRatio(id NodeId, ratio float64) bool {
	n := t.node(id)
	if n == nil || n.kind != kindSplit {
		return false
	}
	n.ratio = geom.ClampRatio(ratio)
	return true
}

// CalculateGeometries recursively partitions area using SplitRect and
// returns the rectangle assigned to every live node (splits and frames
// alike; frames are the leaves callers generally want).
func (t *Tree) CalculateGeometries(area geom.Rect, gap int32) map[NodeId]geom.Rect {
	out := make(map[NodeId]geom.Rect)
	t.calcInto(t.root, area, gap, out)
	return out
}

func (t *Tree) calcInto(id NodeId, area geom.Rect, gap int32, out map[NodeId]geom.Rect) {
	n := t.node(id)
	if n == nil {
		return
	}
	out[id] = area
	if n.kind == kindFrame {
		return
	}
	first, second := geom.SplitRect(area, n.direction, n.ratio, gap)
	t.calcInto(n.first, first, gap, out)
	t.calcInto(n.second, second, gap, out)
}

// Frames returns every live frame id in tree order.
func (t *Tree) Frames() []NodeId {
	var out []NodeId
	t.collectFrames(t.root, &out)
	return out
}

func (t *Tree) collectFrames(id NodeId, out *[]NodeId) {
	n := t.node(id)
	if n == nil {
		return
	}
	if n.kind == kindFrame {
		*out = append(*out, id)
		return
	}
	t.collectFrames(n.first, out)
	t.collectFrames(n.second, out)
}

// FrameCount returns the number of live frames.
func (t *Tree) FrameCount() int { return len(t.Frames()) }

// WindowCount returns the total number of windows tiled anywhere in t.
func (t *Tree) WindowCount() int {
	n := 0
	for i := range t.arena {
		if t.arena[i].kind == kindFrame {
			n += len(t.arena[i].windows)
		}
	}
	return n
}

// Equal reports whether t and other have the same tree shape and window
// contents, ignoring which frame is focused. Used by round-trip tests
// (spec.md §8, properties 7-9).
func (t *Tree) Equal(other *Tree) bool {
	return t.equalAt(t.root, other, other.root)
}

func (t *Tree) equalAt(aId NodeId, other *Tree, bId NodeId) bool {
	a := t.node(aId)
	b := other.node(bId)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.kind != b.kind {
		return false
	}
	if a.kind == kindFrame {
		if len(a.windows) != len(b.windows) {
			return false
		}
		for i := range a.windows {
			if a.windows[i] != b.windows[i] {
				return false
			}
		}
		return true
	}
	if a.direction != b.direction || a.ratio != b.ratio {
		return false
	}
	return t.equalAt(a.first, other, b.first) && t.equalAt(a.second, other, b.second)
}
