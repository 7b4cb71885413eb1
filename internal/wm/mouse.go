package wm

import (
	"github.com/adereth/ttwm/internal/backend"
	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
)

// dragKind distinguishes what a button-press-drag sequence is doing
// (spec.md §4.5.4).
type dragKind uint8

const (
	dragNone dragKind = iota
	dragResizeSplit
	dragMoveFloat
	dragResizeFloat
)

// dragState tracks an in-progress mouse interaction between ButtonPress and
// ButtonRelease.
type dragState struct {
	kind       dragKind
	startX, startY int32

	// dragResizeSplit
	split     layout.NodeId
	axis      geom.Orientation
	origRatio float64

	// dragMoveFloat / dragResizeFloat
	window    layout.WindowHandle
	origGeom  geom.Rect
	edgeMask  int // bit 0 = left, 1 = right, 2 = top, 3 = bottom
}

const floatEdgeZone = 8

// onButtonPress implements spec.md §4.5.4's click semantics: tab click
// focuses the tab, empty-frame click focuses the frame, a gap click starts
// a split-resize drag, and a click on a floating window starts a
// move/resize drag depending on whether it lands in the 8px edge zone.
func (w *WM) onButtonPress(ev backend.Event) {
	tree := w.CurrentTree()

	if entry, ok := w.registry.Get(ev.Window); ok && entry.Placement == registry.PlacementFloating {
		w.beginFloatDrag(ev, entry)
		return
	}

	for _, id := range tree.Frames() {
		geoms := tree.CalculateGeometries(w.screenArea(), w.Config.Appearance.Gap)
		rect, ok := geoms[id]
		if !ok || !rect.Contains(ev.RootX, ev.RootY) {
			continue
		}
		localX, localY := ev.RootX-rect.X, ev.RootY-rect.Y
		hit := w.Render.HitTest(id, int(localX), int(localY))
		tree.SetFocused(id)
		if !hit.Empty {
			tree.FocusTab(hit.Index)
		}
		w.ApplyLayout()
		return
	}

	w.beginSplitDrag(ev)
}

func (w *WM) beginFloatDrag(ev backend.Event, entry *registry.Entry) {
	rect := entry.FloatGeom
	localX, localY := ev.RootX-rect.X, ev.RootY-rect.Y
	mask := edgeMask(localX, localY, rect.W, rect.H)
	w.drag = &dragState{
		startX: ev.RootX, startY: ev.RootY,
		window: ev.Window, origGeom: rect, edgeMask: mask,
	}
	if mask != 0 {
		w.drag.kind = dragResizeFloat
	} else {
		w.drag.kind = dragMoveFloat
	}
}

func edgeMask(x, y, w, h int32) int {
	mask := 0
	if x < floatEdgeZone {
		mask |= 1
	}
	if x > w-floatEdgeZone {
		mask |= 2
	}
	if y < floatEdgeZone {
		mask |= 4
	}
	if y > h-floatEdgeZone {
		mask |= 8
	}
	return mask
}

func (w *WM) beginSplitDrag(ev backend.Event) {
	tree := w.CurrentTree()
	geoms := tree.CalculateGeometries(w.screenArea(), w.Config.Appearance.Gap)
	for id, rect := range geoms {
		if !tree.IsSplit(id) {
			continue
		}
		dir, _, _, _, ok := tree.SplitInfo(id)
		if !ok {
			continue
		}
		_, ratio, _, _, _ := tree.SplitInfo(id)
		first, _ := geom.SplitRect(rect, dir, ratio, w.Config.Appearance.Gap)
		if dir == geom.Horizontal && near(ev.RootX, first.X+first.W, w.Config.Appearance.Gap) {
			w.drag = &dragState{kind: dragResizeSplit, split: id, axis: geom.Horizontal, startX: ev.RootX, origRatio: ratio}
			return
		}
		if dir == geom.Vertical && near(ev.RootY, first.Y+first.H, w.Config.Appearance.Gap) {
			w.drag = &dragState{kind: dragResizeSplit, split: id, axis: geom.Vertical, startY: ev.RootY, origRatio: ratio}
			return
		}
	}
}

func near(v, target, tolerance int32) bool {
	d := v - target
	if d < 0 {
		d = -d
	}
	return d <= tolerance+2
}

// onMotionNotify live-updates the drag started by onButtonPress (spec.md
// §4.5.4).
func (w *WM) onMotionNotify(ev backend.Event) {
	if w.drag == nil {
		return
	}
	switch w.drag.kind {
	case dragResizeSplit:
		tree := w.CurrentTree()
		area := w.screenArea()
		var delta float64
		if w.drag.axis == geom.Horizontal {
			delta = float64(ev.RootX-w.drag.startX) / float64(area.W)
		} else {
			delta = float64(ev.RootY-w.drag.startY) / float64(area.H)
		}
		tree.SetSplitRatio(w.drag.split, w.drag.origRatio+delta)
		w.ApplyLayout()
	case dragMoveFloat:
		entry, ok := w.registry.Get(w.drag.window)
		if !ok {
			return
		}
		dx, dy := ev.RootX-w.drag.startX, ev.RootY-w.drag.startY
		entry.FloatGeom = geom.Rect{
			X: w.drag.origGeom.X + dx, Y: w.drag.origGeom.Y + dy,
			W: w.drag.origGeom.W, H: w.drag.origGeom.H,
		}
		w.ApplyLayout()
	case dragResizeFloat:
		entry, ok := w.registry.Get(w.drag.window)
		if !ok {
			return
		}
		dx, dy := ev.RootX-w.drag.startX, ev.RootY-w.drag.startY
		rect := w.drag.origGeom
		if w.drag.edgeMask&1 != 0 {
			rect.X = w.drag.origGeom.X + dx
			rect.W = w.drag.origGeom.W - dx
		}
		if w.drag.edgeMask&2 != 0 {
			rect.W += dx
		}
		if w.drag.edgeMask&4 != 0 {
			rect.Y = w.drag.origGeom.Y + dy
			rect.H = w.drag.origGeom.H - dy
		}
		if w.drag.edgeMask&8 != 0 {
			rect.H += dy
		}
		if rect.W < 20 {
			if w.drag.edgeMask&1 != 0 {
				rect.X -= 20 - rect.W
			}
			rect.W = 20
		}
		if rect.H < 20 {
			if w.drag.edgeMask&4 != 0 {
				rect.Y -= 20 - rect.H
			}
			rect.H = 20
		}
		entry.FloatGeom = rect
		w.ApplyLayout()
	}
}

func (w *WM) onButtonRelease(ev backend.Event) {
	w.drag = nil
}
