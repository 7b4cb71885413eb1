package wm

import (
	"testing"

	"github.com/adereth/ttwm/internal/backend"
	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addFloatingWindow(w *WM, handle layout.WindowHandle, rect geom.Rect) {
	idx := w.CurrentWorkspace()
	w.Registry().Add(&registry.Entry{
		Handle:         handle,
		WorkspaceIndex: idx,
		Placement:      registry.PlacementFloating,
		FloatGeom:      rect,
	})
}

func TestOnMotionNotify_DragResizeFloat_RightEdgeGrowsWidthOnly(t *testing.T) {
	w, _ := newTestWM()
	rect := geom.Rect{X: 100, Y: 100, W: 200, H: 150}
	addFloatingWindow(w, 101, rect)

	w.onButtonPress(backend.Event{Window: 101, RootX: rect.X + rect.W - 2, RootY: rect.Y + 50})
	require.NotNil(t, w.drag)
	assert.Equal(t, dragResizeFloat, w.drag.kind)

	w.onMotionNotify(backend.Event{RootX: rect.X + rect.W - 2 + 30, RootY: rect.Y + 50})

	entry, ok := w.Registry().Get(101)
	require.True(t, ok)
	assert.Equal(t, rect.X, entry.FloatGeom.X)
	assert.Equal(t, rect.Y, entry.FloatGeom.Y)
	assert.Equal(t, rect.W+30, entry.FloatGeom.W)
	assert.Equal(t, rect.H, entry.FloatGeom.H)
}

func TestOnMotionNotify_DragResizeFloat_LeftEdgeMovesXAndShrinksWidth(t *testing.T) {
	w, _ := newTestWM()
	rect := geom.Rect{X: 100, Y: 100, W: 200, H: 150}
	addFloatingWindow(w, 101, rect)

	w.onButtonPress(backend.Event{Window: 101, RootX: rect.X + 2, RootY: rect.Y + 50})
	require.NotNil(t, w.drag)
	assert.Equal(t, dragResizeFloat, w.drag.kind)

	w.onMotionNotify(backend.Event{RootX: rect.X + 2 + 20, RootY: rect.Y + 50})

	entry, ok := w.Registry().Get(101)
	require.True(t, ok)
	assert.Equal(t, rect.X+20, entry.FloatGeom.X)
	assert.Equal(t, rect.W-20, entry.FloatGeom.W)
	assert.Equal(t, rect.H, entry.FloatGeom.H)
}

func TestOnMotionNotify_DragResizeFloat_TopEdgeMovesYAndShrinksHeight(t *testing.T) {
	w, _ := newTestWM()
	rect := geom.Rect{X: 100, Y: 100, W: 200, H: 150}
	addFloatingWindow(w, 101, rect)

	w.onButtonPress(backend.Event{Window: 101, RootX: rect.X + 50, RootY: rect.Y + 2})
	require.NotNil(t, w.drag)
	assert.Equal(t, dragResizeFloat, w.drag.kind)

	w.onMotionNotify(backend.Event{RootX: rect.X + 50, RootY: rect.Y + 2 + 15})

	entry, ok := w.Registry().Get(101)
	require.True(t, ok)
	assert.Equal(t, rect.Y+15, entry.FloatGeom.Y)
	assert.Equal(t, rect.H-15, entry.FloatGeom.H)
	assert.Equal(t, rect.W, entry.FloatGeom.W)
}

func TestOnMotionNotify_DragResizeFloat_LeftEdgeClampsToMinWidthKeepingRightEdgeFixed(t *testing.T) {
	w, _ := newTestWM()
	rect := geom.Rect{X: 100, Y: 100, W: 50, H: 150}
	addFloatingWindow(w, 101, rect)

	w.onButtonPress(backend.Event{Window: 101, RootX: rect.X + 2, RootY: rect.Y + 50})
	require.NotNil(t, w.drag)

	// drag the left edge 40px to the right: new width would be 10, clamped to
	// 20, so X should land 20px left of the fixed right edge (rect.X+30),
	// not at rect.X+40.
	w.onMotionNotify(backend.Event{RootX: rect.X + 2 + 40, RootY: rect.Y + 50})

	entry, ok := w.Registry().Get(101)
	require.True(t, ok)
	assert.Equal(t, int32(20), entry.FloatGeom.W)
	assert.Equal(t, rect.X+rect.W-20, entry.FloatGeom.X)
}
