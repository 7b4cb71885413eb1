package wm

import (
	"testing"

	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusWindow_SwitchesWorkspaceAndClearsUrgency(t *testing.T) {
	w, fb := newTestWM()
	require.NoError(t, w.Workspace(2))
	w.addTiledWindow(101)
	w.urgent.Push(101)
	w.registry.SetUrgent(101, true)

	require.NoError(t, w.Workspace(0))
	require.NoError(t, w.FocusWindow(101))

	assert.Equal(t, 2, w.CurrentWorkspace())
	_, stillUrgent := w.urgent.Front()
	assert.False(t, stillUrgent)
	entry, _ := w.registry.Get(101)
	assert.False(t, entry.Urgent)
	assert.Equal(t, layout.WindowHandle(101), fb.focus)
}

func TestSplit_CreatesSecondFrame(t *testing.T) {
	w, _ := newTestWM()
	w.addTiledWindow(101)

	require.NoError(t, w.Split(geom.Vertical))

	assert.Equal(t, 2, w.CurrentTree().FrameCount())
}

func TestMoveWindow_MovesFocusedTabToTargetFrame(t *testing.T) {
	w, _ := newTestWM()
	w.addTiledWindow(101)
	require.NoError(t, w.Split(geom.Horizontal))
	w.addTiledWindow(102)

	// Focus lands on the new (right) frame holding 102; move it back left.
	require.NoError(t, w.MoveWindow(geom.Left))

	tree := w.CurrentTree()
	frame, ok := tree.FindWindow(102)
	require.True(t, ok)
	windows := tree.FrameWindows(frame)
	assert.Contains(t, windows, layout.WindowHandle(101))
}

func TestResizeSplit_FallsBackToOtherAxis(t *testing.T) {
	w, _ := newTestWM()
	w.addTiledWindow(101)
	require.NoError(t, w.Split(geom.Vertical)) // only a vertical split exists

	// Horizontal resize on a tree with only a vertical split ancestor
	// should fall back to resizing that vertical split instead of no-op.
	require.NoError(t, w.ResizeSplit(geom.Horizontal, 0.1))

	root := w.CurrentTree().Root()
	_, ratio, _, _, ok := w.CurrentTree().SplitInfo(root)
	require.True(t, ok)
	assert.NotEqual(t, 0.5, ratio)
}

func TestToggleFloat_RoundTrips(t *testing.T) {
	w, _ := newTestWM()
	w.addTiledWindow(101)

	require.NoError(t, w.ToggleFloat(101))
	entry, _ := w.registry.Get(101)
	assert.Equal(t, registry.PlacementFloating, entry.Placement)
	assert.Equal(t, 0, w.CurrentTree().WindowCount())

	require.NoError(t, w.ToggleFloat(101))
	entry, _ = w.registry.Get(101)
	assert.Equal(t, registry.PlacementTiled, entry.Placement)
	assert.Equal(t, 1, w.CurrentTree().WindowCount())
}

func TestMoveTagged_MovesEveryTaggedWindowAndClearsTags(t *testing.T) {
	w, _ := newTestWM()
	w.addTiledWindow(101)
	require.NoError(t, w.Split(geom.Horizontal))
	w.addTiledWindow(102)
	w.addTiledWindow(103)

	w.tags.Tag(102)
	w.tags.Tag(103)

	target := w.CurrentTree().Focused()
	require.NoError(t, w.MoveTagged())

	assert.Equal(t, 0, w.tags.Len())
	frame102, _ := w.CurrentTree().FindWindow(102)
	frame103, _ := w.CurrentTree().FindWindow(103)
	assert.Equal(t, target, frame102)
	assert.Equal(t, target, frame103)
}

func TestFocusUrgent_SwitchesWorkspaceToOldestUrgent(t *testing.T) {
	w, _ := newTestWM()
	require.NoError(t, w.Workspace(3))
	w.addTiledWindow(101)
	w.urgent.Push(101)
	w.registry.SetUrgent(101, true)
	require.NoError(t, w.Workspace(0))

	require.NoError(t, w.FocusUrgent())

	assert.Equal(t, 3, w.CurrentWorkspace())
	entry, _ := w.registry.Get(101)
	assert.False(t, entry.Urgent)
}

func TestWorkspaceNextPrev_Wrap(t *testing.T) {
	w, _ := newTestWM()
	require.NoError(t, w.Workspace(8))
	require.NoError(t, w.WorkspaceNext())
	assert.Equal(t, 0, w.CurrentWorkspace())
	require.NoError(t, w.WorkspacePrev())
	assert.Equal(t, 8, w.CurrentWorkspace())
}

func TestCloseWindow_NoFocusedWindowIsNoop(t *testing.T) {
	w, fb := newTestWM()
	require.NoError(t, w.CloseWindow())
	assert.Empty(t, fb.closed)
}
