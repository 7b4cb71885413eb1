package wm

import (
	"testing"

	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSnapshot_ReflectsFocusedWindowAndCounts(t *testing.T) {
	w, _ := newTestWM()
	w.addTiledWindow(101)

	snap := w.StateSnapshot()

	require.NotNil(t, snap.FocusedWindow)
	assert.Equal(t, layout.WindowHandle(101), *snap.FocusedWindow)
	assert.Equal(t, 1, snap.WindowCount)
	assert.Equal(t, 1, snap.FrameCount)
	require.NotNil(t, snap.Layout)
	assert.Equal(t, "frame", snap.Layout.Type)
}

func TestStateSnapshot_NoFocusedWindowIsNil(t *testing.T) {
	w, _ := newTestWM()

	snap := w.StateSnapshot()

	assert.Nil(t, snap.FocusedWindow)
	assert.Equal(t, 0, snap.WindowCount)
}

func TestLayoutSnapshot_SplitHasBothChildrenAndGeometry(t *testing.T) {
	w, _ := newTestWM()
	w.addTiledWindow(101)
	require.NoError(t, w.Split(geom.Vertical))
	w.addTiledWindow(102)

	snap := w.LayoutSnapshot()

	assert.Equal(t, "split", snap.Type)
	assert.Equal(t, "vertical", snap.Direction)
	require.NotNil(t, snap.First)
	require.NotNil(t, snap.Second)
	assert.Equal(t, "frame", snap.First.Type)
	assert.Equal(t, "frame", snap.Second.Type)
	require.NotNil(t, snap.Geometry)
}

func TestWindows_TiledVisibleOnlyForFocusedTab(t *testing.T) {
	w, _ := newTestWM()
	w.addTiledWindow(101)
	w.addTiledWindow(102)

	infos := w.Windows()

	require.Len(t, infos, 2)
	byID := make(map[layout.WindowHandle]WindowInfo)
	for _, info := range infos {
		byID[info.ID] = info
	}
	assert.False(t, byID[101].Visible, "101 is not the frame's focused tab")
	assert.True(t, byID[102].Visible, "102 was added last and is the focused tab")
	assert.NotEmpty(t, byID[101].Frame)
}

func TestWindows_OtherWorkspaceWindowIsNotVisible(t *testing.T) {
	w, _ := newTestWM()
	require.NoError(t, w.Workspace(1))
	w.addTiledWindow(101)
	require.NoError(t, w.Workspace(0))

	infos := w.Windows()

	require.Len(t, infos, 1)
	assert.False(t, infos[0].Visible)
}

func TestEventLog_ReturnsMostRecentEntries(t *testing.T) {
	w, _ := newTestWM()
	w.Trace.Append(0, trace.EventWindowManaged, nil, "first")
	w.Trace.Append(0, trace.EventWindowManaged, nil, "second")

	entries := w.EventLog(1)

	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].Details)
}
