package ipc

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"log"
	"testing"

	"github.com/adereth/ttwm/internal/backend"
	"github.com/adereth/ttwm/internal/config"
	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
	"github.com/adereth/ttwm/internal/render"
	"github.com/adereth/ttwm/internal/trace"
	"github.com/adereth/ttwm/internal/wm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal backend.Backend double, local to this package:
// internal/wm's own fake lives in a _test.go file and is unexported, so
// internal/ipc's tests (which need a real *wm.WM, not a mock of Dispatch)
// carry their own copy rather than reach across the package boundary.
type fakeBackend struct {
	screen geom.Rect
	next   layout.WindowHandle
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{screen: geom.Rect{X: 0, Y: 0, W: 1280, H: 800}, next: 10000}
}

func (f *fakeBackend) ScreenSize() geom.Rect                               { return f.screen }
func (f *fakeBackend) WaitForEvent() (backend.Event, error)                { return backend.Event{}, nil }
func (f *fakeBackend) QueryExistingWindows() ([]layout.WindowHandle, error) { return nil, nil }
func (f *fakeBackend) Attributes(layout.WindowHandle) (backend.Attributes, error) {
	return backend.Attributes{}, nil
}
func (f *fakeBackend) Manage(layout.WindowHandle) error                            { return nil }
func (f *fakeBackend) Unmanage(layout.WindowHandle) error                          { return nil }
func (f *fakeBackend) Configure(layout.WindowHandle, geom.Rect, int32) error       { return nil }
func (f *fakeBackend) Show(layout.WindowHandle) error                              { return nil }
func (f *fakeBackend) Hide(layout.WindowHandle) error                              { return nil }
func (f *fakeBackend) Close(layout.WindowHandle) error                             { return nil }
func (f *fakeBackend) SetInputFocus(layout.WindowHandle) error                     { return nil }
func (f *fakeBackend) WarpPointer(int32, int32) error                              { return nil }
func (f *fakeBackend) GrabKeys([]backend.Chord) error                              { return nil }
func (f *fakeBackend) CreateSurfaceWindow(geom.Rect) (layout.WindowHandle, error) {
	f.next++
	return f.next, nil
}
func (f *fakeBackend) PaintSurface(layout.WindowHandle, *image.RGBA) error { return nil }
func (f *fakeBackend) DestroySurfaceWindow(layout.WindowHandle) error      { return nil }
func (f *fakeBackend) SetRootProperty(backend.RootProperty, any) error     { return nil }
func (f *fakeBackend) Flush() error                                       { return nil }
func (f *fakeBackend) Disconnect()                                        {}

type fakeGlyphs struct{}

func (fakeGlyphs) Advance(s string) int                         { return len(s) * 6 }
func (fakeGlyphs) Draw(draw.Image, int, int, string, color.Color) {}
func (fakeGlyphs) LineHeight() int                               { return 13 }

func newTestWM() *wm.WM {
	cfg := config.Default()
	renderer := render.New(cfg, fakeGlyphs{})
	tr := trace.NewRing(64)
	logger := log.New(io.Discard, "", 0)
	clock := func() int64 { return 0 }
	return wm.New(newFakeBackend(), cfg, renderer, tr, logger, clock)
}

// addTiledWindow registers handle as a managed, tiled window in the current
// workspace's focused frame, mirroring internal/wm's own test helper.
func addTiledWindow(w *wm.WM, handle layout.WindowHandle) {
	tree := w.CurrentTree()
	_ = tree.AddWindow(handle)
	frame, _ := tree.FindWindow(handle)
	reg := w.Registry()
	reg.Add(&registry.Entry{
		Handle:         handle,
		WorkspaceIndex: w.CurrentWorkspace(),
		Placement:      registry.PlacementTiled,
		Frame:          frame,
	})
}

func TestDispatch_GetStateReturnsSnapshot(t *testing.T) {
	w := newTestWM()
	addTiledWindow(w, 101)

	resp := Dispatch(w, Request{Command: "get_state"})

	assert.Equal(t, "state", resp.Status)
	snap, ok := resp.Data.(wm.WmStateSnapshot)
	require.True(t, ok)
	assert.Equal(t, 1, snap.WindowCount)
}

func TestDispatch_UnknownCommandIsError(t *testing.T) {
	w := newTestWM()

	resp := Dispatch(w, Request{Command: "not_a_command"})

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "invalid_command", resp.Code)
}

func TestDispatch_SplitWithBadArgIsError(t *testing.T) {
	w := newTestWM()
	addTiledWindow(w, 101)

	resp := Dispatch(w, Request{Command: "split", Arg: "diagonal"})

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "bad_args", resp.Code)
}

func TestDispatch_SplitWithGoodArgSplitsFrame(t *testing.T) {
	w := newTestWM()
	addTiledWindow(w, 101)

	resp := Dispatch(w, Request{Command: "split", Arg: "vertical"})

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, w.CurrentTree().FrameCount())
}

func TestDispatch_MoveWindowAcceptsForwardBackwardAliases(t *testing.T) {
	w := newTestWM()
	addTiledWindow(w, 101)
	require.NoError(t, w.Split(geom.Horizontal))
	addTiledWindow(w, 102)

	resp := Dispatch(w, Request{Command: "move_window", Arg: "backward"})

	assert.Equal(t, "ok", resp.Status)

	resp = Dispatch(w, Request{Command: "move_window", Arg: "forward"})

	assert.Equal(t, "ok", resp.Status)
}

func TestDispatch_MoveToWorkspaceRequiresN(t *testing.T) {
	w := newTestWM()
	addTiledWindow(w, 101)

	resp := Dispatch(w, Request{Command: "move_to_workspace", Window: 101})

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "bad_args", resp.Code)
}

func TestDispatch_MoveToWorkspaceWithN(t *testing.T) {
	w := newTestWM()
	addTiledWindow(w, 101)
	n := 3

	resp := Dispatch(w, Request{Command: "move_to_workspace", Window: 101, N: &n})

	assert.Equal(t, "ok", resp.Status)
}

func TestDispatch_ValidateStateReturnsValidation(t *testing.T) {
	w := newTestWM()
	addTiledWindow(w, 101)

	resp := Dispatch(w, Request{Command: "validate_state"})

	assert.Equal(t, "validation", resp.Status)
	require.NotNil(t, resp.Valid)
	assert.True(t, *resp.Valid)
}

func TestDispatch_WorkspaceNextPrev(t *testing.T) {
	w := newTestWM()

	resp := Dispatch(w, Request{Command: "workspace", Arg: "next"})
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, w.CurrentWorkspace())

	resp = Dispatch(w, Request{Command: "workspace", Arg: "prev"})
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 0, w.CurrentWorkspace())
}

func TestDispatch_QuitReturnsOk(t *testing.T) {
	w := newTestWM()

	resp := Dispatch(w, Request{Command: "quit"})

	assert.Equal(t, "ok", resp.Status)
}
