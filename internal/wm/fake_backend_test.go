package wm

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"log"

	"github.com/adereth/ttwm/internal/backend"
	"github.com/adereth/ttwm/internal/config"
	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
	"github.com/adereth/ttwm/internal/render"
	"github.com/adereth/ttwm/internal/trace"
)

// fakeBackend is a hand-rolled backend.Backend for reducer tests, recording
// what the reducer asked for instead of talking to a real display.
type fakeBackend struct {
	screen      geom.Rect
	nextSurface layout.WindowHandle

	configured []configureCall
	shown      map[layout.WindowHandle]bool
	hidden     map[layout.WindowHandle]bool
	closed     []layout.WindowHandle
	focus      layout.WindowHandle
	focusSet   bool
	rootProps  map[backend.RootProperty]any
	surfaces   map[layout.WindowHandle]geom.Rect
	painted    map[layout.WindowHandle]*image.RGBA
}

type configureCall struct {
	Handle layout.WindowHandle
	Rect   geom.Rect
	Border int32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		screen:      geom.Rect{X: 0, Y: 0, W: 1280, H: 800},
		nextSurface: 10000,
		shown:       make(map[layout.WindowHandle]bool),
		hidden:      make(map[layout.WindowHandle]bool),
		rootProps:   make(map[backend.RootProperty]any),
		surfaces:    make(map[layout.WindowHandle]geom.Rect),
		painted:     make(map[layout.WindowHandle]*image.RGBA),
	}
}

func (f *fakeBackend) ScreenSize() geom.Rect { return f.screen }

func (f *fakeBackend) WaitForEvent() (backend.Event, error) { return backend.Event{}, nil }

func (f *fakeBackend) QueryExistingWindows() ([]layout.WindowHandle, error) { return nil, nil }

func (f *fakeBackend) Attributes(layout.WindowHandle) (backend.Attributes, error) {
	return backend.Attributes{}, nil
}

func (f *fakeBackend) Manage(layout.WindowHandle) error { return nil }

func (f *fakeBackend) Unmanage(layout.WindowHandle) error { return nil }

func (f *fakeBackend) Configure(handle layout.WindowHandle, rect geom.Rect, border int32) error {
	f.configured = append(f.configured, configureCall{handle, rect, border})
	return nil
}

func (f *fakeBackend) Show(handle layout.WindowHandle) error {
	f.shown[handle] = true
	delete(f.hidden, handle)
	return nil
}

func (f *fakeBackend) Hide(handle layout.WindowHandle) error {
	f.hidden[handle] = true
	delete(f.shown, handle)
	return nil
}

func (f *fakeBackend) Close(handle layout.WindowHandle) error {
	f.closed = append(f.closed, handle)
	return nil
}

func (f *fakeBackend) SetInputFocus(handle layout.WindowHandle) error {
	f.focus = handle
	f.focusSet = true
	return nil
}

func (f *fakeBackend) WarpPointer(x, y int32) error { return nil }

func (f *fakeBackend) GrabKeys(chords []backend.Chord) error { return nil }

func (f *fakeBackend) CreateSurfaceWindow(rect geom.Rect) (layout.WindowHandle, error) {
	f.nextSurface++
	f.surfaces[f.nextSurface] = rect
	return f.nextSurface, nil
}

func (f *fakeBackend) PaintSurface(handle layout.WindowHandle, img *image.RGBA) error {
	f.painted[handle] = img
	return nil
}

func (f *fakeBackend) DestroySurfaceWindow(handle layout.WindowHandle) error {
	delete(f.surfaces, handle)
	delete(f.painted, handle)
	return nil
}

func (f *fakeBackend) SetRootProperty(prop backend.RootProperty, value any) error {
	f.rootProps[prop] = value
	return nil
}

func (f *fakeBackend) Flush() error { return nil }

func (f *fakeBackend) Disconnect() {}

// fakeGlyphs gives every rune a fixed width, mirroring internal/render's own
// test fake, so tab-bar rendering in these tests doesn't depend on a real
// font face.
type fakeGlyphs struct{}

func (fakeGlyphs) Advance(s string) int                                     { return len(s) * 6 }
func (fakeGlyphs) Draw(draw.Image, int, int, string, color.Color) {}
func (fakeGlyphs) LineHeight() int                                          { return 13 }

// newTestWM builds a WM wired to a fakeBackend, ready for command tests.
func newTestWM() (*WM, *fakeBackend) {
	cfg := config.Default()
	fb := newFakeBackend()
	renderer := render.New(cfg, fakeGlyphs{})
	tr := trace.NewRing(64)
	logger := log.New(io.Discard, "", 0)
	clock := func() int64 { return 0 }
	return New(fb, cfg, renderer, tr, logger, clock), fb
}

// addTiledWindow registers handle as a managed, tiled window in the current
// workspace's focused frame.
func (w *WM) addTiledWindow(handle layout.WindowHandle) {
	tree := w.CurrentTree()
	_ = tree.AddWindow(handle)
	frame, _ := tree.FindWindow(handle)
	idx, _ := w.workspaces.Current()
	w.registry.Add(&registry.Entry{
		Handle:         handle,
		WorkspaceIndex: idx,
		Placement:      registry.PlacementTiled,
		Frame:          frame,
		Title:          "",
	})
}
