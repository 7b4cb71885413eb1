// Package backend defines the contract between the WM core (internal/wm)
// and the display server. Per spec.md §1 the X11/XCB protocol client is an
// external collaborator whose internals are not specified; this package is
// the seam. internal/backend/xgb provides the concrete X11 implementation;
// tests use a fake that implements the same interface.
package backend

import (
	"image"

	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
)

// EventKind tags the variant carried by an Event.
type EventKind uint8

const (
	EventMapRequest EventKind = iota
	EventUnmapNotify
	EventDestroyNotify
	EventConfigureRequest
	EventPropertyNotify
	EventClientMessage
	EventEnterNotify
	EventButtonPress
	EventMotionNotify
	EventButtonRelease
	EventKeyPress
)

// PropertyKind narrows a PropertyNotify event to the property the spec
// actually cares about (spec.md §4.5.2).
type PropertyKind uint8

const (
	PropertyTitle PropertyKind = iota
	PropertyClass
	PropertyIcon
	PropertyUrgency
	PropertyOther
)

// ClientMessageKind narrows a ClientMessage event.
type ClientMessageKind uint8

const (
	ClientMessageActiveWindow ClientMessageKind = iota
	ClientMessageState
	ClientMessageDesktop
	ClientMessageOther
)

// MouseButton identifies which button a button event concerns.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is a tagged variant of every display-server event the reducer
// handles (spec.md §4.5.2). Only the fields relevant to Kind are populated.
type Event struct {
	Kind EventKind
	Time uint32

	Window layout.WindowHandle

	// EventConfigureRequest
	Requested        geom.Rect
	RequestedBorder  int32
	HasRequestedSize bool

	// EventPropertyNotify
	Property PropertyKind

	// EventClientMessage
	ClientMessage ClientMessageKind
	ClientData    []uint32

	// EventEnterNotify / button / motion
	RootX, RootY int32
	Button       MouseButton

	// EventKeyPress
	KeyModMask uint16
	KeySym     uint32
}

// WindowType classifies a client window's EWMH/ICCCM type hint, used by the
// reducer's classification policy (spec.md §4.5.1).
type WindowType uint8

const (
	WindowTypeNormal WindowType = iota
	WindowTypeDialog
	WindowTypeSplash
	WindowTypeUtility
	WindowTypeToolbar
	WindowTypeMenu
	WindowTypeTooltip
	WindowTypeDock
)

// Attributes describes everything the reducer needs to know about a
// newly-mapped window to classify and place it.
type Attributes struct {
	Title            string
	ClassInstance    string
	Type             WindowType
	OverrideRedirect bool
	TransientFor     layout.WindowHandle // zero if not transient
	Geometry         geom.Rect           // requested/current geometry
	MinW, MinH       int32
	MaxW, MaxH       int32
	IconARGB         []uint32
}

// RootProperty names one of the published EWMH-style root window properties
// (spec.md §6).
type RootProperty uint8

const (
	PropClientList RootProperty = iota
	PropActiveWindow
	PropCurrentDesktop
	PropDesktopNames
	PropDesktopCount
	PropSupported
	PropWMName
)

// Backend is the abstract display server the WM core drives. All methods
// that issue a protocol request and can fail return an error that the
// reducer logs and swallows per spec.md §4.5.6 (BadWindow/BadMatch are not
// fatal); a nil error is not a guarantee the window still exists by the time
// the call returns.
type Backend interface {
	// ScreenSize returns the root window's geometry.
	ScreenSize() geom.Rect

	// WaitForEvent blocks until the next display event is available. It is
	// the sole blocking point in the main loop besides Flush.
	WaitForEvent() (Event, error)

	// QueryExistingWindows returns windows already mapped at startup
	// (gathered via a tree query), for adoption.
	QueryExistingWindows() ([]layout.WindowHandle, error)

	// Attributes fetches classification data for handle.
	Attributes(handle layout.WindowHandle) (Attributes, error)

	// Manage reparents/initialises handle so the WM can frame and decorate
	// it, and maps it.
	Manage(handle layout.WindowHandle) error

	// Unmanage reverses Manage; called when a window is destroyed or
	// explicitly unmanaged.
	Unmanage(handle layout.WindowHandle) error

	// Configure moves/resizes handle to rect with the given border width,
	// sending a synthetic ConfigureNotify as needed.
	Configure(handle layout.WindowHandle, rect geom.Rect, borderWidth int32) error

	// Show maps handle (and its decoration parent, if any).
	Show(handle layout.WindowHandle) error

	// Hide unmaps handle (and its decoration parent, if any) without
	// destroying any state.
	Hide(handle layout.WindowHandle) error

	// Close asks handle to close gracefully (WM_DELETE_WINDOW) or destroys
	// it if the client doesn't support that protocol.
	Close(handle layout.WindowHandle) error

	// SetInputFocus directs keyboard input to handle, or to the root window
	// (revert-to-root) if handle is zero.
	SetInputFocus(handle layout.WindowHandle) error

	// WarpPointer moves the pointer to an absolute screen position.
	WarpPointer(x, y int32) error

	// GrabKeys registers global key grabs for the given chords.
	GrabKeys(chords []Chord) error

	// CreateSurfaceWindow creates an unmanaged window used to host a
	// tab-bar pixmap (render.Renderer's output), sized to rect. It is not
	// a client window and never enters the layout tree or registry.
	CreateSurfaceWindow(rect geom.Rect) (layout.WindowHandle, error)

	// PaintSurface uploads img onto the surface window created by
	// CreateSurfaceWindow.
	PaintSurface(handle layout.WindowHandle, img *image.RGBA) error

	// DestroySurfaceWindow releases a window created by
	// CreateSurfaceWindow.
	DestroySurfaceWindow(handle layout.WindowHandle) error

	// SetRootProperty publishes one of the root window properties.
	SetRootProperty(prop RootProperty, value any) error

	// Flush sends any buffered requests to the display server. Called once
	// per main-loop iteration after the reducer runs.
	Flush() error

	// Close the connection entirely (process shutdown).
	Disconnect()
}

// Chord is a keybinding trigger: a modifier mask plus an X11 keysym.
type Chord struct {
	ModMask uint16
	KeySym  uint32
}
