// Package xgb implements backend.Backend against a real X server using
// github.com/BurntSushi/xgb, the same library and connection/event-loop
// style as funkycode-marwind's wm package (wm.go's becomeWM/grabKeys/Run,
// frame.go's reparent-via-save-set, render.go's ConfigureWindow dance).
// Keymap loading follows driusan/dewm's GetKeyboardMapping scan, since
// marwind's own keysym/x11 support packages were never vendored into the
// example pack.
package xgb

import (
	"fmt"
	"image"
	"log"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xfixes"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/adereth/ttwm/internal/backend"
	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
)

const loKeycode, hiKeycode = 8, 255

// atoms caches the interned atoms the backend needs repeatedly, mirroring
// marwind manager.go's wmProtocols/wmDeleteWindow/wmTakeFocus fields.
type atoms struct {
	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom
	wmTakeFocus    xproto.Atom
	wmState        xproto.Atom
	netWMName      xproto.Atom
	netWMClass     xproto.Atom
	netWMIcon      xproto.Atom
	wmHints        xproto.Atom
	netActiveWin   xproto.Atom
	netClientList  xproto.Atom
	netCurDesktop  xproto.Atom
	netNumDesktops xproto.Atom
	netDesktopNames xproto.Atom
	netSupported   xproto.Atom
	netWMNameProp  xproto.Atom
	netWMWindowType xproto.Atom
	netWMStateVal  xproto.Atom
}

// Backend is the concrete X11 implementation of backend.Backend.
type Backend struct {
	conn   *xgb.Conn
	screen xproto.ScreenInfo
	atoms  atoms

	keymap    map[xproto.Keycode][]xproto.Keysym
	parentFor map[layout.WindowHandle]xproto.Window
	log       *log.Logger
}

// Connect opens a connection to the X display named by the DISPLAY
// environment variable (xgb.NewConn's default), takes window-manager
// ownership of the root window, and loads the keyboard mapping.
func Connect(logger *log.Logger) (*Backend, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("xgb: connect: %w", err)
	}
	setup := xproto.Setup(conn)
	if setup == nil || len(setup.Roots) < 1 {
		conn.Close()
		return nil, fmt.Errorf("xgb: could not parse X setup info")
	}
	b := &Backend{
		conn:      conn,
		screen:    setup.Roots[0],
		parentFor: make(map[layout.WindowHandle]xproto.Window),
		log:       logger,
	}
	if err := xfixes.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("xgb: xfixes init: %w", err)
	}
	if err := b.internAtoms(); err != nil {
		conn.Close()
		return nil, err
	}
	if err := b.becomeWM(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("xgb: could not become WM: %w", err)
	}
	if err := b.loadKeymap(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("xgb: load keymap: %w", err)
	}
	return b, nil
}

func (b *Backend) internAtoms() error {
	names := []struct {
		dst  *xproto.Atom
		name string
	}{
		{&b.atoms.wmProtocols, "WM_PROTOCOLS"},
		{&b.atoms.wmDeleteWindow, "WM_DELETE_WINDOW"},
		{&b.atoms.wmTakeFocus, "WM_TAKE_FOCUS"},
		{&b.atoms.wmState, "WM_STATE"},
		{&b.atoms.netWMName, "_NET_WM_NAME"},
		{&b.atoms.netWMClass, "WM_CLASS"},
		{&b.atoms.netWMIcon, "_NET_WM_ICON"},
		{&b.atoms.wmHints, "WM_HINTS"},
		{&b.atoms.netActiveWin, "_NET_ACTIVE_WINDOW"},
		{&b.atoms.netClientList, "_NET_CLIENT_LIST"},
		{&b.atoms.netCurDesktop, "_NET_CURRENT_DESKTOP"},
		{&b.atoms.netNumDesktops, "_NET_NUMBER_OF_DESKTOPS"},
		{&b.atoms.netDesktopNames, "_NET_DESKTOP_NAMES"},
		{&b.atoms.netSupported, "_NET_SUPPORTED"},
		{&b.atoms.netWMWindowType, "_NET_WM_WINDOW_TYPE"},
		{&b.atoms.netWMStateVal, "_NET_WM_STATE_DEMANDS_ATTENTION"},
	}
	for _, n := range names {
		reply, err := xproto.InternAtom(b.conn, false, uint16(len(n.name)), n.name).Reply()
		if err != nil {
			return fmt.Errorf("intern atom %s: %w", n.name, err)
		}
		*n.dst = reply.Atom
	}
	return nil
}

// becomeWM requests substructure-redirect on the root window; exactly one
// process in the session may hold this, same check marwind's Init does via
// the returned AccessError.
func (b *Backend) becomeWM() error {
	mask := []uint32{
		xproto.EventMaskKeyPress |
			xproto.EventMaskButtonPress |
			xproto.EventMaskButtonRelease |
			xproto.EventMaskButtonMotion |
			xproto.EventMaskPropertyChange |
			xproto.EventMaskStructureNotify |
			xproto.EventMaskSubstructureRedirect |
			xproto.EventMaskSubstructureNotify,
	}
	return xproto.ChangeWindowAttributesChecked(b.conn, b.screen.Root, xproto.CwEventMask, mask).Check()
}

// loadKeymap scans the full keycode range once at startup, as dewm's main
// does with GetKeyboardMapping, and keeps it around for KeyPress lookups
// and GrabKeys resolution.
func (b *Backend) loadKeymap() error {
	reply, err := xproto.GetKeyboardMapping(b.conn, loKeycode, hiKeycode-loKeycode+1).Reply()
	if err != nil {
		return err
	}
	b.keymap = make(map[xproto.Keycode][]xproto.Keysym, hiKeycode-loKeycode+1)
	per := int(reply.KeysymsPerKeycode)
	for i := 0; i <= hiKeycode-loKeycode; i++ {
		b.keymap[xproto.Keycode(loKeycode+i)] = reply.Keysyms[i*per : (i+1)*per]
	}
	return nil
}

func (b *Backend) ScreenSize() geom.Rect {
	return geom.Rect{X: 0, Y: 0, W: int32(b.screen.WidthInPixels), H: int32(b.screen.HeightInPixels)}
}

// WaitForEvent blocks for the next X event and translates it into the
// backend-neutral Event shape. Unrecognised event types are skipped here
// and the wait continues, so the caller never sees them and they are not
// treated as a connection error, the same tolerance marwind's Run loop
// shows for events it doesn't switch on.
func (b *Backend) WaitForEvent() (backend.Event, error) {
	for {
		xev, err := b.conn.WaitForEvent()
		if err != nil {
			return backend.Event{}, fmt.Errorf("xgb: wait for event: %w", err)
		}
		if xev == nil {
			continue
		}
		ev, ok := b.translate(xev)
		if !ok {
			continue
		}
		return ev, nil
	}
}

func (b *Backend) translate(xev xgb.Event) (backend.Event, bool) {
	switch e := xev.(type) {
	case xproto.MapRequestEvent:
		return backend.Event{Kind: backend.EventMapRequest, Window: layout.WindowHandle(e.Window)}, true
	case xproto.UnmapNotifyEvent:
		return backend.Event{Kind: backend.EventUnmapNotify, Window: layout.WindowHandle(e.Window)}, true
	case xproto.DestroyNotifyEvent:
		return backend.Event{Kind: backend.EventDestroyNotify, Window: layout.WindowHandle(e.Window)}, true
	case xproto.ConfigureRequestEvent:
		return backend.Event{
			Kind:   backend.EventConfigureRequest,
			Window: layout.WindowHandle(e.Window),
			Requested: geom.Rect{
				X: int32(e.X), Y: int32(e.Y), W: int32(e.Width), H: int32(e.Height),
			},
			RequestedBorder:  int32(e.BorderWidth),
			HasRequestedSize: e.ValueMask&(xproto.ConfigWindowWidth|xproto.ConfigWindowHeight) != 0,
		}, true
	case xproto.PropertyNotifyEvent:
		return backend.Event{
			Kind:     backend.EventPropertyNotify,
			Window:   layout.WindowHandle(e.Window),
			Time:     uint32(e.Time),
			Property: b.classifyProperty(e.Atom),
		}, true
	case xproto.ClientMessageEvent:
		data := e.Data.Data32[:]
		kind := backend.ClientMessageOther
		switch e.Type {
		case b.atoms.netActiveWin:
			kind = backend.ClientMessageActiveWindow
		case b.atoms.netWMStateVal:
			kind = backend.ClientMessageState
		case b.atoms.netCurDesktop:
			kind = backend.ClientMessageDesktop
		}
		cdata := make([]uint32, len(data))
		copy(cdata, data)
		return backend.Event{
			Kind:          backend.EventClientMessage,
			Window:        layout.WindowHandle(e.Window),
			ClientMessage: kind,
			ClientData:    cdata,
		}, true
	case xproto.EnterNotifyEvent:
		return backend.Event{
			Kind:   backend.EventEnterNotify,
			Window: layout.WindowHandle(e.Event),
			Time:   uint32(e.Time),
			RootX:  int32(e.RootX), RootY: int32(e.RootY),
		}, true
	case xproto.ButtonPressEvent:
		return backend.Event{
			Kind: backend.EventButtonPress, Window: layout.WindowHandle(e.Event),
			Time: uint32(e.Time), RootX: int32(e.RootX), RootY: int32(e.RootY),
			Button: translateButton(e.Detail), KeyModMask: e.State,
		}, true
	case xproto.ButtonReleaseEvent:
		return backend.Event{
			Kind: backend.EventButtonRelease, Window: layout.WindowHandle(e.Event),
			Time: uint32(e.Time), RootX: int32(e.RootX), RootY: int32(e.RootY),
			Button: translateButton(e.Detail),
		}, true
	case xproto.MotionNotifyEvent:
		return backend.Event{
			Kind: backend.EventMotionNotify, Window: layout.WindowHandle(e.Event),
			Time: uint32(e.Time), RootX: int32(e.RootX), RootY: int32(e.RootY),
		}, true
	case xproto.KeyPressEvent:
		syms := b.keymap[e.Detail]
		var sym uint32
		if len(syms) > 0 {
			sym = uint32(syms[0])
		}
		return backend.Event{
			Kind: backend.EventKeyPress, Window: layout.WindowHandle(e.Event),
			Time: uint32(e.Time), KeyModMask: e.State, KeySym: sym,
		}, true
	default:
		return backend.Event{}, false
	}
}

func translateButton(d xproto.Button) backend.MouseButton {
	switch d {
	case 1:
		return backend.ButtonLeft
	case 2:
		return backend.ButtonMiddle
	case 3:
		return backend.ButtonRight
	default:
		return backend.ButtonNone
	}
}

func (b *Backend) classifyProperty(atom xproto.Atom) backend.PropertyKind {
	switch atom {
	case b.atoms.netWMName, xproto.AtomWmName:
		return backend.PropertyTitle
	case b.atoms.netWMClass:
		return backend.PropertyClass
	case b.atoms.netWMIcon:
		return backend.PropertyIcon
	case b.atoms.wmHints:
		return backend.PropertyUrgency
	default:
		return backend.PropertyOther
	}
}

func (b *Backend) QueryExistingWindows() ([]layout.WindowHandle, error) {
	tree, err := xproto.QueryTree(b.conn, b.screen.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("xgb: query tree: %w", err)
	}
	out := make([]layout.WindowHandle, 0, len(tree.Children))
	for _, w := range tree.Children {
		out = append(out, layout.WindowHandle(w))
	}
	return out, nil
}

func (b *Backend) Attributes(handle layout.WindowHandle) (backend.Attributes, error) {
	win := xproto.Window(handle)
	attr, err := xproto.GetWindowAttributes(b.conn, win).Reply()
	if err != nil {
		return backend.Attributes{}, fmt.Errorf("xgb: get attributes: %w", err)
	}
	geomReply, err := xproto.GetGeometry(b.conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return backend.Attributes{}, fmt.Errorf("xgb: get geometry: %w", err)
	}
	title := b.getTextProperty(win, b.atoms.netWMName)
	if title == "" {
		title = b.getTextProperty(win, xproto.AtomWmName)
	}
	class := b.getTextProperty(win, b.atoms.netWMClass)

	return backend.Attributes{
		Title:            title,
		ClassInstance:    class,
		Type:             backend.WindowTypeNormal,
		OverrideRedirect: attr.OverrideRedirect,
		Geometry: geom.Rect{
			X: int32(geomReply.X), Y: int32(geomReply.Y),
			W: int32(geomReply.Width), H: int32(geomReply.Height),
		},
	}, nil
}

func (b *Backend) getTextProperty(win xproto.Window, atom xproto.Atom) string {
	reply, err := xproto.GetProperty(b.conn, false, win, atom, xproto.AtomString, 0, 1<<16).Reply()
	if err != nil || reply.ValueLen == 0 {
		return ""
	}
	return string(reply.Value)
}

// Manage creates a reparenting parent window for handle and reparents it
// in, exactly as marwind's frame.createParent/reparent pair do, then adds
// the client to the server's save-set so an ungraceful WM exit leaves
// clients attached to the root rather than orphaned off-screen.
func (b *Backend) Manage(handle layout.WindowHandle) error {
	win := xproto.Window(handle)
	parent, err := xproto.NewWindowId(b.conn)
	if err != nil {
		return fmt.Errorf("xgb: new window id: %w", err)
	}
	err = xproto.CreateWindowChecked(b.conn, b.screen.RootDepth, parent, b.screen.Root,
		0, 0, 1, 1, 0, xproto.WindowClassInputOutput, b.screen.RootVisual,
		xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{
			1,
			xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify,
		}).Check()
	if err != nil {
		return fmt.Errorf("xgb: create parent: %w", err)
	}
	if err := xproto.ReparentWindowChecked(b.conn, win, parent, 0, 0).Check(); err != nil {
		return fmt.Errorf("xgb: reparent: %w", err)
	}
	xproto.ChangeSaveSet(b.conn, xfixes.SaveSetModeInsert, win)
	b.parentFor[handle] = parent
	if err := xproto.MapWindowChecked(b.conn, parent).Check(); err != nil {
		return fmt.Errorf("xgb: map parent: %w", err)
	}
	return xproto.MapWindowChecked(b.conn, win).Check()
}

func (b *Backend) Unmanage(handle layout.WindowHandle) error {
	parent, ok := b.parentFor[handle]
	if !ok {
		return nil
	}
	delete(b.parentFor, handle)
	if err := xproto.DestroyWindowChecked(b.conn, parent).Check(); err != nil {
		return fmt.Errorf("xgb: destroy parent: %w", err)
	}
	return nil
}

// Configure resizes the client (and its decoration parent, if managed) and
// sends the synthetic ConfigureNotify marwind's Run loop echoes back on
// every ConfigureRequest, so clients that only redraw on ConfigureNotify
// pick up the new size even though we never granted their original
// request.
func (b *Backend) Configure(handle layout.WindowHandle, rect geom.Rect, borderWidth int32) error {
	win := xproto.Window(handle)
	if parent, ok := b.parentFor[handle]; ok {
		if err := xproto.ConfigureWindowChecked(b.conn, parent,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{uint32(rect.X), uint32(rect.Y), uint32(rect.W), uint32(rect.H)}).Check(); err != nil {
			return fmt.Errorf("xgb: configure parent: %w", err)
		}
		if err := xproto.ConfigureWindowChecked(b.conn, win,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{0, 0, uint32(rect.W), uint32(rect.H)}).Check(); err != nil {
			return fmt.Errorf("xgb: configure client: %w", err)
		}
	} else {
		if err := xproto.ConfigureWindowChecked(b.conn, win,
			xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
			[]uint32{uint32(rect.X), uint32(rect.Y), uint32(rect.W), uint32(rect.H), uint32(borderWidth)}).Check(); err != nil {
			return fmt.Errorf("xgb: configure: %w", err)
		}
	}
	ev := xproto.ConfigureNotifyEvent{
		Event: win, Window: win,
		X: int16(rect.X), Y: int16(rect.Y), Width: uint16(rect.W), Height: uint16(rect.H),
		BorderWidth: uint16(borderWidth),
	}
	return xproto.SendEventChecked(b.conn, false, win, xproto.EventMaskStructureNotify, string(ev.Bytes())).Check()
}

func (b *Backend) Show(handle layout.WindowHandle) error {
	win := xproto.Window(handle)
	if parent, ok := b.parentFor[handle]; ok {
		if err := xproto.MapWindowChecked(b.conn, parent).Check(); err != nil {
			return fmt.Errorf("xgb: map parent: %w", err)
		}
	}
	return xproto.MapWindowChecked(b.conn, win).Check()
}

func (b *Backend) Hide(handle layout.WindowHandle) error {
	win := xproto.Window(handle)
	if parent, ok := b.parentFor[handle]; ok {
		if err := xproto.UnmapWindowChecked(b.conn, parent).Check(); err != nil {
			return fmt.Errorf("xgb: unmap parent: %w", err)
		}
	}
	return xproto.UnmapWindowChecked(b.conn, win).Check()
}

// Close asks a client to close gracefully via WM_DELETE_WINDOW when it
// advertises WM_PROTOCOLS support, and falls back to DestroyWindow
// otherwise, same fallback marwind's manager.go applies around
// takeFocusProp for WM_TAKE_FOCUS.
func (b *Backend) Close(handle layout.WindowHandle) error {
	win := xproto.Window(handle)
	supportsDelete, err := b.supportsProtocol(win, b.atoms.wmDeleteWindow)
	if err != nil {
		return fmt.Errorf("xgb: query protocols: %w", err)
	}
	if !supportsDelete {
		return xproto.DestroyWindowChecked(b.conn, win).Check()
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   b.atoms.wmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(b.atoms.wmDeleteWindow), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	return xproto.SendEventChecked(b.conn, false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}

func (b *Backend) supportsProtocol(win xproto.Window, atom xproto.Atom) (bool, error) {
	reply, err := xproto.GetProperty(b.conn, false, win, b.atoms.wmProtocols, xproto.AtomAtom, 0, 64).Reply()
	if err != nil {
		return false, err
	}
	for i := 0; i+4 <= len(reply.Value); i += 4 {
		v := xproto.Atom(uint32(reply.Value[i]) | uint32(reply.Value[i+1])<<8 | uint32(reply.Value[i+2])<<16 | uint32(reply.Value[i+3])<<24)
		if v == atom {
			return true, nil
		}
	}
	return false, nil
}

func (b *Backend) SetInputFocus(handle layout.WindowHandle) error {
	win := xproto.Window(handle)
	if win == 0 {
		win = b.screen.Root
	}
	return xproto.SetInputFocusChecked(b.conn, xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime).Check()
}

func (b *Backend) WarpPointer(x, y int32) error {
	return xproto.WarpPointerChecked(b.conn, 0, b.screen.Root, 0, 0, 0, 0, int16(x), int16(y)).Check()
}

// GrabKeys grabs every keycode that maps to each chord's keysym, the same
// reverse scan over the keymap dewm's main performs for its static grab
// table.
func (b *Backend) GrabKeys(chords []backend.Chord) error {
	for _, chord := range chords {
		for code, syms := range b.keymap {
			for _, sym := range syms {
				if uint32(sym) != chord.KeySym {
					continue
				}
				if err := xproto.GrabKeyChecked(b.conn, false, b.screen.Root,
					chord.ModMask, code, xproto.GrabModeAsync, xproto.GrabModeAsync).Check(); err != nil {
					return fmt.Errorf("xgb: grab key: %w", err)
				}
			}
		}
	}
	return nil
}

// CreateSurfaceWindow creates a plain InputOutput window the renderer can
// paint tab-bar pixels onto, the same CreateWindow shape marwind's
// createParent uses for reparenting windows, minus the reparent step.
func (b *Backend) CreateSurfaceWindow(rect geom.Rect) (layout.WindowHandle, error) {
	win, err := xproto.NewWindowId(b.conn)
	if err != nil {
		return 0, fmt.Errorf("xgb: new window id: %w", err)
	}
	err = xproto.CreateWindowChecked(b.conn, b.screen.RootDepth, win, b.screen.Root,
		int16(rect.X), int16(rect.Y), uint16(max32(rect.W, 1)), uint16(max32(rect.H, 1)), 0,
		xproto.WindowClassInputOutput, b.screen.RootVisual,
		xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{1, xproto.EventMaskExposure | xproto.EventMaskButtonPress}).Check()
	if err != nil {
		return 0, fmt.Errorf("xgb: create surface window: %w", err)
	}
	if err := xproto.MapWindowChecked(b.conn, win).Check(); err != nil {
		return 0, fmt.Errorf("xgb: map surface window: %w", err)
	}
	return layout.WindowHandle(win), nil
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// PaintSurface uploads img via CreateGC + PutImage in Z-pixmap (ZPixmap)
// format, the standard way to blit a client-side RGBA buffer onto an X
// window.
func (b *Backend) PaintSurface(handle layout.WindowHandle, img *image.RGBA) error {
	win := xproto.Window(handle)
	gc, err := xproto.NewGcontextId(b.conn)
	if err != nil {
		return fmt.Errorf("xgb: new gcontext id: %w", err)
	}
	if err := xproto.CreateGCChecked(b.conn, gc, xproto.Drawable(win), 0, nil).Check(); err != nil {
		return fmt.Errorf("xgb: create gc: %w", err)
	}
	defer xproto.FreeGC(b.conn, gc)

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			data = append(data, c.B, c.G, c.R, c.A)
		}
	}
	const maxRequest = 1 << 16
	rowBytes := w * 4
	rowsPerChunk := maxRequest / max(rowBytes, 1)
	if rowsPerChunk < 1 {
		rowsPerChunk = 1
	}
	for y0 := 0; y0 < h; y0 += rowsPerChunk {
		y1 := min(y0+rowsPerChunk, h)
		chunk := data[y0*rowBytes : y1*rowBytes]
		err := xproto.PutImageChecked(b.conn, xproto.ImageFormatZPixmap, xproto.Drawable(win), gc,
			uint16(w), uint16(y1-y0), 0, int16(y0), 0, b.screen.RootDepth, chunk).Check()
		if err != nil {
			return fmt.Errorf("xgb: put image: %w", err)
		}
	}
	return nil
}

func (b *Backend) DestroySurfaceWindow(handle layout.WindowHandle) error {
	return xproto.DestroyWindowChecked(b.conn, xproto.Window(handle)).Check()
}

func (b *Backend) SetRootProperty(prop backend.RootProperty, value any) error {
	switch prop {
	case backend.PropWMName:
		name, _ := value.(string)
		return xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, b.screen.Root,
			b.atoms.netWMName, xproto.AtomString, 8, uint32(len(name)), []byte(name)).Check()
	case backend.PropActiveWindow:
		w, _ := value.(layout.WindowHandle)
		return xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, b.screen.Root,
			b.atoms.netActiveWin, xproto.AtomWindow, 32, 1, u32Bytes(uint32(w))).Check()
	case backend.PropCurrentDesktop:
		i, _ := value.(int)
		return xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, b.screen.Root,
			b.atoms.netCurDesktop, xproto.AtomCardinal, 32, 1, u32Bytes(uint32(i))).Check()
	case backend.PropDesktopCount:
		i, _ := value.(int)
		return xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, b.screen.Root,
			b.atoms.netNumDesktops, xproto.AtomCardinal, 32, 1, u32Bytes(uint32(i))).Check()
	case backend.PropClientList:
		handles, _ := value.([]layout.WindowHandle)
		data := make([]byte, 0, len(handles)*4)
		for _, h := range handles {
			data = append(data, u32Bytes(uint32(h))...)
		}
		return xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, b.screen.Root,
			b.atoms.netClientList, xproto.AtomWindow, 32, uint32(len(handles)), data).Check()
	default:
		return nil
	}
}

func u32Bytes(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func (b *Backend) Flush() error {
	return nil
}

func (b *Backend) Disconnect() {
	b.conn.Close()
}

var _ backend.Backend = (*Backend)(nil)
