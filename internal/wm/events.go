package wm

import (
	"github.com/adereth/ttwm/internal/backend"
	"github.com/adereth/ttwm/internal/config"
	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
	"github.com/adereth/ttwm/internal/trace"
)

// HandleEvent dispatches one display event through the reducer (spec.md
// §4.5.2). It mirrors the shape of marwind's Run event-loop switch, one
// case per xproto event type, but over the backend-neutral Event union.
func (w *WM) HandleEvent(ev backend.Event) {
	w.Trace.Append(w.Clock(), trace.EventDisplay, handlePtr(ev.Window), string(eventName(ev.Kind)))

	switch ev.Kind {
	case backend.EventMapRequest:
		w.onMapRequest(ev.Window)
	case backend.EventUnmapNotify:
		w.onWindowGone(ev.Window)
	case backend.EventDestroyNotify:
		w.onWindowGone(ev.Window)
	case backend.EventConfigureRequest:
		w.onConfigureRequest(ev)
	case backend.EventPropertyNotify:
		w.onPropertyNotify(ev)
	case backend.EventClientMessage:
		w.onClientMessage(ev)
	case backend.EventEnterNotify:
		w.onEnterNotify(ev)
	case backend.EventButtonPress:
		w.onButtonPress(ev)
	case backend.EventMotionNotify:
		w.onMotionNotify(ev)
	case backend.EventButtonRelease:
		w.onButtonRelease(ev)
	case backend.EventKeyPress:
		w.onKeyPress(ev)
	}
}

func handlePtr(h layout.WindowHandle) *layout.WindowHandle {
	if h == 0 {
		return nil
	}
	return &h
}

func eventName(k backend.EventKind) string {
	names := map[backend.EventKind]string{
		backend.EventMapRequest:       "map_request",
		backend.EventUnmapNotify:      "unmap_notify",
		backend.EventDestroyNotify:    "destroy_notify",
		backend.EventConfigureRequest: "configure_request",
		backend.EventPropertyNotify:   "property_notify",
		backend.EventClientMessage:    "client_message",
		backend.EventEnterNotify:      "enter_notify",
		backend.EventButtonPress:      "button_press",
		backend.EventMotionNotify:     "motion_notify",
		backend.EventButtonRelease:    "button_release",
		backend.EventKeyPress:         "key_press",
	}
	return names[k]
}

// onMapRequest classifies and installs a newly-mapping window (spec.md
// §4.5.1), then always configures it to its computed geometry.
func (w *WM) onMapRequest(handle layout.WindowHandle) {
	attrs, err := w.Backend.Attributes(handle)
	if err != nil {
		w.Log.Printf("wm: failed to read attributes of %v: %v", handle, err)
		return
	}
	cls := w.classify(handle, attrs)
	if cls.ignore {
		if err := w.Backend.Show(handle); err != nil {
			w.Log.Printf("wm: failed to show override-redirect window %v: %v", handle, err)
		}
		return
	}
	if err := w.adoptWithAttrs(handle, attrs, cls); err != nil {
		w.Log.Printf("wm: failed to manage %v: %v", handle, err)
		return
	}
	w.ApplyLayout()
}

// adopt fetches attributes and adopts an already-mapped window, used for
// windows discovered at startup (spec.md §4.2's "existing tree" isn't
// quite it, but the same classification rules apply regardless of when the
// map happened).
func (w *WM) adopt(handle layout.WindowHandle) error {
	attrs, err := w.Backend.Attributes(handle)
	if err != nil {
		return err
	}
	cls := w.classify(handle, attrs)
	if cls.ignore {
		return nil
	}
	return w.adoptWithAttrs(handle, attrs, cls)
}

func (w *WM) adoptWithAttrs(handle layout.WindowHandle, attrs backend.Attributes, cls classification) error {
	if err := w.Backend.Manage(handle); err != nil {
		return err
	}
	workspaceIdx, tree := w.workspaces.Current()

	entry := &registry.Entry{
		Handle:           handle,
		WorkspaceIndex:   workspaceIdx,
		Title:            attrs.Title,
		ClassInstance:    attrs.ClassInstance,
		OverrideRedirect: attrs.OverrideRedirect,
		MinW:             attrs.MinW, MinH: attrs.MinH,
		MaxW: attrs.MaxW, MaxH: attrs.MaxH,
		IconARGB: attrs.IconARGB,
	}

	switch cls.placement {
	case registry.PlacementFloating:
		entry.Placement = registry.PlacementFloating
		entry.FloatGeom = cls.geom
		w.registry.Add(entry)
	default:
		if err := tree.AddWindow(handle); err != nil {
			return err
		}
		frame, _ := tree.FindWindow(handle)
		entry.Placement = registry.PlacementTiled
		entry.Frame = frame
		w.registry.Add(entry)
		tree.SetFocused(frame)
	}
	w.Trace.Append(w.Clock(), trace.EventWindowManaged, &handle, "")
	return nil
}

// onWindowGone handles both UnmapNotify and DestroyNotify: the window is
// removed from every piece of state that might reference it (spec.md
// §4.5.2).
func (w *WM) onWindowGone(handle layout.WindowHandle) {
	entry, ok := w.registry.Get(handle)
	if !ok {
		return
	}
	if entry.Placement == registry.PlacementTiled {
		if tree := w.workspaces.Tree(entry.WorkspaceIndex); tree != nil {
			framesBefore := tree.FrameCount()
			if err := tree.RemoveWindow(handle); err != nil {
				w.Log.Printf("wm: failed to remove %v from tree: %v", handle, err)
			} else if tree.FrameCount() < framesBefore {
				w.Trace.Append(w.Clock(), trace.EventFrameRemoved, &handle, "")
			}
		}
	}
	w.registry.Remove(handle)
	w.urgent.Remove(handle)
	w.tags.Untag(handle)
	if err := w.Backend.Unmanage(handle); err != nil {
		w.Log.Printf("wm: failed to unmanage %v: %v", handle, err)
	}
	w.Trace.Append(w.Clock(), trace.EventWindowUnmanaged, &handle, "")
	w.ApplyLayout()
}

// onConfigureRequest honours the client's request for floating windows
// (clamped to screen bounds) and overrides it with the tree-computed
// geometry for tiled windows (spec.md §4.5.2).
func (w *WM) onConfigureRequest(ev backend.Event) {
	entry, ok := w.registry.Get(ev.Window)
	if !ok {
		// Unmanaged window (e.g. still being classified): honour verbatim.
		if ev.HasRequestedSize {
			if err := w.Backend.Configure(ev.Window, ev.Requested, ev.RequestedBorder); err != nil {
				w.Log.Printf("wm: configure request for unmanaged %v failed: %v", ev.Window, err)
			}
		}
		return
	}
	if entry.Placement == registry.PlacementFloating {
		rect := ev.Requested
		area := w.screenArea()
		rect = geom.Rect{
			X: clampInt32(rect.X, area.X, area.X+area.W-rect.W),
			Y: clampInt32(rect.Y, area.Y, area.Y+area.H-rect.H),
			W: rect.W, H: rect.H,
		}
		entry.FloatGeom = rect
		if err := w.Backend.Configure(ev.Window, rect, int32(w.Config.Appearance.BorderWidth)); err != nil {
			w.Log.Printf("wm: configure floating %v failed: %v", ev.Window, err)
		}
		return
	}
	// Tiled: apply-layout will reassert the tree-computed geometry regardless
	// of what the client asked for.
	w.ApplyLayout()
}

func clampInt32(v, lo, hi int32) int32 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// onPropertyNotify refreshes cached metadata and, for urgency, pushes the
// window onto the urgent FIFO (spec.md §4.5.2).
func (w *WM) onPropertyNotify(ev backend.Event) {
	switch ev.Property {
	case backend.PropertyTitle:
		attrs, err := w.Backend.Attributes(ev.Window)
		if err == nil {
			w.registry.SetTitle(ev.Window, attrs.Title)
		}
	case backend.PropertyClass:
		attrs, err := w.Backend.Attributes(ev.Window)
		if err == nil {
			w.registry.SetClass(ev.Window, attrs.ClassInstance)
		}
	case backend.PropertyIcon:
		attrs, err := w.Backend.Attributes(ev.Window)
		if err == nil {
			w.registry.SetIcon(ev.Window, attrs.IconARGB)
		}
	case backend.PropertyUrgency:
		w.markUrgent(ev.Window)
	}
	w.ApplyLayout()
}

func (w *WM) markUrgent(handle layout.WindowHandle) {
	if _, ok := w.registry.Get(handle); !ok {
		return
	}
	w.registry.SetUrgent(handle, true)
	w.urgent.Push(handle)
}

// onClientMessage handles EWMH-style requests: activate, state toggles,
// desktop switch (spec.md §4.5.2).
func (w *WM) onClientMessage(ev backend.Event) {
	switch ev.ClientMessage {
	case backend.ClientMessageActiveWindow:
		w.FocusWindow(ev.Window)
	case backend.ClientMessageState:
		w.markUrgent(ev.Window)
	case backend.ClientMessageDesktop:
		if len(ev.ClientData) > 0 {
			_ = w.Workspace(int(ev.ClientData[0]))
		}
	}
}

// onEnterNotify implements focus-follows-mouse (spec.md §4.5.2): entering a
// managed client focuses it and its frame; entering one of ttwm's own
// tab-bar windows never changes focus.
func (w *WM) onEnterNotify(ev backend.Event) {
	if !w.Config.General.FocusFollowsMouse {
		return
	}
	if w.isOwnSurface(ev.Window) {
		return
	}
	if _, ok := w.registry.Get(ev.Window); ok {
		w.FocusWindow(ev.Window)
	}
}

func (w *WM) onKeyPress(ev backend.Event) {
	for name, chordStr := range w.Config.Keybindings {
		c, err := config.ParseChord(chordStr)
		if err != nil {
			continue
		}
		if c.ModMask == ev.KeyModMask && c.KeySym == ev.KeySym {
			if err := w.Dispatch(name); err != nil {
				w.Log.Printf("wm: action %s failed: %v", name, err)
			}
			return
		}
	}
}
