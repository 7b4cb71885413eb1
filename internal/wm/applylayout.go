package wm

import (
	"github.com/adereth/ttwm/internal/backend"
	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
	"github.com/adereth/ttwm/internal/render"
)

// ApplyLayout is the 7-step apply-layout procedure (spec.md §4.5.3): every
// mutation that can change what's on screen ends by calling this, rather
// than pushing incremental display updates itself. It is idempotent -
// calling it twice in a row with no intervening state change reconfigures
// every window to the geometry it already has.
func (w *WM) ApplyLayout() {
	idx, tree := w.workspaces.Current()
	area := w.screenArea()
	geoms := tree.CalculateGeometries(area, w.Config.Appearance.Gap)

	seenBars := make(map[barKey]bool)

	for _, frame := range tree.Frames() {
		rect, ok := geoms[frame]
		if !ok {
			continue
		}
		windows := tree.FrameWindows(frame)
		vertical := tree.VerticalTabs(frame)
		contentRect, barRect, hasBar := w.splitBarFromContent(rect, windows, vertical)

		if hasBar {
			w.updateBar(idx, frame, tree, windows, barRect, vertical, seenBars)
		} else {
			w.removeBar(idx, frame)
		}

		focusedTab := tree.FocusedTab(frame)
		for i, handle := range windows {
			if i == focusedTab {
				if err := w.Backend.Configure(handle, contentRect, w.Config.Appearance.BorderWidth); err != nil {
					w.Log.Printf("wm: configure %v failed: %v", handle, err)
				}
				if err := w.Backend.Show(handle); err != nil {
					w.Log.Printf("wm: show %v failed: %v", handle, err)
				}
			} else {
				if err := w.Backend.Hide(handle); err != nil {
					w.Log.Printf("wm: hide %v failed: %v", handle, err)
				}
			}
		}
	}

	for key := range w.barWindows {
		if key.workspace == idx && !seenBars[key] {
			w.removeBar(idx, key.frame)
		}
	}

	for _, entry := range w.registry.Floating() {
		if entry.WorkspaceIndex != idx {
			if err := w.Backend.Hide(entry.Handle); err != nil {
				w.Log.Printf("wm: hide floating %v failed: %v", entry.Handle, err)
			}
			continue
		}
		if err := w.Backend.Configure(entry.Handle, entry.FloatGeom, w.Config.Appearance.BorderWidth); err != nil {
			w.Log.Printf("wm: configure floating %v failed: %v", entry.Handle, err)
		}
		if err := w.Backend.Show(entry.Handle); err != nil {
			w.Log.Printf("wm: show floating %v failed: %v", entry.Handle, err)
		}
	}

	for _, entry := range w.registry.All() {
		if entry.Placement == registry.PlacementTiled && entry.WorkspaceIndex != idx {
			if err := w.Backend.Hide(entry.Handle); err != nil {
				w.Log.Printf("wm: hide other-workspace %v failed: %v", entry.Handle, err)
			}
		}
	}

	w.setFocus(tree)
	w.publishRootProperties(idx)
}

// splitBarFromContent reserves the configured tab-bar strip from rect,
// returning the remaining content rect and the bar's own rect. A frame
// with fewer than two tabs and no forced vertical-tabs mode has no bar
// (render.Renderer.Render's own rule, mirrored here so geometry and
// painting never disagree).
func (w *WM) splitBarFromContent(rect geom.Rect, windows []layout.WindowHandle, vertical bool) (content, bar geom.Rect, hasBar bool) {
	if len(windows) < 2 && !vertical {
		return rect, geom.Rect{}, false
	}
	if vertical {
		width := w.Config.Appearance.VerticalTabWidth
		bar = geom.Rect{X: rect.X, Y: rect.Y, W: width, H: rect.H}
		content = geom.Rect{X: rect.X + width, Y: rect.Y, W: rect.W - width, H: rect.H}
		return content, bar, true
	}
	height := w.Config.Appearance.TabBarHeight
	bar = geom.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: height}
	content = geom.Rect{X: rect.X, Y: rect.Y + height, W: rect.W, H: rect.H - height}
	return content, bar, true
}

func (w *WM) updateBar(workspace int, frame layout.NodeId, tree *layout.Tree, windows []layout.WindowHandle, barRect geom.Rect, vertical bool, seen map[barKey]bool) {
	key := barKey{workspace: workspace, frame: frame}
	seen[key] = true

	focusedFrame := tree.Focused() == frame
	focusedTab := tree.FocusedTab(frame)
	tabs := make([]render.Tab, len(windows))
	for i, handle := range windows {
		entry, _ := w.registry.Get(handle)
		var title string
		var icon []uint32
		var urgent, tagged bool
		if entry != nil {
			title = entry.Title
			icon = entry.IconARGB
			urgent = entry.Urgent
		}
		tagged = w.tags.Has(handle)
		tabs[i] = render.Tab{
			Window:   handle,
			Title:    title,
			IconARGB: icon,
			State:    tabState(i == focusedTab, focusedFrame, urgent, tagged),
		}
	}

	dimension := int(barRect.W)
	if vertical {
		dimension = int(barRect.H)
	}
	img := w.Render.Render(frame, tabs, dimension, vertical)
	if img == nil {
		w.removeBar(workspace, frame)
		return
	}

	handle, exists := w.barWindows[key]
	if !exists {
		h, err := w.Backend.CreateSurfaceWindow(barRect)
		if err != nil {
			w.Log.Printf("wm: create tab-bar surface for frame %v failed: %v", frame, err)
			return
		}
		handle = h
		w.barWindows[key] = handle
	} else if err := w.Backend.Configure(handle, barRect, 0); err != nil {
		w.Log.Printf("wm: reposition tab-bar surface for frame %v failed: %v", frame, err)
	}
	if err := w.Backend.PaintSurface(handle, img); err != nil {
		w.Log.Printf("wm: paint tab-bar surface for frame %v failed: %v", frame, err)
	}
}

func tabState(focusedTab, focusedFrame, urgent, tagged bool) render.TabState {
	switch {
	case urgent:
		return render.TabUrgent
	case tagged:
		return render.TabTagged
	case focusedTab && focusedFrame:
		return render.TabFocused
	case focusedFrame:
		return render.TabUnfocusedInFocusedFrame
	default:
		return render.TabVisibleInUnfocusedFrame
	}
}

func (w *WM) removeBar(workspace int, frame layout.NodeId) {
	key := barKey{workspace: workspace, frame: frame}
	handle, ok := w.barWindows[key]
	if !ok {
		return
	}
	if err := w.Backend.DestroySurfaceWindow(handle); err != nil {
		w.Log.Printf("wm: destroy tab-bar surface for frame %v failed: %v", frame, err)
	}
	delete(w.barWindows, key)
}

func (w *WM) setFocus(tree *layout.Tree) {
	handle, ok := tree.FocusedWindow()
	if !ok {
		if err := w.Backend.SetInputFocus(0); err != nil {
			w.Log.Printf("wm: clear input focus failed: %v", err)
		}
		return
	}
	if err := w.Backend.SetInputFocus(handle); err != nil {
		w.Log.Printf("wm: set input focus to %v failed: %v", handle, err)
	}
}

func (w *WM) publishRootProperties(workspace int) {
	var clients []layout.WindowHandle
	for _, e := range w.registry.All() {
		clients = append(clients, e.Handle)
	}
	if err := w.Backend.SetRootProperty(backend.PropClientList, clients); err != nil {
		w.Log.Printf("wm: publish client list failed: %v", err)
	}
	if err := w.Backend.SetRootProperty(backend.PropCurrentDesktop, workspace); err != nil {
		w.Log.Printf("wm: publish current desktop failed: %v", err)
	}
	if handle, ok := w.CurrentTree().FocusedWindow(); ok {
		if err := w.Backend.SetRootProperty(backend.PropActiveWindow, handle); err != nil {
			w.Log.Printf("wm: publish active window failed: %v", err)
		}
	}
}
