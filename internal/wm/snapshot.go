// snapshot.go builds the JSON-facing DTOs the IPC server (internal/ipc)
// serves for get_state/get_layout/get_windows/get_event_log (spec.md §6).
// They live here, not in internal/ipc, because building them needs direct
// access to WM's private workspaces/registry/tags fields; internal/ipc only
// ever calls these exported methods and marshals what they return.
package wm

import (
	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
	"github.com/adereth/ttwm/internal/trace"
)

// WmStateSnapshot is the response body of the get_state IPC command.
type WmStateSnapshot struct {
	FocusedWindow *layout.WindowHandle `json:"focused_window"`
	FocusedFrame  string               `json:"focused_frame"`
	WindowCount   int                  `json:"window_count"`
	FrameCount    int                  `json:"frame_count"`
	Layout        *LayoutSnapshot      `json:"layout"`
}

// LayoutSnapshot is one node of the layout tree, recursively: either a frame
// (tabbed windows) or a split (two children either side of a ratio).
type LayoutSnapshot struct {
	Type        string               `json:"type"`
	ID          string               `json:"id"`
	Windows     []layout.WindowHandle `json:"windows,omitempty"`
	FocusedTab  int                  `json:"focused_tab,omitempty"`
	Direction   string               `json:"direction,omitempty"`
	Ratio       float64              `json:"ratio,omitempty"`
	First       *LayoutSnapshot      `json:"first,omitempty"`
	Second      *LayoutSnapshot      `json:"second,omitempty"`
	Geometry    *geom.Rect           `json:"geometry,omitempty"`
}

// WindowInfo is one entry of the get_windows IPC command's response list.
type WindowInfo struct {
	ID      layout.WindowHandle `json:"id"`
	Title   string              `json:"title"`
	Class   string              `json:"class"`
	Frame   string              `json:"frame,omitempty"`
	Visible bool                `json:"visible"`
}

// StateSnapshot builds the get_state response for the currently visible
// workspace.
func (w *WM) StateSnapshot() WmStateSnapshot {
	tree := w.CurrentTree()
	s := WmStateSnapshot{
		FocusedFrame: tree.Focused().String(),
		WindowCount:  tree.WindowCount(),
		FrameCount:   tree.FrameCount(),
	}
	if handle, ok := tree.FocusedWindow(); ok {
		s.FocusedWindow = &handle
	}
	layoutSnap := w.LayoutSnapshot()
	s.Layout = &layoutSnap
	return s
}

// LayoutSnapshot builds the get_layout response: the current workspace's
// tree, converted to a JSON-friendly tagged union, with each node's
// calculated geometry attached.
func (w *WM) LayoutSnapshot() LayoutSnapshot {
	tree := w.CurrentTree()
	geoms := tree.CalculateGeometries(w.screenArea(), w.Config.Appearance.Gap)
	return buildLayoutSnapshot(tree, tree.Root(), geoms)
}

func buildLayoutSnapshot(tree *layout.Tree, id layout.NodeId, geoms map[layout.NodeId]geom.Rect) LayoutSnapshot {
	snap := LayoutSnapshot{ID: id.String()}
	if rect, ok := geoms[id]; ok {
		r := rect
		snap.Geometry = &r
	}
	if tree.IsFrame(id) {
		snap.Type = "frame"
		snap.Windows = tree.FrameWindows(id)
		snap.FocusedTab = tree.FocusedTab(id)
		return snap
	}
	dir, ratio, first, second, ok := tree.SplitInfo(id)
	if !ok {
		snap.Type = "frame"
		return snap
	}
	snap.Type = "split"
	snap.Direction = orientationName(dir)
	snap.Ratio = ratio
	firstSnap := buildLayoutSnapshot(tree, first, geoms)
	secondSnap := buildLayoutSnapshot(tree, second, geoms)
	snap.First = &firstSnap
	snap.Second = &secondSnap
	return snap
}

func orientationName(o geom.Orientation) string {
	if o == geom.Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Windows builds the get_windows response: every managed window across
// every workspace, in registry order.
func (w *WM) Windows() []WindowInfo {
	out := make([]WindowInfo, 0, w.registry.Count())
	current := w.CurrentWorkspace()
	for _, e := range w.registry.All() {
		visible := false
		frame := ""
		switch e.Placement {
		case registry.PlacementFloating:
			visible = e.WorkspaceIndex == current
		case registry.PlacementTiled:
			frame = e.Frame.String()
			if e.WorkspaceIndex == current {
				if tree := w.workspaces.Tree(e.WorkspaceIndex); tree != nil {
					windows := tree.FrameWindows(e.Frame)
					tab := tree.FocusedTab(e.Frame)
					visible = tab >= 0 && tab < len(windows) && windows[tab] == e.Handle
				}
			}
		}
		out = append(out, WindowInfo{
			ID:      e.Handle,
			Title:   e.Title,
			Class:   e.ClassInstance,
			Frame:   frame,
			Visible: visible,
		})
	}
	return out
}

// FocusedWindow returns the handle of the currently focused window, if any.
func (w *WM) FocusedWindow() (layout.WindowHandle, bool) {
	return w.CurrentTree().FocusedWindow()
}

// EventLog returns the last count trace entries (count <= 0 means all).
func (w *WM) EventLog(count int) []trace.Entry {
	return w.Trace.Last(count)
}
