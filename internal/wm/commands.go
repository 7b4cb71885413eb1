// commands.go holds every mutation/query ttwm exposes to both keybindings
// (dispatch.go) and the IPC server (internal/ipc): spec.md §4.7 requires
// "every mutation command runs the same code path as its keybinding
// counterpart", so these methods are that single code path.
package wm

import (
	"fmt"

	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
	"github.com/adereth/ttwm/internal/trace"
)

// FocusWindow focuses handle's frame and tab (switching to its workspace)
// if it's tiled, clearing urgency either way. For a floating window only
// its urgency is cleared; it is not raised and its workspace is not
// switched.
func (w *WM) FocusWindow(handle layout.WindowHandle) error {
	entry, ok := w.registry.Get(handle)
	if !ok {
		return fmt.Errorf("wm: window %v not managed", handle)
	}
	if entry.Placement == registry.PlacementTiled {
		idx, frame, found := w.workspaces.FindWindow(handle)
		if !found {
			return fmt.Errorf("wm: window %v not found in any tree", handle)
		}
		if err := w.workspaces.Switch(idx); err != nil {
			return err
		}
		tree := w.workspaces.Tree(idx)
		tree.SetFocused(frame)
		for i, win := range tree.FrameWindows(frame) {
			if win == handle {
				tree.FocusTab(i)
			}
		}
	}
	w.clearUrgent(handle)
	w.Trace.Append(w.Clock(), trace.EventFocusChanged, &handle, "")
	w.ApplyLayout()
	return nil
}

func (w *WM) clearUrgent(handle layout.WindowHandle) {
	w.urgent.Remove(handle)
	w.registry.SetUrgent(handle, false)
}

// FocusTab focuses tab index i (0-based) of the current frame.
func (w *WM) FocusTab(i int) error {
	w.CurrentTree().FocusTab(i)
	w.Trace.Append(w.Clock(), trace.EventTabSwitched, nil, fmt.Sprintf("tab=%d", i))
	w.ApplyLayout()
	return nil
}

// CycleTab moves the focused tab forward (+1) or backward (-1).
func (w *WM) CycleTab(forward bool) error {
	delta := 1
	if !forward {
		delta = -1
	}
	w.CurrentTree().CycleTab(delta)
	w.Trace.Append(w.Clock(), trace.EventTabSwitched, nil, "")
	w.ApplyLayout()
	return nil
}

// FocusFrame moves focus to the nearest frame in direction dir.
func (w *WM) FocusFrame(dir geom.Direction) error {
	tree := w.CurrentTree()
	target, ok := tree.FindFrameInDirection(tree.Focused(), dir, w.screenArea(), w.Config.Appearance.Gap)
	if !ok {
		return nil
	}
	tree.SetFocused(target)
	w.Trace.Append(w.Clock(), trace.EventFocusChanged, nil, "")
	w.ApplyLayout()
	return nil
}

// Split replaces the focused frame with a new split of direction dir.
func (w *WM) Split(dir geom.Orientation) error {
	if _, err := w.CurrentTree().SplitFocused(dir); err != nil {
		return err
	}
	w.Trace.Append(w.Clock(), trace.EventFrameSplit, nil, "")
	w.ApplyLayout()
	return nil
}

// MoveWindow moves the focused tab into the frame found in direction dir.
func (w *WM) MoveWindow(dir geom.Direction) error {
	tree := w.CurrentTree()
	framesBefore := tree.FrameCount()
	if err := tree.MoveWindowBetweenFrames(dir, w.screenArea(), w.Config.Appearance.Gap); err != nil {
		return err
	}
	if tree.FrameCount() < framesBefore {
		w.Trace.Append(w.Clock(), trace.EventFrameRemoved, nil, "")
	}
	w.Trace.Append(w.Clock(), trace.EventWindowMoved, nil, "")
	w.ApplyLayout()
	return nil
}

// ResizeSplit grows (positive delta) or shrinks (negative delta) the
// nearest resizable ancestor split of the focused frame, trying axis first
// and falling back to the other axis if the focused frame has no ancestor
// split on axis.
func (w *WM) ResizeSplit(axis geom.Orientation, delta float64) error {
	tree := w.CurrentTree()
	if !tree.ResizeFocusedSplit(axis, delta) {
		other := geom.Vertical
		if axis == geom.Vertical {
			other = geom.Horizontal
		}
		tree.ResizeFocusedSplit(other, delta)
	}
	w.Trace.Append(w.Clock(), trace.EventSplitResized, nil, "")
	w.ApplyLayout()
	return nil
}

// CloseWindow asks the focused window to close.
func (w *WM) CloseWindow() error {
	handle, ok := w.CurrentTree().FocusedWindow()
	if !ok {
		return nil
	}
	return w.Backend.Close(handle)
}

// ToggleFloat flips a window between tiled and floating. If handle is zero
// the currently focused window is used.
func (w *WM) ToggleFloat(handle layout.WindowHandle) error {
	if handle == 0 {
		h, ok := w.CurrentTree().FocusedWindow()
		if !ok {
			return nil
		}
		handle = h
	}
	entry, ok := w.registry.Get(handle)
	if !ok {
		return fmt.Errorf("wm: window %v not managed", handle)
	}
	tree := w.workspaces.Tree(entry.WorkspaceIndex)
	switch entry.Placement {
	case registry.PlacementTiled:
		framesBefore := tree.FrameCount()
		if err := tree.RemoveWindow(handle); err != nil {
			return err
		}
		if tree.FrameCount() < framesBefore {
			w.Trace.Append(w.Clock(), trace.EventFrameRemoved, &handle, "")
		}
		entry.Placement = registry.PlacementFloating
		entry.FloatGeom = geom.Rect{X: 100, Y: 100, W: 640, H: 480}
	case registry.PlacementFloating:
		if err := tree.AddWindow(handle); err != nil {
			return err
		}
		frame, _ := tree.FindWindow(handle)
		entry.Placement = registry.PlacementTiled
		entry.Frame = frame
	}
	w.Trace.Append(w.Clock(), trace.EventCommand, &handle, "toggle_float")
	w.ApplyLayout()
	return nil
}

// ToggleVerticalTabs flips the focused frame's tab-bar orientation.
func (w *WM) ToggleVerticalTabs() error {
	tree := w.CurrentTree()
	focused := tree.Focused()
	tree.SetVerticalTabs(focused, !tree.VerticalTabs(focused))
	w.Trace.Append(w.Clock(), trace.EventCommand, nil, "toggle_vertical_tabs")
	w.ApplyLayout()
	return nil
}

// ToggleTag toggles handle's tag. If handle is zero, the focused window is
// used.
func (w *WM) ToggleTag(handle layout.WindowHandle) error {
	if handle == 0 {
		h, ok := w.CurrentTree().FocusedWindow()
		if !ok {
			return nil
		}
		handle = h
	}
	w.tags.Toggle(handle)
	w.Trace.Append(w.Clock(), trace.EventCommand, &handle, "toggle_tag")
	w.ApplyLayout()
	return nil
}

// Tag marks handle as tagged without toggling.
func (w *WM) Tag(handle layout.WindowHandle) error {
	if handle == 0 {
		h, ok := w.CurrentTree().FocusedWindow()
		if !ok {
			return nil
		}
		handle = h
	}
	w.tags.Tag(handle)
	w.Trace.Append(w.Clock(), trace.EventCommand, &handle, "tag")
	w.ApplyLayout()
	return nil
}

// Untag clears handle's tag.
func (w *WM) Untag(handle layout.WindowHandle) error {
	if handle == 0 {
		h, ok := w.CurrentTree().FocusedWindow()
		if !ok {
			return nil
		}
		handle = h
	}
	w.tags.Untag(handle)
	w.Trace.Append(w.Clock(), trace.EventCommand, &handle, "untag")
	w.ApplyLayout()
	return nil
}

// MoveTagged moves every tagged window into the focused frame, in
// insertion order, and clears the tag set (spec.md §4.5.5).
func (w *WM) MoveTagged() error {
	tree := w.CurrentTree()
	target := tree.Focused()
	for _, handle := range w.tags.All() {
		entry, ok := w.registry.Get(handle)
		if !ok {
			continue
		}
		srcTree := w.workspaces.Tree(entry.WorkspaceIndex)
		if entry.Placement == registry.PlacementTiled {
			framesBefore := srcTree.FrameCount()
			if err := srcTree.RemoveWindow(handle); err != nil {
				continue
			}
			if srcTree.FrameCount() < framesBefore {
				w.Trace.Append(w.Clock(), trace.EventFrameRemoved, &handle, "")
			}
		}
		if err := tree.AddWindowToFrame(target, handle); err != nil {
			continue
		}
		idx, _ := w.workspaces.Current()
		entry.Placement = registry.PlacementTiled
		entry.WorkspaceIndex = idx
		entry.Frame = target
	}
	w.tags.Clear()
	w.Trace.Append(w.Clock(), trace.EventCommand, nil, "move_tagged")
	w.ApplyLayout()
	return nil
}

// UntagAll clears every tag without moving anything.
func (w *WM) UntagAll() error {
	w.tags.Clear()
	w.Trace.Append(w.Clock(), trace.EventCommand, nil, "untag_all")
	return nil
}

// Tagged returns every currently tagged window handle.
func (w *WM) Tagged() []layout.WindowHandle { return w.tags.All() }

// Floating returns every currently floating window's registry entry.
func (w *WM) Floating() []*registry.Entry { return w.registry.Floating() }

// Urgent returns every currently urgent window handle, oldest first.
func (w *WM) Urgent() []layout.WindowHandle { return w.urgent.All() }

// FocusUrgent switches to the oldest urgent window's workspace, focuses it,
// and clears its urgency (spec.md §4.5.2, scenario S6).
func (w *WM) FocusUrgent() error {
	handle, ok := w.urgent.Front()
	if !ok {
		return nil
	}
	return w.FocusWindow(handle)
}

// Workspace switches to workspace n (WorkspaceNext/WorkspacePrev handle
// relative moves).
func (w *WM) Workspace(n int) error {
	if err := w.workspaces.Switch(n); err != nil {
		return err
	}
	w.Trace.Append(w.Clock(), trace.EventCommand, nil, fmt.Sprintf("workspace=%d", n))
	w.ApplyLayout()
	return nil
}

// WorkspaceNext/WorkspacePrev cycle the current workspace.
func (w *WM) WorkspaceNext() error {
	w.workspaces.Next()
	w.Trace.Append(w.Clock(), trace.EventCommand, nil, "workspace_next")
	w.ApplyLayout()
	return nil
}

func (w *WM) WorkspacePrev() error {
	w.workspaces.Prev()
	w.Trace.Append(w.Clock(), trace.EventCommand, nil, "workspace_prev")
	w.ApplyLayout()
	return nil
}

// CurrentWorkspace returns the index of the visible workspace.
func (w *WM) CurrentWorkspace() int {
	idx, _ := w.workspaces.Current()
	return idx
}

// MoveToWorkspace moves handle (or the focused window, if zero) to
// workspace n.
func (w *WM) MoveToWorkspace(handle layout.WindowHandle, n int) error {
	if handle == 0 {
		h, ok := w.CurrentTree().FocusedWindow()
		if !ok {
			return nil
		}
		handle = h
	}
	srcIdx, _, srcFound := w.workspaces.FindWindow(handle)
	framesBefore := 0
	if srcFound {
		framesBefore = w.workspaces.Tree(srcIdx).FrameCount()
	}
	if err := w.workspaces.MoveWindowToWorkspace(handle, n); err != nil {
		return err
	}
	if srcFound && w.workspaces.Tree(srcIdx).FrameCount() < framesBefore {
		w.Trace.Append(w.Clock(), trace.EventFrameRemoved, &handle, "")
	}
	if entry, ok := w.registry.Get(handle); ok {
		entry.WorkspaceIndex = n
		if frame, found := w.workspaces.Tree(n).FindWindow(handle); found {
			entry.Frame = frame
		}
	}
	w.Trace.Append(w.Clock(), trace.EventCommand, &handle, fmt.Sprintf("move_to_workspace=%d", n))
	w.ApplyLayout()
	return nil
}

// FocusMonitorLeft/FocusMonitorRight are always no-ops: ttwm assumes a
// single output (see SPEC_FULL.md for why xinerama wasn't wired in).
func (w *WM) FocusMonitorLeft() error  { return nil }
func (w *WM) FocusMonitorRight() error { return nil }
