package wm

import (
	"fmt"

	"github.com/adereth/ttwm/internal/config"
	"github.com/adereth/ttwm/internal/geom"
)

// Dispatch runs a named keybinding action (events.go's onKeyPress) through
// the command methods in commands.go. IPC requests do not pass through
// Dispatch; internal/ipc calls those same command methods directly
// (spec.md §4.7: "every mutation command runs the same code path as its
// keybinding counterpart").
func (w *WM) Dispatch(action string) error {
	switch config.Action(action) {
	case config.ActionCycleTabForward:
		return w.CycleTab(true)
	case config.ActionCycleTabBackward:
		return w.CycleTab(false)

	case config.ActionFocusTab1:
		return w.FocusTab(0)
	case config.ActionFocusTab2:
		return w.FocusTab(1)
	case config.ActionFocusTab3:
		return w.FocusTab(2)
	case config.ActionFocusTab4:
		return w.FocusTab(3)
	case config.ActionFocusTab5:
		return w.FocusTab(4)
	case config.ActionFocusTab6:
		return w.FocusTab(5)
	case config.ActionFocusTab7:
		return w.FocusTab(6)
	case config.ActionFocusTab8:
		return w.FocusTab(7)
	case config.ActionFocusTab9:
		return w.FocusTab(8)

	case config.ActionFocusNext:
		return w.CycleTab(true)
	case config.ActionFocusPrev:
		return w.CycleTab(false)

	case config.ActionFocusFrameLeft:
		return w.FocusFrame(geom.Left)
	case config.ActionFocusFrameRight:
		return w.FocusFrame(geom.Right)
	case config.ActionFocusFrameUp:
		return w.FocusFrame(geom.Up)
	case config.ActionFocusFrameDown:
		return w.FocusFrame(geom.Down)

	case config.ActionMoveWindowLeft:
		return w.MoveWindow(geom.Left)
	case config.ActionMoveWindowRight:
		return w.MoveWindow(geom.Right)
	case config.ActionMoveWindowUp:
		return w.MoveWindow(geom.Up)
	case config.ActionMoveWindowDown:
		return w.MoveWindow(geom.Down)

	case config.ActionResizeGrow:
		return w.ResizeSplit(geom.Horizontal, 0.05)
	case config.ActionResizeShrink:
		return w.ResizeSplit(geom.Horizontal, -0.05)

	case config.ActionSplitHorizontal:
		return w.Split(geom.Horizontal)
	case config.ActionSplitVertical:
		return w.Split(geom.Vertical)

	case config.ActionCloseWindow:
		return w.CloseWindow()
	case config.ActionToggleFloat:
		return w.ToggleFloat(0)
	case config.ActionToggleVerticalTabs:
		return w.ToggleVerticalTabs()
	case config.ActionQuit:
		w.Quit()
		return nil

	case config.ActionWorkspaceNext:
		return w.WorkspaceNext()
	case config.ActionWorkspacePrev:
		return w.WorkspacePrev()

	case config.ActionWorkspace1:
		return w.Workspace(0)
	case config.ActionWorkspace2:
		return w.Workspace(1)
	case config.ActionWorkspace3:
		return w.Workspace(2)
	case config.ActionWorkspace4:
		return w.Workspace(3)
	case config.ActionWorkspace5:
		return w.Workspace(4)
	case config.ActionWorkspace6:
		return w.Workspace(5)
	case config.ActionWorkspace7:
		return w.Workspace(6)
	case config.ActionWorkspace8:
		return w.Workspace(7)
	case config.ActionWorkspace9:
		return w.Workspace(8)

	case config.ActionTagWindow:
		return w.ToggleTag(0)
	case config.ActionMoveTaggedWindows:
		return w.MoveTagged()
	case config.ActionUntagAll:
		return w.UntagAll()
	case config.ActionFocusUrgent:
		return w.FocusUrgent()

	case config.ActionFocusMonitorLeft:
		return w.FocusMonitorLeft()
	case config.ActionFocusMonitorRight:
		return w.FocusMonitorRight()
	}
	return fmt.Errorf("wm: unknown action %q", action)
}
