package ipc

import (
	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/trace"
	"github.com/adereth/ttwm/internal/wm"
)

// Dispatch runs one decoded request against w and returns the response to
// write back. Every mutation here calls the exact same wm.WM method its
// keybinding counterpart does (spec.md §4.7).
func Dispatch(w *wm.WM, req Request) Response {
	switch req.Command {
	case "get_state":
		return stateResponse(w.StateSnapshot())
	case "get_layout":
		return stateResponse(w.LayoutSnapshot())
	case "get_windows":
		return stateResponse(w.Windows())
	case "get_focused":
		handle, ok := w.FocusedWindow()
		if !ok {
			return stateResponse(nil)
		}
		return stateResponse(handle)

	case "focus_window":
		return runErr(w.FocusWindow(req.Window))
	case "focus_tab":
		return runErr(w.FocusTab(req.Index - 1))
	case "focus_frame":
		dir, ok := parseDirection(req.Arg)
		if !ok {
			return errorResponse("bad_args")
		}
		return runErr(w.FocusFrame(dir))
	case "split":
		axis, ok := parseOrientation(req.Arg)
		if !ok {
			return errorResponse("bad_args")
		}
		return runErr(w.Split(axis))
	case "move_window":
		dir, ok := parseMoveDirection(req.Arg)
		if !ok {
			return errorResponse("bad_args")
		}
		return runErr(w.MoveWindow(dir))
	case "resize_split":
		axis, delta, ok := parseResize(req)
		if !ok {
			return errorResponse("bad_args")
		}
		return runErr(w.ResizeSplit(axis, delta))
	case "cycle_tab":
		forward, ok := parseForwardBackward(req.Arg)
		if !ok {
			return errorResponse("bad_args")
		}
		return runErr(w.CycleTab(forward))
	case "close_window":
		return runErr(w.CloseWindow())
	case "toggle_float":
		return runErr(w.ToggleFloat(req.Window))
	case "toggle_vertical_tabs":
		return runErr(w.ToggleVerticalTabs())

	case "tag":
		return runErr(w.Tag(req.Window))
	case "untag":
		return runErr(w.Untag(req.Window))
	case "toggle_tag":
		return runErr(w.ToggleTag(req.Window))
	case "move_tagged":
		return runErr(w.MoveTagged())
	case "untag_all":
		return runErr(w.UntagAll())
	case "tagged":
		return stateResponse(w.Tagged())
	case "floating":
		return stateResponse(w.Floating())
	case "urgent":
		return stateResponse(w.Urgent())
	case "focus_urgent":
		return runErr(w.FocusUrgent())

	case "workspace":
		return dispatchWorkspace(w, req)
	case "current_workspace":
		return stateResponse(w.CurrentWorkspace())
	case "move_to_workspace":
		if req.N == nil {
			return errorResponse("bad_args")
		}
		return runErr(w.MoveToWorkspace(req.Window, *req.N))

	case "validate_state":
		return validationResponse(trace.Validate(w.CurrentTree(), w.Registry(), w.BarFrames()))
	case "get_event_log":
		return stateResponse(w.EventLog(req.Count))

	case "quit":
		w.Quit()
		return okResponse()

	default:
		return errorResponse("invalid_command")
	}
}

func runErr(err error) Response {
	if err != nil {
		return errorResponse("bad_args")
	}
	return okResponse()
}

func dispatchWorkspace(w *wm.WM, req Request) Response {
	switch req.Arg {
	case "next":
		return runErr(w.WorkspaceNext())
	case "prev":
		return runErr(w.WorkspacePrev())
	case "":
		if req.N == nil {
			return errorResponse("bad_args")
		}
		return runErr(w.Workspace(*req.N))
	default:
		return errorResponse("bad_args")
	}
}

func parseDirection(s string) (geom.Direction, bool) {
	switch s {
	case "left":
		return geom.Left, true
	case "right":
		return geom.Right, true
	case "up":
		return geom.Up, true
	case "down":
		return geom.Down, true
	default:
		return 0, false
	}
}

// parseMoveDirection accepts the direction words plus forward/backward as
// aliases for right/left, matching the IPC table's "forward|backward or
// direction" (spec.md §6); the keybindable action enum only exposes the
// four directions, so forward/backward exists for control-socket clients.
func parseMoveDirection(s string) (geom.Direction, bool) {
	switch s {
	case "forward":
		return geom.Right, true
	case "backward":
		return geom.Left, true
	default:
		return parseDirection(s)
	}
}

func parseOrientation(s string) (geom.Orientation, bool) {
	switch s {
	case "horizontal":
		return geom.Horizontal, true
	case "vertical":
		return geom.Vertical, true
	default:
		return 0, false
	}
}

func parseForwardBackward(s string) (forward bool, ok bool) {
	switch s {
	case "forward", "":
		return true, true
	case "backward":
		return false, true
	default:
		return false, false
	}
}

const defaultResizeStep = 0.05

func parseResize(req Request) (geom.Orientation, float64, bool) {
	axis := geom.Horizontal
	if req.Delta != nil {
		return axis, *req.Delta, true
	}
	switch req.Arg {
	case "grow":
		return axis, defaultResizeStep, true
	case "shrink":
		return axis, -defaultResizeStep, true
	default:
		return axis, 0, false
	}
}
