package layout

import "fmt"

// NumWorkspaces is the fixed number of workspaces the WM maintains (spec.md
// §3: "The set holds N=9 workspaces").
const NumWorkspaces = 9

// Workspaces is the fixed-size array of independent layout trees plus the
// index of the one currently shown.
type Workspaces struct {
	trees   [NumWorkspaces]*Tree
	current int
}

// NewWorkspaces builds a fresh workspace set, each workspace holding a
// single empty root frame.
func NewWorkspaces() *Workspaces {
	ws := &Workspaces{}
	for i := range ws.trees {
		ws.trees[i] = New()
	}
	return ws
}

// Current returns the index and tree of the current workspace.
func (w *Workspaces) Current() (int, *Tree) {
	return w.current, w.trees[w.current]
}

// Tree returns the tree for workspace i, or nil if i is out of range.
func (w *Workspaces) Tree(i int) *Tree {
	if i < 0 || i >= NumWorkspaces {
		return nil
	}
	return w.trees[i]
}

// Switch changes the current workspace index. Returns an error for an
// out-of-range index.
func (w *Workspaces) Switch(i int) error {
	if i < 0 || i >= NumWorkspaces {
		return fmt.Errorf("layout: workspace index %d out of range", i)
	}
	w.current = i
	return nil
}

// Next switches to the next workspace, wrapping around.
func (w *Workspaces) Next() int {
	w.current = (w.current + 1) % NumWorkspaces
	return w.current
}

// Prev switches to the previous workspace, wrapping around.
func (w *Workspaces) Prev() int {
	w.current = (w.current - 1 + NumWorkspaces) % NumWorkspaces
	return w.current
}

// FindWindow scans every workspace for w and reports which one holds it.
func (w *Workspaces) FindWindow(handle WindowHandle) (workspace int, frame NodeId, ok bool) {
	for i, t := range w.trees {
		if f, found := t.FindWindow(handle); found {
			return i, f, true
		}
	}
	return 0, Nil, false
}

// MoveWindowToWorkspace removes w from its current workspace's tree and adds
// it to workspace j's focused frame.
func (w *Workspaces) MoveWindowToWorkspace(handle WindowHandle, j int) error {
	if j < 0 || j >= NumWorkspaces {
		return fmt.Errorf("layout: workspace index %d out of range", j)
	}
	srcIdx, _, ok := w.FindWindow(handle)
	if !ok {
		return fmt.Errorf("layout: window %v not found in any workspace", handle)
	}
	if srcIdx == j {
		return nil
	}
	if err := w.trees[srcIdx].RemoveWindow(handle); err != nil {
		return err
	}
	return w.trees[j].AddWindow(handle)
}
