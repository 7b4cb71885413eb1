package trace

import (
	"fmt"

	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
)

// ViolationKind names a category of invariant breach.
type ViolationKind string

const (
	ViolationFocusedWindowMissing ViolationKind = "focused_window_missing"
	ViolationFocusedFrameInvalid  ViolationKind = "focused_frame_invalid"
	ViolationUntrackedWindow      ViolationKind = "untracked_window"
	ViolationRatioOutOfBounds     ViolationKind = "ratio_out_of_bounds"
	ViolationEmptyNonRootFrame    ViolationKind = "empty_non_root_frame"
	ViolationFocusedTabOutOfRange ViolationKind = "focused_tab_out_of_range"
	ViolationStaleTabBarSurface   ViolationKind = "stale_tab_bar_surface"
)

// Violation is one failed check, with a human-readable description.
type Violation struct {
	Kind        ViolationKind `json:"kind"`
	Description string        `json:"description"`
}

// Result is the validator's verdict (spec.md §4.8).
type Result struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// Validate checks tree and reg against the invariants of spec.md §4.8. It
// is pure and read-only: it never mutates tree or reg, and never panics on
// malformed input — every check degrades to a reported violation instead.
// barFrames lists the frames of tree's workspace that currently own a
// tab-bar surface window (WM.BarFrames) - any entry that no longer names a
// live frame in tree is a stale surface that should have been torn down
// when its frame was pruned.
func Validate(tree *layout.Tree, reg *registry.Registry, barFrames []layout.NodeId) Result {
	var violations []Violation

	focused := tree.Focused()
	if !tree.IsFrame(focused) {
		violations = append(violations, Violation{
			Kind:        ViolationFocusedFrameInvalid,
			Description: fmt.Sprintf("focused node %v is not a frame", focused),
		})
	} else {
		windows := tree.FrameWindows(focused)
		tab := tree.FocusedTab(focused)
		limit := max(1, len(windows))
		if tab >= limit || tab < 0 {
			violations = append(violations, Violation{
				Kind:        ViolationFocusedTabOutOfRange,
				Description: fmt.Sprintf("focused frame %v has focused_tab=%d, window count=%d", focused, tab, len(windows)),
			})
		}
		if w, ok := tree.FocusedWindow(); ok {
			if _, found := reg.Get(w); !found {
				violations = append(violations, Violation{
					Kind:        ViolationFocusedWindowMissing,
					Description: fmt.Sprintf("focused window %v has no registry entry", w),
				})
			}
		}
	}

	for _, id := range tree.Frames() {
		windows := tree.FrameWindows(id)
		tab := tree.FocusedTab(id)
		limit := max(1, len(windows))
		if tab >= limit || tab < 0 {
			violations = append(violations, Violation{
				Kind:        ViolationFocusedTabOutOfRange,
				Description: fmt.Sprintf("frame %v has focused_tab=%d, window count=%d", id, tab, len(windows)),
			})
		}
		// The focused frame may be empty: a split leaves its new, empty
		// half focused until a window lands in it.
		if len(windows) == 0 && id != tree.Root() && id != focused {
			violations = append(violations, Violation{
				Kind:        ViolationEmptyNonRootFrame,
				Description: fmt.Sprintf("non-root frame %v is empty and should have been pruned", id),
			})
		}
		for _, w := range windows {
			if _, found := reg.Get(w); !found {
				violations = append(violations, Violation{
					Kind:        ViolationUntrackedWindow,
					Description: fmt.Sprintf("window %v in frame %v has no registry entry", w, id),
				})
			}
		}
	}

	checkRatios(tree, tree.Root(), &violations)

	for _, id := range barFrames {
		if !tree.IsFrame(id) {
			violations = append(violations, Violation{
				Kind:        ViolationStaleTabBarSurface,
				Description: fmt.Sprintf("tab-bar surface references frame %v which no longer exists", id),
			})
		}
	}

	return Result{Valid: len(violations) == 0, Violations: violations}
}

func checkRatios(tree *layout.Tree, id layout.NodeId, violations *[]Violation) {
	if !tree.IsSplit(id) {
		return
	}
	_, ratio, first, second, ok := tree.SplitInfo(id)
	if !ok {
		return
	}
	if ratio < 0.1 || ratio > 0.9 {
		*violations = append(*violations, Violation{
			Kind:        ViolationRatioOutOfBounds,
			Description: fmt.Sprintf("split %v has ratio %f outside [0.1, 0.9]", id, ratio),
		})
	}
	checkRatios(tree, first, violations)
	checkRatios(tree, second, violations)
}
