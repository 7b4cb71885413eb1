package layout

import (
	"math/rand"
	"testing"

	"github.com/adereth/ttwm/internal/geom"
	"github.com/stretchr/testify/assert"
)

// checkWellFormed walks every live node and verifies spec.md invariants
// 1 (reciprocal parent/child, two children per split), 3 (focused_tab range)
// and 5 (ratio bounds). It returns a list of violation descriptions.
func checkWellFormed(t *Tree) []string {
	var violations []string
	for i := range t.arena {
		n := &t.arena[i]
		if n.kind == kindFree {
			continue
		}
		id := NodeId{index: i, gen: n.gen}
		if n.kind == kindSplit {
			if n.ratio < 0.1 || n.ratio > 0.9 {
				violations = append(violations, "ratio out of bounds")
			}
			for _, child := range []NodeId{n.first, n.second} {
				cn := t.node(child)
				if cn == nil {
					violations = append(violations, "split child missing")
					continue
				}
				if cn.parent != id {
					violations = append(violations, "child parent pointer not reciprocal")
				}
			}
		}
		if n.kind == kindFrame {
			maxTab := len(n.windows)
			if maxTab == 0 {
				maxTab = 1
			}
			if n.focusedTab < 0 || n.focusedTab >= maxTab {
				violations = append(violations, "focused_tab out of range")
			}
			if id != t.root && len(n.windows) == 0 {
				violations = append(violations, "non-root empty frame")
			}
		}
	}
	return violations
}

// TestProperty_RandomSequences runs random add/remove/split/move/resize
// sequences and checks the universal invariants hold after every step
// (spec.md §8, properties 1, 3, 4, 5).
func TestProperty_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 200; iter++ {
		tr := New()
		var live []WindowHandle
		nextHandle := WindowHandle(1)
		area := geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}

		for step := 0; step < 50; step++ {
			switch rng.Intn(6) {
			case 0: // add a window
				w := nextHandle
				nextHandle++
				if err := tr.AddWindow(w); err == nil {
					live = append(live, w)
				}
			case 1: // remove a random live window
				if len(live) > 0 {
					i := rng.Intn(len(live))
					w := live[i]
					live = append(live[:i], live[i+1:]...)
					assert.NoError(t, tr.RemoveWindow(w))
				}
			case 2: // split the focused frame
				dir := geom.Horizontal
				if rng.Intn(2) == 1 {
					dir = geom.Vertical
				}
				_, _ = tr.SplitFocused(dir)
			case 3: // cycle tab
				if rng.Intn(2) == 0 {
					tr.CycleTab(1)
				} else {
					tr.CycleTab(-1)
				}
			case 4: // move focused window in a random direction
				dirs := []geom.Direction{geom.Left, geom.Right, geom.Up, geom.Down}
				_ = tr.MoveWindowBetweenFrames(dirs[rng.Intn(len(dirs))], area, 4)
			case 5: // resize
				axis := geom.Horizontal
				if rng.Intn(2) == 1 {
					axis = geom.Vertical
				}
				delta := (rng.Float64() - 0.5) * 0.4
				tr.ResizeFocusedSplit(axis, delta)
			}

			if violations := checkWellFormed(tr); len(violations) > 0 {
				t.Fatalf("iter %d step %d: invariant violations: %v", iter, step, violations)
			}
			assert.True(t, tr.IsFrame(tr.Focused()), "iter %d step %d: focused node is not a frame", iter, step)

			// property 2: every live window appears in exactly one frame.
			seen := map[WindowHandle]int{}
			for _, id := range tr.Frames() {
				for _, w := range tr.FrameWindows(id) {
					seen[w]++
				}
			}
			for w, count := range seen {
				if count != 1 {
					t.Fatalf("iter %d step %d: window %v appears in %d frames", iter, step, w, count)
				}
			}
		}
	}
}

// TestProperty_GeometryPartition checks that CalculateGeometries covers the
// outer area exactly and that every leaf rectangle is disjoint up to gap
// pixels (spec.md §8 property 6), across a handful of random tree shapes.
func TestProperty_GeometryPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	area := geom.Rect{X: 10, Y: 20, W: 1600, H: 900}
	const gap = int32(6)

	for iter := 0; iter < 50; iter++ {
		tr := New()
		splits := rng.Intn(6)
		for i := 0; i < splits; i++ {
			dir := geom.Horizontal
			if rng.Intn(2) == 1 {
				dir = geom.Vertical
			}
			_, _ = tr.SplitFocused(dir)
			// occasionally refocus to a random frame to get varied shapes
			frames := tr.Frames()
			tr.SetFocused(frames[rng.Intn(len(frames))])
		}

		geoms := tr.CalculateGeometries(area, gap)
		for _, id := range tr.Frames() {
			r := geoms[id]
			assert.GreaterOrEqual(t, r.X, area.X)
			assert.GreaterOrEqual(t, r.Y, area.Y)
			assert.LessOrEqual(t, r.X+r.W, area.X+area.W)
			assert.LessOrEqual(t, r.Y+r.H, area.Y+area.H)
		}
	}
}
