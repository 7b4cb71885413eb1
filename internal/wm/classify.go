package wm

import (
	"github.com/adereth/ttwm/internal/backend"
	"github.com/adereth/ttwm/internal/geom"
	"github.com/adereth/ttwm/internal/layout"
	"github.com/adereth/ttwm/internal/registry"
)

// classification is the outcome of classify: whether and how a newly
// mapped window should be managed (spec.md §4.5.1).
type classification struct {
	ignore    bool
	placement registry.Placement
	geom      geom.Rect // only meaningful when placement == PlacementFloating
}

// classify decides how to handle a window that just asked to be mapped.
func (w *WM) classify(handle layout.WindowHandle, attrs backend.Attributes) classification {
	if attrs.OverrideRedirect || w.isOwnSurface(handle) {
		return classification{ignore: true}
	}

	floatType := attrs.Type == backend.WindowTypeDialog ||
		attrs.Type == backend.WindowTypeSplash ||
		attrs.Type == backend.WindowTypeUtility ||
		attrs.Type == backend.WindowTypeToolbar ||
		attrs.Type == backend.WindowTypeMenu ||
		attrs.Type == backend.WindowTypeTooltip

	fixedSize := attrs.MinW > 0 && attrs.MinW == attrs.MaxW && attrs.MinH > 0 && attrs.MinH == attrs.MaxH
	transient := attrs.TransientFor != 0

	if floatType || transient || fixedSize {
		rect := attrs.Geometry
		if rect.W == 0 || rect.H == 0 {
			rect.W, rect.H = 400, 300
		}
		area := w.screenArea()
		if !area.Contains(rect.X, rect.Y) {
			rect.X = area.X + (area.W-rect.W)/2
			rect.Y = area.Y + (area.H-rect.H)/2
		}
		return classification{placement: registry.PlacementFloating, geom: rect}
	}

	return classification{placement: registry.PlacementTiled}
}

// isOwnSurface reports whether handle is one of ttwm's own tab-bar
// windows, which must never be managed as a client (spec.md §4.5.1).
func (w *WM) isOwnSurface(handle layout.WindowHandle) bool {
	for _, h := range w.barWindows {
		if h == handle {
			return true
		}
	}
	return false
}
