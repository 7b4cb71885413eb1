// Package render implements the tab-bar renderer (spec.md C6): turning a
// frame's tab list into an offscreen pixel surface, and the inverse
// hit-test from a click position back to a tab index. Drawing is grounded
// on bryanchriswhite-FocusStreamer's placeholder-frame renderer
// (image.RGBA + draw.Draw + font.Drawer over basicfont.Face7x13 +
// fixed.Point26_6), generalised from a single centred caption to a row (or
// column) of titled, coloured tab rectangles.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/adereth/ttwm/internal/config"
	"github.com/adereth/ttwm/internal/layout"
)

// TabState selects the background colour a tab is drawn with (spec.md
// §4.6).
type TabState uint8

const (
	TabFocused TabState = iota
	TabUnfocusedInFocusedFrame
	TabVisibleInUnfocusedFrame
	TabTagged
	TabUrgent
)

// Tab is everything the renderer needs to draw one tab.
type Tab struct {
	Window   layout.WindowHandle
	Title    string
	IconARGB []uint32 // 20x20 if present
	State    TabState
}

const (
	minTabWidth   = 80
	maxTabWidth   = 200
	iconSize      = 20
	iconPad       = 2
	horizontalPad = 6
)

// GlyphBackend is the abstracted font-rasterisation capability (spec.md
// §1's "font rasterisation" external collaborator). basicglyph.Face is the
// default implementation; tests can substitute a fake that reports fixed
// widths without loading a real face.
type GlyphBackend interface {
	// Advance returns the pixel width s would occupy if drawn.
	Advance(s string) int
	// Draw renders s onto dst with its baseline at (x, baselineY).
	Draw(dst draw.Image, x, baselineY int, s string, col color.Color)
	// LineHeight returns the face's recommended line spacing.
	LineHeight() int
}

// Renderer draws tab-bar surfaces for frames and answers hit-tests against
// the geometry it last used to draw them.
type Renderer struct {
	cfg    *config.Config
	glyphs GlyphBackend

	// last records the width/vertical-ness/tab-count used for the most
	// recent Render call per frame, so HitTest can reconstruct the same
	// column layout without the caller re-supplying it.
	last map[layout.NodeId]layoutInfo
}

type layoutInfo struct {
	width    int
	vertical bool
	count    int
}

// New returns a Renderer drawing with the given config and glyph backend.
func New(cfg *config.Config, glyphs GlyphBackend) *Renderer {
	return &Renderer{cfg: cfg, glyphs: glyphs, last: make(map[layout.NodeId]layoutInfo)}
}

// colorFor maps a TabState to its configured ARGB colour.
func (r *Renderer) colorFor(s TabState) color.Color {
	var argb uint32
	switch s {
	case TabFocused:
		argb = r.cfg.Colors.Focused
	case TabUnfocusedInFocusedFrame:
		argb = r.cfg.Colors.UnfocusedInFocused
	case TabVisibleInUnfocusedFrame:
		argb = r.cfg.Colors.VisibleInUnfocused
	case TabTagged:
		argb = r.cfg.Colors.Tagged
	case TabUrgent:
		argb = r.cfg.Colors.Urgent
	}
	return argbColor(argb)
}

func argbColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Render draws the tab bar for frame into a fresh surface of the given
// width (horizontal bars) or the configured vertical width (vertical
// bars), sized to the bar's thickness on the other axis. A frame with
// fewer than two tabs and no forced vertical-tabs mode has no bar to draw
// and Render returns nil (apply-layout then destroys any bar surface the
// frame had).
func (r *Renderer) Render(frame layout.NodeId, tabs []Tab, width int, vertical bool) *image.RGBA {
	if len(tabs) < 2 && !vertical {
		delete(r.last, frame)
		return nil
	}
	r.last[frame] = layoutInfo{width: width, vertical: vertical, count: len(tabs)}

	thickness := int(r.cfg.Appearance.TabBarHeight)
	var img *image.RGBA
	if vertical {
		thickness = int(r.cfg.Appearance.VerticalTabWidth)
		tabH := 0
		if len(tabs) > 0 {
			tabH = width / len(tabs)
		}
		img = image.NewRGBA(image.Rect(0, 0, thickness, max(tabH*len(tabs), thickness)))
	} else {
		img = image.NewRGBA(image.Rect(0, 0, width, thickness))
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(argbColor(r.cfg.Colors.TabBarBackground)), image.Point{}, draw.Src)

	if vertical {
		r.renderVertical(img, tabs, width, thickness)
	} else {
		r.renderHorizontal(img, tabs, width, thickness)
	}
	return img
}

func (r *Renderer) renderHorizontal(img *image.RGBA, tabs []Tab, width, height int) {
	n := len(tabs)
	if n == 0 {
		return
	}
	tabWidth := width / n
	if tabWidth < minTabWidth {
		tabWidth = minTabWidth
	}
	if tabWidth > maxTabWidth {
		tabWidth = maxTabWidth
	}
	x := 0
	for _, tab := range tabs {
		rect := image.Rect(x, 0, min(x+tabWidth, width), height)
		draw.Draw(img, rect, image.NewUniform(r.colorFor(tab.State)), image.Point{}, draw.Src)

		textX := rect.Min.X + horizontalPad
		if len(tab.IconARGB) == iconSize*iconSize && r.cfg.Appearance.ShowIcons {
			drawIcon(img, tab.IconARGB, rect.Min.X+iconPad, (height-iconSize)/2)
			textX += iconSize + iconPad
		}
		title := r.truncate(tab.Title, rect.Dx()-(textX-rect.Min.X)-horizontalPad)
		baseline := height/2 + r.glyphs.LineHeight()/2
		r.glyphs.Draw(img, textX, baseline, title, argbColor(r.cfg.Colors.TabText))

		x += tabWidth
	}
}

func (r *Renderer) renderVertical(img *image.RGBA, tabs []Tab, totalHeight, width int) {
	n := len(tabs)
	if n == 0 {
		return
	}
	tabHeight := totalHeight / n
	y := 0
	for _, tab := range tabs {
		rect := image.Rect(0, y, width, y+tabHeight)
		draw.Draw(img, rect, image.NewUniform(r.colorFor(tab.State)), image.Point{}, draw.Src)
		if len(tab.IconARGB) == iconSize*iconSize && r.cfg.Appearance.ShowIcons {
			drawIcon(img, tab.IconARGB, (width-iconSize)/2, y+(tabHeight-iconSize)/2)
		}
		y += tabHeight
	}
}

func drawIcon(dst *image.RGBA, argb []uint32, x0, y0 int) {
	for i, px := range argb {
		row, col := i/iconSize, i%iconSize
		dst.Set(x0+col, y0+row, argbColor(px))
	}
}

// truncate shortens s with an ellipsis so it fits within maxWidth pixels,
// measured by the glyph backend (spec.md §4.6: "truncated with ellipsis").
func (r *Renderer) truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if r.glyphs.Advance(s) <= maxWidth {
		return s
	}
	const ellipsis = "…"
	ellipsisWidth := r.glyphs.Advance(ellipsis)
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if r.glyphs.Advance(string(runes))+ellipsisWidth <= maxWidth {
			return strings.TrimRight(string(runes), " ") + ellipsis
		}
	}
	return ellipsis
}

// TabIndex identifies a hit tab; Empty is returned when the click lands in
// the bar's background but no tab: past the last tab when the clamped tab
// widths do not fill the bar, or in the zero-tab case.
type TabIndex struct {
	Index int
	Empty bool
}

// HitTest maps a click at (localX, localY) within frame's last-rendered
// tab bar back to a tab index (spec.md §4.6).
func (r *Renderer) HitTest(frame layout.NodeId, localX, localY int) TabIndex {
	info, ok := r.last[frame]
	if !ok || info.count == 0 {
		return TabIndex{Empty: true}
	}
	if info.vertical {
		tabHeight := info.width / info.count
		if tabHeight <= 0 {
			return TabIndex{Empty: true}
		}
		idx := localY / tabHeight
		if idx < 0 || idx >= info.count {
			return TabIndex{Empty: true}
		}
		return TabIndex{Index: idx}
	}
	tabWidth := info.width / info.count
	if tabWidth < minTabWidth {
		tabWidth = minTabWidth
	}
	if tabWidth > maxTabWidth {
		tabWidth = maxTabWidth
	}
	if tabWidth <= 0 {
		return TabIndex{Empty: true}
	}
	idx := localX / tabWidth
	if idx < 0 || idx >= info.count {
		return TabIndex{Empty: true}
	}
	return TabIndex{Index: idx}
}
