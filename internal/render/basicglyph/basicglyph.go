// Package basicglyph is the default render.GlyphBackend: a fixed 7x13
// bitmap face needing no font files on disk. Grounded directly on
// bryanchriswhite-FocusStreamer's caption renderer, which drives the same
// face through a font.Drawer with a fixed.Point26_6 baseline.
package basicglyph

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face wraps basicfont.Face7x13 to satisfy render.GlyphBackend.
type Face struct {
	face font.Face
}

// New returns the default glyph backend.
func New() *Face {
	return &Face{face: basicfont.Face7x13}
}

// Advance returns the pixel width s would occupy if drawn.
func (f *Face) Advance(s string) int {
	d := &font.Drawer{Face: f.face}
	return d.MeasureString(s).Round()
}

// Draw renders s onto dst with its baseline at (x, baselineY).
func (f *Face) Draw(dst draw.Image, x, baselineY int, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(baselineY)},
	}
	d.DrawString(s)
}

// LineHeight returns the face's recommended line spacing.
func (f *Face) LineHeight() int {
	return f.face.Metrics().Height.Round()
}
