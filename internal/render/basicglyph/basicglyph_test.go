package basicglyph

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance_PositiveForNonEmptyString(t *testing.T) {
	f := New()
	assert.Greater(t, f.Advance("hello"), 0)
	assert.Equal(t, 0, f.Advance(""))
}

func TestDraw_PaintsPixels(t *testing.T) {
	f := New()
	img := image.NewRGBA(image.Rect(0, 0, 100, 20))
	f.Draw(img, 2, 15, "hi", color.White)

	painted := false
	for y := 0; y < 20; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{}) {
				painted = true
			}
		}
	}
	assert.True(t, painted)
}

func TestLineHeight_Positive(t *testing.T) {
	f := New()
	assert.Greater(t, f.LineHeight(), 0)
}
