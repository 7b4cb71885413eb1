package render

import (
	"image/color"
	"image/draw"
	"testing"

	"github.com/adereth/ttwm/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGlyphs gives every rune a fixed width so tests don't depend on the
// real bitmap face's metrics.
type fakeGlyphs struct{ charWidth int }

func (f *fakeGlyphs) Advance(s string) int          { return len(s) * f.charWidth }
func (f *fakeGlyphs) Draw(draw.Image, int, int, string, color.Color) {}
func (f *fakeGlyphs) LineHeight() int               { return 13 }

func TestRender_SingleTab_NoBar(t *testing.T) {
	r := New(config.Default(), &fakeGlyphs{charWidth: 6})
	img := r.Render(1, []Tab{{Title: "one"}}, 400, false)
	assert.Nil(t, img)
}

func TestRender_TwoTabs_DrawsBar(t *testing.T) {
	r := New(config.Default(), &fakeGlyphs{charWidth: 6})
	img := r.Render(1, []Tab{{Title: "a"}, {Title: "b"}}, 400, false)
	require.NotNil(t, img)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, int(config.Default().Appearance.TabBarHeight), img.Bounds().Dy())
}

func TestHitTest_MatchesRenderedColumns(t *testing.T) {
	r := New(config.Default(), &fakeGlyphs{charWidth: 6})
	r.Render(1, []Tab{{Title: "a"}, {Title: "b"}, {Title: "c"}}, 300, false)

	hit := r.HitTest(1, 5, 5)
	assert.False(t, hit.Empty)
	assert.Equal(t, 0, hit.Index)

	hit = r.HitTest(1, 150, 5)
	assert.False(t, hit.Empty)
	assert.Equal(t, 1, hit.Index)
}

func TestHitTest_UnknownFrame_Empty(t *testing.T) {
	r := New(config.Default(), &fakeGlyphs{charWidth: 6})
	hit := r.HitTest(99, 0, 0)
	assert.True(t, hit.Empty)
}

func TestTruncate_ShortensLongTitles(t *testing.T) {
	r := New(config.Default(), &fakeGlyphs{charWidth: 6})
	got := r.truncate("a very long window title indeed", 60)
	assert.LessOrEqual(t, r.glyphs.Advance(got), 60)
	assert.Contains(t, got, "…")
}
