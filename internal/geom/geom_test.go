package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRect_CoversExactly(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 1000, H: 500}
	first, second := SplitRect(r, Horizontal, 0.5, 4)
	assert.Equal(t, r.W, first.W+4+second.W)
	assert.Equal(t, r.H, first.H)
	assert.Equal(t, r.H, second.H)
	assert.Equal(t, r.X, first.X)
	assert.Equal(t, first.X+first.W+4, second.X)
}

func TestSplitRect_Vertical(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 400, H: 900}
	first, second := SplitRect(r, Vertical, 0.25, 2)
	assert.Equal(t, r.H, first.H+2+second.H)
	assert.Equal(t, r.W, first.W)
	assert.Equal(t, r.W, second.W)
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.1, ClampRatio(-5))
	assert.Equal(t, 0.9, ClampRatio(5))
	assert.Equal(t, 0.5, ClampRatio(0.5))
}

func TestIsBeyond(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, H: 100}
	right := Rect{X: 150, Y: 0, W: 100, H: 100}
	assert.True(t, IsBeyond(a, right, Right))
	assert.False(t, IsBeyond(a, right, Left))
}

func TestDistanceSq(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 10, Y: 0, W: 10, H: 10}
	assert.Equal(t, int64(100), DistanceSq(a, b))
}
