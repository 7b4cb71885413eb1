package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing_OverwritesOldest(t *testing.T) {
	r := NewRing(3)
	r.Append(1, EventDisplay, nil, "a")
	r.Append(2, EventDisplay, nil, "b")
	r.Append(3, EventDisplay, nil, "c")
	r.Append(4, EventDisplay, nil, "d")

	last := r.Last(0)
	require.Len(t, last, 3)
	assert.Equal(t, "b", last[0].Details)
	assert.Equal(t, "c", last[1].Details)
	assert.Equal(t, "d", last[2].Details)
}

func TestRing_Last_ClampsToAvailable(t *testing.T) {
	r := NewRing(10)
	r.Append(1, EventDisplay, nil, "a")
	r.Append(2, EventDisplay, nil, "b")

	assert.Len(t, r.Last(100), 2)
	assert.Len(t, r.Last(1), 1)
}

func TestRing_SequenceMonotonic(t *testing.T) {
	r := NewRing(5)
	e1 := r.Append(1, EventDisplay, nil, "a")
	e2 := r.Append(1, EventDisplay, nil, "b")
	assert.Equal(t, uint64(0), e1.Sequence)
	assert.Equal(t, uint64(1), e2.Sequence)
}
