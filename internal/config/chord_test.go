package config

import (
	"testing"

	"github.com/adereth/ttwm/internal/keysym"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChord_ModifiersAndKey(t *testing.T) {
	c, err := ParseChord("Mod4+Shift+q")
	require.NoError(t, err)
	assert.Equal(t, keysym.ModMask4|keysym.ModMaskShift, c.ModMask)
	assert.Equal(t, uint32(keysym.XK_q), c.KeySym)
}

func TestParseChord_NoModifiers(t *testing.T) {
	c, err := ParseChord("F1")
	require.NoError(t, err)
	assert.Equal(t, uint16(0), c.ModMask)
	assert.Equal(t, uint32(keysym.XK_F1), c.KeySym)
}

func TestParseChord_UnknownModifier(t *testing.T) {
	_, err := ParseChord("Hyper+q")
	assert.Error(t, err)
}

func TestParseChord_UnknownKey(t *testing.T) {
	_, err := ParseChord("Mod4+nonsense")
	assert.Error(t, err)
}

func TestFormatChord_RoundTrip(t *testing.T) {
	c, err := ParseChord("Mod4+Control+Shift+q")
	require.NoError(t, err)
	formatted := FormatChord(c)
	reparsed, err := ParseChord(formatted)
	require.NoError(t, err)
	assert.Equal(t, c, reparsed)
}
