package config

import (
	"fmt"
	"strings"

	"github.com/adereth/ttwm/internal/backend"
	"github.com/adereth/ttwm/internal/keysym"
)

// ParseChord parses a keybinding string of the form "Mod4+Shift+q" into a
// backend.Chord. Accepted modifier tokens are Mod4, Shift, Control, Alt
// (spec.md §4.9); the final token must name a keysym known to the keysym
// package.
func ParseChord(s string) (backend.Chord, error) {
	parts := strings.Split(s, "+")
	if len(parts) == 0 {
		return backend.Chord{}, fmt.Errorf("config: empty chord")
	}
	var mask uint16
	for _, tok := range parts[:len(parts)-1] {
		switch tok {
		case "Mod4":
			mask |= keysym.ModMask4
		case "Shift":
			mask |= keysym.ModMaskShift
		case "Control":
			mask |= keysym.ModMaskControl
		case "Alt":
			mask |= keysym.ModMask1
		default:
			return backend.Chord{}, fmt.Errorf("config: unknown modifier %q in chord %q", tok, s)
		}
	}
	keyTok := parts[len(parts)-1]
	sym, ok := keysym.ByName(keyTok)
	if !ok {
		return backend.Chord{}, fmt.Errorf("config: unknown key %q in chord %q", keyTok, s)
	}
	return backend.Chord{ModMask: mask, KeySym: uint32(sym)}, nil
}

// FormatChord is the inverse of ParseChord, used when ttwm needs to echo a
// binding back (e.g. IPC introspection).
func FormatChord(c backend.Chord) string {
	var b strings.Builder
	if c.ModMask&keysym.ModMask4 != 0 {
		b.WriteString("Mod4+")
	}
	if c.ModMask&keysym.ModMaskControl != 0 {
		b.WriteString("Control+")
	}
	if c.ModMask&keysym.ModMask1 != 0 {
		b.WriteString("Alt+")
	}
	if c.ModMask&keysym.ModMaskShift != 0 {
		b.WriteString("Shift+")
	}
	b.WriteString(keysym.Name(keysym.Keysym(c.KeySym)))
	return b.String()
}
