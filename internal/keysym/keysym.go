// Package keysym provides the subset of X11 keysym constants ttwm's default
// keybindings and config parser need, plus a mapping from config-file token
// names to values. Values are taken from the standard X11 keysymdef.h
// numbering, the same source driusan/dewm's keysym package draws its
// constants from (see other_examples/…dewm__main.go for the usage pattern
// this package's callers follow).
package keysym

// Keysym is an X11 keysym value.
type Keysym uint32

// Letters and digits (keysymdef.h: lowercase letters sit at their ASCII
// value).
const (
	XK_a Keysym = 0x0061
	XK_b Keysym = 0x0062
	XK_c Keysym = 0x0063
	XK_d Keysym = 0x0064
	XK_e Keysym = 0x0065
	XK_f Keysym = 0x0066
	XK_g Keysym = 0x0067
	XK_h Keysym = 0x0068
	XK_i Keysym = 0x0069
	XK_j Keysym = 0x006a
	XK_k Keysym = 0x006b
	XK_l Keysym = 0x006c
	XK_m Keysym = 0x006d
	XK_n Keysym = 0x006e
	XK_o Keysym = 0x006f
	XK_p Keysym = 0x0070
	XK_q Keysym = 0x0071
	XK_r Keysym = 0x0072
	XK_s Keysym = 0x0073
	XK_t Keysym = 0x0074
	XK_u Keysym = 0x0075
	XK_v Keysym = 0x0076
	XK_w Keysym = 0x0077
	XK_x Keysym = 0x0078
	XK_y Keysym = 0x0079
	XK_z Keysym = 0x007a

	XK_0 Keysym = 0x0030
	XK_1 Keysym = 0x0031
	XK_2 Keysym = 0x0032
	XK_3 Keysym = 0x0033
	XK_4 Keysym = 0x0034
	XK_5 Keysym = 0x0035
	XK_6 Keysym = 0x0036
	XK_7 Keysym = 0x0037
	XK_8 Keysym = 0x0038
	XK_9 Keysym = 0x0039
)

// Function and navigation keys.
const (
	XK_Return    Keysym = 0xff0d
	XK_Tab       Keysym = 0xff09
	XK_space     Keysym = 0x0020
	XK_BackSpace Keysym = 0xff08
	XK_Escape    Keysym = 0xff1b

	XK_Left  Keysym = 0xff51
	XK_Up    Keysym = 0xff52
	XK_Right Keysym = 0xff53
	XK_Down  Keysym = 0xff54

	XK_F1  Keysym = 0xffbe
	XK_F2  Keysym = 0xffbf
	XK_F3  Keysym = 0xffc0
	XK_F4  Keysym = 0xffc1
	XK_F5  Keysym = 0xffc2
	XK_F6  Keysym = 0xffc3
	XK_F7  Keysym = 0xffc4
	XK_F8  Keysym = 0xffc5
	XK_F9  Keysym = 0xffc6
	XK_F10 Keysym = 0xffc7
	XK_F11 Keysym = 0xffc8
	XK_F12 Keysym = 0xffc9

	XK_equal Keysym = 0x003d
	XK_minus Keysym = 0x002d
)

// X11 modifier mask bits, standard across the protocol (matches
// xgb/xproto's ModMaskShift/ModMaskControl/ModMask1/ModMask4 values), kept
// here so the config package can parse chords without importing the xgb
// backend.
const (
	ModMaskShift   uint16 = 1 << 0
	ModMaskControl uint16 = 1 << 2
	ModMask1       uint16 = 1 << 3 // Alt on most layouts
	ModMask4       uint16 = 1 << 6 // Super/Mod4
)

// byName maps the token a config file or keybinding spells a key with to
// its Keysym value. Letters/digits are generated once in init.
var byName = map[string]Keysym{
	"Return":    XK_Return,
	"Tab":       XK_Tab,
	"space":     XK_space,
	"BackSpace": XK_BackSpace,
	"Escape":    XK_Escape,
	"Left":      XK_Left,
	"Up":        XK_Up,
	"Right":     XK_Right,
	"Down":      XK_Down,
	"F1":        XK_F1,
	"F2":        XK_F2,
	"F3":        XK_F3,
	"F4":        XK_F4,
	"F5":        XK_F5,
	"F6":        XK_F6,
	"F7":        XK_F7,
	"F8":        XK_F8,
	"F9":        XK_F9,
	"F10":       XK_F10,
	"F11":       XK_F11,
	"F12":       XK_F12,
	"equal":     XK_equal,
	"minus":     XK_minus,
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		byName[string(c)] = Keysym(c)
	}
	for c := '0'; c <= '9'; c++ {
		byName[string(c)] = Keysym(c)
	}
}

// ByName looks up a keysym by its config-file token name, e.g. "q" or
// "Return". ok is false for an unrecognised name.
func ByName(name string) (Keysym, bool) {
	k, ok := byName[name]
	return k, ok
}

// Name returns the canonical token name for a keysym, or "" if unknown.
func Name(k Keysym) string {
	for name, v := range byName {
		if v == k {
			return name
		}
	}
	return ""
}
