// Package config implements the typed configuration record and action
// dispatch table (spec.md C9). The file format and load/default pattern
// follow cwelsys-kmux's internal/config package (DefaultConfig + LoadConfig
// reading a single TOML file, falling back to defaults when absent). ttwm
// reads the file once at Init; unlike kmux it has no live-reload command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Appearance holds geometry and font settings (spec.md §4.9).
type Appearance struct {
	Gap              int32  `toml:"gap"`
	OuterGap         int32  `toml:"outer_gap"`
	BorderWidth      int32  `toml:"border_width"`
	TabBarHeight     int32  `toml:"tab_bar_height"`
	VerticalTabWidth int32  `toml:"vertical_tab_width"`
	Font             string `toml:"font"`
	FontSize         int32  `toml:"font_size"`
	ShowIcons        bool   `toml:"show_icons"`
}

// Colors is the palette used for tab and border states.
type Colors struct {
	Focused              uint32 `toml:"focused"`
	Unfocused            uint32 `toml:"unfocused"`
	UnfocusedInFocused   uint32 `toml:"unfocused_in_focused"`
	VisibleInUnfocused   uint32 `toml:"visible_in_unfocused"`
	Tagged               uint32 `toml:"tagged"`
	Urgent               uint32 `toml:"urgent"`
	BorderFocused        uint32 `toml:"border_focused"`
	BorderUnfocused      uint32 `toml:"border_unfocused"`
	TabBarBackground     uint32 `toml:"tab_bar_background"`
	TabText              uint32 `toml:"tab_text"`
}

// General holds top-level behavioural switches.
type General struct {
	FocusFollowsMouse bool `toml:"focus_follows_mouse"`
}

// StartupLayout names a workspace and the commands to run when it's empty
// at startup.
type StartupLayout struct {
	Workspace int      `toml:"workspace"`
	Exec      []string `toml:"exec"`
}

// Config is the full typed configuration record (spec.md §4.9/§6). Every
// field is optional in the TOML source; Default fills in a working WM.
type Config struct {
	Appearance  Appearance          `toml:"appearance"`
	Colors      Colors              `toml:"colors"`
	Keybindings map[string]string   `toml:"keybindings"` // action name -> chord string
	Exec        map[string]string   `toml:"exec"`        // chord string -> shell command
	General     General             `toml:"general"`
	Startup     []StartupLayout     `toml:"startup"`
}

// Default returns a Config with every field set to a working value,
// mirroring kmux's DefaultConfig.
func Default() *Config {
	return &Config{
		Appearance: Appearance{
			Gap:              4,
			OuterGap:         8,
			BorderWidth:      2,
			TabBarHeight:     20,
			VerticalTabWidth: 24,
			Font:             "monospace",
			FontSize:         12,
			ShowIcons:        true,
		},
		Colors: Colors{
			Focused:            0x4c7899,
			Unfocused:          0x333333,
			UnfocusedInFocused: 0x5f676a,
			VisibleInUnfocused: 0x222222,
			Tagged:             0x8855cc,
			Urgent:             0xcc4433,
			BorderFocused:      0x4c7899,
			BorderUnfocused:    0x222222,
			TabBarBackground:   0x000000,
			TabText:            0xffffff,
		},
		Keybindings: DefaultKeybindings(),
		Exec:        map[string]string{},
		General:     General{FocusFollowsMouse: true},
	}
}

// Load reads path, falling back to defaults for anything the file doesn't
// set. A missing file is not an error (spec.md §6: "all keys optional").
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	fileCfg := &Config{}
	if err := toml.Unmarshal(data, fileCfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	mergeInto(cfg, fileCfg)
	return cfg, nil
}

// mergeInto overlays non-zero fields of src onto dst. Maps are merged
// key-by-key so a user can override a single keybinding without restating
// every default.
func mergeInto(dst, src *Config) {
	if src.Appearance != (Appearance{}) {
		dst.Appearance = overlayAppearance(dst.Appearance, src.Appearance)
	}
	if src.Colors != (Colors{}) {
		dst.Colors = overlayColors(dst.Colors, src.Colors)
	}
	for action, chord := range src.Keybindings {
		dst.Keybindings[action] = chord
	}
	for chord, cmd := range src.Exec {
		dst.Exec[chord] = cmd
	}
	if src.General != (General{}) {
		dst.General = src.General
	}
	if len(src.Startup) > 0 {
		dst.Startup = src.Startup
	}
}

func overlayAppearance(dst, src Appearance) Appearance {
	if src.Gap != 0 {
		dst.Gap = src.Gap
	}
	if src.OuterGap != 0 {
		dst.OuterGap = src.OuterGap
	}
	if src.BorderWidth != 0 {
		dst.BorderWidth = src.BorderWidth
	}
	if src.TabBarHeight != 0 {
		dst.TabBarHeight = src.TabBarHeight
	}
	if src.VerticalTabWidth != 0 {
		dst.VerticalTabWidth = src.VerticalTabWidth
	}
	if src.Font != "" {
		dst.Font = src.Font
	}
	if src.FontSize != 0 {
		dst.FontSize = src.FontSize
	}
	dst.ShowIcons = src.ShowIcons || dst.ShowIcons
	return dst
}

func overlayColors(dst, src Colors) Colors {
	if src.Focused != 0 {
		dst.Focused = src.Focused
	}
	if src.Unfocused != 0 {
		dst.Unfocused = src.Unfocused
	}
	if src.UnfocusedInFocused != 0 {
		dst.UnfocusedInFocused = src.UnfocusedInFocused
	}
	if src.VisibleInUnfocused != 0 {
		dst.VisibleInUnfocused = src.VisibleInUnfocused
	}
	if src.Tagged != 0 {
		dst.Tagged = src.Tagged
	}
	if src.Urgent != 0 {
		dst.Urgent = src.Urgent
	}
	if src.BorderFocused != 0 {
		dst.BorderFocused = src.BorderFocused
	}
	if src.BorderUnfocused != 0 {
		dst.BorderUnfocused = src.BorderUnfocused
	}
	if src.TabBarBackground != 0 {
		dst.TabBarBackground = src.TabBarBackground
	}
	if src.TabText != 0 {
		dst.TabText = src.TabText
	}
	return dst
}

// ConfigDir returns the directory ttwm's config file lives in, following
// the XDG_CONFIG_HOME convention kmux's ConfigDir uses.
func ConfigDir() string {
	if dir := os.Getenv("TTWM_CONFIG_DIR"); dir != "" {
		return dir
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ttwm")
}

// DefaultPath returns the conventional path of ttwm's config file.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}
