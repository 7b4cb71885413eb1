package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Appearance, cfg.Appearance)
	assert.Equal(t, "Mod4+Shift+q", cfg.Keybindings[string(ActionQuit)])
}

func TestLoad_OverridesSingleKeybinding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[keybindings]\nclose_window = \"Mod4+Shift+x\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Mod4+Shift+x", cfg.Keybindings[string(ActionCloseWindow)])
	// Untouched bindings keep their defaults.
	assert.Equal(t, "Mod4+Shift+q", cfg.Keybindings[string(ActionQuit)])
}

func TestLoad_OverridesAppearanceField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[appearance]\ngap = 10\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(10), cfg.Appearance.Gap)
	assert.Equal(t, int32(8), cfg.Appearance.OuterGap) // default preserved
}

func TestLoad_MalformedTOML_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid toml [[["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
