// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:8087/api", cfg.ServerURL)
	assert.Equal(t, ThemeCatppuccin, cfg.UI.Theme)
	assert.True(t, cfg.Chat.CacheEnabled)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().ServerURL, cfg.ServerURL)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.ServerURL = "http://hub.local:9000/api"
	cfg.UI.Theme = ThemeLCARS
	cfg.Dashboard.VehicleID = 3
	require.NoError(t, SaveToPath(cfg, path))

	got, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://hub.local:9000/api", got.ServerURL)
	assert.Equal(t, ThemeLCARS, got.UI.Theme)
	assert.Equal(t, int64(3), got.Dashboard.VehicleID)

	// Config files hold no secrets today but stay private anyway.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LIFEHUB_SERVER_URL", "http://override:1234/api")
	t.Setenv("LIFEHUB_THEME", ThemeGlass)
	t.Setenv("LIFEHUB_VERBOSE", "true")

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://override:1234/api", cfg.ServerURL)
	assert.Equal(t, ThemeGlass, cfg.UI.Theme)
	assert.True(t, cfg.Log.Verbose)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.ServerURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.UI.Theme = "solarized"
	assert.Error(t, cfg.Validate())
}

func TestValidThemes(t *testing.T) {
	for _, name := range Themes {
		assert.True(t, ValidTheme(name), name)
	}
	assert.False(t, ValidTheme("dracula"))
}
