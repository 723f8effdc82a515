// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/lifehub-tui/internal/config"
	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
	"github.com/jeranaias/lifehub-tui/internal/ui/views"
)

// The file watcher delivers reloads as messages; the shell applies them
// inside Update so theme and config mutation stays on the UI goroutine.
func TestConfigReloadAppliesThemeAndUISettings(t *testing.T) {
	cfg := config.Default()
	theme := styles.NewTheme(cfg.UI.Theme)
	shell := NewShell(views.Context{Theme: theme, Config: cfg})

	next := config.Default()
	next.UI.Theme = config.ThemeLCARS
	next.UI.CompactSidebar = true

	_, cmd := shell.Update(views.ConfigReloadedMsg{Config: next})
	assert.Nil(t, cmd)
	assert.Equal(t, styles.PaletteLCARS, theme.PaletteName())
	assert.Equal(t, config.ThemeLCARS, cfg.UI.Theme)
	assert.True(t, cfg.UI.CompactSidebar)
}

func TestConfigReloadSameThemeKeepsPalette(t *testing.T) {
	cfg := config.Default()
	theme := styles.NewTheme(cfg.UI.Theme)
	shell := NewShell(views.Context{Theme: theme, Config: cfg})

	next := config.Default()
	next.UI.RefreshSecs = 15
	shell.Update(views.ConfigReloadedMsg{Config: next})

	assert.Equal(t, cfg.UI.Theme, theme.PaletteName())
	assert.Equal(t, 15, cfg.UI.RefreshSecs)
}
