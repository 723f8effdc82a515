// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

func TestPaletteByName(t *testing.T) {
	assert.Equal(t, PaletteCatppuccin, PaletteByName("catppuccin").Name)
	assert.Equal(t, PaletteGlass, PaletteByName("glass").Name)
	assert.Equal(t, PaletteLCARS, PaletteByName("lcars").Name)
	// Unknown names fall back to the default.
	assert.Equal(t, PaletteCatppuccin, PaletteByName("nope").Name)
}

func TestSetPaletteSwapsInPlace(t *testing.T) {
	theme := NewTheme(PaletteCatppuccin)
	before := theme.Header.GetForeground()

	theme.SetPalette(PaletteLCARS)
	assert.Equal(t, PaletteLCARS, theme.PaletteName())
	assert.NotEqual(t, before, theme.Header.GetForeground())

	theme.SetPalette(PaletteCatppuccin)
	assert.Equal(t, before, theme.Header.GetForeground())
}

func TestLayoutForWidth(t *testing.T) {
	assert.Equal(t, LayoutNarrow, LayoutForWidth(60))
	assert.Equal(t, LayoutMedium, LayoutForWidth(80))
	assert.Equal(t, LayoutMedium, LayoutForWidth(119))
	assert.Equal(t, LayoutWide, LayoutForWidth(120))
}

func TestStatusBadgeMapping(t *testing.T) {
	theme := NewTheme(PaletteCatppuccin)
	assert.Equal(t, theme.BadgeOK, theme.StatusBadge(model.StatusOK))
	assert.Equal(t, theme.BadgeOverdue, theme.StatusBadge(model.StatusOverdue))
	assert.Equal(t, theme.BadgeUnknown, theme.StatusBadge(model.StatusUnknown))
}

func TestDeviceStyleMapping(t *testing.T) {
	theme := NewTheme(PaletteCatppuccin)
	assert.Equal(t, theme.DeviceActive, theme.DeviceStyle(model.Device{LastState: "on"}))
	assert.Equal(t, theme.DeviceInactive, theme.DeviceStyle(model.Device{LastState: "off"}))
	assert.Equal(t, theme.DeviceUnavailable, theme.DeviceStyle(model.Device{LastState: "unavailable"}))
}
