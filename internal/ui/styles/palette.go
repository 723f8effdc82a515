// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for lifehub TUI.
//
// Three named palettes back the same style bundle: "catppuccin" (the
// default dark theme), "glass" (cool translucent blues), and "lcars"
// (amber-and-violet console). Switching palettes rebuilds the styles
// in place so running state elsewhere is untouched.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the color set one theme draws from.
type Palette struct {
	Name string

	Primary   lipgloss.AdaptiveColor // brand, headers, selections
	Secondary lipgloss.AdaptiveColor // secondary accent
	Accent    lipgloss.AdaptiveColor // highlights, active items

	Surface       lipgloss.AdaptiveColor // main background
	SurfaceDim    lipgloss.AdaptiveColor // header/footer background
	SurfaceBright lipgloss.AdaptiveColor // cards, raised panels
	Overlay       lipgloss.AdaptiveColor // borders, separators

	Text          lipgloss.AdaptiveColor
	TextSecondary lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	TextInverse   lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// Border picks the border character set; LCARS uses thick rules.
	Border lipgloss.Border
}

// Palette names, matching the configuration values.
const (
	PaletteCatppuccin = "catppuccin"
	PaletteGlass      = "glass"
	PaletteLCARS      = "lcars"
)

// Catppuccin is the Mocha-flavored default.
var Catppuccin = Palette{
	Name:      PaletteCatppuccin,
	Primary:   lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"},
	Secondary: lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"},
	Accent:    lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"},

	Surface:       lipgloss.AdaptiveColor{Light: "#EFF1F5", Dark: "#1E1E2E"},
	SurfaceDim:    lipgloss.AdaptiveColor{Light: "#E6E9EF", Dark: "#181825"},
	SurfaceBright: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#313244"},
	Overlay:       lipgloss.AdaptiveColor{Light: "#CCD0DA", Dark: "#45475A"},

	Text:          lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"},
	TextSecondary: lipgloss.AdaptiveColor{Light: "#6C6F85", Dark: "#A6ADC8"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"},
	TextInverse:   lipgloss.AdaptiveColor{Light: "#EFF1F5", Dark: "#1E1E2E"},

	Success: lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"},
	Warning: lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"},
	Danger:  lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"},
	Info:    lipgloss.AdaptiveColor{Light: "#04A5E5", Dark: "#89DCEB"},

	Border: lipgloss.RoundedBorder(),
}

// Glass leans on cool blues and soft contrast.
var Glass = Palette{
	Name:      PaletteGlass,
	Primary:   lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#7DD3FC"},
	Secondary: lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#67E8F9"},
	Accent:    lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#93C5FD"},

	Surface:       lipgloss.AdaptiveColor{Light: "#F0F9FF", Dark: "#0C1424"},
	SurfaceDim:    lipgloss.AdaptiveColor{Light: "#E0F2FE", Dark: "#0A101C"},
	SurfaceBright: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#16233B"},
	Overlay:       lipgloss.AdaptiveColor{Light: "#BAE6FD", Dark: "#1E3A5F"},

	Text:          lipgloss.AdaptiveColor{Light: "#0C4A6E", Dark: "#E2F2FF"},
	TextSecondary: lipgloss.AdaptiveColor{Light: "#475569", Dark: "#A5C8E4"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#5E7A94"},
	TextInverse:   lipgloss.AdaptiveColor{Light: "#F0F9FF", Dark: "#0C1424"},

	Success: lipgloss.AdaptiveColor{Light: "#059669", Dark: "#6EE7B7"},
	Warning: lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FCD34D"},
	Danger:  lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FCA5A5"},
	Info:    lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#7DD3FC"},

	Border: lipgloss.NormalBorder(),
}

// LCARS is the amber-violet console look; always dark.
var LCARS = Palette{
	Name:      PaletteLCARS,
	Primary:   lipgloss.AdaptiveColor{Light: "#FF9C00", Dark: "#FF9C00"},
	Secondary: lipgloss.AdaptiveColor{Light: "#CC99CC", Dark: "#CC99CC"},
	Accent:    lipgloss.AdaptiveColor{Light: "#FFCC66", Dark: "#FFCC66"},

	Surface:       lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"},
	SurfaceDim:    lipgloss.AdaptiveColor{Light: "#111111", Dark: "#111111"},
	SurfaceBright: lipgloss.AdaptiveColor{Light: "#1A1A2E", Dark: "#1A1A2E"},
	Overlay:       lipgloss.AdaptiveColor{Light: "#9999CC", Dark: "#9999CC"},

	Text:          lipgloss.AdaptiveColor{Light: "#FFCC99", Dark: "#FFCC99"},
	TextSecondary: lipgloss.AdaptiveColor{Light: "#CC99CC", Dark: "#CC99CC"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#666699", Dark: "#666699"},
	TextInverse:   lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"},

	Success: lipgloss.AdaptiveColor{Light: "#99CC99", Dark: "#99CC99"},
	Warning: lipgloss.AdaptiveColor{Light: "#FFCC00", Dark: "#FFCC00"},
	Danger:  lipgloss.AdaptiveColor{Light: "#CC6666", Dark: "#CC6666"},
	Info:    lipgloss.AdaptiveColor{Light: "#9999FF", Dark: "#9999FF"},

	Border: lipgloss.ThickBorder(),
}

// PaletteByName resolves a palette, falling back to catppuccin.
func PaletteByName(name string) Palette {
	switch name {
	case PaletteGlass:
		return Glass
	case PaletteLCARS:
		return LCARS
	default:
		return Catppuccin
	}
}
