// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// Shortcut is one key hint in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom bar: key hints left, connection and
// theme indicators right.
type StatusBar struct {
	Shortcuts []Shortcut
	Right     []string
	Width     int
}

// Render draws the status bar with the given theme.
func (s StatusBar) Render(theme *styles.Theme) string {
	var parts []string
	for _, sc := range s.Shortcuts {
		parts = append(parts, theme.StatusKey.Render(sc.Key)+" "+theme.StatusValue.Render(sc.Desc))
	}
	left := strings.Join(parts, "  ")
	right := theme.StatusValue.Render(strings.Join(s.Right, " · "))

	gap := s.Width - visibleWidth(left) - visibleWidth(right) - 2
	if gap < 1 {
		gap = 1
	}
	return theme.StatusBar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + right)
}
