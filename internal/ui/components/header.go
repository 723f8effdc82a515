// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// Header renders the top bar: page title on the left, clock on the
// right, filled to the full terminal width.
type Header struct {
	Title string
	Width int
}

// Render draws the header with the given theme.
func (h Header) Render(theme *styles.Theme, now time.Time) string {
	clock := theme.HeaderClock.Render(now.Format("Mon Jan 2 15:04"))
	title := theme.HeaderTitle.Render(h.Title)

	gap := h.Width - lipgloss.Width(title) - lipgloss.Width(clock) - 4
	if gap < 1 {
		gap = 1
	}
	line := lipgloss.JoinHorizontal(lipgloss.Center,
		title,
		lipgloss.NewStyle().Width(gap).Render(""),
		clock,
	)
	return theme.Header.Width(h.Width).Render(line)
}
