// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// Confirm is a modal yes/no prompt for destructive actions.
type Confirm struct {
	Title   string
	Message string
	yes     bool
	visible bool
}

// Show opens the prompt with selection on "No".
func (c *Confirm) Show(title, message string) {
	c.Title = title
	c.Message = message
	c.yes = false
	c.visible = true
}

// Hide closes the prompt.
func (c *Confirm) Hide() { c.visible = false }

// Visible reports whether the prompt is open.
func (c *Confirm) Visible() bool { return c.visible }

// Toggle flips the selection between yes and no.
func (c *Confirm) Toggle() { c.yes = !c.yes }

// Accepted reports whether "Yes" is selected.
func (c *Confirm) Accepted() bool { return c.yes }

// Render draws the modal box centered in the given area.
func (c *Confirm) Render(theme *styles.Theme, width, height int) string {
	if !c.visible {
		return ""
	}
	yes, no := "  Yes  ", "  No  "
	if c.yes {
		yes = theme.SelectedRow.Render(yes)
		no = theme.Muted.Render(no)
	} else {
		yes = theme.Muted.Render(yes)
		no = theme.SelectedRow.Render(no)
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.ModalTitle.Render(c.Title),
		"",
		c.Message,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, yes, "  ", no),
	)
	box := theme.ModalBox.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
