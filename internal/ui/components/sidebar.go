// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// NavItem is one entry of the navigation sidebar.
type NavItem struct {
	Label string
	Icon  string
	Badge string // optional count/status marker
}

// Sidebar renders the left navigation rail.
type Sidebar struct {
	Items   []NavItem
	Active  int
	Compact bool
	Height  int
}

// Render draws the sidebar with the given theme.
func (s Sidebar) Render(theme *styles.Theme) string {
	var b strings.Builder
	for i, item := range s.Items {
		label := item.Icon
		if !s.Compact {
			label += " " + item.Label
			if item.Badge != "" {
				label += " " + item.Badge
			}
		}
		style := theme.SidebarItem
		if i == s.Active {
			style = theme.SidebarActive
		}
		b.WriteString(style.Render(label))
		if i < len(s.Items)-1 {
			b.WriteByte('\n')
		}
	}
	body := b.String()
	if s.Height > 0 {
		return theme.Sidebar.Height(s.Height).Render(body)
	}
	return theme.Sidebar.Render(body)
}
