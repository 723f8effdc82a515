// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import tea "github.com/charmbracelet/bubbletea"

// globalPage maps the digit/shortcut row to pages. Returns -1 when the
// key is not a navigation shortcut.
func globalPage(m tea.KeyMsg) Page {
	switch m.String() {
	case "1":
		return PageDashboard
	case "2":
		return PageGarage
	case "3":
		return PageProjects
	case "4":
		return PageNotes
	case "5":
		return PageKB
	case "6":
		return PageHome
	case "7":
		return PagePrinter
	case "8":
		return PageInfra
	case "9":
		return PageNotifications
	case "0":
		return PageAstro
	case "!":
		return PageTrek
	case "@":
		return PageChat
	case "#":
		return PageSettings
	}
	return Page(-1)
}
