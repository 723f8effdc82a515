// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

// Page identifies one of the navigable pages.
type Page int

const (
	PageDashboard Page = iota
	PageGarage
	PageProjects
	PageNotes
	PageKB
	PageHome
	PagePrinter
	PageInfra
	PageNotifications
	PageAstro
	PageTrek
	PageChat
	PageSettings
	pageCount
)

// pageMeta drives the sidebar: label, icon, and the digit shortcut
// shown next to the first ten entries.
type pageMeta struct {
	label string
	icon  string
}

var pages = [pageCount]pageMeta{
	PageDashboard:     {"Dashboard", "◈"},
	PageGarage:        {"Garage", "🚗"},
	PageProjects:      {"Projects", "▤"},
	PageNotes:         {"Notes", "✎"},
	PageKB:            {"Knowledge", "📚"},
	PageHome:          {"Home", "⌂"},
	PagePrinter:       {"Printer", "🖨"},
	PageInfra:         {"Infra", "🖥"},
	PageNotifications: {"Alerts", "🔔"},
	PageAstro:         {"Astro", "✦"},
	PageTrek:          {"Trek", "🖖"},
	PageChat:          {"Assistant", "💬"},
	PageSettings:      {"Settings", "⚙"},
}

func (p Page) String() string {
	if p < 0 || p >= pageCount {
		return "unknown"
	}
	return pages[p].label
}
