// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// Layout is a width class the shell picks the page arrangement by.
type Layout int

const (
	// LayoutNarrow stacks panels and collapses the sidebar to icons.
	LayoutNarrow Layout = iota
	// LayoutMedium shows the sidebar plus one content column.
	LayoutMedium
	// LayoutWide shows the sidebar plus multi-column content.
	LayoutWide
)

// Width breakpoints, in terminal cells.
const (
	BreakpointMedium = 80
	BreakpointWide   = 120
)

// LayoutForWidth maps a terminal width to its layout class.
func LayoutForWidth(width int) Layout {
	switch {
	case width >= BreakpointWide:
		return LayoutWide
	case width >= BreakpointMedium:
		return LayoutMedium
	default:
		return LayoutNarrow
	}
}

// Theme holds every styled component of the application, built from the
// active palette. It detects terminal color capability once at startup.
type Theme struct {
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	palette Palette

	// Application container
	App       lipgloss.Style
	Container lipgloss.Style

	// Header / navigation
	Header        lipgloss.Style
	HeaderTitle   lipgloss.Style
	HeaderClock   lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style

	// Generic text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Danger   lipgloss.Style
	Info     lipgloss.Style

	// Cards and lists
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardFocused lipgloss.Style
	TableHeader lipgloss.Style
	SelectedRow lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style

	// Maintenance badges
	BadgeUnknown lipgloss.Style
	BadgeOK      lipgloss.Style
	BadgeDueSoon lipgloss.Style
	BadgeDue     lipgloss.Style
	BadgeOverdue lipgloss.Style

	// Kanban board
	KanbanColumn      lipgloss.Style
	KanbanColumnTitle lipgloss.Style
	KanbanWIPOver     lipgloss.Style
	KanbanCard        lipgloss.Style
	KanbanCardFocused lipgloss.Style
	KanbanCardLifted  lipgloss.Style

	// Smart home
	DeviceActive      lipgloss.Style
	DeviceInactive    lipgloss.Style
	DeviceUnavailable lipgloss.Style
	RoomTitle         lipgloss.Style

	// Chat
	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	ToolStatus      lipgloss.Style
	InputContainer  lipgloss.Style
	InputPrompt     lipgloss.Style

	// Overlays
	ErrorBox   lipgloss.Style
	ErrorTitle lipgloss.Style
	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	Spinner    lipgloss.Style
}

// NewTheme builds a theme for the named palette.
func NewTheme(paletteName string) *Theme {
	colorProfile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.SetPalette(paletteName)
	return t
}

// PaletteName returns the active palette's name.
func (t *Theme) PaletteName() string { return t.palette.Name }

// SetPalette rebuilds every style from the named palette, in place.
// Callers holding the *Theme see the new look on their next render;
// nothing else about their state is disturbed.
func (t *Theme) SetPalette(name string) {
	t.palette = PaletteByName(name)
	t.initStyles()
}

func (t *Theme) initStyles() {
	p := t.palette

	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		Background(p.SurfaceDim).
		Padding(0, 2)
	t.HeaderTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	t.HeaderClock = lipgloss.NewStyle().Foreground(p.TextMuted)

	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(p.Border).
		BorderRight(true).
		BorderForeground(p.Overlay).
		PaddingRight(1)
	t.SidebarItem = lipgloss.NewStyle().Foreground(p.TextSecondary).Padding(0, 1)
	t.SidebarActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextInverse).
		Background(p.Primary).
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(p.Text)
	t.Subtitle = lipgloss.NewStyle().Foreground(p.TextSecondary)
	t.Muted = lipgloss.NewStyle().Foreground(p.TextMuted)
	t.Success = lipgloss.NewStyle().Foreground(p.Success)
	t.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	t.Danger = lipgloss.NewStyle().Foreground(p.Danger)
	t.Info = lipgloss.NewStyle().Foreground(p.Info)

	t.Card = lipgloss.NewStyle().
		BorderStyle(p.Border).
		BorderForeground(p.Overlay).
		Padding(0, 1)
	t.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Secondary)
	t.CardFocused = t.Card.BorderForeground(p.Accent)
	t.TableHeader = lipgloss.NewStyle().Bold(true).Foreground(p.TextSecondary).Underline(true)
	t.SelectedRow = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.Accent)

	t.StatusBar = lipgloss.NewStyle().
		Background(p.SurfaceDim).
		Foreground(p.TextSecondary).
		Padding(0, 1)
	t.StatusKey = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	t.StatusValue = lipgloss.NewStyle().Foreground(p.TextSecondary)

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	t.BadgeUnknown = badge.Foreground(p.TextMuted)
	t.BadgeOK = badge.Foreground(p.Success)
	t.BadgeDueSoon = badge.Foreground(p.Warning)
	t.BadgeDue = badge.Foreground(p.Warning).Underline(true)
	t.BadgeOverdue = badge.Foreground(p.TextInverse).Background(p.Danger)

	t.KanbanColumn = lipgloss.NewStyle().
		BorderStyle(p.Border).
		BorderForeground(p.Overlay).
		Padding(0, 1)
	t.KanbanColumnTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Secondary)
	t.KanbanWIPOver = lipgloss.NewStyle().Bold(true).Foreground(p.Danger)
	t.KanbanCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Overlay).
		Padding(0, 1)
	t.KanbanCardFocused = t.KanbanCard.BorderForeground(p.Accent)
	t.KanbanCardLifted = t.KanbanCard.
		BorderForeground(p.Primary).
		Foreground(p.Primary).
		Bold(true)

	t.DeviceActive = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	t.DeviceInactive = lipgloss.NewStyle().Foreground(p.TextSecondary)
	t.DeviceUnavailable = lipgloss.NewStyle().Foreground(p.TextMuted).Strikethrough(true)
	t.RoomTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.Text).
		BorderStyle(p.Border).
		BorderForeground(p.Secondary).
		Padding(0, 2).
		MarginLeft(4)
	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(p.Text).
		BorderStyle(p.Border).
		BorderForeground(p.Primary).
		Padding(0, 2).
		MarginRight(4)
	t.ToolStatus = lipgloss.NewStyle().Italic(true).Foreground(p.Info)
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)
	t.InputPrompt = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)

	t.ErrorBox = lipgloss.NewStyle().
		BorderStyle(p.Border).
		BorderForeground(p.Danger).
		Foreground(p.Danger).
		Padding(0, 2)
	t.ErrorTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Danger)
	t.ModalBox = lipgloss.NewStyle().
		BorderStyle(p.Border).
		BorderForeground(p.Primary).
		Background(p.SurfaceBright).
		Padding(1, 2)
	t.ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	t.Spinner = lipgloss.NewStyle().Foreground(p.Accent)
}

// StatusBadge returns the badge style for a maintenance status.
func (t *Theme) StatusBadge(status model.IntervalStatus) lipgloss.Style {
	switch status {
	case model.StatusOK:
		return t.BadgeOK
	case model.StatusDueSoon:
		return t.BadgeDueSoon
	case model.StatusDue:
		return t.BadgeDue
	case model.StatusOverdue:
		return t.BadgeOverdue
	default:
		return t.BadgeUnknown
	}
}

// DeviceStyle returns the style for a smart-home device state.
func (t *Theme) DeviceStyle(dev model.Device) lipgloss.Style {
	switch {
	case dev.IsUnavailable():
		return t.DeviceUnavailable
	case dev.IsActive():
		return t.DeviceActive
	default:
		return t.DeviceInactive
	}
}
