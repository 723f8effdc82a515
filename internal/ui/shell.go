// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the Bubble Tea shell: the root model that owns
// the chrome (header, sidebar, status bar, toasts) and routes messages
// to the active page view.
package ui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lifehub-tui/internal/ui/components"
	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
	"github.com/jeranaias/lifehub-tui/internal/ui/views"
)

// clockInterval paces the header clock redraw.
const clockInterval = 30 * time.Second

type clockTickMsg struct{}

type refreshTickMsg struct{}

// Shell is the root model. Page state lives in the page views and
// survives both navigation and theme switches; only the streams of a
// hidden page are closed.
type Shell struct {
	ctx   views.Context
	pages [pageCount]views.View

	active Page
	width  int
	height int
	toasts []components.Toast
}

// NewShell wires the page views and returns the root model.
func NewShell(ctx views.Context) *Shell {
	s := &Shell{ctx: ctx}
	s.pages = [pageCount]views.View{
		PageDashboard:     views.NewDashboard(ctx),
		PageGarage:        views.NewGarage(ctx),
		PageProjects:      views.NewProjects(ctx),
		PageNotes:         views.NewNotes(ctx),
		PageKB:            views.NewKB(ctx),
		PageHome:          views.NewHome(ctx),
		PagePrinter:       views.NewPrinter(ctx),
		PageInfra:         views.NewInfra(ctx),
		PageNotifications: views.NewNotifications(ctx),
		PageAstro:         views.NewAstro(ctx),
		PageTrek:          views.NewTrek(ctx),
		PageChat:          views.NewChat(ctx),
		PageSettings:      views.NewSettings(ctx),
	}
	return s
}

func (s *Shell) Init() tea.Cmd {
	return tea.Batch(
		s.pages[s.active].Init(),
		s.clockTick(),
		s.refreshTick(),
	)
}

func (s *Shell) clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(time.Time) tea.Msg { return clockTickMsg{} })
}

func (s *Shell) refreshTick() tea.Cmd {
	secs := s.ctx.Config.UI.RefreshSecs
	if secs <= 0 {
		secs = 60
	}
	return tea.Tick(time.Duration(secs)*time.Second, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// refreshable lists the pages the background ticker re-fetches. Stream
// pages stay live on their own and chat refreshes on demand.
func (s *Shell) refreshable() bool {
	switch s.active {
	case PageDashboard, PageInfra, PageAstro, PageNotifications:
		return true
	}
	return false
}

func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = m.Width, m.Height
		return s, nil

	case clockTickMsg:
		return s, s.clockTick()

	case refreshTickMsg:
		if s.refreshable() {
			return s, tea.Batch(s.pages[s.active].Init(), s.refreshTick())
		}
		return s, s.refreshTick()

	case views.ErrMsg:
		return s, s.pushToast(components.NewErrorToast(m.Err.Error()))

	case views.ToastMsg:
		if m.IsError {
			return s, s.pushToast(components.NewErrorToast(m.Message))
		}
		return s, s.pushToast(components.NewStatusToast(m.Message))

	case views.ThemeChangedMsg:
		return s, s.pushToast(components.NewSuccessToast("Theme: " + m.Palette))

	case views.ConfigReloadedMsg:
		// Sent by the config file watcher; applying it here keeps all
		// theme and config mutation on the UI goroutine.
		if m.Config.UI.Theme != s.ctx.Theme.PaletteName() {
			s.ctx.Theme.SetPalette(m.Config.UI.Theme)
		}
		s.ctx.Config.UI = m.Config.UI
		return s, nil

	case components.ToastExpiredMsg:
		s.expireToast(m.ID)
		return s, nil

	case tea.KeyMsg:
		if cmd, handled := s.handleGlobalKey(m); handled {
			return s, cmd
		}
	}

	return s, s.pages[s.active].Update(msg)
}

func (s *Shell) handleGlobalKey(m tea.KeyMsg) (tea.Cmd, bool) {
	switch m.String() {
	case "ctrl+c", "ctrl+q":
		return tea.Quit, true
	case "ctrl+left":
		return s.navigate((s.active + pageCount - 1) % pageCount), true
	case "ctrl+right":
		return s.navigate((s.active + 1) % pageCount), true
	}

	if capturer, ok := s.pages[s.active].(views.InputCapturer); ok && capturer.CapturingInput() {
		return nil, false
	}
	if m.String() == "q" {
		return tea.Quit, true
	}
	if page := globalPage(m); page >= 0 {
		return s.navigate(page), true
	}
	return nil, false
}

// navigate switches pages: the old page's streams close, the new page
// refetches. Page state other than streams is retained.
func (s *Shell) navigate(page Page) tea.Cmd {
	if page == s.active {
		return nil
	}
	if hideable, ok := s.pages[s.active].(views.Hideable); ok {
		hideable.Hide()
	}
	s.active = page
	return s.pages[page].Init()
}

func (s *Shell) pushToast(t components.Toast) tea.Cmd {
	s.toasts = append(s.toasts, t)
	if len(s.toasts) > 3 {
		s.toasts = s.toasts[len(s.toasts)-3:]
	}
	return t.ExpireCmd()
}

func (s *Shell) expireToast(id int64) {
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

func (s *Shell) View() string {
	if s.width == 0 {
		return "Loading…"
	}
	theme := s.ctx.Theme
	layout := styles.LayoutForWidth(s.width)

	header := components.Header{
		Title: s.pages[s.active].Title(),
		Width: s.width,
	}.Render(theme, time.Now())

	statusBar := s.renderStatusBar()

	chromeHeight := lipgloss.Height(header) + lipgloss.Height(statusBar)
	contentHeight := s.height - chromeHeight
	if contentHeight < 3 {
		contentHeight = 3
	}

	var body string
	if layout == styles.LayoutNarrow {
		body = s.renderContent(s.width, contentHeight)
	} else {
		sidebar := s.renderSidebar(layout, contentHeight)
		contentWidth := s.width - lipgloss.Width(sidebar) - 1
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			sidebar, s.renderContent(contentWidth, contentHeight))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
	if len(s.toasts) > 0 {
		out += "\n" + s.renderToasts()
	}
	return out
}

func (s *Shell) renderSidebar(layout styles.Layout, height int) string {
	compact := layout == styles.LayoutMedium || s.ctx.Config.UI.CompactSidebar

	items := make([]components.NavItem, pageCount)
	for i := Page(0); i < pageCount; i++ {
		items[i] = components.NavItem{Label: pages[i].label, Icon: pages[i].icon}
	}
	if n, ok := s.pages[PageNotifications].(*views.Notifications); ok && n.Unread() > 0 {
		items[PageNotifications].Badge = s.ctx.Theme.Danger.Render(
			"(" + strconv.Itoa(n.Unread()) + ")")
	}

	return components.Sidebar{
		Items:   items,
		Active:  int(s.active),
		Compact: compact,
		Height:  height,
	}.Render(s.ctx.Theme)
}

func (s *Shell) renderContent(width, height int) string {
	content := s.pages[s.active].View(width, height)
	return lipgloss.NewStyle().Width(width).MaxHeight(height).Render(content)
}

func (s *Shell) renderStatusBar() string {
	return components.StatusBar{
		Shortcuts: []components.Shortcut{
			{Key: "1-0", Desc: "pages"},
			{Key: "ctrl+←/→", Desc: "cycle"},
			{Key: "r", Desc: "refresh"},
			{Key: "q", Desc: "quit"},
		},
		Right: []string{
			s.ctx.Config.ServerURL,
			s.ctx.Theme.PaletteName(),
		},
		Width: s.width,
	}.Render(s.ctx.Theme)
}

func (s *Shell) renderToasts() string {
	var out string
	for i, t := range s.toasts {
		if i > 0 {
			out += "\n"
		}
		out += t.Render(s.ctx.Theme)
	}
	return out
}

// NewProgram builds the program in the alternate screen. The caller may
// Send messages (config reloads) from other goroutines before Run.
func NewProgram(ctx views.Context) *tea.Program {
	return tea.NewProgram(NewShell(ctx), tea.WithAltScreen())
}

// Run starts the program and blocks until quit.
func Run(program *tea.Program) error {
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
