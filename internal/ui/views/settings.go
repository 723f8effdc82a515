// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lifehub-tui/internal/config"
)

// Settings shows the effective configuration and cycles themes. Theme
// switches restyle in place and persist; everything else is read-only
// here and edited via `lifehub config set` or the config file.
type Settings struct {
	ctx Context
}

// NewSettings creates the settings view.
func NewSettings(ctx Context) *Settings {
	return &Settings{ctx: ctx}
}

// ThemeChangedMsg tells the shell a new palette is active so it can
// restyle chrome without touching page state.
type ThemeChangedMsg struct {
	Palette string
}

func (s *Settings) Title() string { return "Settings" }

func (s *Settings) Init() tea.Cmd { return nil }

func (s *Settings) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.String() {
	case "t", "enter":
		return s.cycleTheme()
	}
	return nil
}

// cycleTheme advances to the next palette, restyles the live theme, and
// persists the choice. Persistence failure keeps the switch applied.
func (s *Settings) cycleTheme() tea.Cmd {
	current := s.ctx.Theme.PaletteName()
	next := config.Themes[0]
	for i, name := range config.Themes {
		if name == current {
			next = config.Themes[(i+1)%len(config.Themes)]
			break
		}
	}

	s.ctx.Theme.SetPalette(next)
	s.ctx.Config.UI.Theme = next
	saveErr := config.Save(s.ctx.Config)

	return func() tea.Msg {
		if saveErr != nil {
			return ToastMsg{Message: "Theme applied but not saved: " + saveErr.Error(), IsError: true}
		}
		return ThemeChangedMsg{Palette: next}
	}
}

func (s *Settings) View(width, height int) string {
	theme := s.ctx.Theme
	cfg := s.ctx.Config

	var b strings.Builder
	b.WriteString(theme.CardTitle.Render("Appearance") + "\n")
	for _, name := range config.Themes {
		marker := "  "
		label := name
		if name == theme.PaletteName() {
			marker = theme.Info.Render("● ")
			label = theme.Title.Render(name)
		}
		b.WriteString(marker + label + "\n")
	}
	b.WriteString(theme.Muted.Render("t cycles themes; the switch never drops page state.") + "\n\n")

	b.WriteString(theme.CardTitle.Render("Connection") + "\n")
	b.WriteString(fmt.Sprintf("Server     %s\n", cfg.ServerURL))
	b.WriteString(fmt.Sprintf("Timeout    %ds\n", cfg.RequestTimeoutSecs))
	b.WriteString(fmt.Sprintf("Refresh    %ds\n\n", cfg.UI.RefreshSecs))

	b.WriteString(theme.CardTitle.Render("Chat") + "\n")
	cache := "enabled"
	if !cfg.Chat.CacheEnabled {
		cache = "disabled"
	}
	b.WriteString(fmt.Sprintf("Offline conversation cache: %s\n\n", cache))

	b.WriteString(theme.Muted.Render(
		"Config file: " + configPathLabel() + " (edit and save; changes hot-reload)"))
	return theme.Card.Width(width - 2).Render(b.String())
}

func configPathLabel() string {
	path, err := config.ConfigPath()
	if err != nil {
		return "~/.lifehub/config.toml"
	}
	return path
}
