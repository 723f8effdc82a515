// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lifehub-tui/internal/model"
	"github.com/jeranaias/lifehub-tui/internal/ui/components"
)

// Trek is the Star Trek reference page: a series/episode browser with a
// mixed search over episodes, ships, and characters.
type Trek struct {
	ctx Context

	series []model.TrekSeries
	result *model.TrekSearchResult
	input  textinput.Model
	cursor int
	loaded bool
}

// NewTrek creates the trek view.
func NewTrek(ctx Context) *Trek {
	input := textinput.New()
	input.Placeholder = "Search episodes, ships, characters…"
	input.CharLimit = 80
	return &Trek{ctx: ctx, input: input}
}

type trekSeriesMsg struct {
	series []model.TrekSeries
}

type trekSearchMsg struct {
	result *model.TrekSearchResult
}

func (t *Trek) Title() string { return "Trek" }

// CapturingInput reports whether the search box is focused.
func (t *Trek) CapturingInput() bool { return t.input.Focused() }

func (t *Trek) Init() tea.Cmd {
	client := t.ctx.Client
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		series, err := client.ListTrekSeries(ctx)
		if err != nil {
			return nil, err
		}
		return trekSeriesMsg{series: series}, nil
	})
}

func (t *Trek) search() tea.Cmd {
	query := strings.TrimSpace(t.input.Value())
	if query == "" {
		t.result = nil
		return nil
	}
	client := t.ctx.Client
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		result, err := client.TrekSearch(ctx, query)
		if err != nil {
			return nil, err
		}
		return trekSearchMsg{result: result}, nil
	})
}

func (t *Trek) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case trekSeriesMsg:
		t.series = m.series
		t.loaded = true
	case trekSearchMsg:
		t.result = m.result
	case tea.KeyMsg:
		if t.input.Focused() {
			switch m.String() {
			case "enter":
				t.input.Blur()
				return t.search()
			case "esc":
				t.input.Blur()
				t.input.SetValue("")
				t.result = nil
			default:
				var cmd tea.Cmd
				t.input, cmd = t.input.Update(msg)
				return cmd
			}
			return nil
		}
		switch m.String() {
		case "/":
			t.input.Focus()
			return textinput.Blink
		case "up", "k":
			if t.cursor > 0 {
				t.cursor--
			}
		case "down", "j":
			if t.cursor < len(t.series)-1 {
				t.cursor++
			}
		case "r":
			return t.Init()
		}
	}
	return nil
}

func (t *Trek) View(width, height int) string {
	theme := t.ctx.Theme
	if !t.loaded {
		return theme.Muted.Render("Loading database…")
	}

	out := theme.InputContainer.Width(width-2).Render(t.input.View()) + "\n"
	if t.result != nil {
		return out + t.renderSearch(width)
	}
	return out + t.renderSeries(width)
}

func (t *Trek) renderSeries(width int) string {
	theme := t.ctx.Theme
	if len(t.series) == 0 {
		return theme.Muted.Render("Database empty.")
	}
	var b strings.Builder
	for i, s := range t.series {
		episodes := 0
		for _, season := range s.Seasons {
			episodes += len(season.Episodes)
		}
		label := s.Name
		if s.Abbrev != "" {
			label = fmt.Sprintf("%s (%s)", s.Name, s.Abbrev)
		}
		line := fmt.Sprintf("%-44s %d seasons · %d episodes",
			components.Truncate(label, 44), len(s.Seasons), episodes)
		if i == t.cursor {
			line = theme.SelectedRow.Render(line)
			b.WriteString(line + "\n")
			for _, season := range s.Seasons {
				b.WriteString(theme.Muted.Render(fmt.Sprintf(
					"    Season %d · %d episodes\n", season.Number, len(season.Episodes))))
			}
			continue
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + theme.Muted.Render("/ searches"))
	return b.String()
}

func (t *Trek) renderSearch(width int) string {
	theme := t.ctx.Theme
	r := t.result
	if len(r.Episodes) == 0 && len(r.Ships) == 0 && len(r.Characters) == 0 {
		return theme.Muted.Render("No matches.")
	}
	var b strings.Builder
	if len(r.Episodes) > 0 {
		b.WriteString(theme.Subtitle.Render("Episodes") + "\n")
		for _, ep := range r.Episodes {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				theme.Muted.Render(fmt.Sprintf("S%02dE%02d", ep.Season, ep.Episode)),
				components.Truncate(ep.Title, width-12)))
		}
	}
	if len(r.Ships) > 0 {
		b.WriteString(theme.Subtitle.Render("Ships") + "\n")
		for _, ship := range r.Ships {
			line := "  " + ship.Name
			if ship.Registry != "" {
				line += theme.Muted.Render(" " + ship.Registry)
			}
			if ship.Class != "" {
				line += theme.Muted.Render(" · " + ship.Class + "-class")
			}
			b.WriteString(line + "\n")
		}
	}
	if len(r.Characters) > 0 {
		b.WriteString(theme.Subtitle.Render("Characters") + "\n")
		for _, c := range r.Characters {
			line := "  " + c.Name
			if c.Rank != "" {
				line = "  " + c.Rank + " " + c.Name
			}
			if c.Actor != "" {
				line += theme.Muted.Render(" · " + c.Actor)
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
