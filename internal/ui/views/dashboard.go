// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/lifehub-tui/internal/model"
	"github.com/jeranaias/lifehub-tui/internal/ui/components"
)

// Dashboard is the landing page: weather, the pinned vehicle, and
// badge counts from every module, fetched in one parallel burst.
type Dashboard struct {
	ctx Context

	weather *model.Weather
	summary *model.DashboardSummary
	loaded  bool
}

// NewDashboard creates the dashboard view.
func NewDashboard(ctx Context) *Dashboard {
	return &Dashboard{ctx: ctx}
}

type dashboardLoadedMsg struct {
	weather *model.Weather
	summary *model.DashboardSummary
}

func (d *Dashboard) Title() string { return "Dashboard" }

func (d *Dashboard) Init() tea.Cmd {
	client := d.ctx.Client
	vehicleID := d.ctx.Config.Dashboard.VehicleID
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		var msg dashboardLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			w, err := client.GetWeather(gctx)
			if err != nil {
				return err
			}
			msg.weather = w
			return nil
		})
		g.Go(func() error {
			s, err := client.GetDashboardSummary(gctx, vehicleID)
			if err != nil {
				return err
			}
			msg.summary = s
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return msg, nil
	})
}

func (d *Dashboard) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(dashboardLoadedMsg); ok {
		d.weather = m.weather
		d.summary = m.summary
		d.loaded = true
	}
	return nil
}

func (d *Dashboard) View(width, height int) string {
	theme := d.ctx.Theme
	if !d.loaded {
		return theme.Muted.Render("Loading dashboard…")
	}

	var cards []string
	if d.weather != nil {
		w := d.weather
		body := fmt.Sprintf("%s\n%.0f°F · %s", w.Location, w.TempF, w.Condition)
		if w.HighF != 0 || w.LowF != 0 {
			body += fmt.Sprintf("\nH %.0f° / L %.0f°", w.HighF, w.LowF)
		}
		cards = append(cards, d.card("Weather", body))
	}
	if d.summary != nil {
		s := d.summary
		if s.Vehicle != nil {
			v := s.Vehicle
			badge := theme.StatusBadge(v.WorstStatus).Render(string(v.WorstStatus))
			body := fmt.Sprintf("%s\n%s\n%d intervals due %s",
				v.Name, components.FormatMiles(v.CurrentMileage), v.DueIntervals, badge)
			cards = append(cards, d.card("Garage", body))
		}
		cards = append(cards, d.card("Today",
			fmt.Sprintf("%d open tasks\n%d pinned notes\n%d unread alerts",
				s.OpenTasks, s.PinnedNotes, s.UnreadCount)))
		cards = append(cards, d.card("Systems",
			fmt.Sprintf("%d devices on\n%d active prints\n%d open incidents",
				s.DevicesOn, s.ActivePrints, s.OpenIncidents)))
		if s.NextLaunch != nil {
			l := s.NextLaunch
			body := l.Name + "\n" + l.Provider
			if l.WindowStart != nil {
				body += "\n" + l.WindowStart.Format("Jan 2 15:04 MST")
			}
			cards = append(cards, d.card("Next Launch", body))
		}
	}

	perRow := 1
	switch {
	case width >= 120:
		perRow = 3
	case width >= 80:
		perRow = 2
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return strings.Join(rows, "\n")
}

func (d *Dashboard) card(title, body string) string {
	theme := d.ctx.Theme
	return theme.Card.Render(theme.CardTitle.Render(title) + "\n" + body)
}
