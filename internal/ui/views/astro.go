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
	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// Astro is the astrometrics page: APOD, near-earth objects, ISS
// tracking, and launch schedule.
type Astro struct {
	ctx Context

	apod     *model.APOD
	neos     []model.NEO
	iss      *model.ISSPosition
	crew     []model.CrewMember
	launches []model.Launch
	loaded   bool
}

// NewAstro creates the astrometrics view.
func NewAstro(ctx Context) *Astro {
	return &Astro{ctx: ctx}
}

type astroLoadedMsg struct {
	apod     *model.APOD
	neos     []model.NEO
	iss      *model.ISSPosition
	crew     []model.CrewMember
	launches []model.Launch
}

func (a *Astro) Title() string { return "Astrometrics" }

func (a *Astro) Init() tea.Cmd {
	client := a.ctx.Client
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		var msg astroLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			apod, err := client.GetAPOD(gctx, "")
			msg.apod = apod
			return err
		})
		g.Go(func() error {
			neos, err := client.ListNEOs(gctx)
			msg.neos = neos
			return err
		})
		g.Go(func() error {
			iss, err := client.GetISSPosition(gctx)
			msg.iss = iss
			return err
		})
		g.Go(func() error {
			crew, err := client.ListISSCrew(gctx)
			msg.crew = crew
			return err
		})
		g.Go(func() error {
			launches, err := client.ListUpcomingLaunches(gctx)
			msg.launches = launches
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return msg, nil
	})
}

func (a *Astro) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case astroLoadedMsg:
		a.apod = m.apod
		a.neos = m.neos
		a.iss = m.iss
		a.crew = m.crew
		a.launches = m.launches
		a.loaded = true
	case tea.KeyMsg:
		switch m.String() {
		case "r":
			return a.Init()
		}
	}
	return nil
}

func (a *Astro) View(width, height int) string {
	theme := a.ctx.Theme
	if !a.loaded {
		return theme.Muted.Render("Loading astrometrics…")
	}

	cardWidth := width - 2
	if styles.LayoutForWidth(width) != styles.LayoutNarrow {
		cardWidth = width/2 - 2
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		a.renderAPOD(cardWidth),
		a.renderISS(cardWidth))
	right := lipgloss.JoinVertical(lipgloss.Left,
		a.renderNEOs(cardWidth),
		a.renderLaunches(cardWidth))
	if styles.LayoutForWidth(width) == styles.LayoutNarrow {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (a *Astro) renderAPOD(width int) string {
	theme := a.ctx.Theme
	if a.apod == nil {
		return theme.Card.Width(width).Render(theme.Muted.Render("APOD unavailable."))
	}
	body := theme.Info.Render(a.apod.Title) + "\n" +
		components.Truncate(a.apod.Explanation, (width-6)*4) + "\n" +
		theme.Muted.Render(a.apod.URL)
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render("Picture of the Day · "+a.apod.Date) + "\n" + body)
}

func (a *Astro) renderISS(width int) string {
	theme := a.ctx.Theme
	var b strings.Builder
	if a.iss != nil {
		b.WriteString(fmt.Sprintf("Lat %.2f°  Lon %.2f°\n", a.iss.Latitude, a.iss.Longitude))
		b.WriteString(fmt.Sprintf("Alt %.0f km  Vel %s km/h\n",
			a.iss.Altitude, components.FormatNumber(int(a.iss.Velocity))))
	} else {
		b.WriteString(theme.Muted.Render("Position unavailable.\n"))
	}
	if len(a.crew) > 0 {
		b.WriteString(theme.Subtitle.Render("Crew") + "\n")
		for _, c := range a.crew {
			b.WriteString("  " + c.Name)
			if c.Agency != "" {
				b.WriteString(theme.Muted.Render(" · " + c.Agency))
			}
			b.WriteString("\n")
		}
	}
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render("ISS") + "\n" + b.String())
}

func (a *Astro) renderNEOs(width int) string {
	theme := a.ctx.Theme
	var b strings.Builder
	if len(a.neos) == 0 {
		b.WriteString(theme.Muted.Render("No close approaches this week."))
	}
	for _, neo := range a.neos {
		name := components.Truncate(neo.Name, width-24)
		if neo.IsHazardous {
			name = theme.Danger.Render("⚠ " + name)
		}
		b.WriteString(fmt.Sprintf("%s\n  %.1f LD · %s km/h · %s\n",
			name, neo.LunarDistances(),
			components.FormatNumber(int(neo.VelocityKph)),
			neo.CloseApproachAt.Format("Jan 2")))
	}
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render("Near-Earth Objects") + "\n" + b.String())
}

func (a *Astro) renderLaunches(width int) string {
	theme := a.ctx.Theme
	var b strings.Builder
	if len(a.launches) == 0 {
		b.WriteString(theme.Muted.Render("No upcoming launches."))
	}
	for i, l := range a.launches {
		if i >= 6 {
			break
		}
		when := "TBD"
		if l.WindowStart != nil {
			when = l.WindowStart.Format("Jan 2 15:04")
		}
		b.WriteString(fmt.Sprintf("%s\n  %s · %s · %s\n",
			components.Truncate(l.Name, width-6),
			theme.Muted.Render(l.Provider), when, l.Status))
	}
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render("Launch Schedule") + "\n" + b.String())
}
