// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/lifehub-tui/internal/maintenance"
	"github.com/jeranaias/lifehub-tui/internal/model"
	"github.com/jeranaias/lifehub-tui/internal/ui/components"
)

// garageTab selects the right-hand panel of the garage page.
type garageTab int

const (
	tabIntervals garageTab = iota
	tabLogs
	tabFuel
	tabTires
	garageTabCount
)

var garageTabNames = []string{"Maintenance", "Service Log", "Fuel", "Tires"}

// Garage is the vehicles page: vehicle list on the left, the selected
// vehicle's maintenance state on the right. Interval statuses are
// derived client-side against current mileage.
type Garage struct {
	ctx Context

	vehicles []model.Vehicle
	selected int
	tab      garageTab

	sections []maintenance.Section
	logs     []model.MaintenanceLog
	fuelLogs []model.FuelLog
	fuel     *model.FuelStats
	tires    []model.TireSet
	loaded   bool
}

// NewGarage creates the garage view.
func NewGarage(ctx Context) *Garage {
	return &Garage{ctx: ctx}
}

type vehiclesLoadedMsg struct {
	vehicles []model.Vehicle
}

type vehicleDetailMsg struct {
	vehicleID int64
	sections  []maintenance.Section
	logs      []model.MaintenanceLog
	fuelLogs  []model.FuelLog
	fuel      *model.FuelStats
	tires     []model.TireSet
}

func (g *Garage) Title() string { return "Garage" }

func (g *Garage) Init() tea.Cmd {
	client := g.ctx.Client
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		vehicles, err := client.ListVehicles(ctx)
		if err != nil {
			return nil, err
		}
		return vehiclesLoadedMsg{vehicles: vehicles}, nil
	})
}

// loadDetail fetches everything the right panel needs for one vehicle.
func (g *Garage) loadDetail(v model.Vehicle) tea.Cmd {
	client := g.ctx.Client
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		msg := vehicleDetailMsg{vehicleID: v.ID}
		eg, ectx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			intervals, err := client.ListIntervals(ectx, v.ID)
			if err != nil {
				return err
			}
			evaluated := maintenance.EvaluateAll(intervals, v.CurrentMileage, time.Now())
			msg.sections = maintenance.GroupBySection(evaluated)
			return nil
		})
		eg.Go(func() error {
			logs, err := client.ListMaintenanceLogs(ectx, v.ID)
			msg.logs = logs
			return err
		})
		eg.Go(func() error {
			fuelLogs, err := client.ListFuelEntries(ectx, v.ID)
			msg.fuelLogs = fuelLogs
			return err
		})
		eg.Go(func() error {
			stats, err := client.GetFuelStats(ectx, v.ID)
			msg.fuel = stats
			return err
		})
		eg.Go(func() error {
			tires, err := client.ListTireSets(ectx, v.ID)
			msg.tires = tires
			return err
		})
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		return msg, nil
	})
}

func (g *Garage) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case vehiclesLoadedMsg:
		g.vehicles = m.vehicles
		g.loaded = true
		if g.selected >= len(g.vehicles) {
			g.selected = 0
		}
		if len(g.vehicles) > 0 {
			return g.loadDetail(g.vehicles[g.selected])
		}
	case vehicleDetailMsg:
		if len(g.vehicles) > 0 && g.vehicles[g.selected].ID == m.vehicleID {
			g.sections = m.sections
			g.logs = m.logs
			g.fuelLogs = m.fuelLogs
			g.fuel = m.fuel
			g.tires = m.tires
		}
	case tea.KeyMsg:
		switch m.String() {
		case "up", "k":
			if g.selected > 0 {
				g.selected--
				return g.loadDetail(g.vehicles[g.selected])
			}
		case "down", "j":
			if g.selected < len(g.vehicles)-1 {
				g.selected++
				return g.loadDetail(g.vehicles[g.selected])
			}
		case "tab":
			g.tab = (g.tab + 1) % garageTabCount
		case "r":
			return g.Init()
		}
	}
	return nil
}

func (g *Garage) View(width, height int) string {
	theme := g.ctx.Theme
	if !g.loaded {
		return theme.Muted.Render("Loading garage…")
	}
	if len(g.vehicles) == 0 {
		return theme.Muted.Render("No vehicles yet.")
	}

	listWidth := 28
	if width < 80 {
		listWidth = width
	}

	var list strings.Builder
	for i, v := range g.vehicles {
		line := components.Truncate(v.DisplayName(), listWidth-4)
		if v.IsPrimary {
			line += " *"
		}
		if i == g.selected {
			list.WriteString(theme.SelectedRow.Render(line))
		} else {
			list.WriteString(line)
		}
		list.WriteByte('\n')
	}
	left := theme.Card.Width(listWidth).Render(
		theme.CardTitle.Render("Vehicles") + "\n" + strings.TrimRight(list.String(), "\n"))

	if width < 80 {
		return left
	}

	right := g.renderTab(width - listWidth - 4)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (g *Garage) renderTab(width int) string {
	theme := g.ctx.Theme

	var tabs []string
	for i, name := range garageTabNames {
		if garageTab(i) == g.tab {
			tabs = append(tabs, theme.SidebarActive.Render(name))
		} else {
			tabs = append(tabs, theme.SidebarItem.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)

	var body string
	switch g.tab {
	case tabIntervals:
		body = g.renderIntervals(width)
	case tabLogs:
		body = g.renderLogs(width)
	case tabFuel:
		body = g.renderFuel()
	case tabTires:
		body = g.renderTires(width)
	}
	return header + "\n\n" + body
}

func (g *Garage) renderIntervals(width int) string {
	theme := g.ctx.Theme
	if len(g.sections) == 0 {
		return theme.Muted.Render("No maintenance intervals configured.")
	}
	var b strings.Builder
	for _, sec := range g.sections {
		b.WriteString(theme.RoomTitle.Render(sec.Title))
		b.WriteByte('\n')
		for _, iv := range sec.Intervals {
			badge := theme.StatusBadge(iv.Status).Render(string(iv.Status))
			line := components.PadRight(iv.Item.Name, 28) + badge
			if iv.MilesRemaining != nil {
				line += theme.Muted.Render(fmt.Sprintf("  %s left", components.FormatMiles(*iv.MilesRemaining)))
			} else if iv.DaysRemaining != nil {
				line += theme.Muted.Render(fmt.Sprintf("  %dd left", *iv.DaysRemaining))
			}
			if !iv.IsEnabled {
				line = theme.Muted.Render(components.Truncate(iv.Item.Name, width) + "  (disabled)")
			}
			b.WriteString("  " + line + "\n")
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (g *Garage) renderLogs(width int) string {
	theme := g.ctx.Theme
	if len(g.logs) == 0 {
		return theme.Muted.Render("No service records.")
	}
	var b strings.Builder
	b.WriteString(theme.TableHeader.Render(components.PadRight("Date", 12)+components.PadRight("Mileage", 12)+"Service") + "\n")
	for _, l := range g.logs {
		b.WriteString(components.PadRight(l.ServicedAt.Format("2006-01-02"), 12))
		b.WriteString(components.PadRight(components.FormatNumber(l.Mileage), 12))
		b.WriteString(components.Truncate(l.Description, width-26))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (g *Garage) renderFuel() string {
	theme := g.ctx.Theme
	if g.fuel == nil || g.fuel.TotalEntries == 0 {
		return theme.Muted.Render("No fuel entries.")
	}
	s := g.fuel
	return fmt.Sprintf("%s fill-ups\nAvg %s\nBest %s\nTotal spent %s",
		components.FormatNumber(s.TotalEntries),
		theme.Success.Render(fmt.Sprintf("%.1f mpg", s.AvgMPG)),
		fmt.Sprintf("%.1f mpg", s.BestMPG),
		components.FormatMoney(s.TotalCost))
}

func (g *Garage) renderTires(width int) string {
	theme := g.ctx.Theme
	if len(g.tires) == 0 {
		return theme.Muted.Render("No tire sets tracked.")
	}
	var b strings.Builder
	for _, t := range g.tires {
		name := t.Name
		if t.Brand != "" {
			name += " (" + t.Brand + ")"
		}
		line := components.PadRight(components.Truncate(name, width-26), width-24) +
			components.FormatMiles(t.MilesOnSet)
		if t.IsMounted {
			line = theme.Success.Render("● ") + line
		} else {
			line = theme.Muted.Render("○ ") + line
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
