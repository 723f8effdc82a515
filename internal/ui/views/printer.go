// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lifehub-tui/internal/api"
	"github.com/jeranaias/lifehub-tui/internal/devices"
	"github.com/jeranaias/lifehub-tui/internal/model"
	"github.com/jeranaias/lifehub-tui/internal/ui/components"
	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// printerPollInterval is the slow reconcile cadence behind the stream,
// matching the smart-home page.
const printerPollInterval = 60 * time.Second

// Printer is the 3D printer page. It shares the smart-home state stream
// and patches the composite printer view in place per frame.
type Printer struct {
	ctx Context

	printers []model.PrinterView
	selected int
	sub      *api.Subscription
	events   chan model.StateChange
	loaded   bool
}

// NewPrinter creates the printer view.
func NewPrinter(ctx Context) *Printer {
	return &Printer{ctx: ctx}
}

type printersLoadedMsg struct {
	printers []model.PrinterView
}

type printerStateMsg struct {
	change model.StateChange
}

type printerPollMsg struct{}

type printerRefreshedMsg struct {
	printer *model.PrinterView
}

func (p *Printer) Title() string { return "Printer" }

func (p *Printer) Init() tea.Cmd {
	p.Hide()
	p.events = make(chan model.StateChange, 64)
	client := p.ctx.Client
	load := fetch(func(ctx context.Context) (tea.Msg, error) {
		printers, err := client.ListPrinters(ctx)
		if err != nil {
			return nil, err
		}
		return printersLoadedMsg{printers: printers}, nil
	})
	return tea.Batch(load, p.openStream(), p.waitForEvent(), p.pollTick())
}

// Hide closes the state stream; Init reopens it.
func (p *Printer) Hide() {
	if p.sub != nil {
		p.sub.Close()
		p.sub = nil
	}
}

func (p *Printer) openStream() tea.Cmd {
	events := p.events
	p.sub = p.ctx.Client.Stream(context.Background(), api.StateStreamPath,
		func(data json.RawMessage) {
			var ev model.StateChange
			if err := json.Unmarshal(data, &ev); err != nil {
				return
			}
			select {
			case events <- ev:
			default:
			}
		},
		func(err error) {})
	return nil
}

// waitForEvent bridges the stream goroutine into the update loop. The
// Done case releases the waiter once the subscription closes, so a
// hidden page does not leave a goroutine parked on a dead channel.
func (p *Printer) waitForEvent() tea.Cmd {
	events, sub := p.events, p.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev := <-events:
			return printerStateMsg{change: ev}
		case <-sub.Done():
			return nil
		}
	}
}

func (p *Printer) pollTick() tea.Cmd {
	return tea.Tick(printerPollInterval, func(time.Time) tea.Msg {
		return printerPollMsg{}
	})
}

// refreshSelected refetches only the selected printer's composite view;
// the full list is fetched on Init.
func (p *Printer) refreshSelected() tea.Cmd {
	if p.selected >= len(p.printers) {
		return nil
	}
	client := p.ctx.Client
	id := p.printers[p.selected].Device.ID
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		pv, err := client.GetPrinter(ctx, id)
		if err != nil {
			return nil, err
		}
		return printerRefreshedMsg{printer: pv}, nil
	})
}

func (p *Printer) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case printersLoadedMsg:
		p.printers = m.printers
		p.loaded = true
		if p.selected >= len(p.printers) {
			p.selected = 0
		}
	case printerStateMsg:
		for i := range p.printers {
			devices.ApplyToPrinter(&p.printers[i], m.change)
		}
		return p.waitForEvent()
	case printerPollMsg:
		return tea.Batch(p.refreshSelected(), p.pollTick())
	case printerRefreshedMsg:
		for i := range p.printers {
			if p.printers[i].Device.ID == m.printer.Device.ID {
				p.printers[i] = *m.printer
			}
		}
	case tea.KeyMsg:
		switch m.String() {
		case "[":
			if p.selected > 0 {
				p.selected--
			}
		case "]":
			if p.selected < len(p.printers)-1 {
				p.selected++
			}
		case "r":
			return p.Init()
		}
	}
	return nil
}

func (p *Printer) View(width, height int) string {
	theme := p.ctx.Theme
	if !p.loaded {
		return theme.Muted.Render("Loading printers…")
	}
	if len(p.printers) == 0 {
		return theme.Muted.Render("No printers configured.")
	}

	pv := p.printers[p.selected]
	title := theme.Title.Render(pv.Device.FriendlyName)
	if len(p.printers) > 1 {
		title += theme.Muted.Render(fmt.Sprintf("  (%d/%d, [ ] switches)",
			p.selected+1, len(p.printers)))
	}

	cardWidth := width / 2
	if cardWidth > 48 {
		cardWidth = 48
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		p.renderJob(pv, cardWidth),
		p.renderTemps(pv, cardWidth))
	right := lipgloss.JoinVertical(lipgloss.Left,
		p.renderPosition(pv, cardWidth),
		p.renderControls(pv, cardWidth),
		p.renderFilament(pv, cardWidth),
		p.renderCamera(pv, cardWidth))
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (p *Printer) renderJob(pv model.PrinterView, width int) string {
	theme := p.ctx.Theme
	var b strings.Builder
	state := pv.PrintStatus.State
	if state == "" {
		state = pv.Device.LastState
	}
	b.WriteString("State: " + theme.Info.Render(state) + "\n")
	if pv.PrintStatus.FileName != "" {
		b.WriteString("File:  " + components.Truncate(pv.PrintStatus.FileName, width-10) + "\n")
	}
	if pv.PrintStatus.Progress != nil {
		b.WriteString(progressBar(theme, *pv.PrintStatus.Progress, width-8) + "\n")
	}
	if pv.PrintStatus.RemainingTime != nil {
		b.WriteString(fmt.Sprintf("Remaining: %s\n", formatMinutes(*pv.PrintStatus.RemainingTime)))
	}
	if pv.Layers.Working != nil && pv.Layers.Total != nil {
		b.WriteString(fmt.Sprintf("Layer: %d / %d\n", *pv.Layers.Working, *pv.Layers.Total))
	}
	if pv.PrintStatus.PrintSpeed != nil {
		b.WriteString(fmt.Sprintf("Speed: %.0f%%\n", *pv.PrintStatus.PrintSpeed))
	}
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render("Print Job") + "\n" + b.String())
}

func (p *Printer) renderTemps(pv model.PrinterView, width int) string {
	theme := p.ctx.Theme
	unit := pv.TempUnit
	if unit == "" {
		unit = "°C"
	}
	var b strings.Builder
	b.WriteString(tempLine("Nozzle", pv.Temperatures.Nozzle, unit))
	b.WriteString(tempLine("Bed", pv.Temperatures.Bed, unit))
	b.WriteString(tempLine("Chamber", pv.Temperatures.Chamber, unit))
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render("Temperatures") + "\n" + b.String())
}

func tempLine(name string, r model.TempReading, unit string) string {
	cur, tgt := "—", "—"
	if r.Current != nil {
		cur = fmt.Sprintf("%.1f%s", *r.Current, unit)
	}
	if r.Target != nil {
		tgt = fmt.Sprintf("%.0f%s", *r.Target, unit)
	}
	return fmt.Sprintf("%-8s %8s → %s\n", name, cur, tgt)
}

func (p *Printer) renderPosition(pv model.PrinterView, width int) string {
	theme := p.ctx.Theme
	axis := func(v *float64) string {
		if v == nil {
			return "—"
		}
		return fmt.Sprintf("%.1f", *v)
	}
	body := fmt.Sprintf("X %s   Y %s   Z %s",
		axis(pv.Position.X), axis(pv.Position.Y), axis(pv.Position.Z))
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render("Toolhead") + "\n" + body)
}

func (p *Printer) renderControls(pv model.PrinterView, width int) string {
	theme := p.ctx.Theme
	var b strings.Builder
	if pv.Controls.Light != nil {
		b.WriteString("Light: " + theme.DeviceStyle(*pv.Controls.Light).Render(pv.Controls.Light.LastState) + "\n")
	}
	for _, fan := range pv.Controls.Fans {
		line := components.Truncate(fan.FriendlyName, width-14)
		if pct, ok := devices.FanPercentage(fan); ok {
			line += fmt.Sprintf("  %.0f%%", pct)
		} else {
			line += "  " + fan.LastState
		}
		b.WriteString(line + "\n")
	}
	if b.Len() == 0 {
		b.WriteString(theme.Muted.Render("No controls exposed."))
	}
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render("Controls") + "\n" + b.String())
}

func (p *Printer) renderFilament(pv model.PrinterView, width int) string {
	theme := p.ctx.Theme
	var b strings.Builder
	for _, slot := range pv.Filament.Slots {
		marker := "○"
		if slot.IsActive {
			marker = theme.Success.Render("●")
		}
		b.WriteString(fmt.Sprintf("%s slot %d  %s\n", marker, slot.Index, slot.Material))
	}
	if pv.Filament.Humidity != nil {
		b.WriteString(fmt.Sprintf("Humidity: %.0f%%\n", *pv.Filament.Humidity))
	}
	if pv.Filament.Status != "" {
		b.WriteString("Status: " + pv.Filament.Status + "\n")
	}
	if b.Len() == 0 {
		b.WriteString(theme.Muted.Render("No filament data."))
	}
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render("Filament") + "\n" + b.String())
}

// renderCamera shows the MJPEG pass-through URL; a terminal cannot
// embed the stream, so the card hands the URL to the user instead.
func (p *Printer) renderCamera(pv model.PrinterView, width int) string {
	if pv.Camera == nil {
		return ""
	}
	theme := p.ctx.Theme
	url := p.ctx.Client.CameraStreamURL(pv.Device.ID)
	body := theme.DeviceStyle(*pv.Camera).Render(pv.Camera.LastState) + "\n" +
		theme.Info.Render(components.Truncate(url, width-4))
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render("Camera") + "\n" + body)
}

// progressBar renders a simple block-fill bar with the percentage label.
func progressBar(theme *styles.Theme, percent float64, width int) string {
	if width < 10 {
		width = 10
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %5.1f%%", theme.Info.Render(bar), percent)
}

func formatMinutes(mins float64) string {
	total := int(mins)
	if total >= 60 {
		return fmt.Sprintf("%dh %dm", total/60, total%60)
	}
	return fmt.Sprintf("%dm", total)
}
