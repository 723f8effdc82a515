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

// homePollInterval is the slow reconcile cadence; the SSE stream carries
// the fast path, the poll catches anything a dropped frame missed.
const homePollInterval = 60 * time.Second

// Home is the smart-home page: a room grid patched live from the
// state_changed stream. Leaving the page closes the subscription;
// returning reopens it against a fresh dashboard fetch.
type Home struct {
	ctx Context

	dash   *model.SmartHomeDashboard
	sub    *api.Subscription
	events chan model.StateChange
	loaded bool
	cursor int
}

// NewHome creates the smart-home view.
func NewHome(ctx Context) *Home {
	return &Home{ctx: ctx}
}

type homeDashboardMsg struct {
	dash *model.SmartHomeDashboard
}

type homeStateMsg struct {
	change model.StateChange
}

type homeStreamErrMsg struct {
	err error
}

type homePollMsg struct{}

type deviceToggledMsg struct {
	err error
}

func (h *Home) Title() string { return "Home" }

func (h *Home) Init() tea.Cmd {
	h.Hide()
	h.events = make(chan model.StateChange, 64)
	return tea.Batch(h.loadDashboard(), h.openStream(), h.waitForEvent(), h.pollTick())
}

// Hide closes the state stream; Init reopens it.
func (h *Home) Hide() {
	if h.sub != nil {
		h.sub.Close()
		h.sub = nil
	}
}

func (h *Home) loadDashboard() tea.Cmd {
	client := h.ctx.Client
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		dash, err := client.GetSmartHomeDashboard(ctx)
		if err != nil {
			return nil, err
		}
		return homeDashboardMsg{dash: dash}, nil
	})
}

func (h *Home) openStream() tea.Cmd {
	events := h.events
	errs := make(chan error, 1)
	h.sub = h.ctx.Client.Stream(context.Background(), api.StateStreamPath,
		func(data json.RawMessage) {
			var ev model.StateChange
			if err := json.Unmarshal(data, &ev); err != nil {
				return
			}
			select {
			case events <- ev:
			default: // slow consumer; the poll will reconcile
			}
		},
		func(err error) {
			select {
			case errs <- err:
			default:
			}
		})
	sub := h.sub
	return func() tea.Msg {
		select {
		case err := <-errs:
			if err != nil {
				return homeStreamErrMsg{err: err}
			}
		case <-sub.Done():
			// Done and a buffered error can race; prefer the error.
			select {
			case err := <-errs:
				if err != nil {
					return homeStreamErrMsg{err: err}
				}
			default:
			}
		}
		return nil
	}
}

// waitForEvent bridges the stream goroutine into the update loop, one
// frame per command. The Done case releases the waiter once the
// subscription closes, so hiding the page does not leave a goroutine
// parked on a dead channel.
func (h *Home) waitForEvent() tea.Cmd {
	events, sub := h.events, h.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev := <-events:
			return homeStateMsg{change: ev}
		case <-sub.Done():
			return nil
		}
	}
}

func (h *Home) pollTick() tea.Cmd {
	return tea.Tick(homePollInterval, func(time.Time) tea.Msg {
		return homePollMsg{}
	})
}

func (h *Home) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case homeDashboardMsg:
		h.dash = m.dash
		h.loaded = true
	case homeStateMsg:
		if h.dash != nil {
			devices.ApplyToDashboard(h.dash, m.change)
		}
		return h.waitForEvent()
	case homeStreamErrMsg:
		return func() tea.Msg {
			return ToastMsg{Message: "Device stream lost: " + m.err.Error(), IsError: true}
		}
	case homePollMsg:
		return tea.Batch(h.loadDashboard(), h.pollTick())
	case deviceToggledMsg:
		if m.err != nil {
			return func() tea.Msg {
				return ToastMsg{Message: "Device control failed: " + m.err.Error(), IsError: true}
			}
		}
	case tea.KeyMsg:
		switch m.String() {
		case "up", "k":
			if h.cursor > 0 {
				h.cursor--
			}
		case "down", "j":
			if h.cursor < h.deviceCount()-1 {
				h.cursor++
			}
		case "enter", " ":
			return h.toggleFocused()
		case "r":
			return h.loadDashboard()
		}
	}
	return nil
}

func (h *Home) deviceCount() int {
	if h.dash == nil {
		return 0
	}
	n := len(h.dash.Unassigned)
	for _, room := range h.dash.Rooms {
		n += len(room.Devices)
	}
	return n
}

// focusedDevice walks rooms then unassigned in render order.
func (h *Home) focusedDevice() *model.Device {
	if h.dash == nil {
		return nil
	}
	i := h.cursor
	for ri := range h.dash.Rooms {
		devs := h.dash.Rooms[ri].Devices
		if i < len(devs) {
			return &devs[i]
		}
		i -= len(devs)
	}
	if i < len(h.dash.Unassigned) {
		return &h.dash.Unassigned[i]
	}
	return nil
}

// toggleFocused flips togglable domains; the resulting state_changed
// frame updates the UI, so no optimistic patch is applied here.
func (h *Home) toggleFocused() tea.Cmd {
	dev := h.focusedDevice()
	if dev == nil {
		return nil
	}
	switch dev.Domain {
	case "light", "switch", "fan", "lock":
	default:
		return nil
	}
	client := h.ctx.Client
	id := dev.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return deviceToggledMsg{err: client.ControlDevice(ctx, id, "toggle", nil)}
	}
}

func (h *Home) View(width, height int) string {
	theme := h.ctx.Theme
	if !h.loaded {
		return theme.Muted.Render("Loading smart home…")
	}
	if h.dash == nil || h.deviceCount() == 0 {
		return theme.Muted.Render("No devices discovered.")
	}

	if theme.PaletteName() == styles.PaletteLCARS {
		return h.viewLCARS(width)
	}

	cols := 1
	switch styles.LayoutForWidth(width) {
	case styles.LayoutWide:
		cols = 3
	case styles.LayoutMedium:
		cols = 2
	}
	cardWidth := width/cols - 2

	var cards []string
	idx := 0
	for _, room := range h.dash.Rooms {
		cards = append(cards, h.renderRoom(room.Name, room.Icon, room.Devices, &idx, cardWidth))
	}
	if len(h.dash.Unassigned) > 0 {
		cards = append(cards, h.renderRoom("Unassigned", "", h.dash.Unassigned, &idx, cardWidth))
	}

	var rows []string
	for i := 0; i < len(cards); i += cols {
		end := i + cols
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	header := theme.Subtitle.Render(fmt.Sprintf("%d devices", h.dash.TotalDevices))
	return header + "\n" + strings.Join(rows, "\n")
}

// viewLCARS renders the console-strip layout: full-width room panels
// with an inverse banner and a rail glyph per device instead of cards.
func (h *Home) viewLCARS(width int) string {
	theme := h.ctx.Theme
	var b strings.Builder
	b.WriteString(theme.HeaderTitle.Render(" HOME SYSTEMS ") + " " +
		theme.Subtitle.Render(fmt.Sprintf("%d devices", h.dash.TotalDevices)) + "\n\n")

	idx := 0
	panel := func(name string, devs []model.Device) {
		banner := components.PadRight(strings.ToUpper(name), width-4)
		b.WriteString(theme.SidebarActive.Render("▐ "+banner) + "\n")
		for _, dev := range devs {
			rail := theme.DeviceStyle(dev).Render("▊")
			line := components.PadRight(components.Truncate(dev.FriendlyName, width-18), width-16) +
				components.PadRight(strings.ToUpper(dev.LastState), 12)
			if idx == h.cursor {
				line = theme.SelectedRow.Render(line)
			}
			b.WriteString(rail + " " + line + "\n")
			idx++
		}
		b.WriteString("\n")
	}
	for _, room := range h.dash.Rooms {
		panel(room.Name, room.Devices)
	}
	if len(h.dash.Unassigned) > 0 {
		panel("Unassigned", h.dash.Unassigned)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *Home) renderRoom(name, icon string, devs []model.Device, idx *int, width int) string {
	theme := h.ctx.Theme
	title := name
	if icon != "" {
		title = icon + " " + name
	}
	var b strings.Builder
	b.WriteString(theme.RoomTitle.Render(title) + "\n")
	for _, dev := range devs {
		line := components.PadRight(components.Truncate(dev.FriendlyName, width-16), width-14) +
			components.PadRight(dev.LastState, 10)
		line = theme.DeviceStyle(dev).Render(line)
		if *idx == h.cursor {
			line = theme.SelectedRow.Render("▸") + line
		} else {
			line = " " + line
		}
		b.WriteString(line + "\n")
		*idx++
	}
	return theme.Card.Width(width).Render(b.String())
}
