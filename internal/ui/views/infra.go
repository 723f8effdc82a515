// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/lifehub-tui/internal/model"
	"github.com/jeranaias/lifehub-tui/internal/ui/components"
)

type infraTab int

const (
	infraTabHosts infraTab = iota
	infraTabContainers
	infraTabServices
	infraTabIncidents
	infraTabCount
)

var infraTabNames = [...]string{"Hosts", "Containers", "Services", "Incidents"}

// Infra is the infrastructure page: hosts, containers, uptime checks,
// and the incident log, one tab each.
type Infra struct {
	ctx Context

	hosts      []model.Host
	containers []model.Container
	services   []model.Service
	incidents  []model.Incident
	tab        infraTab
	loaded     bool
}

// NewInfra creates the infrastructure view.
func NewInfra(ctx Context) *Infra {
	return &Infra{ctx: ctx}
}

type infraLoadedMsg struct {
	hosts      []model.Host
	containers []model.Container
	services   []model.Service
	incidents  []model.Incident
}

func (v *Infra) Title() string { return "Infrastructure" }

func (v *Infra) Init() tea.Cmd {
	client := v.ctx.Client
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		var msg infraLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			hosts, err := client.ListHosts(gctx)
			msg.hosts = hosts
			return err
		})
		g.Go(func() error {
			containers, err := client.ListContainers(gctx, "")
			msg.containers = containers
			return err
		})
		g.Go(func() error {
			services, err := client.ListServices(gctx)
			msg.services = services
			return err
		})
		g.Go(func() error {
			incidents, err := client.ListIncidents(gctx)
			msg.incidents = incidents
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return msg, nil
	})
}

func (v *Infra) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case infraLoadedMsg:
		v.hosts = m.hosts
		v.containers = m.containers
		v.services = m.services
		v.incidents = m.incidents
		v.loaded = true
	case tea.KeyMsg:
		switch m.String() {
		case "tab", "right", "l":
			v.tab = (v.tab + 1) % infraTabCount
		case "shift+tab", "left", "h":
			v.tab = (v.tab + infraTabCount - 1) % infraTabCount
		case "r":
			return v.Init()
		}
	}
	return nil
}

func (v *Infra) View(width, height int) string {
	theme := v.ctx.Theme
	if !v.loaded {
		return theme.Muted.Render("Loading infrastructure…")
	}

	var tabs []string
	for i, name := range infraTabNames {
		if infraTab(i) == v.tab {
			tabs = append(tabs, theme.SidebarActive.Render(name))
		} else {
			tabs = append(tabs, theme.Muted.Render(name))
		}
	}
	header := strings.Join(tabs, "  ")

	var body string
	switch v.tab {
	case infraTabHosts:
		body = v.renderHosts(width)
	case infraTabContainers:
		body = v.renderContainers(width)
	case infraTabServices:
		body = v.renderServices(width)
	case infraTabIncidents:
		body = v.renderIncidents(width)
	}
	return header + "\n\n" + body
}

func (v *Infra) statusStyle(status string) func(...string) string {
	theme := v.ctx.Theme
	switch status {
	case "up", "online", "running", "resolved", "healthy":
		return theme.Success.Render
	case "degraded", "restarting", "investigating":
		return theme.Warning.Render
	case "down", "offline", "exited", "open", "critical":
		return theme.Danger.Render
	}
	return theme.Muted.Render
}

func (v *Infra) renderHosts(width int) string {
	theme := v.ctx.Theme
	if len(v.hosts) == 0 {
		return theme.Muted.Render("No hosts registered.")
	}
	var b strings.Builder
	b.WriteString(theme.TableHeader.Render(fmt.Sprintf(
		"%-20s %-16s %-10s %6s %6s  %s", "Host", "Address", "Status", "CPU", "Mem", "Seen")) + "\n")
	for _, h := range v.hosts {
		cpu, mem := "—", "—"
		if h.CPUPercent != nil {
			cpu = fmt.Sprintf("%.0f%%", *h.CPUPercent)
		}
		if h.MemPercent != nil {
			mem = fmt.Sprintf("%.0f%%", *h.MemPercent)
		}
		seen := "never"
		if h.LastSeen != nil {
			seen = components.RelativeTime(*h.LastSeen)
		}
		b.WriteString(fmt.Sprintf("%-20s %-16s %-10s %6s %6s  %s\n",
			components.Truncate(h.Name, 20), h.Address,
			v.statusStyle(h.Status)(h.Status), cpu, mem, seen))
	}
	return b.String()
}

func (v *Infra) renderContainers(width int) string {
	theme := v.ctx.Theme
	if len(v.containers) == 0 {
		return theme.Muted.Render("No containers reported.")
	}
	var b strings.Builder
	b.WriteString(theme.TableHeader.Render(fmt.Sprintf(
		"%-24s %-30s %-12s %s", "Container", "Image", "Status", "Uptime")) + "\n")
	for _, c := range v.containers {
		b.WriteString(fmt.Sprintf("%-24s %-30s %-12s %s\n",
			components.Truncate(c.Name, 24), components.Truncate(c.Image, 30),
			v.statusStyle(c.Status)(c.Status), c.Uptime))
	}
	return b.String()
}

func (v *Infra) renderServices(width int) string {
	theme := v.ctx.Theme
	if len(v.services) == 0 {
		return theme.Muted.Render("No uptime checks configured.")
	}
	var b strings.Builder
	b.WriteString(theme.TableHeader.Render(fmt.Sprintf(
		"%-24s %-10s %8s  %s", "Service", "Status", "Latency", "Checked")) + "\n")
	for _, s := range v.services {
		latency := "—"
		if s.LatencyMs != nil {
			latency = fmt.Sprintf("%dms", *s.LatencyMs)
		}
		checked := "never"
		if s.CheckedAt != nil {
			checked = components.RelativeTime(*s.CheckedAt)
		}
		b.WriteString(fmt.Sprintf("%-24s %-10s %8s  %s\n",
			components.Truncate(s.Name, 24),
			v.statusStyle(s.Status)(s.Status), latency, checked))
	}
	return b.String()
}

func (v *Infra) renderIncidents(width int) string {
	theme := v.ctx.Theme
	if len(v.incidents) == 0 {
		return theme.Success.Render("No incidents. Quiet out there.")
	}
	var b strings.Builder
	for _, inc := range v.incidents {
		line := fmt.Sprintf("%s %s  %s",
			v.statusStyle(inc.Severity)(strings.ToUpper(inc.Severity)),
			components.Truncate(inc.Title, width-30),
			theme.Muted.Render(components.RelativeTime(inc.OpenedAt)))
		if inc.Status == "resolved" && inc.ResolvedAt != nil {
			line += theme.Success.Render("  resolved " + components.RelativeTime(*inc.ResolvedAt))
		}
		b.WriteString(line + "\n")
		if inc.Description != "" {
			b.WriteString(theme.Muted.Render("  "+components.Truncate(inc.Description, width-4)) + "\n")
		}
	}
	return b.String()
}
