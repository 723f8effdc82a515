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

type notifTab int

const (
	notifTabFeed notifTab = iota
	notifTabChannels
	notifTabRules
	notifTabCount
)

var notifTabNames = [...]string{"Feed", "Channels", "Rules"}

// Notifications is the notifications page: the unified feed plus
// channel and rule management tabs.
type Notifications struct {
	ctx Context

	feed     []model.FeedItem
	channels []model.NotificationChannel
	rules    []model.NotificationRule
	unread   int
	tab      notifTab
	cursor   int
	confirm  components.Confirm
	loaded   bool
}

// NewNotifications creates the notifications view.
func NewNotifications(ctx Context) *Notifications {
	return &Notifications{ctx: ctx}
}

type notifLoadedMsg struct {
	feed     []model.FeedItem
	channels []model.NotificationChannel
	rules    []model.NotificationRule
	unread   int
}

type feedReadMsg struct {
	id  int64 // 0 means all
	err error
}

type channelTestedMsg struct {
	err error
}

func (v *Notifications) Title() string { return "Notifications" }

// Unread reports the badge count for the sidebar.
func (v *Notifications) Unread() int { return v.unread }

func (v *Notifications) Init() tea.Cmd {
	client := v.ctx.Client
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		var msg notifLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			feed, err := client.ListFeed(gctx)
			msg.feed = feed
			return err
		})
		g.Go(func() error {
			channels, err := client.ListChannels(gctx)
			msg.channels = channels
			return err
		})
		g.Go(func() error {
			rules, err := client.ListRules(gctx)
			msg.rules = rules
			return err
		})
		g.Go(func() error {
			unread, err := client.GetUnreadCount(gctx)
			msg.unread = unread
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return msg, nil
	})
}

func (v *Notifications) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case notifLoadedMsg:
		v.feed = m.feed
		v.channels = m.channels
		v.rules = m.rules
		v.unread = m.unread
		v.loaded = true
		v.cursor = 0
	case feedReadMsg:
		if m.err != nil {
			return func() tea.Msg {
				return ToastMsg{Message: "Mark read failed: " + m.err.Error(), IsError: true}
			}
		}
		return v.Init()
	case channelTestedMsg:
		if m.err != nil {
			return func() tea.Msg {
				return ToastMsg{Message: "Channel test failed: " + m.err.Error(), IsError: true}
			}
		}
		return func() tea.Msg { return ToastMsg{Message: "Test notification sent"} }
	case tea.KeyMsg:
		return v.handleKey(m)
	}
	return nil
}

func (v *Notifications) handleKey(m tea.KeyMsg) tea.Cmd {
	client := v.ctx.Client

	if v.confirm.Visible() {
		switch m.String() {
		case "left", "right", "tab", "h", "l":
			v.confirm.Toggle()
		case "enter":
			accepted := v.confirm.Accepted()
			v.confirm.Hide()
			if accepted {
				return func() tea.Msg {
					ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
					defer cancel()
					return feedReadMsg{err: client.MarkAllFeedRead(ctx)}
				}
			}
		case "esc":
			v.confirm.Hide()
		}
		return nil
	}

	switch m.String() {
	case "tab", "right", "l":
		v.tab = (v.tab + 1) % notifTabCount
		v.cursor = 0
	case "shift+tab", "left", "h":
		v.tab = (v.tab + notifTabCount - 1) % notifTabCount
		v.cursor = 0
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < v.rowCount()-1 {
			v.cursor++
		}
	case "enter":
		if v.tab == notifTabFeed && v.cursor < len(v.feed) && !v.feed[v.cursor].IsRead {
			id := v.feed[v.cursor].ID
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
				defer cancel()
				return feedReadMsg{id: id, err: client.MarkFeedRead(ctx, id)}
			}
		}
	case "a":
		if v.tab == notifTabFeed && v.unread > 0 {
			v.confirm.Show("Mark all read",
				fmt.Sprintf("Mark all %d unread notifications as read?", v.unread))
		}
	case "t":
		if v.tab == notifTabChannels && v.cursor < len(v.channels) {
			id := v.channels[v.cursor].ID
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
				defer cancel()
				return channelTestedMsg{err: client.TestChannel(ctx, id)}
			}
		}
	case "r":
		return v.Init()
	}
	return nil
}

func (v *Notifications) rowCount() int {
	switch v.tab {
	case notifTabFeed:
		return len(v.feed)
	case notifTabChannels:
		return len(v.channels)
	case notifTabRules:
		return len(v.rules)
	}
	return 0
}

func (v *Notifications) View(width, height int) string {
	theme := v.ctx.Theme
	if !v.loaded {
		return theme.Muted.Render("Loading notifications…")
	}

	var tabs []string
	for i, name := range notifTabNames {
		label := name
		if notifTab(i) == notifTabFeed && v.unread > 0 {
			label = fmt.Sprintf("%s (%d)", name, v.unread)
		}
		if notifTab(i) == v.tab {
			tabs = append(tabs, theme.SidebarActive.Render(label))
		} else {
			tabs = append(tabs, theme.Muted.Render(label))
		}
	}
	header := strings.Join(tabs, "  ")

	if v.confirm.Visible() {
		return v.confirm.Render(theme, width, height)
	}

	var body string
	switch v.tab {
	case notifTabFeed:
		body = v.renderFeed(width)
	case notifTabChannels:
		body = v.renderChannels(width)
	case notifTabRules:
		body = v.renderRules(width)
	}
	return header + "\n\n" + body
}

func (v *Notifications) renderFeed(width int) string {
	theme := v.ctx.Theme
	if len(v.feed) == 0 {
		return theme.Muted.Render("Nothing in the feed.")
	}
	var b strings.Builder
	for i, item := range v.feed {
		marker := " "
		title := item.Title
		if !item.IsRead {
			marker = theme.Info.Render("●")
			title = theme.Title.Render(title)
		}
		line := fmt.Sprintf("%s %s  %s", marker,
			components.Truncate(title, width-28),
			theme.Muted.Render(components.RelativeTime(item.CreatedAt)))
		if i == v.cursor {
			line = theme.SelectedRow.Render(line)
		}
		b.WriteString(line + "\n")
		if item.Body != "" && i == v.cursor {
			b.WriteString(theme.Muted.Render("  "+components.Truncate(item.Body, width-4)) + "\n")
		}
	}
	b.WriteString("\n" + theme.Muted.Render("enter marks read · a marks all read"))
	return b.String()
}

func (v *Notifications) renderChannels(width int) string {
	theme := v.ctx.Theme
	if len(v.channels) == 0 {
		return theme.Muted.Render("No channels configured.")
	}
	var b strings.Builder
	for i, ch := range v.channels {
		status := theme.Success.Render("enabled")
		if !ch.IsEnabled {
			status = theme.Muted.Render("disabled")
		}
		line := fmt.Sprintf("%-24s %-12s %s",
			components.Truncate(ch.Name, 24), ch.ChannelType, status)
		if i == v.cursor {
			line = theme.SelectedRow.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + theme.Muted.Render("t sends a test notification"))
	return b.String()
}

func (v *Notifications) renderRules(width int) string {
	theme := v.ctx.Theme
	if len(v.rules) == 0 {
		return theme.Muted.Render("No rules configured.")
	}
	var b strings.Builder
	for i, rule := range v.rules {
		status := theme.Success.Render("on")
		if !rule.IsEnabled {
			status = theme.Muted.Render("off")
		}
		trigger := string(rule.RuleType)
		if rule.EventName != "" {
			trigger = rule.EventName
		}
		line := fmt.Sprintf("%-28s %-20s %s",
			components.Truncate(rule.Name, 28),
			components.Truncate(trigger, 20), status)
		if i == v.cursor {
			line = theme.SelectedRow.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
