// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lifehub-tui/internal/chat"
	"github.com/jeranaias/lifehub-tui/internal/model"
	"github.com/jeranaias/lifehub-tui/internal/ui/components"
)

// chatPollInterval paces snapshot polls while a stream is live. The
// engine batches frames under its lock; polling at ~30fps keeps the
// transcript smooth without redrawing per delta.
const chatPollInterval = 33 * time.Millisecond

// Chat is the assistant page: conversation sidebar, transcript
// viewport, and a multi-line input. All chat state lives in the engine;
// this view only renders snapshots and forwards intents.
type Chat struct {
	ctx Context

	input      textarea.Model
	transcript viewport.Model
	spinner    components.Spinner
	confirm    components.Confirm
	snap       chat.Snapshot
	sidebar    bool
	convCursor int
	width      int
	height     int
	ready      bool
}

// NewChat creates the chat view.
func NewChat(ctx Context) *Chat {
	input := textarea.New()
	input.Placeholder = "Ask anything… (enter sends, shift+enter for newline)"
	input.SetHeight(3)
	input.ShowLineNumbers = false
	input.Focus()
	return &Chat{ctx: ctx, input: input, spinner: components.NewSpinner("Thinking…")}
}

type chatPollMsg struct{}

type chatOpMsg struct {
	err error
}

func (c *Chat) Title() string { return "Assistant" }

// CapturingInput keeps bare keys flowing into the message box.
func (c *Chat) CapturingInput() bool { return !c.sidebar }

func (c *Chat) Init() tea.Cmd {
	c.snap = c.ctx.Engine.Snapshot()
	engine := c.ctx.Engine
	cmds := []tea.Cmd{textarea.Blink, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return chatOpMsg{err: engine.RefreshConversations(ctx)}
	}}
	// A stream may still be live from before the page was hidden; the
	// poll loop has to be restarted here because tick messages issued
	// earlier were routed to whichever page was active when they fired.
	if c.snap.State != chat.StateIdle {
		cmds = append(cmds, c.pollCmd())
	}
	return tea.Batch(cmds...)
}

func (c *Chat) pollCmd() tea.Cmd {
	return tea.Tick(chatPollInterval, func(time.Time) tea.Msg {
		return chatPollMsg{}
	})
}

func (c *Chat) refresh() {
	atBottom := c.transcript.AtBottom()
	c.snap = c.ctx.Engine.Snapshot()
	switch {
	case c.snap.State == chat.StateIdle:
		c.spinner.Stop()
	case c.snap.ToolLabel != "":
		c.spinner.SetMessage(c.snap.ToolLabel)
	case c.snap.State == chat.StateStreaming:
		c.spinner.SetMessage("Streaming… (esc stops)")
	}
	c.transcript.SetContent(c.renderTranscript())
	if atBottom {
		c.transcript.GotoBottom()
	}
}

func (c *Chat) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case chatPollMsg:
		c.refresh()
		if c.snap.State != chat.StateIdle {
			return c.pollCmd()
		}
		return nil
	case chatOpMsg:
		c.refresh()
		if m.err != nil {
			return func() tea.Msg {
				return ToastMsg{Message: m.err.Error(), IsError: true}
			}
		}
		return nil
	case tea.KeyMsg:
		return c.handleKey(m, msg)
	}
	var cmds []tea.Cmd
	if cmd := c.spinner.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	c.transcript, cmd = c.transcript.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (c *Chat) handleKey(m tea.KeyMsg, raw tea.Msg) tea.Cmd {
	engine := c.ctx.Engine

	if c.sidebar {
		return c.handleSidebarKey(m)
	}

	switch m.String() {
	case "enter":
		text := strings.TrimSpace(c.input.Value())
		if text == "" {
			return nil
		}
		c.input.Reset()
		c.spinner.SetMessage("Thinking…")
		return tea.Batch(c.spinner.Start(), func() tea.Msg {
			// The engine owns the stream lifetime; this context only
			// bounds dialing, so Background is correct here.
			return chatOpMsg{err: engine.SendMessage(context.Background(), text)}
		}, c.pollCmd())
	case "esc":
		if c.snap.State != chat.StateIdle {
			engine.StopStreaming()
			return c.pollCmd()
		}
		engine.ClearError()
		c.refresh()
		return nil
	case "ctrl+l":
		c.sidebar = true
		return nil
	case "ctrl+n":
		engine.StartNew()
		c.refresh()
		return nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		c.transcript, cmd = c.transcript.Update(raw)
		return cmd
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(raw)
	return cmd
}

func (c *Chat) handleSidebarKey(m tea.KeyMsg) tea.Cmd {
	engine := c.ctx.Engine
	if c.confirm.Visible() {
		switch m.String() {
		case "left", "right", "tab", "h", "l":
			c.confirm.Toggle()
		case "enter":
			accepted := c.confirm.Accepted()
			c.confirm.Hide()
			if accepted && c.convCursor < len(c.snap.Conversations) {
				id := c.snap.Conversations[c.convCursor].ID
				return func() tea.Msg {
					ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
					defer cancel()
					return chatOpMsg{err: engine.DeleteConversation(ctx, id)}
				}
			}
		case "esc":
			c.confirm.Hide()
		}
		return nil
	}
	switch m.String() {
	case "esc", "ctrl+l":
		c.sidebar = false
	case "up", "k":
		if c.convCursor > 0 {
			c.convCursor--
		}
	case "down", "j":
		if c.convCursor < len(c.snap.Conversations)-1 {
			c.convCursor++
		}
	case "enter":
		if c.convCursor < len(c.snap.Conversations) {
			id := c.snap.Conversations[c.convCursor].ID
			c.sidebar = false
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
				defer cancel()
				return chatOpMsg{err: engine.SelectConversation(ctx, id)}
			}
		}
	case "d":
		if c.convCursor < len(c.snap.Conversations) {
			c.confirm.Show("Delete conversation",
				components.Truncate(c.snap.Conversations[c.convCursor].Title, 50))
		}
	}
	return nil
}

func (c *Chat) View(width, height int) string {
	theme := c.ctx.Theme
	if width != c.width || height != c.height {
		c.width, c.height = width, height
		c.layout()
	}
	if !c.ready {
		c.layout()
	}

	if c.sidebar {
		if c.confirm.Visible() {
			return c.confirm.Render(theme, width, height)
		}
		return c.renderSidebar(width, height)
	}

	header := theme.Subtitle.Render(c.conversationTitle())
	input := theme.InputContainer.Width(width - 2).Render(c.input.View())
	status := c.renderStatus()
	return lipgloss.JoinVertical(lipgloss.Left, header, c.transcript.View(), status, input)
}

func (c *Chat) layout() {
	inputHeight := 5 // bordered textarea
	transcriptHeight := c.height - inputHeight - 3
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}
	if !c.ready {
		c.transcript = viewport.New(c.width, transcriptHeight)
		c.ready = true
	} else {
		c.transcript.Width = c.width
		c.transcript.Height = transcriptHeight
	}
	c.input.SetWidth(c.width - 4)
	c.transcript.SetContent(c.renderTranscript())
	c.transcript.GotoBottom()
}

func (c *Chat) conversationTitle() string {
	if c.snap.Conversation.Title != "" {
		return c.snap.Conversation.Title
	}
	return "New conversation"
}

func (c *Chat) renderStatus() string {
	theme := c.ctx.Theme
	switch {
	case c.snap.Err != "":
		return theme.ErrorBox.Render(c.snap.Err + "  (esc dismisses)")
	case c.snap.ToolLabel != "":
		return theme.ToolStatus.Render(c.snap.ToolLabel)
	case c.spinner.Active():
		return c.spinner.View(theme)
	}
	return theme.Muted.Render("ctrl+n new · ctrl+l conversations")
}

func (c *Chat) renderTranscript() string {
	theme := c.ctx.Theme
	width := c.width - 4
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, msg := range c.snap.Conversation.Messages {
		b.WriteString(c.renderMessage(msg, width) + "\n")
	}
	// Live partial text renders as a provisional assistant bubble.
	if c.snap.Buffer != "" {
		b.WriteString(theme.AssistantBubble.Width(width).Render(
			components.RenderMarkdown(c.snap.Buffer, width-4)) + "\n")
	}
	if b.Len() == 0 {
		return theme.Muted.Render("\n  Start the conversation below.")
	}
	return b.String()
}

func (c *Chat) renderMessage(msg model.ChatMessage, width int) string {
	theme := c.ctx.Theme
	if msg.Role == model.RoleUser {
		bubble := theme.UserBubble.Width(width * 3 / 4).Render(msg.Content)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
	}
	body := components.RenderMarkdown(msg.Content, width-4)
	if msg.TokenCount != nil {
		body += "\n" + theme.Muted.Render(fmt.Sprintf("%d tokens", *msg.TokenCount))
	}
	return theme.AssistantBubble.Width(width).Render(body)
}

func (c *Chat) renderSidebar(width, height int) string {
	theme := c.ctx.Theme
	var b strings.Builder
	b.WriteString(theme.Title.Render("Conversations") + "\n\n")
	if len(c.snap.Conversations) == 0 {
		b.WriteString(theme.Muted.Render("No conversations yet."))
	}
	for i, meta := range c.snap.Conversations {
		line := fmt.Sprintf("%-40s %s",
			components.Truncate(meta.Title, 40),
			theme.Muted.Render(components.RelativeTime(meta.UpdatedAt)))
		if meta.ID == c.snap.Conversation.ID {
			line = theme.Info.Render("● ") + line
		} else {
			line = "  " + line
		}
		if i == c.convCursor {
			line = theme.SelectedRow.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + theme.Muted.Render("enter opens · d deletes · esc closes"))
	return b.String()
}
