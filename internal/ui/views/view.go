// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package views implements the page views of the lifehub TUI. Each page
// is a Bubble Tea sub-model the shell routes messages to; pages fetch
// their own data through the shared API client and render with the
// shared theme.
package views

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lifehub-tui/internal/api"
	"github.com/jeranaias/lifehub-tui/internal/chat"
	"github.com/jeranaias/lifehub-tui/internal/config"
	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// requestTimeout bounds each page-level fetch.
const requestTimeout = 30 * time.Second

// Context carries the dependencies every page view shares.
type Context struct {
	Client *api.Client
	Theme  *styles.Theme
	Config *config.Config
	Engine *chat.Engine
}

// View is one routable page.
type View interface {
	// Title is the header label.
	Title() string
	// Init returns the initial data-fetch command; called when the
	// page first becomes visible.
	Init() tea.Cmd
	// Update handles a message, returning any follow-up command.
	Update(msg tea.Msg) tea.Cmd
	// View renders the page into the given content area.
	View(width, height int) string
}

// Hideable is implemented by pages that hold open streams; the shell
// calls Hide when the page loses visibility and Init when it returns.
type Hideable interface {
	Hide()
}

// InputCapturer is implemented by pages with focused text entry; while
// capturing, the shell suppresses bare-key navigation shortcuts.
type InputCapturer interface {
	CapturingInput() bool
}

// ErrMsg reports a failed page fetch. Cancelled requests are filtered
// before this is emitted.
type ErrMsg struct {
	Err error
}

// ToastMsg asks the shell to show a toast.
type ToastMsg struct {
	Message string
	IsError bool
}

// ConfigReloadedMsg carries a freshly reloaded config from the file
// watcher into the update loop, where the shell applies it.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// fetch wraps a page data loader into a tea.Cmd with the standard
// timeout and cancellation filtering.
func fetch(load func(ctx context.Context) (tea.Msg, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		msg, err := load(ctx)
		if err != nil {
			if api.IsCancelled(err) {
				return nil
			}
			return ErrMsg{Err: err}
		}
		return msg
	}
}
