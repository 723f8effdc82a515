// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/jeranaias/lifehub-tui/internal/api"
	"github.com/jeranaias/lifehub-tui/internal/chat"
	"github.com/jeranaias/lifehub-tui/internal/config"
)

// HandleAsk sends one question and streams the reply to stdout.
func HandleAsk(args *Args) {
	if strings.TrimSpace(args.Query) == "" {
		fatal(fmt.Errorf("usage: lifehub ask \"question\""))
	}

	client := newClient(args)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	answer, _, err := streamOnce(ctx, client, api.ChatRequest{Message: args.Query}, args)
	if err != nil {
		fatal(err)
	}
	printAnswer(answer, args)
}

// streamOnce runs one chat round, echoing deltas as they arrive when the
// final render is plain, or spooling to a buffer for markdown output.
// Returns the full assistant reply and the conversation id the server
// assigned in the stop frame (zero if the stream ended early).
func streamOnce(ctx context.Context, client *api.Client, req api.ChatRequest, args *Args) (string, int64, error) {
	live := !renderMarkdown(args)
	var state chat.StreamState

	err := client.ChatStream(ctx, req, func(data json.RawMessage) {
		frame, ok := chat.DecodeFrame(data)
		if !ok {
			return
		}
		before := len(state.Buffer)
		state.Apply(frame)
		switch frame.Type {
		case chat.FrameTextDelta:
			if live {
				fmt.Print(state.Buffer[before:])
			}
		case chat.FrameToolUse:
			fmt.Fprintln(os.Stderr, "· "+state.ToolLabel)
		}
	})

	if live {
		fmt.Println()
	}
	if err != nil && !api.IsCancelled(err) {
		return "", 0, err
	}
	if state.Err != "" {
		return "", 0, fmt.Errorf("%s", state.Err)
	}
	var conversationID int64
	if state.Stop != nil {
		conversationID = state.Stop.ConversationID
	}
	return state.Buffer, conversationID, nil
}

// printAnswer renders the buffered reply; no-op for live plain output.
func printAnswer(answer string, args *Args) {
	if !renderMarkdown(args) {
		return
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || width > 100 {
		width = 100
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Println(answer)
		return
	}
	out, err := renderer.Render(answer)
	if err != nil {
		fmt.Println(answer)
		return
	}
	fmt.Print(out)
}

// renderMarkdown reports whether output should go through glamour:
// stdout is a terminal and --plain was not given.
func renderMarkdown(args *Args) bool {
	return !args.Plain && term.IsTerminal(int(os.Stdout.Fd()))
}

// newClient builds the API client from config plus CLI overrides.
func newClient(args *Args) *api.Client {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	url := cfg.ServerURL
	if args.ServerURL != "" {
		url = args.ServerURL
	}
	return api.NewClient(url)
}
