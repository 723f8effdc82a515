// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/lifehub-tui/internal/api"
	"github.com/jeranaias/lifehub-tui/internal/config"
)

// historyFileName stores REPL input history under the config dir.
const historyFileName = "chat_history"

// HandleChat runs the line-based assistant REPL. The conversation id
// adopted from the first reply keeps the whole session in one thread.
func HandleChat(args *Args) {
	client := newClient(args)

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	historyPath := loadHistory(line)
	defer func() {
		saveHistory(line, historyPath)
		line.Close()
	}()

	fmt.Println("Life Hub assistant. /new starts over, /quit exits.")

	var conversationID int64
	for {
		input, err := line.Prompt("lifehub> ")
		if err != nil {
			// Ctrl+C or EOF ends the session.
			fmt.Println()
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case "/quit", "/exit", "/q":
			return
		case "/new":
			conversationID = 0
			fmt.Println("Started a new conversation.")
			continue
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		req := api.ChatRequest{ConversationID: conversationID, Message: input}
		answer, adopted, err := streamOnce(ctx, client, req, args)
		stop()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		if adopted != 0 {
			conversationID = adopted
		}
		printAnswer(answer, args)
	}
}

func loadHistory(line *liner.State) string {
	dir, err := config.ConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, historyFileName)
	if f, err := os.Open(path); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	return path
}

func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}
