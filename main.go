// lifehub TUI - one terminal for the garage, the house, and everything else.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jeranaias/lifehub-tui/internal/api"
	"github.com/jeranaias/lifehub-tui/internal/chat"
	"github.com/jeranaias/lifehub-tui/internal/cli"
	"github.com/jeranaias/lifehub-tui/internal/config"
	"github.com/jeranaias/lifehub-tui/internal/storage"
	"github.com/jeranaias/lifehub-tui/internal/ui"
	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
	"github.com/jeranaias/lifehub-tui/internal/ui/views"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

func runTUI(args *cli.Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if args.ServerURL != "" {
		cfg.ServerURL = args.ServerURL
	}
	if args.Verbose {
		cfg.Log.Verbose = true
	}
	config.SetGlobal(cfg)
	setupLogging(cfg)

	theme := styles.NewTheme(cfg.UI.Theme)
	client := api.NewClient(cfg.ServerURL)

	var cache chat.MetadataCache
	if cfg.Chat.CacheEnabled {
		if path, err := config.CachePath(); err == nil {
			if store, err := storage.Open(path); err == nil {
				defer store.Close()
				cache = store
			} else {
				log.Printf("chat cache unavailable: %v", err)
			}
		}
	}

	ctx := views.Context{
		Client: client,
		Theme:  theme,
		Config: cfg,
		Engine: chat.NewEngine(client, cache),
	}
	program := ui.NewProgram(ctx)

	// Hot-reload config edits; the theme follows without a restart. The
	// reload is delivered as a message so the shell applies it on the UI
	// goroutine rather than mutating shared state from the watcher.
	stopWatch, err := config.Watch(context.Background(), func(next *config.Config) {
		program.Send(views.ConfigReloadedMsg{Config: next})
	})
	if err == nil {
		defer stopWatch()
	}

	if err := ui.Run(program); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setupLogging routes the standard logger to the log file; inside the
// alternate screen, stderr writes would corrupt the display.
func setupLogging(cfg *config.Config) {
	path, err := cfg.LogPath()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
	if cfg.Log.Verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}
