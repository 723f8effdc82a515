// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-TUI entry points: one-shot questions,
// a line-based chat REPL, status, and config management.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command is the selected CLI command.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	Query      string
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	ServerURL  string
	Verbose    bool
	Plain      bool // disable markdown rendering even on a TTY
	Raw        []string
}

const usageText = `lifehub - personal dashboard for your terminal

Life Hub puts your garage, projects, notes, smart home, and an AI
assistant behind one backend and one terminal UI.

Usage:
  lifehub                    Start the TUI (default)
  lifehub ask "question"     Ask the assistant one question
  lifehub chat               Line-based assistant chat
  lifehub status, s          Check backend connectivity
  lifehub config [show|get|set]
                             Inspect or change configuration
  lifehub version            Print version
  lifehub help               Show this help

Flags:
  --server URL               Override the backend URL for this run
  --plain                    Plain text output (no markdown rendering)
  -v, --verbose              Verbose output

Examples:
  lifehub ask "when is the truck due for an oil change?"
  lifehub config set ui.theme lcars
  LIFEHUB_SERVER_URL=http://nas:8087/api lifehub status
`

// Parse reads os.Args into a command and its arguments.
func Parse() (Command, *Args) {
	args := &Args{}
	rest := make([]string, 0, len(os.Args))

	// Pull out global flags first so they work in any position.
	argv := os.Args[1:]
	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "--server":
			if i+1 < len(argv) {
				i++
				args.ServerURL = argv[i]
			}
		case "--plain":
			args.Plain = true
		case "-v", "--verbose":
			args.Verbose = true
		default:
			rest = append(rest, argv[i])
		}
	}
	args.Raw = rest

	if len(rest) == 0 {
		return CmdTUI, args
	}

	switch rest[0] {
	case "ask":
		args.Query = strings.Join(rest[1:], " ")
		return CmdAsk, args
	case "chat":
		return CmdChat, args
	case "status", "s":
		return CmdStatus, args
	case "config":
		if len(rest) > 1 {
			args.Subcommand = rest[1]
		}
		if len(rest) > 2 {
			args.ConfigKey = rest[2]
		}
		if len(rest) > 3 {
			args.ConfigVal = strings.Join(rest[3:], " ")
		}
		return CmdConfig, args
	case "version", "--version", "-V":
		return CmdVersion, args
	case "help", "--help", "-h":
		return CmdHelp, args
	}

	fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", rest[0], usageText)
	os.Exit(2)
	return CmdHelp, args
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(usageText)
}

// HandleVersion prints version details.
func HandleVersion() {
	fmt.Printf("lifehub %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// fatal prints an error and exits non-zero.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
