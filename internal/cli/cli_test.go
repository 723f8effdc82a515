// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/lifehub-tui/internal/config"
)

func parseArgs(t *testing.T, argv ...string) (Command, *Args) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"lifehub"}, argv...)
	defer func() { os.Args = orig }()
	return Parse()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, args := parseArgs(t)
	assert.Equal(t, CmdTUI, cmd)
	assert.Empty(t, args.ServerURL)
}

func TestParseAskJoinsQuery(t *testing.T) {
	cmd, args := parseArgs(t, "ask", "when", "is", "the", "oil", "change?")
	assert.Equal(t, CmdAsk, cmd)
	assert.Equal(t, "when is the oil change?", args.Query)
}

func TestParseGlobalFlagsAnyPosition(t *testing.T) {
	cmd, args := parseArgs(t, "status", "--server", "http://nas:8087/api", "-v")
	assert.Equal(t, CmdStatus, cmd)
	assert.Equal(t, "http://nas:8087/api", args.ServerURL)
	assert.True(t, args.Verbose)
}

func TestParseConfigSet(t *testing.T) {
	cmd, args := parseArgs(t, "config", "set", "ui.theme", "lcars")
	assert.Equal(t, CmdConfig, cmd)
	assert.Equal(t, "set", args.Subcommand)
	assert.Equal(t, "ui.theme", args.ConfigKey)
	assert.Equal(t, "lcars", args.ConfigVal)
}

func TestParseStatusAlias(t *testing.T) {
	cmd, _ := parseArgs(t, "s")
	assert.Equal(t, CmdStatus, cmd)
}

func TestConfigKeyRoundTrip(t *testing.T) {
	cfg := config.Default()
	assert.NoError(t, setKey(cfg, "ui.theme", "glass"))
	got, err := getKey(cfg, "ui.theme")
	assert.NoError(t, err)
	assert.Equal(t, "glass", got)

	assert.Error(t, setKey(cfg, "ui.theme", "neon"))
	assert.Error(t, setKey(cfg, "nope", "x"))
	_, err = getKey(cfg, "nope")
	assert.Error(t, err)
}
