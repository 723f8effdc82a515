// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamStateTextDeltas(t *testing.T) {
	var s StreamState
	s.Apply(Frame{Type: FrameTextDelta, Text: "hi"})
	s.Apply(Frame{Type: FrameTextDelta, Text: "!"})
	assert.Equal(t, "hi!", s.Buffer)
	assert.False(t, s.Terminal())
}

func TestStreamStateToolLabels(t *testing.T) {
	var s StreamState
	s.Apply(Frame{Type: FrameToolUse, Tool: "get_weather"})
	assert.Equal(t, "Checking the weather…", s.ToolLabel)

	s.Apply(Frame{Type: FrameToolUse, Tool: "frobnicate"})
	assert.Equal(t, "Using frobnicate…", s.ToolLabel)

	s.Apply(Frame{Type: FrameToolResult})
	assert.Empty(t, s.ToolLabel)
}

func TestStreamStateMessageStop(t *testing.T) {
	tokens := 12
	var s StreamState
	s.Apply(Frame{Type: FrameTextDelta, Text: "done"})
	s.Apply(Frame{Type: FrameToolUse, Tool: "search_notes"})
	s.Apply(Frame{Type: FrameMessageStop, ConversationID: 42, Title: "greeting", TokenCount: &tokens})

	require.True(t, s.Terminal())
	require.NotNil(t, s.Stop)
	assert.Equal(t, int64(42), s.Stop.ConversationID)
	assert.Equal(t, "greeting", s.Stop.Title)
	assert.Equal(t, 12, *s.Stop.TokenCount)
	assert.Empty(t, s.ToolLabel)
	assert.Equal(t, "done", s.Buffer)
}

func TestStreamStateErrorIsTerminal(t *testing.T) {
	var s StreamState
	s.Apply(Frame{Type: FrameTextDelta, Text: "partial"})
	s.Apply(Frame{Type: FrameError, Error: "model overloaded"})

	// A message_stop after an error is ignored.
	s.Apply(Frame{Type: FrameMessageStop, ConversationID: 9})
	s.Apply(Frame{Type: FrameTextDelta, Text: "more"})

	assert.True(t, s.Terminal())
	assert.Equal(t, "model overloaded", s.Err)
	assert.Nil(t, s.Stop)
	assert.Equal(t, "partial", s.Buffer)
}

func TestStreamStateIgnoresUnknownTypes(t *testing.T) {
	var s StreamState
	s.Apply(Frame{Type: "ping"})
	s.Apply(Frame{Type: FrameTextDelta, Text: "ok"})
	assert.Equal(t, "ok", s.Buffer)
}

func TestDecodeFrame(t *testing.T) {
	f, ok := DecodeFrame(json.RawMessage(`{"type":"text_delta","text":"hey"}`))
	require.True(t, ok)
	assert.Equal(t, FrameTextDelta, f.Type)
	assert.Equal(t, "hey", f.Text)

	_, ok = DecodeFrame(json.RawMessage(`{"type":`))
	assert.False(t, ok)
}
