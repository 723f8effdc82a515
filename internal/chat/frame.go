// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat holds the AI conversation session engine. The stream
// reducer is a pure state transform over tagged frames so it can be
// unit-tested with literal frame slices, independent of the transport.
package chat

import "encoding/json"

// Frame is one tagged event of the chat reply stream. Unknown types are
// ignored; the frame set is open-ended.
type Frame struct {
	Type           string `json:"type"`
	Text           string `json:"text,omitempty"`
	Tool           string `json:"tool,omitempty"`
	ConversationID int64  `json:"conversation_id,omitempty"`
	Title          string `json:"title,omitempty"`
	TokenCount     *int   `json:"token_count,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Frame types.
const (
	FrameTextDelta   = "text_delta"
	FrameToolUse     = "tool_use"
	FrameToolResult  = "tool_result"
	FrameMessageStop = "message_stop"
	FrameError       = "error"
)

// DecodeFrame parses one SSE data payload. A decode failure returns
// ok=false and the frame is dropped.
func DecodeFrame(data json.RawMessage) (Frame, bool) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, false
	}
	return f, true
}

// StopInfo carries the server-final fields of a message_stop frame.
type StopInfo struct {
	ConversationID int64
	Title          string
	TokenCount     *int
}

// StreamState accumulates one reply stream. Zero value is ready to use.
type StreamState struct {
	Buffer    string
	ToolLabel string
	Err       string
	Stop      *StopInfo
}

// Terminal reports whether the stream has reached a final frame. Frames
// arriving after a terminal frame are dropped; in particular a
// message_stop after an error does not finalize the message.
func (s *StreamState) Terminal() bool {
	return s.Err != "" || s.Stop != nil
}

// Apply folds one frame into the stream state, in receipt order.
func (s *StreamState) Apply(f Frame) {
	if s.Terminal() {
		return
	}
	switch f.Type {
	case FrameTextDelta:
		s.Buffer += f.Text
	case FrameToolUse:
		s.ToolLabel = toolLabel(f.Tool)
	case FrameToolResult:
		s.ToolLabel = ""
	case FrameMessageStop:
		s.ToolLabel = ""
		s.Stop = &StopInfo{
			ConversationID: f.ConversationID,
			Title:          f.Title,
			TokenCount:     f.TokenCount,
		}
	case FrameError:
		s.Err = f.Error
	}
}

// toolLabels maps backend tool names to status labels.
var toolLabels = map[string]string{
	"search_notes":   "Searching notes…",
	"search_kb":      "Searching the knowledge base…",
	"get_weather":    "Checking the weather…",
	"vehicle_lookup": "Checking the garage…",
	"home_state":     "Checking device states…",
	"printer_status": "Checking the printer…",
	"list_tasks":     "Looking at the board…",
	"astro_lookup":   "Consulting astrometrics…",
}

func toolLabel(tool string) string {
	if label, ok := toolLabels[tool]; ok {
		return label
	}
	return "Using " + tool + "…"
}
