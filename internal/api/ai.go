// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// AI CHAT
// =============================================================================

// ChatRequest is the body of POST /ai/chat. ConversationID is zero for a
// new conversation; the server assigns one and reports it in the
// message_stop frame.
type ChatRequest struct {
	ConversationID int64  `json:"conversation_id,omitempty"`
	Message        string `json:"message"`
}

// ListConversations returns conversation metadata, newest first.
func (c *Client) ListConversations(ctx context.Context) ([]model.ConversationMeta, error) {
	var out []model.ConversationMeta
	err := c.Get(ctx, "/ai/conversations", &out)
	return out, err
}

// GetConversation returns a conversation with its full message history.
func (c *Client) GetConversation(ctx context.Context, id int64) (*model.Conversation, error) {
	var out model.Conversation
	if err := c.Get(ctx, "/ai/conversations/"+itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RenameConversation updates a conversation title.
func (c *Client) RenameConversation(ctx context.Context, id int64, title string) error {
	body := struct {
		Title string `json:"title"`
	}{title}
	return c.Put(ctx, "/ai/conversations/"+itoa(id), body, nil)
}

// DeleteConversation removes a conversation and its messages.
func (c *Client) DeleteConversation(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/ai/conversations/"+itoa(id))
}

// ChatStream POSTs a message and consumes the SSE reply stream, invoking
// onFrame per decodable frame until the stream ends or ctx is cancelled.
// Cancellation surfaces as a KindCancelled error the caller must not
// present as a failure.
func (c *Client) ChatStream(ctx context.Context, req ChatRequest, onFrame func(data json.RawMessage)) error {
	return c.PostStream(ctx, "/ai/chat", req, onFrame)
}
