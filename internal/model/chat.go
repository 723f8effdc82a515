// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// AI CHAT
// =============================================================================

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one message in a conversation. Client-created messages
// carry a generated id until the server assigns its own; messages are
// append-only within a session.
type ChatMessage struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	TokenCount *int      `json:"token_count,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUserMessage creates an optimistic user message with a generated id.
func NewUserMessage(content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewAssistantMessage creates a finalized assistant message.
func NewAssistantMessage(content string, tokenCount *int) ChatMessage {
	return ChatMessage{
		ID:         uuid.NewString(),
		Role:       RoleAssistant,
		Content:    content,
		TokenCount: tokenCount,
		CreatedAt:  time.Now(),
	}
}

// Conversation is a chat session. ID is zero until the server assigns one
// on the first message_stop.
type Conversation struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Messages  []ChatMessage `json:"messages,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// HasServerID reports whether the conversation exists server-side yet.
func (c *Conversation) HasServerID() bool {
	return c.ID != 0
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *ChatMessage {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// ConversationMeta is the list-view projection of a conversation.
type ConversationMeta struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
