// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/jeranaias/lifehub-tui/internal/api"
	"github.com/jeranaias/lifehub-tui/internal/model"
)

// State is the engine's lifecycle position.
type State int

const (
	// StateIdle means no request is in flight.
	StateIdle State = iota
	// StateSending means the request was posted but no frame arrived yet.
	StateSending
	// StateStreaming means reply frames are arriving.
	StateStreaming
)

// String implements fmt.Stringer for status lines.
func (s State) String() string {
	switch s {
	case StateSending:
		return "sending"
	case StateStreaming:
		return "streaming"
	default:
		return "idle"
	}
}

// MetadataCache mirrors conversation metadata into local storage so the
// conversation list renders before the first fetch completes. All calls
// are best-effort; the server list remains authoritative.
type MetadataCache interface {
	UpsertConversation(meta model.ConversationMeta) error
	DeleteConversation(id int64) error
	ListConversations() ([]model.ConversationMeta, error)
	Prune(keep []model.ConversationMeta) error
}

// Engine drives a single active conversation against the chat API.
// It is safe for concurrent use: the streaming goroutine reduces frames
// under the same lock the render loop snapshots under.
type Engine struct {
	client *api.Client
	cache  MetadataCache

	mu            sync.Mutex
	state         State
	conv          model.Conversation
	conversations []model.ConversationMeta
	stream        StreamState
	lastErr       string
	cancel        context.CancelFunc
}

// NewEngine creates an engine. cache may be nil to disable the local
// metadata mirror.
func NewEngine(client *api.Client, cache MetadataCache) *Engine {
	e := &Engine{client: client, cache: cache}
	if cache != nil {
		if metas, err := cache.ListConversations(); err == nil {
			e.conversations = metas
		}
	}
	return e
}

// Snapshot is a render-safe copy of the engine's visible state.
type Snapshot struct {
	State         State
	Conversation  model.Conversation
	Conversations []model.ConversationMeta
	Buffer        string
	ToolLabel     string
	Err           string
}

// Snapshot returns a copy of everything a view needs to render.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	conv := e.conv
	conv.Messages = append([]model.ChatMessage(nil), e.conv.Messages...)
	return Snapshot{
		State:         e.state,
		Conversation:  conv,
		Conversations: append([]model.ConversationMeta(nil), e.conversations...),
		Buffer:        e.stream.Buffer,
		ToolLabel:     e.stream.ToolLabel,
		Err:           e.lastErr,
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ClearError discards the last error message.
func (e *Engine) ClearError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastErr = ""
}

// RefreshConversations fetches the server conversation list and mirrors
// it into the cache.
func (e *Engine) RefreshConversations(ctx context.Context) error {
	metas, err := e.client.ListConversations(ctx)
	if err != nil {
		return err
	}
	sort.SliceStable(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.After(metas[j].UpdatedAt)
	})
	e.mu.Lock()
	e.conversations = metas
	e.mu.Unlock()
	if e.cache != nil {
		for _, m := range metas {
			_ = e.cache.UpsertConversation(m)
		}
		// The server list is authoritative: drop cached conversations
		// deleted elsewhere so they do not resurface at startup.
		_ = e.cache.Prune(metas)
	}
	return nil
}

// SelectConversation loads an existing conversation as the active one.
// No-op while a request is in flight.
func (e *Engine) SelectConversation(ctx context.Context, id int64) error {
	if e.State() != StateIdle {
		return nil
	}
	conv, err := e.client.GetConversation(ctx, id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.conv = *conv
	e.stream = StreamState{}
	e.lastErr = ""
	return nil
}

// StartNew clears the active conversation; the next SendMessage creates
// one server-side.
func (e *Engine) StartNew() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateIdle {
		return
	}
	e.conv = model.Conversation{}
	e.stream = StreamState{}
	e.lastErr = ""
}

// SendMessage appends an optimistic user message, posts it, and blocks
// consuming the reply stream until it ends or StopStreaming is called.
// A no-op while a request is already in flight. Cancellation is not an
// error: the user message stays, the partial reply is discarded.
func (e *Engine) SendMessage(ctx context.Context, text string) error {
	e.mu.Lock()
	if e.state != StateIdle {
		e.mu.Unlock()
		return nil
	}
	e.state = StateSending
	e.stream = StreamState{}
	e.lastErr = ""
	e.conv.Messages = append(e.conv.Messages, model.NewUserMessage(text))
	req := api.ChatRequest{ConversationID: e.conv.ID, Message: text}

	sctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.mu.Unlock()
	defer cancel()

	err := e.client.ChatStream(sctx, req, e.reduce)

	e.mu.Lock()
	e.cancel = nil
	e.state = StateIdle
	finalized := e.finalizeLocked(err)
	e.mu.Unlock()

	if finalized {
		// Server truth for titles and ordering.
		_ = e.RefreshConversations(ctx)
	}
	if api.IsCancelled(err) {
		return nil
	}
	return err
}

// StopStreaming aborts the in-flight request, if any.
func (e *Engine) StopStreaming() {
	e.mu.Lock()
	cancel := e.cancel
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// DeleteConversation removes a conversation server-side and patches the
// local list; the active conversation resets if it was the one deleted.
func (e *Engine) DeleteConversation(ctx context.Context, id int64) error {
	if err := e.client.DeleteConversation(ctx, id); err != nil {
		return err
	}
	e.mu.Lock()
	e.conversations = removeMeta(e.conversations, id)
	if e.conv.ID == id {
		e.conv = model.Conversation{}
		e.stream = StreamState{}
	}
	e.mu.Unlock()
	if e.cache != nil {
		_ = e.cache.DeleteConversation(id)
	}
	return nil
}

// RenameConversation retitles a conversation server-side and patches
// the local list and active conversation.
func (e *Engine) RenameConversation(ctx context.Context, id int64, title string) error {
	if err := e.client.RenameConversation(ctx, id, title); err != nil {
		return err
	}
	e.mu.Lock()
	for i := range e.conversations {
		if e.conversations[i].ID == id {
			e.conversations[i].Title = title
			if e.cache != nil {
				_ = e.cache.UpsertConversation(e.conversations[i])
			}
		}
	}
	if e.conv.ID == id {
		e.conv.Title = title
	}
	e.mu.Unlock()
	return nil
}

// reduce folds one decoded SSE payload into the stream state.
func (e *Engine) reduce(data json.RawMessage) {
	f, ok := DecodeFrame(data)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateSending {
		e.state = StateStreaming
	}
	e.stream.Apply(f)
}

// finalizeLocked settles the stream after the request returns. Called
// with the lock held. Reports whether a message_stop landed.
func (e *Engine) finalizeLocked(err error) bool {
	defer func() { e.stream = StreamState{} }()

	if e.stream.Err != "" {
		e.lastErr = e.stream.Err
		return false
	}
	if api.IsCancelled(err) {
		// Keep the user message, drop the partial reply, no error.
		return false
	}
	if err != nil {
		e.lastErr = err.Error()
		return false
	}
	stop := e.stream.Stop
	if stop == nil {
		return false
	}

	e.conv.Messages = append(e.conv.Messages,
		model.NewAssistantMessage(e.stream.Buffer, stop.TokenCount))
	if !e.conv.HasServerID() && stop.ConversationID != 0 {
		e.conv.ID = stop.ConversationID
	}
	if stop.Title != "" {
		e.conv.Title = stop.Title
	}
	return true
}

func removeMeta(metas []model.ConversationMeta, id int64) []model.ConversationMeta {
	out := metas[:0]
	for _, m := range metas {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
