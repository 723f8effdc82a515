// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lifehub-tui/internal/api"
	"github.com/jeranaias/lifehub-tui/internal/model"
)

// chatServer serves POST /ai/chat with scripted SSE frames and a
// minimal conversation list for the post-stop refresh.
func chatServer(t *testing.T, frames []string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ai/chat", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fl := w.(http.Flusher)
		for _, f := range frames {
			fmt.Fprintf(w, "data: %s\n\n", f)
			fl.Flush()
		}
	})
	mux.HandleFunc("/ai/conversations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":42,"title":"greeting","updated_at":"2026-08-01T00:00:00Z"}]`)
	})
	return httptest.NewServer(mux)
}

func TestSendMessageRoundTrip(t *testing.T) {
	srv := chatServer(t, []string{
		`{"type":"text_delta","text":"hi"}`,
		`{"type":"text_delta","text":"!"}`,
		`{"type":"message_stop","conversation_id":42,"title":"greeting"}`,
	})
	defer srv.Close()

	e := NewEngine(api.NewClient(srv.URL), nil)
	require.NoError(t, e.SendMessage(context.Background(), "hello"))

	snap := e.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, int64(42), snap.Conversation.ID)
	assert.Equal(t, "greeting", snap.Conversation.Title)
	require.Len(t, snap.Conversation.Messages, 2)
	assert.Equal(t, model.RoleUser, snap.Conversation.Messages[0].Role)
	assert.Equal(t, "hello", snap.Conversation.Messages[0].Content)
	assert.Equal(t, model.RoleAssistant, snap.Conversation.Messages[1].Role)
	assert.Equal(t, "hi!", snap.Conversation.Messages[1].Content)
	assert.Empty(t, snap.Err)
	assert.Empty(t, snap.Buffer)

	// The post-stop refresh picked up the server list.
	require.Len(t, snap.Conversations, 1)
	assert.Equal(t, int64(42), snap.Conversations[0].ID)
}

func TestSendMessageReusesAdoptedID(t *testing.T) {
	var gotConvID int64
	mux := http.NewServeMux()
	mux.HandleFunc("/ai/chat", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ConversationID int64 `json:"conversation_id"`
		}
		_ = jsonDecode(r, &req)
		gotConvID = req.ConversationID
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"type\":\"message_stop\",\"conversation_id\":42}\n\n")
	})
	mux.HandleFunc("/ai/conversations", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	e := NewEngine(api.NewClient(srv.URL), nil)
	require.NoError(t, e.SendMessage(context.Background(), "first"))
	assert.Equal(t, int64(0), gotConvID)

	require.NoError(t, e.SendMessage(context.Background(), "second"))
	assert.Equal(t, int64(42), gotConvID)
	assert.Equal(t, int64(42), e.Snapshot().Conversation.ID)
}

func TestStopStreamingKeepsUserMessageWithoutError(t *testing.T) {
	firstDelta := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/ai/chat", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"type\":\"text_delta\",\"text\":\"hi\"}\n\n")
		w.(http.Flusher).Flush()
		close(firstDelta)
		<-r.Context().Done()
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	e := NewEngine(api.NewClient(srv.URL), nil)
	done := make(chan error, 1)
	go func() { done <- e.SendMessage(context.Background(), "hello") }()

	select {
	case <-firstDelta:
	case <-time.After(5 * time.Second):
		t.Fatal("no delta arrived")
	}
	e.StopStreaming()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("send did not return after cancel")
	}

	snap := e.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	require.Len(t, snap.Conversation.Messages, 1)
	assert.Equal(t, model.RoleUser, snap.Conversation.Messages[0].Role)
	assert.Empty(t, snap.Err)
	assert.Empty(t, snap.Buffer)
}

func TestSendMessageNoOpWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/ai/chat", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"type\":\"text_delta\",\"text\":\"x\"}\n\n")
		w.(http.Flusher).Flush()
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		fmt.Fprint(w, "data: {\"type\":\"message_stop\",\"conversation_id\":1}\n\n")
	})
	mux.HandleFunc("/ai/conversations", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	e := NewEngine(api.NewClient(srv.URL), nil)
	done := make(chan error, 1)
	go func() { done <- e.SendMessage(context.Background(), "first") }()
	<-started

	// Second send while streaming is a no-op.
	require.NoError(t, e.SendMessage(context.Background(), "second"))
	assert.Len(t, e.Snapshot().Conversation.Messages, 1)

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, e.Snapshot().Conversation.Messages, 2)
}

func TestErrorFrameSurfacesAndDropsStop(t *testing.T) {
	srv := chatServer(t, []string{
		`{"type":"text_delta","text":"partial"}`,
		`{"type":"error","error":"model overloaded"}`,
		`{"type":"message_stop","conversation_id":9}`,
	})
	defer srv.Close()

	e := NewEngine(api.NewClient(srv.URL), nil)
	require.NoError(t, e.SendMessage(context.Background(), "hello"))

	snap := e.Snapshot()
	assert.Equal(t, "model overloaded", snap.Err)
	require.Len(t, snap.Conversation.Messages, 1)
	assert.Equal(t, int64(0), snap.Conversation.ID)
}

func TestDeleteConversationResetsActive(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ai/conversations/7", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	e := NewEngine(api.NewClient(srv.URL), nil)
	e.mu.Lock()
	e.conv = model.Conversation{ID: 7, Title: "doomed"}
	e.conversations = []model.ConversationMeta{{ID: 7, Title: "doomed"}, {ID: 8}}
	e.mu.Unlock()

	require.NoError(t, e.DeleteConversation(context.Background(), 7))
	snap := e.Snapshot()
	assert.Equal(t, int64(0), snap.Conversation.ID)
	require.Len(t, snap.Conversations, 1)
	assert.Equal(t, int64(8), snap.Conversations[0].ID)
}

// memCache is an in-memory MetadataCache for engine tests.
type memCache struct {
	metas  map[int64]model.ConversationMeta
	pruned []model.ConversationMeta
}

func newMemCache() *memCache {
	return &memCache{metas: make(map[int64]model.ConversationMeta)}
}

func (m *memCache) UpsertConversation(meta model.ConversationMeta) error {
	m.metas[meta.ID] = meta
	return nil
}

func (m *memCache) DeleteConversation(id int64) error {
	delete(m.metas, id)
	return nil
}

func (m *memCache) ListConversations() ([]model.ConversationMeta, error) {
	out := make([]model.ConversationMeta, 0, len(m.metas))
	for _, meta := range m.metas {
		out = append(out, meta)
	}
	return out, nil
}

func (m *memCache) Prune(keep []model.ConversationMeta) error {
	m.pruned = keep
	ids := make(map[int64]bool, len(keep))
	for _, meta := range keep {
		ids[meta.ID] = true
	}
	for id := range m.metas {
		if !ids[id] {
			delete(m.metas, id)
		}
	}
	return nil
}

func TestRefreshConversationsPrunesCache(t *testing.T) {
	srv := chatServer(t, nil)
	defer srv.Close()

	cache := newMemCache()
	// A conversation deleted server-side still lingers locally.
	cache.metas[99] = model.ConversationMeta{ID: 99, Title: "stale"}

	e := NewEngine(api.NewClient(srv.URL), cache)
	require.NoError(t, e.RefreshConversations(context.Background()))

	require.NotNil(t, cache.pruned)
	assert.Contains(t, cache.metas, int64(42))
	assert.NotContains(t, cache.metas, int64(99))
}

func jsonDecode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
