// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func meta(id int64, title string, updated time.Time) model.ConversationMeta {
	return model.ConversationMeta{ID: id, Title: title, MessageCount: 2, UpdatedAt: updated}
}

func TestUpsertAndList(t *testing.T) {
	c := openTestCache(t)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, c.UpsertConversation(meta(1, "older", base)))
	require.NoError(t, c.UpsertConversation(meta(2, "newer", base.Add(time.Hour))))

	got, err := c.ListConversations()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "newer", got[0].Title)
	assert.Equal(t, base.Add(time.Hour), got[0].UpdatedAt)
}

func TestUpsertReplaces(t *testing.T) {
	c := openTestCache(t)
	now := time.Now().Truncate(time.Second).UTC()

	require.NoError(t, c.UpsertConversation(meta(1, "draft", now)))
	require.NoError(t, c.UpsertConversation(meta(1, "renamed", now.Add(time.Minute))))

	got, err := c.ListConversations()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "renamed", got[0].Title)
}

func TestDeleteConversation(t *testing.T) {
	c := openTestCache(t)
	now := time.Now().UTC()
	require.NoError(t, c.UpsertConversation(meta(1, "doomed", now)))
	require.NoError(t, c.DeleteConversation(1))

	got, err := c.ListConversations()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPruneDropsStaleEntries(t *testing.T) {
	c := openTestCache(t)
	now := time.Now().UTC()
	require.NoError(t, c.UpsertConversation(meta(1, "keep", now)))
	require.NoError(t, c.UpsertConversation(meta(2, "stale", now)))

	require.NoError(t, c.Prune([]model.ConversationMeta{{ID: 1}}))

	got, err := c.ListConversations()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestClosedCache(t *testing.T) {
	c := openTestCache(t)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	assert.ErrorIs(t, c.UpsertConversation(meta(1, "x", time.Now())), ErrClosed)
	_, err := c.ListConversations()
	assert.ErrorIs(t, err, ErrClosed)
}
