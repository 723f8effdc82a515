// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the local metadata cache for lifehub.
//
// The cache mirrors server-side conversation metadata into a SQLite
// database under ~/.lifehub so the chat page can render its sidebar
// before the first network round-trip. The server list is always
// authoritative; the cache is rewritten from it on every refresh.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// ErrClosed is returned by operations on a closed cache.
var ErrClosed = errors.New("cache is closed")

// SchemaVersion tracks the database schema for migrations.
const SchemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS conversations (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    message_count INTEGER NOT NULL DEFAULT 0,
    updated_at INTEGER NOT NULL -- Unix timestamp
);

CREATE INDEX IF NOT EXISTS idx_conversations_updated_at
    ON conversations(updated_at DESC);
`

// Cache is a SQLite-backed conversation metadata mirror. Safe for
// concurrent use.
type Cache struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	if _, err := db.Exec(
		`INSERT OR REPLACE INTO metadata (key, value) VALUES ('schema_version', ?)`,
		fmt.Sprint(SchemaVersion),
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to record schema version: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the database handle. Safe to call twice.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.db.Close()
}

// UpsertConversation inserts or replaces one conversation's metadata.
func (c *Cache) UpsertConversation(meta model.ConversationMeta) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	_, err := c.db.Exec(
		`INSERT INTO conversations (id, title, message_count, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     title = excluded.title,
		     message_count = excluded.message_count,
		     updated_at = excluded.updated_at`,
		meta.ID, meta.Title, meta.MessageCount, meta.UpdatedAt.Unix(),
	)
	return err
}

// DeleteConversation removes one conversation from the mirror.
func (c *Cache) DeleteConversation(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	_, err := c.db.Exec(`DELETE FROM conversations WHERE id = ?`, id)
	return err
}

// ListConversations returns cached metadata, most recent first.
func (c *Cache) ListConversations() ([]model.ConversationMeta, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	rows, err := c.db.Query(
		`SELECT id, title, message_count, updated_at
		 FROM conversations ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ConversationMeta
	for rows.Next() {
		var meta model.ConversationMeta
		var updated int64
		if err := rows.Scan(&meta.ID, &meta.Title, &meta.MessageCount, &updated); err != nil {
			return nil, err
		}
		meta.UpdatedAt = time.Unix(updated, 0).UTC()
		out = append(out, meta)
	}
	return out, rows.Err()
}

// Prune drops conversations not listed in keep, after a refresh from
// the authoritative server list.
func (c *Cache) Prune(keep []model.ConversationMeta) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	ids := make(map[int64]bool, len(keep))
	for _, m := range keep {
		ids[m.ID] = true
	}

	rows, err := c.db.Query(`SELECT id FROM conversations`)
	if err != nil {
		return err
	}
	var stale []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		if !ids[id] {
			stale = append(stale, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range stale {
		if _, err := c.db.Exec(`DELETE FROM conversations WHERE id = ?`, id); err != nil {
			return err
		}
	}
	return nil
}
