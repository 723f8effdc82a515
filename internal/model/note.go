// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// NOTES / FOLDERS
// =============================================================================

// Note is a markdown note, optionally filed in a folder.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	FolderID  *int64    `json:"folder_id,omitempty"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Folder groups notes.
type Folder struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	NoteCount int    `json:"note_count,omitempty"`
}

// =============================================================================
// KNOWLEDGE BASE
// =============================================================================

// Article is a knowledge-base entry with revision history server-side.
type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArticleTemplate seeds new articles with a structure.
type ArticleTemplate struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Revision is one historical version of an article.
type Revision struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// KBStats summarizes the knowledge base.
type KBStats struct {
	TotalArticles  int `json:"total_articles"`
	TotalRevisions int `json:"total_revisions"`
	TotalTemplates int `json:"total_templates"`
}
