// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// NOTES
// =============================================================================

// NoteInput is the create/update body for a note.
type NoteInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
	FolderID *int64 `json:"folder_id,omitempty"`
	IsPinned bool   `json:"is_pinned"`
}

// ListNotes returns notes, optionally filtered by folder or category.
func (c *Client) ListNotes(ctx context.Context, folderID, category string) ([]model.Note, error) {
	var out []model.Note
	err := c.Get(ctx, "/notes"+Query("folder_id", folderID, "category", category), &out)
	return out, err
}

// GetNote returns one note.
func (c *Client) GetNote(ctx context.Context, id int64) (*model.Note, error) {
	var out model.Note
	if err := c.Get(ctx, "/notes/"+itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateNote creates a note.
func (c *Client) CreateNote(ctx context.Context, in NoteInput) (*model.Note, error) {
	var out model.Note
	if err := c.Post(ctx, "/notes", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNote updates a note.
func (c *Client) UpdateNote(ctx context.Context, id int64, in NoteInput) (*model.Note, error) {
	var out model.Note
	if err := c.Put(ctx, "/notes/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/notes/"+itoa(id))
}

// ListNoteCategories returns the distinct note categories.
func (c *Client) ListNoteCategories(ctx context.Context) ([]string, error) {
	var out []string
	err := c.Get(ctx, "/notes/categories", &out)
	return out, err
}

// =============================================================================
// FOLDERS
// =============================================================================

// FolderInput is the create/update body for a folder.
type FolderInput struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// ListFolders returns all note folders.
func (c *Client) ListFolders(ctx context.Context) ([]model.Folder, error) {
	var out []model.Folder
	err := c.Get(ctx, "/folders", &out)
	return out, err
}

// CreateFolder creates a folder.
func (c *Client) CreateFolder(ctx context.Context, in FolderInput) (*model.Folder, error) {
	var out model.Folder
	if err := c.Post(ctx, "/folders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFolder renames a folder.
func (c *Client) UpdateFolder(ctx context.Context, id int64, in FolderInput) (*model.Folder, error) {
	var out model.Folder
	if err := c.Put(ctx, "/folders/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFolder removes a folder; contained notes become unfiled.
func (c *Client) DeleteFolder(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/folders/"+itoa(id))
}
