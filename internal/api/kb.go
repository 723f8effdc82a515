// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// KNOWLEDGE BASE
// =============================================================================

// ArticleInput is the create/update body for a KB article.
type ArticleInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// ListArticles returns KB articles, optionally filtered by category.
func (c *Client) ListArticles(ctx context.Context, category string) ([]model.Article, error) {
	var out []model.Article
	err := c.Get(ctx, "/kb/articles"+Query("category", category), &out)
	return out, err
}

// GetArticle returns one article.
func (c *Client) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	var out model.Article
	if err := c.Get(ctx, "/kb/articles/"+itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateArticle creates an article.
func (c *Client) CreateArticle(ctx context.Context, in ArticleInput) (*model.Article, error) {
	var out model.Article
	if err := c.Post(ctx, "/kb/articles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateArticle updates an article, creating a new revision server-side.
func (c *Client) UpdateArticle(ctx context.Context, id int64, in ArticleInput) (*model.Article, error) {
	var out model.Article
	if err := c.Put(ctx, "/kb/articles/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteArticle removes an article and its revisions.
func (c *Client) DeleteArticle(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/kb/articles/"+itoa(id))
}

// ListTemplates returns the article templates.
func (c *Client) ListTemplates(ctx context.Context) ([]model.ArticleTemplate, error) {
	var out []model.ArticleTemplate
	err := c.Get(ctx, "/kb/templates", &out)
	return out, err
}

// ListRevisions returns an article's revision history.
func (c *Client) ListRevisions(ctx context.Context, articleID int64) ([]model.Revision, error) {
	var out []model.Revision
	err := c.Get(ctx, "/kb/articles/"+itoa(articleID)+"/revisions", &out)
	return out, err
}

// GetRevision returns one historical revision.
func (c *Client) GetRevision(ctx context.Context, articleID, revisionID int64) (*model.Revision, error) {
	var out model.Revision
	if err := c.Get(ctx, "/kb/articles/"+itoa(articleID)+"/revisions/"+itoa(revisionID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RestoreRevision makes a historical revision current.
func (c *Client) RestoreRevision(ctx context.Context, articleID, revisionID int64) (*model.Article, error) {
	var out model.Article
	path := "/kb/articles/" + itoa(articleID) + "/revisions/" + itoa(revisionID) + "/restore"
	if err := c.Request(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetKBStats returns knowledge-base totals.
func (c *Client) GetKBStats(ctx context.Context) (*model.KBStats, error) {
	var out model.KBStats
	if err := c.Get(ctx, "/kb/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
