// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// TREK
// =============================================================================

// TrekSearch performs a mixed search across episodes, ships, and
// characters.
func (c *Client) TrekSearch(ctx context.Context, query string) (*model.TrekSearchResult, error) {
	var out model.TrekSearchResult
	if err := c.Get(ctx, "/trek/search"+Query("q", query), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTrekSeries returns all series with their season/episode hierarchy.
func (c *Client) ListTrekSeries(ctx context.Context) ([]model.TrekSeries, error) {
	var out []model.TrekSeries
	err := c.Get(ctx, "/trek/series", &out)
	return out, err
}

// GetTrekEpisode returns one episode.
func (c *Client) GetTrekEpisode(ctx context.Context, id int64) (*model.TrekEpisode, error) {
	var out model.TrekEpisode
	if err := c.Get(ctx, "/trek/episodes/"+itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTrekShips returns the starship registry.
func (c *Client) ListTrekShips(ctx context.Context) ([]model.TrekShip, error) {
	var out []model.TrekShip
	err := c.Get(ctx, "/trek/ships", &out)
	return out, err
}

// ListTrekCharacters returns the character roster.
func (c *Client) ListTrekCharacters(ctx context.Context) ([]model.TrekCharacter, error) {
	var out []model.TrekCharacter
	err := c.Get(ctx, "/trek/characters", &out)
	return out, err
}
