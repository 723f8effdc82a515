// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// APOD
// =============================================================================

// GetAPOD returns the astronomy picture of the day, or of a specific
// date ("YYYY-MM-DD") when date is non-empty.
func (c *Client) GetAPOD(ctx context.Context, date string) (*model.APOD, error) {
	var out model.APOD
	if err := c.Get(ctx, "/astrometrics/apod"+Query("date", date), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRandomAPOD returns a random archive picture.
func (c *Client) GetRandomAPOD(ctx context.Context) (*model.APOD, error) {
	var out model.APOD
	if err := c.Get(ctx, "/astrometrics/apod/random", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAPODFavorites returns the favorited pictures.
func (c *Client) ListAPODFavorites(ctx context.Context) ([]model.APOD, error) {
	var out []model.APOD
	err := c.Get(ctx, "/astrometrics/apod/favorites", &out)
	return out, err
}

// FavoriteAPOD toggles a picture's favorite flag by date.
func (c *Client) FavoriteAPOD(ctx context.Context, date string, favorited bool) error {
	body := struct {
		Date        string `json:"date"`
		IsFavorited bool   `json:"is_favorited"`
	}{date, favorited}
	return c.Request(ctx, http.MethodPost, "/astrometrics/apod/favorites", body, nil)
}

// =============================================================================
// NEO / ISS / LAUNCHES
// =============================================================================

// ListNEOs returns this week's near-Earth-object close approaches.
func (c *Client) ListNEOs(ctx context.Context) ([]model.NEO, error) {
	var out []model.NEO
	err := c.Get(ctx, "/astrometrics/neos", &out)
	return out, err
}

// GetISSPosition returns the current station position.
func (c *Client) GetISSPosition(ctx context.Context) (*model.ISSPosition, error) {
	var out model.ISSPosition
	if err := c.Get(ctx, "/astrometrics/iss/position", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListISSCrew returns the people currently in orbit.
func (c *Client) ListISSCrew(ctx context.Context) ([]model.CrewMember, error) {
	var out []model.CrewMember
	err := c.Get(ctx, "/astrometrics/iss/crew", &out)
	return out, err
}

// ListISSPasses returns predicted visible passes for the configured
// observer location.
func (c *Client) ListISSPasses(ctx context.Context) ([]model.ISSPass, error) {
	var out []model.ISSPass
	err := c.Get(ctx, "/astrometrics/iss/passes", &out)
	return out, err
}

// GetISSGroundtrack returns the orbit trace samples.
func (c *Client) GetISSGroundtrack(ctx context.Context) ([]model.GroundtrackPoint, error) {
	var out []model.GroundtrackPoint
	err := c.Get(ctx, "/astrometrics/iss/groundtrack", &out)
	return out, err
}

// ListUpcomingLaunches returns upcoming orbital launches.
func (c *Client) ListUpcomingLaunches(ctx context.Context) ([]model.Launch, error) {
	var out []model.Launch
	err := c.Get(ctx, "/astrometrics/launches/upcoming", &out)
	return out, err
}

// ListPastLaunches returns recent past launches.
func (c *Client) ListPastLaunches(ctx context.Context) ([]model.Launch, error) {
	var out []model.Launch
	err := c.Get(ctx, "/astrometrics/launches/past", &out)
	return out, err
}

// GetNextLaunch returns the very next launch.
func (c *Client) GetNextLaunch(ctx context.Context) (*model.Launch, error) {
	var out model.Launch
	if err := c.Get(ctx, "/astrometrics/launches/next", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// =============================================================================
// SETTINGS / STATUS
// =============================================================================

// GetAstroSettings returns the observer location settings.
func (c *Client) GetAstroSettings(ctx context.Context) (*model.AstroSettings, error) {
	var out model.AstroSettings
	if err := c.Get(ctx, "/astrometrics/settings", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAstroSettings saves the observer location.
func (c *Client) UpdateAstroSettings(ctx context.Context, in model.AstroSettings) (*model.AstroSettings, error) {
	var out model.AstroSettings
	if err := c.Put(ctx, "/astrometrics/settings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAstroStatus reports upstream feed availability.
func (c *Client) GetAstroStatus(ctx context.Context) (*model.AstroStatus, error) {
	var out model.AstroStatus
	if err := c.Get(ctx, "/astrometrics/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
