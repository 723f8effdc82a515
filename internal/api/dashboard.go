// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"strconv"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// DASHBOARD
// =============================================================================

// GetWeather returns the dashboard weather card.
func (c *Client) GetWeather(ctx context.Context) (*model.Weather, error) {
	var out model.Weather
	if err := c.Get(ctx, "/dashboard/weather", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDashboardSummary returns the landing-page badge summary. A non-zero
// vehicleID selects which vehicle's maintenance card is included.
func (c *Client) GetDashboardSummary(ctx context.Context, vehicleID int64) (*model.DashboardSummary, error) {
	q := ""
	if vehicleID != 0 {
		q = Query("vehicle_id", strconv.FormatInt(vehicleID, 10))
	}
	var out model.DashboardSummary
	if err := c.Get(ctx, "/dashboard/summary"+q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
