// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"strconv"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// FUEL
// =============================================================================

// FuelLogInput is the create body for a fill-up.
type FuelLogInput struct {
	VehicleID    int64   `json:"vehicle_id"`
	Mileage      int     `json:"mileage"`
	Gallons      float64 `json:"gallons"`
	PricePerUnit float64 `json:"price_per_unit"`
	IsFull       bool    `json:"is_full"`
	FilledAt     string  `json:"filled_at,omitempty"`
}

// ListFuelEntries returns fuel history for a vehicle.
func (c *Client) ListFuelEntries(ctx context.Context, vehicleID int64) ([]model.FuelLog, error) {
	var out []model.FuelLog
	err := c.Get(ctx, "/fuel/entries"+Query("vehicle_id", strconv.FormatInt(vehicleID, 10)), &out)
	return out, err
}

// GetFuelStats returns fuel statistics for a vehicle.
func (c *Client) GetFuelStats(ctx context.Context, vehicleID int64) (*model.FuelStats, error) {
	var out model.FuelStats
	if err := c.Get(ctx, "/fuel/stats"+Query("vehicle_id", strconv.FormatInt(vehicleID, 10)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFuelEntry records a fill-up.
func (c *Client) CreateFuelEntry(ctx context.Context, in FuelLogInput) (*model.FuelLog, error) {
	var out model.FuelLog
	if err := c.Post(ctx, "/fuel/entries", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFuelEntry removes a fill-up record.
func (c *Client) DeleteFuelEntry(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/fuel/entries/"+itoa(id))
}
