// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// VEHICLES
// =============================================================================

// VehicleInput is the create/update body for a vehicle.
type VehicleInput struct {
	Year           int    `json:"year"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	Trim           string `json:"trim,omitempty"`
	CurrentMileage int    `json:"current_mileage"`
	IsPrimary      bool   `json:"is_primary"`
}

// ListVehicles returns all vehicles.
func (c *Client) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var out []model.Vehicle
	err := c.Get(ctx, "/vehicles", &out)
	return out, err
}

// GetVehicle returns one vehicle with its related collections.
func (c *Client) GetVehicle(ctx context.Context, id int64) (*model.Vehicle, error) {
	var out model.Vehicle
	if err := c.Get(ctx, "/vehicles/"+itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateVehicle creates a vehicle.
func (c *Client) CreateVehicle(ctx context.Context, in VehicleInput) (*model.Vehicle, error) {
	var out model.Vehicle
	if err := c.Post(ctx, "/vehicles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateVehicle updates a vehicle.
func (c *Client) UpdateVehicle(ctx context.Context, id int64, in VehicleInput) (*model.Vehicle, error) {
	var out model.Vehicle
	if err := c.Put(ctx, "/vehicles/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVehicle deletes a vehicle and its history.
func (c *Client) DeleteVehicle(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/vehicles/"+itoa(id))
}

// =============================================================================
// MAINTENANCE LOGS
// =============================================================================

// MaintenanceLogInput is the create/update body for a service record.
type MaintenanceLogInput struct {
	ItemID      *int64  `json:"item_id,omitempty"`
	Description string  `json:"description"`
	Mileage     int     `json:"mileage"`
	Cost        float64 `json:"cost,omitempty"`
	Shop        string  `json:"shop,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	ServicedAt  string  `json:"serviced_at"`
}

// ListMaintenanceLogs returns a vehicle's service history.
func (c *Client) ListMaintenanceLogs(ctx context.Context, vehicleID int64) ([]model.MaintenanceLog, error) {
	var out []model.MaintenanceLog
	err := c.Get(ctx, "/vehicles/"+itoa(vehicleID)+"/maintenance-logs", &out)
	return out, err
}

// CreateMaintenanceLog records a service.
func (c *Client) CreateMaintenanceLog(ctx context.Context, vehicleID int64, in MaintenanceLogInput) (*model.MaintenanceLog, error) {
	var out model.MaintenanceLog
	if err := c.Post(ctx, "/vehicles/"+itoa(vehicleID)+"/maintenance-logs", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMaintenanceLog edits a service record.
func (c *Client) UpdateMaintenanceLog(ctx context.Context, vehicleID, logID int64, in MaintenanceLogInput) (*model.MaintenanceLog, error) {
	var out model.MaintenanceLog
	if err := c.Put(ctx, "/vehicles/"+itoa(vehicleID)+"/maintenance-logs/"+itoa(logID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMaintenanceLog removes a service record.
func (c *Client) DeleteMaintenanceLog(ctx context.Context, vehicleID, logID int64) error {
	return c.Delete(ctx, "/vehicles/"+itoa(vehicleID)+"/maintenance-logs/"+itoa(logID))
}

// =============================================================================
// MAINTENANCE INTERVALS
// =============================================================================

// IntervalInput is the create/update body for a maintenance interval.
type IntervalInput struct {
	ItemID                 int64               `json:"item_id"`
	MilesInterval          *int                `json:"miles_interval"`
	MonthsInterval         *int                `json:"months_interval"`
	ConditionType          model.ConditionType `json:"condition_type"`
	NotifyMilesThresholds  []int               `json:"notify_miles_thresholds,omitempty"`
	NotifyMonthsThresholds []int               `json:"notify_months_thresholds,omitempty"`
	IsEnabled              bool                `json:"is_enabled"`
}

// ListIntervals returns a vehicle's maintenance intervals.
func (c *Client) ListIntervals(ctx context.Context, vehicleID int64) ([]model.MaintenanceInterval, error) {
	var out []model.MaintenanceInterval
	err := c.Get(ctx, "/vehicles/"+itoa(vehicleID)+"/intervals", &out)
	return out, err
}

// CreateInterval adds an interval to a vehicle.
func (c *Client) CreateInterval(ctx context.Context, vehicleID int64, in IntervalInput) (*model.MaintenanceInterval, error) {
	var out model.MaintenanceInterval
	if err := c.Post(ctx, "/vehicles/"+itoa(vehicleID)+"/intervals", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInterval edits an interval.
func (c *Client) UpdateInterval(ctx context.Context, vehicleID, intervalID int64, in IntervalInput) (*model.MaintenanceInterval, error) {
	var out model.MaintenanceInterval
	if err := c.Put(ctx, "/vehicles/"+itoa(vehicleID)+"/intervals/"+itoa(intervalID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInterval removes an interval.
func (c *Client) DeleteInterval(ctx context.Context, vehicleID, intervalID int64) error {
	return c.Delete(ctx, "/vehicles/"+itoa(vehicleID)+"/intervals/"+itoa(intervalID))
}

// SetupDefaultIntervals seeds the factory-recommended interval set.
func (c *Client) SetupDefaultIntervals(ctx context.Context, vehicleID int64) ([]model.MaintenanceInterval, error) {
	var out []model.MaintenanceInterval
	err := c.Request(ctx, http.MethodPost, "/vehicles/"+itoa(vehicleID)+"/intervals/setup-defaults", nil, &out)
	return out, err
}

// ListMaintenanceItems returns the maintenance catalog.
func (c *Client) ListMaintenanceItems(ctx context.Context) ([]model.MaintenanceItem, error) {
	var out []model.MaintenanceItem
	err := c.Get(ctx, "/vehicles/maintenance-items", &out)
	return out, err
}

// =============================================================================
// TIRE SETS
// =============================================================================

// TireSetInput is the create/update body for a tire set.
type TireSetInput struct {
	Name  string `json:"name"`
	Brand string `json:"brand,omitempty"`
	Size  string `json:"size,omitempty"`
}

// ListTireSets returns a vehicle's tire sets.
func (c *Client) ListTireSets(ctx context.Context, vehicleID int64) ([]model.TireSet, error) {
	var out []model.TireSet
	err := c.Get(ctx, "/vehicles/"+itoa(vehicleID)+"/tire-sets", &out)
	return out, err
}

// CreateTireSet adds a tire set.
func (c *Client) CreateTireSet(ctx context.Context, vehicleID int64, in TireSetInput) (*model.TireSet, error) {
	var out model.TireSet
	if err := c.Post(ctx, "/vehicles/"+itoa(vehicleID)+"/tire-sets", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SwapTireSet mounts the given set and dismounts the current one.
func (c *Client) SwapTireSet(ctx context.Context, tireSetID int64) ([]model.TireSet, error) {
	var out []model.TireSet
	err := c.Request(ctx, http.MethodPost, "/vehicles/tire-sets/"+itoa(tireSetID)+"/swap", nil, &out)
	return out, err
}

// DeleteTireSet removes a tire set.
func (c *Client) DeleteTireSet(ctx context.Context, vehicleID, tireSetID int64) error {
	return c.Delete(ctx, "/vehicles/"+itoa(vehicleID)+"/tire-sets/"+itoa(tireSetID))
}

// =============================================================================
// COMPONENTS
// =============================================================================

// ComponentInput is the create/update body for a component.
type ComponentInput struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// ListComponents returns a vehicle's tracked components.
func (c *Client) ListComponents(ctx context.Context, vehicleID int64) ([]model.Component, error) {
	var out []model.Component
	err := c.Get(ctx, "/vehicles/"+itoa(vehicleID)+"/components", &out)
	return out, err
}

// CreateComponent adds a component.
func (c *Client) CreateComponent(ctx context.Context, vehicleID int64, in ComponentInput) (*model.Component, error) {
	var out model.Component
	if err := c.Post(ctx, "/vehicles/"+itoa(vehicleID)+"/components", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComponent removes a component and its logs.
func (c *Client) DeleteComponent(ctx context.Context, vehicleID, componentID int64) error {
	return c.Delete(ctx, "/vehicles/"+itoa(vehicleID)+"/components/"+itoa(componentID))
}

// ComponentLogInput is the body for a component log entry.
type ComponentLogInput struct {
	Description string `json:"description"`
	Mileage     int    `json:"mileage,omitempty"`
}

// CreateComponentLog records service against a component.
func (c *Client) CreateComponentLog(ctx context.Context, vehicleID, componentID int64, in ComponentLogInput) (*model.ComponentLog, error) {
	var out model.ComponentLog
	path := "/vehicles/" + itoa(vehicleID) + "/components/" + itoa(componentID) + "/logs"
	if err := c.Post(ctx, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
