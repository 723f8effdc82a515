// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// StateStreamPath is the SSE endpoint carrying state_changed frames for
// both the smart-home and printer dashboards.
const StateStreamPath = "/infrastructure/smart-home/stream"

// =============================================================================
// SMART HOME
// =============================================================================

// GetSmartHomeDashboard returns the full device tree.
func (c *Client) GetSmartHomeDashboard(ctx context.Context) (*model.SmartHomeDashboard, error) {
	var out model.SmartHomeDashboard
	if err := c.Get(ctx, "/infrastructure/smart-home/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RoomInput is the create/update body for a room.
type RoomInput struct {
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Position int    `json:"position,omitempty"`
}

// ListRooms returns all rooms.
func (c *Client) ListRooms(ctx context.Context) ([]model.Room, error) {
	var out []model.Room
	err := c.Get(ctx, "/infrastructure/smart-home/rooms", &out)
	return out, err
}

// CreateRoom adds a room.
func (c *Client) CreateRoom(ctx context.Context, in RoomInput) (*model.Room, error) {
	var out model.Room
	if err := c.Post(ctx, "/infrastructure/smart-home/rooms", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRoom edits a room.
func (c *Client) UpdateRoom(ctx context.Context, id int64, in RoomInput) (*model.Room, error) {
	var out model.Room
	if err := c.Put(ctx, "/infrastructure/smart-home/rooms/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRoom removes a room; its devices become unassigned.
func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/infrastructure/smart-home/rooms/"+itoa(id))
}

// =============================================================================
// DEVICES
// =============================================================================

// DeviceUpdate is the per-device update body (room assignment,
// visibility, naming).
type DeviceUpdate struct {
	FriendlyName *string `json:"friendly_name,omitempty"`
	Category     *string `json:"category,omitempty"`
	RoomID       *int64  `json:"room_id,omitempty"`
	IsVisible    *bool   `json:"is_visible,omitempty"`
}

// ListDevices returns all known devices.
func (c *Client) ListDevices(ctx context.Context) ([]model.Device, error) {
	var out []model.Device
	err := c.Get(ctx, "/infrastructure/smart-home/devices", &out)
	return out, err
}

// UpdateDevice edits one device.
func (c *Client) UpdateDevice(ctx context.Context, id int64, in DeviceUpdate) (*model.Device, error) {
	var out model.Device
	if err := c.Put(ctx, "/infrastructure/smart-home/devices/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkUpdateDevices applies the same update to many devices.
func (c *Client) BulkUpdateDevices(ctx context.Context, ids []int64, in DeviceUpdate) error {
	body := struct {
		IDs    []int64      `json:"ids"`
		Update DeviceUpdate `json:"update"`
	}{ids, in}
	return c.Put(ctx, "/infrastructure/smart-home/devices/bulk", body, nil)
}

// BulkDeleteDevices forgets many devices at once.
func (c *Client) BulkDeleteDevices(ctx context.Context, ids []int64) error {
	body := struct {
		IDs []int64 `json:"ids"`
	}{ids}
	return c.Request(ctx, http.MethodPost, "/infrastructure/smart-home/devices/bulk-delete", body, nil)
}

// FavoriteDevice toggles the favorite flag.
func (c *Client) FavoriteDevice(ctx context.Context, id int64, favorited bool) error {
	body := struct {
		IsFavorited bool `json:"is_favorited"`
	}{favorited}
	return c.Put(ctx, "/infrastructure/smart-home/devices/"+itoa(id)+"/favorite", body, nil)
}

// DiscoverDevices asks the backend to re-scan the vendor for new
// entities; returns the count of newly found devices.
func (c *Client) DiscoverDevices(ctx context.Context) (int, error) {
	var out struct {
		Discovered int `json:"discovered"`
	}
	err := c.Request(ctx, http.MethodPost, "/infrastructure/smart-home/discover", nil, &out)
	return out.Discovered, err
}

// ControlDevice sends a service call to a device ("turn_on", "turn_off",
// "toggle", "press", "set_value", ...) with optional service data.
func (c *Client) ControlDevice(ctx context.Context, id int64, action string, data map[string]any) error {
	body := struct {
		Action string         `json:"action"`
		Data   map[string]any `json:"data,omitempty"`
	}{action, data}
	return c.Request(ctx, http.MethodPost, "/infrastructure/smart-home/devices/"+itoa(id)+"/control", body, nil)
}
