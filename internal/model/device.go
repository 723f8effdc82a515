// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// SMART HOME
// =============================================================================

// Device is a smart-home entity proxied from the home-automation vendor.
// EntityID is the opaque vendor id ("light.kitchen"); LastState and
// LastAttributes are replaced wholesale by state-change reconciliation.
type Device struct {
	ID             int64          `json:"id"`
	EntityID       string         `json:"entity_id"`
	FriendlyName   string         `json:"friendly_name"`
	Domain         string         `json:"domain"`
	Category       string         `json:"category,omitempty"`
	RoomID         *int64         `json:"room_id,omitempty"`
	Role           string         `json:"role,omitempty"`
	LastState      string         `json:"last_state"`
	LastAttributes map[string]any `json:"last_attributes,omitempty"`
	IsVisible      bool           `json:"is_visible"`
	IsFavorited    bool           `json:"is_favorited"`
}

// IsActive reports whether the device is in a "on"-like state. Unknown
// states are neither active nor inactive; render them neutrally.
func (d Device) IsActive() bool {
	switch d.LastState {
	case "on", "open", "unlocked", "playing", "heat", "cool", "printing":
		return true
	}
	return false
}

// IsUnavailable reports the vendor-side unavailable marker.
func (d Device) IsUnavailable() bool {
	return d.LastState == "unavailable" || d.LastState == "unknown"
}

// Room owns zero or more devices and has an ordered position.
type Room struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon,omitempty"`
	Position int      `json:"position"`
	Devices  []Device `json:"devices"`
}

// SmartHomeDashboard is the backend-shaped device tree the home page
// renders and patches in place.
type SmartHomeDashboard struct {
	Rooms        []Room   `json:"rooms"`
	Unassigned   []Device `json:"unassigned"`
	TotalDevices int      `json:"total_devices"`
}

// StateChange is one frame of the smart-home SSE stream.
type StateChange struct {
	Type       string         `json:"type"`
	EntityID   string         `json:"entity_id"`
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// StateChangedType is the only smart-home frame type the client acts on;
// all other types are ignored.
const StateChangedType = "state_changed"
