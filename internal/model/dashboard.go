// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// DASHBOARD
// =============================================================================

// Weather is the dashboard weather card payload.
type Weather struct {
	Location  string  `json:"location"`
	TempF     float64 `json:"temp_f"`
	Condition string  `json:"condition"`
	Humidity  int     `json:"humidity,omitempty"`
	WindMph   float64 `json:"wind_mph,omitempty"`
	HighF     float64 `json:"high_f,omitempty"`
	LowF      float64 `json:"low_f,omitempty"`
}

// DashboardSummary aggregates module badges for the landing page. The
// vehicle section follows the selected "dashboard vehicle".
type DashboardSummary struct {
	Vehicle       *VehicleSummary `json:"vehicle,omitempty"`
	OpenTasks     int             `json:"open_tasks"`
	PinnedNotes   int             `json:"pinned_notes"`
	OpenIncidents int             `json:"open_incidents"`
	UnreadCount   int             `json:"unread_count"`
	DevicesOn     int             `json:"devices_on"`
	ActivePrints  int             `json:"active_prints"`
	NextLaunch    *Launch         `json:"next_launch,omitempty"`
}

// VehicleSummary is the dashboard's condensed vehicle card.
type VehicleSummary struct {
	VehicleID      int64          `json:"vehicle_id"`
	Name           string         `json:"name"`
	CurrentMileage int            `json:"current_mileage"`
	DueIntervals   int            `json:"due_intervals"`
	WorstStatus    IntervalStatus `json:"worst_status,omitempty"`
}
