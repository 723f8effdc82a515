// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strconv"
	"time"
)

// =============================================================================
// VEHICLES
// =============================================================================

// Vehicle is a garage entry with its related collections.
type Vehicle struct {
	ID               int64  `json:"id"`
	Year             int    `json:"year"`
	Make             string `json:"make"`
	Model            string `json:"model"`
	Trim             string `json:"trim,omitempty"`
	CurrentMileage   int    `json:"current_mileage"`
	IsPrimary        bool   `json:"is_primary"`
	MaintenanceCount int    `json:"maintenance_count"`

	MaintenanceLogs []MaintenanceLog      `json:"maintenance_logs,omitempty"`
	FuelLogs        []FuelLog             `json:"fuel_logs,omitempty"`
	Components      []Component           `json:"components,omitempty"`
	TireSets        []TireSet             `json:"tire_sets,omitempty"`
	Intervals       []MaintenanceInterval `json:"intervals,omitempty"`
}

// DisplayName returns "2019 Honda Civic"-style naming.
func (v Vehicle) DisplayName() string {
	name := strconv.Itoa(v.Year) + " " + v.Make + " " + v.Model
	if v.Trim != "" {
		name += " " + v.Trim
	}
	return name
}

// MaintenanceItem is a catalog entry. Items with SortOrder < 100 are
// "common"; the remainder group by Category.
type MaintenanceItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

// CommonSortOrderMax is the exclusive upper bound for the "Common"
// maintenance-item grouping.
const CommonSortOrderMax = 100

// IsCommon reports whether the item belongs to the "Common" section.
func (m MaintenanceItem) IsCommon() bool {
	return m.SortOrder < CommonSortOrderMax
}

// ConditionType selects how the miles and months axes of an interval
// combine into one status.
type ConditionType string

const (
	// ConditionOr means service is due when either axis is due
	// (most urgent axis wins).
	ConditionOr ConditionType = "or"

	// ConditionAnd means service is due only when both axes are due
	// (least urgent axis wins).
	ConditionAnd ConditionType = "and"
)

// IntervalStatus is the derived urgency of a maintenance interval.
type IntervalStatus string

const (
	StatusUnknown IntervalStatus = "unknown"
	StatusOK      IntervalStatus = "ok"
	StatusDueSoon IntervalStatus = "due_soon"
	StatusDue     IntervalStatus = "due"
	StatusOverdue IntervalStatus = "overdue"
)

// Severity orders statuses from least to most urgent. Unknown sorts
// below ok so that unconfigured intervals never outrank real ones.
func (s IntervalStatus) Severity() int {
	switch s {
	case StatusOK:
		return 1
	case StatusDueSoon:
		return 2
	case StatusDue:
		return 3
	case StatusOverdue:
		return 4
	default:
		return 0
	}
}

// MaintenanceInterval binds a vehicle to a catalog item with a recurring
// cadence in miles and/or months. The derived fields are computed
// client-side by internal/maintenance and are not authoritative on the
// wire.
type MaintenanceInterval struct {
	ID        int64           `json:"id"`
	VehicleID int64           `json:"vehicle_id"`
	ItemID    int64           `json:"item_id"`
	Item      MaintenanceItem `json:"item"`

	MilesInterval  *int          `json:"miles_interval"`
	MonthsInterval *int          `json:"months_interval"`
	ConditionType  ConditionType `json:"condition_type"`

	// Overdue distances/times at which the backend rules engine notifies.
	// Presented but never evaluated on the client.
	NotifyMilesThresholds  []int `json:"notify_miles_thresholds,omitempty"`
	NotifyMonthsThresholds []int `json:"notify_months_thresholds,omitempty"`

	IsEnabled bool `json:"is_enabled"`

	LastServiceMileage *int       `json:"last_service_mileage,omitempty"`
	LastServiceDate    *time.Time `json:"last_service_date,omitempty"`

	// Derived (see internal/maintenance).
	NextDueMileage *int           `json:"next_due_mileage,omitempty"`
	NextDueDate    *time.Time     `json:"next_due_date,omitempty"`
	MilesRemaining *int           `json:"miles_remaining,omitempty"`
	DaysRemaining  *int           `json:"days_remaining,omitempty"`
	PercentMiles   *float64       `json:"percent_miles,omitempty"`
	PercentTime    *float64       `json:"percent_time,omitempty"`
	Status         IntervalStatus `json:"status,omitempty"`
}

// MaintenanceLog is a single service record.
type MaintenanceLog struct {
	ID          int64     `json:"id"`
	VehicleID   int64     `json:"vehicle_id"`
	ItemID      *int64    `json:"item_id,omitempty"`
	Description string    `json:"description"`
	Mileage     int       `json:"mileage"`
	Cost        float64   `json:"cost,omitempty"`
	Shop        string    `json:"shop,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	ServicedAt  time.Time `json:"serviced_at"`
}

// FuelLog is one fill-up entry.
type FuelLog struct {
	ID           int64     `json:"id"`
	VehicleID    int64     `json:"vehicle_id"`
	Mileage      int       `json:"mileage"`
	Gallons      float64   `json:"gallons"`
	PricePerUnit float64   `json:"price_per_unit"`
	TotalCost    float64   `json:"total_cost"`
	IsFull       bool      `json:"is_full"`
	FilledAt     time.Time `json:"filled_at"`
}

// FuelStats summarizes fuel history for a vehicle.
type FuelStats struct {
	VehicleID    int64   `json:"vehicle_id"`
	TotalEntries int     `json:"total_entries"`
	TotalGallons float64 `json:"total_gallons"`
	TotalCost    float64 `json:"total_cost"`
	AvgMPG       float64 `json:"avg_mpg"`
	BestMPG      float64 `json:"best_mpg"`
	AvgPrice     float64 `json:"avg_price"`
}

// TireSet tracks a mounted or stored set of tires.
type TireSet struct {
	ID          int64      `json:"id"`
	VehicleID   int64      `json:"vehicle_id"`
	Name        string     `json:"name"`
	Brand       string     `json:"brand,omitempty"`
	Size        string     `json:"size,omitempty"`
	IsMounted   bool       `json:"is_mounted"`
	MilesOnSet  int        `json:"miles_on_set"`
	MountedAt   *time.Time `json:"mounted_at,omitempty"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
}

// Component is a tracked vehicle part (battery, brakes, ...).
type Component struct {
	ID          int64          `json:"id"`
	VehicleID   int64          `json:"vehicle_id"`
	Name        string         `json:"name"`
	Category    string         `json:"category,omitempty"`
	InstalledAt *time.Time     `json:"installed_at,omitempty"`
	Logs        []ComponentLog `json:"logs,omitempty"`
}

// ComponentLog is a service record against a specific component.
type ComponentLog struct {
	ID          int64     `json:"id"`
	ComponentID int64     `json:"component_id"`
	Description string    `json:"description"`
	Mileage     int       `json:"mileage,omitempty"`
	LoggedAt    time.Time `json:"logged_at"`
}
