// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// 3D PRINTER VIEW
// =============================================================================

// PrinterView is the backend-built composite for one printer device. The
// client keeps this backend-shaped tree and patches it in place from the
// state stream (internal/devices); the backend remains the single source
// of shape truth.
type PrinterView struct {
	Device       Device              `json:"device"`
	Camera       *Device             `json:"camera,omitempty"`
	Temperatures PrinterTemperatures `json:"temperatures"`
	Controls     PrinterControls     `json:"controls"`
	Filament     PrinterFilament     `json:"filament"`
	PrintStatus  PrintStatus         `json:"print_status"`
	Position     PrinterPosition     `json:"position"`
	Layers       PrinterLayers       `json:"layers"`
	TempUnit     string              `json:"temp_unit,omitempty"`
}

// TempReading is a current/target pair for one heater.
type TempReading struct {
	Current *float64 `json:"current,omitempty"`
	Target  *float64 `json:"target,omitempty"`
}

// PrinterTemperatures groups the heater readings.
type PrinterTemperatures struct {
	Nozzle  TempReading `json:"nozzle"`
	Bed     TempReading `json:"bed"`
	Chamber TempReading `json:"chamber"`
}

// PrinterControls holds the controllable sub-entities of a printer.
type PrinterControls struct {
	Light   *Device  `json:"light,omitempty"`
	Fans    []Device `json:"fans,omitempty"`
	Buttons []Device `json:"buttons,omitempty"`
	Numbers []Device `json:"numbers,omitempty"`
}

// Number-entity roles that mirror into temperature targets when patched.
const (
	RoleNozzleTarget  = "nozzle_target"
	RoleBedTarget     = "bed_target"
	RoleChamberTarget = "chamber_target"
)

// FilamentSlot is one slot of a multi-material unit.
type FilamentSlot struct {
	Index    int    `json:"index"`
	Material string `json:"material,omitempty"`
	Color    string `json:"color,omitempty"`
	IsActive bool   `json:"is_active"`
}

// PrinterFilament describes loaded filament and dry-box telemetry.
type PrinterFilament struct {
	Slots    []FilamentSlot `json:"slots,omitempty"`
	External *FilamentSlot  `json:"external,omitempty"`
	Humidity *float64       `json:"humidity,omitempty"`
	Temp     *float64       `json:"temp,omitempty"`
	Status   string         `json:"status,omitempty"`
}

// PrintStatus is the live job telemetry.
type PrintStatus struct {
	State         string   `json:"state,omitempty"`
	Progress      *float64 `json:"progress,omitempty"`
	FileName      string   `json:"file_name,omitempty"`
	RemainingTime *float64 `json:"remaining_time,omitempty"`
	PrintSpeed    *float64 `json:"print_speed,omitempty"`
	RealTimeFlow  *float64 `json:"real_time_flow,omitempty"`
}

// PrinterPosition is the toolhead position.
type PrinterPosition struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	Z *float64 `json:"z,omitempty"`
}

// PrinterLayers is the layer progress.
type PrinterLayers struct {
	Working      *int     `json:"working,omitempty"`
	Total        *int     `json:"total,omitempty"`
	MaterialUsed *float64 `json:"material_used,omitempty"`
}
