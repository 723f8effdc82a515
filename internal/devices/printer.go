// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package devices

import (
	"strconv"
	"strings"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// Telemetry entity suffixes. Vendor sensor entities encode their meaning
// in the entity_id tail ("sensor.x1c_abc_nozzle_temperature").
const (
	suffixNozzleTemp     = "_nozzle_temperature"
	suffixBedTemp        = "_hotbed_temperature"
	suffixChamberTemp    = "_chamber_temperature"
	suffixPrintStatus    = "_print_status"
	suffixPrintProgress  = "_print_progress"
	suffixPrintingFile   = "_printing_file_name"
	suffixRemainingTime  = "_remaining_time"
	suffixPrintSpeed     = "_print_speed"
	suffixRealTimeFlow   = "_real_time_flow"
	suffixXAxis          = "_x_axis"
	suffixYAxis          = "_y_axis"
	suffixZAxis          = "_z_axis"
	suffixWorkingLayer   = "_working_layer"
	suffixTotalLayers    = "_total_layers"
	suffixMaterialUsed   = "_material_used"
	suffixHumidity       = "_humidity"
	suffixFilamentStatus = "_filament_status"
)

// ApplyToPrinter routes one state-change frame into the printer
// composite: node entities patch in place, number roles mirror into
// temperature targets, and telemetry suffixes update the matching
// sensor field. Reports whether the frame touched anything.
func ApplyToPrinter(p *model.PrinterView, ev model.StateChange) bool {
	if p == nil || ev.Type != model.StateChangedType {
		return false
	}

	if ev.EntityID == p.Device.EntityID {
		patchDevice(&p.Device, ev)
		return true
	}
	if p.Camera != nil && ev.EntityID == p.Camera.EntityID {
		patchDevice(p.Camera, ev)
		return true
	}
	if p.Controls.Light != nil && ev.EntityID == p.Controls.Light.EntityID {
		patchDevice(p.Controls.Light, ev)
		return true
	}
	if patchControlList(p.Controls.Buttons, ev) {
		return true
	}
	if patchControlList(p.Controls.Fans, ev) {
		return true
	}
	if dev := findDevice(p.Controls.Numbers, ev.EntityID); dev != nil {
		patchDevice(dev, ev)
		if v, ok := parseFloat(ev.State); ok {
			switch dev.Role {
			case model.RoleNozzleTarget:
				p.Temperatures.Nozzle.Target = &v
			case model.RoleBedTarget:
				p.Temperatures.Bed.Target = &v
			case model.RoleChamberTarget:
				p.Temperatures.Chamber.Target = &v
			}
		}
		return true
	}

	return applyTelemetry(p, ev)
}

// applyTelemetry updates sensor-backed fields from suffix-routed
// entities. Unparseable numeric states leave the field unchanged.
func applyTelemetry(p *model.PrinterView, ev model.StateChange) bool {
	switch suffixOf(ev.EntityID) {
	case suffixNozzleTemp:
		setFloat(&p.Temperatures.Nozzle.Current, ev.State)
	case suffixBedTemp:
		setFloat(&p.Temperatures.Bed.Current, ev.State)
	case suffixChamberTemp:
		setFloat(&p.Temperatures.Chamber.Current, ev.State)
	case suffixPrintStatus:
		p.PrintStatus.State = ev.State
	case suffixPrintProgress:
		setFloat(&p.PrintStatus.Progress, ev.State)
	case suffixPrintingFile:
		p.PrintStatus.FileName = ev.State
	case suffixRemainingTime:
		setFloat(&p.PrintStatus.RemainingTime, ev.State)
	case suffixPrintSpeed:
		setFloat(&p.PrintStatus.PrintSpeed, ev.State)
	case suffixRealTimeFlow:
		setFloat(&p.PrintStatus.RealTimeFlow, ev.State)
	case suffixXAxis:
		setFloat(&p.Position.X, ev.State)
	case suffixYAxis:
		setFloat(&p.Position.Y, ev.State)
	case suffixZAxis:
		setFloat(&p.Position.Z, ev.State)
	case suffixWorkingLayer:
		setInt(&p.Layers.Working, ev.State)
	case suffixTotalLayers:
		setInt(&p.Layers.Total, ev.State)
	case suffixMaterialUsed:
		setFloat(&p.Layers.MaterialUsed, ev.State)
	case suffixHumidity:
		setFloat(&p.Filament.Humidity, ev.State)
	case suffixFilamentStatus:
		p.Filament.Status = ev.State
	default:
		return false
	}
	return true
}

func patchControlList(devices []model.Device, ev model.StateChange) bool {
	if dev := findDevice(devices, ev.EntityID); dev != nil {
		patchDevice(dev, ev)
		return true
	}
	return false
}

func findDevice(devices []model.Device, entityID string) *model.Device {
	for i := range devices {
		if devices[i].EntityID == entityID {
			return &devices[i]
		}
	}
	return nil
}

// FanPercentage extracts the speed percentage a fan entity carries in
// its attributes, for rendering.
func FanPercentage(dev model.Device) (float64, bool) {
	v, ok := dev.LastAttributes["percentage"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		return parseFloat(n)
	}
	return 0, false
}

// suffixOf returns the entity_id tail starting at the second-to-last
// underscore group, long enough to cover every known suffix.
func suffixOf(entityID string) string {
	for _, s := range []string{
		suffixNozzleTemp, suffixBedTemp, suffixChamberTemp,
		suffixPrintStatus, suffixPrintProgress, suffixPrintingFile,
		suffixRemainingTime, suffixPrintSpeed, suffixRealTimeFlow,
		suffixXAxis, suffixYAxis, suffixZAxis,
		suffixWorkingLayer, suffixTotalLayers, suffixMaterialUsed,
		suffixHumidity, suffixFilamentStatus,
	} {
		if strings.HasSuffix(entityID, s) {
			return s
		}
	}
	return ""
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func setFloat(dst **float64, state string) {
	if v, ok := parseFloat(state); ok {
		*dst = &v
	}
}

func setInt(dst **int, state string) {
	if v, err := strconv.Atoi(state); err == nil {
		*dst = &v
	}
}
