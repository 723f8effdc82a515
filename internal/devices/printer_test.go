// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

func testPrinter() model.PrinterView {
	return model.PrinterView{
		Device: model.Device{EntityID: "sensor.x1c_abc", LastState: "idle"},
		Camera: &model.Device{EntityID: "camera.x1c_abc", LastState: "idle"},
		Controls: model.PrinterControls{
			Light: &model.Device{EntityID: "light.x1c_abc_chamber", LastState: "off"},
			Fans: []model.Device{
				{EntityID: "fan.x1c_abc_cooling", LastState: "off"},
			},
			Buttons: []model.Device{
				{EntityID: "button.x1c_abc_pause", LastState: "unknown"},
			},
			Numbers: []model.Device{
				{EntityID: "number.x1c_abc_nozzle", Role: model.RoleNozzleTarget, LastState: "0"},
				{EntityID: "number.x1c_abc_bed", Role: model.RoleBedTarget, LastState: "0"},
			},
		},
	}
}

func change(entityID, state string) model.StateChange {
	return model.StateChange{Type: model.StateChangedType, EntityID: entityID, State: state}
}

func TestApplyToPrinterDeviceNodes(t *testing.T) {
	p := testPrinter()

	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc", "printing")))
	assert.Equal(t, "printing", p.Device.LastState)

	require.True(t, ApplyToPrinter(&p, change("camera.x1c_abc", "streaming")))
	assert.Equal(t, "streaming", p.Camera.LastState)

	require.True(t, ApplyToPrinter(&p, change("light.x1c_abc_chamber", "on")))
	assert.Equal(t, "on", p.Controls.Light.LastState)

	require.True(t, ApplyToPrinter(&p, change("button.x1c_abc_pause", "2026-08-01T00:00:00Z")))
}

func TestApplyToPrinterFanPercentage(t *testing.T) {
	p := testPrinter()
	ev := change("fan.x1c_abc_cooling", "on")
	ev.Attributes = map[string]any{"percentage": float64(70)}

	require.True(t, ApplyToPrinter(&p, ev))
	assert.Equal(t, "on", p.Controls.Fans[0].LastState)
	pct, ok := FanPercentage(p.Controls.Fans[0])
	require.True(t, ok)
	assert.Equal(t, 70.0, pct)
}

func TestApplyToPrinterNumberMirrorsTarget(t *testing.T) {
	p := testPrinter()

	require.True(t, ApplyToPrinter(&p, change("number.x1c_abc_nozzle", "245")))
	require.NotNil(t, p.Temperatures.Nozzle.Target)
	assert.Equal(t, 245.0, *p.Temperatures.Nozzle.Target)
	assert.Equal(t, "245", p.Controls.Numbers[0].LastState)

	require.True(t, ApplyToPrinter(&p, change("number.x1c_abc_bed", "80")))
	require.NotNil(t, p.Temperatures.Bed.Target)
	assert.Equal(t, 80.0, *p.Temperatures.Bed.Target)
}

func TestApplyToPrinterTelemetrySuffixes(t *testing.T) {
	p := testPrinter()

	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc_nozzle_temperature", "214.7")))
	require.NotNil(t, p.Temperatures.Nozzle.Current)
	assert.Equal(t, 214.7, *p.Temperatures.Nozzle.Current)

	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc_hotbed_temperature", "60")))
	assert.Equal(t, 60.0, *p.Temperatures.Bed.Current)

	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc_print_status", "running")))
	assert.Equal(t, "running", p.PrintStatus.State)

	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc_print_progress", "42.5")))
	assert.Equal(t, 42.5, *p.PrintStatus.Progress)

	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc_printing_file_name", "benchy.3mf")))
	assert.Equal(t, "benchy.3mf", p.PrintStatus.FileName)

	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc_z_axis", "12.4")))
	assert.Equal(t, 12.4, *p.Position.Z)

	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc_working_layer", "57")))
	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc_total_layers", "230")))
	assert.Equal(t, 57, *p.Layers.Working)
	assert.Equal(t, 230, *p.Layers.Total)

	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc_material_used", "14.2")))
	assert.Equal(t, 14.2, *p.Layers.MaterialUsed)
}

func TestApplyToPrinterUnparseableNumberLeavesField(t *testing.T) {
	p := testPrinter()
	cur := 100.0
	p.Temperatures.Nozzle.Current = &cur

	require.True(t, ApplyToPrinter(&p, change("sensor.x1c_abc_nozzle_temperature", "unavailable")))
	assert.Equal(t, 100.0, *p.Temperatures.Nozzle.Current)
}

func TestApplyToPrinterUnknownEntity(t *testing.T) {
	p := testPrinter()
	assert.False(t, ApplyToPrinter(&p, change("sensor.other_printer_nozzle", "200")))
	assert.False(t, ApplyToPrinter(&p, model.StateChange{Type: "ping", EntityID: "sensor.x1c_abc", State: "x"}))
}
