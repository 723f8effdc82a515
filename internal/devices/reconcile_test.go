// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

func testDashboard() model.SmartHomeDashboard {
	return model.SmartHomeDashboard{
		Rooms: []model.Room{
			{ID: 1, Name: "Kitchen", Devices: []model.Device{
				{ID: 1, EntityID: "light.kitchen", LastState: "off"},
				{ID: 2, EntityID: "sensor.kitchen_temp", LastState: "21.5"},
			}},
			{ID: 2, Name: "Office", Devices: []model.Device{
				{ID: 3, EntityID: "switch.desk", LastState: "on"},
			}},
		},
		Unassigned: []model.Device{
			{ID: 4, EntityID: "lock.front_door", LastState: "locked"},
		},
		TotalDevices: 4,
	}
}

func TestApplyToDashboardPatchesMatchOnly(t *testing.T) {
	d := testDashboard()
	matched := ApplyToDashboard(&d, model.StateChange{
		Type:       model.StateChangedType,
		EntityID:   "light.kitchen",
		State:      "on",
		Attributes: map[string]any{"brightness": float64(200)},
	})

	require.True(t, matched)
	assert.Equal(t, "on", d.Rooms[0].Devices[0].LastState)
	assert.Equal(t, map[string]any{"brightness": float64(200)}, d.Rooms[0].Devices[0].LastAttributes)

	// Everything else untouched, including tree shape.
	assert.Equal(t, "21.5", d.Rooms[0].Devices[1].LastState)
	assert.Equal(t, "on", d.Rooms[1].Devices[0].LastState)
	assert.Equal(t, "locked", d.Unassigned[0].LastState)
	assert.Equal(t, 4, d.TotalDevices)
}

func TestApplyToDashboardUnassigned(t *testing.T) {
	d := testDashboard()
	matched := ApplyToDashboard(&d, model.StateChange{
		Type:     model.StateChangedType,
		EntityID: "lock.front_door",
		State:    "unlocked",
	})
	require.True(t, matched)
	assert.Equal(t, "unlocked", d.Unassigned[0].LastState)
}

func TestApplyToDashboardUnknownEntity(t *testing.T) {
	d := testDashboard()
	before := testDashboard()
	matched := ApplyToDashboard(&d, model.StateChange{
		Type:     model.StateChangedType,
		EntityID: "light.garage",
		State:    "on",
	})
	assert.False(t, matched)
	assert.Equal(t, before, d)
}

func TestApplyToDashboardIgnoresOtherFrameTypes(t *testing.T) {
	d := testDashboard()
	matched := ApplyToDashboard(&d, model.StateChange{
		Type:     "automation_triggered",
		EntityID: "light.kitchen",
		State:    "on",
	})
	assert.False(t, matched)
	assert.Equal(t, "off", d.Rooms[0].Devices[0].LastState)
}

func TestApplyToDashboardKeepsAttributesWhenFrameOmitsThem(t *testing.T) {
	d := testDashboard()
	d.Rooms[0].Devices[0].LastAttributes = map[string]any{"brightness": float64(50)}

	ApplyToDashboard(&d, model.StateChange{
		Type:     model.StateChangedType,
		EntityID: "light.kitchen",
		State:    "off",
	})
	assert.Equal(t, map[string]any{"brightness": float64(50)}, d.Rooms[0].Devices[0].LastAttributes)
}
