// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package devices patches backend-shaped device trees from state-change
// stream frames. The patch functions are pure state transforms: they
// touch only the entity a frame names, do no I/O, and leave tree shape
// untouched. Only a refetch changes which devices exist.
package devices

import (
	"github.com/jeranaias/lifehub-tui/internal/model"
)

// ApplyToDashboard patches the device matching the frame's entity_id,
// wherever it sits in the room tree, and reports whether anything
// matched. Frames of any type other than state_changed are ignored.
func ApplyToDashboard(d *model.SmartHomeDashboard, ev model.StateChange) bool {
	if d == nil || ev.Type != model.StateChangedType {
		return false
	}
	matched := false
	for ri := range d.Rooms {
		if patchDeviceList(d.Rooms[ri].Devices, ev) {
			matched = true
		}
	}
	if patchDeviceList(d.Unassigned, ev) {
		matched = true
	}
	return matched
}

func patchDeviceList(devices []model.Device, ev model.StateChange) bool {
	matched := false
	for i := range devices {
		if devices[i].EntityID == ev.EntityID {
			patchDevice(&devices[i], ev)
			matched = true
		}
	}
	return matched
}

// patchDevice replaces state and attributes wholesale.
func patchDevice(dev *model.Device, ev model.StateChange) {
	dev.LastState = ev.State
	if ev.Attributes != nil {
		dev.LastAttributes = ev.Attributes
	}
}
