// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

func intPtr(v int) *int              { return &v }
func timePtr(t time.Time) *time.Time { return &t }

func milesInterval(interval, lastServiceMileage int) model.MaintenanceInterval {
	return model.MaintenanceInterval{
		MilesInterval:      intPtr(interval),
		ConditionType:      model.ConditionOr,
		IsEnabled:          true,
		LastServiceMileage: intPtr(lastServiceMileage),
	}
}

func TestEvaluateMilesBoundaries(t *testing.T) {
	// 5000-mile interval, last serviced at 0.
	cases := []struct {
		mileage int
		want    model.IntervalStatus
	}{
		{3999, model.StatusOK},
		{4000, model.StatusDueSoon}, // exactly 0.8
		{4749, model.StatusDueSoon},
		{4750, model.StatusDue}, // exactly 0.95
		{4999, model.StatusDue},
		{5000, model.StatusOverdue}, // exactly 1.0
		{9000, model.StatusOverdue},
	}
	for _, tc := range cases {
		got := Evaluate(milesInterval(5000, 0), tc.mileage, time.Now())
		assert.Equal(t, tc.want, got.Status, "mileage %d", tc.mileage)
	}
}

func TestEvaluateDerivedMilesFields(t *testing.T) {
	got := Evaluate(milesInterval(5000, 42000), 45500, time.Now())

	require.NotNil(t, got.NextDueMileage)
	assert.Equal(t, 47000, *got.NextDueMileage)
	require.NotNil(t, got.MilesRemaining)
	assert.Equal(t, 1500, *got.MilesRemaining)
	require.NotNil(t, got.PercentMiles)
	assert.InDelta(t, 0.7, *got.PercentMiles, 1e-9)
	assert.Equal(t, model.StatusOK, got.Status)
}

func TestEvaluateTimeAxis(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	iv := model.MaintenanceInterval{
		MonthsInterval:  intPtr(12),
		ConditionType:   model.ConditionOr,
		IsEnabled:       true,
		LastServiceDate: timePtr(now.AddDate(0, 0, -365)),
	}
	got := Evaluate(iv, 0, now)
	// 365 days / 30.44 rounds to 12 months elapsed of 12 → overdue.
	assert.Equal(t, model.StatusOverdue, got.Status)
	require.NotNil(t, got.PercentTime)
	assert.InDelta(t, 1.0, *got.PercentTime, 1e-9)

	iv.LastServiceDate = timePtr(now.AddDate(0, 0, -90))
	got = Evaluate(iv, 0, now)
	// ~3 of 12 months.
	assert.Equal(t, model.StatusOK, got.Status)
}

func TestEvaluateUnknownStates(t *testing.T) {
	// No axis configured at all.
	none := model.MaintenanceInterval{ConditionType: model.ConditionOr, IsEnabled: true}
	assert.Equal(t, model.StatusUnknown, Evaluate(none, 50000, time.Now()).Status)

	// Configured but never serviced.
	fresh := model.MaintenanceInterval{
		MilesInterval:  intPtr(5000),
		MonthsInterval: intPtr(6),
		ConditionType:  model.ConditionOr,
		IsEnabled:      true,
	}
	got := Evaluate(fresh, 50000, time.Now())
	assert.Equal(t, model.StatusUnknown, got.Status)
	assert.Nil(t, got.PercentMiles)
	assert.Nil(t, got.NextDueMileage)
}

func TestEvaluateOrTakesWorstAxis(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	iv := model.MaintenanceInterval{
		MilesInterval:      intPtr(5000),
		MonthsInterval:     intPtr(12),
		ConditionType:      model.ConditionOr,
		IsEnabled:          true,
		LastServiceMileage: intPtr(0),
		LastServiceDate:    timePtr(now.AddDate(0, -1, 0)),
	}
	// Miles badly overdue, time barely started.
	got := Evaluate(iv, 9000, now)
	assert.Equal(t, model.StatusOverdue, got.Status)
}

func TestEvaluateAndTakesBestAxis(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	iv := model.MaintenanceInterval{
		MilesInterval:      intPtr(5000),
		MonthsInterval:     intPtr(12),
		ConditionType:      model.ConditionAnd,
		IsEnabled:          true,
		LastServiceMileage: intPtr(0),
		LastServiceDate:    timePtr(now.AddDate(0, -1, 0)),
	}
	// Miles overdue but time axis still ok → not due yet under "and".
	got := Evaluate(iv, 9000, now)
	assert.Equal(t, model.StatusOK, got.Status)
}

func TestEvaluateAndWithSingleAxisActsLikeOr(t *testing.T) {
	iv := milesInterval(5000, 0)
	iv.ConditionType = model.ConditionAnd
	got := Evaluate(iv, 5000, time.Now())
	assert.Equal(t, model.StatusOverdue, got.Status)
}

func TestWorstStatus(t *testing.T) {
	ivs := []model.MaintenanceInterval{
		{Status: model.StatusOK},
		{Status: model.StatusDue},
		{Status: model.StatusDueSoon},
	}
	assert.Equal(t, model.StatusDue, WorstStatus(ivs))
	assert.Equal(t, model.StatusUnknown, WorstStatus(nil))
}

func TestGroupBySection(t *testing.T) {
	mk := func(name, category string, sortOrder int) model.MaintenanceInterval {
		return model.MaintenanceInterval{
			Item: model.MaintenanceItem{Name: name, Category: category, SortOrder: sortOrder},
		}
	}
	sections := GroupBySection([]model.MaintenanceInterval{
		mk("Timing Belt", "Engine", 210),
		mk("Oil Change", "Engine", 10),
		mk("Brake Fluid", "Brakes", 150),
		mk("Tire Rotation", "Tires", 20),
		mk("Alternator", "Electrical", 300),
	})

	require.Len(t, sections, 4)
	assert.Equal(t, CommonSectionTitle, sections[0].Title)
	require.Len(t, sections[0].Intervals, 2)
	assert.Equal(t, "Oil Change", sections[0].Intervals[0].Item.Name)
	assert.Equal(t, "Tire Rotation", sections[0].Intervals[1].Item.Name)

	// Remaining categories alphabetized.
	assert.Equal(t, "Brakes", sections[1].Title)
	assert.Equal(t, "Electrical", sections[2].Title)
	assert.Equal(t, "Engine", sections[3].Title)
}
