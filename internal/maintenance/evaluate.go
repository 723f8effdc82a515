// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package maintenance derives per-interval service status from a
// vehicle's service history and interval configuration.
//
// An interval tracks progress on up to two axes, miles and months,
// and combines them under an or/and condition. All derivation here is
// pure: inputs in, patched interval out, no I/O and no clock other than
// the caller-supplied "now".
package maintenance

import (
	"math"
	"time"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// Status boundaries as fractions of the configured interval.
const (
	DueSoonThreshold = 0.8
	DueThreshold     = 0.95
	OverdueThreshold = 1.0
)

// DaysPerMonth is the mean Gregorian month length used for the time axis.
const DaysPerMonth = 30.44

// Evaluate computes the derived fields of one interval against the
// vehicle's current mileage at the given instant. The returned interval
// is a patched copy; the input is not modified.
//
// Rules:
//   - No axis configured, or never serviced → StatusUnknown.
//   - Per configured axis: percent = used/interval; overdue ≥ 1.0,
//     due ≥ 0.95, due_soon ≥ 0.8, else ok.
//   - condition "or": worst configured axis wins (most urgent).
//     condition "and": best configured axis wins (both must be met).
//   - Disabled intervals are still computed; rendering de-emphasizes them.
func Evaluate(iv model.MaintenanceInterval, currentMileage int, now time.Time) model.MaintenanceInterval {
	out := iv
	out.NextDueMileage = nil
	out.NextDueDate = nil
	out.MilesRemaining = nil
	out.DaysRemaining = nil
	out.PercentMiles = nil
	out.PercentTime = nil

	milesConfigured := iv.MilesInterval != nil && *iv.MilesInterval > 0
	monthsConfigured := iv.MonthsInterval != nil && *iv.MonthsInterval > 0

	if !milesConfigured && !monthsConfigured {
		out.Status = model.StatusUnknown
		return out
	}

	milesKnown := milesConfigured && iv.LastServiceMileage != nil
	timeKnown := monthsConfigured && iv.LastServiceDate != nil
	if !milesKnown && !timeKnown {
		// Never serviced.
		out.Status = model.StatusUnknown
		return out
	}

	var axes []model.IntervalStatus

	if milesKnown {
		interval := *iv.MilesInterval
		used := currentMileage - *iv.LastServiceMileage
		percent := float64(used) / float64(interval)
		remaining := interval - used
		nextDue := *iv.LastServiceMileage + interval

		out.PercentMiles = &percent
		out.MilesRemaining = &remaining
		out.NextDueMileage = &nextDue
		axes = append(axes, statusForPercent(percent))
	}

	if timeKnown {
		interval := *iv.MonthsInterval
		elapsedDays := now.Sub(*iv.LastServiceDate).Hours() / 24
		elapsedMonths := math.Round(elapsedDays / DaysPerMonth)
		percent := elapsedMonths / float64(interval)
		nextDue := iv.LastServiceDate.Add(time.Duration(float64(interval) * DaysPerMonth * 24 * float64(time.Hour)))
		daysRemaining := int(math.Ceil(nextDue.Sub(now).Hours() / 24))

		out.PercentTime = &percent
		out.NextDueDate = &nextDue
		out.DaysRemaining = &daysRemaining
		axes = append(axes, statusForPercent(percent))
	}

	out.Status = combine(iv.ConditionType, axes)
	return out
}

// EvaluateAll evaluates every interval of a vehicle.
func EvaluateAll(intervals []model.MaintenanceInterval, currentMileage int, now time.Time) []model.MaintenanceInterval {
	out := make([]model.MaintenanceInterval, len(intervals))
	for i, iv := range intervals {
		out[i] = Evaluate(iv, currentMileage, now)
	}
	return out
}

// statusForPercent maps one axis' progress to a status.
func statusForPercent(percent float64) model.IntervalStatus {
	switch {
	case percent >= OverdueThreshold:
		return model.StatusOverdue
	case percent >= DueThreshold:
		return model.StatusDue
	case percent >= DueSoonThreshold:
		return model.StatusDueSoon
	default:
		return model.StatusOK
	}
}

// combine folds per-axis statuses under the interval's condition type.
func combine(cond model.ConditionType, axes []model.IntervalStatus) model.IntervalStatus {
	if len(axes) == 0 {
		return model.StatusUnknown
	}
	result := axes[0]
	for _, s := range axes[1:] {
		if cond == model.ConditionAnd {
			// Both axes must be met: least urgent wins.
			if s.Severity() < result.Severity() {
				result = s
			}
		} else {
			// Default "or": most urgent wins.
			if s.Severity() > result.Severity() {
				result = s
			}
		}
	}
	return result
}

// WorstStatus returns the most urgent status across intervals, for
// summary badges.
func WorstStatus(intervals []model.MaintenanceInterval) model.IntervalStatus {
	worst := model.StatusUnknown
	for _, iv := range intervals {
		if iv.Status.Severity() > worst.Severity() {
			worst = iv.Status
		}
	}
	return worst
}
