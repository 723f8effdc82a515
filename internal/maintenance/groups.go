// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package maintenance

import (
	"sort"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// Section is a rendered grouping of intervals: the pinned "Common"
// section first, then one section per category in alphabetical order.
type Section struct {
	Title     string
	Intervals []model.MaintenanceInterval
}

// CommonSectionTitle heads the pinned group of frequently used items.
const CommonSectionTitle = "Common"

// GroupBySection splits evaluated intervals into display sections.
// Items with catalog sort_order below the common cutoff form the
// "Common" section ordered by sort_order; everything else groups by
// item category, categories alphabetized, items within a category
// ordered by sort_order then name.
func GroupBySection(intervals []model.MaintenanceInterval) []Section {
	var common []model.MaintenanceInterval
	byCategory := make(map[string][]model.MaintenanceInterval)

	for _, iv := range intervals {
		if iv.Item.IsCommon() {
			common = append(common, iv)
			continue
		}
		cat := iv.Item.Category
		if cat == "" {
			cat = "Other"
		}
		byCategory[cat] = append(byCategory[cat], iv)
	}

	sortIntervals(common)

	var sections []Section
	if len(common) > 0 {
		sections = append(sections, Section{Title: CommonSectionTitle, Intervals: common})
	}

	cats := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	for _, cat := range cats {
		ivs := byCategory[cat]
		sortIntervals(ivs)
		sections = append(sections, Section{Title: cat, Intervals: ivs})
	}
	return sections
}

func sortIntervals(ivs []model.MaintenanceInterval) {
	sort.SliceStable(ivs, func(i, j int) bool {
		if ivs[i].Item.SortOrder != ivs[j].Item.SortOrder {
			return ivs[i].Item.SortOrder < ivs[j].Item.SortOrder
		}
		return ivs[i].Item.Name < ivs[j].Item.Name
	})
}
