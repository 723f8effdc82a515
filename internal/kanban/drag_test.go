// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package kanban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// board builds A:{t1,t2} B:{t3} with gap-based sort orders.
func board() []model.Column {
	return []model.Column{
		{ID: 1, Name: "To Do", Tasks: []model.Task{
			{ID: 101, ColumnID: 1, Title: "t1", SortOrder: 1000},
			{ID: 102, ColumnID: 1, Title: "t2", SortOrder: 2000},
		}},
		{ID: 2, Name: "Doing", Tasks: []model.Task{
			{ID: 103, ColumnID: 2, Title: "t3", SortOrder: 1000},
		}},
	}
}

func taskIDs(c model.Column) []int64 {
	ids := make([]int64, len(c.Tasks))
	for i, t := range c.Tasks {
		ids[i] = t.ID
	}
	return ids
}

func TestBeginClonesBoard(t *testing.T) {
	original := board()
	s := Begin(original, 101)
	require.NotNil(t, s)

	s.OverColumn(2)
	// The caller's slice is untouched.
	assert.Equal(t, []int64{101, 102}, taskIDs(original[0]))
	assert.Equal(t, []int64{103, 101}, taskIDs(s.Columns()[1]))
}

func TestBeginUnknownTask(t *testing.T) {
	assert.Nil(t, Begin(board(), 999))
}

func TestOverTaskInsertsBeforeTarget(t *testing.T) {
	s := Begin(board(), 101)
	s.OverTask(103)

	cols := s.Columns()
	assert.Equal(t, []int64{102}, taskIDs(cols[0]))
	assert.Equal(t, []int64{101, 103}, taskIDs(cols[1]))
	assert.Equal(t, int64(2), cols[1].Tasks[0].ColumnID)
}

func TestOverTaskIdempotent(t *testing.T) {
	s := Begin(board(), 101)
	s.OverTask(103)
	first := taskIDs(s.Columns()[1])
	s.OverTask(103)
	assert.Equal(t, first, taskIDs(s.Columns()[1]))
	assert.Equal(t, []int64{102}, taskIDs(s.Columns()[0]))
}

func TestOverOwnTaskIgnored(t *testing.T) {
	s := Begin(board(), 101)
	s.OverTask(101)
	assert.Equal(t, []int64{101, 102}, taskIDs(s.Columns()[0]))
}

func TestOverColumnAppends(t *testing.T) {
	s := Begin(board(), 101)
	s.OverColumn(2)
	assert.Equal(t, []int64{103, 101}, taskIDs(s.Columns()[1]))

	// Already last: no-op.
	s.OverColumn(2)
	assert.Equal(t, []int64{103, 101}, taskIDs(s.Columns()[1]))
}

func TestEndRenumbersSourceAndDestination(t *testing.T) {
	original := board()
	s := Begin(original, 101)
	s.OverTask(103) // t1 lands before t3 in column B

	moves := s.End(original)
	require.Len(t, moves, 3)

	byID := make(map[int64]model.TaskReorder)
	for _, m := range moves {
		byID[m.ID] = m
	}
	assert.Equal(t, model.TaskReorder{ID: 102, ColumnID: 1, SortOrder: 1000}, byID[102])
	assert.Equal(t, model.TaskReorder{ID: 101, ColumnID: 2, SortOrder: 1000}, byID[101])
	assert.Equal(t, model.TaskReorder{ID: 103, ColumnID: 2, SortOrder: 2000}, byID[103])
}

func TestEndRoundTripIsEmpty(t *testing.T) {
	original := board()
	s := Begin(original, 101)
	s.OverColumn(2)
	s.OverTask(102) // back home, before t2

	assert.Empty(t, s.End(original))
}

func TestEndReorderWithinColumn(t *testing.T) {
	original := board()
	s := Begin(original, 102)
	s.OverTask(101) // t2 moves above t1

	moves := s.End(original)
	require.Len(t, moves, 2)
	byID := make(map[int64]model.TaskReorder)
	for _, m := range moves {
		byID[m.ID] = m
	}
	assert.Equal(t, 1000, byID[102].SortOrder)
	assert.Equal(t, 2000, byID[101].SortOrder)
	assert.Equal(t, int64(1), byID[102].ColumnID)
}
