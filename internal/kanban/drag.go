// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package kanban implements the board-side half of drag and drop: a
// Session clones the board, applies hover moves purely in local state,
// and on drop renumbers the affected columns into a batch-reorder
// payload. Commit and rollback are both a refetch; the session never
// talks to the network itself.
package kanban

import "github.com/jeranaias/lifehub-tui/internal/model"

// SortOrderGap is the spacing between renumbered sort keys, leaving
// room for future insertions without a full rewrite.
const SortOrderGap = 1000

// Session is one in-flight drag of a single task. All mutation happens
// on a private clone of the board; the caller renders Columns() while
// the drag is live and discards the session after End.
type Session struct {
	columns      []model.Column
	taskID       int64
	sourceColumn int64
}

// Begin starts dragging taskID on a deep copy of the given columns.
// Returns nil when the task is not on the board.
func Begin(columns []model.Column, taskID int64) *Session {
	s := &Session{columns: cloneColumns(columns), taskID: taskID}
	col, _ := s.locate(taskID)
	if col < 0 {
		return nil
	}
	s.sourceColumn = s.columns[col].ID
	return s
}

// TaskID returns the id of the task being dragged.
func (s *Session) TaskID() int64 { return s.taskID }

// Columns returns the session's local board state for rendering.
func (s *Session) Columns() []model.Column { return s.columns }

// OverTask moves the dragged task so it occupies the hovered task's
// position, shifting the hovered task down. Re-applying the same hover
// is a no-op; hovering the dragged task itself is ignored.
func (s *Session) OverTask(targetTaskID int64) {
	if targetTaskID == s.taskID {
		return
	}
	dragged, ok := s.remove(s.taskID)
	if !ok {
		return
	}
	col, idx := s.locate(targetTaskID)
	if col < 0 {
		// Hover target vanished mid-drag; put the task back at the end
		// of its source column.
		s.append(s.sourceColumn, dragged)
		return
	}
	dragged.ColumnID = s.columns[col].ID
	tasks := s.columns[col].Tasks
	tasks = append(tasks, model.Task{})
	copy(tasks[idx+1:], tasks[idx:])
	tasks[idx] = dragged
	s.columns[col].Tasks = tasks
}

// OverColumn appends the dragged task to the hovered column, for drops
// onto empty space. No-op when the task is already last in that column.
func (s *Session) OverColumn(columnID int64) {
	col := s.columnIndex(columnID)
	if col < 0 {
		return
	}
	tasks := s.columns[col].Tasks
	if n := len(tasks); n > 0 && tasks[n-1].ID == s.taskID {
		return
	}
	dragged, ok := s.remove(s.taskID)
	if !ok {
		return
	}
	s.append(columnID, dragged)
}

// End finishes the drag: every task in the source and destination
// columns gets a fresh gap-based sort key, and the combined changes are
// returned as the batch-reorder payload. An empty payload means the
// drag was a round trip back to the starting position.
func (s *Session) End(original []model.Column) []model.TaskReorder {
	col, _ := s.locate(s.taskID)
	if col < 0 {
		return nil
	}
	affected := map[int64]bool{s.sourceColumn: true, s.columns[col].ID: true}

	before := make(map[int64]model.Task)
	for _, c := range original {
		for _, t := range c.Tasks {
			before[t.ID] = t
		}
	}

	var moves []model.TaskReorder
	for ci := range s.columns {
		c := &s.columns[ci]
		if !affected[c.ID] {
			continue
		}
		for i := range c.Tasks {
			t := &c.Tasks[i]
			t.ColumnID = c.ID
			t.SortOrder = (i + 1) * SortOrderGap
			if prev, ok := before[t.ID]; ok && prev.ColumnID == t.ColumnID && prev.SortOrder == t.SortOrder {
				continue
			}
			moves = append(moves, model.TaskReorder{ID: t.ID, ColumnID: t.ColumnID, SortOrder: t.SortOrder})
		}
	}
	return moves
}

func (s *Session) columnIndex(columnID int64) int {
	for i := range s.columns {
		if s.columns[i].ID == columnID {
			return i
		}
	}
	return -1
}

// locate returns the column and task indexes of a task, or (-1, -1).
func (s *Session) locate(taskID int64) (int, int) {
	for ci := range s.columns {
		for ti := range s.columns[ci].Tasks {
			if s.columns[ci].Tasks[ti].ID == taskID {
				return ci, ti
			}
		}
	}
	return -1, -1
}

func (s *Session) remove(taskID int64) (model.Task, bool) {
	ci, ti := s.locate(taskID)
	if ci < 0 {
		return model.Task{}, false
	}
	t := s.columns[ci].Tasks[ti]
	s.columns[ci].Tasks = append(s.columns[ci].Tasks[:ti], s.columns[ci].Tasks[ti+1:]...)
	return t, true
}

func (s *Session) append(columnID int64, t model.Task) {
	ci := s.columnIndex(columnID)
	if ci < 0 {
		return
	}
	t.ColumnID = columnID
	s.columns[ci].Tasks = append(s.columns[ci].Tasks, t)
}

func cloneColumns(columns []model.Column) []model.Column {
	out := make([]model.Column, len(columns))
	for i, c := range columns {
		out[i] = c
		out[i].Tasks = append([]model.Task(nil), c.Tasks...)
	}
	return out
}
