// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// PROJECTS / KANBAN
// =============================================================================

// Project is a kanban project with its ordered columns.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Columns     []Column  `json:"columns,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Column is one kanban lane. Tasks are ordered by ascending SortOrder.
type Column struct {
	ID           int64  `json:"id"`
	ProjectID    int64  `json:"project_id"`
	Name         string `json:"name"`
	Color        string `json:"color,omitempty"`
	WIPLimit     *int   `json:"wip_limit,omitempty"`
	IsDoneColumn bool   `json:"is_done_column"`
	Tasks        []Task `json:"tasks"`
}

// TaskPriority is the urgency of a kanban task.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityNormal   TaskPriority = "normal"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

// Task is a kanban card. SortOrder uses gap-based keys ((index+1)*1000)
// so inserts between neighbors rarely force renumbering.
type Task struct {
	ID             int64        `json:"id"`
	ColumnID       int64        `json:"column_id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Priority       TaskPriority `json:"priority"`
	DueDate        *time.Time   `json:"due_date,omitempty"`
	EstimatedHours *float64     `json:"estimated_hours,omitempty"`
	Labels         []string     `json:"labels,omitempty"`
	SortOrder      int          `json:"sort_order"`
	CreatedAt      time.Time    `json:"created_at"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
}

// TaskReorder is one element of the batch-reorder payload submitted after
// a drag ends.
type TaskReorder struct {
	ID        int64 `json:"id"`
	ColumnID  int64 `json:"column_id"`
	SortOrder int   `json:"sort_order"`
}

// ProjectStats summarizes task counts across projects.
type ProjectStats struct {
	TotalProjects  int `json:"total_projects"`
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
}
