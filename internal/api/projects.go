// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// PROJECTS
// =============================================================================

// ProjectInput is the create/update body for a project.
type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListProjects returns all projects (without columns).
func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	err := c.Get(ctx, "/projects", &out)
	return out, err
}

// GetProject returns one project with columns and tasks.
func (c *Client) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	var out model.Project
	if err := c.Get(ctx, "/projects/"+itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject creates a project with default columns.
func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*model.Project, error) {
	var out model.Project
	if err := c.Post(ctx, "/projects", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject updates a project.
func (c *Client) UpdateProject(ctx context.Context, id int64, in ProjectInput) (*model.Project, error) {
	var out model.Project
	if err := c.Put(ctx, "/projects/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project and its columns/tasks.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/projects/"+itoa(id))
}

// GetProjectStats returns cross-project task counts.
func (c *Client) GetProjectStats(ctx context.Context) (*model.ProjectStats, error) {
	var out model.ProjectStats
	if err := c.Get(ctx, "/projects/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// =============================================================================
// COLUMNS
// =============================================================================

// ColumnInput is the create/update body for a column.
type ColumnInput struct {
	Name         string `json:"name"`
	Color        string `json:"color,omitempty"`
	WIPLimit     *int   `json:"wip_limit,omitempty"`
	IsDoneColumn bool   `json:"is_done_column"`
}

// CreateColumn adds a column to a project.
func (c *Client) CreateColumn(ctx context.Context, projectID int64, in ColumnInput) (*model.Column, error) {
	var out model.Column
	if err := c.Post(ctx, "/projects/"+itoa(projectID)+"/columns", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateColumn edits a column.
func (c *Client) UpdateColumn(ctx context.Context, projectID, columnID int64, in ColumnInput) (*model.Column, error) {
	var out model.Column
	if err := c.Put(ctx, "/projects/"+itoa(projectID)+"/columns/"+itoa(columnID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteColumn removes a column and its tasks.
func (c *Client) DeleteColumn(ctx context.Context, projectID, columnID int64) error {
	return c.Delete(ctx, "/projects/"+itoa(projectID)+"/columns/"+itoa(columnID))
}

// =============================================================================
// TASKS
// =============================================================================

// TaskInput is the create/update body for a task.
type TaskInput struct {
	ColumnID       int64              `json:"column_id"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	Priority       model.TaskPriority `json:"priority,omitempty"`
	DueDate        *string            `json:"due_date,omitempty"`
	EstimatedHours *float64           `json:"estimated_hours,omitempty"`
	Labels         []string           `json:"labels,omitempty"`
}

// CreateTask creates a task at the end of its column.
func (c *Client) CreateTask(ctx context.Context, projectID int64, in TaskInput) (*model.Task, error) {
	var out model.Task
	if err := c.Post(ctx, "/projects/"+itoa(projectID)+"/tasks", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask edits a task.
func (c *Client) UpdateTask(ctx context.Context, projectID, taskID int64, in TaskInput) (*model.Task, error) {
	var out model.Task
	if err := c.Put(ctx, "/projects/"+itoa(projectID)+"/tasks/"+itoa(taskID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID int64) error {
	return c.Delete(ctx, "/projects/"+itoa(projectID)+"/tasks/"+itoa(taskID))
}

// BatchReorderTasks submits the sort orders computed at drag-end. The
// payload carries {id, column_id, sort_order} for every affected task.
func (c *Client) BatchReorderTasks(ctx context.Context, projectID int64, moves []model.TaskReorder) error {
	return c.Request(ctx, http.MethodPost, "/projects/"+itoa(projectID)+"/tasks/batch-reorder", moves, nil)
}
