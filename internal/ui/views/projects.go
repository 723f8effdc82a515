// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lifehub-tui/internal/kanban"
	"github.com/jeranaias/lifehub-tui/internal/model"
	"github.com/jeranaias/lifehub-tui/internal/ui/components"
)

// Projects is the kanban page. Space lifts the focused task into a drag
// session; arrows move it across the local board; space again drops it
// and submits the batch reorder. Success and failure both resolve with
// a server refetch, so the board always converges on canonical state.
type Projects struct {
	ctx Context

	projects []model.Project
	current  int
	board    []model.Column
	loaded   bool

	focusCol  int
	focusTask int
	drag      *kanban.Session
}

// NewProjects creates the projects view.
func NewProjects(ctx Context) *Projects {
	return &Projects{ctx: ctx}
}

type projectsLoadedMsg struct {
	projects []model.Project
}

type boardLoadedMsg struct {
	projectID int64
	columns   []model.Column
}

type reorderDoneMsg struct {
	projectID int64
	err       error
}

func (p *Projects) Title() string { return "Projects" }

func (p *Projects) Init() tea.Cmd {
	client := p.ctx.Client
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		projects, err := client.ListProjects(ctx)
		if err != nil {
			return nil, err
		}
		return projectsLoadedMsg{projects: projects}, nil
	})
}

// refetchBoard pulls canonical columns; used for initial load, drag
// commit, and drag rollback alike.
func (p *Projects) refetchBoard() tea.Cmd {
	if len(p.projects) == 0 {
		return nil
	}
	client := p.ctx.Client
	id := p.projects[p.current].ID
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		proj, err := client.GetProject(ctx, id)
		if err != nil {
			return nil, err
		}
		return boardLoadedMsg{projectID: id, columns: proj.Columns}, nil
	})
}

func (p *Projects) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case projectsLoadedMsg:
		p.projects = m.projects
		p.loaded = true
		if p.current >= len(p.projects) {
			p.current = 0
		}
		return p.refetchBoard()
	case boardLoadedMsg:
		if len(p.projects) > 0 && p.projects[p.current].ID == m.projectID {
			p.board = m.columns
			p.drag = nil
			p.clampFocus()
		}
	case reorderDoneMsg:
		cmds := []tea.Cmd{p.refetchBoard()}
		if m.err != nil {
			cmds = append(cmds, func() tea.Msg {
				return ToastMsg{Message: "Move failed: " + m.err.Error(), IsError: true}
			})
		}
		return tea.Batch(cmds...)
	case tea.KeyMsg:
		return p.handleKey(m)
	}
	return nil
}

func (p *Projects) handleKey(m tea.KeyMsg) tea.Cmd {
	switch m.String() {
	case "[":
		if p.current > 0 {
			p.current--
			return p.refetchBoard()
		}
	case "]":
		if p.current < len(p.projects)-1 {
			p.current++
			return p.refetchBoard()
		}
	case "r":
		return p.refetchBoard()
	case " ":
		if p.drag == nil {
			return p.liftTask()
		}
		return p.dropTask()
	case "esc":
		if p.drag != nil {
			// Abandon the drag; local state falls back to the last
			// canonical board.
			p.drag = nil
		}
	case "left", "h":
		p.moveFocus(-1, 0)
	case "right", "l":
		p.moveFocus(1, 0)
	case "up", "k":
		p.moveFocus(0, -1)
	case "down", "j":
		p.moveFocus(0, 1)
	}
	return nil
}

// columns returns the board being rendered: the drag session's local
// clone while a drag is live, the canonical board otherwise.
func (p *Projects) columns() []model.Column {
	if p.drag != nil {
		return p.drag.Columns()
	}
	return p.board
}

func (p *Projects) liftTask() tea.Cmd {
	cols := p.columns()
	if p.focusCol >= len(cols) || p.focusTask >= len(cols[p.focusCol].Tasks) {
		return nil
	}
	task := cols[p.focusCol].Tasks[p.focusTask]
	p.drag = kanban.Begin(p.board, task.ID)
	return nil
}

func (p *Projects) dropTask() tea.Cmd {
	if p.drag == nil {
		return nil
	}
	moves := p.drag.End(p.board)
	p.board = p.drag.Columns()
	p.drag = nil
	if len(moves) == 0 {
		return nil
	}
	client := p.ctx.Client
	id := p.projects[p.current].ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := client.BatchReorderTasks(ctx, id, moves)
		return reorderDoneMsg{projectID: id, err: err}
	}
}

// moveFocus moves the cursor; during a drag it moves the lifted task
// instead, by hovering the neighbor position.
func (p *Projects) moveFocus(dx, dy int) {
	cols := p.columns()
	if len(cols) == 0 {
		return
	}

	if p.drag != nil {
		p.moveDragged(dx, dy)
		return
	}

	p.focusCol = clamp(p.focusCol+dx, 0, len(cols)-1)
	p.clampFocus()
	if dy != 0 && len(cols[p.focusCol].Tasks) > 0 {
		p.focusTask = clamp(p.focusTask+dy, 0, len(cols[p.focusCol].Tasks)-1)
	}
}

func (p *Projects) moveDragged(dx, dy int) {
	cols := p.drag.Columns()
	ci, ti := locateTask(cols, p.drag.TaskID())
	if ci < 0 {
		return
	}

	switch {
	case dx != 0:
		target := clamp(ci+dx, 0, len(cols)-1)
		if target == ci {
			return
		}
		tasks := cols[target].Tasks
		if len(tasks) == 0 {
			p.drag.OverColumn(cols[target].ID)
		} else {
			idx := clamp(ti, 0, len(tasks)-1)
			p.drag.OverTask(tasks[idx].ID)
		}
	case dy > 0:
		tasks := cols[ci].Tasks
		if ti+1 < len(tasks) {
			// Hovering the task after the next slot pushes us down one.
			if ti+2 < len(tasks) {
				p.drag.OverTask(tasks[ti+2].ID)
			} else {
				p.drag.OverColumn(cols[ci].ID)
			}
		}
	case dy < 0:
		tasks := cols[ci].Tasks
		if ti > 0 {
			p.drag.OverTask(tasks[ti-1].ID)
		}
	}
	p.syncFocusToDragged()
}

func (p *Projects) syncFocusToDragged() {
	ci, ti := locateTask(p.drag.Columns(), p.drag.TaskID())
	if ci >= 0 {
		p.focusCol, p.focusTask = ci, ti
	}
}

func (p *Projects) clampFocus() {
	cols := p.columns()
	if len(cols) == 0 {
		p.focusCol, p.focusTask = 0, 0
		return
	}
	p.focusCol = clamp(p.focusCol, 0, len(cols)-1)
	if n := len(cols[p.focusCol].Tasks); n == 0 {
		p.focusTask = 0
	} else {
		p.focusTask = clamp(p.focusTask, 0, n-1)
	}
}

func (p *Projects) View(width, height int) string {
	theme := p.ctx.Theme
	if !p.loaded {
		return theme.Muted.Render("Loading projects…")
	}
	if len(p.projects) == 0 {
		return theme.Muted.Render("No projects yet.")
	}

	title := theme.Title.Render(p.projects[p.current].Name)
	if p.drag != nil {
		title += theme.Warning.Render("  [moving task · space drops, esc cancels]")
	}

	cols := p.columns()
	colWidth := 30
	if n := len(cols); n > 0 && width/n < colWidth+2 {
		colWidth = width/n - 2
		if colWidth < 16 {
			colWidth = 16
		}
	}

	var rendered []string
	for ci, col := range cols {
		rendered = append(rendered, p.renderColumn(col, ci, colWidth))
	}
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (p *Projects) renderColumn(col model.Column, ci, width int) string {
	theme := p.ctx.Theme

	header := theme.KanbanColumnTitle.Render(col.Name) +
		theme.Muted.Render(fmt.Sprintf(" %d", len(col.Tasks)))
	if col.WIPLimit != nil {
		label := fmt.Sprintf("/%d", *col.WIPLimit)
		if len(col.Tasks) > *col.WIPLimit {
			header += theme.KanbanWIPOver.Render(label)
		} else {
			header += theme.Muted.Render(label)
		}
	}

	var cards []string
	for ti, task := range col.Tasks {
		style := theme.KanbanCard
		switch {
		case p.drag != nil && task.ID == p.drag.TaskID():
			style = theme.KanbanCardLifted
		case p.drag == nil && ci == p.focusCol && ti == p.focusTask:
			style = theme.KanbanCardFocused
		}
		body := components.Truncate(task.Title, width-4)
		if task.Priority == model.PriorityHigh || task.Priority == model.PriorityCritical {
			body = theme.Danger.Render("! ") + body
		}
		if task.DueDate != nil {
			body += "\n" + theme.Muted.Render(task.DueDate.Format("Jan 2"))
		}
		cards = append(cards, style.Width(width-2).Render(body))
	}
	body := header
	if len(cards) > 0 {
		body += "\n" + strings.Join(cards, "\n")
	}
	return theme.KanbanColumn.Width(width).Render(body)
}

func locateTask(cols []model.Column, taskID int64) (int, int) {
	for ci := range cols {
		for ti := range cols[ci].Tasks {
			if cols[ci].Tasks[ti].ID == taskID {
				return ci, ti
			}
		}
	}
	return -1, -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
