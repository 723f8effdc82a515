// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/lifehub-tui/internal/model"
	"github.com/jeranaias/lifehub-tui/internal/ui/components"
	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// Notes is the notes browser: folders on the left, note list in the
// middle, rendered markdown preview on the right. Narrow layouts
// collapse to a single pane at a time.
type Notes struct {
	ctx Context

	folders []model.Folder
	notes   []model.Note
	folder  int // index into folders; 0 = All
	cursor  int
	preview *model.Note
	loaded  bool
}

// NewNotes creates the notes view.
func NewNotes(ctx Context) *Notes {
	return &Notes{ctx: ctx}
}

type notesLoadedMsg struct {
	folders []model.Folder
	notes   []model.Note
}

type notePreviewMsg struct {
	note *model.Note
}

func (n *Notes) Title() string { return "Notes" }

func (n *Notes) Init() tea.Cmd {
	return n.reload()
}

func (n *Notes) reload() tea.Cmd {
	client := n.ctx.Client
	folderID := n.selectedFolderID()
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		var msg notesLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			folders, err := client.ListFolders(gctx)
			msg.folders = folders
			return err
		})
		g.Go(func() error {
			notes, err := client.ListNotes(gctx, folderID, "")
			msg.notes = notes
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return msg, nil
	})
}

// selectedFolderID maps the folder cursor to the ListNotes filter; the
// synthetic "All" entry at index 0 means no filter.
func (n *Notes) selectedFolderID() string {
	if n.folder == 0 || n.folder > len(n.folders) {
		return ""
	}
	return fmt.Sprintf("%d", n.folders[n.folder-1].ID)
}

func (n *Notes) loadPreview() tea.Cmd {
	if n.cursor >= len(n.notes) {
		return nil
	}
	client := n.ctx.Client
	id := n.notes[n.cursor].ID
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		note, err := client.GetNote(ctx, id)
		if err != nil {
			return nil, err
		}
		return notePreviewMsg{note: note}, nil
	})
}

func (n *Notes) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case notesLoadedMsg:
		n.folders = m.folders
		n.notes = m.notes
		n.loaded = true
		if n.cursor >= len(n.notes) {
			n.cursor = 0
		}
		n.preview = nil
		return n.loadPreview()
	case notePreviewMsg:
		n.preview = m.note
	case tea.KeyMsg:
		switch m.String() {
		case "up", "k":
			if n.cursor > 0 {
				n.cursor--
				return n.loadPreview()
			}
		case "down", "j":
			if n.cursor < len(n.notes)-1 {
				n.cursor++
				return n.loadPreview()
			}
		case "left", "h", "[":
			if n.folder > 0 {
				n.folder--
				n.cursor = 0
				return n.reload()
			}
		case "right", "l", "]":
			if n.folder < len(n.folders) {
				n.folder++
				n.cursor = 0
				return n.reload()
			}
		case "r":
			return n.reload()
		}
	}
	return nil
}

func (n *Notes) View(width, height int) string {
	theme := n.ctx.Theme
	if !n.loaded {
		return theme.Muted.Render("Loading notes…")
	}

	layout := styles.LayoutForWidth(width)
	listWidth := 34
	if layout == styles.LayoutNarrow {
		listWidth = width - 2
	}

	list := n.renderList(listWidth)
	if layout == styles.LayoutNarrow {
		return list
	}

	previewWidth := width - listWidth - 4
	return lipgloss.JoinHorizontal(lipgloss.Top, list, n.renderPreview(previewWidth))
}

func (n *Notes) renderList(width int) string {
	theme := n.ctx.Theme
	out := theme.Subtitle.Render(n.folderLabel()) + "\n"
	if len(n.notes) == 0 {
		return out + theme.Muted.Render("No notes here.")
	}
	for i, note := range n.notes {
		line := components.Truncate(note.Title, width-6)
		if note.IsPinned {
			line = "📌 " + line
		}
		if i == n.cursor {
			out += theme.SelectedRow.Render(components.PadRight(line, width-2))
		} else {
			out += components.PadRight(line, width-2)
		}
		out += "\n" + theme.Muted.Render("  "+components.RelativeTime(note.UpdatedAt)) + "\n"
	}
	return lipgloss.NewStyle().Width(width).Render(out)
}

func (n *Notes) folderLabel() string {
	if n.folder == 0 || n.folder > len(n.folders) {
		return "All Notes"
	}
	f := n.folders[n.folder-1]
	if f.Icon != "" {
		return f.Icon + " " + f.Name
	}
	return f.Name
}

func (n *Notes) renderPreview(width int) string {
	theme := n.ctx.Theme
	if n.preview == nil {
		return theme.Muted.Render("Select a note to preview it.")
	}
	body := components.RenderMarkdown(n.preview.Content, width-4)
	return theme.Card.Width(width).Render(
		theme.CardTitle.Render(n.preview.Title) + "\n" + body)
}
