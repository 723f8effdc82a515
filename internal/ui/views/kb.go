// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/jeranaias/lifehub-tui/internal/model"
	"github.com/jeranaias/lifehub-tui/internal/ui/components"
	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// KB is the knowledge-base browser: article list with a markdown
// preview, plus a revision history pane toggled per article.
type KB struct {
	ctx Context

	articles  []model.Article
	stats     *model.KBStats
	cursor    int
	article   *model.Article
	revisions []model.Revision
	showRevs  bool
	loaded    bool
}

// NewKB creates the knowledge-base view.
func NewKB(ctx Context) *KB {
	return &KB{ctx: ctx}
}

type kbLoadedMsg struct {
	articles []model.Article
	stats    *model.KBStats
}

type articleLoadedMsg struct {
	article   *model.Article
	revisions []model.Revision
}

type revisionRestoredMsg struct {
	article *model.Article
}

func (k *KB) Title() string { return "Knowledge Base" }

func (k *KB) Init() tea.Cmd {
	client := k.ctx.Client
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		var msg kbLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			articles, err := client.ListArticles(gctx, "")
			msg.articles = articles
			return err
		})
		g.Go(func() error {
			stats, err := client.GetKBStats(gctx)
			msg.stats = stats
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return msg, nil
	})
}

func (k *KB) loadArticle() tea.Cmd {
	if k.cursor >= len(k.articles) {
		return nil
	}
	client := k.ctx.Client
	id := k.articles[k.cursor].ID
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		var msg articleLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			article, err := client.GetArticle(gctx, id)
			msg.article = article
			return err
		})
		g.Go(func() error {
			revs, err := client.ListRevisions(gctx, id)
			msg.revisions = revs
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return msg, nil
	})
}

func (k *KB) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case kbLoadedMsg:
		k.articles = m.articles
		k.stats = m.stats
		k.loaded = true
		if k.cursor >= len(k.articles) {
			k.cursor = 0
		}
		return k.loadArticle()
	case articleLoadedMsg:
		k.article = m.article
		k.revisions = m.revisions
	case revisionRestoredMsg:
		k.article = m.article
		k.showRevs = false
		return tea.Batch(k.Init(), func() tea.Msg {
			return ToastMsg{Message: "Revision restored"}
		})
	case tea.KeyMsg:
		switch m.String() {
		case "up", "k":
			if k.cursor > 0 {
				k.cursor--
				return k.loadArticle()
			}
		case "down", "j":
			if k.cursor < len(k.articles)-1 {
				k.cursor++
				return k.loadArticle()
			}
		case "v":
			k.showRevs = !k.showRevs
		case "R":
			return k.restoreLatestShown()
		case "r":
			return k.Init()
		}
	}
	return nil
}

// restoreLatestShown restores the newest listed revision of the open
// article. The server creates a fresh revision for the replaced
// content, so nothing is lost.
func (k *KB) restoreLatestShown() tea.Cmd {
	if !k.showRevs || k.article == nil || len(k.revisions) == 0 {
		return nil
	}
	client := k.ctx.Client
	articleID := k.article.ID
	revID := k.revisions[0].ID
	return fetch(func(ctx context.Context) (tea.Msg, error) {
		article, err := client.RestoreRevision(ctx, articleID, revID)
		if err != nil {
			return nil, err
		}
		return revisionRestoredMsg{article: article}, nil
	})
}

func (k *KB) View(width, height int) string {
	theme := k.ctx.Theme
	if !k.loaded {
		return theme.Muted.Render("Loading knowledge base…")
	}
	if len(k.articles) == 0 {
		return theme.Muted.Render("No articles yet.")
	}

	layout := styles.LayoutForWidth(width)
	listWidth := 36
	if layout == styles.LayoutNarrow {
		return k.renderList(width - 2)
	}

	right := k.renderArticle(width - listWidth - 4)
	if k.showRevs {
		right = k.renderRevisions(width - listWidth - 4)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, k.renderList(listWidth), right)
}

func (k *KB) renderList(width int) string {
	theme := k.ctx.Theme
	var b strings.Builder
	if k.stats != nil {
		b.WriteString(theme.Muted.Render(fmt.Sprintf(
			"%d articles · %d revisions\n",
			k.stats.TotalArticles, k.stats.TotalRevisions)))
	}
	for i, a := range k.articles {
		line := components.Truncate(a.Title, width-4)
		if i == k.cursor {
			line = theme.SelectedRow.Render(components.PadRight(line, width-2))
		}
		b.WriteString(line + "\n")
		if a.Category != "" {
			b.WriteString(theme.Muted.Render("  "+a.Category) + "\n")
		}
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (k *KB) renderArticle(width int) string {
	theme := k.ctx.Theme
	if k.article == nil {
		return theme.Muted.Render("Select an article.")
	}
	header := theme.CardTitle.Render(k.article.Title)
	if len(k.article.Tags) > 0 {
		header += "  " + theme.Info.Render(strings.Join(k.article.Tags, " · "))
	}
	body := components.RenderMarkdown(k.article.Content, width-4)
	footer := theme.Muted.Render(fmt.Sprintf(
		"updated %s · v = history", components.RelativeTime(k.article.UpdatedAt)))
	return theme.Card.Width(width).Render(header + "\n" + body + "\n" + footer)
}

func (k *KB) renderRevisions(width int) string {
	theme := k.ctx.Theme
	var b strings.Builder
	b.WriteString(theme.CardTitle.Render("Revisions") + "\n")
	if len(k.revisions) == 0 {
		b.WriteString(theme.Muted.Render("No earlier versions."))
	}
	for i, rev := range k.revisions {
		label := fmt.Sprintf("#%d  %s", rev.ID, rev.CreatedAt.Format("Jan 2 15:04"))
		if i == 0 {
			label += theme.Muted.Render("  (R restores)")
		}
		b.WriteString(label + "\n")
		b.WriteString(theme.Muted.Render(components.Truncate(
			strings.ReplaceAll(rev.Content, "\n", " "), width-6)) + "\n")
	}
	return theme.Card.Width(width).Render(b.String())
}
