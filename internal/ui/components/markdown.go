// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// markdown rendering is shared by notes, knowledge-base articles, and
// chat replies. Renderers are cached per wrap width since glamour
// renderer construction is not cheap.
var (
	mdMu        sync.Mutex
	mdRenderers = map[int]*glamour.TermRenderer{}
)

// RenderMarkdown renders markdown for the terminal at the given wrap
// width. Falls back to the raw text if rendering fails.
func RenderMarkdown(text string, width int) string {
	if width < 20 {
		width = 20
	}
	mdMu.Lock()
	r, ok := mdRenderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdMu.Unlock()
			return text
		}
		mdRenderers[width] = r
	}
	mdMu.Unlock()

	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
