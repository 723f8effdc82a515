// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// statusStyle hands back a lipgloss render function; every status bucket
// must produce usable output.
func TestInfraStatusStyle(t *testing.T) {
	v := NewInfra(Context{Theme: styles.NewTheme("catppuccin")})
	for _, status := range []string{"up", "degraded", "down", "resolved", "mystery"} {
		out := v.statusStyle(status)(status)
		assert.Contains(t, out, status)
	}
}
