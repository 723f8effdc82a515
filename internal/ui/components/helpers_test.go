// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12,345", FormatNumber(12345))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestFormatMiles(t *testing.T) {
	assert.Equal(t, "45,500 mi", FormatMiles(45500))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "80%", FormatPercent(0.8))
	assert.Equal(t, "100%", FormatPercent(1.0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
	// Wide runes count as two cells.
	assert.Equal(t, "日…", Truncate("日本語", 3))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcd…", PadRight("abcdefg", 5))
}

func TestVisibleWidthIgnoresANSI(t *testing.T) {
	styled := "\x1b[1;31mred\x1b[0m"
	assert.Equal(t, 3, visibleWidth(styled))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "just now", relativeTime(now.Add(-30*time.Second), now))
	assert.Equal(t, "5m ago", relativeTime(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", relativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d ago", relativeTime(now.Add(-48*time.Hour), now))
	assert.Equal(t, "never", relativeTime(time.Time{}, now))
	// The exported single-argument form measures against the clock.
	assert.Equal(t, "just now", RelativeTime(time.Now()))
}
