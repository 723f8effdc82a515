// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numPrinter formats large numbers with locale separators (12,345 mi).
var numPrinter = message.NewPrinter(language.English)

// FormatNumber renders an integer with thousands separators.
func FormatNumber(n int) string {
	return numPrinter.Sprintf("%d", n)
}

// FormatMiles renders a mileage value ("12,345 mi").
func FormatMiles(n int) string {
	return numPrinter.Sprintf("%d mi", n)
}

// FormatMoney renders a dollar amount.
func FormatMoney(v float64) string {
	return numPrinter.Sprintf("$%.2f", v)
}

// FormatPercent renders a 0..1 fraction as a percentage.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

// Truncate shortens s to maxWidth terminal cells, appending an
// ellipsis, with wide-rune awareness.
func Truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// PadRight pads s with spaces to exactly width cells, truncating when
// over.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return s + spaces(width-runewidth.StringWidth(s))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// visibleWidth measures the rendered cell width of a possibly styled
// string.
func visibleWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}

// stripANSI drops CSI escape sequences for width measurement.
func stripANSI(s string) string {
	var b []rune
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b = append(b, r)
		}
	}
	return string(b)
}

// RelativeTime renders a timestamp as "3h ago" style text.
func RelativeTime(t time.Time) string {
	return relativeTime(t, time.Now())
}

func relativeTime(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
