// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lifehub-tui/internal/ui/styles"
)

// ToastKind classifies a toast notification.
type ToastKind int

const (
	ToastStatus ToastKind = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Auto-dismiss durations. Errors linger longest so they can be read.
const (
	StatusToastDuration = 4 * time.Second
	ErrorToastDuration  = 8 * time.Second
)

var toastSeq atomic.Int64

// Toast is a non-blocking corner notification that auto-dismisses.
// Unlike a modal, the rest of the UI stays interactive underneath.
type Toast struct {
	ID        int64
	Kind      ToastKind
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// ToastExpiredMsg asks the shell to drop an expired toast.
type ToastExpiredMsg struct{ ID int64 }

// NewErrorToast creates an error toast.
func NewErrorToast(message string) Toast {
	return newToast(ToastError, message, ErrorToastDuration)
}

// NewStatusToast creates an informational toast.
func NewStatusToast(message string) Toast {
	return newToast(ToastStatus, message, StatusToastDuration)
}

// NewSuccessToast creates a success toast.
func NewSuccessToast(message string) Toast {
	return newToast(ToastSuccess, message, StatusToastDuration)
}

func newToast(kind ToastKind, message string, d time.Duration) Toast {
	return Toast{
		ID:        toastSeq.Add(1),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ExpireCmd schedules the toast's dismissal message.
func (t Toast) ExpireCmd() tea.Cmd {
	id := t.ID
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Render draws the toast body.
func (t Toast) Render(theme *styles.Theme) string {
	switch t.Kind {
	case ToastError:
		return theme.ErrorBox.Render(t.Message)
	case ToastWarning:
		return theme.Warning.Render(t.Message)
	case ToastSuccess:
		return theme.Success.Render(t.Message)
	default:
		return theme.Info.Render(t.Message)
	}
}
