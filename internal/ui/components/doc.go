// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides shared UI components for the lifehub TUI:
// the header bar, navigation sidebar, status bar, spinners, toasts,
// confirm modals, and markdown/code rendering helpers used by the page
// views.
package components
