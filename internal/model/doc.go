// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the wire and domain types exchanged with the
// Life Hub backend. Field names capture semantics; json tags capture the
// wire format. Types here carry no behavior beyond small derivations;
// the evaluation cores live in internal/maintenance, internal/kanban,
// internal/devices and internal/chat.
package model
