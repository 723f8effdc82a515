// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// INFRASTRUCTURE
// =============================================================================

// Host is a monitored machine.
type Host struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	OS         string     `json:"os,omitempty"`
	Status     string     `json:"status"`
	CPUPercent *float64   `json:"cpu_percent,omitempty"`
	MemPercent *float64   `json:"mem_percent,omitempty"`
	LastSeen   *time.Time `json:"last_seen,omitempty"`
}

// Container is a managed container on a host.
type Container struct {
	ID     int64  `json:"id"`
	HostID int64  `json:"host_id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Status string `json:"status"`
	Ports  string `json:"ports,omitempty"`
	Uptime string `json:"uptime,omitempty"`
}

// Service is a monitored endpoint or daemon.
type Service struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	URL       string     `json:"url,omitempty"`
	Status    string     `json:"status"`
	LatencyMs *int       `json:"latency_ms,omitempty"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}

// Incident tracks an infrastructure outage or degradation.
type Incident struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Severity    string     `json:"severity"`
	Status      string     `json:"status"`
	OpenedAt    time.Time  `json:"opened_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// Integration is a configured external connector (Home Assistant,
// Docker, Portainer, ...) the backend syncs from.
type Integration struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Kind         string     `json:"kind"`
	URL          string     `json:"url,omitempty"`
	IsEnabled    bool       `json:"is_enabled"`
	Status       string     `json:"status,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// IntegrationTestResult is the outcome of POST .../integrations/:id/test.
type IntegrationTestResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}
