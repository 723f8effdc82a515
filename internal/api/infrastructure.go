// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// HOSTS / CONTAINERS / SERVICES
// =============================================================================

// ListHosts returns monitored hosts.
func (c *Client) ListHosts(ctx context.Context) ([]model.Host, error) {
	var out []model.Host
	err := c.Get(ctx, "/infrastructure/hosts", &out)
	return out, err
}

// ListContainers returns containers, optionally filtered by host.
func (c *Client) ListContainers(ctx context.Context, hostID string) ([]model.Container, error) {
	var out []model.Container
	err := c.Get(ctx, "/infrastructure/containers"+Query("host_id", hostID), &out)
	return out, err
}

// ListServices returns monitored services.
func (c *Client) ListServices(ctx context.Context) ([]model.Service, error) {
	var out []model.Service
	err := c.Get(ctx, "/infrastructure/services", &out)
	return out, err
}

// =============================================================================
// INCIDENTS
// =============================================================================

// IncidentInput is the create/update body for an incident.
type IncidentInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Severity    string `json:"severity"`
	Status      string `json:"status,omitempty"`
}

// ListIncidents returns incidents.
func (c *Client) ListIncidents(ctx context.Context) ([]model.Incident, error) {
	var out []model.Incident
	err := c.Get(ctx, "/infrastructure/incidents", &out)
	return out, err
}

// CreateIncident opens an incident.
func (c *Client) CreateIncident(ctx context.Context, in IncidentInput) (*model.Incident, error) {
	var out model.Incident
	if err := c.Post(ctx, "/infrastructure/incidents", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIncident edits or resolves an incident.
func (c *Client) UpdateIncident(ctx context.Context, id int64, in IncidentInput) (*model.Incident, error) {
	var out model.Incident
	if err := c.Put(ctx, "/infrastructure/incidents/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteIncident removes an incident.
func (c *Client) DeleteIncident(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/infrastructure/incidents/"+itoa(id))
}

// =============================================================================
// INTEGRATIONS
// =============================================================================

// IntegrationInput is the create/update body for an integration.
type IntegrationInput struct {
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	URL       string         `json:"url,omitempty"`
	Config    map[string]any `json:"config,omitempty"`
	IsEnabled bool           `json:"is_enabled"`
}

// ListIntegrations returns the configured external connectors.
func (c *Client) ListIntegrations(ctx context.Context) ([]model.Integration, error) {
	var out []model.Integration
	err := c.Get(ctx, "/infrastructure/integrations", &out)
	return out, err
}

// CreateIntegration adds a connector.
func (c *Client) CreateIntegration(ctx context.Context, in IntegrationInput) (*model.Integration, error) {
	var out model.Integration
	if err := c.Post(ctx, "/infrastructure/integrations", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIntegration edits a connector.
func (c *Client) UpdateIntegration(ctx context.Context, id int64, in IntegrationInput) (*model.Integration, error) {
	var out model.Integration
	if err := c.Put(ctx, "/infrastructure/integrations/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteIntegration removes a connector.
func (c *Client) DeleteIntegration(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/infrastructure/integrations/"+itoa(id))
}

// TestIntegration checks connectivity of a connector.
func (c *Client) TestIntegration(ctx context.Context, id int64) (*model.IntegrationTestResult, error) {
	var out model.IntegrationTestResult
	if err := c.Request(ctx, http.MethodPost, "/infrastructure/integrations/"+itoa(id)+"/test", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncIntegration triggers an immediate sync of a connector.
func (c *Client) SyncIntegration(ctx context.Context, id int64) error {
	return c.Request(ctx, http.MethodPost, "/infrastructure/integrations/"+itoa(id)+"/sync", nil, nil)
}
