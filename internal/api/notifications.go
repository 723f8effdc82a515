// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeranaias/lifehub-tui/internal/model"
)

// =============================================================================
// CHANNELS
// =============================================================================

// ChannelInput is the create/update body for a notification channel.
type ChannelInput struct {
	Name        string            `json:"name"`
	ChannelType model.ChannelType `json:"channel_type"`
	Config      map[string]any    `json:"config,omitempty"`
	IsEnabled   bool              `json:"is_enabled"`
}

// ListChannels returns the configured channels.
func (c *Client) ListChannels(ctx context.Context) ([]model.NotificationChannel, error) {
	var out []model.NotificationChannel
	err := c.Get(ctx, "/notifications/channels", &out)
	return out, err
}

// CreateChannel adds a channel.
func (c *Client) CreateChannel(ctx context.Context, in ChannelInput) (*model.NotificationChannel, error) {
	var out model.NotificationChannel
	if err := c.Post(ctx, "/notifications/channels", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateChannel edits a channel.
func (c *Client) UpdateChannel(ctx context.Context, id int64, in ChannelInput) (*model.NotificationChannel, error) {
	var out model.NotificationChannel
	if err := c.Put(ctx, "/notifications/channels/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteChannel removes a channel.
func (c *Client) DeleteChannel(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/notifications/channels/"+itoa(id))
}

// TestChannel sends a test notification through a channel.
func (c *Client) TestChannel(ctx context.Context, id int64) error {
	return c.Request(ctx, http.MethodPost, "/notifications/channels/"+itoa(id)+"/test", nil, nil)
}

// ListChannelSchemas returns the config field schemas per channel type.
func (c *Client) ListChannelSchemas(ctx context.Context) ([]model.ChannelSchema, error) {
	var out []model.ChannelSchema
	err := c.Get(ctx, "/notifications/channels/schemas", &out)
	return out, err
}

// =============================================================================
// RULES
// =============================================================================

// RuleInput is the create/update body for a notification rule.
type RuleInput struct {
	Name            string                `json:"name"`
	Description     string                `json:"description,omitempty"`
	Module          string                `json:"module,omitempty"`
	Priority        int                   `json:"priority"`
	RuleType        model.RuleType        `json:"rule_type"`
	EventName       string                `json:"event_name,omitempty"`
	ScheduleConfig  *model.ScheduleConfig `json:"schedule_config,omitempty"`
	Conditions      []model.RuleCondition `json:"conditions,omitempty"`
	TitleTemplate   string                `json:"title_template"`
	BodyTemplate    string                `json:"body_template"`
	ChannelIDs      []int64               `json:"channel_ids,omitempty"`
	CooldownMinutes int                   `json:"cooldown_minutes"`
	IsEnabled       bool                  `json:"is_enabled"`
}

// ListRules returns the configured rules.
func (c *Client) ListRules(ctx context.Context) ([]model.NotificationRule, error) {
	var out []model.NotificationRule
	err := c.Get(ctx, "/notifications/rules", &out)
	return out, err
}

// CreateRule adds a rule.
func (c *Client) CreateRule(ctx context.Context, in RuleInput) (*model.NotificationRule, error) {
	var out model.NotificationRule
	if err := c.Post(ctx, "/notifications/rules", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRule edits a rule.
func (c *Client) UpdateRule(ctx context.Context, id int64, in RuleInput) (*model.NotificationRule, error) {
	var out model.NotificationRule
	if err := c.Put(ctx, "/notifications/rules/"+itoa(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRule removes a rule.
func (c *Client) DeleteRule(ctx context.Context, id int64) error {
	return c.Delete(ctx, "/notifications/rules/"+itoa(id))
}

// TriggerRule fires a rule immediately, bypassing its schedule.
func (c *Client) TriggerRule(ctx context.Context, id int64) error {
	return c.Request(ctx, http.MethodPost, "/notifications/rules/"+itoa(id)+"/trigger", nil, nil)
}

// ListRuleEvents returns the event names rules may bind to.
func (c *Client) ListRuleEvents(ctx context.Context) ([]string, error) {
	var out []string
	err := c.Get(ctx, "/notifications/rules/events", &out)
	return out, err
}

// ListTemplateVariables returns the {{variable}} names available to a
// module's rule templates.
func (c *Client) ListTemplateVariables(ctx context.Context, module string) ([]string, error) {
	var out []string
	err := c.Get(ctx, "/notifications/rules/template-variables/"+module, &out)
	return out, err
}

// =============================================================================
// FEED
// =============================================================================

// ListFeed returns the in-app notification feed.
func (c *Client) ListFeed(ctx context.Context) ([]model.FeedItem, error) {
	var out []model.FeedItem
	err := c.Get(ctx, "/notifications/feed", &out)
	return out, err
}

// MarkFeedRead marks one feed item read.
func (c *Client) MarkFeedRead(ctx context.Context, id int64) error {
	return c.Request(ctx, http.MethodPost, "/notifications/feed/"+itoa(id)+"/read", nil, nil)
}

// MarkAllFeedRead marks the whole feed read.
func (c *Client) MarkAllFeedRead(ctx context.Context) error {
	return c.Request(ctx, http.MethodPost, "/notifications/feed/read-all", nil, nil)
}

// GetUnreadCount returns the feed badge count.
func (c *Client) GetUnreadCount(ctx context.Context) (int, error) {
	var out model.UnreadCount
	err := c.Get(ctx, "/notifications/unread-count", &out)
	return out.Count, err
}

// =============================================================================
// LOG / STATS / SETTINGS
// =============================================================================

// ListNotificationLog returns delivery history.
func (c *Client) ListNotificationLog(ctx context.Context) ([]model.NotificationLogEntry, error) {
	var out []model.NotificationLogEntry
	err := c.Get(ctx, "/notifications/log", &out)
	return out, err
}

// GetNotificationStats returns delivery totals.
func (c *Client) GetNotificationStats(ctx context.Context) (*model.NotificationStats, error) {
	var out model.NotificationStats
	if err := c.Get(ctx, "/notifications/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNotificationSettings returns the global toggles.
func (c *Client) GetNotificationSettings(ctx context.Context) (*model.NotificationSettings, error) {
	var out model.NotificationSettings
	if err := c.Get(ctx, "/notifications/settings", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNotificationSettings saves the global toggles.
func (c *Client) UpdateNotificationSettings(ctx context.Context, in model.NotificationSettings) (*model.NotificationSettings, error) {
	var out model.NotificationSettings
	if err := c.Put(ctx, "/notifications/settings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
