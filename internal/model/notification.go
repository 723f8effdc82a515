// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// NOTIFICATIONS
// =============================================================================

// ChannelType enumerates notification delivery mechanisms.
type ChannelType string

const (
	ChannelPushover ChannelType = "pushover"
	ChannelDiscord  ChannelType = "discord"
	ChannelEmail    ChannelType = "email"
	ChannelInApp    ChannelType = "in_app"
	ChannelSMS      ChannelType = "sms"
)

// NotificationChannel is one configured delivery target. Config is opaque
// and keyed per channel type; the client round-trips it untouched.
type NotificationChannel struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	ChannelType ChannelType    `json:"channel_type"`
	Config      map[string]any `json:"config,omitempty"`
	IsEnabled   bool           `json:"is_enabled"`
}

// RuleType selects when a notification rule fires.
type RuleType string

const (
	RuleEvent       RuleType = "event"
	RuleScheduled   RuleType = "scheduled"
	RuleConditional RuleType = "condition"
)

// ScheduleConfig configures a scheduled rule: either a fixed interval or
// a cron expression.
type ScheduleConfig struct {
	Type    string `json:"type"` // "interval" or "cron"
	Hours   int    `json:"hours,omitempty"`
	Minutes int    `json:"minutes,omitempty"`
	Cron    string `json:"cron,omitempty"`
}

// RuleCondition is one field comparison evaluated by the backend rules
// engine.
type RuleCondition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"` // ==, !=, >, >=, <, <=, contains
	Value    any    `json:"value"`
}

// NotificationRule drives the backend rules engine. Title and body are
// Mustache-like {{variable}} templates; the client edits but never
// expands them.
type NotificationRule struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Module          string          `json:"module,omitempty"`
	Priority        int             `json:"priority"`
	RuleType        RuleType        `json:"rule_type"`
	EventName       string          `json:"event_name,omitempty"`
	ScheduleConfig  *ScheduleConfig `json:"schedule_config,omitempty"`
	Conditions      []RuleCondition `json:"conditions,omitempty"`
	TitleTemplate   string          `json:"title_template"`
	BodyTemplate    string          `json:"body_template"`
	ChannelIDs      []int64         `json:"channel_ids,omitempty"`
	CooldownMinutes int             `json:"cooldown_minutes"`
	IsEnabled       bool            `json:"is_enabled"`
}

// FeedItem is one in-app notification.
type FeedItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Module    string    `json:"module,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationLogEntry records one delivery attempt.
type NotificationLogEntry struct {
	ID        int64     `json:"id"`
	RuleID    *int64    `json:"rule_id,omitempty"`
	ChannelID *int64    `json:"channel_id,omitempty"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// NotificationStats summarizes delivery history.
type NotificationStats struct {
	TotalSent   int `json:"total_sent"`
	TotalFailed int `json:"total_failed"`
	ActiveRules int `json:"active_rules"`
}

// NotificationSettings are the global notification toggles.
type NotificationSettings struct {
	Enabled          bool   `json:"enabled"`
	QuietHoursStart  string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd    string `json:"quiet_hours_end,omitempty"`
	DefaultChannelID *int64 `json:"default_channel_id,omitempty"`
}

// ChannelSchema describes the config fields a channel type requires;
// used to build the channel editor form.
type ChannelSchema struct {
	ChannelType ChannelType   `json:"channel_type"`
	Fields      []SchemaField `json:"fields"`
}

// SchemaField is one field of a channel config schema.
type SchemaField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Secret   bool   `json:"secret,omitempty"`
}

// UnreadCount is the feed badge payload.
type UnreadCount struct {
	Count int `json:"count"`
}
