// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The "condition" rule type and the RuleCondition comparison struct are
// distinct names on the same wire family; both must decode together.
func TestNotificationRuleConditionDecoding(t *testing.T) {
	raw := `{
		"id": 3,
		"name": "low mileage alert",
		"rule_type": "condition",
		"conditions": [{"field": "miles_remaining", "operator": "<", "value": 500}],
		"title_template": "{{vehicle}} due",
		"body_template": "{{interval}}",
		"cooldown_minutes": 60,
		"is_enabled": true
	}`

	var rule NotificationRule
	require.NoError(t, json.Unmarshal([]byte(raw), &rule))

	assert.Equal(t, RuleConditional, rule.RuleType)
	require.Len(t, rule.Conditions, 1)
	assert.Equal(t, RuleCondition{
		Field:    "miles_remaining",
		Operator: "<",
		Value:    float64(500),
	}, rule.Conditions[0])
}
