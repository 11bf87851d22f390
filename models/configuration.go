// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfigurationComment is written into every saved configuration record.
const ConfigurationComment = "ALERT: This file stores your userbot's customisations. Do not edit manually!"

// Configuration is the durable local record: credentials plus the ordered
// list of conversation identifiers the operator chose to monitor.
//
// It is created on first run, read on every subsequent run, and rewritten
// when the selection changes or credentials are re-entered.
type Configuration struct {
	// Comment warns against hand editing. Always overwritten on save.
	Comment string `json:"_comment,omitempty"`

	Credentials

	// SelectedGroups holds conversation identifiers in selection order.
	SelectedGroups []int64 `json:"selected_groups,omitempty"`
}

// HasSelection reports whether a non-empty selection was saved earlier.
func (c Configuration) HasSelection() bool {
	return len(c.SelectedGroups) > 0
}
