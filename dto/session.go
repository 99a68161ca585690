package dto

import (
	"telegram-schedule-bot-core/actions"
	"telegram-schedule-bot-core/util"
)

// PendingSlot is the (day, slot) pair remembered between a slot pick and
// the free-text reply in the build/edit flows.
type PendingSlot struct {
	Day  util.Weekday `json:"day"`
	Slot int          `json:"slot"`
}

// Session is the per-user conversation position. Sessions are reset to the
// menu state, never deleted. Id correlates log lines for one interaction.
type Session struct {
	Id      string                    `json:"id"`
	State   actions.ConversationState `json:"state"`
	Pending *PendingSlot              `json:"pending,omitempty"`
}
