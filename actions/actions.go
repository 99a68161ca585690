package actions

// ConversationState is the per-user position inside the menu flow.
// StateMenu is both the entry state and the resting state after every
// completed action.
type ConversationState int

const (
	StateMenu               ConversationState = 0
	StateViewingDaySelect   ConversationState = 1
	StateBuildingDaySelect  ConversationState = 2
	StateBuildingSlotSelect ConversationState = 3
	StateBuildingTextEntry  ConversationState = 4
	StateEditingDaySelect   ConversationState = 5
	StateEditingSlotSelect  ConversationState = 6
	StateEditingTextEntry   ConversationState = 7
)

func (s ConversationState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateViewingDaySelect:
		return "viewing_day_select"
	case StateBuildingDaySelect:
		return "building_day_select"
	case StateBuildingSlotSelect:
		return "building_slot_select"
	case StateBuildingTextEntry:
		return "building_text_entry"
	case StateEditingDaySelect:
		return "editing_day_select"
	case StateEditingSlotSelect:
		return "editing_slot_select"
	case StateEditingTextEntry:
		return "editing_text_entry"
	default:
		return "unknown"
	}
}
