package dto

// EventType distinguishes the three inbound event shapes the core routes.
type EventType int

const (
	EventCommand  EventType = 0
	EventCallback EventType = 1
	EventText     EventType = 2
)

// Event is an inbound user event stripped of transport detail. Payload holds
// the command name, the callback action code, or the message text.
type Event struct {
	Type    EventType
	Payload string
}
