package dto

// Button is one inline button: a label and the action code sent back when
// the user taps it.
type Button struct {
	Label  string
	Action string
}

// Prompt is what the core asks the transport to show: text plus an ordered
// grid of buttons. The transport decides whether to send or edit in place.
type Prompt struct {
	Text    string
	Buttons [][]Button
}
