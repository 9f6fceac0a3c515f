package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, q, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Gameplay
	IntentFlap // Space, Up: simulated hand sweep over the sensor
)

// String returns the intent name
func (t IntentType) String() string {
	switch t {
	case IntentNone:
		return "None"
	case IntentQuit:
		return "Quit"
	case IntentToggleMute:
		return "ToggleMute"
	case IntentResize:
		return "Resize"
	case IntentFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}

// Intent is a parsed frontend event
type Intent struct {
	Type          IntentType
	Width, Height int // IntentResize only
}
