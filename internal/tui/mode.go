// Package tui provides the terminal user interface for remindo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal        Mode = iota // Default navigation mode
	ModeInputText                 // Task text input mode (for new task)
	ModeInputReminder             // Reminder time input mode (for new task)
	ModeConfirm                   // Confirmation dialog mode
	ModeHelp                      // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputText:
		return "input_text"
	case ModeInputReminder:
		return "input_reminder"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputText, ModeInputReminder:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}
