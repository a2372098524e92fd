// Package types contains shared types used across the display shell.
package types

// Mode represents the current interaction mode of the shell
type Mode int

const (
	// ModeInput sends keystrokes to the command line
	ModeInput Mode = iota
	// ModeScroll moves through the transcript
	ModeScroll
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "INPUT"
	case ModeScroll:
		return "SCROLL"
	default:
		return "UNKNOWN"
	}
}
