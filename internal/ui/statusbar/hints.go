package statusbar

import "github.com/darrenchooji/fiona/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeInput:
		return "Enter: run  ↑/↓: history  Esc: scroll  F1: help  Ctrl+C: quit"
	case types.ModeScroll:
		return "j/k: scroll  g/G: top/bottom  i: type  ?: help  q: quit"
	default:
		return ""
	}
}
