// Package statusbar renders the bottom line of the shell.
package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/darrenchooji/fiona/internal/types"
	"github.com/darrenchooji/fiona/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode    types.Mode
	width   int
	tasks   int
	backend string
	styles  *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithTasks sets the task count and storage backend shown on the right
func (sb StatusBar) WithTasks(count int, backend string) StatusBar {
	sb.tasks = count
	sb.backend = backend
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	hints := GetHints(sb.mode)
	left := modeBadge
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		left = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, sb.styles.StatusHint.Render(hints))
	}

	right := ""
	if sb.backend != "" {
		right = sb.styles.StatusInfo.Render(fmt.Sprintf("%d task(s) · %s", sb.tasks, sb.backend))
	}

	// Fill the gap between hints and info; the bar style adds one cell of padding per side
	inner := sb.width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	content := left
	if right != "" && gap >= 1 {
		content = left + lipgloss.NewStyle().Width(gap).Render("") + right
	}

	return sb.styles.StatusBar.Width(sb.width).MaxWidth(sb.width).Render(content)
}
