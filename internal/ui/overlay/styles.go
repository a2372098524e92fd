package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/darrenchooji/fiona/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the bordered container
	Overlay lipgloss.Style
	Title   lipgloss.Style
	// Header starts a section of entries
	Header      lipgloss.Style
	Key         lipgloss.Style
	Description lipgloss.Style
	Footer      lipgloss.Style
}

// NewStyles creates overlay styles from the shared palette
func NewStyles() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface1).
			Background(styles.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Header: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Key: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Description: lipgloss.NewStyle().
			Foreground(styles.Text),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),
	}
}

// Frame draws o inside the overlay border, centered in a width x height area
func Frame(o Overlay, width, height int) string {
	s := NewStyles()
	box := s.Overlay.Render(s.Title.Render(o.Title()) + "\n" + o.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
