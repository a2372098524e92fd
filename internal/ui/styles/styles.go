package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/darrenchooji/fiona/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Transcript
	Banner  lipgloss.Style
	Echo    lipgloss.Style
	Divider lipgloss.Style

	// Response levels
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Task lines
	KindTag func(kind domain.Kind) lipgloss.Style
	Done    lipgloss.Style

	// Input line
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Banner: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		Echo: lipgloss.NewStyle().
			Foreground(Overlay1),

		Divider: lipgloss.NewStyle().
			Foreground(Surface1),

		Info: lipgloss.NewStyle().
			Foreground(Text),

		Success: lipgloss.NewStyle().
			Foreground(Green),

		Warning: lipgloss.NewStyle().
			Foreground(Yellow),

		Error: lipgloss.NewStyle().
			Foreground(Red),

		KindTag: func(kind domain.Kind) lipgloss.Style {
			color, ok := KindColors[kind]
			if !ok {
				color = Overlay0
			}
			return lipgloss.NewStyle().
				Foreground(color).
				Bold(true)
		},

		Done: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true),

		Placeholder: lipgloss.NewStyle().
			Foreground(Overlay0),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// TaskLine colors the "[T][X]" prefix of a rendered task line. Lines that
// do not carry a task prefix are returned unchanged.
func (s *Styles) TaskLine(line string) string {
	// Skip an "N. " enumeration prefix
	body := line
	prefix := ""
	if i := strings.Index(line, ". ["); i > 0 && i < 6 {
		prefix, body = line[:i+2], line[i+2:]
	}

	if len(body) < 6 || body[0] != '[' || body[2] != ']' || body[3] != '[' || body[5] != ']' {
		return line
	}
	kind, ok := domain.KindFromTag(body[1:2])
	if !ok {
		return line
	}

	tag := s.KindTag(kind).Render(body[:3])
	status := body[3:6]
	if body[4] == 'X' {
		status = s.Done.Render(status)
	}
	return prefix + tag + status + body[6:]
}
