package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding is one help entry: what to type and what it does
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory groups related entries under a header
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

const (
	helpWidth         = 64
	defaultHelpHeight = 20
	// border, padding, title and footer
	helpChrome = 8
)

// HelpOverlay lists the commands and the shell keys
type HelpOverlay struct {
	styles     *Styles
	scroll     int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		styles:     NewStyles(),
		viewHeight: defaultHelpHeight,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// SetHeight fits the overlay into a terminal of the given height
func (h *HelpOverlay) SetHeight(height int) {
	h.viewHeight = max(height-helpChrome, 3)
	h.scroll = min(h.scroll, h.maxScroll())
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch key.String() {
	case "esc", "q", "?", "f1", "enter":
		return h, closeOverlay
	case "j", "down":
		h.scroll = min(h.scroll+1, h.maxScroll())
	case "k", "up":
		h.scroll = max(h.scroll-1, 0)
	case "g", "home":
		h.scroll = 0
	case "G", "end":
		h.scroll = h.maxScroll()
	}
	return h, nil
}

// View renders the visible part of the help text
func (h *HelpOverlay) View() string {
	lines := h.lines()
	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll() > 0 {
		result += "\n" + h.styles.Footer.Render("[j/k to scroll, g/G to jump, esc to close]")
	}
	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return helpWidth, h.viewHeight + helpChrome
}

func (h *HelpOverlay) maxScroll() int {
	return max(0, len(h.lines())-h.viewHeight)
}

func (h *HelpOverlay) lines() []string {
	var lines []string
	for i, cat := range Categories() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.Header.Render(cat.Name+":"))
		for _, b := range cat.Bindings {
			lines = append(lines,
				"  "+h.styles.Key.Render(b.Key),
				"      "+h.styles.Description.Render(b.Description),
			)
		}
	}
	return lines
}

// Categories returns the help entries in display order
func Categories() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Commands",
			Bindings: []KeyBinding{
				{Key: "todo <description>", Description: "Add a todo"},
				{Key: "deadline <description> /by <yyyy-MM-dd HHmm>", Description: "Add a deadline"},
				{Key: "event <description> /from <start> /to <end>", Description: "Add an event; both times are yyyy-MM-dd HHmm"},
				{Key: "list", Description: "Show all tasks"},
				{Key: "mark <n>", Description: "Mark task n as done"},
				{Key: "unmark <n>", Description: "Mark task n as not done"},
				{Key: "delete <n>", Description: "Remove task n"},
				{Key: "find <yyyy-MM-dd>", Description: "Deadlines and events on that day"},
				{Key: "find <yyyy-MM-dd HHmm>", Description: "Deadlines and events at that time"},
				{Key: "find <keyword>", Description: "Tasks whose description contains the keyword"},
				{Key: "bye", Description: "Exit"},
			},
		},
		{
			Name: "Keys",
			Bindings: []KeyBinding{
				{Key: "Enter", Description: "Run the command"},
				{Key: "↑/↓", Description: "Command history"},
				{Key: "Esc", Description: "Scroll the transcript (i to type again)"},
				{Key: "?  F1", Description: "This help"},
				{Key: "Ctrl+L", Description: "Redraw the screen"},
				{Key: "Ctrl+C", Description: "Quit"},
			},
		},
	}
}
