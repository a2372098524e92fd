// Package app contains the interactive shell model and TEA implementation.
package app

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/darrenchooji/fiona/internal/dispatch"
	"github.com/darrenchooji/fiona/internal/session"
	"github.com/darrenchooji/fiona/internal/types"
	"github.com/darrenchooji/fiona/internal/ui/overlay"
	"github.com/darrenchooji/fiona/internal/ui/statusbar"
	"github.com/darrenchooji/fiona/internal/ui/styles"
	"github.com/darrenchooji/fiona/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeInput  = types.ModeInput
	ModeScroll = types.ModeScroll
)

// Re-export Toast type for convenience
type Toast = types.Toast

const (
	toastTTL     = 6 * time.Second
	tickInterval = time.Second
)

// Model is the shell state. Every command goes through the session; the
// model only keeps the transcript and the input line.
type Model struct {
	ctx     context.Context
	session *session.Session

	// Transcript of rendered lines, unwrapped
	transcript []string
	viewport   viewport.Model
	input      textinput.Model
	mode       Mode

	// Command history, oldest first. histPos == len(history) means a fresh line.
	history []string
	histPos int

	toasts   []Toast
	overlays *overlay.Stack

	// Terminal size
	width  int
	height int
	ready  bool

	quitting bool
	styles   *styles.Styles
	logger   *slog.Logger
}

// New creates a shell over sess and shows its welcome text
func New(ctx context.Context, sess *session.Session, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := styles.New()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = s.Prompt
	ti.PlaceholderStyle = s.Placeholder
	ti.Placeholder = "todo, deadline, event, list, mark, unmark, delete, find, bye"
	ti.CharLimit = 512
	ti.Focus()

	m := Model{
		ctx:      ctx,
		session:  sess,
		viewport: viewport.New(0, 0),
		input:    ti,
		mode:     ModeInput,
		overlays: overlay.NewStack(),
		styles:   s,
		logger:   logger,
	}

	welcome := sess.Welcome(ctx)
	m.appendResponse(welcome)
	if welcome.Level == dispatch.LevelWarning && welcome.Err != nil {
		m.addToast(types.ToastWarning, welcome.Err.Error())
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickEvery(tickInterval))
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = max(msg.Width-4, 1)
		if help, ok := m.overlays.Current().(*overlay.HelpOverlay); ok {
			help.SetHeight(msg.Height - 2)
		}
		m.layout()
		m.viewport.GotoBottom()
		return m, nil

	case tickMsg:
		before := len(m.toasts)
		m.toasts = types.Active(m.toasts, time.Time(msg))
		if len(m.toasts) != before {
			m.layout()
		}
		return m, tickEvery(tickInterval)

	case overlay.CloseOverlayMsg:
		m.overlays.Update(msg)
		if m.mode == ModeInput {
			return m, m.input.Focus()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input based on current mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (work in any mode)
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen
	}

	// An open overlay takes all other keys
	if !m.overlays.IsEmpty() {
		return m, m.overlays.Update(msg)
	}

	if msg.Type == tea.KeyF1 {
		return m.openHelp()
	}

	switch m.mode {
	case ModeScroll:
		return m.handleScrollMode(msg)
	default:
		return m.handleInputMode(msg)
	}
}

// handleInputMode sends keys to the command line
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()

	case tea.KeyEsc:
		m.mode = ModeScroll
		m.input.Blur()
		return m, nil

	case tea.KeyUp:
		if m.histPos > 0 {
			m.histPos--
			m.input.SetValue(m.history[m.histPos])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.histPos < len(m.history) {
			m.histPos++
			value := ""
			if m.histPos < len(m.history) {
				value = m.history[m.histPos]
			}
			m.input.SetValue(value)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleScrollMode moves through the transcript
func (m Model) handleScrollMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		return m.openHelp()
	case "i", "enter", "esc":
		m.mode = ModeInput
		return m, m.input.Focus()
	case "g", "home":
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// openHelp shows the command reference over the transcript
func (m Model) openHelp() (tea.Model, tea.Cmd) {
	help := overlay.NewHelpOverlay()
	if m.ready {
		help.SetHeight(m.height - 2)
	}
	m.input.Blur()
	return m, m.overlays.Push(help)
}

// submit runs the current input line through the session
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.history = append(m.history, line)
	m.histPos = len(m.history)

	resp := m.session.Handle(m.ctx, line)
	m.logger.Debug("handled input", "line", line, "level", resp.Level.String())

	m.transcript = append(m.transcript, m.styles.Echo.Render("> "+line))
	m.appendResponse(resp)

	if resp.Level == dispatch.LevelWarning && resp.Err != nil {
		m.addToast(types.ToastWarning, resp.Err.Error())
	}

	m.layout()
	m.viewport.GotoBottom()

	if resp.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// appendResponse renders a response into the transcript followed by a divider
func (m *Model) appendResponse(resp dispatch.Response) {
	levelStyle := m.levelStyle(resp.Level)
	for _, line := range resp.Lines {
		if colored := m.styles.TaskLine(line); colored != line {
			m.transcript = append(m.transcript, colored)
			continue
		}
		m.transcript = append(m.transcript, levelStyle.Render(line))
	}
	m.transcript = append(m.transcript, "")
}

func (m Model) levelStyle(level dispatch.Level) lipgloss.Style {
	switch level {
	case dispatch.LevelSuccess:
		return m.styles.Success
	case dispatch.LevelWarning:
		return m.styles.Warning
	case dispatch.LevelError:
		return m.styles.Error
	default:
		return m.styles.Info
	}
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level types.ToastLevel, message string) {
	m.toasts = append(m.toasts, Toast{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(toastTTL),
	})
}

// layout sizes the viewport to what is left after the input line, status
// bar and toasts, and rewraps the transcript to the new width.
func (m *Model) layout() {
	if !m.ready {
		return
	}

	reserved := 2 // input line and status bar
	if tv := m.renderToasts(); tv != "" {
		reserved += lipgloss.Height(tv)
	}

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-reserved, 1)
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.width).Render(strings.Join(m.transcript, "\n")))
}

func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	return toast.New(m.styles).Render(m.toasts, m.width)
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	sb := statusbar.New(m.mode, m.width, m.styles).
		WithTasks(m.session.Size(), m.session.StoreName())

	body := m.viewport.View()
	if current := m.overlays.Current(); current != nil {
		body = overlay.Frame(current, m.width, m.viewport.Height)
	}

	parts := []string{body}
	if tv := m.renderToasts(); tv != "" {
		parts = append(parts, tv)
	}
	parts = append(parts, m.input.View(), sb.Render())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Transcript returns the transcript as plain lines, for tests and logs
func (m Model) Transcript() []string {
	return m.transcript
}
