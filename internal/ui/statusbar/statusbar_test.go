package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/darrenchooji/fiona/internal/types"
	"github.com/darrenchooji/fiona/internal/ui/styles"
)

func TestStatusBar_RenderInputMode(t *testing.T) {
	sb := New(types.ModeInput, 100, styles.New())

	result := ansi.Strip(sb.Render())

	if !strings.Contains(result, "INPUT") {
		t.Errorf("Expected status bar to contain 'INPUT', got: %s", result)
	}
	if !strings.Contains(result, "Enter: run") {
		t.Errorf("Expected status bar to contain run hint, got: %s", result)
	}
}

func TestStatusBar_RenderScrollMode(t *testing.T) {
	sb := New(types.ModeScroll, 100, styles.New())

	result := ansi.Strip(sb.Render())

	if !strings.Contains(result, "SCROLL") {
		t.Errorf("Expected status bar to contain 'SCROLL', got: %s", result)
	}
	if !strings.Contains(result, "j/k: scroll") {
		t.Errorf("Expected status bar to contain scroll hint, got: %s", result)
	}
}

func TestStatusBar_RenderTaskInfo(t *testing.T) {
	sb := New(types.ModeInput, 120, styles.New()).WithTasks(3, "sqlite")

	result := ansi.Strip(sb.Render())

	if !strings.Contains(result, "3 task(s) · sqlite") {
		t.Errorf("Expected status bar to contain task info, got: %s", result)
	}
}

func TestStatusBar_FillsWidth(t *testing.T) {
	width := 120
	sb := New(types.ModeInput, width, styles.New()).WithTasks(12, "file")

	if got := lipgloss.Width(sb.Render()); got != width {
		t.Errorf("Expected status bar width %d, got %d", width, got)
	}
}

func TestStatusBar_NarrowTerminalDropsInfo(t *testing.T) {
	sb := New(types.ModeInput, 30, styles.New()).WithTasks(1, "file")

	result := sb.Render()
	if lipgloss.Width(result) > 30 {
		t.Errorf("Status bar overflowed: width %d", lipgloss.Width(result))
	}
}

func TestGetHints_AllModes(t *testing.T) {
	tests := []struct {
		mode     types.Mode
		expected string
	}{
		{types.ModeInput, "Enter: run  ↑/↓: history  Esc: scroll  F1: help  Ctrl+C: quit"},
		{types.ModeScroll, "j/k: scroll  g/G: top/bottom  i: type  ?: help  q: quit"},
		{types.Mode(42), ""},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			result := GetHints(tt.mode)
			if result != tt.expected {
				t.Errorf("GetHints(%v) = %q, want %q", tt.mode, result, tt.expected)
			}
		})
	}
}
