// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/keymap"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/styles"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// Bar displays the active document's title and statistics on the left
// and keybinding hints on the right.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	title      string
	stats      domain.Stats
	viewMode   domain.ViewMode
	syncScroll bool
	editing    bool
	showHints  bool
	errMsg     string
	width      int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:    s,
		keymap:    km,
		viewMode:  domain.ViewModeSplit,
		showHints: true,
		width:     80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods.
	return s, nil
}

// SetWidth sets the rendered width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// SetDocument updates the displayed title and statistics.
func (s *Bar) SetDocument(title, content string) {
	s.title = title
	s.stats = domain.ComputeStats(content)
}

// SetViewMode updates the displayed layout mode.
func (s *Bar) SetViewMode(mode domain.ViewMode) {
	s.viewMode = mode
}

// SetSyncScroll updates the displayed scroll sync state.
func (s *Bar) SetSyncScroll(enabled bool) {
	s.syncScroll = enabled
}

// SetEditing switches between editor hints and list hints.
func (s *Bar) SetEditing(editing bool) {
	s.editing = editing
}

// SetShowHints toggles the keybinding hint section.
func (s *Bar) SetShowHints(show bool) {
	s.showHints = show
}

// SetError shows an error message until cleared with "".
func (s *Bar) SetError(msg string) {
	s.errMsg = msg
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the document summary.
func (s *Bar) renderLeft() string {
	if s.errMsg != "" {
		return s.styles.Error.Render("Error: " + s.errMsg)
	}

	sync := "sync off"
	if s.syncScroll {
		sync = "sync on"
	}

	return s.styles.Normal.Render(fmt.Sprintf(
		"%s · %dw %dc · %dm read · %s · %s",
		s.title, s.stats.Words, s.stats.Chars, s.stats.ReadMinutes, s.viewMode, sync,
	))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	if !s.showHints {
		return ""
	}

	var bindings []key.Binding
	if s.editing {
		bindings = s.keymap.EditorHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}
