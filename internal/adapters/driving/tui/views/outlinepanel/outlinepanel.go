// Package outlinepanel implements the heading outline pane of the TUI.
//
// The pane lists the active document's headings, indented by level,
// and emits a jump message when an entry is chosen.
package outlinepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/keymap"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/messages"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/styles"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// View is the outline pane model.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	entries      []domain.HeadingEntry
	selected     int
	scrollOffset int
	width        int
	height       int
}

// NewView creates an empty outline pane.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		width:  24,
		height: 20,
	}
}

// Init implements tea.Model for the outline.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetSize updates the pane dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.clampSelection()
}

// SetEntries replaces the listed headings, keeping the selection in
// range.
func (v *View) SetEntries(entries []domain.HeadingEntry) {
	v.entries = entries
	v.clampSelection()
}

// Entries returns the currently listed headings.
func (v *View) Entries() []domain.HeadingEntry {
	return v.entries
}

// SelectedID returns the id of the highlighted heading, or "".
func (v *View) SelectedID() string {
	if v.selected < 0 || v.selected >= len(v.entries) {
		return ""
	}
	return v.entries[v.selected].ID
}

// Update handles outline navigation keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		v.clampSelection()

	case key.Matches(keyMsg, v.keymap.Down):
		if v.selected < len(v.entries)-1 {
			v.selected++
		}
		v.clampSelection()

	case key.Matches(keyMsg, v.keymap.Select):
		id := v.SelectedID()
		if id == "" {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.OutlineJump{HeadingID: id}
		}
	}

	return v, nil
}

// View renders the outline pane.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Outline"))
	b.WriteString("\n")

	if len(v.entries) == 0 {
		b.WriteString(v.styles.Muted.Render("No headings"))
		return b.String()
	}

	visible := v.visibleRows()
	end := v.scrollOffset + visible
	if end > len(v.entries) {
		end = len(v.entries)
	}

	for i := v.scrollOffset; i < end; i++ {
		entry := v.entries[i]

		indent := strings.Repeat("  ", entry.Level-1)
		line := truncate(indent+entry.Text, v.width-2)

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	if len(v.entries) > visible {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d/%d", v.selected+1, len(v.entries))))
	}

	return b.String()
}

func (v *View) visibleRows() int {
	rows := v.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (v *View) clampSelection() {
	if v.selected >= len(v.entries) {
		v.selected = len(v.entries) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}

	visible := v.visibleRows()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	}
	if v.selected >= v.scrollOffset+visible {
		v.scrollOffset = v.selected - visible + 1
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
