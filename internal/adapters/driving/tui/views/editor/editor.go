// Package editor implements the markdown editing pane of the TUI.
//
// The pane wraps a textarea and exposes the caret position as its
// scroll proxy: the textarea manages its own viewport around the
// caret, so the caret line is the one scroll unit the pane can both
// read and write. Scroll synchronisation and outline navigation treat
// the pane as a surface of LineCount lines with a one-line viewport.
package editor

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// View is the editor pane model.
type View struct {
	ta textarea.Model
}

// NewView creates an empty editor pane.
func NewView() *View {
	ta := textarea.New()
	ta.Placeholder = "Start writing here..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	return &View{ta: ta}
}

// Init implements tea.Model for the editor.
func (v *View) Init() tea.Cmd {
	return textarea.Blink
}

// SetSize updates the pane dimensions.
func (v *View) SetSize(width, height int) {
	v.ta.SetWidth(width)
	v.ta.SetHeight(height)
}

// SetShowLineNumbers toggles the line number gutter.
func (v *View) SetShowLineNumbers(show bool) {
	v.ta.ShowLineNumbers = show
}

// SetContent replaces the buffer and moves the caret to the start.
func (v *View) SetContent(content string) {
	v.ta.SetValue(content)
	v.moveToLine(0)
}

// Content returns the current buffer.
func (v *View) Content() string {
	return v.ta.Value()
}

// Focus gives the textarea keyboard focus.
func (v *View) Focus() tea.Cmd {
	return v.ta.Focus()
}

// Blur removes keyboard focus.
func (v *View) Blur() {
	v.ta.Blur()
}

// Focused reports whether the textarea has focus.
func (v *View) Focused() bool {
	return v.ta.Focused()
}

// Line returns the caret's current line.
func (v *View) Line() int {
	return v.ta.Line()
}

// Update forwards messages to the textarea.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.ta, cmd = v.ta.Update(msg)
	return v, cmd
}

// View renders the editor pane.
func (v *View) View() string {
	return v.ta.View()
}

// ScrollOffset is the caret line, the pane's scroll proxy.
func (v *View) ScrollOffset() int {
	return v.ta.Line()
}

// SetScrollOffset moves the caret to the given line.
func (v *View) SetScrollOffset(offset int) {
	v.moveToLine(offset)
}

// ContentHeight is the number of lines in the buffer.
func (v *View) ContentHeight() int {
	return v.ta.LineCount()
}

// ViewportHeight is one line: the caret is the scroll unit.
func (v *View) ViewportHeight() int {
	return 1
}

// SetCaret moves the caret to the start of the given line.
func (v *View) SetCaret(line int) {
	v.moveToLine(line)
}

// moveToLine steps the caret to the target line and its start column.
// The textarea exposes no absolute row setter, so the caret walks.
func (v *View) moveToLine(line int) {
	last := v.ta.LineCount() - 1
	if line > last {
		line = last
	}
	if line < 0 {
		line = 0
	}

	for i := 0; v.ta.Line() < line && i <= last; i++ {
		v.ta.CursorDown()
	}
	for i := 0; v.ta.Line() > line && i <= last; i++ {
		v.ta.CursorUp()
	}
	v.ta.CursorStart()
}
