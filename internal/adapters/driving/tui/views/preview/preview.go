// Package preview implements the rendered markdown pane of the TUI.
//
// The pane renders the active document through the markdown renderer
// and displays it in a viewport. Heading anchors from the render are
// kept so outline navigation can jump straight to a display line.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/keymap"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// View is the preview pane model.
type View struct {
	keymap   *keymap.KeyMap
	renderer driven.Renderer

	vp        viewport.Model
	content   string
	headings  []domain.HeadingEntry
	anchors   map[string]int
	lineCount int
}

// NewView creates a preview pane backed by the given renderer.
func NewView(renderer driven.Renderer, km *keymap.KeyMap) *View {
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		keymap:   km,
		renderer: renderer,
		vp:       viewport.New(60, 20),
	}
}

// Init implements tea.Model for the preview.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetSize updates the pane dimensions and re-renders at the new width.
func (v *View) SetSize(width, height int) {
	v.vp.Width = width
	v.vp.Height = height
	v.render()
}

// SetContent renders the document and resets the anchor table.
func (v *View) SetContent(content string, headings []domain.HeadingEntry) {
	v.content = content
	v.headings = headings
	v.render()
}

func (v *View) render() {
	if v.renderer == nil {
		return
	}

	result := v.renderer.Render(v.content, v.vp.Width, v.headings)
	v.anchors = result.Anchors
	v.lineCount = len(result.Lines)
	v.vp.SetContent(strings.Join(result.Lines, "\n"))
	v.SetScrollOffset(v.vp.YOffset)
}

// Update handles scroll keys while the preview has focus.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keymap.Up):
		v.SetScrollOffset(v.vp.YOffset - 1)
	case key.Matches(keyMsg, v.keymap.Down):
		v.SetScrollOffset(v.vp.YOffset + 1)
	case keyMsg.Type == tea.KeyPgUp:
		v.SetScrollOffset(v.vp.YOffset - v.vp.Height)
	case keyMsg.Type == tea.KeyPgDown:
		v.SetScrollOffset(v.vp.YOffset + v.vp.Height)
	case keyMsg.Type == tea.KeyHome:
		v.SetScrollOffset(0)
	case keyMsg.Type == tea.KeyEnd:
		v.SetScrollOffset(v.lineCount)
	}

	return v, nil
}

// View renders the preview pane.
func (v *View) View() string {
	return v.vp.View()
}

// ScrollOffset is the viewport's top display line.
func (v *View) ScrollOffset() int {
	return v.vp.YOffset
}

// SetScrollOffset scrolls the viewport, clamped to the content.
func (v *View) SetScrollOffset(offset int) {
	max := v.lineCount - v.vp.Height
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	v.vp.SetYOffset(offset)
}

// ContentHeight is the rendered document's line count.
func (v *View) ContentHeight() int {
	return v.lineCount
}

// ViewportHeight is the visible window height.
func (v *View) ViewportHeight() int {
	return v.vp.Height
}

// AnchorLine resolves a heading id to its rendered display line.
func (v *View) AnchorLine(id string) (int, bool) {
	line, ok := v.anchors[id]
	return line, ok
}

// ScrollTo scrolls the given display line to the top of the viewport.
func (v *View) ScrollTo(line int) {
	v.SetScrollOffset(line)
}
