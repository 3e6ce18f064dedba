// Package sidebar implements the document list pane of the TUI.
//
// The sidebar lists workspace documents most recently created first,
// supports filtering via a search input, and hosts the document
// lifecycle actions: create, rename, duplicate and delete.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/keymap"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/messages"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/styles"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

// mode identifies what keyboard input currently drives.
type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeRename
)

// View is the sidebar pane model.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	svc    driving.WorkspaceService

	docs         []domain.Document
	selected     int
	scrollOffset int
	mode         mode
	search       textinput.Model
	rename       textinput.Model
	width        int
	height       int
}

// NewView creates a sidebar backed by the given workspace service.
func NewView(svc driving.WorkspaceService, s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	search := textinput.New()
	search.Placeholder = "Search documents..."
	search.Prompt = "/ "
	search.CharLimit = 128

	rename := textinput.New()
	rename.Prompt = "> "
	rename.CharLimit = 128

	v := &View{
		styles: s,
		keymap: km,
		svc:    svc,
		search: search,
		rename: rename,
		width:  28,
		height: 20,
	}
	v.Refresh()

	return v
}

// Init implements tea.Model for the sidebar.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetSize updates the pane dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.search.Width = width - 4
	v.rename.Width = width - 4
	v.clampSelection()
}

// Refresh reloads the document listing, applying the active filter.
func (v *View) Refresh() {
	if v.svc == nil {
		v.docs = nil
		return
	}

	query := v.search.Value()
	if strings.TrimSpace(query) == "" {
		v.docs = v.svc.List()
	} else {
		v.docs = v.svc.Search(query)
	}
	v.clampSelection()
}

// Searching reports whether the search input has focus.
func (v *View) Searching() bool {
	return v.mode == modeSearch
}

// Renaming reports whether the rename input has focus.
func (v *View) Renaming() bool {
	return v.mode == modeRename
}

// SelectedID returns the id of the highlighted document, or "".
func (v *View) SelectedID() string {
	if v.selected < 0 || v.selected >= len(v.docs) {
		return ""
	}
	return v.docs[v.selected].ID
}

// SelectByID moves the highlight to the document with the given id.
func (v *View) SelectByID(id string) {
	for i, doc := range v.docs {
		if doc.ID == id {
			v.selected = i
			v.clampSelection()
			return
		}
	}
}

// StartSearch focuses the search input.
func (v *View) StartSearch() tea.Cmd {
	v.mode = modeSearch
	return v.search.Focus()
}

// Update handles sidebar messages.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.mode {
	case modeSearch:
		return v.updateSearch(keyMsg)
	case modeRename:
		return v.updateRename(keyMsg)
	default:
		return v.updateBrowse(keyMsg)
	}
}

func (v *View) updateSearch(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Back):
		v.search.SetValue("")
		v.search.Blur()
		v.mode = modeBrowse
		v.Refresh()
		return v, nil

	case key.Matches(msg, v.keymap.Select):
		v.search.Blur()
		v.mode = modeBrowse
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.Refresh()

	return v, cmd
}

func (v *View) updateRename(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Back):
		v.rename.Blur()
		v.mode = modeBrowse
		return v, nil

	case key.Matches(msg, v.keymap.Select):
		id := v.SelectedID()
		title := v.rename.Value()
		v.rename.Blur()
		v.mode = modeBrowse
		if id != "" {
			v.svc.Rename(id, title)
			v.Refresh()
			return v, workspaceChanged()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.rename, cmd = v.rename.Update(msg)

	return v, cmd
}

func (v *View) updateBrowse(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		v.clampSelection()
		return v, nil

	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.docs)-1 {
			v.selected++
		}
		v.clampSelection()
		return v, nil

	case key.Matches(msg, v.keymap.Select):
		id := v.SelectedID()
		if id == "" {
			return v, nil
		}
		v.svc.SetActive(id)
		return v, documentSelected(id)

	case key.Matches(msg, v.keymap.NewDocument):
		doc := v.svc.Create("")
		v.search.SetValue("")
		v.Refresh()
		v.SelectByID(doc.ID)
		return v, tea.Batch(workspaceChanged(), documentSelected(doc.ID))

	case key.Matches(msg, v.keymap.DeleteDocument):
		id := v.SelectedID()
		if id == "" {
			return v, nil
		}
		v.svc.Delete(id)
		v.Refresh()
		return v, tea.Batch(workspaceChanged(), documentSelected(v.svc.ActiveID()))

	case key.Matches(msg, v.keymap.DuplicateDocument):
		id := v.SelectedID()
		if id == "" {
			return v, nil
		}
		v.svc.Duplicate(id)
		v.Refresh()
		dupID := v.svc.ActiveID()
		v.SelectByID(dupID)
		return v, tea.Batch(workspaceChanged(), documentSelected(dupID))

	case key.Matches(msg, v.keymap.RenameDocument):
		if v.selected < 0 || v.selected >= len(v.docs) {
			return v, nil
		}
		v.rename.SetValue(v.docs[v.selected].Title)
		v.mode = modeRename
		return v, v.rename.Focus()

	case key.Matches(msg, v.keymap.Search):
		return v, v.StartSearch()
	}

	return v, nil
}

// View renders the sidebar pane.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Documents"))
	b.WriteString("\n")

	if v.mode == modeSearch || v.search.Value() != "" {
		b.WriteString(v.search.View())
		b.WriteString("\n")
	}

	if len(v.docs) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents"))
		return b.String()
	}

	activeID := ""
	if v.svc != nil {
		activeID = v.svc.ActiveID()
	}

	visible := v.visibleRows()
	end := v.scrollOffset + visible
	if end > len(v.docs) {
		end = len(v.docs)
	}

	for i := v.scrollOffset; i < end; i++ {
		doc := v.docs[i]

		marker := "  "
		if doc.ID == activeID {
			marker = "● "
		}

		line := marker + truncate(doc.Title, v.width-4)

		switch {
		case i == v.selected && v.mode == modeRename:
			b.WriteString(v.rename.View())
		case i == v.selected:
			b.WriteString(v.styles.Selected.Render(line))
		case doc.ID == activeID:
			b.WriteString(v.styles.ActiveDoc.Render(line))
		default:
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	if len(v.docs) > visible {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%d/%d", v.selected+1, len(v.docs))))
	}

	return b.String()
}

// visibleRows returns how many list rows fit below the header.
func (v *View) visibleRows() int {
	rows := v.height - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (v *View) clampSelection() {
	if v.selected >= len(v.docs) {
		v.selected = len(v.docs) - 1
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

func documentSelected(id string) tea.Cmd {
	return func() tea.Msg {
		return messages.DocumentSelected{ID: id}
	}
}

func workspaceChanged() tea.Cmd {
	return func() tea.Msg {
		return messages.WorkspaceChanged{}
	}
}
