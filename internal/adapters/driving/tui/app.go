package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/components/status"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/keymap"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/messages"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/styles"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/views/editor"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/views/outlinepanel"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/views/preview"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/views/sidebar"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/outline"
	"github.com/inkwell-labs/inkwell-cli/internal/scrollsync"
)

// focusTarget identifies which pane receives keyboard input.
type focusTarget int

const (
	focusEditor focusTarget = iota
	focusSidebar
	focusOutline
	focusPreview
)

// Pane geometry. The sidebar and outline have fixed widths; the
// editor and preview share what remains.
const (
	sidebarWidth = 28
	outlineWidth = 26
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the active keybindings.
	keymap *keymap.KeyMap

	// sidebarView is the document list pane.
	sidebarView *sidebar.View

	// editorView is the raw markdown editing pane.
	editorView *editor.View

	// previewView is the rendered markdown pane.
	previewView *preview.View

	// outlineView is the heading outline pane.
	outlineView *outlinepanel.View

	// statusBar shows the active document summary and key hints.
	statusBar *status.Bar

	// sync mirrors scroll positions between editor and preview.
	sync *scrollsync.Synchronizer

	// nav resolves outline jumps against the two panes.
	nav *outline.Navigator

	// settings holds the current editor preferences.
	settings domain.EditorSettings

	// focus tracks which pane receives keyboard input.
	focus focusTarget

	// showSidebar and showOutline toggle the side panes.
	showSidebar bool
	showOutline bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first WindowSizeMsg has arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	settings := ports.Settings.Get()

	sync := scrollsync.New(nil)
	sync.SetEnabled(settings.SyncScroll)
	sync.SetBothVisible(settings.ViewMode.ShowsBoth())

	editorView := editor.NewView()
	editorView.SetShowLineNumbers(settings.ShowLineNumbers)

	a := &App{
		ports:       ports,
		styles:      s,
		keymap:      km,
		sidebarView: sidebar.NewView(ports.Workspace, s, km),
		editorView:  editorView,
		previewView: preview.NewView(ports.Renderer, km),
		outlineView: outlinepanel.NewView(s, km),
		statusBar:   status.NewBar(s, km),
		sync:        sync,
		nav:         outline.NewNavigator(),
		settings:    settings,
		focus:       focusEditor,
		showSidebar: true,
		showOutline: false,
	}

	a.statusBar.SetViewMode(settings.ViewMode)
	a.statusBar.SetSyncScroll(settings.SyncScroll)
	a.statusBar.SetShowHints(settings.ToolbarVisible)
	a.openDocument(ports.Workspace.ActiveID())
	a.applyFocus()

	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("inkwell"),
		a.editorView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, nil

	case messages.SyncReleased:
		a.sync.Release()
		return a, nil

	case messages.DocumentSelected:
		a.openDocument(msg.ID)
		a.setFocus(focusEditor)
		return a, a.editorView.Focus()

	case messages.WorkspaceChanged:
		a.sidebarView.Refresh()
		if doc, ok := a.ports.Workspace.Get(a.ports.Workspace.ActiveID()); ok {
			a.statusBar.SetDocument(doc.Title, doc.Content)
		}
		return a, nil

	case messages.OutlineJump:
		return a, a.jumpToHeading(msg.HeadingID)

	case messages.ErrorOccurred:
		if msg.Err != nil {
			a.statusBar.SetError(msg.Err.Error())
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes keyboard input to globals first, then the focused
// pane.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.Quit) {
		return a, tea.Quit
	}

	// Text inputs in the sidebar swallow everything except quit.
	if a.sidebarView.Searching() || a.sidebarView.Renaming() {
		var cmd tea.Cmd
		a.sidebarView, cmd = a.sidebarView.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keymap.CycleViewMode):
		a.cycleViewMode()
		return a, nil

	case key.Matches(msg, a.keymap.ToggleSyncScroll):
		a.settings.SyncScroll = !a.settings.SyncScroll
		a.sync.SetEnabled(a.settings.SyncScroll)
		a.statusBar.SetSyncScroll(a.settings.SyncScroll)
		a.saveSettings()
		return a, nil

	case key.Matches(msg, a.keymap.ToggleSidebar):
		a.showSidebar = !a.showSidebar
		if !a.showSidebar && a.focus == focusSidebar {
			a.setFocus(a.mainFocus())
		}
		a.layout()
		return a, nil

	case key.Matches(msg, a.keymap.ToggleOutline):
		a.showOutline = !a.showOutline
		if a.showOutline {
			a.outlineView.SetEntries(outline.Index(a.editorView.Content()))
		} else if a.focus == focusOutline {
			a.setFocus(a.mainFocus())
		}
		a.layout()
		return a, nil

	case key.Matches(msg, a.keymap.Search):
		a.showSidebar = true
		a.setFocus(focusSidebar)
		a.layout()
		return a, a.sidebarView.StartSearch()

	case key.Matches(msg, a.keymap.NewDocument),
		key.Matches(msg, a.keymap.DeleteDocument),
		key.Matches(msg, a.keymap.DuplicateDocument),
		key.Matches(msg, a.keymap.RenameDocument):
		// Document lifecycle keys always act through the sidebar.
		a.showSidebar = true
		a.layout()
		if key.Matches(msg, a.keymap.RenameDocument) {
			a.setFocus(focusSidebar)
		}
		var cmd tea.Cmd
		a.sidebarView, cmd = a.sidebarView.Update(msg)
		return a, cmd

	case key.Matches(msg, a.keymap.Back):
		if a.focus == focusEditor || a.focus == focusPreview {
			a.showSidebar = true
			a.setFocus(focusSidebar)
			a.layout()
		} else {
			a.setFocus(a.mainFocus())
		}
		return a, a.focusCmd()

	case key.Matches(msg, a.keymap.FocusNext) && a.focus != focusEditor:
		a.setFocus(a.nextFocus())
		return a, a.focusCmd()
	}

	return a.updateFocused(msg)
}

// updateFocused forwards a key to the focused pane and reacts to what
// changed there.
func (a *App) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.focus {
	case focusSidebar:
		a.sidebarView, cmd = a.sidebarView.Update(msg)
		return a, cmd

	case focusOutline:
		a.outlineView, cmd = a.outlineView.Update(msg)
		return a, cmd

	case focusPreview:
		before := a.previewView.ScrollOffset()
		a.previewView, cmd = a.previewView.Update(msg)
		if a.previewView.ScrollOffset() != before {
			return a, tea.Batch(cmd, a.propagateScroll(a.previewView, a.editorView))
		}
		return a, cmd

	default:
		prevContent := a.editorView.Content()
		prevLine := a.editorView.Line()
		a.editorView, cmd = a.editorView.Update(msg)

		if content := a.editorView.Content(); content != prevContent {
			a.contentEdited(content)
		}
		if a.editorView.Line() != prevLine {
			return a, tea.Batch(cmd, a.propagateScroll(a.editorView, a.previewView))
		}
		return a, cmd
	}
}

// contentEdited pushes an editor change through the core and the
// dependent panes.
func (a *App) contentEdited(content string) {
	active := a.ports.Workspace.ActiveID()
	a.ports.Workspace.UpdateContent(active, content)

	entries := outline.Index(content)
	a.outlineView.SetEntries(entries)
	a.previewView.SetContent(content, entries)

	doc, ok := a.ports.Workspace.Get(active)
	if ok {
		a.statusBar.SetDocument(doc.Title, doc.Content)
	}
}

// openDocument loads a document into every pane.
func (a *App) openDocument(id string) {
	doc, ok := a.ports.Workspace.Get(id)
	if !ok {
		return
	}

	entries := outline.Index(doc.Content)
	a.editorView.SetContent(doc.Content)
	a.outlineView.SetEntries(entries)
	a.previewView.SetContent(doc.Content, entries)
	a.statusBar.SetDocument(doc.Title, doc.Content)
	a.statusBar.SetError("")
}

// jumpToHeading resolves an outline selection against the visible
// panes and mirrors the landing position to the other pane.
func (a *App) jumpToHeading(id string) tea.Cmd {
	content := a.editorView.Content()

	if a.settings.ViewMode.ShowsPreview() {
		if !a.nav.Navigate(id, content, a.previewView, a.editorView) {
			return nil
		}
		return a.propagateScroll(a.previewView, a.editorView)
	}

	if !a.nav.Navigate(id, content, nil, a.editorView) {
		return nil
	}
	return a.propagateScroll(a.editorView, a.previewView)
}

// propagateScroll mirrors a scroll from src to dst and schedules the
// guard release on the next event-loop turn.
func (a *App) propagateScroll(src, dst scrollsync.View) tea.Cmd {
	if !a.sync.OnScroll(src, dst) {
		return nil
	}
	return func() tea.Msg {
		return messages.SyncReleased{}
	}
}

// cycleViewMode rotates split -> editor -> preview and persists the
// choice.
func (a *App) cycleViewMode() {
	switch a.settings.ViewMode {
	case domain.ViewModeSplit:
		a.settings.ViewMode = domain.ViewModeEditor
	case domain.ViewModeEditor:
		a.settings.ViewMode = domain.ViewModePreview
	default:
		a.settings.ViewMode = domain.ViewModeSplit
	}

	a.sync.SetBothVisible(a.settings.ViewMode.ShowsBoth())
	a.statusBar.SetViewMode(a.settings.ViewMode)
	a.saveSettings()

	if a.focus == focusEditor || a.focus == focusPreview {
		a.setFocus(a.mainFocus())
	}
	a.layout()
}

func (a *App) saveSettings() {
	if err := a.ports.Settings.Save(a.settings); err != nil {
		a.statusBar.SetError(err.Error())
	}
}

// mainFocus is the focus target for the primary pane under the
// current view mode.
func (a *App) mainFocus() focusTarget {
	if a.settings.ViewMode.ShowsEditor() {
		return focusEditor
	}
	return focusPreview
}

// nextFocus cycles through the visible panes, ending at the main pane.
func (a *App) nextFocus() focusTarget {
	switch a.focus {
	case focusSidebar:
		if a.showOutline {
			return focusOutline
		}
		return a.mainFocus()
	case focusOutline:
		return a.mainFocus()
	default:
		if a.showSidebar {
			return focusSidebar
		}
		if a.showOutline {
			return focusOutline
		}
		return a.mainFocus()
	}
}

func (a *App) setFocus(f focusTarget) {
	a.focus = f
	if f == focusEditor {
		a.statusBar.SetEditing(true)
	} else {
		a.editorView.Blur()
		a.statusBar.SetEditing(false)
	}
}

// focusCmd returns the command needed to activate the focused pane.
func (a *App) focusCmd() tea.Cmd {
	if a.focus == focusEditor {
		return a.editorView.Focus()
	}
	return nil
}

func (a *App) applyFocus() {
	if a.focus == focusEditor {
		a.editorView.Focus()
		a.statusBar.SetEditing(true)
	}
}

// layout recomputes pane sizes from the terminal dimensions and the
// visible panes.
func (a *App) layout() {
	if a.width == 0 || a.height == 0 {
		return
	}

	contentHeight := a.height - 3 // status bar plus pane borders
	if contentHeight < 1 {
		contentHeight = 1
	}

	remaining := a.width
	if a.showSidebar {
		a.sidebarView.SetSize(sidebarWidth-2, contentHeight)
		remaining -= sidebarWidth
	}
	if a.showOutline {
		a.outlineView.SetSize(outlineWidth-2, contentHeight)
		remaining -= outlineWidth
	}
	if remaining < 20 {
		remaining = 20
	}

	switch {
	case a.settings.ViewMode.ShowsBoth():
		editorW := remaining / 2
		a.editorView.SetSize(editorW-2, contentHeight)
		a.previewView.SetSize(remaining-editorW-2, contentHeight)
	case a.settings.ViewMode.ShowsEditor():
		a.editorView.SetSize(remaining-2, contentHeight)
	default:
		a.previewView.SetSize(remaining-2, contentHeight)
	}

	a.statusBar.SetWidth(a.width)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Starting inkwell..."
	}

	contentHeight := a.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}

	panes := make([]string, 0, 4)

	if a.showSidebar {
		panes = append(panes, a.pane(a.sidebarView.View(), sidebarWidth-2, contentHeight, a.focus == focusSidebar))
	}
	if a.showOutline {
		panes = append(panes, a.pane(a.outlineView.View(), outlineWidth-2, contentHeight, a.focus == focusOutline))
	}

	remaining := a.width
	if a.showSidebar {
		remaining -= sidebarWidth
	}
	if a.showOutline {
		remaining -= outlineWidth
	}
	if remaining < 20 {
		remaining = 20
	}

	switch {
	case a.settings.ViewMode.ShowsBoth():
		editorW := remaining / 2
		panes = append(panes,
			a.pane(a.editorView.View(), editorW-2, contentHeight, a.focus == focusEditor),
			a.pane(a.previewView.View(), remaining-editorW-2, contentHeight, a.focus == focusPreview),
		)
	case a.settings.ViewMode.ShowsEditor():
		panes = append(panes, a.pane(a.editorView.View(), remaining-2, contentHeight, a.focus == focusEditor))
	default:
		panes = append(panes, a.pane(a.previewView.View(), remaining-2, contentHeight, a.focus == focusPreview))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, panes...)

	return lipgloss.JoinVertical(lipgloss.Left, content, a.statusBar.View())
}

// pane wraps a view in a border, highlighted when focused.
func (a *App) pane(content string, width, height int, focused bool) string {
	style := a.styles.Pane
	if focused {
		style = a.styles.PaneActive
	}
	return style.Width(width).Height(height).Render(content)
}
