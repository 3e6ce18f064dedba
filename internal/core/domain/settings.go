package domain

// ViewMode defines which panes the editor surface shows.
type ViewMode string

// Available view modes.
const (
	// ViewModeSplit shows the raw editor and the rendered preview side by side.
	ViewModeSplit ViewMode = "split"

	// ViewModeEditor shows only the raw editor.
	ViewModeEditor ViewMode = "editor"

	// ViewModePreview shows only the rendered preview.
	ViewModePreview ViewMode = "preview"
)

// IsValid returns true if the view mode is recognised.
func (m ViewMode) IsValid() bool {
	switch m {
	case ViewModeSplit, ViewModeEditor, ViewModePreview:
		return true
	default:
		return false
	}
}

// ShowsEditor returns true if the raw editor pane is visible.
func (m ViewMode) ShowsEditor() bool {
	return m == ViewModeSplit || m == ViewModeEditor
}

// ShowsPreview returns true if the rendered preview pane is visible.
func (m ViewMode) ShowsPreview() bool {
	return m == ViewModeSplit || m == ViewModePreview
}

// ShowsBoth returns true if both panes are visible simultaneously.
// Scroll synchronisation only operates in this mode.
func (m ViewMode) ShowsBoth() bool {
	return m == ViewModeSplit
}

// String returns the string representation.
func (m ViewMode) String() string {
	return string(m)
}

// EditorSettings holds the persisted editor preferences.
type EditorSettings struct {
	// SyncScroll enables proportional scroll synchronisation between
	// the editor and preview panes in split view.
	SyncScroll bool

	// ViewMode selects which panes are visible.
	ViewMode ViewMode

	// ShowLineNumbers toggles the editor gutter.
	ShowLineNumbers bool

	// ToolbarVisible toggles the action hint bar.
	ToolbarVisible bool
}

// DefaultEditorSettings returns the settings used before any are persisted.
func DefaultEditorSettings() EditorSettings {
	return EditorSettings{
		SyncScroll:      true,
		ViewMode:        ViewModeSplit,
		ShowLineNumbers: false,
		ToolbarVisible:  true,
	}
}
