// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// NewDocument creates a new document.
	NewDocument key.Binding

	// DeleteDocument deletes the selected document.
	DeleteDocument key.Binding

	// DuplicateDocument duplicates the selected document.
	DuplicateDocument key.Binding

	// RenameDocument starts renaming the selected document.
	RenameDocument key.Binding

	// Search focuses the sidebar search input.
	Search key.Binding

	// ToggleSidebar shows or hides the document sidebar.
	ToggleSidebar key.Binding

	// ToggleOutline shows or hides the outline panel.
	ToggleOutline key.Binding

	// CycleViewMode switches between split, editor and preview layouts.
	CycleViewMode key.Binding

	// ToggleSyncScroll enables or disables scroll synchronisation.
	ToggleSyncScroll key.Binding

	// FocusNext moves focus to the next pane.
	FocusNext key.Binding

	// Back returns focus to the sidebar, or cancels an input.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NewDocument: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new doc"),
		),
		DeleteDocument: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "delete"),
		),
		DuplicateDocument: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "duplicate"),
		),
		RenameDocument: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "rename"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "search"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "sidebar"),
		),
		ToggleOutline: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "outline"),
		),
		CycleViewMode: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "view mode"),
		),
		ToggleSyncScroll: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "sync scroll"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar when the
// sidebar or outline has focus.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.NewDocument, k.Search, k.CycleViewMode, k.Quit}
}

// EditorHelp returns the bindings shown while the editor has focus.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Back, k.ToggleSidebar, k.ToggleOutline, k.CycleViewMode, k.Quit}
}
