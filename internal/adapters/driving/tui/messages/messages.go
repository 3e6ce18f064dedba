// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

// DocumentSelected is sent when the sidebar picks a document to open.
type DocumentSelected struct {
	ID string
}

// WorkspaceChanged is sent after the document list was mutated
// (create, rename, delete, duplicate) so dependent views refresh.
type WorkspaceChanged struct{}

// OutlineJump is sent when an outline entry was chosen.
type OutlineJump struct {
	HeadingID string
}

// SyncReleased ends a scroll propagation cycle. Scroll events arriving
// before this message are echoes of the propagation and are discarded.
type SyncReleased struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
