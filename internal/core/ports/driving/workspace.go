package driving

import (
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// WorkspaceService owns the document collection and the active-selection
// pointer. The workspace is never empty: deleting the last document
// atomically creates and selects a fresh one, and the active id always
// references a document in the current list.
//
// Mutations take effect in memory first and are written through to
// durable storage without the caller awaiting the write. Operations on
// unknown ids are silent no-ops.
type WorkspaceService interface {
	// List returns all documents, most recently created first.
	List() []domain.Document

	// Create builds a new document with a generated id, seeds its
	// content from the title, inserts it at the front of the list and
	// makes it active. An empty title defaults to "Untitled".
	Create(title string) domain.Document

	// Get retrieves a document by id.
	Get(id string) (domain.Document, bool)

	// UpdateContent replaces a document's content and bumps UpdatedAt.
	UpdateContent(id, content string)

	// Rename updates a document's title and bumps UpdatedAt.
	// Empty or whitespace-only titles are ignored.
	Rename(id, title string)

	// Delete removes a document, repointing the selection as needed.
	Delete(id string)

	// Duplicate copies a document under "<title> (Copy)" with a fresh
	// id and timestamps, inserted at the front and made active.
	Duplicate(id string)

	// Search returns documents whose title or content contains the
	// query, case-insensitively, preserving list order. An empty or
	// whitespace-only query returns the full list.
	Search(query string) []domain.Document

	// SetActive points the selection at the given document id.
	SetActive(id string)

	// ActiveID returns the active document's id.
	ActiveID() string

	// Active returns the active document.
	Active() domain.Document

	// Import inserts a document with the given title and content,
	// byte-for-byte, at the front of the list and makes it active.
	Import(title, content string) domain.Document

	// ExportName returns the export filename for a document,
	// "<title>.md", or false if the id is unknown. Content is exported
	// as-is by the caller.
	ExportName(id string) (string, bool)
}
