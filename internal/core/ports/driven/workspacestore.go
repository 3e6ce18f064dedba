package driven

import (
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// WorkspaceStore persists workspace state to durable key-value storage.
// Two logical keys are stored: the full document list and the active
// document id. Implementations serialise the document list as a JSON
// array of records so a workspace written by one session can be read
// back by the next.
//
// Storage is a write-through cache for the next session: in-memory state
// in the workspace service remains the source of truth for the current
// session, and callers never await acknowledgement of a write.
type WorkspaceStore interface {
	// LoadDocuments reads the persisted document list.
	// Returns domain.ErrNoWorkspace if nothing has been persisted yet;
	// any other error indicates a corrupt or unreadable payload.
	LoadDocuments() ([]domain.Document, error)

	// SaveDocuments re-serialises the full document list.
	SaveDocuments(docs []domain.Document) error

	// LoadActiveID reads the persisted active document id.
	// Returns domain.ErrNoWorkspace if none has been persisted.
	LoadActiveID() (string, error)

	// SaveActiveID persists the active document id.
	SaveActiveID(id string) error
}
