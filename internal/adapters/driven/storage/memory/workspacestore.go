// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and wherever durability is not needed.
package memory

import (
	"sync"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// Ensure WorkspaceStore implements the interface.
var _ driven.WorkspaceStore = (*WorkspaceStore)(nil)

// WorkspaceStore is an in-memory implementation of driven.WorkspaceStore.
type WorkspaceStore struct {
	mu        sync.RWMutex
	docs      []domain.Document
	hasDocs   bool
	activeID  string
	hasActive bool

	// FailSaves makes every save return an error, for exercising the
	// fire-and-forget persistence contract in tests.
	FailSaves error
}

// NewWorkspaceStore creates a new in-memory workspace store.
func NewWorkspaceStore() *WorkspaceStore {
	return &WorkspaceStore{}
}

// LoadDocuments reads the stored document list.
func (s *WorkspaceStore) LoadDocuments() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasDocs {
		return nil, domain.ErrNoWorkspace
	}
	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

// SaveDocuments stores the full document list.
func (s *WorkspaceStore) SaveDocuments(docs []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.docs = make([]domain.Document, len(docs))
	copy(s.docs, docs)
	s.hasDocs = true
	return nil
}

// LoadActiveID reads the stored active document id.
func (s *WorkspaceStore) LoadActiveID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasActive {
		return "", domain.ErrNoWorkspace
	}
	return s.activeID, nil
}

// SaveActiveID stores the active document id.
func (s *WorkspaceStore) SaveActiveID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.activeID = id
	s.hasActive = true
	return nil
}
