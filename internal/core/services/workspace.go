// Package services implements the driving ports on top of the driven
// ports. Services hold the application's in-memory state and write it
// through to the injected stores.
package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

// Ensure WorkspaceService implements the interface.
var _ driving.WorkspaceService = (*WorkspaceService)(nil)

// copySuffix is appended to a duplicated document's title.
const copySuffix = " (Copy)"

// WorkspaceService is the authoritative owner of the document list and
// the active-selection pointer. In-memory state is the source of truth
// for the current session; the injected store is a write-through cache
// for the next one. Mutations are applied in call order, take effect in
// memory first, and storage failures are logged, never surfaced.
type WorkspaceService struct {
	mu    sync.Mutex
	store driven.WorkspaceStore

	docs     []domain.Document
	activeID string

	// now and newID are injectable for tests.
	now   func() time.Time
	newID func() string
}

// NewWorkspaceService creates a workspace service and loads persisted
// state from the store. On any deserialisation failure, or when nothing
// was persisted yet, the workspace falls back to a single seeded
// welcome document. A persisted active id that matches no loaded
// document falls back to the first document's id.
func NewWorkspaceService(store driven.WorkspaceStore) *WorkspaceService {
	s := &WorkspaceService{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	s.load()
	return s
}

func (s *WorkspaceService) load() {
	docs, err := s.store.LoadDocuments()
	if err != nil || len(docs) == 0 {
		if err != nil {
			logger.Warn("loading workspace: %v", err)
		}
		now := s.now()
		docs = []domain.Document{{
			ID:        s.newID(),
			Title:     domain.WelcomeDocumentTitle,
			Content:   domain.WelcomeDocumentContent,
			CreatedAt: now,
			UpdatedAt: now,
		}}
	}
	s.docs = docs

	activeID, err := s.store.LoadActiveID()
	if err != nil || s.indexOf(activeID) < 0 {
		activeID = s.docs[0].ID
	}
	s.activeID = activeID

	s.persistDocuments()
	s.persistActiveID()
}

// List returns all documents, most recently created first.
func (s *WorkspaceService) List() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Create builds a new document, inserts it at the front of the list and
// makes it active.
func (s *WorkspaceService) Create(title string) domain.Document {
	if strings.TrimSpace(title) == "" {
		title = domain.DefaultTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	doc := domain.Document{
		ID:        s.newID(),
		Title:     title,
		Content:   domain.SeedContent(title),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.docs = append([]domain.Document{doc}, s.docs...)
	s.activeID = doc.ID

	s.persistDocuments()
	s.persistActiveID()
	return doc
}

// Get retrieves a document by id.
func (s *WorkspaceService) Get(id string) (domain.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Document{}, false
	}
	return s.docs[i], true
}

// UpdateContent replaces a document's content and bumps UpdatedAt.
// Unknown ids are a silent no-op.
func (s *WorkspaceService) UpdateContent(id, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.docs[i].Content = content
	s.docs[i].UpdatedAt = s.bump(s.docs[i].UpdatedAt)
	s.persistDocuments()
}

// Rename updates a document's title and bumps UpdatedAt. Unknown ids
// and empty or whitespace-only titles are silent no-ops.
func (s *WorkspaceService) Rename(id, title string) {
	if strings.TrimSpace(title) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.docs[i].Title = title
	s.docs[i].UpdatedAt = s.bump(s.docs[i].UpdatedAt)
	s.persistDocuments()
}

// Delete removes a document. Deleting the last remaining document
// atomically creates and selects a fresh default document; deleting the
// active document repoints the selection at the first remaining one.
func (s *WorkspaceService) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.docs = append(s.docs[:i], s.docs[i+1:]...)

	if len(s.docs) == 0 {
		now := s.now()
		fresh := domain.Document{
			ID:        s.newID(),
			Title:     domain.DefaultTitle,
			Content:   domain.SeedContent(domain.DefaultTitle),
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.docs = []domain.Document{fresh}
		s.activeID = fresh.ID
	} else if s.activeID == id {
		s.activeID = s.docs[0].ID
	}

	s.persistDocuments()
	s.persistActiveID()
}

// Duplicate copies a document under "<title> (Copy)" with a fresh id
// and timestamps, inserted at the front and made active. Unknown ids
// are a silent no-op.
func (s *WorkspaceService) Duplicate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	now := s.now()
	dup := domain.Document{
		ID:        s.newID(),
		Title:     s.docs[i].Title + copySuffix,
		Content:   s.docs[i].Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.docs = append([]domain.Document{dup}, s.docs...)
	s.activeID = dup.ID

	s.persistDocuments()
	s.persistActiveID()
}

// Search returns documents whose title or content contains the query,
// case-insensitively, preserving list order. Matches are not ranked.
func (s *WorkspaceService) Search(query string) []domain.Document {
	if strings.TrimSpace(query) == "" {
		return s.List()
	}
	lower := strings.ToLower(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []domain.Document
	for _, doc := range s.docs {
		if strings.Contains(strings.ToLower(doc.Title), lower) ||
			strings.Contains(strings.ToLower(doc.Content), lower) {
			matches = append(matches, doc)
		}
	}
	return matches
}

// SetActive points the selection at the given document id. Ids not
// present in the workspace are ignored so the active pointer always
// references an existing document.
func (s *WorkspaceService) SetActive(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return
	}
	s.activeID = id
	s.persistActiveID()
}

// ActiveID returns the active document's id.
func (s *WorkspaceService) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Active returns the active document.
func (s *WorkspaceService) Active() domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(s.activeID)
	if i < 0 {
		// Unreachable while the invariant holds; first document is
		// the declared fallback.
		i = 0
	}
	return s.docs[i]
}

// Import inserts a document with the given title and content at the
// front of the list and makes it active. Content is taken byte for
// byte, with no transformation.
func (s *WorkspaceService) Import(title, content string) domain.Document {
	if strings.TrimSpace(title) == "" {
		title = domain.DefaultTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	doc := domain.Document{
		ID:        s.newID(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.docs = append([]domain.Document{doc}, s.docs...)
	s.activeID = doc.ID

	s.persistDocuments()
	s.persistActiveID()
	return doc
}

// ExportName returns the export filename for a document, "<title>.md".
func (s *WorkspaceService) ExportName(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return "", false
	}
	return s.docs[i].Title + ".md", true
}

// indexOf returns the position of id in the document list, or -1.
// Callers hold s.mu.
func (s *WorkspaceService) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.docs {
		if s.docs[i].ID == id {
			return i
		}
	}
	return -1
}

// bump returns the new UpdatedAt for a mutation: the current time,
// never earlier than the previous value.
func (s *WorkspaceService) bump(prev time.Time) time.Time {
	now := s.now()
	if now.Before(prev) {
		return prev
	}
	return now
}

// persistDocuments writes the full document list through to storage.
// Failures are logged and swallowed: the in-memory mutation has already
// taken effect and workspace integrity is never sacrificed for error
// reporting. Callers hold s.mu.
func (s *WorkspaceService) persistDocuments() {
	if err := s.store.SaveDocuments(s.docs); err != nil {
		logger.Warn("persisting documents: %v", err)
	}
}

// persistActiveID writes the active id through to storage.
// Callers hold s.mu.
func (s *WorkspaceService) persistActiveID() {
	if err := s.store.SaveActiveID(s.activeID); err != nil {
		logger.Warn("persisting active id: %v", err)
	}
}
