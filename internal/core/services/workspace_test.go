package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/storage/memory"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// brokenStore fails every load with a corrupt-payload error.
type brokenStore struct {
	memory.WorkspaceStore
}

func (s *brokenStore) LoadDocuments() ([]domain.Document, error) {
	return nil, errors.New("corrupt payload")
}

func (s *brokenStore) LoadActiveID() (string, error) {
	return "", errors.New("corrupt payload")
}

// newTestService builds a service over a fresh in-memory store with a
// deterministic id sequence and an advancing fake clock.
func newTestService(t *testing.T) (*WorkspaceService, *memory.WorkspaceStore) {
	t.Helper()
	store := memory.NewWorkspaceStore()
	svc := NewWorkspaceService(store)

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("doc-%d", seq)
	}
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, store
}

func TestNewWorkspaceService_SeedsWelcome(t *testing.T) {
	svc, _ := newTestService(t)

	docs := svc.List()
	require.Len(t, docs, 1)
	assert.Equal(t, domain.WelcomeDocumentTitle, docs[0].Title)
	assert.Equal(t, domain.WelcomeDocumentContent, docs[0].Content)
	assert.Equal(t, docs[0].ID, svc.ActiveID())
}

func TestNewWorkspaceService_CorruptStateFallsBack(t *testing.T) {
	svc := NewWorkspaceService(&brokenStore{})

	docs := svc.List()
	require.Len(t, docs, 1)
	assert.Equal(t, domain.WelcomeDocumentTitle, docs[0].Title)
	assert.Equal(t, docs[0].ID, svc.ActiveID())
}

func TestNewWorkspaceService_StaleActiveIDFallsBack(t *testing.T) {
	store := memory.NewWorkspaceStore()
	now := time.Now()
	require.NoError(t, store.SaveDocuments([]domain.Document{
		{ID: "x", Title: "X", CreatedAt: now, UpdatedAt: now},
		{ID: "y", Title: "Y", CreatedAt: now, UpdatedAt: now},
	}))
	require.NoError(t, store.SaveActiveID("gone"))

	svc := NewWorkspaceService(store)

	assert.Equal(t, "x", svc.ActiveID())
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService(t)

	doc := svc.Create("Notes")

	assert.Equal(t, "Notes", doc.Title)
	assert.Equal(t, "# Notes\n\nStart writing here...\n", doc.Content)
	assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)
	assert.Equal(t, doc.ID, svc.ActiveID())

	docs := svc.List()
	require.Len(t, docs, 2)
	assert.Equal(t, doc.ID, docs[0].ID, "new documents are inserted at the front")
}

func TestCreate_EmptyTitleDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	doc := svc.Create("   ")

	assert.Equal(t, domain.DefaultTitle, doc.Title)
}

func TestUpdateContent(t *testing.T) {
	svc, _ := newTestService(t)
	doc := svc.Create("Notes")

	svc.UpdateContent(doc.ID, "# Notes\n\nrevised\n")

	updated, ok := svc.Get(doc.ID)
	require.True(t, ok)
	assert.Equal(t, "# Notes\n\nrevised\n", updated.Content)
	assert.True(t, updated.UpdatedAt.After(doc.UpdatedAt))
	assert.Equal(t, doc.CreatedAt, updated.CreatedAt, "CreatedAt never changes")
}

func TestUpdateContent_UnknownIDNoop(t *testing.T) {
	svc, _ := newTestService(t)
	before := svc.List()

	svc.UpdateContent("nope", "content")

	assert.Equal(t, before, svc.List())
}

func TestUpdatedAt_Monotonic(t *testing.T) {
	svc, _ := newTestService(t)
	doc := svc.Create("Notes")

	// Clock jumps backward; UpdatedAt must not.
	frozen := doc.UpdatedAt.Add(-time.Hour)
	svc.now = func() time.Time { return frozen }

	svc.UpdateContent(doc.ID, "newer content")

	updated, _ := svc.Get(doc.ID)
	assert.False(t, updated.UpdatedAt.Before(doc.UpdatedAt),
		"UpdatedAt moved backward: %v < %v", updated.UpdatedAt, doc.UpdatedAt)
	assert.Equal(t, "newer content", updated.Content, "mutation still applies")
}

func TestRename(t *testing.T) {
	svc, _ := newTestService(t)
	doc := svc.Create("Draft")

	svc.Rename(doc.ID, "Final")

	renamed, _ := svc.Get(doc.ID)
	assert.Equal(t, "Final", renamed.Title)
	assert.True(t, renamed.UpdatedAt.After(doc.UpdatedAt))
}

func TestRename_IgnoresBlankTitles(t *testing.T) {
	svc, _ := newTestService(t)
	doc := svc.Create("Draft")

	svc.Rename(doc.ID, "")
	svc.Rename(doc.ID, "   \t ")

	kept, _ := svc.Get(doc.ID)
	assert.Equal(t, "Draft", kept.Title)
	assert.Equal(t, doc.UpdatedAt, kept.UpdatedAt)
}

func TestDelete_RepointsSelection(t *testing.T) {
	svc, _ := newTestService(t)
	y := svc.Create("Y")
	x := svc.Create("X") // list is [X, Y], X active

	svc.Delete(x.ID)

	docs := svc.List()
	require.Len(t, docs, 2) // Y plus the seeded welcome doc
	assert.Equal(t, y.ID, docs[0].ID)
	assert.Equal(t, y.ID, svc.ActiveID(), "selection moves to the first remaining document")
}

func TestDelete_InactiveKeepsSelection(t *testing.T) {
	svc, _ := newTestService(t)
	y := svc.Create("Y")
	x := svc.Create("X")

	svc.Delete(y.ID)

	assert.Equal(t, x.ID, svc.ActiveID())
}

func TestDelete_LastDocumentSynthesizesFresh(t *testing.T) {
	svc, _ := newTestService(t)
	for _, doc := range svc.List() {
		svc.Delete(doc.ID)
	}

	docs := svc.List()
	require.Len(t, docs, 1, "workspace is never empty")
	assert.Equal(t, domain.DefaultTitle, docs[0].Title)
	assert.Equal(t, docs[0].ID, svc.ActiveID())
}

func TestDelete_NeverEmptyUnderRepeatedDeletes(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Create("A")
	svc.Create("B")

	for i := 0; i < 10; i++ {
		docs := svc.List()
		require.NotEmpty(t, docs)
		svc.Delete(docs[0].ID)

		remaining := svc.List()
		require.NotEmpty(t, remaining)
		_, ok := svc.Get(svc.ActiveID())
		assert.True(t, ok, "active id must reference an existing document")
	}
}

func TestDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	x := svc.Create("Plan")
	svc.UpdateContent(x.ID, "body")

	svc.Duplicate(x.ID)

	docs := svc.List()
	dup := docs[0]
	assert.Equal(t, "Plan (Copy)", dup.Title)
	assert.Equal(t, "body", dup.Content)
	assert.NotEqual(t, x.ID, dup.ID)
	assert.Equal(t, dup.ID, svc.ActiveID())
}

func TestDuplicate_UnknownIDNoop(t *testing.T) {
	svc, _ := newTestService(t)
	before := svc.List()

	svc.Duplicate("nope")

	assert.Equal(t, before, svc.List())
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Create("Shopping List")
	groceries := svc.Create("Groceries")
	svc.UpdateContent(groceries.ID, "# Groceries\n\nbuy MILK and eggs\n")

	t.Run("empty query returns full list", func(t *testing.T) {
		assert.Equal(t, svc.List(), svc.Search(""))
		assert.Equal(t, svc.List(), svc.Search("  \t"))
	})

	t.Run("title match is case-insensitive", func(t *testing.T) {
		results := svc.Search("shopping")
		require.Len(t, results, 1)
		assert.Equal(t, "Shopping List", results[0].Title)
	})

	t.Run("content match is case-insensitive", func(t *testing.T) {
		results := svc.Search("milk")
		require.Len(t, results, 1)
		assert.Equal(t, "Groceries", results[0].Title)
	})

	t.Run("results preserve list order", func(t *testing.T) {
		results := svc.Search("e")
		var ids []string
		for _, doc := range results {
			ids = append(ids, doc.ID)
		}
		var expected []string
		for _, doc := range svc.List() {
			for _, id := range ids {
				if doc.ID == id {
					expected = append(expected, doc.ID)
				}
			}
		}
		assert.Equal(t, expected, ids)
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, svc.Search("zzzzzz"))
	})
}

func TestSetActive(t *testing.T) {
	svc, _ := newTestService(t)
	a := svc.Create("A")
	b := svc.Create("B")

	svc.SetActive(a.ID)
	assert.Equal(t, a.ID, svc.ActiveID())
	assert.Equal(t, a.ID, svc.Active().ID)

	svc.SetActive("unknown")
	assert.Equal(t, a.ID, svc.ActiveID(), "unknown ids never dangle the selection")

	svc.SetActive(b.ID)
	assert.Equal(t, b.ID, svc.ActiveID())
}

func TestImportExport(t *testing.T) {
	svc, _ := newTestService(t)

	content := "# Imported\n\nexact bytes\r\nwith odd line endings\n"
	doc := svc.Import("notes", content)

	assert.Equal(t, content, doc.Content, "import is byte-for-byte")
	assert.Equal(t, doc.ID, svc.ActiveID())
	assert.Equal(t, doc.ID, svc.List()[0].ID)

	name, ok := svc.ExportName(doc.ID)
	require.True(t, ok)
	assert.Equal(t, "notes.md", name)

	_, ok = svc.ExportName("unknown")
	assert.False(t, ok)
}

func TestPersistence_RoundTrip(t *testing.T) {
	store := memory.NewWorkspaceStore()
	first := NewWorkspaceService(store)
	doc := first.Create("Persisted")
	first.UpdateContent(doc.ID, "# Persisted\n\nacross sessions\n")
	first.SetActive(doc.ID)

	// A new session over the same storage snapshot.
	second := NewWorkspaceService(store)

	assert.Equal(t, first.List(), second.List())
	assert.Equal(t, doc.ID, second.ActiveID())
}

func TestMutations_SurviveStorageFailure(t *testing.T) {
	svc, store := newTestService(t)
	store.FailSaves = errors.New("disk full")

	doc := svc.Create("Unstored")

	got, ok := svc.Get(doc.ID)
	require.True(t, ok, "in-memory state is the source of truth for the session")
	assert.Equal(t, "Unstored", got.Title)
	assert.Equal(t, doc.ID, svc.ActiveID())
}

func TestList_ReturnsCopies(t *testing.T) {
	svc, _ := newTestService(t)
	svc.Create("Original")

	docs := svc.List()
	docs[0].Title = "Tampered"

	assert.Equal(t, "Original", svc.List()[0].Title)
}
