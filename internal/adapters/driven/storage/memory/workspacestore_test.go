package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

func TestWorkspaceStore_EmptyLoads(t *testing.T) {
	store := NewWorkspaceStore()

	_, err := store.LoadDocuments()
	assert.ErrorIs(t, err, domain.ErrNoWorkspace)

	_, err = store.LoadActiveID()
	assert.ErrorIs(t, err, domain.ErrNoWorkspace)
}

func TestWorkspaceStore_RoundTrip(t *testing.T) {
	store := NewWorkspaceStore()
	now := time.Now()
	docs := []domain.Document{
		{ID: "a", Title: "First", Content: "# First\n", CreatedAt: now, UpdatedAt: now},
		{ID: "b", Title: "Second", Content: "body", CreatedAt: now, UpdatedAt: now},
	}

	require.NoError(t, store.SaveDocuments(docs))
	require.NoError(t, store.SaveActiveID("b"))

	loaded, err := store.LoadDocuments()
	require.NoError(t, err)
	assert.Equal(t, docs, loaded)

	activeID, err := store.LoadActiveID()
	require.NoError(t, err)
	assert.Equal(t, "b", activeID)
}

func TestWorkspaceStore_SaveCopies(t *testing.T) {
	store := NewWorkspaceStore()
	docs := []domain.Document{{ID: "a", Title: "Original"}}

	require.NoError(t, store.SaveDocuments(docs))
	docs[0].Title = "Mutated"

	loaded, err := store.LoadDocuments()
	require.NoError(t, err)
	assert.Equal(t, "Original", loaded[0].Title)
}

func TestWorkspaceStore_FailSaves(t *testing.T) {
	store := NewWorkspaceStore()
	store.FailSaves = errors.New("disk full")

	assert.Error(t, store.SaveDocuments([]domain.Document{{ID: "a"}}))
	assert.Error(t, store.SaveActiveID("a"))
}
