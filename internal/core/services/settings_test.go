package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/storage/memory"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

func TestSettingsService_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultEditorSettings(), svc.Get())
}

func TestSettingsService_SaveAndGet(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	saved := domain.EditorSettings{
		SyncScroll:      false,
		ViewMode:        domain.ViewModePreview,
		ShowLineNumbers: true,
		ToolbarVisible:  false,
	}
	require.NoError(t, svc.Save(saved))

	assert.Equal(t, saved, svc.Get())
}

func TestSettingsService_Save_RejectsInvalidViewMode(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	err := svc.Save(domain.EditorSettings{ViewMode: "sideways"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_InvalidViewModeFallsBack(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("editor.view_mode", "sideways"))
	svc := NewSettingsService(store)

	assert.Equal(t, domain.ViewModeSplit, svc.Get().ViewMode)
}

func TestSettingsService_TypeMismatchFallsBack(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("editor.sync_scroll", "yes"))
	svc := NewSettingsService(store)

	assert.True(t, svc.Get().SyncScroll, "non-boolean value falls back to the default")
}
