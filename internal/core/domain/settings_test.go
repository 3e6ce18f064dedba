package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewMode_IsValid(t *testing.T) {
	tests := []struct {
		mode  ViewMode
		valid bool
	}{
		{ViewModeSplit, true},
		{ViewModeEditor, true},
		{ViewModePreview, true},
		{ViewMode("invalid"), false},
		{ViewMode(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.mode.IsValid())
		})
	}
}

func TestViewMode_Visibility(t *testing.T) {
	assert.True(t, ViewModeSplit.ShowsEditor())
	assert.True(t, ViewModeSplit.ShowsPreview())
	assert.True(t, ViewModeSplit.ShowsBoth())

	assert.True(t, ViewModeEditor.ShowsEditor())
	assert.False(t, ViewModeEditor.ShowsPreview())
	assert.False(t, ViewModeEditor.ShowsBoth())

	assert.False(t, ViewModePreview.ShowsEditor())
	assert.True(t, ViewModePreview.ShowsPreview())
	assert.False(t, ViewModePreview.ShowsBoth())
}

func TestDefaultEditorSettings(t *testing.T) {
	settings := DefaultEditorSettings()

	assert.True(t, settings.SyncScroll)
	assert.Equal(t, ViewModeSplit, settings.ViewMode)
	assert.False(t, settings.ShowLineNumbers)
	assert.True(t, settings.ToolbarVisible)
}
