package driving

import (
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// SettingsService manages persisted editor preferences.
type SettingsService interface {
	// Get retrieves the current editor settings, falling back to
	// defaults for anything not yet persisted.
	Get() domain.EditorSettings

	// Save persists the given editor settings.
	Save(settings domain.EditorSettings) error
}
