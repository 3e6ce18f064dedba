package services

import (
	"fmt"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySyncScroll      = "editor.sync_scroll"
	keyViewMode        = "editor.view_mode"
	keyShowLineNumbers = "editor.show_line_numbers"
	keyToolbarVisible  = "editor.toolbar_visible"
)

// SettingsService manages persisted editor preferences.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves the current editor settings, falling back to defaults
// for anything not yet persisted or not parseable.
func (s *SettingsService) Get() domain.EditorSettings {
	defaults := domain.DefaultEditorSettings()

	return domain.EditorSettings{
		SyncScroll:      s.getBool(keySyncScroll, defaults.SyncScroll),
		ViewMode:        s.getViewMode(defaults.ViewMode),
		ShowLineNumbers: s.getBool(keyShowLineNumbers, defaults.ShowLineNumbers),
		ToolbarVisible:  s.getBool(keyToolbarVisible, defaults.ToolbarVisible),
	}
}

// Save persists the given editor settings.
func (s *SettingsService) Save(settings domain.EditorSettings) error {
	if !settings.ViewMode.IsValid() {
		return fmt.Errorf("view mode %q: %w", settings.ViewMode, domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keySyncScroll, settings.SyncScroll); err != nil {
		return fmt.Errorf("save sync_scroll: %w", err)
	}
	if err := s.configStore.Set(keyViewMode, settings.ViewMode.String()); err != nil {
		return fmt.Errorf("save view_mode: %w", err)
	}
	if err := s.configStore.Set(keyShowLineNumbers, settings.ShowLineNumbers); err != nil {
		return fmt.Errorf("save show_line_numbers: %w", err)
	}
	if err := s.configStore.Set(keyToolbarVisible, settings.ToolbarVisible); err != nil {
		return fmt.Errorf("save toolbar_visible: %w", err)
	}
	return nil
}

func (s *SettingsService) getBool(key string, def bool) bool {
	val, ok := s.configStore.Get(key)
	if !ok {
		return def
	}
	b, ok := val.(bool)
	if !ok {
		return def
	}
	return b
}

func (s *SettingsService) getViewMode(def domain.ViewMode) domain.ViewMode {
	mode := domain.ViewMode(s.configStore.GetString(keyViewMode))
	if !mode.IsValid() {
		return def
	}
	return mode
}
