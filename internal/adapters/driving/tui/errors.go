package tui

import "errors"

// ErrMissingWorkspaceService is returned when the workspace service is not provided.
var ErrMissingWorkspaceService = errors.New("tui: workspace service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")

// ErrMissingRenderer is returned when the markdown renderer is not provided.
var ErrMissingRenderer = errors.New("tui: renderer is required")
