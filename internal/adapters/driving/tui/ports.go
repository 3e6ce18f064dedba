// Package tui provides the interactive terminal workspace for inkwell.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

// Ports aggregates everything the TUI needs from the core.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Workspace owns the document collection and active selection.
	Workspace driving.WorkspaceService

	// Settings manages persisted editor preferences.
	Settings driving.SettingsService

	// Renderer turns markdown into display lines for the preview pane.
	Renderer driven.Renderer
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(workspace driving.WorkspaceService, settings driving.SettingsService, renderer driven.Renderer) *Ports {
	return &Ports{
		Workspace: workspace,
		Settings:  settings,
		Renderer:  renderer,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Workspace == nil {
		return ErrMissingWorkspaceService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	if p.Renderer == nil {
		return ErrMissingRenderer
	}
	return nil
}
