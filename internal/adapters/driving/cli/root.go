// Package cli provides the command-line interface for inkwell.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/config/file"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/storage/sqlite"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
	"github.com/inkwell-labs/inkwell-cli/internal/core/services"
	"github.com/inkwell-labs/inkwell-cli/internal/logger"
	"github.com/inkwell-labs/inkwell-cli/internal/renderer/markdown"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
	dataDir   string
)

// Injected services. Wired from the on-disk adapters on first use;
// tests swap them via SetServices.
var (
	workspaceService driving.WorkspaceService
	settingsService  driving.SettingsService
	markdownRenderer driven.Renderer
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "A markdown workspace in your terminal",
	Long: `Inkwell is a persistent markdown workspace: write in a split
editor/preview surface with synchronised scrolling, navigate by heading
outline, and keep every document stored locally.

Running inkwell with no arguments opens the workspace UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return wireServices()
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.inkwell)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.inkwell/data)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects service implementations, bypassing the on-disk
// adapters. Used by tests.
func SetServices(workspace driving.WorkspaceService, settings driving.SettingsService, renderer driven.Renderer) {
	workspaceService = workspace
	settingsService = settings
	markdownRenderer = renderer
}

// wireServices builds the production services on first use.
func wireServices() error {
	if workspaceService != nil && settingsService != nil && markdownRenderer != nil {
		return nil
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening workspace store: %w", err)
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	workspaceService = services.NewWorkspaceService(store)
	settingsService = services.NewSettingsService(configStore)
	markdownRenderer = markdown.New()

	logger.Debug("services wired (config=%s)", configStore.Path())
	return nil
}
