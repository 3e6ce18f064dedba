package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the workspace UI",
	Long: `Open the interactive terminal workspace.

Controls:
  ctrl+n   - New document
  ctrl+f   - Search documents
  ctrl+b   - Toggle sidebar
  ctrl+o   - Toggle outline
  ctrl+p   - Cycle split/editor/preview
  ctrl+y   - Toggle synchronised scrolling
  esc      - Switch between editor and sidebar
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the workspace UI requires a terminal; see 'inkwell --help' for non-interactive commands")
	}

	// Panic recovery to get stack traces out of the alt screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in UI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(workspaceService, settingsService, markdownRenderer))
	if err != nil {
		return fmt.Errorf("starting UI: %w", err)
	}

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
