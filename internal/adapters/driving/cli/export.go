package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export [doc-id]",
	Short: "Export a document to a markdown file",
	Long: `Writes the document's content, byte-for-byte, to "<title>.md"
in the output directory. With no id the active document is exported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", ".", "output directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	id := workspaceService.ActiveID()
	if len(args) == 1 {
		id = args[0]
	}

	name, ok := workspaceService.ExportName(id)
	if !ok {
		return fmt.Errorf("no document with id %s: %w", id, domain.ErrNotFound)
	}
	doc, ok := workspaceService.Get(id)
	if !ok {
		return fmt.Errorf("no document with id %s: %w", id, domain.ErrNotFound)
	}

	path := filepath.Join(exportDir, name)
	if err := os.WriteFile(path, []byte(doc.Content), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	cmd.Printf("Exported %q to %s\n", doc.Title, path)
	return nil
}
