package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspace documents",
	Long:  `Lists all documents in the workspace, most recently created first.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output documents as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	docs := workspaceService.List()

	if listJSON {
		return outputDocumentsJSON(cmd, docs)
	}

	activeID := workspaceService.ActiveID()
	for _, doc := range docs {
		marker := " "
		if doc.ID == activeID {
			marker = "*"
		}
		stats := domain.ComputeStats(doc.Content)
		cmd.Printf("%s %-36s  %-30s  %4dw  %s\n",
			marker, doc.ID, doc.Title, stats.Words, doc.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func outputDocumentsJSON(cmd *cobra.Command, docs []domain.Document) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal documents: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
