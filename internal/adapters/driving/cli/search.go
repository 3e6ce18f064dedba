package cli

import (
	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search documents by title or content",
	Long: `Searches document titles and content for the query,
case-insensitively, and lists the matches in workspace order.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	results := workspaceService.Search(args[0])

	if searchJSON {
		return outputDocumentsJSON(cmd, results)
	}

	if len(results) == 0 {
		cmd.Println("No matches.")
		return nil
	}

	for i, doc := range results {
		cmd.Printf("  [%d] %s (%s)\n", i+1, doc.Title, doc.ID)
	}
	return nil
}
