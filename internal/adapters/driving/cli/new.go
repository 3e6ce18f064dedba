package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new document",
	Long:  `Creates a document, makes it active and prints its id. An omitted title defaults to "Untitled".`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	doc := workspaceService.Create(title)

	cmd.Printf("Created %q (%s)\n", doc.Title, doc.ID)
	return nil
}
