package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/inkwell-labs/inkwell-cli/internal/logger"
)

var importWatch bool

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Import markdown files into the workspace",
	Long: `Imports each file as a document titled after the file name,
with the extension stripped. Content is imported byte-for-byte.

With --watch the arguments are directories: inkwell keeps running and
imports every markdown file created or modified under them until
interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importWatch, "watch", false, "watch directories and import markdown files as they appear")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importWatch {
		return watchDirs(cmd, args)
	}

	for _, path := range args {
		if err := importFile(cmd, path); err != nil {
			return err
		}
	}
	return nil
}

func importFile(cmd *cobra.Command, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc := workspaceService.Import(title, string(content))

	cmd.Printf("Imported %q (%s)\n", doc.Title, doc.ID)
	return nil
}

// watchDirs imports markdown files as they are created or written
// under the given directories, until the process is interrupted.
func watchDirs(cmd *cobra.Command, dirs []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("watching %s: not a directory", dir)
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		cmd.Printf("Watching %s\n", dir)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isMarkdown(event.Name) {
				continue
			}
			if err := importFile(cmd, event.Name); err != nil {
				// A file may vanish between the event and the read.
				logger.Warn("import skipped: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if err != nil && !errors.Is(err, fsnotify.ErrEventOverflow) {
				return fmt.Errorf("watcher: %w", err)
			}
		}
	}
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
