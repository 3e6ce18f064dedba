package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/storage/memory"
	"github.com/inkwell-labs/inkwell-cli/internal/core/services"
	"github.com/inkwell-labs/inkwell-cli/internal/renderer/markdown"
)

// setupCLI injects in-memory services and returns the workspace for
// assertions.
func setupCLI(t *testing.T) *services.WorkspaceService {
	t.Helper()

	workspace := services.NewWorkspaceService(memory.NewWorkspaceStore())
	SetServices(workspace, services.NewSettingsService(memory.NewConfigStore()), markdown.New())
	t.Cleanup(func() {
		SetServices(nil, nil, nil)
	})

	return workspace
}

// execute runs the root command with the given args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "inkwell", rootCmd.Use)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	// Empty strings keep the current value.
	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}
