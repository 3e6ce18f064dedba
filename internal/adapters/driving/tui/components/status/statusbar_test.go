package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

func TestNewBar_Defaults(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	out := bar.View()
	assert.Contains(t, out, "split")
	assert.Contains(t, out, "sync off")
}

func TestSetDocument_ShowsStats(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetDocument("Notes", "one two three")

	out := bar.View()
	assert.Contains(t, out, "Notes")
	assert.Contains(t, out, "3w")
	assert.Contains(t, out, "1m read")
}

func TestSetViewModeAndSync(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetViewMode(domain.ViewModePreview)
	bar.SetSyncScroll(true)

	out := bar.View()
	assert.Contains(t, out, "preview")
	assert.Contains(t, out, "sync on")
}

func TestSetError_TakesOverLeftSide(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetDocument("Notes", "hello")

	bar.SetError("disk full")
	assert.Contains(t, bar.View(), "disk full")

	bar.SetError("")
	assert.Contains(t, bar.View(), "Notes")
}

func TestSetShowHints_HidesHintSection(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)

	bar.SetShowHints(true)
	withHints := bar.View()

	bar.SetShowHints(false)
	withoutHints := bar.View()

	assert.NotEqual(t, withHints, withoutHints)
	assert.NotContains(t, withoutHints, "quit")
}

func TestSetEditing_SwitchesHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)

	bar.SetEditing(false)
	listHints := bar.View()

	bar.SetEditing(true)
	editorHints := bar.View()

	assert.NotEqual(t, listHints, editorHints)
}
