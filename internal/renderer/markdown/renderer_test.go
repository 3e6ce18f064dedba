package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-labs/inkwell-cli/internal/outline"
)

func render(t *testing.T, content string, width int) (result []string, anchors map[string]int) {
	t.Helper()
	res := New().Render(content, width, outline.Index(content))
	return res.Lines, res.Anchors
}

func TestRender_HeadingAnchors(t *testing.T) {
	content := "# Intro\n\nsome text\n\n## Details\n"

	lines, anchors := render(t, content, 80)

	require.Contains(t, anchors, "heading-intro-0")
	require.Contains(t, anchors, "heading-details-1")
	assert.Contains(t, lines[anchors["heading-intro-0"]], "Intro")
	assert.Contains(t, lines[anchors["heading-details-1"]], "Details")
}

func TestRender_AnchorsForDuplicateHeadings(t *testing.T) {
	lines, anchors := render(t, "# A\n\ntext\n\n# A\n", 80)

	require.Len(t, anchors, 2)
	assert.NotEqual(t, anchors["heading-a-0"], anchors["heading-a-1"])
	assert.Contains(t, lines[anchors["heading-a-1"]], "A")
}

func TestRender_FencedCodeIsNotAHeading(t *testing.T) {
	content := "```\n# not a heading\n```\n"

	lines, anchors := render(t, content, 80)

	assert.Empty(t, anchors)
	// Fence markers themselves are dropped, content survives.
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "# not a heading")
}

func TestRender_MermaidPlaceholder(t *testing.T) {
	content := "```mermaid\ngraph TD;\nA-->B;\n```\ndone\n"

	lines, _ := render(t, content, 80)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "[diagram]")
	assert.NotContains(t, joined, "graph TD", "diagram source is replaced by a placeholder")
	assert.Contains(t, joined, "done")
}

func TestRender_WrapsLongLines(t *testing.T) {
	long := strings.Repeat("x", 100)

	lines, _ := render(t, long, 40)

	require.Len(t, lines, 3)
	assert.Len(t, []rune(stripStyle(lines[0])), 40)
}

func TestRender_ListsAndQuotes(t *testing.T) {
	lines, _ := render(t, "- item one\n> quoted\n---\n", 40)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "• item one")
	assert.Contains(t, joined, "│ quoted")
	assert.Contains(t, joined, "─")
}

func TestRender_MinimumWidth(t *testing.T) {
	lines, _ := render(t, strings.Repeat("y", 30), 1)

	// Width is clamped, not honoured literally.
	require.Len(t, lines, 2)
}

func TestRender_EmptyContent(t *testing.T) {
	res := New().Render("", 80, nil)

	assert.Empty(t, res.Anchors)
	assert.Equal(t, []string{""}, res.Lines)
}

// stripStyle removes ANSI escape sequences when the test environment
// renders with colour.
func stripStyle(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
