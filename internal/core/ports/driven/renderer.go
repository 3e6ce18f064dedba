package driven

import (
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// RenderResult is the display tree produced by a Renderer, flattened to
// terminal lines, plus the heading anchor side channel.
type RenderResult struct {
	// Lines are the styled display lines, ready for a viewport.
	Lines []string

	// Anchors maps a heading entry id to the display line it was
	// rendered at, so outline navigation can locate headings in the
	// rendered view without re-parsing its output.
	Anchors map[string]int
}

// Renderer converts raw markdown text into display lines. It is an opaque
// collaborator: the core hands it raw text plus the outline's computed
// heading entries and asks it to attach each entry's id to the heading it
// renders from that source line. What the renderer does with the rest of
// the text (styling, fenced blocks, diagram placeholders) is its own
// concern. A render failure must never corrupt the underlying raw
// content; the raw text stays editable and persistable regardless.
type Renderer interface {
	// Render produces display lines for the given content, wrapped to
	// width, with anchors attached for the supplied heading entries.
	Render(content string, width int, headings []domain.HeadingEntry) RenderResult
}
