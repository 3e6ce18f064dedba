package outline

// RenderedView is the rendered preview surface the navigator prefers.
// Heading anchors are attached by the renderer from the same entries
// this package computed, so resolution is an exact lookup.
type RenderedView interface {
	// AnchorLine resolves a heading entry id to a display line.
	AnchorLine(id string) (int, bool)

	// ScrollTo scrolls the given display line to the top of the viewport.
	ScrollTo(line int)
}

// RawView is the plain-text editor surface used as a fallback when no
// rendered view is available or the anchor cannot be found there.
type RawView interface {
	// SetScrollOffset scrolls the view to the given offset.
	SetScrollOffset(offset int)

	// SetCaret moves the caret to the start of the given source line.
	SetCaret(line int)
}

// Default geometry for the raw-view approximation. The raw view is a
// plain-text surface without per-line height variance in the common
// case, so a fixed estimated line height is acceptable.
const (
	// DefaultLineHeight is the estimated height of one raw line, in
	// the raw view's scroll units. One terminal row for the TUI.
	DefaultLineHeight = 1

	// DefaultTopMargin is how far above the target line the raw view
	// is scrolled, keeping the heading clear of the viewport edge.
	DefaultTopMargin = 2
)

// Navigator turns a heading entry id into a concrete navigation action.
type Navigator struct {
	lineHeight int
	topMargin  int
}

// NewNavigator creates a navigator with the default raw-view geometry.
func NewNavigator() *Navigator {
	return &Navigator{
		lineHeight: DefaultLineHeight,
		topMargin:  DefaultTopMargin,
	}
}

// NewNavigatorWithGeometry creates a navigator with an explicit estimated
// line height and top margin for hosts whose raw view does not measure
// scroll distance in lines.
func NewNavigatorWithGeometry(lineHeight, topMargin int) *Navigator {
	if lineHeight < 1 {
		lineHeight = DefaultLineHeight
	}
	if topMargin < 0 {
		topMargin = 0
	}
	return &Navigator{
		lineHeight: lineHeight,
		topMargin:  topMargin,
	}
}

// Navigate resolves id against the rendered view first and scrolls the
// matching heading to the top of the viewport. When the rendered view is
// unavailable or does not know the anchor, the current raw content is
// re-indexed, the entry's originating line is translated into an
// approximate scroll offset, and the caret is placed at the start of
// that line. Returns false if the id resolves in neither view.
func (n *Navigator) Navigate(id, content string, rendered RenderedView, raw RawView) bool {
	if rendered != nil {
		if line, ok := rendered.AnchorLine(id); ok {
			rendered.ScrollTo(line)
			return true
		}
	}
	if raw == nil {
		return false
	}
	for _, entry := range Index(content) {
		if entry.ID != id {
			continue
		}
		offset := entry.Line*n.lineHeight - n.topMargin*n.lineHeight
		if offset < 0 {
			offset = 0
		}
		raw.SetScrollOffset(offset)
		raw.SetCaret(entry.Line)
		return true
	}
	return false
}
