// Package markdown renders raw markdown text into styled terminal
// lines for the preview pane.
//
// The renderer is deliberately best-effort: it styles headings, lists,
// blockquotes and fenced code blocks and wraps prose to the requested
// width, but it makes no grammar guarantees. The core treats it as an
// opaque collaborator behind the driven.Renderer port; a bad render can
// only ever produce ugly preview lines, never touch the raw content.
package markdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driven"
)

// mermaidMarker is the reserved fence language for diagram blocks.
// Their content is shown as a placeholder and never styled or parsed.
const mermaidMarker = "mermaid"

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer converts markdown to styled display lines.
type Renderer struct {
	heading [6]lipgloss.Style
	code    lipgloss.Style
	quote   lipgloss.Style
	rule    lipgloss.Style
	diagram lipgloss.Style
	plain   lipgloss.Style
}

// New creates a renderer with the default styles.
func New() *Renderer {
	purple := lipgloss.Color("#7C3AED")
	cyan := lipgloss.Color("#06B6D4")
	muted := lipgloss.Color("#6C7086")

	r := &Renderer{
		code:    lipgloss.NewStyle().Foreground(cyan),
		quote:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		rule:    lipgloss.NewStyle().Foreground(muted),
		diagram: lipgloss.NewStyle().Foreground(muted).Italic(true),
		plain:   lipgloss.NewStyle(),
	}
	for i := range r.heading {
		style := lipgloss.NewStyle().Bold(true)
		if i < 2 {
			style = style.Foreground(purple)
		}
		r.heading[i] = style
	}
	return r
}

// Render produces display lines for content, wrapped to width, and
// attaches each supplied heading entry's id to the display line its
// heading is rendered at.
func (r *Renderer) Render(content string, width int, headings []domain.HeadingEntry) driven.RenderResult {
	if width < 20 {
		width = 20
	}

	byLine := make(map[int]domain.HeadingEntry, len(headings))
	for _, h := range headings {
		byLine[h.Line] = h
	}

	result := driven.RenderResult{Anchors: make(map[string]int, len(headings))}

	inFence := false
	fenceLang := ""
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				inFence = false
				fenceLang = ""
			} else {
				inFence = true
				fenceLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				if fenceLang == mermaidMarker {
					result.Lines = append(result.Lines, r.diagram.Render("[diagram]"))
				}
			}
			continue
		}

		if inFence {
			if fenceLang != mermaidMarker {
				result.Lines = append(result.Lines, r.code.Render(line))
			}
			continue
		}

		if h, ok := byLine[i]; ok {
			result.Anchors[h.ID] = len(result.Lines)
			result.Lines = append(result.Lines, r.heading[h.Level-1].Render(h.Text))
			continue
		}

		switch {
		case trimmed == "":
			result.Lines = append(result.Lines, "")
		case trimmed == "---" || trimmed == "***" || trimmed == "___":
			result.Lines = append(result.Lines, r.rule.Render(strings.Repeat("─", width)))
		case strings.HasPrefix(trimmed, ">"):
			quoted := strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
			for _, w := range wrap("│ "+quoted, width) {
				result.Lines = append(result.Lines, r.quote.Render(w))
			}
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "+ "):
			item := "• " + trimmed[2:]
			for _, w := range wrap(item, width) {
				result.Lines = append(result.Lines, r.plain.Render(w))
			}
		default:
			for _, w := range wrap(line, width) {
				result.Lines = append(result.Lines, r.plain.Render(w))
			}
		}
	}

	return result
}

// wrap splits a line into chunks no longer than width runes.
func wrap(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}
	var out []string
	for len(runes) > width {
		out = append(out, string(runes[:width]))
		runes = runes[width:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}
