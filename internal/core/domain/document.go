package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultTitle is used when a document is created without a title.
const DefaultTitle = "Untitled"

// placeholderBody is the seed body below the title heading of a new document.
const placeholderBody = "Start writing here..."

// Document is the persisted unit of the workspace.
type Document struct {
	// ID is an opaque stable identifier, unique within the workspace
	// for the document's lifetime. Generated at creation, never reassigned.
	ID string

	// Title is the display name. Mutable and not unique.
	Title string

	// Content is the full raw markdown text.
	Content string

	// CreatedAt is when the document was created. Never changes.
	CreatedAt time.Time

	// UpdatedAt advances on every content or title mutation and
	// never moves backward.
	UpdatedAt time.Time
}

// SeedContent builds the initial content for a freshly created document:
// a level-one heading from the title plus a placeholder body line.
func SeedContent(title string) string {
	return "# " + title + "\n\n" + placeholderBody + "\n"
}

// Stats summarises a document's content for display.
type Stats struct {
	// Words is the whitespace-separated word count.
	Words int

	// Chars is the rune count of the content.
	Chars int

	// Lines is the line count of the content.
	Lines int

	// ReadMinutes is the estimated reading time, never below one minute
	// for non-empty content.
	ReadMinutes int
}

// readWordsPerMinute is the reading speed used for the read-time estimate.
const readWordsPerMinute = 200

// ComputeStats derives display statistics from raw content.
func ComputeStats(content string) Stats {
	words := len(strings.Fields(content))
	stats := Stats{
		Words: words,
		Chars: utf8.RuneCountInString(content),
	}
	if content != "" {
		stats.Lines = strings.Count(content, "\n") + 1
		stats.ReadMinutes = (words + readWordsPerMinute - 1) / readWordsPerMinute
		if stats.ReadMinutes < 1 {
			stats.ReadMinutes = 1
		}
	}
	return stats
}

// WelcomeDocumentTitle is the title of the document seeded into an
// empty or unreadable workspace.
const WelcomeDocumentTitle = "Welcome"

// WelcomeDocumentContent is the content of the seeded welcome document.
const WelcomeDocumentContent = `# Welcome to Inkwell

Inkwell is a markdown workspace with a live split preview.

## Getting Started

- Create, rename, duplicate and delete documents from the sidebar
- Search documents by title or content
- Jump between sections with the outline panel
- The editor and preview panes scroll together in split view

## Markdown

**Bold**, *italic*, ~~strikethrough~~ and ` + "`inline code`" + ` all work,
along with lists, tables, blockquotes and fenced code blocks.

> Happy writing.
`
