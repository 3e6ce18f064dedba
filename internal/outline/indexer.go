// Package outline derives a navigable heading structure from raw
// markdown text and resolves outline entries to concrete navigation
// targets in the editor and preview surfaces.
//
// Indexing is independent of whatever the renderer does with the same
// text: the outline is computed from the raw source in a single linear
// pass, and entries are recomputed from scratch on every content change.
package outline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

// headingPattern matches a heading line: one to six '#' characters,
// at least one whitespace, then a non-empty remainder. A '#' followed
// immediately by non-whitespace (e.g. "#tag") is not a heading.
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// inlineMarkers are the markup characters stripped from heading labels:
// emphasis/bold, strikethrough, inline code, link/image brackets and
// parens, and literal '#'.
const inlineMarkers = "*_`~[]()#"

// Index scans content line by line and returns its heading entries in
// source order. Each entry's id is "heading-<slug>-<ordinal>" where the
// ordinal is the zero-based position among all headings of this pass,
// so ids are pairwise distinct even when two headings share a label or
// a label strips to nothing.
func Index(content string) []domain.HeadingEntry {
	if content == "" {
		return nil
	}

	var entries []domain.HeadingEntry
	for i, line := range strings.Split(content, "\n") {
		match := headingPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		text := stripInlineMarkers(match[2])
		entries = append(entries, domain.HeadingEntry{
			Level: len(match[1]),
			Text:  text,
			ID:    fmt.Sprintf("heading-%s-%d", Slug(text), len(entries)),
			Line:  i,
		})
	}
	return entries
}

// stripInlineMarkers removes inline markup characters from a heading
// label and trims surrounding whitespace.
func stripInlineMarkers(text string) string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(inlineMarkers, r) {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(stripped)
}

// Slug normalises a heading label into an identifier-safe form:
// lowercased, internal whitespace runs collapsed to single hyphens, and
// anything that is not ASCII alphanumeric or hyphen removed. The result
// may be empty for labels with no usable characters.
func Slug(text string) string {
	joined := strings.Join(strings.Fields(strings.ToLower(text)), "-")
	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
