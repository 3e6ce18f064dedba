package domain

// HeadingEntry is a derived outline record for one structural heading
// found in a document's raw text. Entries are recomputed from scratch on
// every content change and carry no identity across edits: the ID's
// disambiguator is positional, so an entry's ID may change when headings
// before it are added or removed.
type HeadingEntry struct {
	// Level is the heading depth, 1 through 6.
	Level int

	// Text is the heading label with inline markup markers stripped.
	// May be empty when the label was nothing but markup.
	Text string

	// ID is "heading-<slug>-<ordinal>", unique within a single
	// indexing pass even for duplicate or empty labels.
	ID string

	// Line is the zero-based line number the heading originates from.
	Line int
}
