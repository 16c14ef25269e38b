package docset

import "context"

// EntryType categorizes a search index entry. The values are part of the
// docset contract and appear verbatim in the index table's type column.
type EntryType string

// Entry types recognized by documentation browsers.
const (
	EntryModule    EntryType = "Module"
	EntryClass     EntryType = "Class"
	EntryEvent     EntryType = "Event"
	EntryInterface EntryType = "Interface"
	EntryEnum      EntryType = "Enum"
	EntryMethod    EntryType = "Method"
)

// IndexEntry maps a documented symbol to its location in the docset.
// Path is relative to the documents directory and may carry a fragment
// identifier pointing at an anchor within the page.
type IndexEntry struct {
	Name string
	Type EntryType
	Path string
}

// Validate returns an error if the entry contains invalid fields.
func (e *IndexEntry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "index entry name required")
	}
	if e.Type == "" {
		return Errorf(EINVALID, "index entry type required")
	}
	if e.Path == "" {
		return Errorf(EINVALID, "index entry path required")
	}
	return nil
}

// IndexStore persists index entries for the documentation browser.
type IndexStore interface {
	// Reset drops and recreates the index table. Called exactly once at
	// the start of a run; a full crawl never updates entries in place.
	Reset(ctx context.Context) error

	// Insert adds an entry. Re-inserting an identical (name, type, path)
	// triple is a silent no-op. Each insert is immediately durable.
	Insert(ctx context.Context, entry *IndexEntry) error
}
