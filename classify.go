package docset

import "strings"

// ClassifyName maps a documented type name to its index entry type using
// the naming conventions of the Qt for Python API. The function is total:
// names that match no convention are classified as classes.
func ClassifyName(name string) EntryType {
	switch {
	case strings.HasSuffix(name, "Event"):
		return EntryEvent
	case strings.HasSuffix(name, "Interface"):
		return EntryInterface
	case strings.HasSuffix(name, "Enum"):
		return EntryEnum
	default:
		return EntryClass
	}
}
