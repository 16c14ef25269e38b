package docset

import "context"

// Page represents a rendered documentation page. Body holds the cleaned
// HTML fragment that is injected verbatim into the standalone page shell.
type Page struct {
	FileName string
	Title    string
	Body     string
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.FileName == "" {
		return Errorf(EINVALID, "page file name required")
	}
	if p.Body == "" {
		return Errorf(EINVALID, "page body required")
	}
	return nil
}

// PageStore persists rendered pages in the documents directory.
type PageStore interface {
	// WritePage wraps the page body in the standalone HTML shell and
	// writes it under the documents directory. When warnOnOverwrite is
	// set and the target file exists, an advisory warning is printed;
	// the write always proceeds.
	WritePage(ctx context.Context, page *Page, warnOnOverwrite bool) error

	// ReadPage returns the raw contents of a previously written page.
	// Returns ENOTFOUND if no page with that name exists.
	ReadPage(name string) (string, error)

	// WriteRaw overwrites a page with already-rendered contents, without
	// re-wrapping it in the shell and without an overwrite warning. Used
	// by the crawl's post-pass, which patches a saved page in place.
	WriteRaw(name, contents string) error
}

// AssetStore persists downloaded assets (stylesheets, images) in the
// documents directory. Assets are overwritten silently.
type AssetStore interface {
	WriteAsset(name string, data []byte) error
}
