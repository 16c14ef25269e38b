package docset

import "context"

// Fetcher retrieves HTML pages from the documentation site.
type Fetcher interface {
	// Fetch performs a read-only retrieval of the URL and returns the
	// page HTML. An HTTP error status is reported as an ENOTFOUND
	// application error rather than a transport failure, so callers can
	// treat missing pages as a recoverable condition.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// Downloader retrieves binary or text assets from the documentation site.
type Downloader interface {
	// Download fetches the resource verbatim. An HTTP error status is
	// reported as an ENOTFOUND application error.
	Download(ctx context.Context, url string) ([]byte, error)
}
