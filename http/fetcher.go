// Package http provides HTTP-based implementations of docset.Fetcher and
// docset.Downloader. The documentation site is static, server-rendered
// HTML, so a plain HTTP client is sufficient.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	docset "github.com/Cronos87/pyside-docset-generator"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements docset.Fetcher at compile time.
var _ docset.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages using HTTP GET requests. An HTTP error
// status is surfaced as an ENOTFOUND application error so the crawler can
// skip missing pages instead of aborting.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := get(ctx, f.client, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// Ensure Downloader implements docset.Downloader at compile time.
var _ docset.Downloader = (*Downloader)(nil)

// Downloader retrieves binary or text assets using HTTP GET requests.
type Downloader struct {
	client *http.Client
}

// NewDownloader creates a new HTTP-based Downloader.
// A zero timeout falls back to DefaultFetchTimeout.
func NewDownloader(timeout time.Duration) *Downloader {
	if timeout == 0 {
		timeout = DefaultFetchTimeout
	}
	return &Downloader{
		client: &http.Client{Timeout: timeout},
	}
}

// Download retrieves the resource verbatim.
func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	return get(ctx, d.client, url)
}

func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, docset.Errorf(docset.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
