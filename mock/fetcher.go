package mock

import (
	"context"

	docset "github.com/Cronos87/pyside-docset-generator"
)

var _ docset.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docset.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ docset.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of docset.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) ([]byte, error)
}

func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	return d.DownloadFn(ctx, url)
}
