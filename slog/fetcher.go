// Package slog provides logging decorators for the crawl's transport
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	docset "github.com/Cronos87/pyside-docset-generator"
)

// Ensure LoggingFetcher implements docset.Fetcher at compile time.
var _ docset.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of every fetch.
type LoggingFetcher struct {
	next   docset.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docset.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the URL, response size,
// and duration.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingDownloader implements docset.Downloader at compile time.
var _ docset.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with structured logging of every
// asset download.
type LoggingDownloader struct {
	next   docset.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next docset.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the URL, size,
// and duration.
func (d *LoggingDownloader) Download(ctx context.Context, url string) ([]byte, error) {
	begin := time.Now()
	data, err := d.next.Download(ctx, url)
	if err != nil {
		d.logger.Error("download",
			"url", url,
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return nil, err
	}
	d.logger.Info("download",
		"url", url,
		"bytes", len(data),
		"duration", time.Since(begin),
	)
	return data, nil
}
