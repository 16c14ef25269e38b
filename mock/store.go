package mock

import (
	"context"

	docset "github.com/Cronos87/pyside-docset-generator"
)

var _ docset.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of docset.IndexStore.
type IndexStore struct {
	ResetFn  func(ctx context.Context) error
	InsertFn func(ctx context.Context, entry *docset.IndexEntry) error
}

func (s *IndexStore) Reset(ctx context.Context) error {
	return s.ResetFn(ctx)
}

func (s *IndexStore) Insert(ctx context.Context, entry *docset.IndexEntry) error {
	return s.InsertFn(ctx, entry)
}

var _ docset.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of docset.PageStore.
type PageStore struct {
	WritePageFn func(ctx context.Context, page *docset.Page, warnOnOverwrite bool) error
	ReadPageFn  func(name string) (string, error)
	WriteRawFn  func(name, contents string) error
}

func (s *PageStore) WriteRaw(name, contents string) error {
	return s.WriteRawFn(name, contents)
}

func (s *PageStore) WritePage(ctx context.Context, page *docset.Page, warnOnOverwrite bool) error {
	return s.WritePageFn(ctx, page, warnOnOverwrite)
}

func (s *PageStore) ReadPage(name string) (string, error) {
	return s.ReadPageFn(name)
}

var _ docset.AssetStore = (*AssetStore)(nil)

// AssetStore is a mock implementation of docset.AssetStore.
type AssetStore struct {
	WriteAssetFn func(name string, data []byte) error
}

func (s *AssetStore) WriteAsset(name string, data []byte) error {
	return s.WriteAssetFn(name, data)
}
