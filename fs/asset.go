package fs

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	docset "github.com/Cronos87/pyside-docset-generator"
)

// Ensure AssetStore implements docset.AssetStore at compile time.
var _ docset.AssetStore = (*AssetStore)(nil)

// AssetStore writes downloaded assets into the documents directory.
// Assets are overwritten silently; there is no versioning.
type AssetStore struct {
	dir string
}

// NewAssetStore creates an AssetStore writing assets under dir.
func NewAssetStore(dir string) *AssetStore {
	return &AssetStore{dir: dir}
}

// WriteAsset writes the asset via a uniquely named temporary file and a
// rename, so a failed download never leaves a truncated asset behind.
func (s *AssetStore) WriteAsset(name string, data []byte) error {
	tmp := filepath.Join(s.dir, "."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
