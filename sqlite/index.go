package sqlite

import (
	"context"

	docset "github.com/Cronos87/pyside-docset-generator"
)

// Compile-time interface verification.
var _ docset.IndexStore = (*IndexService)(nil)

// IndexService implements docset.IndexStore using SQLite.
//
// The table name, column names and order, and the shape of the unique
// constraint are all part of the docset contract and must not change.
type IndexService struct {
	db *DB
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db}
}

// Reset drops and recreates the search index table and its uniqueness
// constraint. A run starts from an empty index; there is no incremental
// update support.
func (s *IndexService) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS searchIndex;`); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`CREATE TABLE searchIndex(id INTEGER PRIMARY KEY, name TEXT, type TEXT, path TEXT);`); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`CREATE UNIQUE INDEX anchor ON searchIndex (name, type, path);`); err != nil {
		return err
	}
	return nil
}

// Insert adds an entry to the search index. A duplicate (name, type, path)
// triple is silently ignored. Each insert is immediately durable.
func (s *IndexService) Insert(ctx context.Context, entry *docset.IndexEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO searchIndex(name, type, path) VALUES (?, ?, ?)`,
		entry.Name, string(entry.Type), entry.Path)
	return err
}
