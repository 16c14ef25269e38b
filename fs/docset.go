// Package fs lays out the docset directory tree and persists rendered
// pages and downloaded assets inside it.
package fs

import (
	"os"
	"path/filepath"
)

// Name is the docset bundle's directory name.
const Name = "pyside2.docset"

// Docset describes the on-disk docset bundle:
//
//	pyside2.docset/Contents/Resources/docSet.dsidx
//	pyside2.docset/Contents/Resources/Documents/
//	pyside2.docset/Contents/Info.plist
type Docset struct {
	root string
}

// NewDocset creates a Docset rooted under the given output directory.
func NewDocset(outDir string) *Docset {
	return &Docset{root: filepath.Join(outDir, Name)}
}

// Init creates the docset directory tree.
func (d *Docset) Init() error {
	return os.MkdirAll(d.DocumentsPath(), 0755)
}

// Path returns the docset bundle's root directory.
func (d *Docset) Path() string {
	return d.root
}

// ContentsPath returns the Contents directory.
func (d *Docset) ContentsPath() string {
	return filepath.Join(d.root, "Contents")
}

// ResourcesPath returns the Resources directory.
func (d *Docset) ResourcesPath() string {
	return filepath.Join(d.ContentsPath(), "Resources")
}

// DocumentsPath returns the Documents directory holding pages and assets.
func (d *Docset) DocumentsPath() string {
	return filepath.Join(d.ResourcesPath(), "Documents")
}

// IndexPath returns the search index file. The file name is part of the
// docset contract.
func (d *Docset) IndexPath() string {
	return filepath.Join(d.ResourcesPath(), "docSet.dsidx")
}

// InfoPlistPath returns the bundle property list file.
func (d *Docset) InfoPlistPath() string {
	return filepath.Join(d.ContentsPath(), "Info.plist")
}
