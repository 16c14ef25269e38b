package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fatih/color"

	docset "github.com/Cronos87/pyside-docset-generator"
)

// pageTemplate is the standalone page shell. The head contents (title,
// UTF-8 charset, responsive viewport, main.css link) are part of the page
// file contract; the body fragment is injected verbatim.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<title>%s</title>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<link href="main.css" rel="stylesheet">
</head>
<body>
%s
</body>
</html>
`

// RenderPage wraps a title and a cleaned HTML body fragment in the
// standalone page shell.
func RenderPage(title, body string) string {
	return fmt.Sprintf(pageTemplate, title, body)
}

// Ensure PageStore implements docset.PageStore at compile time.
var _ docset.PageStore = (*PageStore)(nil)

// PageStore writes rendered pages into the documents directory.
// Overwrites are advisory-warned, never blocked: re-running the generator
// is expected to rewrite every page.
type PageStore struct {
	dir      string
	warnings io.Writer
}

// NewPageStore creates a PageStore writing pages under dir. Overwrite
// warnings are printed to warnings.
func NewPageStore(dir string, warnings io.Writer) *PageStore {
	return &PageStore{dir: dir, warnings: warnings}
}

// WritePage renders the page into the standalone shell and writes it.
// When warnOnOverwrite is set and the target exists, a warning is printed
// first; it notes when the overwrite carries identical content so re-runs
// are readable.
func (s *PageStore) WritePage(ctx context.Context, page *docset.Page, warnOnOverwrite bool) error {
	if err := page.Validate(); err != nil {
		return err
	}

	content := RenderPage(page.Title, page.Body)
	path := filepath.Join(s.dir, page.FileName)

	if warnOnOverwrite {
		if existing, err := os.ReadFile(path); err == nil {
			note := ""
			if xxhash.Sum64(existing) == xxhash.Sum64String(content) {
				note = " with identical content"
			}
			color.New(color.FgRed).Fprintf(s.warnings, "%s - this page already exists, overwriting%s\n", page.FileName, note)
		}
	}

	return os.WriteFile(path, []byte(content), 0644)
}

// WriteRaw overwrites a page with already-rendered contents.
func (s *PageStore) WriteRaw(name, contents string) error {
	return os.WriteFile(filepath.Join(s.dir, name), []byte(contents), 0644)
}

// ReadPage returns the raw contents of a previously written page.
func (s *PageStore) ReadPage(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return "", docset.Errorf(docset.ENOTFOUND, "page %q not found", name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
