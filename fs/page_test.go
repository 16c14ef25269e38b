package fs_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docset "github.com/Cronos87/pyside-docset-generator"
	"github.com/Cronos87/pyside-docset-generator/fs"
)

func TestRenderPage(t *testing.T) {
	t.Parallel()

	got := fs.RenderPage("QObject", `<div class="bodywrapper"><h1>QObject</h1></div>`)

	want := `<!DOCTYPE html>
<html lang="en">
<head>
<title>QObject</title>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<link href="main.css" rel="stylesheet">
</head>
<body>
<div class="bodywrapper"><h1>QObject</h1></div>
</body>
</html>
`

	assert.Equal(t, want, got)
}

func TestPageStore_WritePage(t *testing.T) {
	t.Parallel()

	t.Run("writes the page shell to disk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var warnings bytes.Buffer
		store := fs.NewPageStore(dir, &warnings)

		page := &docset.Page{FileName: "QObject.html", Title: "QObject", Body: "<p>body</p>"}
		require.NoError(t, store.WritePage(context.Background(), page, true))

		content, err := os.ReadFile(filepath.Join(dir, "QObject.html"))
		require.NoError(t, err)
		assert.Equal(t, fs.RenderPage("QObject", "<p>body</p>"), string(content))
		assert.Empty(t, warnings.String())
	})

	t.Run("warns on overwrite but writes anyway", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var warnings bytes.Buffer
		store := fs.NewPageStore(dir, &warnings)
		ctx := context.Background()

		first := &docset.Page{FileName: "QObject.html", Title: "QObject", Body: "<p>old</p>"}
		require.NoError(t, store.WritePage(ctx, first, true))

		second := &docset.Page{FileName: "QObject.html", Title: "QObject", Body: "<p>new</p>"}
		require.NoError(t, store.WritePage(ctx, second, true))

		assert.Contains(t, warnings.String(), "QObject.html")
		assert.Contains(t, warnings.String(), "already exists")

		content, err := store.ReadPage("QObject.html")
		require.NoError(t, err)
		assert.Contains(t, content, "<p>new</p>")
	})

	t.Run("notes identical-content overwrites", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var warnings bytes.Buffer
		store := fs.NewPageStore(dir, &warnings)
		ctx := context.Background()

		page := &docset.Page{FileName: "QTimer.html", Title: "QTimer", Body: "<p>same</p>"}
		require.NoError(t, store.WritePage(ctx, page, true))
		require.NoError(t, store.WritePage(ctx, page, true))

		assert.Contains(t, warnings.String(), "identical content")
	})

	t.Run("suppressed warning stays silent", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var warnings bytes.Buffer
		store := fs.NewPageStore(dir, &warnings)
		ctx := context.Background()

		page := &docset.Page{FileName: "index.html", Title: "Qt for Python", Body: "<p>root</p>"}
		require.NoError(t, store.WritePage(ctx, page, true))
		require.NoError(t, store.WritePage(ctx, page, false))

		assert.Empty(t, warnings.String())
	})

	t.Run("validates the page", func(t *testing.T) {
		t.Parallel()

		store := fs.NewPageStore(t.TempDir(), &bytes.Buffer{})

		err := store.WritePage(context.Background(), &docset.Page{Title: "no name"}, true)
		require.Error(t, err)
		assert.Equal(t, docset.EINVALID, docset.ErrorCode(err))
	})
}

func TestPageStore_ReadPage(t *testing.T) {
	t.Parallel()

	t.Run("missing page is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		store := fs.NewPageStore(t.TempDir(), &bytes.Buffer{})

		_, err := store.ReadPage("missing.html")
		require.Error(t, err)
		assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	})
}
