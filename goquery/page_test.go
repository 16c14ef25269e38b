package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docset "github.com/Cronos87/pyside-docset-generator"
	docsetgq "github.com/Cronos87/pyside-docset-generator/goquery"
)

func TestBody(t *testing.T) {
	t.Parallel()

	t.Run("extracts the body wrapper", func(t *testing.T) {
		t.Parallel()

		doc, err := docsetgq.Parse(`<html><body><div class="bodywrapper"><h1>QtCore</h1></div></body></html>`)
		require.NoError(t, err)

		body, err := docsetgq.Body(doc)
		require.NoError(t, err)
		assert.Equal(t, "QtCore", body.Find("h1").Text())
	})

	t.Run("missing body wrapper is EINVALID", func(t *testing.T) {
		t.Parallel()

		doc, err := docsetgq.Parse(`<html><body><div class="other"></div></body></html>`)
		require.NoError(t, err)

		_, err = docsetgq.Body(doc)
		require.Error(t, err)
		assert.Equal(t, docset.EINVALID, docset.ErrorCode(err))
	})
}

func TestTitle(t *testing.T) {
	t.Parallel()

	doc, err := docsetgq.Parse(`<html><head><title> Qt for Python </title></head><body></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "Qt for Python", docsetgq.Title(doc))
}

func TestRemoveModulesTeaser(t *testing.T) {
	t.Parallel()

	t.Run("removes the teaser paragraph and div", func(t *testing.T) {
		t.Parallel()

		body := parseBody(t, `<div id="qt-modules">`+
			`<p>The following modules are available:</p>`+
			`<div class="teaser">teaser</div>`+
			`<ul><li><a class="external" href="PySide2/QtCore/index.html">QtCore</a></li></ul>`+
			`</div>`)

		require.NoError(t, docsetgq.RemoveModulesTeaser(body))

		modules := body.Find("#qt-modules")
		assert.Equal(t, 0, modules.Find("p").Length())
		assert.Equal(t, 0, modules.Find("div.teaser").Length())
		assert.Equal(t, 1, modules.Find("a").Length())
	})

	t.Run("missing qt-modules section is EINVALID", func(t *testing.T) {
		t.Parallel()

		body := parseBody(t, `<p>nothing here</p>`)

		err := docsetgq.RemoveModulesTeaser(body)
		require.Error(t, err)
		assert.Equal(t, docset.EINVALID, docset.ErrorCode(err))
	})
}

func TestRewriteRootHrefs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "drops the doc prefix directory",
			in:   `<a href="PySide2/QtCore/index.html">QtCore</a>`,
			want: `<a href="QtCore-index.html">QtCore</a>`,
		},
		{
			name: "flattens index pages",
			in:   `<a href="QtGui/index.html">QtGui</a>`,
			want: `<a href="QtGui-index.html">QtGui</a>`,
		},
		{
			name: "leaves unrelated hrefs alone",
			in:   `<a href="https://example.com/about.html">about</a>`,
			want: `<a href="https://example.com/about.html">about</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docsetgq.RewriteRootHrefs(tt.in, "PySide2"))
		})
	}
}

func TestStripBoilerplate(t *testing.T) {
	t.Parallel()

	t.Run("removes the hidden container", func(t *testing.T) {
		t.Parallel()

		body := parseBody(t, `<div class="hide docutils container">boilerplate</div><p>content</p>`)

		docsetgq.StripBoilerplate(body)

		assert.Equal(t, 0, body.Find("div.hide").Length())
		assert.Equal(t, "content", body.Find("p").Text())
	})

	t.Run("page without the container is untouched", func(t *testing.T) {
		t.Parallel()

		body := parseBody(t, `<p>content</p>`)

		docsetgq.StripBoilerplate(body)

		assert.Equal(t, "content", body.Find("p").Text())
	})
}

func TestImages(t *testing.T) {
	t.Parallel()

	body := parseBody(t,
		`<img src="../../images/qobject.png"/><img src="../../images/signals.png"/><img/>`)

	images := docsetgq.Images(body)
	require.Len(t, images, 2)
	assert.Equal(t, "../../images/qobject.png", images[0].Src)
	assert.Equal(t, "../../images/signals.png", images[1].Src)

	images[0].SetSrc("qobject.png")
	images[1].Remove()

	// One localized image remains, plus the src-less one we skipped.
	srcs := body.Find("img[src]")
	require.Equal(t, 1, srcs.Length())
	src, _ := srcs.Attr("src")
	assert.Equal(t, "qobject.png", src)
}

func TestOuterHTML(t *testing.T) {
	t.Parallel()

	body := parseBody(t, `<p>content</p>`)

	html, err := docsetgq.OuterHTML(body)
	require.NoError(t, err)
	assert.Equal(t, `<div class="bodywrapper"><p>content</p></div>`, html)
}
