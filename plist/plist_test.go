package plist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cronos87/pyside-docset-generator/plist"
)

func TestDocument(t *testing.T) {
	t.Parallel()

	doc := plist.Document(plist.PySide2())

	dict := doc.FindElement("//plist/dict")
	require.NotNil(t, dict)

	// Collect key -> following value element pairs.
	values := map[string]string{}
	children := dict.ChildElements()
	for i := 0; i < len(children)-1; i++ {
		if children[i].Tag != "key" {
			continue
		}
		next := children[i+1]
		if next.Tag == "string" {
			values[children[i].Text()] = next.Text()
		} else {
			values[children[i].Text()] = next.Tag
		}
	}

	assert.Equal(t, "pyside2", values["CFBundleIdentifier"])
	assert.Equal(t, "PySide2", values["CFBundleName"])
	assert.Equal(t, "pyside2", values["DocSetPlatformFamily"])
	assert.Equal(t, "index.html", values["dashIndexFilePath"])
	assert.Equal(t, "true", values["isDashDocset"])
}

func TestWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Info.plist")
	require.NoError(t, plist.Write(plist.PySide2(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "CFBundleIdentifier")
	assert.Contains(t, string(data), "DOCTYPE plist")

	// Round-trips through an XML parser.
	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(data))
	require.NotNil(t, parsed.FindElement("//plist/dict"))
}
