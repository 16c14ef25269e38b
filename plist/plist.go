// Package plist generates the docset bundle's Info.plist. Documentation
// browsers refuse to load a docset bundle without one.
package plist

import (
	"os"

	"github.com/beevik/etree"
)

// Info describes the docset bundle.
type Info struct {
	// Identifier is the bundle identifier (e.g. "pyside2").
	Identifier string

	// Name is the display name (e.g. "PySide2").
	Name string

	// PlatformFamily groups the docset in the browser's UI.
	PlatformFamily string

	// IndexFilePath is the page opened when the docset is selected,
	// relative to the documents directory.
	IndexFilePath string
}

// PySide2 returns the bundle description for the generated docset.
func PySide2() Info {
	return Info{
		Identifier:     "pyside2",
		Name:           "PySide2",
		PlatformFamily: "pyside2",
		IndexFilePath:  "index.html",
	}
}

// Document builds the Info.plist XML document.
func Document(info Info) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(`DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	addString := func(key, value string) {
		dict.CreateElement("key").SetText(key)
		dict.CreateElement("string").SetText(value)
	}

	addString("CFBundleIdentifier", info.Identifier)
	addString("CFBundleName", info.Name)
	addString("DocSetPlatformFamily", info.PlatformFamily)
	addString("dashIndexFilePath", info.IndexFilePath)
	dict.CreateElement("key").SetText("isDashDocset")
	dict.CreateElement("true")

	doc.Indent(2)
	return doc
}

// Write serializes the Info.plist to the given path.
func Write(info Info, path string) error {
	doc := Document(info)
	data, err := doc.WriteToBytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
