package docset

import "strings"

// Site describes the documentation site being crawled. The generator is
// built around the structure of the Qt for Python snapshot docs; the base
// URL is configurable mostly so tests can point it at a local server.
type Site struct {
	// BaseURL is the documentation root, without a trailing slash.
	BaseURL string

	// DocPrefix is the path segment that delimits the documentation's
	// own path space. Links resolving outside of it are dropped when
	// pages are rewritten for offline use.
	DocPrefix string

	// Namespace prefixes class and method entry names in the search
	// index (e.g. "PySide2.QtCore.QObject").
	Namespace string

	// StylesheetURL and ArrowIconURL locate the global assets copied
	// into every generated docset.
	StylesheetURL string
	ArrowIconURL  string
}

// DefaultSite returns the Qt for Python snapshot documentation site.
func DefaultSite() Site {
	return Site{
		BaseURL:       "https://doc-snapshots.qt.io/qtforpython",
		DocPrefix:     "PySide2",
		Namespace:     "PySide2",
		StylesheetURL: "https://doc-snapshots.qt.io/style/pyside.css",
		ArrowIconURL:  "https://doc-snapshots.qt.io/style/list_arrow.png",
	}
}

// RootURL returns the URL of the site's landing page.
func (s Site) RootURL() string {
	return s.BaseURL + "/"
}

// ModuleIndexURL returns the URL of a module's index page.
func (s Site) ModuleIndexURL(module string) string {
	return s.BaseURL + "/" + s.DocPrefix + "/" + module + "/index.html"
}

// ClassPageURL returns the URL of a class or function page within a module.
func (s Site) ClassPageURL(module, class string) string {
	return s.BaseURL + "/" + s.DocPrefix + "/" + module + "/" + class + ".html"
}

// AssetURL resolves a site-relative asset reference (an image src with its
// parent-directory traversal already trimmed) against the base URL.
func (s Site) AssetURL(rel string) string {
	return s.BaseURL + "/" + rel
}

// ClassEntryName returns the fully qualified index name of a class.
func (s Site) ClassEntryName(module, class string) string {
	return s.Namespace + "." + module + "." + class
}

// MethodEntryName returns the fully qualified index name of a method.
func (s Site) MethodEntryName(module, class, method string) string {
	return s.Namespace + "." + module + "." + class + "." + method
}

// ModuleSlug derives a module's URL slug from its link text.
// Some module names are rendered with spaces ("Qt Core") that the URL
// scheme omits.
func ModuleSlug(text string) string {
	return strings.ReplaceAll(text, " ", "")
}
