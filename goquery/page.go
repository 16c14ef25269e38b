// Package goquery implements the HTML transformations that turn the
// documentation site's pages into offline-browsable docset pages: link
// flattening, out-of-scope link unwrapping, boilerplate removal, and the
// enumeration of module, class, and method links that drives the crawl.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	docset "github.com/Cronos87/pyside-docset-generator"
)

// Parse parses an HTML document.
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docset.Errorf(docset.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// Title returns the document's title.
func Title(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// Body extracts the documentation body wrapper from a page. Every page on
// the site carries exactly one; a page without it is malformed and aborts
// the run.
func Body(doc *goquery.Document) (*goquery.Selection, error) {
	body := doc.Find("div.bodywrapper").First()
	if body.Length() == 0 {
		return nil, docset.Errorf(docset.EINVALID, "body wrapper not found")
	}
	return body, nil
}

// OuterHTML serializes a selection including its own tags.
func OuterHTML(sel *goquery.Selection) (string, error) {
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", docset.Errorf(docset.EINTERNAL, "failed to serialize HTML: %v", err)
	}
	return html, nil
}

// RemoveModulesTeaser removes the "modules overview" teaser block from the
// root page body: the first paragraph and the first div inside the
// qt-modules section. The module links themselves stay in place.
func RemoveModulesTeaser(body *goquery.Selection) error {
	modules := body.Find("#qt-modules").First()
	if modules.Length() == 0 {
		return docset.Errorf(docset.EINVALID, "qt-modules section not found on root page")
	}
	modules.Find("p").First().Remove()
	modules.Find("div").First().Remove()
	return nil
}

// RewriteRootHrefs rewrites the root page's internal href prefixes so that
// module links resolve inside the flat documents directory: the doc-prefix
// directory is dropped and each module's index page is flattened to
// "<module>-index.html".
func RewriteRootHrefs(html, docPrefix string) string {
	html = strings.ReplaceAll(html, `href="`+docPrefix+`/`, `href="`)
	return strings.ReplaceAll(html, "/index.html", "-index.html")
}

// StripBoilerplate removes the hidden boilerplate container from a module
// index page. Pages without the block are left untouched.
func StripBoilerplate(body *goquery.Selection) {
	body.Find("div.hide.docutils.container").First().Remove()
}

// Image is a handle on an inline image discovered in a class page.
type Image struct {
	sel *goquery.Selection

	// Src is the image's original src attribute.
	Src string
}

// SetSrc repoints the image at a localized file name.
func (i Image) SetSrc(src string) {
	i.sel.SetAttr("src", src)
}

// Remove drops the image element entirely. Used when the image could not
// be downloaded; a broken reference is worse than no image.
func (i Image) Remove() {
	i.sel.Remove()
}

// Images enumerates the inline images of a page body in document order.
func Images(body *goquery.Selection) []Image {
	var images []Image
	body.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok {
			return
		}
		images = append(images, Image{sel: sel, Src: src})
	})
	return images
}
