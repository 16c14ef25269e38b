package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	docset "github.com/Cronos87/pyside-docset-generator"
)

// CleanLinks rewrites the relative links of a page body so they resolve
// inside the flat documents directory. Anchor and area elements whose href
// starts with a parent-directory traversal are resolved against the URL
// the page was fetched from:
//
//   - targets inside the documentation's own path space are flattened to
//     their final path segment (all pages live in one directory);
//   - targets outside of it are unwrapped: the element is removed but its
//     text content stays in place, since the link is useless offline.
func CleanLinks(body *goquery.Selection, pageURL, docPrefix string) error {
	base, err := url.Parse(pageURL)
	if err != nil {
		return docset.Errorf(docset.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	body.Find("a[href], area[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !strings.HasPrefix(href, "../") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)

		if strings.Contains(resolved.Path, docPrefix) {
			// Flatten to the last segment of the raw href, which keeps
			// any fragment identifier attached.
			parts := strings.Split(href, "/")
			link.SetAttr("href", parts[len(parts)-1])
		} else {
			Unwrap(link)
		}
	})

	return nil
}

// StripInheritedAnchors removes in-page fragment identifiers from the
// "Inherited by:" cross-reference links. Inheritance links should point at
// the top of the target page, not a specific anchor.
func StripInheritedAnchors(body *goquery.Selection) {
	body.Find("strong").Each(func(_ int, strong *goquery.Selection) {
		if strings.TrimSpace(strong.Text()) != "Inherited by:" {
			return
		}
		strong.NextAll().Filter("a").Each(func(_ int, link *goquery.Selection) {
			href, ok := link.Attr("href")
			if !ok {
				return
			}
			if idx := strings.Index(href, "#"); idx != -1 {
				link.SetAttr("href", href[:idx])
			}
		})
	})
}

// Unwrap replaces each element of the selection with its own children,
// keeping the content in place.
func Unwrap(sel *goquery.Selection) {
	for _, n := range sel.Nodes {
		parent := n.Parent
		if parent == nil {
			continue
		}
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			n.RemoveChild(c)
			parent.InsertBefore(c, n)
			c = next
		}
		parent.RemoveChild(n)
	}
}

// PruneMissingModules parses a saved root page, unwraps the first link
// referencing each missing module, and returns the re-serialized document.
// Sibling module links are left intact.
func PruneMissingModules(pageHTML string, missing []string) (string, error) {
	doc, err := Parse(pageHTML)
	if err != nil {
		return "", err
	}

	for _, module := range missing {
		unwrapFirstHrefContaining(doc.Selection, module)
	}

	return renderDocument(doc)
}

func unwrapFirstHrefContaining(sel *goquery.Selection, substr string) {
	sel.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		if !strings.Contains(href, substr) {
			return true
		}
		Unwrap(link)
		return false
	})
}

// renderDocument serializes a full document, preserving its doctype.
func renderDocument(doc *goquery.Document) (string, error) {
	var b strings.Builder
	for _, n := range doc.Nodes {
		if err := html.Render(&b, n); err != nil {
			return "", docset.Errorf(docset.EINTERNAL, "failed to render document: %v", err)
		}
	}
	return b.String(), nil
}
