package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	docset "github.com/Cronos87/pyside-docset-generator"
)

// ModuleLinks returns the link text of every module linked from the root
// page body, in document order.
func ModuleLinks(body *goquery.Selection) []string {
	var modules []string
	body.Find("a.external").Each(func(_ int, link *goquery.Selection) {
		text := strings.TrimSpace(link.Text())
		if text == "" {
			return
		}
		modules = append(modules, text)
	})
	return modules
}

// ClassLinks returns the class and function names listed in a module index
// page's table-of-contents region, in document order. A module page
// without the region is malformed and aborts the run.
func ClassLinks(body *goquery.Selection) ([]string, error) {
	toc := body.Find("div.pysidetoc.docutils.container").First()
	if toc.Length() == 0 {
		return nil, docset.Errorf(docset.EINVALID, "table-of-contents region not found on module page")
	}

	var classes []string
	toc.Find("a.internal").Each(func(_ int, link *goquery.Selection) {
		text := strings.TrimSpace(link.Text())
		if text == "" {
			return
		}
		classes = append(classes, text)
	})
	return classes, nil
}

// Method identifies one entry of a class page's method synopsis.
type Method struct {
	// Name is the method's display name.
	Name string

	// Anchor is the method's in-page anchor, including the leading "#".
	Anchor string
}

// SynopsisMethods returns the methods listed in a class page's synopsis.
// Pages without a synopsis (enums, some namespaces) return nil.
func SynopsisMethods(body *goquery.Selection) []Method {
	synopsis := body.Find("#synopsis").First()
	if synopsis.Length() == 0 {
		return nil
	}

	var methods []Method
	synopsis.Find("a.reference.internal").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		methods = append(methods, Method{
			Name:   strings.TrimSpace(link.Text()),
			Anchor: href,
		})
	})
	return methods
}
