// Package crawl orchestrates the docset generation run. The crawl is a
// fixed three-level walk: the site root links to module index pages, and
// each module index links to the class and function pages it documents.
// Everything runs sequentially, in document order; the only recoverable
// failures are a missing module index (the module is skipped and its root
// link pruned afterward) and a missing image (the image is dropped).
package crawl

import (
	"context"
	"path"
	"strings"

	gq "github.com/PuerkitoBio/goquery"

	docset "github.com/Cronos87/pyside-docset-generator"
	"github.com/Cronos87/pyside-docset-generator/bloom"
	"github.com/Cronos87/pyside-docset-generator/css"
	docsetgq "github.com/Cronos87/pyside-docset-generator/goquery"
)

// Asset file names fixed by the page shell and stylesheet contract.
const (
	stylesheetName = "main.css"
	arrowIconName  = "list_arrow.png"
	rootPageName   = "index.html"
)

// Crawler drives a full docset generation run.
type Crawler struct {
	Site       docset.Site
	Fetcher    docset.Fetcher
	Downloader docset.Downloader
	Index      docset.IndexStore
	Pages      docset.PageStore
	Assets     docset.AssetStore

	// Limiter, when set, paces requests to the site. It never reorders
	// or parallelizes them.
	Limiter *Limiter

	// Progress, when set, receives events as the crawl proceeds.
	Progress ProgressFunc

	// seen tracks downloaded asset names so a diagram shared by sibling
	// pages is fetched once per run.
	seen *bloom.Filter
}

// Result summarizes a run.
type Result struct {
	// Modules is the number of module index pages crawled and indexed.
	Modules int

	// Skipped lists the modules whose index page returned not-found.
	Skipped []string

	// Pages is the number of pages written, including the root page.
	Pages int

	// Entries is the number of index entries registered.
	Entries int
}

// EventType indicates the type of progress event.
type EventType int

// Progress event types.
const (
	EventModuleStarted EventType = iota
	EventModuleSkipped
	EventClassIndexed
	EventFinished
)

// Event reports progress during a run.
type Event struct {
	Type    EventType
	Module  string
	Class   string
	Current int
	Total   int
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(Event)

// Run executes a full generation run: reset the index, localize the
// global assets, crawl root, modules, and class pages, then prune the
// root page's links to modules that were not found.
func (c *Crawler) Run(ctx context.Context) (*Result, error) {
	res := &Result{}
	c.seen = bloom.NewFilter(4096, 0.001)

	if err := c.Index.Reset(ctx); err != nil {
		return nil, err
	}
	if err := c.localizeGlobalAssets(ctx); err != nil {
		return nil, err
	}

	modules, err := c.crawlRoot(ctx, res)
	if err != nil {
		return nil, err
	}

	for _, text := range modules {
		module := docset.ModuleSlug(text)
		c.emit(Event{Type: EventModuleStarted, Module: module})

		classes, found, err := c.crawlModuleIndex(ctx, module, res)
		if err != nil {
			return nil, err
		}
		if !found {
			res.Skipped = append(res.Skipped, module)
			c.emit(Event{Type: EventModuleSkipped, Module: module})
			continue
		}
		res.Modules++

		for i, class := range classes {
			if err := c.crawlClassPage(ctx, module, class, res); err != nil {
				return nil, err
			}
			c.emit(Event{
				Type:    EventClassIndexed,
				Module:  module,
				Class:   class,
				Current: i + 1,
				Total:   len(classes),
			})
		}
	}

	if err := c.pruneRoot(res.Skipped); err != nil {
		return nil, err
	}

	c.emit(Event{Type: EventFinished})
	return res, nil
}

// crawlRoot processes the site's landing page and returns the module link
// texts found on it. The root page is assumed always reachable; any
// failure here aborts the run.
func (c *Crawler) crawlRoot(ctx context.Context, res *Result) ([]string, error) {
	doc, err := c.fetch(ctx, c.Site.RootURL())
	if err != nil {
		return nil, err
	}

	body, err := docsetgq.Body(doc)
	if err != nil {
		return nil, err
	}
	if err := docsetgq.RemoveModulesTeaser(body); err != nil {
		return nil, err
	}

	modules := docsetgq.ModuleLinks(body)

	bodyHTML, err := docsetgq.OuterHTML(body)
	if err != nil {
		return nil, err
	}
	bodyHTML = docsetgq.RewriteRootHrefs(bodyHTML, c.Site.DocPrefix)

	page := &docset.Page{FileName: rootPageName, Title: docsetgq.Title(doc), Body: bodyHTML}
	if err := c.Pages.WritePage(ctx, page, true); err != nil {
		return nil, err
	}
	res.Pages++

	return modules, nil
}

// crawlModuleIndex processes one module's index page. A not-found result
// is reported through the found flag, not an error: missing modules are
// expected on the snapshot site and skipped.
func (c *Crawler) crawlModuleIndex(ctx context.Context, module string, res *Result) (classes []string, found bool, err error) {
	url := c.Site.ModuleIndexURL(module)

	doc, err := c.fetch(ctx, url)
	if docset.ErrorCode(err) == docset.ENOTFOUND {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	body, err := docsetgq.Body(doc)
	if err != nil {
		return nil, false, err
	}
	docsetgq.StripBoilerplate(body)
	if err := docsetgq.CleanLinks(body, url, c.Site.DocPrefix); err != nil {
		return nil, false, err
	}

	classes, err = docsetgq.ClassLinks(body)
	if err != nil {
		return nil, false, err
	}

	fileName := module + "-index.html"

	bodyHTML, err := docsetgq.OuterHTML(body)
	if err != nil {
		return nil, false, err
	}
	page := &docset.Page{FileName: fileName, Title: docsetgq.Title(doc), Body: bodyHTML}
	if err := c.Pages.WritePage(ctx, page, true); err != nil {
		return nil, false, err
	}
	res.Pages++

	entry := &docset.IndexEntry{Name: module, Type: docset.EntryModule, Path: fileName}
	if err := c.Index.Insert(ctx, entry); err != nil {
		return nil, false, err
	}
	res.Entries++

	return classes, true, nil
}

// crawlClassPage processes one class or function page: cleans its links,
// localizes its images, saves it, and registers its index entries.
func (c *Crawler) crawlClassPage(ctx context.Context, module, class string, res *Result) error {
	url := c.Site.ClassPageURL(module, class)

	doc, err := c.fetch(ctx, url)
	if err != nil {
		return err
	}

	body, err := docsetgq.Body(doc)
	if err != nil {
		return err
	}
	docsetgq.StripInheritedAnchors(body)
	if err := docsetgq.CleanLinks(body, url, c.Site.DocPrefix); err != nil {
		return err
	}

	if err := c.localizeImages(ctx, body); err != nil {
		return err
	}

	fileName := class + ".html"

	bodyHTML, err := docsetgq.OuterHTML(body)
	if err != nil {
		return err
	}
	page := &docset.Page{FileName: fileName, Title: docsetgq.Title(doc), Body: bodyHTML}
	if err := c.Pages.WritePage(ctx, page, true); err != nil {
		return err
	}
	res.Pages++

	entry := &docset.IndexEntry{
		Name: c.Site.ClassEntryName(module, class),
		Type: docset.ClassifyName(class),
		Path: fileName,
	}
	if err := c.Index.Insert(ctx, entry); err != nil {
		return err
	}
	res.Entries++

	for _, method := range docsetgq.SynopsisMethods(body) {
		entry := &docset.IndexEntry{
			Name: c.Site.MethodEntryName(module, class, method.Name),
			Type: docset.EntryMethod,
			Path: fileName + method.Anchor,
		}
		if err := c.Index.Insert(ctx, entry); err != nil {
			return err
		}
		res.Entries++
	}

	return nil
}

// localizeImages downloads every inline image of a page body and repoints
// it at the localized file name. An image that cannot be downloaded is
// removed entirely; a broken reference is worse than no image.
func (c *Crawler) localizeImages(ctx context.Context, body *gq.Selection) error {
	for _, img := range docsetgq.Images(body) {
		rel := strings.TrimPrefix(img.Src, "../../")
		name := path.Base(rel)

		if c.seen.Seen(name) {
			img.SetSrc(name)
			continue
		}

		data, err := c.download(ctx, c.Site.AssetURL(rel))
		if docset.ErrorCode(err) == docset.ENOTFOUND {
			img.Remove()
			continue
		}
		if err != nil {
			return err
		}

		if err := c.Assets.WriteAsset(name, data); err != nil {
			return err
		}
		c.seen.Add(name)
		img.SetSrc(name)
	}
	return nil
}

// localizeGlobalAssets downloads the stylesheet and the list bullet icon.
// The stylesheet passes through the font filter; it is required, while a
// missing icon is tolerated.
func (c *Crawler) localizeGlobalAssets(ctx context.Context) error {
	stylesheet, err := c.download(ctx, c.Site.StylesheetURL)
	if err != nil {
		return err
	}
	filtered := css.StripFontFamilies(string(stylesheet))
	if err := c.Assets.WriteAsset(stylesheetName, []byte(filtered)); err != nil {
		return err
	}
	c.seen.Add(stylesheetName)

	icon, err := c.download(ctx, c.Site.ArrowIconURL)
	if docset.ErrorCode(err) == docset.ENOTFOUND {
		return nil
	}
	if err != nil {
		return err
	}
	if err := c.Assets.WriteAsset(arrowIconName, icon); err != nil {
		return err
	}
	c.seen.Add(arrowIconName)
	return nil
}

// pruneRoot re-opens the saved root page, unwraps the links pointing at
// modules that returned not-found, and re-saves it without the overwrite
// warning.
func (c *Crawler) pruneRoot(missing []string) error {
	pageHTML, err := c.Pages.ReadPage(rootPageName)
	if err != nil {
		return err
	}

	pruned, err := docsetgq.PruneMissingModules(pageHTML, missing)
	if err != nil {
		return err
	}

	return c.Pages.WriteRaw(rootPageName, pruned)
}

func (c *Crawler) fetch(ctx context.Context, url string) (*gq.Document, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return docsetgq.Parse(html)
}

func (c *Crawler) download(ctx context.Context, url string) ([]byte, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.Downloader.Download(ctx, url)
}

func (c *Crawler) emit(event Event) {
	if c.Progress != nil {
		c.Progress(event)
	}
}
