// Command pyside-docset generates an offline PySide2 documentation
// docset: it crawls the Qt for Python snapshot docs, rewrites every page
// for offline browsing, and builds the search index documentation
// browsers read.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	docset "github.com/Cronos87/pyside-docset-generator"
	"github.com/Cronos87/pyside-docset-generator/crawl"
	"github.com/Cronos87/pyside-docset-generator/fs"
	dshttp "github.com/Cronos87/pyside-docset-generator/http"
	"github.com/Cronos87/pyside-docset-generator/plist"
	dslog "github.com/Cronos87/pyside-docset-generator/slog"
	"github.com/Cronos87/pyside-docset-generator/sqlite"
	dsyaml "github.com/Cronos87/pyside-docset-generator/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command line flags.
type CLI struct {
	Out     string  `help:"Directory the docset bundle is created under." short:"o" placeholder:"DIR"`
	BaseURL string  `help:"Documentation site root." name:"base-url" placeholder:"URL"`
	RPS     float64 `help:"Maximum requests per second. Zero means unlimited."`
	Config  string  `help:"Path to a YAML configuration file." short:"c" type:"path" placeholder:"FILE"`
	Quiet   bool    `help:"Suppress progress output." short:"q"`
	Verbose bool    `help:"Log every HTTP request." short:"v"`
}

// Main represents the program.
type Main struct {
	// SQLite database holding the search index.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the generator with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pyside-docset"),
		kong.Description("Generate an offline PySide2 documentation docset."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	opts, err := resolveOptions(cli)
	if err != nil {
		return err
	}

	site := docset.DefaultSite()
	if opts.baseURL != "" {
		site.BaseURL = opts.baseURL
	}

	ds := fs.NewDocset(opts.out)
	if err := ds.Init(); err != nil {
		return fmt.Errorf("failed to create docset directories: %w", err)
	}
	if err := plist.Write(plist.PySide2(), ds.InfoPlistPath()); err != nil {
		return fmt.Errorf("failed to write Info.plist: %w", err)
	}

	m.DB = sqlite.NewDB(ds.IndexPath())
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open search index at %q: %w", ds.IndexPath(), err)
	}

	var fetcher docset.Fetcher = dshttp.NewFetcher()
	var downloader docset.Downloader = dshttp.NewDownloader(0)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = dslog.NewLoggingFetcher(fetcher, logger)
		downloader = dslog.NewLoggingDownloader(downloader, logger)
	}
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Site:       site,
		Fetcher:    fetcher,
		Downloader: downloader,
		Index:      sqlite.NewIndexService(m.DB),
		Pages:      fs.NewPageStore(ds.DocumentsPath(), stderr),
		Assets:     fs.NewAssetStore(ds.DocumentsPath()),
		Limiter:    crawl.NewLimiter(opts.rps),
	}
	if !opts.quiet {
		crawler.Progress = newProgress(stdout)
	}

	res, err := crawler.Run(ctx)
	if err != nil {
		return err
	}

	if !opts.quiet {
		printSummary(stdout, ds.Path(), res)
	}
	return nil
}

// options is the effective run configuration after merging the optional
// configuration file beneath the command line flags.
type options struct {
	out     string
	baseURL string
	rps     float64
	quiet   bool
}

// resolveOptions merges the configuration file, when one is given, beneath
// the flags. A flag set on the command line always wins.
func resolveOptions(cli *CLI) (options, error) {
	opts := options{
		out:     cli.Out,
		baseURL: cli.BaseURL,
		rps:     cli.RPS,
		quiet:   cli.Quiet,
	}

	if cli.Config != "" {
		cfg, err := dsyaml.Load(cli.Config)
		if err != nil {
			return options{}, err
		}
		if opts.out == "" {
			opts.out = cfg.Out
		}
		if opts.baseURL == "" {
			opts.baseURL = cfg.BaseURL
		}
		if opts.rps == 0 {
			opts.rps = cfg.RPS
		}
		opts.quiet = opts.quiet || cfg.Quiet
	}

	if opts.out == "" {
		opts.out = "."
	}
	return opts, nil
}

// newProgress returns a ProgressFunc rendering crawl progress to out.
func newProgress(out io.Writer) crawl.ProgressFunc {
	bold := color.New(color.Bold)
	yellow := color.New(color.FgYellow)

	return func(e crawl.Event) {
		switch e.Type {
		case crawl.EventModuleStarted:
			bold.Fprintf(out, "%s\n", e.Module)
		case crawl.EventModuleSkipped:
			yellow.Fprintln(out, "Page not found. Skip...")
		case crawl.EventClassIndexed:
			// Single in-place progress line per module.
			fmt.Fprintf(out, "\r-- %d functions found. Indexing %d / %d", e.Total, e.Current, e.Total)
			if e.Current == e.Total {
				fmt.Fprintln(out)
			}
		}
	}
}

// printSummary prints the closing banner after a successful run.
func printSummary(out io.Writer, path string, res *crawl.Result) {
	green := color.New(color.FgGreen)
	green.Fprintf(out, "\nDone! Generated %s\n", path)
	fmt.Fprintf(out, "%d modules, %d pages, %d index entries", res.Modules, res.Pages, res.Entries)
	if len(res.Skipped) > 0 {
		fmt.Fprintf(out, " (%d modules skipped)", len(res.Skipped))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "https://github.com/Cronos87/pyside-docset-generator")
}
