package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/fs"
	dochttp "github.com/fwojciec/docsearch/http"
	docslog "github.com/fwojciec/docsearch/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache root directory. Set before calling Run().
	CacheDir string

	// Remote corpus location and the docsite prefix used to recognize
	// page links. Overridable for end-to-end testing.
	CorpusURL string
	Site      string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir:  defaultCacheDir(),
		CorpusURL: docsearch.DefaultCorpusURL,
		Site:      docsearch.DefaultSite,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsearch"),
		kong.Description("Search the dbt documentation corpus by keyword"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no keywords provided. Run 'docsearch --help' for usage")
	}

	// Handle help flags before touching cache or network
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cacheDir := m.CacheDir
	if cli.CacheDir != "" {
		cacheDir = cli.CacheDir
	}

	// Diagnostics go to stderr so stdout stays pipe-friendly.
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fetcher := dochttp.NewFetcher()
	store := fs.NewSnapshotStore(
		filepath.Join(cacheDir, "docsearch"),
		docsearch.CorpusName,
		m.CorpusURL,
		fetcher,
		fs.WithTTL(cli.TTL),
	)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Snapshots: docslog.NewLoggingSnapshotService(store, logger),
		Segmenter: docsearch.NewSegmenter(m.Site),
	}

	return cli.Run(deps)
}

func defaultCacheDir() string {
	if dir := os.Getenv("DOCSEARCH_CACHE_DIR"); dir != "" {
		return dir
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".docsearch-cache"
	}
	return dir
}
