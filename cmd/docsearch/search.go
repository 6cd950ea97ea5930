package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docsearch"
)

// Run executes the search: resolve a usable corpus snapshot, segment it
// into pages, match keywords, and print matching URLs one per line to
// stdout. Zero matches is a successful run.
func (c *CLI) Run(deps *Dependencies) error {
	query := docsearch.Query{Keywords: c.Keywords}
	if err := query.Validate(); err != nil {
		return err
	}

	snap, err := deps.Snapshots.Resolve(deps.Ctx, c.Fresh)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	f, err := os.Open(snap.Path)
	if err != nil {
		return docsearch.Errorf(docsearch.EINTERNAL, "open corpus %q: %s", snap.Path, err)
	}
	defer f.Close()

	pages, err := deps.Segmenter.Segment(f)
	if err != nil {
		return err
	}

	urls, err := docsearch.Match(pages, query)
	if err != nil {
		return err
	}

	for _, url := range urls {
		fmt.Fprintln(deps.Stdout, url)
	}
	fmt.Fprintf(deps.Stderr, "Matched %d of %d pages\n", len(urls), len(pages))

	return nil
}
