// Package mock provides mock implementations of docsearch interfaces.
package mock

import (
	"context"
	"io"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docsearch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (io.ReadCloser, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	return f.FetchFn(ctx, url)
}
