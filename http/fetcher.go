// Package http provides an HTTP-based implementation of
// docsearch.Fetcher for downloading the flat-text corpus dump.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docsearch"
)

// Ensure Fetcher implements docsearch.Fetcher at compile time.
var _ docsearch.Fetcher = (*Fetcher)(nil)

// Fetcher downloads corpus text over HTTP. It performs exactly one GET
// per Fetch call, with no retries.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets a timeout for HTTP requests. By default no timeout
// is imposed beyond the client's own defaults, so a hung connection
// stalls the whole invocation.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a single GET against the URL and returns the response
// body as a stream. The caller must close it.
func (f *Fetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "invalid corpus URL %q: %s", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "fetch %s: %s", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, docsearch.Errorf(docsearch.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	return resp.Body, nil
}
