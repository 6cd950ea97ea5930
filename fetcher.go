package docsearch

import (
	"context"
	"io"
)

// Fetcher retrieves the raw corpus from a URL.
type Fetcher interface {
	// Fetch performs a single GET against the URL and returns the
	// response body as a stream. The caller must close the returned
	// reader. The context controls cancellation.
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}
