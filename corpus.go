package docsearch

import (
	"context"
	"time"
)

// DefaultTTL is the maximum age a cached corpus snapshot may reach
// before the next run triggers a refetch.
const DefaultTTL = 24 * time.Hour

// Snapshot describes a locally cached copy of the remote corpus.
type Snapshot struct {
	// Path is the location of the corpus file on disk.
	Path string

	// FetchedAt is the modification time of the cache file, i.e. when
	// the corpus was last downloaded.
	FetchedAt time.Time

	// Refreshed reports whether this invocation downloaded the corpus
	// (true) or reused the existing cache file (false).
	Refreshed bool

	// ContentHash is a fingerprint of the corpus content. Only set when
	// Refreshed is true.
	ContentHash string

	// Changed reports whether the refresh produced content differing
	// from the previously cached corpus. True on a first download.
	// Only meaningful when Refreshed is true.
	Changed bool
}

// SnapshotService resolves a usable local copy of the remote corpus,
// downloading a fresh one when the cache is absent, stale, or force is
// set.
type SnapshotService interface {
	// Resolve returns a snapshot whose Path points at a valid corpus
	// file. It performs at most one network fetch and at most one disk
	// write per call, and never leaves a partial file visible on
	// failure.
	Resolve(ctx context.Context, force bool) (*Snapshot, error)
}

// Clock returns the current time. It is injected into freshness checks
// so tests can simulate staleness without sleeping.
type Clock func() time.Time
