// Package fs provides file-based corpus snapshot storage with
// time-based invalidation.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsearch"
)

// Ensure SnapshotStore implements docsearch.SnapshotService at compile time.
var _ docsearch.SnapshotService = (*SnapshotStore)(nil)

// SnapshotStore caches the corpus as a single file under dir and
// refreshes it from the remote URL when absent, stale, or forced. The
// file's modification time is the sole freshness signal. Downloads are
// written to a temporary file and renamed into place, so a failed fetch
// never corrupts an existing cache file.
type SnapshotStore struct {
	dir       string
	name      string
	remoteURL string
	fetcher   docsearch.Fetcher
	ttl       time.Duration
	clock     docsearch.Clock
}

// Option configures a SnapshotStore.
type Option func(*SnapshotStore)

// WithTTL sets the maximum cache age before a refetch.
// Defaults to docsearch.DefaultTTL (24h).
func WithTTL(ttl time.Duration) Option {
	return func(s *SnapshotStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock injects the time source used for freshness checks, letting
// tests simulate staleness without sleeping. Defaults to time.Now.
func WithClock(clock docsearch.Clock) Option {
	return func(s *SnapshotStore) {
		s.clock = clock
	}
}

// NewSnapshotStore creates a SnapshotStore caching dir/name, refreshed
// from remoteURL via the fetcher.
func NewSnapshotStore(dir, name, remoteURL string, fetcher docsearch.Fetcher, opts ...Option) *SnapshotStore {
	s := &SnapshotStore{
		dir:       dir,
		name:      name,
		remoteURL: remoteURL,
		fetcher:   fetcher,
		ttl:       docsearch.DefaultTTL,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SnapshotStore) path() string {
	return filepath.Join(s.dir, s.name)
}

// Resolve implements docsearch.SnapshotService. It performs at most one
// network fetch and at most one cache write per call.
func (s *SnapshotStore) Resolve(ctx context.Context, force bool) (*docsearch.Snapshot, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, docsearch.Errorf(docsearch.EINTERNAL, "create cache directory %q: %s", s.dir, err)
	}

	path := s.path()
	info, statErr := os.Stat(path)
	if statErr == nil && !force && s.clock().Sub(info.ModTime()) <= s.ttl {
		return &docsearch.Snapshot{Path: path, FetchedAt: info.ModTime()}, nil
	}

	// Fingerprint the file being replaced so the refresh can report
	// whether the corpus actually changed. Best effort only.
	var prevHash string
	if statErr == nil {
		prevHash, _ = hashFile(path)
	}

	hash, err := s.download(ctx, path)
	if err != nil {
		return nil, err
	}

	info, err = os.Stat(path)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINTERNAL, "stat cache file %q: %s", path, err)
	}

	return &docsearch.Snapshot{
		Path:        path,
		FetchedAt:   info.ModTime(),
		Refreshed:   true,
		ContentHash: hash,
		Changed:     hash != prevHash,
	}, nil
}

// download fetches the corpus into a temporary file and atomically
// renames it over the cache path, returning the content hash of the
// downloaded bytes. Failure leaves any existing cache file untouched.
func (s *SnapshotStore) download(ctx context.Context, path string) (string, error) {
	body, err := s.fetcher.Fetch(ctx, s.remoteURL)
	if err != nil {
		return "", err
	}
	defer body.Close()

	tmpPath := path + ".tmp"
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "create temp file %q: %s", tmpPath, err)
	}
	defer os.Remove(tmpPath)

	h := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(tmp, h), body); err != nil {
		tmp.Close()
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "download %s: %s", s.remoteURL, err)
	}
	if err := tmp.Close(); err != nil {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "write temp file %q: %s", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "replace cache file %q: %s", path, err)
	}

	return formatHash(h.Sum64()), nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return formatHash(h.Sum64()), nil
}

func formatHash(sum uint64) string {
	return strconv.FormatUint(sum, 16)
}
