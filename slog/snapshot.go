// Package slog provides logging decorators for docsearch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsearch"
)

// Ensure LoggingSnapshotService implements docsearch.SnapshotService.
var _ docsearch.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with diagnostic
// logging distinguishing downloads from cache hits.
type LoggingSnapshotService struct {
	next   docsearch.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next docsearch.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

// Resolve delegates to the wrapped service and logs the outcome.
func (s *LoggingSnapshotService) Resolve(ctx context.Context, force bool) (*docsearch.Snapshot, error) {
	begin := time.Now()
	snap, err := s.next.Resolve(ctx, force)
	if err != nil {
		s.logger.Error("corpus resolve failed",
			"code", docsearch.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	if snap.Refreshed {
		s.logger.Info("corpus downloaded",
			"path", snap.Path,
			"changed", snap.Changed,
			"duration", time.Since(begin),
		)
	} else {
		s.logger.Info("corpus cache hit",
			"path", snap.Path,
			"fetched_at", snap.FetchedAt,
			"duration", time.Since(begin),
		)
	}
	return snap, nil
}
