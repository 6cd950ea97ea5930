package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of docsearch.SnapshotService.
type SnapshotService struct {
	ResolveFn func(ctx context.Context, force bool) (*docsearch.Snapshot, error)
}

func (s *SnapshotService) Resolve(ctx context.Context, force bool) (*docsearch.Snapshot, error) {
	return s.ResolveFn(ctx, force)
}
