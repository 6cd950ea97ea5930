package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docsearch"
	main "github.com/fwojciec/docsearch/cmd/docsearch"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpus writes corpus text to a temp file and returns its path.
func writeCorpus(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "llms-full.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestSearch_PrintsOnlyURLsToStdout(t *testing.T) {
	t.Parallel()

	path := writeCorpus(t, testCorpus)
	snapshots := &mock.SnapshotService{
		ResolveFn: func(ctx context.Context, force bool) (*docsearch.Snapshot, error) {
			return &docsearch.Snapshot{Path: path}, nil
		},
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Snapshots: snapshots,
		Segmenter: docsearch.NewSegmenter(""),
	}

	cli := &main.CLI{Keywords: []string{"semantic_model"}}

	err := cli.Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "https://docs.getdbt.com/docs/build/semantic-models\n", stdout.String())
	// Diagnostics stay off the primary stream
	assert.NotContains(t, stdout.String(), "Matched")
	assert.Contains(t, stderr.String(), "Matched 1 of 2 pages")
}

func TestSearch_ForceFlagReachesSnapshotService(t *testing.T) {
	t.Parallel()

	path := writeCorpus(t, testCorpus)
	var gotForce bool
	snapshots := &mock.SnapshotService{
		ResolveFn: func(ctx context.Context, force bool) (*docsearch.Snapshot, error) {
			gotForce = force
			return &docsearch.Snapshot{Path: path, Refreshed: force}, nil
		},
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Snapshots: snapshots,
		Segmenter: docsearch.NewSegmenter(""),
	}

	cli := &main.CLI{Keywords: []string{"metric"}, Fresh: true}

	require.NoError(t, cli.Run(deps))
	assert.True(t, gotForce)
}

func TestSearch_ResolveErrorAborts(t *testing.T) {
	t.Parallel()

	want := docsearch.Errorf(docsearch.EUNAVAILABLE, "fetch failed")
	snapshots := &mock.SnapshotService{
		ResolveFn: func(ctx context.Context, force bool) (*docsearch.Snapshot, error) {
			return nil, want
		},
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Snapshots: snapshots,
		Segmenter: docsearch.NewSegmenter(""),
	}

	cli := &main.CLI{Keywords: []string{"metric"}}

	err := cli.Run(deps)

	assert.Equal(t, want, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "error: fetch failed")
}

func TestSearch_MissingCorpusFileIsStorageError(t *testing.T) {
	t.Parallel()

	snapshots := &mock.SnapshotService{
		ResolveFn: func(ctx context.Context, force bool) (*docsearch.Snapshot, error) {
			return &docsearch.Snapshot{Path: filepath.Join(t.TempDir(), "missing.txt")}, nil
		},
	}

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Snapshots: snapshots,
		Segmenter: docsearch.NewSegmenter(""),
	}

	cli := &main.CLI{Keywords: []string{"metric"}}

	err := cli.Run(deps)

	assert.Equal(t, docsearch.EINTERNAL, docsearch.ErrorCode(err))
}
