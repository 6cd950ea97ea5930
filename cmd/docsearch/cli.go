package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docsearch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Snapshots docsearch.SnapshotService
	Segmenter *docsearch.Segmenter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Keywords []string      `arg:"" name:"keyword" required:"" help:"Keyword to search for (case-insensitive substring)"`
	Fresh    bool          `short:"f" help:"Force a fresh download of the corpus"`
	TTL      time.Duration `default:"24h" help:"Maximum cache age before a refetch"`
	CacheDir string        `help:"Cache root directory (default: user cache dir, or DOCSEARCH_CACHE_DIR)"`
}
