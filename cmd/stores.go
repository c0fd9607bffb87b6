package cmd

import (
	"context"

	"github.com/PinkDiamond1/biohubbc-platform/internal/ioblob"
	"github.com/PinkDiamond1/biohubbc-platform/internal/iodb"
	"github.com/PinkDiamond1/biohubbc-platform/internal/ioingest"
	"github.com/PinkDiamond1/biohubbc-platform/internal/iosearch"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/parserpool"
)

// connectDB connects an operator to the configured database. The
// caller is responsible for closing it.
func connectDB(ctx context.Context) (iodb.Operator, error) {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}
	return op, nil
}

// newBlobStore builds the configured blob store backend.
func newBlobStore() (biohub.BlobStore, error) {
	if cfg.Blob.Store == "http" {
		return ioblob.NewHTTPStore(cfg.Blob.URL, cfg.Blob.Token), nil
	}

	dir := cfg.Blob.Dir
	if dir == "" {
		dir = config.DataDir(cfg.HomeDir)
	}
	return ioblob.NewFSStore(dir)
}

// newIngestor wires the pipeline driver from configuration. The
// parser pool and progress callback may be nil for commands that do
// not need them.
func newIngestor(
	op iodb.Operator,
	parser parserpool.Pool,
	progress biohub.StepProgress,
) (biohub.Ingestor, error) {
	blob, err := newBlobStore()
	if err != nil {
		return nil, err
	}

	search := iosearch.NewClient(cfg.Search.URL)

	return ioingest.NewIngestor(cfg, op, blob, search, parser, progress), nil
}
