// Package ioingest implements the Darwin Core ingestion pipeline: the
// replace-or-create intake, the nine processing steps with their
// status audit trail, the occurrence scrape and the read-side search
// operations.
package ioingest

import (
	"context"

	"github.com/PinkDiamond1/biohubbc-platform/internal/iodb"
	"github.com/PinkDiamond1/biohubbc-platform/internal/iooccurrence"
	"github.com/PinkDiamond1/biohubbc-platform/internal/iospatial"
	"github.com/PinkDiamond1/biohubbc-platform/internal/iosubmission"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/parserpool"
)

type ingestor struct {
	cfg      *config.Config
	blob     biohub.BlobStore
	search   biohub.SearchIndex
	parser   parserpool.Pool
	progress biohub.StepProgress

	// q is the pool-bound query surface. Pipeline steps run on it with
	// autocommit so the audit trail of a failing step survives; only
	// the replace-or-create decision runs inside withTx.
	q      biohub.Querier
	withTx func(ctx context.Context, fn func(biohub.Querier) error) error

	newSubmissionStore func(biohub.Querier) biohub.SubmissionStore
	newSpatialStore    func(biohub.Querier) biohub.SpatialStore
	newOccurrenceStore func(biohub.Querier) biohub.OccurrenceStore
}

// NewIngestor creates the pipeline driver. The progress callback may
// be nil.
func NewIngestor(
	cfg *config.Config,
	op iodb.Operator,
	blob biohub.BlobStore,
	search biohub.SearchIndex,
	parser parserpool.Pool,
	progress biohub.StepProgress,
) biohub.Ingestor {
	return &ingestor{
		cfg:      cfg,
		blob:     blob,
		search:   search,
		parser:   parser,
		progress: progress,

		q:      op.Pool(),
		withTx: op.WithTransaction,

		newSubmissionStore: iosubmission.NewStore,
		newSpatialStore:    iospatial.NewStore,
		newOccurrenceStore: iooccurrence.NewStore,
	}
}

func (i *ingestor) report(step string, current, total int) {
	if i.progress != nil {
		i.progress(step, current, total)
	}
}
