package ioingest

import (
	"context"

	"github.com/paulmach/orb/geojson"
	"golang.org/x/sync/errgroup"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/spatial"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// occurrenceSpatialType tags the features produced by the stock
// occurrence transform; the observation count sums only those.
const occurrenceSpatialType = "Occurrence"

// SearchSpatial returns the visible spatial data matching the
// criteria, with the configured system user's security exceptions
// applied.
func (i *ingestor) SearchSpatial(
	ctx context.Context,
	criteria spatial.SearchCriteria,
) ([]*geojson.FeatureCollection, error) {
	spat := i.newSpatialStore(i.q)
	return spat.FindByCriteria(ctx, criteria, i.cfg.SystemUserID)
}

// SearchSubmissions returns submission ids matching the criteria.
func (i *ingestor) SearchSubmissions(
	ctx context.Context,
	criteria submission.SearchCriteria,
) ([]int, error) {
	sub := i.newSubmissionStore(i.q)
	return sub.FindByCriteria(ctx, criteria)
}

// ListSubmissions returns all submissions with their latest status.
func (i *ingestor) ListSubmissions(
	ctx context.Context,
) ([]submission.RecordWithStatus, error) {
	sub := i.newSubmissionStore(i.q)
	return sub.ListRecords(ctx)
}

// FindRecordWithSpatialCount returns the current version of a dataset
// with its visible occurrence count, or nil when the dataset has no
// live submission.
func (i *ingestor) FindRecordWithSpatialCount(
	ctx context.Context,
	datasetID string,
) (*submission.RecordWithSpatial, error) {
	sub := i.newSubmissionStore(i.q)

	source, ok, err := sub.EMLJSONByDatasetID(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	counts, err := sub.SpatialComponentCounts(
		ctx, datasetID, i.cfg.SystemUserID)
	if err != nil {
		return nil, err
	}

	rec := &submission.RecordWithSpatial{
		ID:     datasetID,
		Source: source,
	}
	for _, c := range counts {
		if c.SpatialType == occurrenceSpatialType {
			rec.ObservationCount += c.Count
		}
	}
	return rec, nil
}

// FindRecordsWithSpatialCount fans the per-dataset lookup out over a
// bounded worker group, preserving input order. Datasets without a
// live submission come back as nil entries.
func (i *ingestor) FindRecordsWithSpatialCount(
	ctx context.Context,
	datasetIDs []string,
) ([]*submission.RecordWithSpatial, error) {
	res := make([]*submission.RecordWithSpatial, len(datasetIDs))

	limit := i.cfg.JobsNumber
	if limit < 1 {
		limit = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for n, id := range datasetIDs {
		g.Go(func() error {
			rec, err := i.FindRecordWithSpatialCount(ctx, id)
			if err != nil {
				return err
			}
			res[n] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
