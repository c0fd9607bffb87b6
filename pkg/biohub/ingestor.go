package biohub

import (
	"context"

	"github.com/paulmach/orb/geojson"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/spatial"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// RawFile is an uploaded archive before parsing.
type RawFile struct {
	Name string
	Data []byte
}

// StepProgress is called after every completed pipeline step; the CLI
// renders a progress bar from it. A nil callback is valid.
type StepProgress func(step string, current, total int)

// Ingestor drives the Darwin Core ingestion pipeline.
type Ingestor interface {
	// Intake is the replace-or-create entry point: when a live
	// submission exists for the dataset UUID its spatial artifacts are
	// cascade-deleted and its record ended before the new version is
	// created. Returns the new submission id.
	Intake(ctx context.Context, file RawFile, datasetUUID string) (int, error)

	// Scrape reads the submission's normalized occurrence and event
	// worksheets into occurrence rows, replacing any prior rows for the
	// submission. Returns the number of rows inserted.
	Scrape(ctx context.Context, submissionID int) (int, error)

	// SearchSpatial returns the visible spatial data matching the
	// criteria.
	SearchSpatial(ctx context.Context,
		criteria spatial.SearchCriteria) ([]*geojson.FeatureCollection, error)

	// SearchSubmissions returns submission ids matching the criteria.
	SearchSubmissions(ctx context.Context,
		criteria submission.SearchCriteria) ([]int, error)

	// FindRecordWithSpatialCount returns the current version of a
	// dataset with its visible occurrence count, or nil when the
	// dataset has no live submission.
	FindRecordWithSpatialCount(ctx context.Context,
		datasetID string) (*submission.RecordWithSpatial, error)

	// FindRecordsWithSpatialCount fans FindRecordWithSpatialCount out
	// over several dataset ids, preserving input order.
	FindRecordsWithSpatialCount(ctx context.Context,
		datasetIDs []string) ([]*submission.RecordWithSpatial, error)

	// ListSubmissions returns all submissions with their latest status.
	ListSubmissions(ctx context.Context) ([]submission.RecordWithStatus, error)
}
