// Package biohub defines the contracts of the submission platform
// core. Implementations live in internal/io* packages; pure domain
// types live in pkg/submission, pkg/spatial, pkg/occurrence and
// pkg/dwca.
package biohub

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paulmach/orb/geojson"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/occurrence"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/spatial"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// Querier is the database access surface the stores run against.
// Both *pgxpool.Pool and pgx.Tx satisfy it. The ingestion pipeline
// binds stores to a transaction only for the replace-or-create phase;
// the pipeline steps run on the pool with autocommit so the audit
// trail of a failing step survives the abort.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SubmissionStore persists submission records, the append-only
// status/message audit trail, and source-transform configuration.
// Every "expected exactly one row" failure is a fatal invariant
// violation, not a recoverable condition.
type SubmissionStore interface {
	// InsertRecord creates a new submission row and returns its id.
	InsertRecord(ctx context.Context, rec submission.InsertRecord) (int, error)

	// UpdateInputKey sets the blob storage key of the raw archive.
	UpdateInputKey(ctx context.Context, submissionID int, inputKey string) error

	// UpdateEMLSource sets the raw EML XML document.
	UpdateEMLSource(ctx context.Context, submissionID int, emlXML string) error

	// UpdateEMLJSONSource sets the EML document converted to JSON.
	UpdateEMLJSONSource(ctx context.Context, submissionID int, emlJSON string) error

	// UpdateDWCSource sets the normalized Darwin Core JSON document.
	UpdateDWCSource(ctx context.Context, submissionID int, normalized string) error

	// GetRecord fetches a submission row; fails unless exactly one row
	// matches.
	GetRecord(ctx context.Context, submissionID int) (*submission.Record, error)

	// GetIDByUUID returns the current (end-date-null) submission id for
	// a dataset, or 0 when none exists.
	GetIDByUUID(ctx context.Context, uuid string) (int, error)

	// SetEndDate marks a live submission superseded.
	SetEndDate(ctx context.Context, submissionID int) error

	// InsertStatus appends an audit status row and returns its id.
	InsertStatus(ctx context.Context, submissionID int,
		statusType submission.StatusType) (int, error)

	// InsertMessage appends a message row to a status entry.
	InsertMessage(ctx context.Context, statusID int,
		messageType submission.MessageType, message string) (int, error)

	// InsertStatusAndMessage appends a status row and its message in
	// one call, returning both ids.
	InsertStatusAndMessage(ctx context.Context, submissionID int,
		statusType submission.StatusType, messageType submission.MessageType,
		message string) (statusID, messageID int, err error)

	// SourceTransformBySystemUserID resolves the current source
	// transform of an uploading system; version narrows the lookup when
	// non-zero. Fails unless exactly one row matches.
	SourceTransformBySystemUserID(ctx context.Context, systemUserID,
		version int) (*submission.SourceTransform, error)

	// SourceTransformByID fetches a source transform row.
	SourceTransformByID(ctx context.Context,
		sourceTransformID int) (*submission.SourceTransform, error)

	// MetadataJSON executes a metadata transform against a submission
	// id and returns its single JSON result column.
	MetadataJSON(ctx context.Context, submissionID int,
		transformSQL string) (string, error)

	// EMLJSONByDatasetID returns the current version's EML JSON; ok is
	// false when the dataset has no live submission.
	EMLJSONByDatasetID(ctx context.Context,
		datasetID string) (res string, ok bool, err error)

	// FindByCriteria returns submission ids matching the keyword and/or
	// boundary filters.
	FindByCriteria(ctx context.Context,
		criteria submission.SearchCriteria) ([]int, error)

	// SpatialComponentCountsAsAdmin groups feature counts by
	// properties.type without the security-exception join.
	SpatialComponentCountsAsAdmin(ctx context.Context,
		datasetID string) ([]submission.SpatialComponentCount, error)

	// SpatialComponentCounts applies the security-exception rules for
	// the given system user before counting.
	SpatialComponentCounts(ctx context.Context, datasetID string,
		systemUserID int) ([]submission.SpatialComponentCount, error)

	// ListRecords returns all submissions with their latest status.
	ListRecords(ctx context.Context) ([]submission.RecordWithStatus, error)
}

// SpatialStore persists submission spatial components and executes the
// named spatial and security transforms.
type SpatialStore interface {
	// InsertComponent stores a feature collection for a submission and
	// returns the component id.
	InsertComponent(ctx context.Context, submissionID int,
		fc *geojson.FeatureCollection) (int, error)

	// InsertSpatialTransformRef links a component to the spatial
	// transform that produced it.
	InsertSpatialTransformRef(ctx context.Context, transformID,
		componentID int) (int, error)

	// InsertSecurityTransformRef links a component to the security
	// transform that secured it.
	InsertSecurityTransformRef(ctx context.Context, transformID,
		componentID int) (int, error)

	// SpatialTransforms returns the current spatial transform
	// definitions.
	SpatialTransforms(ctx context.Context) ([]spatial.Transform, error)

	// SecurityTransforms returns the current security transform
	// definitions.
	SecurityTransforms(ctx context.Context) ([]spatial.Transform, error)

	// RunSpatialTransform executes a transform with the submission id
	// as its parameter; one query may produce several feature
	// collections.
	RunSpatialTransform(ctx context.Context, submissionID int,
		transformSQL string) ([]*geojson.FeatureCollection, error)

	// RunSecurityTransform executes a security transform; each result
	// row pairs a component id with its redacted variant.
	RunSecurityTransform(ctx context.Context, submissionID int,
		transformSQL string) ([]spatial.SecureRecord, error)

	// UpdateComponentWithSecurity sets the redacted variant of a
	// component.
	UpdateComponentWithSecurity(ctx context.Context, componentID int,
		secured *geojson.FeatureCollection) error

	// DeleteComponentsBySubmissionID removes the submission's
	// components, returning the affected component ids.
	DeleteComponentsBySubmissionID(ctx context.Context,
		submissionID int) ([]int, error)

	// DeleteSpatialTransformRefsBySubmissionID removes the spatial
	// transform link rows of the submission's components.
	DeleteSpatialTransformRefsBySubmissionID(ctx context.Context,
		submissionID int) ([]int, error)

	// DeleteSecurityTransformRefsBySubmissionID removes the security
	// transform link rows of the submission's components.
	DeleteSecurityTransformRefsBySubmissionID(ctx context.Context,
		submissionID int) ([]int, error)

	// FindByCriteria returns the visible spatial data of components
	// matching the criteria, applying the security-exception rules for
	// the given system user.
	FindByCriteria(ctx context.Context, criteria spatial.SearchCriteria,
		systemUserID int) ([]*geojson.FeatureCollection, error)
}

// OccurrenceStore persists scraped occurrence rows.
type OccurrenceStore interface {
	// InsertScraped stores one occurrence row, deriving the geography
	// column from its verbatim coordinates.
	InsertScraped(ctx context.Context, submissionID int,
		occ occurrence.Scraped) (int, error)

	// DeleteBySubmissionID removes the submission's occurrence rows.
	DeleteBySubmissionID(ctx context.Context, submissionID int) error
}

// BlobStore stores raw submission archives.
type BlobStore interface {
	// Put stores data under key with optional metadata.
	Put(ctx context.Context, key string, data []byte,
		metadata map[string]string) error

	// Get retrieves the data stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
}

// SearchIndex upserts dataset metadata documents keyed by dataset UUID.
type SearchIndex interface {
	Index(ctx context.Context, index, id, document string) error
}
