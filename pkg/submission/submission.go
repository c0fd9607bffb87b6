// Package submission provides domain types for dataset submissions:
// one Record per ingested version of a dataset, an append-only
// status/message audit trail, and the source-transform configuration
// that selects per-uploader metadata transforms.
package submission

import (
	"time"
)

// Record is one ingested version of a dataset.
//
// At most one record with a given UUID has a null RecordEndDate at any
// time; that record is the current version. Replacing a dataset ends
// the previous record and cascades away its spatial components.
type Record struct {
	SubmissionID      int
	SourceTransformID int

	// UUID is the stable external identifier of the logical dataset,
	// shared by all of its versions.
	UUID string

	RecordEffectiveDate time.Time
	RecordEndDate       *time.Time

	// InputKey is the blob storage key of the raw archive.
	InputKey string

	InputFileName string

	// EMLSource is the raw EML XML document extracted from the archive.
	EMLSource string

	// EMLJSONSource is the EML document converted to JSON.
	EMLJSONSource string

	// DarwinCoreSource is the normalized archive: worksheet name to
	// row-object array, serialized as one JSON document.
	DarwinCoreSource string
}

// RecordWithStatus is a Record annotated with its latest status name.
type RecordWithStatus struct {
	Record
	Status string
}

// RecordWithSpatial is the submission view returned to dataset
// consumers: the current EML JSON plus the visible occurrence count.
type RecordWithSpatial struct {
	ID               string `json:"id"`
	Source           string `json:"source"`
	ObservationCount int    `json:"observation_count"`
}

// InsertRecord carries the fields written when a new submission row is
// created at the top of the pipeline.
type InsertRecord struct {
	SourceTransformID int
	UUID              string
	InputFileName     string
}

// SourceTransform describes, per uploading system identity, which
// metadata transform and search index apply. Same null-end-date
// validity convention as Record.
type SourceTransform struct {
	SourceTransformID int
	SystemUserID      int
	Version           int

	// MetadataTransform is the SQL text producing the dataset metadata
	// JSON document for a submission id.
	MetadataTransform string

	// MetadataIndex is the search index the metadata document is
	// published to. Empty means the configured default.
	MetadataIndex string

	RecordEffectiveDate time.Time
	RecordEndDate       *time.Time
}

// Status is one audit trail entry.
type Status struct {
	SubmissionStatusID int
	SubmissionID       int
	StatusType         string
	EventTimestamp     time.Time
}

// Message is one free-text annotation attached to a status entry.
type Message struct {
	SubmissionMessageID int
	SubmissionStatusID  int
	MessageType         string
	Message             string
	EventTimestamp      time.Time
}

// SpatialComponentCount is the per-feature-type aggregate returned by
// the dataset observation counting queries.
type SpatialComponentCount struct {
	SpatialType string
	Count       int
}
