// Package errcode defines error codes for the BioHub platform backend.
// Codes are grouped by subsystem so a failing CLI run can point the
// operator at the right layer without parsing message text.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File system errors
	CreateDirError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTransactionError
	DBTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaMigrateError
	SchemaSeedError

	// Archive errors
	ArchiveParseError
	ArchiveValidationError

	// Submission store errors
	SubmissionInsertError
	SubmissionUpdateError
	SubmissionGetError
	SubmissionStatusError
	SubmissionMessageError
	SourceTransformError
	MetadataTransformError
	SubmissionSearchError

	// Spatial store errors
	SpatialInsertError
	SpatialTransformRunError
	SpatialSecurityError
	SpatialDeleteError
	SpatialSearchError
	SpatialCountError

	// Occurrence store errors
	OccurrenceInsertError
	OccurrenceScrapeError

	// Blob storage errors
	BlobPutError
	BlobGetError

	// Search index errors
	SearchIndexError

	// Ingestion pipeline errors
	IngestionFailedError
	IngestionStepError
)
