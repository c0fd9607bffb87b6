package iosubmission

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// InsertRecord creates a new submission row and returns its id.
func (s *store) InsertRecord(
	ctx context.Context,
	rec submission.InsertRecord,
) (int, error) {
	q := `
INSERT INTO submission (
  source_transform_id,
  uuid,
  record_effective_date,
  input_file_name
) VALUES ($1, $2, now(), $3)
RETURNING submission_id`

	var id int
	err := s.q.QueryRow(ctx, q,
		rec.SourceTransformID, rec.UUID, rec.InputFileName).Scan(&id)
	if err != nil {
		return 0, InsertError(rec.UUID, err)
	}
	return id, nil
}

// updateColumn updates one submission column, failing unless exactly
// one row was touched.
func (s *store) updateColumn(
	ctx context.Context,
	submissionID int,
	column string,
	value string,
) error {
	q := `
UPDATE submission
SET ` + column + ` = $1
WHERE submission_id = $2
RETURNING submission_id`

	var id int
	err := s.q.QueryRow(ctx, q, value, submissionID).Scan(&id)
	if err != nil {
		return UpdateError(column, submissionID, err)
	}
	return nil
}

// UpdateInputKey sets the blob storage key of the raw archive.
func (s *store) UpdateInputKey(
	ctx context.Context,
	submissionID int,
	inputKey string,
) error {
	return s.updateColumn(ctx, submissionID, "input_key", inputKey)
}

// UpdateEMLSource sets the raw EML XML document.
func (s *store) UpdateEMLSource(
	ctx context.Context,
	submissionID int,
	emlXML string,
) error {
	return s.updateColumn(ctx, submissionID, "eml_source", emlXML)
}

// UpdateEMLJSONSource sets the EML document converted to JSON.
func (s *store) UpdateEMLJSONSource(
	ctx context.Context,
	submissionID int,
	emlJSON string,
) error {
	return s.updateColumn(ctx, submissionID, "eml_json_source", emlJSON)
}

// UpdateDWCSource sets the normalized Darwin Core JSON document.
func (s *store) UpdateDWCSource(
	ctx context.Context,
	submissionID int,
	normalized string,
) error {
	return s.updateColumn(ctx, submissionID, "darwin_core_source", normalized)
}

// GetRecord fetches a submission row by primary id.
func (s *store) GetRecord(
	ctx context.Context,
	submissionID int,
) (*submission.Record, error) {
	q := `
SELECT
  submission_id,
  source_transform_id,
  uuid,
  record_effective_date,
  record_end_date,
  coalesce(input_key, ''),
  coalesce(input_file_name, ''),
  coalesce(eml_source, ''),
  coalesce(eml_json_source::text, ''),
  coalesce(darwin_core_source::text, '')
FROM submission
WHERE submission_id = $1`

	var rec submission.Record
	err := s.q.QueryRow(ctx, q, submissionID).Scan(
		&rec.SubmissionID,
		&rec.SourceTransformID,
		&rec.UUID,
		&rec.RecordEffectiveDate,
		&rec.RecordEndDate,
		&rec.InputKey,
		&rec.InputFileName,
		&rec.EMLSource,
		&rec.EMLJSONSource,
		&rec.DarwinCoreSource,
	)
	if err != nil {
		return nil, GetError(submissionID, err)
	}
	return &rec, nil
}

// GetIDByUUID returns the live submission id for a dataset, or 0 when
// the dataset has never been ingested or all its versions are ended.
func (s *store) GetIDByUUID(
	ctx context.Context,
	uuid string,
) (int, error) {
	q := `
SELECT submission_id
FROM submission
WHERE uuid = $1
AND record_end_date IS NULL`

	var id int
	err := s.q.QueryRow(ctx, q, uuid).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, SearchError(err)
	}
	return id, nil
}

// SetEndDate marks a live submission superseded.
func (s *store) SetEndDate(
	ctx context.Context,
	submissionID int,
) error {
	q := `
UPDATE submission
SET record_end_date = now()
WHERE submission_id = $1
AND record_end_date IS NULL
RETURNING submission_id`

	var id int
	err := s.q.QueryRow(ctx, q, submissionID).Scan(&id)
	if err != nil {
		return UpdateError("record_end_date", submissionID, err)
	}
	return nil
}

// EMLJSONByDatasetID returns the current version's EML JSON; ok is
// false when the dataset has no live submission.
func (s *store) EMLJSONByDatasetID(
	ctx context.Context,
	datasetID string,
) (string, bool, error) {
	q := `
SELECT coalesce(eml_json_source::text, '')
FROM submission
WHERE uuid = $1
AND record_end_date IS NULL`

	var res string
	err := s.q.QueryRow(ctx, q, datasetID).Scan(&res)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, SearchError(err)
	}
	return res, true, nil
}

// ListRecords returns all submissions annotated with their latest
// status name. The DISTINCT ON subquery picks the freshest status row
// per submission.
func (s *store) ListRecords(
	ctx context.Context,
) ([]submission.RecordWithStatus, error) {
	q := `
SELECT
  coalesce(t1.submission_status, ''),
  s.submission_id,
  s.source_transform_id,
  s.uuid,
  s.record_effective_date,
  s.record_end_date,
  coalesce(s.input_key, ''),
  coalesce(s.input_file_name, ''),
  coalesce(s.eml_source, ''),
  coalesce(s.eml_json_source::text, ''),
  coalesce(s.darwin_core_source::text, '')
FROM submission s
LEFT JOIN (
  SELECT DISTINCT ON (ss.submission_id)
    ss.submission_id,
    sst.name AS submission_status
  FROM submission_status ss
  LEFT JOIN submission_status_type sst
    ON ss.submission_status_type_id = sst.submission_status_type_id
  ORDER BY ss.submission_id, ss.submission_status_id DESC
) t1 ON t1.submission_id = s.submission_id
ORDER BY s.submission_id`

	rows, err := s.q.Query(ctx, q)
	if err != nil {
		return nil, SearchError(err)
	}
	defer rows.Close()

	var res []submission.RecordWithStatus
	for rows.Next() {
		var rec submission.RecordWithStatus
		err = rows.Scan(
			&rec.Status,
			&rec.SubmissionID,
			&rec.SourceTransformID,
			&rec.UUID,
			&rec.RecordEffectiveDate,
			&rec.RecordEndDate,
			&rec.InputKey,
			&rec.InputFileName,
			&rec.EMLSource,
			&rec.EMLJSONSource,
			&rec.DarwinCoreSource,
		)
		if err != nil {
			return nil, SearchError(err)
		}
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, SearchError(err)
	}
	return res, nil
}
