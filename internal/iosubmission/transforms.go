package iosubmission

import (
	"context"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// SourceTransformBySystemUserID resolves the live source transform of
// an uploading system. A non-zero version narrows the lookup when a
// system carries several transform versions.
func (s *store) SourceTransformBySystemUserID(
	ctx context.Context,
	systemUserID, version int,
) (*submission.SourceTransform, error) {
	q := `
SELECT
  source_transform_id,
  system_user_id,
  version,
  coalesce(metadata_transform, ''),
  coalesce(metadata_index, ''),
  record_effective_date,
  record_end_date
FROM source_transform
WHERE system_user_id = $1
AND record_end_date IS NULL`
	args := []any{systemUserID}

	if version != 0 {
		q += `
AND version = $2`
		args = append(args, version)
	}

	var st submission.SourceTransform
	err := s.q.QueryRow(ctx, q, args...).Scan(
		&st.SourceTransformID,
		&st.SystemUserID,
		&st.Version,
		&st.MetadataTransform,
		&st.MetadataIndex,
		&st.RecordEffectiveDate,
		&st.RecordEndDate,
	)
	if err != nil {
		return nil, SourceTransformNotFoundError(err)
	}
	return &st, nil
}

// SourceTransformByID fetches a source transform row by primary id.
func (s *store) SourceTransformByID(
	ctx context.Context,
	sourceTransformID int,
) (*submission.SourceTransform, error) {
	q := `
SELECT
  source_transform_id,
  system_user_id,
  version,
  coalesce(metadata_transform, ''),
  coalesce(metadata_index, ''),
  record_effective_date,
  record_end_date
FROM source_transform
WHERE source_transform_id = $1`

	var st submission.SourceTransform
	err := s.q.QueryRow(ctx, q, sourceTransformID).Scan(
		&st.SourceTransformID,
		&st.SystemUserID,
		&st.Version,
		&st.MetadataTransform,
		&st.MetadataIndex,
		&st.RecordEffectiveDate,
		&st.RecordEndDate,
	)
	if err != nil {
		return nil, SourceTransformNotFoundError(err)
	}
	return &st, nil
}

// MetadataJSON executes a metadata transform with the submission id
// as its parameter. The transform contract is one row with one
// result_data column holding the metadata JSON document.
func (s *store) MetadataJSON(
	ctx context.Context,
	submissionID int,
	transformSQL string,
) (string, error) {
	var res string
	err := s.q.QueryRow(ctx, transformSQL, submissionID).Scan(&res)
	if err != nil {
		return "", MetadataTransformError(submissionID, err)
	}
	return res, nil
}
