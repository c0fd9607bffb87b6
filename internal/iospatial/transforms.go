package iospatial

import (
	"context"

	"github.com/paulmach/orb/geojson"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/spatial"
)

// SpatialTransforms returns the live spatial transform definitions.
func (s *store) SpatialTransforms(
	ctx context.Context,
) ([]spatial.Transform, error) {
	return s.transforms(ctx, "spatial_transform", "spatial_transform_id")
}

// SecurityTransforms returns the live security transform definitions.
func (s *store) SecurityTransforms(
	ctx context.Context,
) ([]spatial.Transform, error) {
	return s.transforms(ctx, "security_transform", "security_transform_id")
}

func (s *store) transforms(
	ctx context.Context,
	table, idColumn string,
) ([]spatial.Transform, error) {
	q := `
SELECT
  ` + idColumn + `,
  name,
  coalesce(description, ''),
  transform,
  record_effective_date,
  record_end_date
FROM ` + table + `
WHERE record_end_date IS NULL
ORDER BY ` + idColumn

	rows, err := s.q.Query(ctx, q)
	if err != nil {
		return nil, SearchError(err)
	}
	defer rows.Close()

	var res []spatial.Transform
	for rows.Next() {
		var tr spatial.Transform
		err = rows.Scan(
			&tr.TransformID,
			&tr.Name,
			&tr.Description,
			&tr.Transform,
			&tr.RecordEffectiveDate,
			&tr.RecordEndDate,
		)
		if err != nil {
			return nil, SearchError(err)
		}
		res = append(res, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, SearchError(err)
	}
	return res, nil
}

// RunSpatialTransform executes a stored transform with the submission
// id as its parameter. Each result row carries one feature collection
// in its result_data column; rows with null or empty collections are
// dropped.
func (s *store) RunSpatialTransform(
	ctx context.Context,
	submissionID int,
	transformSQL string,
) ([]*geojson.FeatureCollection, error) {
	rows, err := s.q.Query(ctx, transformSQL, submissionID)
	if err != nil {
		return nil, TransformRunError(submissionID, err)
	}
	defer rows.Close()

	var res []*geojson.FeatureCollection
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, TransformRunError(submissionID, err)
		}
		if len(doc) == 0 {
			continue
		}
		fc, err := geojson.UnmarshalFeatureCollection(doc)
		if err != nil {
			return nil, TransformRunError(submissionID, err)
		}
		if len(fc.Features) == 0 {
			continue
		}
		res = append(res, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, TransformRunError(submissionID, err)
	}
	return res, nil
}

// RunSecurityTransform executes a security transform; each result row
// pairs a component id with its redacted variant.
func (s *store) RunSecurityTransform(
	ctx context.Context,
	submissionID int,
	transformSQL string,
) ([]spatial.SecureRecord, error) {
	rows, err := s.q.Query(ctx, transformSQL, submissionID)
	if err != nil {
		return nil, TransformRunError(submissionID, err)
	}
	defer rows.Close()

	var res []spatial.SecureRecord
	for rows.Next() {
		var (
			id  int
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, TransformRunError(submissionID, err)
		}

		rec := spatial.SecureRecord{SubmissionSpatialComponentID: id}
		if len(doc) > 0 {
			fc, err := geojson.UnmarshalFeatureCollection(doc)
			if err != nil {
				return nil, TransformRunError(submissionID, err)
			}
			rec.SecuredComponent = fc
		}
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, TransformRunError(submissionID, err)
	}
	return res, nil
}
