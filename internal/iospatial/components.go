package iospatial

import (
	"context"

	"github.com/paulmach/orb/geojson"
)

// InsertComponent stores a feature collection for a submission. The
// geometry column is derived from the features so boundary searches
// can use the spatial index instead of unpacking JSON.
func (s *store) InsertComponent(
	ctx context.Context,
	submissionID int,
	fc *geojson.FeatureCollection,
) (int, error) {
	doc, err := fc.MarshalJSON()
	if err != nil {
		return 0, InsertError("submission_spatial_component", submissionID, err)
	}

	geom, err := collectionGeometryJSON(fc)
	if err != nil {
		return 0, InsertError("submission_spatial_component", submissionID, err)
	}

	var id int
	if geom == "" {
		q := `
INSERT INTO submission_spatial_component (
  submission_id,
  spatial_component
) VALUES ($1, $2)
RETURNING submission_spatial_component_id`
		err = s.q.QueryRow(ctx, q, submissionID, string(doc)).Scan(&id)
	} else {
		q := `
INSERT INTO submission_spatial_component (
  submission_id,
  spatial_component,
  geometry
) VALUES (
  $1, $2,
  ST_Force2D(ST_SetSRID(ST_GeomFromGeoJSON($3), 4326))
)
RETURNING submission_spatial_component_id`
		err = s.q.QueryRow(ctx, q, submissionID, string(doc), geom).Scan(&id)
	}
	if err != nil {
		return 0, InsertError("submission_spatial_component", submissionID, err)
	}
	return id, nil
}

// InsertSpatialTransformRef links a component to the spatial
// transform that produced it.
func (s *store) InsertSpatialTransformRef(
	ctx context.Context,
	transformID, componentID int,
) (int, error) {
	q := `
INSERT INTO spatial_transform_submission (
  spatial_transform_id,
  submission_spatial_component_id
) VALUES ($1, $2)
RETURNING spatial_transform_submission_id`

	var id int
	err := s.q.QueryRow(ctx, q, transformID, componentID).Scan(&id)
	if err != nil {
		return 0, InsertError("spatial_transform_submission", componentID, err)
	}
	return id, nil
}

// InsertSecurityTransformRef links a component to the security
// transform that secured it.
func (s *store) InsertSecurityTransformRef(
	ctx context.Context,
	transformID, componentID int,
) (int, error) {
	q := `
INSERT INTO security_transform_submission (
  security_transform_id,
  submission_spatial_component_id
) VALUES ($1, $2)
RETURNING security_transform_submission_id`

	var id int
	err := s.q.QueryRow(ctx, q, transformID, componentID).Scan(&id)
	if err != nil {
		return 0, InsertError("security_transform_submission", componentID, err)
	}
	return id, nil
}

// UpdateComponentWithSecurity sets the redacted variant of a
// component, together with its secured geometry column.
func (s *store) UpdateComponentWithSecurity(
	ctx context.Context,
	componentID int,
	secured *geojson.FeatureCollection,
) error {
	doc, err := secured.MarshalJSON()
	if err != nil {
		return SecurityError(componentID, err)
	}

	geom, err := collectionGeometryJSON(secured)
	if err != nil {
		return SecurityError(componentID, err)
	}

	var id int
	if geom == "" {
		q := `
UPDATE submission_spatial_component
SET secured_spatial_component = $1
WHERE submission_spatial_component_id = $2
RETURNING submission_spatial_component_id`
		err = s.q.QueryRow(ctx, q, string(doc), componentID).Scan(&id)
	} else {
		q := `
UPDATE submission_spatial_component
SET
  secured_spatial_component = $1,
  secured_geometry =
    ST_Force2D(ST_SetSRID(ST_GeomFromGeoJSON($2), 4326))
WHERE submission_spatial_component_id = $3
RETURNING submission_spatial_component_id`
		err = s.q.QueryRow(ctx, q, string(doc), geom, componentID).Scan(&id)
	}
	if err != nil {
		return SecurityError(componentID, err)
	}
	return nil
}

// DeleteComponentsBySubmissionID removes the submission's components,
// returning the affected component ids.
func (s *store) DeleteComponentsBySubmissionID(
	ctx context.Context,
	submissionID int,
) ([]int, error) {
	q := `
DELETE FROM submission_spatial_component
WHERE submission_id = $1
RETURNING submission_spatial_component_id`

	return s.deleteReturningIDs(
		ctx, "submission_spatial_component", submissionID, q)
}

// DeleteSpatialTransformRefsBySubmissionID removes the spatial
// transform link rows of the submission's components. Runs before the
// components themselves are deleted.
func (s *store) DeleteSpatialTransformRefsBySubmissionID(
	ctx context.Context,
	submissionID int,
) ([]int, error) {
	q := `
DELETE FROM spatial_transform_submission
WHERE submission_spatial_component_id IN (
  SELECT submission_spatial_component_id
  FROM submission_spatial_component
  WHERE submission_id = $1
)
RETURNING spatial_transform_submission_id`

	return s.deleteReturningIDs(
		ctx, "spatial_transform_submission", submissionID, q)
}

// DeleteSecurityTransformRefsBySubmissionID removes the security
// transform link rows of the submission's components.
func (s *store) DeleteSecurityTransformRefsBySubmissionID(
	ctx context.Context,
	submissionID int,
) ([]int, error) {
	q := `
DELETE FROM security_transform_submission
WHERE submission_spatial_component_id IN (
  SELECT submission_spatial_component_id
  FROM submission_spatial_component
  WHERE submission_id = $1
)
RETURNING security_transform_submission_id`

	return s.deleteReturningIDs(
		ctx, "security_transform_submission", submissionID, q)
}

func (s *store) deleteReturningIDs(
	ctx context.Context,
	table string,
	submissionID int,
	q string,
) ([]int, error) {
	rows, err := s.q.Query(ctx, q, submissionID)
	if err != nil {
		return nil, DeleteError(table, submissionID, err)
	}
	defer rows.Close()

	var res []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, DeleteError(table, submissionID, err)
		}
		res = append(res, id)
	}
	if err := rows.Err(); err != nil {
		return nil, DeleteError(table, submissionID, err)
	}
	return res, nil
}
