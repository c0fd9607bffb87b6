package iosubmission

import (
	"context"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// SpatialComponentCountsAsAdmin groups feature counts of the live
// submission by properties.type, without security filtering.
func (s *store) SpatialComponentCountsAsAdmin(
	ctx context.Context,
	datasetID string,
) ([]submission.SpatialComponentCount, error) {
	q := `
SELECT
  features_array #>> '{properties, type}' spatial_type,
  count(features_array #> '{properties, type}')::integer count
FROM
  submission_spatial_component ssc,
  jsonb_array_elements(ssc.spatial_component -> 'features') features_array,
  submission s
WHERE s.uuid = $1
AND ssc.submission_id = s.submission_id
AND s.record_end_date IS NULL
GROUP BY spatial_type`

	return s.scanCounts(ctx, datasetID, q, datasetID)
}

// SpatialComponentCounts applies the security-exception rules for the
// given system user before counting.
//
// A component's secured variant replaces it unless the user is
// exempted from every security transform that touched the component;
// components with no secured variant fall back to the unsecured data.
func (s *store) SpatialComponentCounts(
	ctx context.Context,
	datasetID string,
	systemUserID int,
) ([]submission.SpatialComponentCount, error) {
	q := `
WITH with_user_security_transform_exceptions AS (
  SELECT array_agg(suse.security_transform_id)
    AS user_security_transform_exceptions
  FROM system_user_security_exception suse
  WHERE suse.system_user_id = $2
),
with_filtered_spatial_component_with_security_transforms AS (
  SELECT
    array_remove(array_agg(sts.security_transform_id), null)
      AS spatial_component_security_transforms,
    ssc.spatial_component,
    ssc.secured_spatial_component
  FROM
    submission_spatial_component ssc,
    security_transform_submission sts,
    submission s
  WHERE sts.submission_spatial_component_id = ssc.submission_spatial_component_id
  AND ssc.submission_id = s.submission_id
  AND s.record_end_date IS NULL
  AND s.uuid = $1
  GROUP BY ssc.spatial_component, ssc.secured_spatial_component
),
combined_spatial_components AS (
  SELECT
    CASE
      WHEN wuste.user_security_transform_exceptions @>
           wfscwst.spatial_component_security_transforms
      THEN wfscwst.spatial_component
      ELSE coalesce(
        wfscwst.secured_spatial_component, wfscwst.spatial_component)
    END AS spatial_data
  FROM with_filtered_spatial_component_with_security_transforms wfscwst,
       with_user_security_transform_exceptions wuste
),
results AS (
  SELECT
    features_array #>> '{properties, type}' spatial_type,
    count(features_array #> '{properties, type}')::integer count
  FROM
    combined_spatial_components csc,
    jsonb_array_elements(csc.spatial_data -> 'features') features_array
  GROUP BY spatial_type
)
SELECT * FROM results`

	return s.scanCounts(ctx, datasetID, q, datasetID, systemUserID)
}

func (s *store) scanCounts(
	ctx context.Context,
	datasetID string,
	q string,
	args ...any,
) ([]submission.SpatialComponentCount, error) {
	rows, err := s.q.Query(ctx, q, args...)
	if err != nil {
		return nil, CountError(datasetID, err)
	}
	defer rows.Close()

	var res []submission.SpatialComponentCount
	for rows.Next() {
		var c submission.SpatialComponentCount
		if err := rows.Scan(&c.SpatialType, &c.Count); err != nil {
			return nil, CountError(datasetID, err)
		}
		res = append(res, c)
	}
	if err := rows.Err(); err != nil {
		return nil, CountError(datasetID, err)
	}
	return res, nil
}
