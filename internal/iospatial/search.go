package iospatial

import (
	"context"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/spatial"
)

// searchBase resolves which variant of each component the querying
// user may see. Mirrors the rules of the dataset counting query: the
// unsecured component when the user is exempted from every transform
// that touched it, otherwise the secured variant with a fallback to
// the unsecured one.
const searchBase = `
WITH with_user_security_transform_exceptions AS (
  SELECT array_agg(suse.security_transform_id)
    AS user_security_transform_exceptions
  FROM system_user_security_exception suse
  WHERE suse.system_user_id = $1
),
components AS (
  SELECT
    ssc.submission_spatial_component_id,
    array_remove(array_agg(sts.security_transform_id), null)
      AS component_security_transforms,
    ssc.spatial_component,
    ssc.secured_spatial_component,
    ssc.geometry,
    ssc.secured_geometry,
    s.uuid
  FROM submission_spatial_component ssc
  JOIN submission s
    ON ssc.submission_id = s.submission_id
  LEFT JOIN security_transform_submission sts
    ON sts.submission_spatial_component_id =
       ssc.submission_spatial_component_id
  WHERE s.record_end_date IS NULL
  GROUP BY ssc.submission_spatial_component_id, s.uuid
),
visible AS (
  SELECT
    c.submission_spatial_component_id,
    c.uuid,
    CASE
      WHEN wuste.user_security_transform_exceptions @>
           c.component_security_transforms
      THEN c.spatial_component
      ELSE coalesce(c.secured_spatial_component, c.spatial_component)
    END AS spatial_data,
    CASE
      WHEN wuste.user_security_transform_exceptions @>
           c.component_security_transforms
      THEN c.geometry
      ELSE coalesce(c.secured_geometry, c.geometry)
    END AS geom
  FROM components c,
       with_user_security_transform_exceptions wuste
)
SELECT spatial_data::text
FROM visible`

// buildSearchQuery appends the criteria filters to the security CTE.
// Pure function, kept separate from execution for testing.
func buildSearchQuery(
	c spatial.SearchCriteria,
	systemUserID int,
) (string, []any, error) {
	q := searchBase
	args := []any{systemUserID}

	var where []string

	if len(c.Type) > 0 {
		args = append(args, c.Type)
		where = append(where, fmt.Sprintf(`EXISTS (
  SELECT 1
  FROM jsonb_array_elements(spatial_data -> 'features') f
  WHERE f #>> '{properties, type}' = ANY($%d)
)`, len(args)))
	}

	if len(c.DatasetID) > 0 {
		args = append(args, c.DatasetID)
		where = append(where,
			fmt.Sprintf(`uuid = ANY($%d::uuid[])`, len(args)))
	}

	if c.Boundary != nil {
		geom, err := geojson.NewGeometry(c.Boundary.Geometry).MarshalJSON()
		if err != nil {
			return "", nil, SearchError(err)
		}
		args = append(args, string(geom))
		where = append(where, fmt.Sprintf(`ST_Intersects(
  geom,
  ST_Force2D(ST_SetSRID(ST_GeomFromGeoJSON($%d), 4326))
)`, len(args)))
	}

	for i, cond := range where {
		if i == 0 {
			q += `
WHERE ` + cond
		} else {
			q += `
AND ` + cond
		}
	}

	return q, args, nil
}

// FindByCriteria returns the visible spatial data of components
// matching the criteria.
func (s *store) FindByCriteria(
	ctx context.Context,
	criteria spatial.SearchCriteria,
	systemUserID int,
) ([]*geojson.FeatureCollection, error) {
	q, args, err := buildSearchQuery(criteria, systemUserID)
	if err != nil {
		return nil, err
	}

	rows, err := s.q.Query(ctx, q, args...)
	if err != nil {
		return nil, SearchError(err)
	}
	defer rows.Close()

	var res []*geojson.FeatureCollection
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, SearchError(err)
		}
		if len(doc) == 0 {
			continue
		}
		fc, err := geojson.UnmarshalFeatureCollection(doc)
		if err != nil {
			return nil, SearchError(err)
		}
		res = append(res, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, SearchError(err)
	}
	return res, nil
}
