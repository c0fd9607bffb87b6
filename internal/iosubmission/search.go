package iosubmission

import (
	"context"

	"github.com/paulmach/orb/geojson"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// buildCriteriaQuery translates search criteria into SQL. Pure
// function, kept separate from execution so the translation is
// testable without a database.
func buildCriteriaQuery(
	c submission.SearchCriteria,
) (string, []any, error) {
	q := `
SELECT submission.submission_id
FROM submission
LEFT JOIN occurrence
  ON submission.submission_id = occurrence.submission_id`

	var (
		where []string
		args  []any
	)

	if c.Keyword != "" {
		args = append(args, "%"+c.Keyword+"%")
		where = append(where, `(
  occurrence.taxonid ILIKE $1
  OR occurrence.taxon_canonical ILIKE $1
  OR occurrence.lifestage ILIKE $1
  OR occurrence.sex ILIKE $1
  OR occurrence.vernacularname ILIKE $1
  OR occurrence.individualcount ILIKE $1
)`)
	}

	if c.Boundary != nil {
		geom, err := geometryJSON(c.Boundary)
		if err != nil {
			return "", nil, SearchError(err)
		}
		args = append(args, geom)
		cond := `ST_Intersects(
  occurrence.geography,
  ST_Force2D(ST_SetSRID(ST_GeomFromGeoJSON($2), 4326))
)`
		if len(args) == 1 {
			cond = `ST_Intersects(
  occurrence.geography,
  ST_Force2D(ST_SetSRID(ST_GeomFromGeoJSON($1), 4326))
)`
		}
		where = append(where, cond)
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

	q += `
GROUP BY submission.submission_id`

	return q, args, nil
}

// FindByCriteria returns submission ids matching the keyword and/or
// boundary filters.
func (s *store) FindByCriteria(
	ctx context.Context,
	criteria submission.SearchCriteria,
) ([]int, error) {
	q, args, err := buildCriteriaQuery(criteria)
	if err != nil {
		return nil, err
	}

	rows, err := s.q.Query(ctx, q, args...)
	if err != nil {
		return nil, SearchError(err)
	}
	defer rows.Close()

	var res []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, SearchError(err)
		}
		res = append(res, id)
	}
	if err := rows.Err(); err != nil {
		return nil, SearchError(err)
	}
	return res, nil
}

// geometryJSON extracts the feature's geometry as a GeoJSON string
// suitable for ST_GeomFromGeoJSON.
func geometryJSON(f *geojson.Feature) (string, error) {
	data, err := geojson.NewGeometry(f.Geometry).MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
