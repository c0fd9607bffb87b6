package iosubmission

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

var _ biohub.SubmissionStore = &store{}

func boundary() *geojson.Feature {
	poly := orb.Polygon{
		{{-128, 49}, {-123, 49}, {-123, 54}, {-128, 54}, {-128, 49}},
	}
	return geojson.NewFeature(poly)
}

func TestBuildCriteriaQueryEmpty(t *testing.T) {
	q, args, err := buildCriteriaQuery(submission.SearchCriteria{})
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Contains(t, q, "FROM submission")
	assert.Contains(t, q, "LEFT JOIN occurrence")
	assert.NotContains(t, q, "WHERE")
	assert.Contains(t, q, "GROUP BY submission.submission_id")
}

func TestBuildCriteriaQueryKeyword(t *testing.T) {
	c := submission.SearchCriteria{Keyword: "moose"}
	q, args, err := buildCriteriaQuery(c)
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, "%moose%", args[0])
	assert.Contains(t, q, "occurrence.taxonid ILIKE $1")
	assert.Contains(t, q, "occurrence.taxon_canonical ILIKE $1")
	assert.Contains(t, q, "occurrence.vernacularname ILIKE $1")
	assert.NotContains(t, q, "ST_Intersects")
}

func TestBuildCriteriaQueryBoundary(t *testing.T) {
	c := submission.SearchCriteria{Boundary: boundary()}
	q, args, err := buildCriteriaQuery(c)
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Contains(t, args[0], `"Polygon"`)
	assert.Contains(t, q, "ST_GeomFromGeoJSON($1)")
	assert.NotContains(t, q, "ILIKE")
}

func TestBuildCriteriaQueryBoth(t *testing.T) {
	c := submission.SearchCriteria{Keyword: "moose", Boundary: boundary()}
	q, args, err := buildCriteriaQuery(c)
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, "%moose%", args[0])
	assert.Contains(t, q, "ILIKE $1")
	assert.Contains(t, q, "ST_GeomFromGeoJSON($2)")
	// both filters must combine with AND
	assert.Contains(t, q, "AND ST_Intersects")
}

func TestGeometryJSON(t *testing.T) {
	res, err := geometryJSON(boundary())
	require.NoError(t, err)
	assert.Contains(t, res, `"type":"Polygon"`)
	assert.Contains(t, res, `"coordinates"`)
}

func TestCriteriaIsEmpty(t *testing.T) {
	assert.True(t, submission.SearchCriteria{}.IsEmpty())
	assert.False(t, submission.SearchCriteria{Keyword: "x"}.IsEmpty())
	assert.False(t,
		submission.SearchCriteria{Boundary: boundary()}.IsEmpty())
}
