package ioschema

import (
	"context"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// dwcOccurrencesTransform extracts occurrence point features from the
// normalized Darwin Core source. Verbatim coordinates are UTM
// "zone easting northing" triples; the zone offsets into the EPSG
// 326xx series before reprojecting to 4326.
const dwcOccurrencesTransform = `with submission as (select * from submission where submission_id = $1)
, occurrences as (select uuid, occs from submission, jsonb_path_query(darwin_core_source, '$.occurrence') occs)
, occurrence as (select uuid, jsonb_array_elements(occs) occ from occurrences)
, events as (select evns from submission, jsonb_path_query(darwin_core_source, '$.event') evns)
, event as (select jsonb_array_elements(evns) evn from events)
, event_coord as (select st_x(pt) x, st_y(pt) y, evn from event, ST_Transform(ST_SetSRID(ST_MakePoint(split_part(evn->>'verbatimCoordinates', ' ', 2)::integer, split_part(evn->>'verbatimCoordinates', ' ', 3)::integer), split_part(evn->>'verbatimCoordinates', ' ', 1)::integer+32600), 4326) pt)
, taxons as (select taxns from submission, jsonb_path_query(darwin_core_source, '$.taxon') taxns)
, taxon as (select jsonb_array_elements(taxns) taxn from taxons)
, normal as (select distinct o.uuid, o.occ, e.*, t.taxn from occurrence o
	left join event_coord e on (e.evn->'id' = o.occ->'id')
	left outer join taxon t on (t.taxn->'occurrenceID' = o.occ->'occurrenceID'))
select jsonb_build_object('type', 'FeatureCollection'
	, 'features', jsonb_build_array(jsonb_build_object('type', 'Feature'
		, 'geometry', jsonb_build_object('type', 'Point', 'coordinates', json_build_array(n.x, n.y))
		, 'properties', jsonb_build_object('type', 'Occurrence', 'dwc', jsonb_build_object('type', 'PhysicalObject'
			, 'basisOfRecord', 'Occurrence'
			, 'datasetID', n.uuid
			, 'occurrenceID', n.occ->'occurrenceID'
			, 'sex', n.occ->'sex'
			, 'lifeStage', n.occ->'lifeStage'
			, 'associatedTaxa', n.occ->'associatedTaxa'
			, 'individualCount', n.occ->'individualCount'
			, 'eventDate', n.evn->'eventDate'
			, 'verbatimSRS', n.evn->'verbatimSRS'
			, 'verbatimCoordinates', n.evn->'verbatimCoordinates'
			, 'vernacularName', n.taxn->'vernacularName'))))
) result_data from normal n`

// emlBoundariesTransform extracts study area polygons from the EML
// JSON source's geographicCoverage elements.
const emlBoundariesTransform = `with submissions as (select eml_json_source from submission where submission_id = $1)
, coverages as (select c.cov_n, c.coverage from submissions, jsonb_path_query(eml_json_source, '$.**.geographicCoverage') with ordinality c(coverage, cov_n))
, descriptions as (select cov_n, coverage->'geographicDescription' description from coverages)
, polys as (select c.cov_n, p.poly_n, p.points points from coverages c, jsonb_path_query(coverage, '$.**.datasetGPolygon[*].datasetGPolygonOuterGRing.gRingPoint') with ordinality p(points, poly_n))
, latlongs as (select p.cov_n, p.poly_n, arr.point_n, arr.point->>'gRingLatitude' lat, arr.point->>'gRingLongitude' long from polys p, jsonb_array_elements(points) with ordinality arr(point, point_n))
, points as (select ll.cov_n, ll.poly_n, ll.point_n, json_build_array(ll.long::float, ll.lat::float) point from latlongs ll)
, polys2 as (select cov_n, poly_n, jsonb_agg(point order by point_n) poly from points group by cov_n, poly_n)
, multipoly as (select cov_n, jsonb_agg(poly) mpoly from polys2 group by cov_n)
, features as (select json_build_object('type','Feature','geometry', json_build_object('type','Polygon','coordinates', f.mpoly), 'properties', json_build_object('description', f.description)) feature from (select d.description, m.mpoly from multipoly m, descriptions d where d.cov_n = m.cov_n) f)
select json_build_object('type','FeatureCollection','features',jsonb_agg(feature)) result_data from features`

// defaultMetadataTransform ships the whole EML JSON document to the
// search index; source systems with richer needs replace it with
// their own projection.
const defaultMetadataTransform = `select eml_json_source::text result_data from submission where submission_id = $1`

// seed populates the vocabulary tables, the stock transforms and the
// default source transform. Every statement is idempotent so seed can
// run on both create and migrate.
func (m *manager) seed(ctx context.Context, cfg *config.Config) error {
	pool := m.operator.Pool()

	qStatus := `
INSERT INTO submission_status_type (name, record_effective_date)
VALUES ($1, now())
ON CONFLICT (name) DO NOTHING`
	for _, st := range submission.AllStatusTypes() {
		if _, err := pool.Exec(ctx, qStatus, st.String()); err != nil {
			return SeedError("submission_status_type", err)
		}
	}

	qMessage := `
INSERT INTO submission_message_type (name, record_effective_date)
VALUES ($1, now())
ON CONFLICT (name) DO NOTHING`
	for _, mt := range submission.AllMessageTypes() {
		if _, err := pool.Exec(ctx, qMessage, mt.String()); err != nil {
			return SeedError("submission_message_type", err)
		}
	}

	qSpatial := `
INSERT INTO spatial_transform (name, description, transform, record_effective_date)
VALUES ($1, $2, $3, now())
ON CONFLICT (name) DO NOTHING`
	stock := []struct {
		name, description, transform string
	}{
		{
			"DwC Occurrences",
			"Extracts occurrences and properties from DwC JSON source.",
			dwcOccurrencesTransform,
		},
		{
			"EML Study Boundaries",
			"Extracts study boundaries and properties from EML JSON source.",
			emlBoundariesTransform,
		},
	}
	for _, tr := range stock {
		_, err := pool.Exec(ctx, qSpatial, tr.name, tr.description, tr.transform)
		if err != nil {
			return SeedError("spatial_transform", err)
		}
	}

	qSource := `
INSERT INTO source_transform
  (system_user_id, version, metadata_transform, metadata_index,
   record_effective_date)
SELECT $1, 1, $2, $3, now()
WHERE NOT EXISTS (
  SELECT 1 FROM source_transform
  WHERE system_user_id = $1 AND record_end_date IS NULL
)`
	_, err := pool.Exec(ctx, qSource,
		cfg.SystemUserID, defaultMetadataTransform, cfg.Search.Index)
	if err != nil {
		return SeedError("source_transform", err)
	}

	return nil
}
