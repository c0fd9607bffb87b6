// Package iospatial implements the spatial component store over pgx:
// component persistence, the named spatial and security transforms,
// and the secured search path.
package iospatial

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
)

type store struct {
	q biohub.Querier
}

// NewStore creates a spatial store bound to a query surface.
func NewStore(q biohub.Querier) biohub.SpatialStore {
	return &store{q: q}
}

// collectionGeometryJSON flattens a feature collection's geometries
// into one GeoJSON GeometryCollection string for the indexed geometry
// column. Returns empty when the collection carries no geometries.
func collectionGeometryJSON(fc *geojson.FeatureCollection) (string, error) {
	var coll orb.Collection
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		coll = append(coll, f.Geometry)
	}
	if len(coll) == 0 {
		return "", nil
	}

	data, err := geojson.NewGeometry(coll).MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
