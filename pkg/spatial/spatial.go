// Package spatial provides domain types for submission spatial
// components: GeoJSON feature collections derived from a submission by
// named transforms, with optional redacted variants produced by
// security transforms.
package spatial

import (
	"time"

	"github.com/paulmach/orb/geojson"
)

// Component is one spatial feature collection belonging to a
// submission. SecuredComponent is nil until a security transform
// produced a redacted variant; consumers lacking the transform's
// exception fall back to the secured variant when it exists, and to
// the unsecured one when it does not.
type Component struct {
	SubmissionSpatialComponentID int
	SubmissionID                 int
	Component                    *geojson.FeatureCollection
	SecuredComponent             *geojson.FeatureCollection
}

// Transform is a named SQL expression that, given a submission id,
// produces GeoJSON feature collections. Read-only at pipeline time.
type Transform struct {
	TransformID         int
	Name                string
	Description         string
	Transform           string
	RecordEffectiveDate time.Time
	RecordEndDate       *time.Time
}

// SecureRecord is one security-transform result row: the component the
// transform applies to and the redacted variant it produced.
type SecureRecord struct {
	SubmissionSpatialComponentID int
	SecuredComponent             *geojson.FeatureCollection
}

// SearchCriteria selects spatial components. Boundary is required;
// Type and DatasetID narrow the result when non-empty.
type SearchCriteria struct {
	// Boundary restricts results to components whose geometry
	// intersects the feature's geometry.
	Boundary *geojson.Feature

	// Type filters on the feature `properties.type` value
	// (e.g. "Occurrence", "Boundary").
	Type []string

	// DatasetID filters on the owning dataset UUID.
	DatasetID []string
}
