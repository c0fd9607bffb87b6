package submission

import (
	"github.com/paulmach/orb/geojson"
)

// SearchCriteria selects submissions by keyword and/or boundary.
// Both filters are optional; when both are present they combine with
// AND. The keyword matches case-insensitive substrings across the
// occurrence taxon, life stage, sex, vernacular name and individual
// count fields.
type SearchCriteria struct {
	Keyword string

	// Boundary restricts results to submissions whose occurrence
	// geography intersects the feature's geometry.
	Boundary *geojson.Feature
}

// IsEmpty reports whether no filter is set.
func (c SearchCriteria) IsEmpty() bool {
	return c.Keyword == "" && c.Boundary == nil
}
