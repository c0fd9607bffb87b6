// Package occurrence provides domain types for Darwin Core occurrence
// records scraped from normalized submissions. Occurrence rows back the
// keyword side of submission search.
package occurrence

import (
	"github.com/paulmach/orb/geojson"
)

// Scraped is one occurrence row assembled from the occurrence and
// event worksheets of a normalized submission. String fields keep the
// verbatim worksheet values; empty means absent.
type Scraped struct {
	AssociatedTaxa string

	// TaxonCanonical is the canonical form of AssociatedTaxa derived by
	// gnparser, empty when the name does not parse.
	TaxonCanonical string

	LifeStage            string
	Sex                  string
	IndividualCount      string
	VernacularName       string
	OrganismQuantity     string
	OrganismQuantityType string
	EventDate            string

	// VerbatimCoordinates is either a UTM triple or a lat/long pair;
	// the store derives the geography column from it.
	VerbatimCoordinates string
}

// Record is a stored occurrence row.
type Record struct {
	OccurrenceID    int
	SubmissionID    int
	TaxonID         string
	TaxonCanonical  string
	LifeStage       string
	Sex             string
	EventDate       string
	VernacularName  string
	IndividualCount string
	Geometry        *geojson.Feature
}
