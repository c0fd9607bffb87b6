// Package iooccurrence implements the occurrence store over pgx.
// Rows come from the scrape step that walks the normalized Darwin
// Core source; the geography column is derived from the verbatim
// coordinates at insert time.
package iooccurrence

import (
	"context"
	"fmt"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/coords"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/occurrence"
)

type store struct {
	q biohub.Querier
}

// NewStore creates an occurrence store bound to a query surface.
func NewStore(q biohub.Querier) biohub.OccurrenceStore {
	return &store{q: q}
}

// InsertScraped stores one occurrence row. Verbatim coordinates are
// parsed as UTM first, then as lat/long; rows with unparseable
// coordinates get a null geography and stay searchable by keyword.
func (s *store) InsertScraped(
	ctx context.Context,
	submissionID int,
	occ occurrence.Scraped,
) (int, error) {
	qBase := `
INSERT INTO occurrence (
  submission_id,
  taxonid,
  taxon_canonical,
  lifestage,
  sex,
  vernacularname,
  eventdate,
  individualcount,
  organismquantity,
  organismquantitytype,
  geography
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, %s)
RETURNING occurrence_id`

	args := []any{
		submissionID,
		occ.AssociatedTaxa,
		occ.TaxonCanonical,
		occ.LifeStage,
		occ.Sex,
		occ.VernacularName,
		occ.EventDate,
		occ.IndividualCount,
		occ.OrganismQuantity,
		occ.OrganismQuantityType,
	}

	geographySQL := "null"
	if utm := coords.ParseUTM(occ.VerbatimCoordinates); utm != nil {
		geographySQL = `
ST_Transform(ST_SetSRID(ST_MakePoint($11, $12), $13), 4326)`
		args = append(args, utm.Easting, utm.Northing, utm.SRID())
	} else if ll := coords.ParseLatLong(occ.VerbatimCoordinates); ll != nil {
		pt := ll.Point()
		geographySQL = `
ST_SetSRID(ST_MakePoint($11, $12), 4326)`
		args = append(args, pt.Lon(), pt.Lat())
	}

	q := fmt.Sprintf(qBase, geographySQL)

	var id int
	if err := s.q.QueryRow(ctx, q, args...).Scan(&id); err != nil {
		return 0, InsertError(submissionID, err)
	}
	return id, nil
}

// DeleteBySubmissionID removes the submission's occurrence rows. The
// scrape step runs it first so a re-scrape never duplicates rows.
func (s *store) DeleteBySubmissionID(
	ctx context.Context,
	submissionID int,
) error {
	q := `
DELETE FROM occurrence
WHERE submission_id = $1`

	if _, err := s.q.Exec(ctx, q, submissionID); err != nil {
		return DeleteError(submissionID, err)
	}
	return nil
}
