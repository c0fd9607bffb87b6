package ioingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/occurrence"
)

// Scrape walks the normalized Darwin Core source of a submission and
// rebuilds its occurrence rows: events contribute dates and verbatim
// coordinates (joined on id), taxa contribute vernacular names
// (joined on occurrenceID). The canonical taxon name comes from
// parsing associatedTaxa so keyword search hits scientific names
// regardless of authorship strings.
func (i *ingestor) Scrape(
	ctx context.Context,
	submissionID int,
) (int, error) {
	sub := i.newSubmissionStore(i.q)
	occs := i.newOccurrenceStore(i.q)

	rec, err := sub.GetRecord(ctx, submissionID)
	if err != nil {
		return 0, err
	}
	if rec.DarwinCoreSource == "" {
		return 0, ScrapeError(submissionID,
			fmt.Errorf("submission has no darwin core source"))
	}

	var doc map[string][]map[string]string
	enc := gnfmt.GNjson{}
	err = enc.Decode([]byte(rec.DarwinCoreSource), &doc)
	if err != nil {
		return 0, ScrapeError(submissionID, err)
	}

	events := indexRows(sheet(doc, "event"), "id")
	taxa := indexRows(sheet(doc, "taxon"), "occurrenceID")

	if err := occs.DeleteBySubmissionID(ctx, submissionID); err != nil {
		return 0, err
	}

	var count int
	for _, row := range sheet(doc, "occurrence") {
		// Archives in the wild carry mangled encodings in free-text
		// columns.
		scraped := occurrence.Scraped{
			AssociatedTaxa:       gnlib.FixUtf8(row["associatedTaxa"]),
			LifeStage:            row["lifeStage"],
			Sex:                  row["sex"],
			IndividualCount:      row["individualCount"],
			OrganismQuantity:     row["organismQuantity"],
			OrganismQuantityType: row["organismQuantityType"],
		}
		if scraped.AssociatedTaxa != "" && i.parser != nil {
			scraped.TaxonCanonical = i.parser.Canonical(scraped.AssociatedTaxa)
		}

		if evn, ok := events[row["id"]]; ok {
			scraped.EventDate = evn["eventDate"]
			scraped.VerbatimCoordinates = evn["verbatimCoordinates"]
		}
		if taxn, ok := taxa[row["occurrenceID"]]; ok {
			scraped.VernacularName = gnlib.FixUtf8(taxn["vernacularName"])
		}

		if _, err := occs.InsertScraped(ctx, submissionID, scraped); err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

// sheet returns a worksheet's rows by case-insensitive name.
func sheet(
	doc map[string][]map[string]string,
	name string,
) []map[string]string {
	for k, rows := range doc {
		if strings.EqualFold(k, name) {
			return rows
		}
	}
	return nil
}

// indexRows keys rows by one of their columns; rows with an empty key
// are dropped.
func indexRows(
	rows []map[string]string,
	key string,
) map[string]map[string]string {
	res := make(map[string]map[string]string)
	for _, row := range rows {
		k := row[key]
		if k == "" {
			continue
		}
		res[k] = row
	}
	return res
}
