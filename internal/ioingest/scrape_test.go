package ioingest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

const normalizedDoc = `{
  "occurrence": [
    {"id": "occ-1", "occurrenceID": "o1", "associatedTaxa": "Alces alces",
     "sex": "male", "lifeStage": "adult", "individualCount": "2"},
    {"id": "occ-2", "occurrenceID": "o2", "associatedTaxa": "Rangifer tarandus",
     "sex": "female", "lifeStage": "juvenile", "individualCount": "1"}
  ],
  "event": [
    {"id": "occ-1", "eventDate": "2023-06-15",
     "verbatimCoordinates": "9N 573674 6114170"}
  ],
  "taxon": [
    {"occurrenceID": "o1", "vernacularName": "Moose"}
  ]
}`

func scrapeIngestor(
	sub *mockSubmissionStore,
	occs *mockOccurrenceStore,
) *ingestor {
	ing := testIngestor(sub, &mockSpatialStore{}, occs,
		&mockBlobStore{}, &mockSearchIndex{})
	sub.record = &submission.Record{
		SubmissionID:        8,
		SourceTransformID:   5,
		UUID:                datasetUUID,
		RecordEffectiveDate: time.Now(),
		DarwinCoreSource:    normalizedDoc,
	}
	return ing
}

func TestScrapeJoinsWorksheets(t *testing.T) {
	sub := newMockSubmissionStore()
	occs := &mockOccurrenceStore{}
	ing := scrapeIngestor(sub, occs)

	count, err := ing.Scrape(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// prior rows are removed before the new ones land
	assert.Equal(t, []int{8}, occs.deleted)
	require.Len(t, occs.inserted, 2)

	first := occs.inserted[0]
	assert.Equal(t, "Alces alces", first.AssociatedTaxa)
	assert.Equal(t, "male", first.Sex)
	assert.Equal(t, "2023-06-15", first.EventDate)
	assert.Equal(t, "9N 573674 6114170", first.VerbatimCoordinates)
	assert.Equal(t, "Moose", first.VernacularName)

	// second occurrence has no event or taxon row to join
	second := occs.inserted[1]
	assert.Equal(t, "Rangifer tarandus", second.AssociatedTaxa)
	assert.Empty(t, second.EventDate)
	assert.Empty(t, second.VernacularName)
}

func TestScrapeEmptySource(t *testing.T) {
	sub := newMockSubmissionStore()
	occs := &mockOccurrenceStore{}
	ing := scrapeIngestor(sub, occs)
	sub.record.DarwinCoreSource = ""

	_, err := ing.Scrape(context.Background(), 8)
	require.Error(t, err)
	assert.Empty(t, occs.deleted)
}

func TestSheetCaseInsensitive(t *testing.T) {
	doc := map[string][]map[string]string{
		"Occurrence": {{"id": "a"}},
	}
	assert.Len(t, sheet(doc, "occurrence"), 1)
	assert.Nil(t, sheet(doc, "event"))
}

func TestIndexRows(t *testing.T) {
	rows := []map[string]string{
		{"id": "a", "v": "1"},
		{"id": "", "v": "2"},
		{"v": "3"},
	}
	res := indexRows(rows, "id")
	require.Len(t, res, 1)
	assert.Equal(t, "1", res["a"]["v"])
}
