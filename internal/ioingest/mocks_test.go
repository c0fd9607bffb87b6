package ioingest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paulmach/orb/geojson"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/occurrence"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/spatial"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// statusEntry records one audit append for assertions.
type statusEntry struct {
	submissionID int
	status       submission.StatusType
	messageType  submission.MessageType
	message      string
	withMessage  bool
}

type mockSubmissionStore struct {
	liveID          int
	sourceTransform *submission.SourceTransform
	record          *submission.Record
	metadataJSON    string
	emlJSON         string
	emlJSONOK       bool
	counts          []submission.SpatialComponentCount

	insertErr   error
	metadataErr error
	auditErr    error

	statuses  []statusEntry
	endDated  []int
	updates   map[string]string
	insertRec *submission.InsertRecord
}

func newMockSubmissionStore() *mockSubmissionStore {
	return &mockSubmissionStore{
		sourceTransform: &submission.SourceTransform{
			SourceTransformID: 5,
			SystemUserID:      1,
			Version:           1,
			MetadataTransform: "select 1",
			MetadataIndex:     "eml",
		},
		metadataJSON: `{"title":"t"}`,
		updates:      make(map[string]string),
	}
}

func (m *mockSubmissionStore) InsertRecord(
	_ context.Context, rec submission.InsertRecord,
) (int, error) {
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.insertRec = &rec
	return 42, nil
}

func (m *mockSubmissionStore) UpdateInputKey(
	_ context.Context, _ int, v string,
) error {
	m.updates["input_key"] = v
	return nil
}

func (m *mockSubmissionStore) UpdateEMLSource(
	_ context.Context, _ int, v string,
) error {
	m.updates["eml_source"] = v
	return nil
}

func (m *mockSubmissionStore) UpdateEMLJSONSource(
	_ context.Context, _ int, v string,
) error {
	m.updates["eml_json_source"] = v
	return nil
}

func (m *mockSubmissionStore) UpdateDWCSource(
	_ context.Context, _ int, v string,
) error {
	m.updates["darwin_core_source"] = v
	return nil
}

func (m *mockSubmissionStore) GetRecord(
	_ context.Context, id int,
) (*submission.Record, error) {
	if m.record != nil {
		return m.record, nil
	}
	return &submission.Record{
		SubmissionID:        id,
		SourceTransformID:   m.sourceTransform.SourceTransformID,
		UUID:                "uuid",
		RecordEffectiveDate: time.Now(),
	}, nil
}

func (m *mockSubmissionStore) GetIDByUUID(
	_ context.Context, _ string,
) (int, error) {
	return m.liveID, nil
}

func (m *mockSubmissionStore) SetEndDate(_ context.Context, id int) error {
	m.endDated = append(m.endDated, id)
	return nil
}

func (m *mockSubmissionStore) InsertStatus(
	_ context.Context, id int, st submission.StatusType,
) (int, error) {
	m.statuses = append(m.statuses, statusEntry{submissionID: id, status: st})
	return len(m.statuses), nil
}

func (m *mockSubmissionStore) InsertMessage(
	_ context.Context, _ int, _ submission.MessageType, _ string,
) (int, error) {
	return 1, nil
}

func (m *mockSubmissionStore) InsertStatusAndMessage(
	_ context.Context, id int, st submission.StatusType,
	mt submission.MessageType, msg string,
) (int, int, error) {
	if m.auditErr != nil {
		return 0, 0, m.auditErr
	}
	m.statuses = append(m.statuses, statusEntry{
		submissionID: id,
		status:       st,
		messageType:  mt,
		message:      msg,
		withMessage:  true,
	})
	return len(m.statuses), 1, nil
}

func (m *mockSubmissionStore) SourceTransformBySystemUserID(
	_ context.Context, _, _ int,
) (*submission.SourceTransform, error) {
	return m.sourceTransform, nil
}

func (m *mockSubmissionStore) SourceTransformByID(
	_ context.Context, _ int,
) (*submission.SourceTransform, error) {
	return m.sourceTransform, nil
}

func (m *mockSubmissionStore) MetadataJSON(
	_ context.Context, _ int, _ string,
) (string, error) {
	if m.metadataErr != nil {
		return "", m.metadataErr
	}
	return m.metadataJSON, nil
}

func (m *mockSubmissionStore) EMLJSONByDatasetID(
	_ context.Context, _ string,
) (string, bool, error) {
	return m.emlJSON, m.emlJSONOK, nil
}

func (m *mockSubmissionStore) FindByCriteria(
	_ context.Context, _ submission.SearchCriteria,
) ([]int, error) {
	return []int{1}, nil
}

func (m *mockSubmissionStore) SpatialComponentCountsAsAdmin(
	_ context.Context, _ string,
) ([]submission.SpatialComponentCount, error) {
	return m.counts, nil
}

func (m *mockSubmissionStore) SpatialComponentCounts(
	_ context.Context, _ string, _ int,
) ([]submission.SpatialComponentCount, error) {
	return m.counts, nil
}

func (m *mockSubmissionStore) ListRecords(
	_ context.Context,
) ([]submission.RecordWithStatus, error) {
	return nil, nil
}

type mockSpatialStore struct {
	transforms    []spatial.Transform
	secTransforms []spatial.Transform
	runResults    []*geojson.FeatureCollection
	secResults    []spatial.SecureRecord

	deletes      []string
	components   []int
	spatialRefs  [][2]int
	securityRefs [][2]int
	secured      []int
	nextCompID   int
}

func (m *mockSpatialStore) InsertComponent(
	_ context.Context, _ int, _ *geojson.FeatureCollection,
) (int, error) {
	m.nextCompID++
	m.components = append(m.components, m.nextCompID)
	return m.nextCompID, nil
}

func (m *mockSpatialStore) InsertSpatialTransformRef(
	_ context.Context, transformID, componentID int,
) (int, error) {
	m.spatialRefs = append(m.spatialRefs, [2]int{transformID, componentID})
	return 1, nil
}

func (m *mockSpatialStore) InsertSecurityTransformRef(
	_ context.Context, transformID, componentID int,
) (int, error) {
	m.securityRefs = append(m.securityRefs, [2]int{transformID, componentID})
	return 1, nil
}

func (m *mockSpatialStore) SpatialTransforms(
	_ context.Context,
) ([]spatial.Transform, error) {
	return m.transforms, nil
}

func (m *mockSpatialStore) SecurityTransforms(
	_ context.Context,
) ([]spatial.Transform, error) {
	return m.secTransforms, nil
}

func (m *mockSpatialStore) RunSpatialTransform(
	_ context.Context, _ int, _ string,
) ([]*geojson.FeatureCollection, error) {
	return m.runResults, nil
}

func (m *mockSpatialStore) RunSecurityTransform(
	_ context.Context, _ int, _ string,
) ([]spatial.SecureRecord, error) {
	return m.secResults, nil
}

func (m *mockSpatialStore) UpdateComponentWithSecurity(
	_ context.Context, componentID int, _ *geojson.FeatureCollection,
) error {
	m.secured = append(m.secured, componentID)
	return nil
}

func (m *mockSpatialStore) DeleteComponentsBySubmissionID(
	_ context.Context, _ int,
) ([]int, error) {
	m.deletes = append(m.deletes, "components")
	return nil, nil
}

func (m *mockSpatialStore) DeleteSpatialTransformRefsBySubmissionID(
	_ context.Context, _ int,
) ([]int, error) {
	m.deletes = append(m.deletes, "spatial_refs")
	return nil, nil
}

func (m *mockSpatialStore) DeleteSecurityTransformRefsBySubmissionID(
	_ context.Context, _ int,
) ([]int, error) {
	m.deletes = append(m.deletes, "security_refs")
	return nil, nil
}

func (m *mockSpatialStore) FindByCriteria(
	_ context.Context, _ spatial.SearchCriteria, _ int,
) ([]*geojson.FeatureCollection, error) {
	return m.runResults, nil
}

type mockOccurrenceStore struct {
	inserted []occurrence.Scraped
	deleted  []int
}

func (m *mockOccurrenceStore) InsertScraped(
	_ context.Context, _ int, occ occurrence.Scraped,
) (int, error) {
	m.inserted = append(m.inserted, occ)
	return len(m.inserted), nil
}

func (m *mockOccurrenceStore) DeleteBySubmissionID(
	_ context.Context, id int,
) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockBlobStore struct {
	putErr error
	keys   []string
	data   map[string][]byte
}

func (m *mockBlobStore) Put(
	_ context.Context, key string, data []byte, _ map[string]string,
) error {
	if m.putErr != nil {
		return m.putErr
	}
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.keys = append(m.keys, key)
	m.data[key] = data
	return nil
}

func (m *mockBlobStore) Get(
	_ context.Context, key string,
) ([]byte, error) {
	return m.data[key], nil
}

type mockSearchIndex struct {
	indexed []struct {
		index, id, document string
	}
}

func (m *mockSearchIndex) Index(
	_ context.Context, index, id, document string,
) error {
	m.indexed = append(m.indexed, struct {
		index, id, document string
	}{index, id, document})
	return nil
}

// noopQuerier satisfies biohub.Querier for wiring; the mocks never
// touch it except for the advisory lock Exec.
type noopQuerier struct{}

func (noopQuerier) Exec(
	_ context.Context, _ string, _ ...any,
) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (noopQuerier) Query(
	_ context.Context, _ string, _ ...any,
) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (noopQuerier) QueryRow(
	_ context.Context, _ string, _ ...any,
) pgx.Row {
	return noopRow{}
}

type noopRow struct{}

func (noopRow) Scan(_ ...any) error { return pgx.ErrNoRows }

// testIngestor wires an ingestor over mocks; withTx just runs the
// callback since the mocks ignore the query surface.
func testIngestor(
	sub *mockSubmissionStore,
	spat *mockSpatialStore,
	occs *mockOccurrenceStore,
	blob *mockBlobStore,
	search *mockSearchIndex,
) *ingestor {
	cfg := config.New()
	return &ingestor{
		cfg:    cfg,
		blob:   blob,
		search: search,

		q: &noopQuerier{},
		withTx: func(ctx context.Context, fn func(biohub.Querier) error) error {
			return fn(&noopQuerier{})
		},

		newSubmissionStore: func(biohub.Querier) biohub.SubmissionStore {
			return sub
		},
		newSpatialStore: func(biohub.Querier) biohub.SpatialStore {
			return spat
		},
		newOccurrenceStore: func(biohub.Querier) biohub.OccurrenceStore {
			return occs
		},
	}
}
