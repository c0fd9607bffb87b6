package ioingest

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/spatial"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

var _ biohub.Ingestor = &ingestor{}

const datasetUUID = "0cf8169f-b159-4ef9-bd43-93348bdc1e9f"

const emlDoc = `<?xml version="1.0" encoding="UTF-8"?>
<eml:eml packageId="urn:uuid:` + datasetUUID + `">
  <dataset><title>Moose Survey</title></dataset>
</eml:eml>`

func buildArchive(t *testing.T, members map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func testFile(t *testing.T) biohub.RawFile {
	t.Helper()
	data := buildArchive(t, map[string]string{
		"eml.xml": emlDoc,
		"occurrence.txt": "id\tassociatedTaxa\tsex\n" +
			"occ-1\tAlces alces\tmale\n",
		"event.txt": "id\teventDate\tverbatimCoordinates\n" +
			"occ-1\t2023-06-15\t9N 573674 6114170\n",
	})
	return biohub.RawFile{Name: "moose.zip", Data: data}
}

func occurrenceFC() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(orb.Point{-124.5, 50.1})
	f.Properties["type"] = "Occurrence"
	fc.Append(f)
	return fc
}

func TestIntakeCreateStatusOrder(t *testing.T) {
	sub := newMockSubmissionStore()
	spat := &mockSpatialStore{
		transforms: []spatial.Transform{
			{TransformID: 1, Name: "DwC Occurrences", Transform: "select 1"},
		},
		runResults: []*geojson.FeatureCollection{occurrenceFC()},
	}
	blob := &mockBlobStore{}
	search := &mockSearchIndex{}
	ing := testIngestor(sub, spat, &mockOccurrenceStore{}, blob, search)

	id, err := ing.Intake(context.Background(), testFile(t), datasetUUID)
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	want := []submission.StatusType{
		submission.StatusIngested,
		submission.StatusUploaded,
		submission.StatusValidated,
		submission.StatusEMLIngested,
		submission.StatusEMLToJSON,
		submission.StatusMetadataToES,
		submission.StatusNormalized,
		submission.StatusSpatialTransformUnsecure,
		submission.StatusSpatialTransformSecure,
	}
	require.Len(t, sub.statuses, len(want))
	for n, entry := range sub.statuses {
		assert.Equal(t, want[n], entry.status, "status %d", n)
		assert.False(t, entry.withMessage)
		assert.Equal(t, 42, entry.submissionID)
	}

	// every persisted artifact landed
	assert.Len(t, blob.keys, 1)
	assert.Equal(t, blob.keys[0], sub.updates["input_key"])
	assert.Contains(t, sub.updates["eml_source"], "Moose Survey")
	assert.Contains(t, sub.updates["eml_json_source"], "@_packageId")
	assert.Contains(t, sub.updates["darwin_core_source"], "occurrence")

	require.Len(t, search.indexed, 1)
	assert.Equal(t, "eml", search.indexed[0].index)
	assert.Equal(t, datasetUUID, search.indexed[0].id)

	// spatial transform produced one linked component
	assert.Equal(t, []int{1}, spat.components)
	assert.Equal(t, [][2]int{{1, 1}}, spat.spatialRefs)
	assert.Empty(t, sub.endDated)
	assert.Empty(t, spat.deletes)
}

func TestIntakeReplacePath(t *testing.T) {
	sub := newMockSubmissionStore()
	sub.liveID = 7
	spat := &mockSpatialStore{}
	ing := testIngestor(sub, spat, &mockOccurrenceStore{},
		&mockBlobStore{}, &mockSearchIndex{})

	_, err := ing.Intake(context.Background(), testFile(t), datasetUUID)
	require.NoError(t, err)

	// transform links go first, then components, then the end date
	assert.Equal(t,
		[]string{"spatial_refs", "security_refs", "components"},
		spat.deletes)
	assert.Equal(t, []int{7}, sub.endDated)

	require.NotNil(t, sub.insertRec)
	assert.Equal(t, datasetUUID, sub.insertRec.UUID)
	assert.Equal(t, 5, sub.insertRec.SourceTransformID)
}

func TestIntakePackageIDMismatch(t *testing.T) {
	sub := newMockSubmissionStore()
	ing := testIngestor(sub, &mockSpatialStore{}, &mockOccurrenceStore{},
		&mockBlobStore{}, &mockSearchIndex{})

	_, err := ing.Intake(context.Background(), testFile(t),
		"11111111-2222-3333-4444-555555555555")
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, "Ingestion failed", gnErr.Msg)
	assert.Empty(t, sub.statuses)
	assert.Nil(t, sub.insertRec)
}

func TestIntakeDerivesUUIDFromEML(t *testing.T) {
	sub := newMockSubmissionStore()
	ing := testIngestor(sub, &mockSpatialStore{}, &mockOccurrenceStore{},
		&mockBlobStore{}, &mockSearchIndex{})

	_, err := ing.Intake(context.Background(), testFile(t), "")
	require.NoError(t, err)

	require.NotNil(t, sub.insertRec)
	assert.Equal(t, datasetUUID, sub.insertRec.UUID)
}

func TestIntakeStepFailureWritesAudit(t *testing.T) {
	sub := newMockSubmissionStore()
	blob := &mockBlobStore{putErr: errors.New("bucket unavailable")}
	ing := testIngestor(sub, &mockSpatialStore{}, &mockOccurrenceStore{},
		blob, &mockSearchIndex{})

	_, err := ing.Intake(context.Background(), testFile(t), datasetUUID)
	require.Error(t, err)

	// Ingested succeeded, then the upload failure with its message;
	// nothing after the failing step ran.
	require.Len(t, sub.statuses, 2)
	assert.Equal(t, submission.StatusIngested, sub.statuses[0].status)

	failure := sub.statuses[1]
	assert.Equal(t, submission.StatusFailedUpload, failure.status)
	assert.True(t, failure.withMessage)
	assert.Equal(t, submission.MessageError, failure.messageType)
	assert.Contains(t, failure.message, "bucket unavailable")

	assert.NotContains(t, sub.updates, "eml_source")
}

func TestIntakeAuditWriteFailureKeepsCause(t *testing.T) {
	sub := newMockSubmissionStore()
	sub.auditErr = errors.New("audit insert refused")
	blob := &mockBlobStore{putErr: errors.New("bucket unavailable")}
	ing := testIngestor(sub, &mockSpatialStore{}, &mockOccurrenceStore{},
		blob, &mockSearchIndex{})

	_, err := ing.Intake(context.Background(), testFile(t), datasetUUID)
	require.Error(t, err)

	// The step error stays visible even when the status append fails.
	assert.Contains(t, err.Error(), "bucket unavailable")
	assert.Contains(t, err.Error(), "audit insert refused")
}

func TestIntakeMetadataPreconditions(t *testing.T) {
	sub := newMockSubmissionStore()
	sub.sourceTransform.MetadataTransform = ""
	ing := testIngestor(sub, &mockSpatialStore{}, &mockOccurrenceStore{},
		&mockBlobStore{}, &mockSearchIndex{})

	_, err := ing.Intake(context.Background(), testFile(t), datasetUUID)
	require.Error(t, err)

	last := sub.statuses[len(sub.statuses)-1]
	assert.Equal(t, submission.StatusFailedMetadataToES, last.status)
	assert.Contains(t, last.message,
		"The source metadata transform is not available")
}

func TestIntakeSecurityTransformLinks(t *testing.T) {
	secured := occurrenceFC()
	sub := newMockSubmissionStore()
	spat := &mockSpatialStore{
		secTransforms: []spatial.Transform{
			{TransformID: 9, Name: "Redact sensitive", Transform: "select 1"},
		},
		secResults: []spatial.SecureRecord{
			{SubmissionSpatialComponentID: 3, SecuredComponent: secured},
			{SubmissionSpatialComponentID: 4},
		},
	}
	ing := testIngestor(sub, spat, &mockOccurrenceStore{},
		&mockBlobStore{}, &mockSearchIndex{})

	_, err := ing.Intake(context.Background(), testFile(t), datasetUUID)
	require.NoError(t, err)

	// only the record with a secured variant is updated, both get the
	// transform link
	assert.Equal(t, []int{3}, spat.secured)
	assert.Equal(t, [][2]int{{9, 3}, {9, 4}}, spat.securityRefs)
}

func TestIntakeProgressCallback(t *testing.T) {
	sub := newMockSubmissionStore()
	ing := testIngestor(sub, &mockSpatialStore{}, &mockOccurrenceStore{},
		&mockBlobStore{}, &mockSearchIndex{})

	var steps []string
	ing.progress = func(step string, current, total int) {
		steps = append(steps, step)
		assert.Equal(t, len(steps), current)
		assert.Equal(t, 8, total)
	}

	_, err := ing.Intake(context.Background(), testFile(t), datasetUUID)
	require.NoError(t, err)
	assert.Len(t, steps, 8)
	assert.Equal(t, "upload archive", steps[0])
	assert.Equal(t, "security transforms", steps[7])
}

func TestBlobKeyDeterministic(t *testing.T) {
	k1 := blobKey("uuid", []byte("data"), "a.zip")
	k2 := blobKey("uuid", []byte("data"), "a.zip")
	k3 := blobKey("uuid", []byte("other"), "a.zip")
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}
