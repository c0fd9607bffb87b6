package ioingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/PinkDiamond1/biohubbc-platform/internal/ioblob"
	"github.com/PinkDiamond1/biohubbc-platform/internal/iodb"
	"github.com/PinkDiamond1/biohubbc-platform/internal/ioschema"
	"github.com/PinkDiamond1/biohubbc-platform/internal/iosearch"
	"github.com/PinkDiamond1/biohubbc-platform/internal/iotesting"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
)

// Note: These are integration tests that require PostgreSQL with the
// PostGIS extension available. The database name is always forced to
// "biohub_test" for safety; use go test -short to skip.

// integrationFile builds an archive whose events carry numeric UTM
// zones, as the stock occurrence transform expects.
func integrationFile(t *testing.T) biohub.RawFile {
	t.Helper()
	data := buildArchive(t, map[string]string{
		"eml.xml": emlDoc,
		"occurrence.txt": "id\tassociatedTaxa\tsex\n" +
			"occ-1\tAlces alces\tmale\n",
		"event.txt": "id\teventDate\tverbatimCoordinates\n" +
			"occ-1\t2023-06-15\t9 573674 6114170\n",
	})
	return biohub.RawFile{Name: "moose.zip", Data: data}
}

func integrationIngestor(
	t *testing.T, ctx context.Context,
) (biohub.Ingestor, iodb.Operator) {
	t.Helper()

	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()

	err := op.Connect(ctx, &cfg.Database)
	require.NoError(t, err, "Connect should succeed with valid config")
	t.Cleanup(func() { _ = op.Close() })

	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(op).Create(ctx, cfg))

	blob, err := ioblob.NewFSStore(t.TempDir())
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":"updated"}`))
		}))
	t.Cleanup(srv.Close)

	ing := NewIngestor(cfg, op, blob, iosearch.NewClient(srv.URL), nil, nil)
	return ing, op
}

func TestIntakeRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	ing, op := integrationIngestor(t, ctx)

	id, err := ing.Intake(ctx, integrationFile(t), datasetUUID)
	require.NoError(t, err)
	require.NotZero(t, id)

	var inputKey string
	err = op.Pool().QueryRow(ctx, `
		SELECT input_key FROM submission
		WHERE submission_id = $1`, id).Scan(&inputKey)
	require.NoError(t, err)
	assert.NotEmpty(t, inputKey)

	var statuses int
	err = op.Pool().QueryRow(ctx, `
		SELECT count(*) FROM submission_status
		WHERE submission_id = $1`, id).Scan(&statuses)
	require.NoError(t, err)
	assert.Equal(t, 9, statuses, "One audit row per completed step")
}

func TestIntakeSameUUIDSerialized(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	ing, op := integrationIngestor(t, ctx)

	// Two concurrent intakes of the same dataset UUID. The advisory
	// lock makes one create and the other replace; without it both
	// could create live rows.
	ids := make([]int, 2)
	g, gctx := errgroup.WithContext(ctx)
	for n := 0; n < 2; n++ {
		g.Go(func() error {
			id, err := ing.Intake(gctx, integrationFile(t), datasetUUID)
			ids[n] = id
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.NotEqual(t, ids[0], ids[1])

	var total, live int
	err := op.Pool().QueryRow(ctx, `
		SELECT count(*) FROM submission WHERE uuid = $1`,
		datasetUUID).Scan(&total)
	require.NoError(t, err)
	err = op.Pool().QueryRow(ctx, `
		SELECT count(*) FROM submission
		WHERE uuid = $1 AND record_end_date IS NULL`,
		datasetUUID).Scan(&live)
	require.NoError(t, err)

	assert.Equal(t, 2, total)
	assert.Equal(t, 1, live, "Exactly one live submission per dataset")
}
