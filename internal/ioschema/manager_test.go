package ioschema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PinkDiamond1/biohubbc-platform/internal/iodb"
	"github.com/PinkDiamond1/biohubbc-platform/internal/ioschema"
	"github.com/PinkDiamond1/biohubbc-platform/internal/iotesting"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/submission"
)

// Note: These are integration tests that require PostgreSQL with the
// PostGIS extension available. The database name is always forced to
// "biohub_test" for safety; use go test -short to skip.

func TestManager_CreateAndMigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, &cfg.Database)
	require.NoError(t, err, "Connect should succeed with valid config")
	defer op.Close()

	require.NoError(t, op.DropAllTables(ctx))

	m := ioschema.NewManager(op)
	require.NoError(t, m.Create(ctx, cfg))

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has, "Create should build the schema")

	var statusTypes int
	err = op.Pool().QueryRow(ctx,
		"SELECT count(*) FROM submission_status_type").Scan(&statusTypes)
	require.NoError(t, err)
	assert.Equal(t, len(submission.AllStatusTypes()), statusTypes)

	// Migrate on an existing schema re-seeds without duplicating.
	require.NoError(t, m.Migrate(ctx, cfg))

	err = op.Pool().QueryRow(ctx,
		"SELECT count(*) FROM submission_status_type").Scan(&statusTypes)
	require.NoError(t, err)
	assert.Equal(t, len(submission.AllStatusTypes()), statusTypes)

	var liveTransforms int
	err = op.Pool().QueryRow(ctx, `
		SELECT count(*) FROM source_transform
		WHERE system_user_id = $1 AND record_end_date IS NULL`,
		cfg.SystemUserID).Scan(&liveTransforms)
	require.NoError(t, err)
	assert.Equal(t, 1, liveTransforms,
		"Exactly one live source transform per system user")
}
