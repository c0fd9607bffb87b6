package ioschema

import (
	"errors"
	"testing"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedErrorStructure(t *testing.T) {
	cause := errors.New("duplicate key")
	err := SeedError("submission_status_type", cause)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "error should be of type *gn.Error")
	assert.Equal(t, errcode.SchemaSeedError, gnErr.Code)
	assert.Len(t, gnErr.Vars, 1)
	assert.ErrorIs(t, gnErr.Err, cause)
}

func TestMigrateSchemaErrorStructure(t *testing.T) {
	cause := errors.New("permission denied")
	err := MigrateSchemaError(cause)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SchemaMigrateError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, cause)
}

func TestNotConnectedErrorStructure(t *testing.T) {
	err := NotConnectedError()
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}
