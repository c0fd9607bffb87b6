package config_test

import (
	"testing"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "biohub", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "fs", cfg.Blob.Store)
	assert.Equal(t, "http://localhost:9200", cfg.Search.URL)
	assert.Equal(t, "eml", cfg.Search.Index)
	assert.Equal(t, 1, cfg.SystemUserID)
	assert.Greater(t, cfg.JobsNumber, 0)
}

func TestUpdateOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("db.example.org"),
		config.OptDatabasePort(5433),
		config.OptSearchIndex("eml-test"),
		config.OptSystemUserID(42),
	})

	assert.Equal(t, "db.example.org", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "eml-test", cfg.Search.Index)
	assert.Equal(t, 42, cfg.SystemUserID)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("  "),
		config.OptDatabasePort(-1),
		config.OptLogLevel("chatty"),
		config.OptBlobStore("ftp"),
	})

	// invalid values are ignored, defaults survive
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "fs", cfg.Blob.Store)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDatabase("biohub_alt"),
		config.OptBlobDir("/var/lib/biohub/blobs"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Database, clone.Database)
	assert.Equal(t, cfg.Blob, clone.Blob)
	assert.Equal(t, cfg.Search, clone.Search)
	assert.Equal(t, cfg.Log, clone.Log)
	assert.Equal(t, cfg.SystemUserID, clone.SystemUserID)
}
