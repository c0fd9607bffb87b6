// Package config provides configuration management for the BioHub
// platform backend.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use BIOHUB_ prefix with underscores for nesting:
//
//	BIOHUB_DATABASE_HOST=localhost
//	BIOHUB_DATABASE_PORT=5432
//	BIOHUB_SEARCH_URL=http://localhost:9200
//	BIOHUB_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete BioHub backend configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Blob contains object storage settings for raw submission archives.
	Blob BlobConfig `mapstructure:"blob" yaml:"blob"`

	// Search contains search index settings for dataset metadata documents.
	Search SearchConfig `mapstructure:"search" yaml:"search"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// SystemUserID identifies the system user on whose behalf store
	// operations run. It selects the source transform during ingestion
	// and the security exceptions during spatial retrieval.
	SystemUserID int `mapstructure:"system_user_id" yaml:"system_user_id"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations (dataset fan-out, name parsing).
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// BlobConfig contains object storage settings.
type BlobConfig struct {
	// Store selects the backend: "fs" (local directory) or "http"
	// (object gateway).
	Store string `mapstructure:"store" yaml:"store"`

	// Dir is the root directory for the "fs" store.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// URL is the base URL for the "http" store.
	URL string `mapstructure:"url" yaml:"url"`

	// Token authenticates requests to the "http" store.
	Token string `mapstructure:"token" yaml:"token"`
}

// SearchConfig contains search index settings.
type SearchConfig struct {
	// URL is the base URL of the search cluster.
	URL string `mapstructure:"url" yaml:"url"`

	// Index is the default index name for dataset metadata documents.
	// A source transform may override it per uploading system.
	Index string `mapstructure:"index" yaml:"index"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "biohub",
			SSLMode:  "disable",
		},
		Blob: BlobConfig{
			Store: "fs",
		},
		Search: SearchConfig{
			URL:   "http://localhost:9200",
			Index: "eml",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		SystemUserID: 1,
		JobsNumber:   runtime.NumCPU(),
	}

	return res
}
