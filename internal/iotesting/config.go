// Package iotesting provides shared test utilities for integration
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"testing"

	"github.com/PinkDiamond1/biohubbc-platform/internal/ioconfig"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
)

// TestDatabaseName is the database name used for all integration
// tests, so tests never accidentally run against a production
// database.
const TestDatabaseName = "biohub_test"

// GetTestConfig returns a configuration suitable for integration
// tests. It loads the standard config when one exists and overrides
// the database name to TestDatabaseName for safety.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()

	if home, err := os.UserHomeDir(); err == nil {
		if loaded, err := ioconfig.Load(home); err == nil {
			cfg = loaded
		}
	}

	// Always use the test database for safety.
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for
// tests that need nothing else.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SetupTempHomeDir creates a temporary home directory for a test with
// the config, blob and log directories already in place. Cleanup
// happens automatically when the test finishes.
func SetupTempHomeDir(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	if err := ioconfig.EnsureDirs(home); err != nil {
		t.Fatalf("Failed to prepare temp home dir: %v", err)
	}
	return home
}
