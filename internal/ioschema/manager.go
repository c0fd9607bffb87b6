// Package ioschema implements database schema management. This is an
// impure I/O package that wraps GORM AutoMigrate functionality and
// seeds the vocabulary and transform tables the pipeline depends on.
package ioschema

import (
	"context"

	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/PinkDiamond1/biohubbc-platform/internal/iodb"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
)

// Manager creates and updates the database schema.
type Manager interface {
	// Create creates the schema from scratch: extensions, tables,
	// vocabularies and stock transforms.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates an existing schema to the latest version and
	// re-seeds missing vocabulary rows.
	Migrate(ctx context.Context, cfg *config.Config) error
}

// manager implements the Manager interface using GORM AutoMigrate.
type manager struct {
	operator iodb.Operator
}

// NewManager creates a new schema Manager.
func NewManager(op iodb.Operator) Manager {
	return &manager{operator: op}
}

// Create creates the database schema. PostGIS must be installed on
// the server; the extension is enabled here because the spatial
// component and occurrence tables carry geometry columns.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	q := `CREATE EXTENSION IF NOT EXISTS postgis`
	if _, err := pool.Exec(ctx, q); err != nil {
		return ExtensionError("postgis", err)
	}

	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	return m.seed(ctx, cfg)
}

// Migrate updates the database schema to the latest version using
// GORM AutoMigrate. Seeding is idempotent, so it runs here too to
// pick up vocabulary additions.
func (m *manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	return m.seed(ctx, cfg)
}

// gormDB wraps the pgx pool with a GORM connection.
func (m *manager) gormDB() (*gorm.DB, error) {
	db := stdlib.OpenDBFromPool(m.operator.Pool())

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: db}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB, nil
}
