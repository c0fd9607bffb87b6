// Package iodb implements database connection management using
// pgxpool. This is an impure I/O package; stores receive their query
// surface (pool or transaction) from here.
package iodb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
	"github.com/PinkDiamond1/biohubbc-platform/pkg/config"
)

// Operator manages the PostgreSQL connection pool.
type Operator interface {
	// Connect establishes a connection pool.
	Connect(ctx context.Context, cfg *config.DatabaseConfig) error

	// Close releases all database connections.
	Close() error

	// Pool returns the underlying pool.
	Pool() *pgxpool.Pool

	// WithTransaction runs fn inside one transaction: committed when fn
	// returns nil, rolled back otherwise. The intake's replace-or-create
	// phase runs inside one such boundary.
	WithTransaction(ctx context.Context, fn func(q biohub.Querier) error) error

	// HasTables reports whether the public schema contains any tables.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	DropAllTables(ctx context.Context) error
}

type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator (without connecting).
func NewPgxOperator() Operator {
	return &pgxOperator{}
}

// Connect establishes a connection pool to PostgreSQL.
// Uses sensible hardcoded pool settings that work well for most use
// cases.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

func (p *pgxOperator) HasTables(ctx context.Context) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
		)
	`

	var hasTables bool
	if err := p.pool.QueryRow(ctx, query).Scan(&hasTables); err != nil {
		return false, TableCheckError(err)
	}

	return hasTables, nil
}

func (p *pgxOperator) DropAllTables(ctx context.Context) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	query := `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return TableCheckError(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			return TableCheckError(err)
		}
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return TableCheckError(err)
	}

	for _, table := range tables {
		dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)
		if _, err := p.pool.Exec(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}

	return nil
}

func (p *pgxOperator) WithTransaction(
	ctx context.Context,
	fn func(q biohub.Querier) error,
) error {
	if p.pool == nil {
		return NotConnectedError()
	}
	return pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		return fn(tx)
	})
}
