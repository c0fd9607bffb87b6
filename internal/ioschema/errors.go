package ioschema

import (
	"fmt"
	"runtime"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError is returned when a schema operation is attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: not connected to database", fn),
	}
}

// GORMConnectionError is returned when GORM cannot wrap the pool.
func GORMConnectionError(err error) error {
	msg := "Could not open a GORM connection over the pgx pool"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: failed to connect with GORM: %w", fn, err),
	}
}

// ExtensionError is returned when a required PostgreSQL extension
// cannot be enabled.
func ExtensionError(name string, err error) error {
	msg := "Could not enable the <em>%s</em> extension; " +
		"is it installed on the server?"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: create extension %s: %w", fn, name, err),
	}
}

// MigrateSchemaError is returned when AutoMigrate fails.
func MigrateSchemaError(err error) error {
	msg := "Could not migrate the database schema"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: failed to migrate schema: %w", fn, err),
	}
}

// SeedError is returned when seeding a vocabulary or transform table
// fails.
func SeedError(table string, err error) error {
	msg := "Could not seed table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaSeedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: failed to seed %s: %w", fn, table, err),
	}
}
