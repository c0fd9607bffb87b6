package iodb

import (
	"fmt"
	"runtime"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError is returned when the database connection fails.
func ConnectionError(host string, port int, database, user string,
	err error) error {
	msg := "Could not connect to PostgreSQL at <em>%s:%d/%s</em> as <em>%s</em>"
	vars := []any{host, port, database, user}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: failed to connect to %s:%d/%s: %w",
			fn, host, port, database, err),
	}
}

// TableCheckError is returned when the table existence check fails.
func TableCheckError(err error) error {
	msg := "Could not check database tables"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBTableError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot check tables: %w", fn, err),
	}
}

// DropTableError is returned when dropping a table fails.
func DropTableError(table string, err error) error {
	msg := "Could not drop table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBTableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot drop table %s: %w",
			fn, table, err),
	}
}

// NotConnectedError is returned when an operation runs before Connect.
func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: database is not connected", fn),
	}
}
