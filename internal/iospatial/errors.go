package iospatial

import (
	"fmt"
	"runtime"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
)

// InsertError is returned when a component or transform link cannot
// be created.
func InsertError(table string, submissionID int, err error) error {
	msg := "Could not insert into <em>%s</em> for submission <em>%d</em>"
	vars := []any{table, submissionID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SpatialInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: insert into %s for submission %d: %w",
			fn, table, submissionID, err),
	}
}

// TransformRunError is returned when a stored transform query fails
// against a submission.
func TransformRunError(submissionID int, err error) error {
	msg := "Could not run transform against submission <em>%d</em>"
	vars := []any{submissionID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SpatialTransformRunError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: run transform for submission %d: %w",
			fn, submissionID, err),
	}
}

// SecurityError is returned when the secured variant of a component
// cannot be stored.
func SecurityError(componentID int, err error) error {
	msg := "Could not secure spatial component <em>%d</em>"
	vars := []any{componentID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SpatialSecurityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: secure component %d: %w",
			fn, componentID, err),
	}
}

// DeleteError is returned when the replace path cannot remove the
// previous version's spatial data.
func DeleteError(table string, submissionID int, err error) error {
	msg := "Could not delete from <em>%s</em> for submission <em>%d</em>"
	vars := []any{table, submissionID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SpatialDeleteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: delete from %s for submission %d: %w",
			fn, table, submissionID, err),
	}
}

// SearchError is returned when a spatial criteria search fails.
func SearchError(err error) error {
	msg := "Could not search spatial components"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SpatialSearchError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: search spatial components: %w", fn, err),
	}
}
