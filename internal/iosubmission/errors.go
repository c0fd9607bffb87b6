package iosubmission

import (
	"fmt"
	"runtime"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
)

// InsertError is returned when a submission row cannot be created.
func InsertError(uuid string, err error) error {
	msg := "Could not insert submission record for dataset <em>%s</em>"
	vars := []any{uuid}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SubmissionInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: insert submission %s: %w", fn, uuid, err),
	}
}

// UpdateError is returned when a submission column update does not
// touch exactly one row.
func UpdateError(column string, submissionID int, err error) error {
	msg := "Could not update <em>%s</em> of submission <em>%d</em>"
	vars := []any{column, submissionID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SubmissionUpdateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: update %s of submission %d: %w",
			fn, column, submissionID, err),
	}
}

// GetError is returned when a submission lookup fails.
func GetError(submissionID int, err error) error {
	msg := "Could not get submission record <em>%d</em>"
	vars := []any{submissionID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SubmissionGetError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: get submission %d: %w", fn, submissionID, err),
	}
}

// StatusError is returned when a status row cannot be appended.
func StatusError(submissionID int, statusType string, err error) error {
	msg := "Could not insert status <em>%s</em> for submission <em>%d</em>"
	vars := []any{statusType, submissionID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SubmissionStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: insert status %q for submission %d: %w",
			fn, statusType, submissionID, err),
	}
}

// MessageError is returned when a message row cannot be appended.
func MessageError(statusID int, messageType string, err error) error {
	msg := "Could not insert message of type <em>%s</em> for status <em>%d</em>"
	vars := []any{messageType, statusID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SubmissionMessageError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: insert message %q for status %d: %w",
			fn, messageType, statusID, err),
	}
}

// SourceTransformNotFoundError is returned when a source transform
// lookup does not match exactly one row.
func SourceTransformNotFoundError(err error) error {
	msg := "The source transform record is not available"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceTransformError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: get source transform: %w", fn, err),
	}
}

// MetadataTransformError is returned when execution of a metadata
// transform fails or yields no result row.
func MetadataTransformError(submissionID int, err error) error {
	msg := "Could not transform metadata of submission <em>%d</em>"
	vars := []any{submissionID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MetadataTransformError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: metadata transform for submission %d: %w",
			fn, submissionID, err),
	}
}

// SearchError is returned when a criteria search fails.
func SearchError(err error) error {
	msg := "Could not search submissions"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SubmissionSearchError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: search submissions: %w", fn, err),
	}
}

// CountError is returned when the spatial component counting queries
// fail.
func CountError(datasetID string, err error) error {
	msg := "Could not count spatial components of dataset <em>%s</em>"
	vars := []any{datasetID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SpatialCountError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: count spatial components of %s: %w",
			fn, datasetID, err),
	}
}
