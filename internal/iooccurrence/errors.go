package iooccurrence

import (
	"fmt"
	"runtime"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
)

// InsertError is returned when an occurrence row cannot be created.
func InsertError(submissionID int, err error) error {
	msg := "Could not insert occurrence for submission <em>%d</em>"
	vars := []any{submissionID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OccurrenceInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: insert occurrence for submission %d: %w",
			fn, submissionID, err),
	}
}

// DeleteError is returned when the pre-scrape cleanup fails.
func DeleteError(submissionID int, err error) error {
	msg := "Could not delete occurrences of submission <em>%d</em>"
	vars := []any{submissionID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OccurrenceInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: delete occurrences of submission %d: %w",
			fn, submissionID, err),
	}
}
