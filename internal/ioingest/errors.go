package ioingest

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
)

// auditMessage extracts the text written into the submission message
// audit trail for a failed step. The wrapped cause carries the most
// detail, so it wins over the display message.
func auditMessage(err error) string {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Err != nil {
		return gnErr.Err.Error()
	}
	return err.Error()
}

// IngestionFailedError is returned when a submission cannot be
// created at all; no audit trail exists yet at that point.
func IngestionFailedError(err error) error {
	msg := "Ingestion failed"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IngestionFailedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: ingestion failed: %w", fn, err),
	}
}

// MetadataError is returned by the metadata publication step when one
// of its preconditions is missing. The message text lands in the
// submission's audit trail verbatim.
func MetadataError(reason string) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IngestionStepError,
		Msg:  reason,
		Err:  fmt.Errorf("from %s: %s", fn, reason),
	}
}

// ScrapeError is returned when the occurrence scrape cannot read the
// normalized source.
func ScrapeError(submissionID int, err error) error {
	msg := "Could not scrape occurrences of submission <em>%d</em>"
	vars := []any{submissionID}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OccurrenceScrapeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: scrape submission %d: %w",
			fn, submissionID, err),
	}
}
