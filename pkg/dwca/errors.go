package dwca

import (
	"fmt"
	"runtime"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
)

// ParseError is fatal for the current submission attempt: the uploaded
// bytes are absent, unreadable, or do not match the expected package
// layout.
func ParseError(fileName string, err error) error {
	msg := "Cannot parse Darwin Core Archive <em>%s</em>"
	vars := []any{fileName}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse archive %q: %w",
			fn, fileName, err),
	}
}

// ValidationError reports a structurally invalid archive.
func ValidationError(fileName, reason string) error {
	msg := "Archive <em>%s</em> is invalid: %s"
	vars := []any{fileName, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArchiveValidationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid archive %q: %s",
			fn, fileName, reason),
	}
}
