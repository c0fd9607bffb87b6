package iosearch

import (
	"fmt"
	"runtime"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
)

// IndexError is returned when a metadata document cannot be upserted.
func IndexError(index, id string, err error) error {
	msg := "Could not index document <em>%s</em> into <em>%s</em>"
	vars := []any{id, index}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SearchIndexError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: index %s into %s: %w",
			fn, id, index, err),
	}
}
