package ioblob

import (
	"fmt"
	"runtime"

	"github.com/PinkDiamond1/biohubbc-platform/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateDirError is returned when the filesystem store root cannot be
// created.
func CreateDirError(dir string, err error) error {
	msg := "Could not create blob directory <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: create dir %s: %w", fn, dir, err),
	}
}

// PutError is returned when a blob cannot be stored.
func PutError(key string, err error) error {
	msg := "Could not store blob <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BlobPutError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: put blob %s: %w", fn, key, err),
	}
}

// GetError is returned when a blob cannot be retrieved.
func GetError(key string, err error) error {
	msg := "Could not retrieve blob <em>%s</em>"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BlobGetError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: get blob %s: %w", fn, key, err),
	}
}
