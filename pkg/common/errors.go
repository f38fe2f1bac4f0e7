package common

import "github.com/cockroachdb/errors"

var (
	ErrUnmatchedCategory = errors.New("message matches no transaction category")
	ErrFieldExtraction   = errors.New("required field did not match")
	ErrNumericParse      = errors.New("captured span is not a number")
)
