package query

import "errors"

var (
	ErrQuery = errors.New("query error")
	ErrPatch = errors.New("patch error")
)
