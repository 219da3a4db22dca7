package ir

import "errors"

var (
	ErrPath   = errors.New("path error")
	ErrNumber = errors.New("invalid number")
	ErrAny    = errors.New("unsupported value")
)
