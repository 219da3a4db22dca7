package parse

import (
	"errors"
)

var (
	ErrParse = errors.New("parse error")
	// ErrEmpty is returned by Parse when the input holds no document.
	ErrEmpty  = errors.New("empty document")
	ErrFormat = errors.New("unsupported input format")
)
