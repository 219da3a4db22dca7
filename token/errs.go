package token

import "errors"

var (
	ErrNonFiniteNumber = errors.New("non-finite number")
	ErrNumber          = errors.New("number")
	ErrDelimiter       = errors.New("bad delimiter")
	ErrQuoted          = errors.New("bad quoted string")
)
