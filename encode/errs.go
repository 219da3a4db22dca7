package encode

import (
	"errors"

	"github.com/signadot/tony-format/go-toon/token"
)

var (
	ErrEncoding        = errors.New("encoding error")
	ErrNonFiniteNumber = token.ErrNonFiniteNumber
	ErrExcessiveDepth  = errors.New("excessive depth")
	ErrInvalidOptions  = errors.New("invalid options")
)
