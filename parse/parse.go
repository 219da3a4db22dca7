package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/tony-format/go-toon/debug"
	"github.com/signadot/tony-format/go-toon/format"
	"github.com/signadot/tony-format/go-toon/ir"
)

// Parse parses exactly one document. Input holding only whitespace gives
// ErrEmpty.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	docs, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return nil, ErrEmpty
	case 1:
		return docs[0], nil
	default:
		return nil, fmt.Errorf("%w: %d documents, expected 1", ErrParse, len(docs))
	}
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseAll parses a stream of documents: concatenated JSON values or YAML
// documents separated by "---".
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := newParseOpts(opts...)
	var (
		docs []*ir.Node
		err  error
	)
	switch pOpts.format {
	case format.JSONFormat:
		docs, err = parseJSON(bytes.NewReader(d))
	case format.YAMLFormat:
		docs, err = parseYAML(bytes.NewReader(d))
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		for i, doc := range docs {
			debug.Logf("parsed %s document %d: %v\n", pOpts.format, i, doc)
		}
	}
	return docs, nil
}

func wrapErr(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	return fmt.Errorf("%w: %w", ErrParse, err)
}
