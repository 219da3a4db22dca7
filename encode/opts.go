package encode

import "github.com/signadot/tony-format/go-toon/token"

const (
	DefaultIndent   = 2
	DefaultMaxDepth = 256
)

type EncodeOption func(*EncState)

// Delimiter sets the character separating row cells and inline array
// elements. Field names in tabular headers are always comma separated.
func Delimiter(r rune) EncodeOption {
	return func(es *EncState) { es.delim = r }
}

// Indent sets the number of spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// MaxDepth bounds the container nesting of an encoded document.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

// RelaxedTables renders arrays of objects as tables when the first
// element's keys are a superset of every other element's keys. Missing cells
// are written as "".
func RelaxedTables(v bool) EncodeOption {
	return func(es *EncState) { es.relaxed = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{
		delim:    token.DefaultDelimiter,
		indent:   DefaultIndent,
		maxDepth: DefaultMaxDepth,
		marker:   -1,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
