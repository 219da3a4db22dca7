package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/tony-format/go-toon/ir"
)

// container being filled while reading a JSON token stream. Object
// members are collected in kvs and built when the object closes.
type jsonFrame struct {
	object  bool
	kvs     []ir.KeyVal
	vals    []*ir.Node
	key     string
	haveKey bool
}

func (f *jsonFrame) build() *ir.Node {
	if f.object {
		return ir.FromKeyVals(f.kvs)
	}
	return ir.FromSlice(f.vals)
}

func parseJSON(r io.Reader) ([]*ir.Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var docs []*ir.Node
	for {
		doc, err := readJSON(dec)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
}

// readJSON reads one value from dec without recursion. Nested containers
// are kept on an explicit stack and attached to their parent when closed,
// so object keys keep the order in which they were first seen.
func readJSON(dec *json.Decoder) (*ir.Node, error) {
	var stack []*jsonFrame
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) && len(stack) == 0 {
				return nil, io.EOF
			}
			if errors.Is(err, io.EOF) {
				return nil, wrapErr(io.ErrUnexpectedEOF)
			}
			return nil, wrapErr(err)
		}
		var node *ir.Node
		switch x := tok.(type) {
		case json.Delim:
			switch x {
			case '{':
				stack = append(stack, &jsonFrame{object: true})
				continue
			case '[':
				stack = append(stack, &jsonFrame{})
				continue
			default:
				node = stack[len(stack)-1].build()
				stack = stack[:len(stack)-1]
			}
		case string:
			if n := len(stack); n > 0 {
				top := stack[n-1]
				if top.object && !top.haveKey {
					top.key = x
					top.haveKey = true
					continue
				}
			}
			node = ir.FromString(x)
		case json.Number:
			node, err = ir.FromNumber(x.String())
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrParse, err)
			}
		case bool:
			node = ir.FromBool(x)
		case nil:
			node = ir.Null()
		default:
			return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
		}
		if len(stack) == 0 {
			return node, nil
		}
		top := stack[len(stack)-1]
		if top.object {
			top.kvs = append(top.kvs, ir.KeyVal{Key: top.key, Val: node})
			top.haveKey = false
			continue
		}
		top.vals = append(top.vals, node)
	}
}
