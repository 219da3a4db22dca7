package encode

import (
	"github.com/signadot/tony-format/go-toon/ir"
)

// Kind is the rendering strategy chosen for an array.
type Kind int

const (
	// Empty arrays render as a bare [0] header.
	Empty Kind = iota
	// Uniform arrays of objects render as a tabular block.
	Uniform
	// Primitive arrays of scalars render inline on the header line.
	Primitive
	// Nested arrays of arrays render as list items.
	Nested
	// Heterogeneous arrays render as list items.
	Heterogeneous
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Uniform:
		return "uniform"
	case Primitive:
		return "primitive"
	case Nested:
		return "nested"
	case Heterogeneous:
		return "heterogeneous"
	default:
		return "<unknown kind>"
	}
}

// Classify decides how an array is rendered. Objects whose key sets are
// all equal and whose values are all scalars are Uniform; the field order
// is that of the first element. Of opts only RelaxedTables matters.
func Classify(arr *ir.Node, opts ...EncodeOption) Kind {
	return classify(arr, newEncState(opts...).relaxed)
}

func classify(arr *ir.Node, relaxed bool) Kind {
	vals := arr.Values
	if len(vals) == 0 {
		return Empty
	}
	objects, arrays, leaves := 0, 0, 0
	for _, v := range vals {
		switch v.Type {
		case ir.ObjectType:
			objects++
		case ir.ArrayType:
			arrays++
		default:
			leaves++
		}
	}
	switch len(vals) {
	case objects:
		if tabular(vals, relaxed) {
			return Uniform
		}
		return Heterogeneous
	case leaves:
		return Primitive
	case arrays:
		return Nested
	default:
		return Heterogeneous
	}
}

// TableFields returns the header fields of a Uniform array.
func TableFields(arr *ir.Node) []string {
	if len(arr.Values) == 0 {
		return nil
	}
	return arr.Values[0].Fields
}

func tabular(objs []*ir.Node, relaxed bool) bool {
	first := objs[0]
	if len(first.Fields) == 0 {
		return false
	}
	keys := make(map[string]struct{}, len(first.Fields))
	for _, f := range first.Fields {
		keys[f] = struct{}{}
	}
	for _, obj := range objs {
		if !relaxed && len(obj.Fields) != len(keys) {
			return false
		}
		for i, f := range obj.Fields {
			if _, ok := keys[f]; !ok {
				return false
			}
			if !obj.Values[i].Type.IsLeaf() {
				return false
			}
		}
	}
	return true
}
