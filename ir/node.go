package ir

import (
	"fmt"
	"maps"
	"math"
	"math/big"
	"slices"
	"strconv"

	"github.com/signadot/tony-format/go-toon/token"
)

type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	dst.Int64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromNumber builds a number node from a JSON style numeric literal.
// Integer literals that overflow int64 are kept verbatim in Number; other
// literals beyond float64 range give token.ErrNonFiniteNumber.
func FromNumber(lit string) (*Node, error) {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return FromInt(i), nil
	}
	if isIntLiteral(lit) {
		var z big.Int
		if _, ok := z.SetString(lit, 10); !ok {
			return nil, fmt.Errorf("%w: %q", ErrNumber, lit)
		}
		return &Node{Type: NumberType, Number: z.String()}, nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %w: %q", ErrNumber, token.ErrNonFiniteNumber, lit)
		}
		return nil, fmt.Errorf("%w: %q", ErrNumber, lit)
	}
	return FromFloat(f), nil
}

func isIntLiteral(v string) bool {
	if v != "" && v[0] == '-' {
		v = v[1:]
	}
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving the order of kvs. A key that
// occurs more than once keeps the position of its first occurrence and the
// value of its last.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	index := make(map[string]int, len(kvs))
	for i := range kvs {
		res.setIndexed(index, kvs[i].Key, kvs[i].Val)
	}
	return res
}

// FieldIndex maps the fields of an object to their positions.
func FieldIndex(y *Node) map[string]int {
	res := make(map[string]int, len(y.Fields))
	for i, f := range y.Fields {
		res[f] = i
	}
	return res
}

// setIndexed is Set with index kept as the position of every field of y.
func (y *Node) setIndexed(index map[string]int, field string, val *Node) {
	if val == nil {
		val = Null()
	}
	if i, ok := index[field]; ok {
		y.Values[i] = val
		return
	}
	index[field] = len(y.Fields)
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, val)
}

// FromMap builds an object from a Go map. Go maps are unordered, so keys
// are sorted.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

// Set assigns field to val on an object node, replacing the value of an
// existing field in place.
func (y *Node) Set(field string, val *Node) {
	if val == nil {
		val = Null()
	}
	for i, f := range y.Fields {
		if f == field {
			y.Values[i] = val
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, val)
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Len is the number of fields of an object or elements of an array.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
