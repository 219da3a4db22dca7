package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// MarshalJSON encodes the node as JSON, keeping object field order.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := y.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) writeJSON(buf *bytes.Buffer) error {
	switch y.Type {
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := y.Values[i].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
		case y.Float64 != nil:
			d, err := json.Marshal(*y.Float64)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrNumber, err)
			}
			buf.Write(d)
		default:
			buf.WriteString(y.Number)
		}
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NullType:
		buf.WriteString("null")
	default:
		return fmt.Errorf("cannot marshal %s to json", y.Type)
	}
	return nil
}

// ToJSONAny converts the node to the value encoding/json would produce when
// decoding the same document into an any.
func ToJSONAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i]] = ToJSONAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToJSONAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts a generic Go value, such as the result of decoding JSON
// into an any, to a node. Maps are converted with sorted keys.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	case []KeyVal:
		return FromKeyVals(x), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumber(x.String())
	case float64:
		return FromFloat(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint:
		return FromNumber(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return FromNumber(strconv.FormatUint(x, 10))
	case []any:
		res := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return FromSlice(res), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		res := make([]*Node, rv.Len())
		for i := range rv.Len() {
			n, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return FromSlice(res), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrAny, rv.Type().Key())
		}
		m := make(map[string]*Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			n, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			m[iter.Key().String()] = n
		}
		return FromMap(m), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromNumber(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrAny, rv.Interface())
}

// IsFinite reports whether a number node holds a finite value. Non number
// nodes are finite.
func (y *Node) IsFinite() bool {
	if y.Type != NumberType || y.Float64 == nil {
		return true
	}
	f := *y.Float64
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
