package gomap

import (
	"bytes"
	"encoding"
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/signadot/tony-format/go-toon/encode"
	"github.com/signadot/tony-format/go-toon/ir"
)

// IRMarshaler is implemented by types which convert themselves to IR.
type IRMarshaler interface {
	ToIR() (*ir.Node, error)
}

// ToTOON converts a Go value to TOON text.
func ToTOON(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToIR converts a Go value to an IR node.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	if node, ok := v.(*ir.Node); ok {
		if node == nil {
			return ir.Null(), nil
		}
		return node.Clone(), nil
	}
	visited := make(map[uintptr]string)
	return toIRValue(reflect.ValueOf(v), ir.Root, visited)
}

var (
	irMarshalerType   = reflect.TypeFor[IRMarshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// marshaler returns the result of a ToIR or MarshalText method of val,
// with ok false when there is none.
func marshaler(val reflect.Value, path string) (node *ir.Node, ok bool, err error) {
	if !val.CanInterface() {
		return nil, false, nil
	}
	if !val.Type().Implements(irMarshalerType) && val.CanAddr() && val.Addr().Type().Implements(irMarshalerType) {
		val = val.Addr()
	}
	if val.Type().Implements(irMarshalerType) {
		if val.Kind() == reflect.Pointer && val.IsNil() {
			return ir.Null(), true, nil
		}
		node, err := val.Interface().(IRMarshaler).ToIR()
		if err != nil {
			return nil, true, &MarshalError{FieldPath: path, Message: "ToIR failed", Err: err}
		}
		if node == nil {
			node = ir.Null()
		}
		return node, true, nil
	}
	if !val.Type().Implements(textMarshalerType) && val.CanAddr() && val.Addr().Type().Implements(textMarshalerType) {
		val = val.Addr()
	}
	if val.Type().Implements(textMarshalerType) {
		if val.Kind() == reflect.Pointer && val.IsNil() {
			return ir.Null(), true, nil
		}
		text, err := val.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, true, &MarshalError{FieldPath: path, Message: "MarshalText failed", Err: err}
		}
		return ir.FromString(string(text)), true, nil
	}
	return nil, false, nil
}

func circular(path, prev string) error {
	return &MarshalError{
		FieldPath: path,
		Message:   fmt.Sprintf("circular reference detected (previously seen at %s)", prev),
	}
}

func toIRValue(val reflect.Value, path string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	if node, ok, err := marshaler(val, path); ok {
		return node, err
	}
	switch val.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			return ir.Null(), nil
		}
		ptr := val.Pointer()
		if prev, seen := visited[ptr]; seen {
			return nil, circular(path, prev)
		}
		visited[ptr] = path
		defer delete(visited, ptr)
		return toIRValue(val.Elem(), path, visited)

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toIRValue(val.Elem(), path, visited)

	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u <= math.MaxInt64 {
			return ir.FromInt(int64(u)), nil
		}
		return &ir.Node{Type: ir.NumberType, Number: strconv.FormatUint(u, 10)}, nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice:
		if val.IsNil() {
			return ir.Null(), nil
		}
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return ir.FromString(base64.StdEncoding.EncodeToString(val.Bytes())), nil
		}
		ptr := val.Pointer()
		// empty slices may share a zero-size allocation
		if prev, seen := visited[ptr]; seen && val.Len() > 0 {
			return nil, circular(path, prev)
		}
		visited[ptr] = path
		defer delete(visited, ptr)
		return toIRSlice(val, path, visited)

	case reflect.Array:
		return toIRSlice(val, path, visited)

	case reflect.Map:
		return toIRMap(val, path, visited)

	case reflect.Struct:
		return toIRStruct(val, path, visited)

	default:
		return nil, &MarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("unsupported type: %s", val.Type()),
		}
	}
}

func toIRSlice(val reflect.Value, path string, visited map[uintptr]string) (*ir.Node, error) {
	n := val.Len()
	elts := make([]*ir.Node, n)
	for i := range n {
		elt, err := toIRValue(val.Index(i), ir.IndexPath(path, i), visited)
		if err != nil {
			return nil, err
		}
		elts[i] = elt
	}
	return ir.FromSlice(elts), nil
}

func toIRMap(val reflect.Value, path string, visited map[uintptr]string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Null(), nil
	}
	ptr := val.Pointer()
	if prev, seen := visited[ptr]; seen {
		return nil, circular(path, prev)
	}
	visited[ptr] = path
	defer delete(visited, ptr)

	res := make(map[string]*ir.Node, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key(), path)
		if err != nil {
			return nil, err
		}
		node, err := toIRValue(iter.Value(), ir.FieldPath(path, key), visited)
		if err != nil {
			return nil, err
		}
		res[key] = node
	}
	return ir.FromMap(res), nil
}

func mapKey(k reflect.Value, path string) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		d, err := tm.MarshalText()
		if err != nil {
			return "", &MarshalError{FieldPath: path, Message: "map key MarshalText failed", Err: err}
		}
		return string(d), nil
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	return "", &MarshalError{
		FieldPath: path,
		Message:   fmt.Sprintf("unsupported map key type: %s", k.Type()),
	}
}

// toIRStruct converts a struct to an object with its fields in declaration
// order. Embedded structs are flattened; a name already present is an error.
func toIRStruct(val reflect.Value, path string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()
	res := ir.FromKeyVals(nil)
	for i := range typ.NumField() {
		field := typ.Field(i)
		fieldVal := val.Field(i)
		if field.Anonymous {
			if fieldVal.Kind() == reflect.Pointer {
				if fieldVal.IsNil() {
					continue
				}
				fieldVal = fieldVal.Elem()
			}
			if fieldVal.Kind() == reflect.Struct && parseFieldTag(field).name == field.Name {
				emb, err := toIRValue(fieldVal, path, visited)
				if err != nil {
					return nil, err
				}
				if emb.Type != ir.ObjectType {
					continue
				}
				for j, name := range emb.Fields {
					if ir.Get(res, name) != nil {
						return nil, &MarshalError{
							FieldPath: path,
							Message:   fmt.Sprintf("field name conflict: embedded field %q", name),
						}
					}
					res.Set(name, emb.Values[j])
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		tag := parseFieldTag(field)
		if tag.omit || (tag.omitEmpty && fieldVal.IsZero()) {
			continue
		}
		node, err := toIRValue(fieldVal, ir.FieldPath(path, tag.name), visited)
		if err != nil {
			return nil, err
		}
		res.Set(tag.name, node)
	}
	return res, nil
}
