package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/tony-format/go-toon/ir"
)

func parseYAML(r io.Reader) ([]*ir.Node, error) {
	// repeated keys resolve in FromKeyVals, last write wins
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey())
	var docs []*ir.Node
	for {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, wrapErr(err)
		}
		node, err := fromYAML(v)
		if err != nil {
			return nil, err
		}
		docs = append(docs, node)
	}
}

// fromYAML converts a decoded YAML value. Mappings arrive as yaml.MapSlice
// so their order survives; non string keys are written with fmt.
func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(x))
		for i := range x {
			val, err := fromYAML(x[i].Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: yamlKey(x[i].Key), Val: val}
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			val, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			m[k] = val
		}
		return ir.FromMap(m), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			val, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	default:
		node, err := ir.FromAny(x)
		if err != nil {
			// timestamps and other tagged scalars
			return ir.FromString(fmt.Sprint(x)), nil
		}
		return node, nil
	}
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	if k == nil {
		return "null"
	}
	return fmt.Sprint(k)
}
