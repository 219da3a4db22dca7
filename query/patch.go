package query

import (
	"fmt"
	"slices"

	"github.com/signadot/tony-format/go-toon/debug"
	"github.com/signadot/tony-format/go-toon/ir"
	"github.com/signadot/tony-format/go-toon/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies the JSON patch held by patch, an array of operation
// objects, to doc. doc is not modified.
func ApplyPatch(doc, patch *ir.Node) (*ir.Node, error) {
	if patch.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: patch is %s, not an array of operations", ErrPatch, patch.Type)
	}
	d, err := patch.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Query() {
		debug.Logf("applying %d patch operations\n", len(ops))
	}
	d, err = doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	restoreOrder(doc, res)
	return res, nil
}

// restoreOrder reorders the fields of objects in res so that those also
// present in orig come first, in orig's order. Arrays are matched element
// by element only when their lengths agree.
func restoreOrder(orig, res *ir.Node) {
	switch {
	case orig.Type == ir.ObjectType && res.Type == ir.ObjectType:
		pos := make(map[string]int, len(orig.Fields))
		for i, f := range orig.Fields {
			pos[f] = i
		}
		kept := make([]ir.KeyVal, 0, len(res.Fields))
		added := make([]ir.KeyVal, 0)
		for i, f := range res.Fields {
			kv := ir.KeyVal{Key: f, Val: res.Values[i]}
			j, ok := pos[f]
			if !ok {
				added = append(added, kv)
				continue
			}
			restoreOrder(orig.Values[j], kv.Val)
			kept = append(kept, kv)
		}
		slices.SortFunc(kept, func(a, b ir.KeyVal) int {
			return pos[a.Key] - pos[b.Key]
		})
		kvs := append(kept, added...)
		for i := range kvs {
			res.Fields[i] = kvs[i].Key
			res.Values[i] = kvs[i].Val
		}
	case orig.Type == ir.ArrayType && res.Type == ir.ArrayType:
		if len(orig.Values) != len(res.Values) {
			return
		}
		for i := range orig.Values {
			restoreOrder(orig.Values[i], res.Values[i])
		}
	}
}
