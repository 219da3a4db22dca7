package query

import (
	"fmt"

	"github.com/signadot/tony-format/go-toon/debug"
	"github.com/signadot/tony-format/go-toon/ir"

	"github.com/expr-lang/expr"
)

// Env is the environment a selection is evaluated in.
type Env map[string]any

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return res, nil
		},
			new(func(string) *ir.Node)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			return res, nil
		},
			new(func(string) []*ir.Node)),
	}
}

func newEnv(doc *ir.Node) Env {
	jAny := ir.ToJSONAny(doc)
	env := Env{}
	if m, ok := jAny.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["doc"] = jAny
	return env
}

// Select evaluates src against doc and returns the result as a node. A
// result which is nil or a missing path gives a null node.
func Select(doc *ir.Node, src string) (*ir.Node, error) {
	env := newEnv(doc)
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if debug.Query() {
		debug.Logf("query %q returned %T\n", src, res)
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrQuery, src, err)
	}
	return node, nil
}
