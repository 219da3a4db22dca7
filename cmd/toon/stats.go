package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-toon/encode"
	"github.com/signadot/tony-format/go-toon/ir"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	var rows []*ir.Node
	for _, file := range inputs(args) {
		docs, err := cfg.readDocs(file)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			rows = append(rows, layoutRows(file, doc, cfg.All, cfg.Relaxed)...)
		}
	}
	return cfg.write(cc.Out, ir.FromSlice(rows))
}

type pathNode struct {
	path string
	node *ir.Node
}

// layoutRows describes every array of doc, and with all every other node
// too, in document order. Arrays are classified as encode does with
// relaxed tables.
func layoutRows(file string, doc *ir.Node, all, relaxed bool) []*ir.Node {
	var rows []*ir.Node
	stack := []pathNode{{path: ir.Root, node: doc}}
	for len(stack) > 0 {
		pn := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := pn.node
		layout := node.Type.String()
		switch node.Type {
		case ir.ArrayType:
			layout = encode.Classify(node, encode.RelaxedTables(relaxed)).String()
			for i := len(node.Values) - 1; i >= 0; i-- {
				stack = append(stack, pathNode{path: ir.IndexPath(pn.path, i), node: node.Values[i]})
			}
		case ir.ObjectType:
			for i := len(node.Fields) - 1; i >= 0; i-- {
				stack = append(stack, pathNode{path: ir.FieldPath(pn.path, node.Fields[i]), node: node.Values[i]})
			}
		}
		if node.Type != ir.ArrayType && !all {
			continue
		}
		rows = append(rows, ir.FromKeyVals([]ir.KeyVal{
			{Key: "file", Val: ir.FromString(file)},
			{Key: "path", Val: ir.FromString(pn.path)},
			{Key: "layout", Val: ir.FromString(layout)},
			{Key: "len", Val: ir.FromInt(int64(node.Len()))},
		}))
	}
	return rows
}
