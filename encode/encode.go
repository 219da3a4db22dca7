package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/go-toon/debug"
	"github.com/signadot/tony-format/go-toon/ir"
	"github.com/signadot/tony-format/go-toon/token"
)

type EncState struct {
	delim    rune
	indent   int
	maxDepth int
	relaxed  bool

	Color func(ir.Type, ColorAttr, string) string

	lines []string
	// column of a pending list item marker, -1 if none
	marker int
}

// frame is a unit of pending work: a node to render at an indentation
// column, possibly under an object key or as a list item.
type frame struct {
	node  *ir.Node
	path  string
	col   int
	level int
	key   string
	keyed bool
	item  bool
	// closes a list item which produced no line
	endItem bool
}

// Encode writes node in TOON notation to w. Nothing is written if encoding
// fails. The output has no trailing newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	if err := es.check(); err != nil {
		return err
	}
	if err := es.run(node); err != nil {
		return err
	}
	return writeLines(w, es.lines)
}

// EncodeString returns node in TOON notation.
func EncodeString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (es *EncState) check() error {
	if err := token.CheckDelimiter(es.delim); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if es.indent < 1 {
		return fmt.Errorf("%w: indent %d < 1", ErrInvalidOptions, es.indent)
	}
	if es.maxDepth < 1 {
		return fmt.Errorf("%w: max depth %d < 1", ErrInvalidOptions, es.maxDepth)
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for i, ln := range lines {
		if i > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := writeString(w, ln); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) run(root *ir.Node) error {
	stack := []frame{{node: root, path: ir.Root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.endItem {
			if es.marker >= 0 {
				es.emit(0, "")
			}
			continue
		}
		if f.item {
			es.marker = f.col - 2
		}
		var err error
		switch f.node.Type {
		case ir.ObjectType:
			stack, err = es.encodeObject(f, stack)
		case ir.ArrayType:
			stack, err = es.encodeArray(f, stack)
		default:
			err = es.encodeScalar(f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Line emission

func (es *EncState) emit(col int, s string) {
	var ln string
	if es.marker >= 0 {
		ln = es.pad(es.marker) + es.paint(ir.ArrayType, MarkerColor, "-")
		if s != "" {
			ln += " " + s
		}
		es.marker = -1
	} else {
		ln = es.pad(col) + s
	}
	es.lines = append(es.lines, ln)
}

func (es *EncState) pad(col int) string {
	return strings.Repeat(" ", col)
}

func (es *EncState) paint(t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func (es *EncState) field(t ir.Type, k string) string {
	return es.paint(t, FieldColor, token.QuoteKey(k, es.delim))
}

func (es *EncState) colon(t ir.Type) string {
	return es.paint(t, SepColor, ":")
}

func (es *EncState) children(f frame) (int, error) {
	level := f.level + 1
	if level > es.maxDepth {
		return 0, fmt.Errorf("%w: nesting exceeds %d at %s", ErrExcessiveDepth, es.maxDepth, f.path)
	}
	return level, nil
}

// Objects

func (es *EncState) encodeObject(f frame, stack []frame) ([]frame, error) {
	node := f.node
	col := f.col
	if f.keyed {
		es.emit(col, es.field(ir.ObjectType, f.key)+es.colon(ir.ObjectType))
		col += es.indent
	}
	n := len(node.Fields)
	if n == 0 {
		return stack, nil
	}
	level, err := es.children(f)
	if err != nil {
		return nil, err
	}
	for i := n - 1; i >= 0; i-- {
		stack = append(stack, frame{
			node:  node.Values[i],
			path:  ir.FieldPath(f.path, node.Fields[i]),
			col:   col,
			level: level,
			key:   node.Fields[i],
			keyed: true,
		})
	}
	return stack, nil
}

// Arrays

func (es *EncState) encodeArray(f frame, stack []frame) ([]frame, error) {
	node := f.node
	n := len(node.Values)
	kind := classify(node, es.relaxed)
	if debug.Classify() {
		debug.Logf("classify %s: %s (%d elements)\n", f.path, kind, n)
	}
	prefix := ""
	if f.keyed {
		prefix = es.field(ir.ObjectType, f.key)
	}
	count := es.paint(ir.ArrayType, HeaderColor, "["+strconv.Itoa(n)+"]")

	switch kind {
	case Empty:
		es.emit(f.col, prefix+count+es.colon(ir.ArrayType))
		return stack, nil

	case Primitive:
		cells, err := es.cells(node.Values, f.path)
		if err != nil {
			return nil, err
		}
		es.emit(f.col, prefix+count+es.colon(ir.ArrayType)+" "+es.join(cells))
		return stack, nil

	case Uniform:
		if _, err := es.children(f); err != nil {
			return nil, err
		}
		fields := TableFields(node)
		rows := make([]string, n)
		for i, elt := range node.Values {
			row, err := es.row(elt, fields, ir.IndexPath(f.path, i))
			if err != nil {
				return nil, err
			}
			rows[i] = row
		}
		es.emit(f.col, prefix+count+es.header(fields)+es.colon(ir.ArrayType))
		for _, row := range rows {
			es.emit(f.col+es.indent, row)
		}
		return stack, nil

	default:
		level, err := es.children(f)
		if err != nil {
			return nil, err
		}
		es.emit(f.col, prefix+count+es.colon(ir.ArrayType))
		// item content lines up after the "- " marker
		col := f.col + es.indent + 2
		for i := n - 1; i >= 0; i-- {
			stack = append(stack,
				frame{endItem: true},
				frame{
					node:  node.Values[i],
					path:  ir.IndexPath(f.path, i),
					col:   col,
					level: level,
					item:  true,
				})
		}
		return stack, nil
	}
}

func (es *EncState) header(fields []string) string {
	qs := make([]string, len(fields))
	for i, fld := range fields {
		qs[i] = es.field(ir.ArrayType, fld)
	}
	sep := es.paint(ir.ArrayType, SepColor, string(token.FieldSep))
	return "{" + strings.Join(qs, sep) + "}"
}

func (es *EncState) row(obj *ir.Node, fields []string, path string) (string, error) {
	cells := make([]string, len(fields))
	var index map[string]int
	for i, fld := range fields {
		var v *ir.Node
		switch {
		case i < len(obj.Fields) && obj.Fields[i] == fld:
			v = obj.Values[i]
		default:
			// keys in another order than the header
			if index == nil {
				index = ir.FieldIndex(obj)
			}
			if j, ok := index[fld]; ok {
				v = obj.Values[j]
			}
		}
		if v == nil {
			cells[i] = es.paint(ir.StringType, ValueColor, token.Quote(""))
			continue
		}
		lit, err := es.literal(v, ir.FieldPath(path, fld))
		if err != nil {
			return "", err
		}
		cells[i] = lit
	}
	return es.join(cells), nil
}

func (es *EncState) cells(vals []*ir.Node, path string) ([]string, error) {
	res := make([]string, len(vals))
	for i, v := range vals {
		lit, err := es.literal(v, ir.IndexPath(path, i))
		if err != nil {
			return nil, err
		}
		res[i] = lit
	}
	return res, nil
}

func (es *EncState) join(cells []string) string {
	return strings.Join(cells, es.paint(ir.ArrayType, SepColor, string(es.delim)))
}

// Scalars

func (es *EncState) encodeScalar(f frame) error {
	lit, err := es.literal(f.node, f.path)
	if err != nil {
		return err
	}
	if f.keyed {
		es.emit(f.col, es.field(ir.ObjectType, f.key)+es.colon(ir.ObjectType)+" "+lit)
		return nil
	}
	es.emit(f.col, lit)
	return nil
}

func (es *EncState) literal(node *ir.Node, path string) (string, error) {
	var v string
	switch node.Type {
	case ir.NullType:
		v = "null"
	case ir.BoolType:
		v = strconv.FormatBool(node.Bool)
	case ir.NumberType:
		var err error
		v, err = formatNumber(node)
		if err != nil {
			return "", fmt.Errorf("%w at %s", err, path)
		}
	case ir.StringType:
		v = token.QuoteScalar(node.String, es.delim)
	default:
		return "", fmt.Errorf("%w: %s is not a scalar at %s", ErrEncoding, node.Type, path)
	}
	return es.paint(node.Type, ValueColor, v), nil
}

func formatNumber(node *ir.Node) (string, error) {
	switch {
	case node.Int64 != nil:
		return token.FormatInt(*node.Int64), nil
	case node.Float64 != nil:
		return token.FormatFloat(*node.Float64)
	default:
		return token.CanonicalNumber(node.Number)
	}
}
