package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/go-toon/token"
)

// Root is the path of a document root.
const Root = "$"

// FieldPath extends the path prefix with an object field. Fields which are
// not plain names are written as quoted strings.
func FieldPath(prefix, field string) string {
	if plainField(field) {
		return prefix + "." + field
	}
	return prefix + "." + token.Quote(field)
}

// IndexPath extends the path prefix with an array index.
func IndexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

func plainField(f string) bool {
	if f == "" {
		return false
	}
	for i := 0; i < len(f); i++ {
		switch c := f[i]; {
		case c == '.', c == '[', c == ']', c == '"', c < ' ':
			return false
		}
	}
	return true
}

type SegKind int

const (
	// FieldSeg is .name or ."quoted name"
	FieldSeg SegKind = iota
	// IndexSeg is [N]
	IndexSeg
	// AllSeg is [*], every element of an array.
	AllSeg
	// SubtreeSeg is "..": the rest of the path is matched from every
	// object and array at or below the current node.
	SubtreeSeg
)

type Segment struct {
	Kind  SegKind
	Field string
	Index int
}

// Path is a parsed path, relative to Root.
type Path []Segment

func (p Path) String() string {
	buf := &strings.Builder{}
	buf.WriteString(Root)
	for _, seg := range p {
		switch seg.Kind {
		case FieldSeg:
			buf.WriteString(FieldPath("", seg.Field))
		case IndexSeg:
			buf.WriteString(IndexPath("", seg.Index))
		case AllSeg:
			buf.WriteString("[*]")
		case SubtreeSeg:
			buf.WriteString("..")
		}
	}
	return buf.String()
}

// ParsePath parses paths such as $.users[0].name, $."a.b"[*] and $...id.
func ParsePath(p string) (Path, error) {
	rest, ok := strings.CutPrefix(p, Root)
	if !ok {
		return nil, fmt.Errorf("%w: %q does not start with %s", ErrPath, p, Root)
	}
	var res Path
	for rest != "" {
		seg, n, err := parseSegment(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %q at offset %d: %w", ErrPath, p, len(p)-len(rest), err)
		}
		res = append(res, seg)
		rest = rest[n:]
	}
	return res, nil
}

func parseSegment(s string) (Segment, int, error) {
	switch {
	case strings.HasPrefix(s, ".."):
		return Segment{Kind: SubtreeSeg}, 2, nil
	case strings.HasPrefix(s, `."`):
		field, n, err := token.Unquote(s[1:])
		if err != nil {
			return Segment{}, 0, err
		}
		return Segment{Kind: FieldSeg, Field: field}, n + 1, nil
	case s[0] == '.':
		n := strings.IndexAny(s[1:], ".[")
		if n == -1 {
			n = len(s) - 1
		}
		if n == 0 {
			return Segment{}, 0, fmt.Errorf("empty field")
		}
		return Segment{Kind: FieldSeg, Field: s[1 : n+1]}, n + 1, nil
	case s[0] == '[':
		end := strings.IndexByte(s, ']')
		if end == -1 {
			return Segment{}, 0, fmt.Errorf("missing ']'")
		}
		body := s[1:end]
		if body == "*" {
			return Segment{Kind: AllSeg}, end + 1, nil
		}
		i, err := strconv.ParseUint(body, 10, strconv.IntSize-1)
		if err != nil {
			return Segment{}, 0, fmt.Errorf("bad index %q", body)
		}
		return Segment{Kind: IndexSeg, Index: int(i)}, end + 1, nil
	default:
		return Segment{}, 0, fmt.Errorf("expected '.' or '['")
	}
}

// GetPath returns a copy of the node at path p, or nil if an object on the
// way lacks the field. Paths with [*] or .. match many nodes and are
// rejected; see ListPath.
func (y *Node) GetPath(p string) (*Node, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := y
	for i, seg := range path {
		switch seg.Kind {
		case FieldSeg:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: %s is %s, not an object", ErrPath, path[:i], res.Type)
			}
			res = Get(res, seg.Field)
			if res == nil {
				return nil, nil
			}
		case IndexSeg:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: %s is %s, not an array", ErrPath, path[:i], res.Type)
			}
			if seg.Index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %d out of range at %s (len %d)", ErrPath, seg.Index, path[:i], len(res.Values))
			}
			res = res.Values[seg.Index]
		default:
			return nil, fmt.Errorf("%w: %s matches many nodes", ErrPath, p)
		}
	}
	return res.Clone(), nil
}

// ListPath appends to dst a copy of every node matching p, in document
// order.
func (y *Node) ListPath(dst []*Node, p string) ([]*Node, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return y.list(dst, path), nil
}

func (y *Node) list(dst []*Node, path Path) []*Node {
	if len(path) == 0 {
		return append(dst, y.Clone())
	}
	seg, rest := path[0], path[1:]
	switch seg.Kind {
	case FieldSeg:
		if y.Type != ObjectType {
			return dst
		}
		if v := Get(y, seg.Field); v != nil {
			dst = v.list(dst, rest)
		}
	case IndexSeg:
		if y.Type == ArrayType && seg.Index < len(y.Values) {
			dst = y.Values[seg.Index].list(dst, rest)
		}
	case AllSeg:
		if y.Type != ArrayType {
			return dst
		}
		for _, v := range y.Values {
			dst = v.list(dst, rest)
		}
	case SubtreeSeg:
		y.Visit(func(n *Node, isPost bool) (bool, error) {
			if isPost || n.Type.IsLeaf() {
				return false, nil
			}
			dst = n.list(dst, rest)
			return true, nil
		})
	}
	return dst
}
