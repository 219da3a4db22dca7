package encode_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/go-toon/encode"
	"github.com/signadot/tony-format/go-toon/ir"
	"github.com/signadot/tony-format/go-toon/parse"
)

type encodeTest struct {
	in   string
	opts []encode.EncodeOption
	out  string
}

var encodeTests = []encodeTest{
	{
		in:  `[{"id":1,"name":"Alice","active":true},{"id":2,"name":"Bob","active":false}]`,
		out: "[2]{id,name,active}:\n  1,Alice,true\n  2,Bob,false",
	},
	{
		in:  `{"cache":{"enabled":true,"ttl":3600}}`,
		out: "cache:\n  enabled: true\n  ttl: 3600",
	},
	{
		in:  `[{"id":1,"note":"a,b"}]`,
		out: "[1]{id,note}:\n  1,\"a,b\"",
	},
	{
		in:  `[{"id":1,"role":"admin"},{"id":2,"department":"Eng"}]`,
		out: "[2]:\n  - id: 1\n    role: admin\n  - id: 2\n    department: Eng",
	},
	{
		in:  `{"users":[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}]}`,
		out: "users[2]{id,name}:\n  1,Alice\n  2,Bob",
	},
	{
		in:  `[{"a":1,"b":2},{"b":3,"a":4}]`,
		out: "[2]{a,b}:\n  1,2\n  4,3",
	},
	{
		in:  `{"tags":["a","b","c"]}`,
		out: "tags[3]: a,b,c",
	},
	{
		in:  `{"mixed":[1,"x",null,true,2.5]}`,
		out: "mixed[5]: 1,x,null,true,2.5",
	},
	{
		in:  `{"items":[]}`,
		out: "items[0]:",
	},
	{
		in:  `{"meta":{}}`,
		out: "meta:",
	},
	{
		in:  `{}`,
		out: "",
	},
	{
		in:  `[]`,
		out: "[0]:",
	},
	{
		in:  `42`,
		out: "42",
	},
	{
		in:  `"hello world"`,
		out: "hello world",
	},
	{
		in:  `"true"`,
		out: `"true"`,
	},
	{
		in:  `""`,
		out: `""`,
	},
	{
		in:  `null`,
		out: "null",
	},
	{
		in:  `[[1,2],[3]]`,
		out: "[2]:\n  - [2]: 1,2\n  - [1]: 3",
	},
	{
		in:  `{"m":[[],[[1]]]}`,
		out: "m[2]:\n  - [0]:\n  - [1]:\n      - [1]: 1",
	},
	{
		in:  `[{},1]`,
		out: "[2]:\n  -\n  - 1",
	},
	{
		in:  `{"a":[{"b":1,"c":[1,2]}]}`,
		out: "a[1]:\n  - b: 1\n    c[2]: 1,2",
	},
	{
		in:  `[{"x":{"y":1}}]`,
		out: "[1]:\n  - x:\n      y: 1",
	},
	{
		in:  `[{"t":[{"k":1},{"k":2}],"n":0}]`,
		out: "[1]:\n  - t[2]{k}:\n      1\n      2\n    n: 0",
	},
	{
		in:  `[1,{"a":1},[2]]`,
		out: "[3]:\n  - 1\n  - a: 1\n  - [1]: 2",
	},
	{
		in:  `{"a":1.50,"b":-0.0,"c":1e3,"d":123456789012345678901234,"e":0.000001}`,
		out: "a: 1.5\nb: 0\nc: 1000\nd: 123456789012345678901234\ne: 0.000001",
	},
	{
		in:  `{"a b":1,"x:y":2,"":3,"[k]":4,"c,d":5}`,
		out: "a b: 1\n\"x:y\": 2\n\"\": 3\n\"[k]\": 4\n\"c,d\": 5",
	},
	{
		in:  `{"s":" pad","n":"1.5","m":"line\nbreak","h":"-","q":"say \"hi\"","b":"a\\b","u":"héllo"}`,
		out: "s: \" pad\"\nn: \"1.5\"\nm: \"line\\nbreak\"\nh: -\nq: \"say \\\"hi\\\"\"\nb: a\\b\nu: héllo",
	},
	{
		in:   `{"t":[{"a":"x,y","b":"p|q"}]}`,
		opts: []encode.EncodeOption{encode.Delimiter('|')},
		out:  "t[1]{a,b}:\n  x,y|\"p|q\"",
	},
	{
		in:   `[1,"a b",3]`,
		opts: []encode.EncodeOption{encode.Delimiter('\t')},
		out:  "[3]: 1\ta b\t3",
	},
	{
		in:   `{"a":{"b":[1,2]}}`,
		opts: []encode.EncodeOption{encode.Indent(4)},
		out:  "a:\n    b[2]: 1,2",
	},
	{
		in:   `[{"x":1}]`,
		opts: []encode.EncodeOption{encode.Indent(1)},
		out:  "[1]{x}:\n 1",
	},
	{
		in:   `{"users":[{"id":1,"role":"admin"},{"id":2}]}`,
		opts: []encode.EncodeOption{encode.Indent(4)},
		out:  "users[2]:\n    - id: 1\n      role: admin\n    - id: 2",
	},
	{
		in:   `[{"a":1,"b":{"c":[1,2],"d":{"e":3}}},[{"x":1},{"x":2}]]`,
		opts: []encode.EncodeOption{encode.Indent(4)},
		out: "[2]:\n    - a: 1\n      b:\n          c[2]: 1,2\n          d:\n              e: 3\n" +
			"    - [2]{x}:\n          1\n          2",
	},
	{
		in:   `[{"a":1,"b":2},{"a":3}]`,
		opts: []encode.EncodeOption{encode.Indent(1)},
		out:  "[2]:\n - a: 1\n   b: 2\n - a: 3",
	},
	{
		in:  `[{"a":1,"b":2,"c":3},{"c":6,"a":4,"b":5},{"a":7,"c":9,"b":8}]`,
		out: "[3]{a,b,c}:\n  1,2,3\n  4,5,6\n  7,8,9",
	},
	{
		in:  `[{"a":1,"b":2},{"a":3}]`,
		out: "[2]:\n  - a: 1\n    b: 2\n  - a: 3",
	},
	{
		in:   `[{"a":1,"b":2},{"a":3}]`,
		opts: []encode.EncodeOption{encode.RelaxedTables(true)},
		out:  "[2]{a,b}:\n  1,2\n  3,\"\"",
	},
	{
		in:   `[{"a":1},{"a":3,"b":2}]`,
		opts: []encode.EncodeOption{encode.RelaxedTables(true)},
		out:  "[2]:\n  - a: 1\n  - a: 3\n    b: 2",
	},
}

func TestEncode(t *testing.T) {
	for i, et := range encodeTests {
		node, err := parse.Parse([]byte(et.in))
		if err != nil {
			t.Fatalf("%d %s: %v", i, et.in, err)
		}
		out, err := encode.EncodeString(node, et.opts...)
		if err != nil {
			t.Errorf("%d %s: %v", i, et.in, err)
			continue
		}
		if out != et.out {
			t.Errorf("%d %s: got\n%s\nwant\n%s", i, et.in, out, et.out)
		}
	}
}

func TestEncodeDoesNotMutate(t *testing.T) {
	in := `{"rows":[{"b":1,"a":2},{"a":3,"b":4}],"deep":[[{"x":[]}]]}`
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	before := node.Clone()
	first := encode.MustString(node)
	second := encode.MustString(node)
	if first != second {
		t.Errorf("encoding differs between calls:\n%s\n---\n%s", first, second)
	}
	if diff := cmp.Diff(before, node); diff != "" {
		t.Errorf("input modified by encoding (-before +after):\n%s", diff)
	}
}

func TestEncodeNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		node := ir.FromKeyVals([]ir.KeyVal{
			{Key: "ok", Val: ir.FromInt(1)},
			{Key: "rows", Val: ir.FromSlice([]*ir.Node{
				ir.FromKeyVals([]ir.KeyVal{{Key: "price", Val: ir.FromFloat(f)}}),
			})},
		})
		buf := &bytes.Buffer{}
		err := encode.Encode(node, buf)
		if !errors.Is(err, encode.ErrNonFiniteNumber) {
			t.Errorf("%v: got %v, want ErrNonFiniteNumber", f, err)
			continue
		}
		if !strings.Contains(err.Error(), "$.rows[0].price") {
			t.Errorf("%v: error %q does not locate the value", f, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%v: partial output written: %q", f, buf.String())
		}
	}
}

func nest(n int) *ir.Node {
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	for i := 1; i < n; i++ {
		node = ir.FromSlice([]*ir.Node{node})
	}
	return node
}

func TestEncodeMaxDepth(t *testing.T) {
	if _, err := encode.EncodeString(nest(10), encode.MaxDepth(5)); !errors.Is(err, encode.ErrExcessiveDepth) {
		t.Errorf("got %v, want ErrExcessiveDepth", err)
	}
	if _, err := encode.EncodeString(nest(3), encode.MaxDepth(5)); err != nil {
		t.Errorf("nest(3): %v", err)
	}
	obj, err := parse.Parse([]byte(`{"a":{"b":1}}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := encode.EncodeString(obj, encode.MaxDepth(1)); !errors.Is(err, encode.ErrExcessiveDepth) {
		t.Errorf("got %v, want ErrExcessiveDepth", err)
	}
	if _, err := encode.EncodeString(obj, encode.MaxDepth(2)); err != nil {
		t.Errorf("depth 2: %v", err)
	}
	// far deeper than the default bound, without exhausting the goroutine stack
	if _, err := encode.EncodeString(nest(100000)); !errors.Is(err, encode.ErrExcessiveDepth) {
		t.Errorf("got %v, want ErrExcessiveDepth", err)
	}
}

func TestEncodeDeep(t *testing.T) {
	n := 1000
	out, err := encode.EncodeString(nest(n), encode.MaxDepth(n), encode.Indent(1))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != n {
		t.Fatalf("got %d lines, want %d", len(lines), n)
	}
	if last := strings.TrimSpace(lines[n-1]); last != "- [1]: 1" {
		t.Errorf("innermost line %q", last)
	}
}

func TestEncodeInvalidOptions(t *testing.T) {
	optSets := [][]encode.EncodeOption{
		{encode.Delimiter(':')},
		{encode.Delimiter('"')},
		{encode.Delimiter('\n')},
		{encode.Delimiter('a')},
		{encode.Delimiter('7')},
		{encode.Delimiter('-')},
		{encode.Indent(0)},
		{encode.Indent(-2)},
		{encode.MaxDepth(0)},
	}
	node := ir.FromInt(1)
	for i, opts := range optSets {
		buf := &bytes.Buffer{}
		err := encode.Encode(node, buf, opts...)
		if !errors.Is(err, encode.ErrInvalidOptions) {
			t.Errorf("%d: got %v, want ErrInvalidOptions", i, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%d: output written", i)
		}
	}
	for _, r := range []rune{',', '\t', '|', ';'} {
		if _, err := encode.EncodeString(node, encode.Delimiter(r)); err != nil {
			t.Errorf("delimiter %q: %v", r, err)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	brackets := func(v string, _ ...any) string { return "<" + v + ">" }
	colors := &encode.Colors{
		Default: func(v string, _ ...any) string { return v },
		Map: map[encode.Colorable]func(string, ...any) string{
			{Type: ir.NumberType, Attr: encode.ValueColor}: brackets,
			{Type: ir.ObjectType, Attr: encode.FieldColor}: brackets,
		},
	}
	node, err := parse.Parse([]byte(`{"a":1,"b":[2,"x"]}`))
	if err != nil {
		t.Fatal(err)
	}
	out := encode.MustString(node, encode.EncodeColors(colors))
	want := "<a>: <1>\n<b>[2]: <2>,x"
	if out != want {
		t.Errorf("got %q want %q", out, want)
	}
	if plain := encode.MustString(node, encode.EncodeColors(colors), encode.EncodeColors(nil)); plain != "a: 1\nb[2]: 2,x" {
		t.Errorf("colors not cleared: %q", plain)
	}
}

func TestEncodeConcurrent(t *testing.T) {
	node, err := parse.Parse([]byte(`{"rows":[{"a":"x|y","b":"p,q"},{"a":"1","b":2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	optSets := [][]encode.EncodeOption{
		nil,
		{encode.Delimiter('|')},
		{encode.Delimiter('\t'), encode.Indent(4)},
	}
	want := make([]string, len(optSets))
	for i, opts := range optSets {
		want[i] = encode.MustString(node, opts...)
	}
	var wg sync.WaitGroup
	errs := make(chan string, 100)
	for g := range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			i := g % len(optSets)
			got, err := encode.EncodeString(node, optSets[i]...)
			if err != nil {
				errs <- err.Error()
				return
			}
			if got != want[i] {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
