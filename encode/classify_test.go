package encode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/go-toon/ir"
)

func obj(kvs ...any) *ir.Node {
	res := make([]ir.KeyVal, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		res = append(res, ir.KeyVal{Key: kvs[i].(string), Val: kvs[i+1].(*ir.Node)})
	}
	return ir.FromKeyVals(res)
}

func arr(vals ...*ir.Node) *ir.Node {
	return ir.FromSlice(vals)
}

func TestClassify(t *testing.T) {
	one, two := ir.FromInt(1), ir.FromInt(2)
	tests := []struct {
		name string
		arr  *ir.Node
		kind Kind
	}{
		{"empty", arr(), Empty},
		{"scalars", arr(one, ir.FromString("x"), ir.Null(), ir.FromBool(false)), Primitive},
		{"single scalar", arr(one), Primitive},
		{"same keys", arr(obj("a", one, "b", two), obj("a", two, "b", one)), Uniform},
		{"same keys other order", arr(obj("a", one, "b", two), obj("b", one, "a", two)), Uniform},
		{"different keys", arr(obj("a", one), obj("b", one)), Heterogeneous},
		{"fewer keys", arr(obj("a", one, "b", two), obj("a", one)), Heterogeneous},
		{"more keys", arr(obj("a", one), obj("a", one, "b", two)), Heterogeneous},
		{"empty objects", arr(obj(), obj()), Heterogeneous},
		{"object cell", arr(obj("a", obj("b", one))), Heterogeneous},
		{"array cell", arr(obj("a", arr(one))), Heterogeneous},
		{"arrays", arr(arr(one), arr()), Nested},
		{"objects and scalars", arr(obj("a", one), one), Heterogeneous},
		{"arrays and scalars", arr(arr(one), one), Heterogeneous},
	}
	for _, tc := range tests {
		if got := Classify(tc.arr); got != tc.kind {
			t.Errorf("%s: got %s want %s", tc.name, got, tc.kind)
		}
	}
}

func TestClassifyRelaxed(t *testing.T) {
	one := ir.FromInt(1)
	superset := arr(obj("a", one, "b", one), obj("a", one), obj("b", one))
	if got := Classify(superset, RelaxedTables(true)); got != Uniform {
		t.Errorf("superset first: got %s", got)
	}
	if got := Classify(superset, RelaxedTables(false)); got != Heterogeneous {
		t.Errorf("strict superset first: got %s", got)
	}
	subset := arr(obj("a", one), obj("a", one, "b", one))
	if got := classify(subset, true); got != Heterogeneous {
		t.Errorf("subset first: got %s", got)
	}
	withEmpty := arr(obj("a", one), obj())
	if got := classify(withEmpty, true); got != Uniform {
		t.Errorf("empty later element: got %s", got)
	}
}

func TestClassifyPure(t *testing.T) {
	a := arr(obj("x", ir.FromInt(1), "y", ir.FromString("s")), obj("y", ir.FromString("t"), "x", ir.FromInt(2)))
	before := a.Clone()
	for range 3 {
		if got := Classify(a); got != Uniform {
			t.Fatalf("got %s", got)
		}
	}
	if diff := cmp.Diff(before, a); diff != "" {
		t.Errorf("array modified (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "y"}, TableFields(a)); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{
		Empty:         "empty",
		Uniform:       "uniform",
		Primitive:     "primitive",
		Nested:        "nested",
		Heterogeneous: "heterogeneous",
		Kind(99):      "<unknown kind>",
	}
	for k, want := range names {
		if got := k.String(); got != want {
			t.Errorf("%d: got %q want %q", int(k), got, want)
		}
	}
}
