package gomap

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/signadot/tony-format/go-toon/encode"
	"github.com/signadot/tony-format/go-toon/ir"
)

type base struct {
	ID int `json:"id"`
}

type Row struct {
	base
	Name    string  `toon:"name"`
	Score   float64 `json:"score,omitempty"`
	Skip    string  `toon:"-"`
	private int
	Plain   bool
}

type Temp float64

func (t Temp) ToIR() (*ir.Node, error) {
	return ir.FromString(strconv.FormatFloat(float64(t), 'f', -1, 64) + "C"), nil
}

type level struct {
	Name string `toon:"name"`
}

func (l *level) MarshalText() ([]byte, error) {
	return []byte(strings.ToUpper(l.Name)), nil
}

type cyclic struct {
	Next *cyclic `toon:"next"`
}

func TestToTOONRows(t *testing.T) {
	rows := []Row{
		{base: base{ID: 1}, Name: "a", Score: 1.5, Skip: "x", private: 3, Plain: true},
		{base: base{ID: 2}, Name: "b,c", Score: 2},
	}
	d, err := ToTOON(rows)
	if err != nil {
		t.Fatal(err)
	}
	want := "[2]{id,name,score,Plain}:\n  1,a,1.5,true\n  2,\"b,c\",2,false"
	if string(d) != want {
		t.Errorf("got\n%s\nwant\n%s", d, want)
	}
	rows[1].Score = 0
	d, err = ToTOON(rows, encode.Delimiter('|'))
	if err != nil {
		t.Fatal(err)
	}
	want = "[2]:\n  - id: 1\n    name: a\n    score: 1.5\n    Plain: true\n  - id: 2\n    name: b,c\n    Plain: false"
	if string(d) != want {
		t.Errorf("omitempty: got\n%s\nwant\n%s", d, want)
	}
}

func TestToIRValues(t *testing.T) {
	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var nilPtr *Row
	v := map[string]any{
		"when":   when,
		"bytes":  []byte("hi"),
		"nil":    nilPtr,
		"big":    uint64(1 << 63),
		"ints":   map[int]string{2: "b", 10: "a"},
		"arr":    [2]int8{-1, 1},
		"level":  &level{Name: "warn"},
		"nested": []any{1, "x", nil},
	}
	node, err := ToIR(v)
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(node)
	want := strings.Join([]string{
		"arr[2]: -1,1",
		"big: 9223372036854775808",
		"bytes: aGk=",
		"ints:",
		"  \"10\": a",
		"  \"2\": b",
		"level: WARN",
		"nested[3]: 1,x,null",
		"nil: null",
		"when: \"2024-01-02T03:04:05Z\"",
	}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestToIRMarshaler(t *testing.T) {
	node, err := ToIR(struct {
		T Temp `toon:"t"`
	}{T: 21.5})
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node); got != "t: 21.5C" {
		t.Errorf("got %q", got)
	}
}

func TestToIRErrors(t *testing.T) {
	c := &cyclic{}
	c.Next = c
	_, err := ToIR(c)
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("got %v, want a MarshalError", err)
	}
	if me.FieldPath != "$.next" {
		t.Errorf("path %q", me.FieldPath)
	}
	if _, err := ToIR(map[string]any{"f": func() {}}); !errors.As(err, &me) {
		t.Errorf("func value: got %v", err)
	}
	if _, err := ToIR(map[[2]int]int{{1, 2}: 3}); !errors.As(err, &me) {
		t.Errorf("array key: got %v", err)
	}
}
