package encode_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/tony-format/go-toon/encode"
	"github.com/signadot/tony-format/go-toon/format"
	"github.com/signadot/tony-format/go-toon/parse"
)

func TestGolden(t *testing.T) {
	inputs, err := filepath.Glob("testdata/*.*")
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, in := range inputs {
		f := format.FromSuffix(in)
		if !f.CanRead() || strings.HasSuffix(in, ".toon") {
			continue
		}
		n++
		t.Run(filepath.Base(in), func(t *testing.T) {
			d, err := os.ReadFile(in)
			if err != nil {
				t.Fatal(err)
			}
			node, err := parse.Parse(d, parse.ParseFormat(f))
			if err != nil {
				t.Fatal(err)
			}
			want, err := os.ReadFile(strings.TrimSuffix(in, filepath.Ext(in)) + ".toon")
			if err != nil {
				t.Fatal(err)
			}
			got := encode.MustString(node)
			if got != strings.TrimSuffix(string(want), "\n") {
				dmp := diffmatchpatch.New()
				diffs := dmp.DiffMain(strings.TrimSuffix(string(want), "\n"), got, true)
				t.Errorf("golden mismatch:\n%s", dmp.DiffPrettyText(diffs))
			}
		})
	}
	if n == 0 {
		t.Fatal("no golden inputs")
	}
}
