package bench

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/tony-format/go-toon/encode"
	"github.com/signadot/tony-format/go-toon/format"
	"github.com/signadot/tony-format/go-toon/ir"
)

// Format names of the renderings compared by Measure.
const (
	PrettyJSON = "json-pretty"
	JSON       = "json"
	TOON       = "toon"
)

// Sample is one rendering of a document.
type Sample struct {
	Format string
	Text   string
}

// FileName is the name under which the sample of dataset is saved.
func (s Sample) FileName(dataset string) string {
	fmat := format.JSONFormat
	if s.Format == TOON {
		fmat = format.TOONFormat
	}
	return dataset + "." + s.Format + fmat.Suffix()
}

// Samples renders node as pretty JSON, minified JSON and TOON, in that
// order. opts apply to the TOON rendering.
func Samples(node *ir.Node, opts ...encode.EncodeOption) ([]Sample, error) {
	compact, err := node.MarshalJSON()
	if err != nil {
		return nil, err
	}
	pretty := &bytes.Buffer{}
	if err := json.Indent(pretty, compact, "", "  "); err != nil {
		return nil, err
	}
	toon, err := encode.EncodeString(node, opts...)
	if err != nil {
		return nil, err
	}
	return []Sample{
		{Format: PrettyJSON, Text: pretty.String()},
		{Format: JSON, Text: string(compact)},
		{Format: TOON, Text: toon},
	}, nil
}

type Row struct {
	Format string
	Counts []int
}

type Report struct {
	Dataset  string
	Counters []string
	Rows     []Row
}

// Measure counts the renderings of node with counters, or DefaultCounters
// if there are none.
func Measure(dataset string, node *ir.Node, counters []Counter, opts ...encode.EncodeOption) (*Report, error) {
	if len(counters) == 0 {
		counters = DefaultCounters()
	}
	samples, err := Samples(node, opts...)
	if err != nil {
		return nil, fmt.Errorf("measuring %s: %w", dataset, err)
	}
	rep := &Report{Dataset: dataset}
	for _, c := range counters {
		rep.Counters = append(rep.Counters, c.Name())
	}
	for _, s := range samples {
		row := Row{Format: s.Format, Counts: make([]int, len(counters))}
		for i, c := range counters {
			row.Counts[i] = c.Count(s.Text)
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep, nil
}

// Savings returns the percentage by which row i is smaller than minified
// JSON, according to the first counter.
func (r *Report) Savings(i int) float64 {
	base := r.baseline()
	if base == nil || base.Counts[0] == 0 {
		return 0
	}
	b := float64(base.Counts[0])
	return (b - float64(r.Rows[i].Counts[0])) / b * 100
}

func (r *Report) baseline() *Row {
	if len(r.Counters) == 0 {
		return nil
	}
	for i := range r.Rows {
		if r.Rows[i].Format == JSON {
			return &r.Rows[i]
		}
	}
	return nil
}

// Node returns the report as a document whose results form a table.
func (r *Report) Node() *ir.Node {
	rows := make([]*ir.Node, len(r.Rows))
	for i, row := range r.Rows {
		kvs := []ir.KeyVal{{Key: "format", Val: ir.FromString(row.Format)}}
		for j, name := range r.Counters {
			kvs = append(kvs, ir.KeyVal{Key: name, Val: ir.FromInt(int64(row.Counts[j]))})
		}
		savings := "-"
		if row.Format != JSON && len(r.Counters) != 0 {
			savings = fmt.Sprintf("%+.1f%%", r.Savings(i))
		}
		kvs = append(kvs, ir.KeyVal{Key: "savings", Val: ir.FromString(savings)})
		rows[i] = ir.FromKeyVals(kvs)
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "dataset", Val: ir.FromString(r.Dataset)},
		{Key: "results", Val: ir.FromSlice(rows)},
	})
}

func (r *Report) String() string {
	return encode.MustString(r.Node())
}
