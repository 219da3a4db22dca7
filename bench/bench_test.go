package bench

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/go-toon/encode"
)

func TestCounters(t *testing.T) {
	tests := []struct {
		c    Counter
		in   string
		want int
	}{
		{CharCounter{}, "", 0},
		{CharCounter{}, "héllo", 5},
		{WordCounter{}, "", 0},
		{WordCounter{}, "a b  c", 4},
		{WordCounter{}, "one\ntwo", 3},
		{WordCounter{Factor: 2}, "a b  c", 6},
	}
	for _, tc := range tests {
		if got := tc.c.Count(tc.in); got != tc.want {
			t.Errorf("%s(%q) = %d, want %d", tc.c.Name(), tc.in, got, tc.want)
		}
	}
}

func TestSamples(t *testing.T) {
	samples, err := Samples(Users(2))
	if err != nil {
		t.Fatal(err)
	}
	var formats []string
	for _, s := range samples {
		formats = append(formats, s.Format)
	}
	if diff := cmp.Diff([]string{PrettyJSON, JSON, TOON}, formats); diff != "" {
		t.Errorf("formats (-want +got):\n%s", diff)
	}
	want := "[2]{id,name,email,role,active}:\n" +
		"  1,User1,user1@example.com,admin,false\n" +
		"  2,User2,user2@example.com,user,true"
	if samples[2].Text != want {
		t.Errorf("toon sample:\n%s", samples[2].Text)
	}
	if !strings.HasPrefix(samples[0].Text, "[\n  {\n    \"id\": 1,") {
		t.Errorf("pretty json sample:\n%s", samples[0].Text)
	}
	if strings.ContainsAny(samples[1].Text, " \n") {
		t.Errorf("minified json sample:\n%s", samples[1].Text)
	}
	var names []string
	for _, s := range samples {
		names = append(names, s.FileName("users"))
	}
	wantNames := []string{"users.json-pretty.json", "users.json.json", "users.toon.toon"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("file names (-want +got):\n%s", diff)
	}
}

func TestMeasure(t *testing.T) {
	for name, node := range Datasets() {
		rep, err := Measure(name, node, nil)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if diff := cmp.Diff([]string{"chars", "words"}, rep.Counters); diff != "" {
			t.Errorf("%s counters (-want +got):\n%s", name, diff)
		}
		if len(rep.Rows) != 3 {
			t.Fatalf("%s: %d rows", name, len(rep.Rows))
		}
		pretty, json, toon := rep.Rows[0], rep.Rows[1], rep.Rows[2]
		if toon.Counts[0] >= json.Counts[0] || json.Counts[0] >= pretty.Counts[0] {
			t.Errorf("%s: char counts pretty %d json %d toon %d", name, pretty.Counts[0], json.Counts[0], toon.Counts[0])
		}
		if rep.Savings(1) != 0 {
			t.Errorf("%s: baseline savings %f", name, rep.Savings(1))
		}
		if rep.Savings(2) <= 0 {
			t.Errorf("%s: toon savings %f", name, rep.Savings(2))
		}
	}
}

func TestReportString(t *testing.T) {
	rep, err := Measure("users", Users(10), []Counter{CharCounter{}}, encode.Delimiter('|'))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(rep.String(), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), rep)
	}
	if lines[0] != "dataset: users" {
		t.Errorf("line 0: %q", lines[0])
	}
	if lines[1] != "results[3]{format,chars,savings}:" {
		t.Errorf("line 1: %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "  json,") || !strings.HasSuffix(lines[3], ",-") {
		t.Errorf("baseline row: %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "  toon,") || !strings.HasSuffix(lines[4], "%") {
		t.Errorf("toon row: %q", lines[4])
	}
}
