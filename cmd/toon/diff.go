package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-toon/encode"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff needs 2 files, got %d", cli.ErrUsage, len(args))
	}
	texts := make([]string, 2)
	for i, file := range args {
		docs, err := cfg.readDocs(file)
		if err != nil {
			return err
		}
		parts := make([]string, len(docs))
		for j, doc := range docs {
			parts[j], err = encode.EncodeString(doc, cfg.plainEncOpts()...)
			if err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
		}
		texts[i] = strings.Join(parts, "\n---\n")
	}
	return writeLineDiff(cc.Out, lineDiff(texts[0], texts[1]), cfg.Context, cfg.colorOn(cc.Out))
}

// plainEncOpts are the encoding options without colors, which would show
// up in the diff.
func (cfg *MainConfig) plainEncOpts() []encode.EncodeOption {
	return append(cfg.encOpts(nil), encode.EncodeColors(nil))
}

// diffLine is a line of a line diff, with Op one of ' ', '-' or '+'.
type diffLine struct {
	Op   byte
	Text string
}

func lineDiff(a, b string) []diffLine {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a+"\n", b+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []diffLine
	for _, d := range diffs {
		op := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = '-'
		case diffmatchpatch.DiffInsert:
			op = '+'
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, diffLine{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// writeLineDiff writes the changed lines of diff with up to context
// unchanged lines around them; a negative context keeps every line.
func writeLineDiff(w io.Writer, diff []diffLine, context int, useColor bool) error {
	keep := make([]bool, len(diff))
	for i, dl := range diff {
		if context < 0 {
			keep[i] = true
			continue
		}
		if dl.Op == ' ' {
			continue
		}
		for j := max(i-context, 0); j <= i+context && j < len(diff); j++ {
			keep[j] = true
		}
	}
	redC, greenC := color.New(color.FgRed), color.New(color.FgGreen)
	if useColor {
		redC.EnableColor()
		greenC.EnableColor()
	}
	red, green := redC.SprintFunc(), greenC.SprintFunc()
	skipped := false
	for i, dl := range diff {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			if _, err := io.WriteString(w, "@@\n"); err != nil {
				return err
			}
			skipped = false
		}
		ln := string(dl.Op) + " " + dl.Text
		if useColor {
			switch dl.Op {
			case '-':
				ln = red(ln)
			case '+':
				ln = green(ln)
			}
		}
		if _, err := io.WriteString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}
