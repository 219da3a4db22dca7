package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-toon/encode"
	"github.com/signadot/tony-format/go-toon/format"
	"github.com/signadot/tony-format/go-toon/ir"
	"github.com/signadot/tony-format/go-toon/parse"
	"github.com/signadot/tony-format/go-toon/query"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	var patch *ir.Node
	if cfg.Patch != "" {
		patch, err = readPatch(cfg.Patch)
		if err != nil {
			return err
		}
	}
	n := 0
	for _, file := range inputs(args) {
		docs, err := cfg.readDocs(file)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			doc, err = transform(doc, patch, cfg.Query)
			if err != nil {
				return fmt.Errorf("error processing %s: %w", file, err)
			}
			if n > 0 {
				if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
					return err
				}
			}
			if err := cfg.write(cc.Out, doc); err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
			n++
		}
	}
	return nil
}

func readPatch(file string) (*ir.Node, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", file, err)
	}
	return parse.Parse(d, parse.ParseFormat(format.FromSuffix(file)))
}

// transform applies patch, then the query, to doc. Both are optional.
func transform(doc, patch *ir.Node, q string) (*ir.Node, error) {
	var err error
	if patch != nil {
		doc, err = query.ApplyPatch(doc, patch)
		if err != nil {
			return nil, err
		}
	}
	if q != "" {
		doc, err = query.Select(doc, q)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// write writes doc in the output format followed by a newline.
func (cfg *MainConfig) write(w io.Writer, doc *ir.Node) error {
	var out string
	switch f := cfg.outFormat(); f {
	case format.TOONFormat:
		s, err := encode.EncodeString(doc, cfg.encOpts(w)...)
		if err != nil {
			return err
		}
		out = s
	case format.JSONFormat:
		d, err := doc.MarshalJSON()
		if err != nil {
			return err
		}
		out = string(d)
	default:
		return fmt.Errorf("%w: cannot write %s", cli.ErrUsage, f)
	}
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
