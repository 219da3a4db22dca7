package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"
	bpkg "github.com/signadot/tony-format/go-toon/bench"
	"github.com/signadot/tony-format/go-toon/ir"

	"github.com/google/gops/agent"
)

func bench(cfg *BenchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bench.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}
	sets, err := cfg.datasets(args)
	if err != nil {
		return err
	}
	for i, set := range sets {
		rep, err := bpkg.Measure(set.name, set.node, nil, cfg.plainEncOpts()...)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := cfg.write(cc.Out, rep.Node()); err != nil {
			return err
		}
		if cfg.Samples != "" {
			if err := cfg.saveSamples(set); err != nil {
				return err
			}
		}
	}
	return nil
}

type dataset struct {
	name string
	node *ir.Node
}

func (cfg *BenchConfig) datasets(args []string) ([]dataset, error) {
	if len(args) == 0 {
		n := cfg.N
		if n <= 0 {
			n = 100
		}
		return []dataset{
			{name: "users", node: bpkg.Users(n)},
			{name: "products", node: bpkg.Products(n)},
			{name: "config", node: bpkg.Config()},
		}, nil
	}
	var res []dataset
	for _, file := range args {
		docs, err := cfg.readDocs(file)
		if err != nil {
			return nil, err
		}
		base := filepath.Base(file)
		for i, doc := range docs {
			name := base
			if len(docs) > 1 {
				name = fmt.Sprintf("%s#%d", base, i)
			}
			res = append(res, dataset{name: name, node: doc})
		}
	}
	return res, nil
}

// saveSamples writes each rendering of set to the samples directory, named
// after the dataset and the rendering.
func (cfg *BenchConfig) saveSamples(set dataset) error {
	if err := os.MkdirAll(cfg.Samples, 0755); err != nil {
		return err
	}
	samples, err := bpkg.Samples(set.node, cfg.plainEncOpts()...)
	if err != nil {
		return err
	}
	for _, s := range samples {
		p := filepath.Join(cfg.Samples, s.FileName(set.name))
		if err := os.WriteFile(p, []byte(s.Text+"\n"), 0644); err != nil {
			return fmt.Errorf("could not save sample %q: %w", p, err)
		}
	}
	return nil
}
