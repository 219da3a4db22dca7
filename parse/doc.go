// Package parse reads JSON and YAML documents into IR nodes.
//
// # Usage
//
//	// Parse JSON (the default)
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//
//	// Parse YAML
//	node, err := parse.Parse(data, parse.ParseYAML())
//
//	// Parse a stream of documents
//	docs, err := parse.ParseAll(data, parse.ParseFormat(format.YAMLFormat))
//
// Object key order is preserved. A key repeated within one object keeps its
// first position and takes its last value. Integers which do not fit in an
// int64 are kept exactly, see ir.Node.Number.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-toon/ir - IR representation
//   - github.com/signadot/tony-format/go-toon/encode - Encode IR to TOON
package parse
