// Package format names the document formats go-toon reads and writes.
//
// JSON and YAML documents can be parsed into IR; TOON is the output
// notation produced by package encode.
package format
