// Package bench compares the size of TOON encodings with JSON.
//
// A Counter measures a text, for instance in characters or in approximate
// tokens. Measure renders a document as pretty JSON, minified JSON and
// TOON and counts each rendering with every counter; the resulting Report
// is itself printed as a TOON table.
//
//	rep, err := bench.Measure("users", bench.Users(100), nil)
//	fmt.Println(rep)
//
// WordCounter approximates sub-word tokenizers without a vocabulary; plug in
// a real tokenizer by implementing Counter.
package bench
