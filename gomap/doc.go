// Package gomap converts Go values to IR nodes.
//
// # Usage
//
//	type User struct {
//	    ID     int    `toon:"id"`
//	    Name   string `json:"name"`
//	    Email  string `toon:"email,omitempty"`
//	    Secret string `toon:"-"`
//	}
//	node, err := gomap.ToIR([]User{{ID: 1, Name: "Ada"}})
//
//	// Or straight to TOON
//	d, err := gomap.ToTOON(users, encode.Delimiter('|'))
//
// Struct fields keep their declaration order, so a slice of structs
// encodes as a table with the columns in the order they are declared.
// Field names come from the toon tag, else the json tag, else the Go
// field name. Embedded structs are flattened.
//
// Values implementing IRMarshaler or encoding.TextMarshaler convert
// themselves. Map keys are sorted.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-toon/ir - IR representation
//   - github.com/signadot/tony-format/go-toon/encode - Encode IR to TOON
package gomap
