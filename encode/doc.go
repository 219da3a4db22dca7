// Package encode encodes IR nodes to TOON text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "users", Val: ir.FromSlice([]*ir.Node{
//	        ir.FromKeyVals([]ir.KeyVal{{Key: "id", Val: ir.FromInt(1)}, {Key: "name", Val: ir.FromString("Alice")}}),
//	        ir.FromKeyVals([]ir.KeyVal{{Key: "id", Val: ir.FromInt(2)}, {Key: "name", Val: ir.FromString("Bob")}}),
//	    })},
//	})
//	output, err := encode.EncodeString(node)
//	// users[2]{id,name}:
//	//   1,Alice
//	//   2,Bob
//
//	// Encode with options
//	err = encode.Encode(node, os.Stdout, encode.Delimiter('|'), encode.Indent(4))
//
// # Arrays
//
// Every array is classified (see Classify) and rendered as
//
//   - an empty header, key[0]:
//   - an inline list of scalars, key[N]: a,b,c
//   - a table, key[N]{f1,f2}: followed by one row per element
//   - a list of "- " items, one block per element
//
// # Errors
//
// Encoding is all or nothing: on error nothing is written. Errors wrap
// ErrNonFiniteNumber, ErrExcessiveDepth, ErrInvalidOptions or ErrEncoding
// and name the path of the offending node.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-toon/ir - IR representation
//   - github.com/signadot/tony-format/go-toon/token - quoting and numbers
//   - github.com/signadot/tony-format/go-toon/parse - JSON and YAML to IR
package encode
