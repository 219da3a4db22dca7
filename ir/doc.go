// Package ir provides the intermediate representation (IR) for documents
// encoded by go-toon.
//
// # Overview
//
// A document is a tree of *Node values. Node is a tagged union: the Type
// field selects which of the remaining fields carry the value.
//
//   - NullType: null value
//   - BoolType: Bool
//   - NumberType: exactly one of Int64, Float64 or Number
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields and Values, parallel slices, in insertion order
//
// # Numbers
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: an integer literal which does not fit in an int64
//
// Int64 and Float64 are kept apart even when a float is integral, so callers
// can tell 3 from 3.0. The TOON encoder renders both the same way.
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i].
// Keys are unique. Constructors which accept key/value pairs (FromKeyVals,
// Set) apply last-write-wins: a repeated key keeps its first position and
// takes its last value.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "id", Val: ir.FromInt(1)},
//	    {Key: "name", Val: ir.FromString("Alice")},
//	})
//	arr := ir.FromSlice([]*ir.Node{obj})
//
// # Paths
//
// Nodes are addressed with paths such as "$.users[0].name". A field which
// is not a plain name is written quoted, as in $."a.b". ListPath also
// accepts [*] for every element of an array and ".." for every container
// below a node, so $...id lists all id fields of a document. FieldPath and
// IndexPath build path strings for diagnostics.
//
// # Thread Safety
//
// Nodes are plain data. Encoding only reads a tree, so one tree may be
// encoded from several goroutines at once; mutation must be synchronized by
// the caller.
package ir
