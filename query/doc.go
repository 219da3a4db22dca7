// Package query selects and patches documents before they are encoded.
//
// # Select
//
// Select evaluates an expr-lang expression (https://expr-lang.org) against
// a document. The environment holds the document as "doc" and, when the
// document is an object, each of its fields by name.
//
//	users, err := query.Select(node, `filter(doc.users, .active)`)
//
// The functions getpath and listpath address the document with paths such
// as "$.users[0].name" or "$.users[*].id" and keep object key order, which
// plain field access on doc does not.
//
//	names, err := query.Select(node, `listpath("$.users[*].name")`)
//
// # ApplyPatch
//
// ApplyPatch applies an RFC 6902 JSON patch. Keys of objects which survive
// the patch keep their original order; added keys follow them.
package query
