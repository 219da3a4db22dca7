package gomap

import (
	"reflect"
	"strings"
)

type fieldTag struct {
	name      string
	omit      bool
	omitEmpty bool
}

// parseFieldTag reads the toon struct tag of f, falling back to its json
// tag. Both have the form "name,opt,...".
func parseFieldTag(f reflect.StructField) fieldTag {
	tag, ok := f.Tag.Lookup("toon")
	if !ok {
		tag = f.Tag.Get("json")
	}
	res := fieldTag{name: f.Name}
	if tag == "-" {
		res.omit = true
		return res
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name != "" {
		res.name = name
	}
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "omitempty" {
			res.omitEmpty = true
		}
	}
	return res
}
