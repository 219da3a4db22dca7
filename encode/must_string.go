package encode

import (
	"github.com/signadot/tony-format/go-toon/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := EncodeString(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
