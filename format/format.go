package format

import (
	"encoding"

	"github.com/dhamidi/junparse/java/tree"
)

// Encoder writes a syntax tree to an underlying writer.
type Encoder interface {
	encoding.TextMarshaler
	Encode(n tree.Node) error
}
