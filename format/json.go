package format

import (
	"io"

	"github.com/dhamidi/junparse/java/tree"
)

// JSONEncoder writes trees in the JSON tree format read by tree.Unmarshal.
type JSONEncoder struct {
	w    io.Writer
	node tree.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(n tree.Node) error {
	e.node = n
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := tree.MarshalIndent(e.node, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
