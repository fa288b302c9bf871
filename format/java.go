package format

import (
	"io"

	"github.com/dhamidi/junparse/java/tree"
)

// JavaEncoder writes trees as Java source, one rendering per Encode call,
// each followed by a newline.
type JavaEncoder struct {
	w        io.Writer
	renderer *Renderer
	node     tree.Node
}

func NewJavaEncoder(w io.Writer, opts ...Option) *JavaEncoder {
	return &JavaEncoder{w: w, renderer: New(opts...)}
}

func (e *JavaEncoder) Encode(n tree.Node) error {
	e.node = n
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

// MarshalText renders the most recently encoded tree.
func (e *JavaEncoder) MarshalText() ([]byte, error) {
	text, err := e.renderer.Render(e.node)
	if err != nil {
		return nil, err
	}
	return []byte(text + "\n"), nil
}
