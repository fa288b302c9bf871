package format

import (
	"errors"
	"fmt"

	"github.com/dhamidi/junparse/java/tree"
)

// ErrUnsupportedConstruct matches every *UnsupportedConstructError with
// errors.Is.
var ErrUnsupportedConstruct = errors.New("unsupported construct")

// UnsupportedConstructError is returned when a node has no rendering rule or
// its shape breaks a rendering precondition. Rendering stops at the first
// such node and no text is returned.
type UnsupportedConstructError struct {
	Node     string // kind name, or Go type for nodes outside the taxonomy
	Reason   string
	Position tree.Position
}

func (e *UnsupportedConstructError) Error() string {
	msg := "unsupported construct " + e.Node
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Position.IsValid() {
		msg += " at " + e.Position.String()
	}
	return msg
}

func (e *UnsupportedConstructError) Is(target error) bool {
	return target == ErrUnsupportedConstruct
}

// failure carries an UnsupportedConstructError up the render stack.
type failure struct {
	err *UnsupportedConstructError
}

func unsupported(n tree.Node, reason string) *UnsupportedConstructError {
	e := &UnsupportedConstructError{Reason: reason}
	switch {
	case missing(n):
		e.Node = "<nil>"
	case n.Kind() == tree.KindUnknown:
		e.Node = fmt.Sprintf("%T", n)
		e.Position = n.Pos()
	default:
		e.Node = n.Kind().String()
		e.Position = n.Pos()
	}
	return e
}
