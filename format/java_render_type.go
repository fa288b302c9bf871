package format

import (
	"strings"

	"github.com/dhamidi/junparse/java/tree"
)

func (s *renderState) typ(t tree.Type) string {
	if t == nil {
		s.fail(nil, "missing type")
	}
	s.enter(t)
	defer s.leave()

	switch t := t.(type) {
	case *tree.BasicType:
		return t.Name + dims(t.Dimensions)
	case *tree.ReferenceType:
		return s.referenceType(t)
	}
	s.fail(t, "no rendering rule for type")
	return ""
}

// referenceType renders a possibly nested class type. Dimensions of the
// innermost sub type apply to the whole chain.
func (s *renderState) referenceType(t *tree.ReferenceType) string {
	text := t.Name + s.typeArgs(t, t.Arguments)
	if t.SubType != nil {
		text += "." + s.referenceType(t.SubType)
	}
	return text + dims(t.Dimensions)
}

func dims(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("[]", n)
}

func (s *renderState) typeList(list []tree.Type) string {
	parts := make([]string, len(list))
	for i, t := range list {
		parts[i] = s.typ(t)
	}
	return strings.Join(parts, ", ")
}

// typeArgs renders <A, B>, or nothing for an empty list.
func (s *renderState) typeArgs(owner tree.Node, list []*tree.TypeArgument) string {
	if len(list) == 0 {
		return ""
	}
	parts := each(s, owner, list, "type argument", s.typeArg)
	return "<" + strings.Join(parts, ", ") + ">"
}

func (s *renderState) typeArg(n *tree.TypeArgument) string {
	switch n.PatternType {
	case "":
		return s.typeOf(n, n.Type)
	case "?":
		if n.Type != nil {
			return "? extends " + s.typ(n.Type)
		}
		return "?"
	case "extends", "super":
		return "? " + n.PatternType + " " + s.typeOf(n, n.Type)
	}
	s.fail(n, "unknown wildcard pattern "+n.PatternType)
	return ""
}

// typeParams renders <T, U extends A & B>, or nothing for an empty list.
func (s *renderState) typeParams(owner tree.Node, list []*tree.TypeParameter) string {
	if len(list) == 0 {
		return ""
	}
	parts := each(s, owner, list, "type parameter", s.typeParam)
	return "<" + strings.Join(parts, ", ") + ">"
}

func (s *renderState) typeParam(n *tree.TypeParameter) string {
	if len(n.Extends) == 0 {
		return n.Name
	}
	bounds := make([]string, len(n.Extends))
	for i, b := range n.Extends {
		bounds[i] = s.typ(b)
	}
	return n.Name + " extends " + strings.Join(bounds, " & ")
}
