package format

import (
	"strings"

	"github.com/dhamidi/junparse/java/tree"
)

func (s *renderState) compilationUnit(n *tree.CompilationUnit, depth int) string {
	s.enter(n)
	defer s.leave()

	var sections []string
	if n.Package != nil {
		sections = append(sections, s.annotationLines(n.Package, n.Package.Annotations, depth)+s.indent(depth)+s.packageDecl(n.Package))
	}
	if len(n.Imports) > 0 {
		lines := each(s, n, n.Imports, "import", func(imp *tree.Import) string {
			return s.indent(depth) + s.importDecl(imp)
		})
		sections = append(sections, strings.Join(lines, "\n"))
	}
	if len(n.Types) > 0 {
		decls := each(s, n, n.Types, "type declaration", func(t tree.TypeDeclaration) string {
			return s.member(t, depth)
		})
		sections = append(sections, strings.Join(decls, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

func (s *renderState) packageDecl(n *tree.PackageDeclaration) string {
	return "package " + n.Name + ";"
}

func (s *renderState) importDecl(n *tree.Import) string {
	text := "import "
	if n.Static {
		text += "static "
	}
	text += n.Path
	if n.Wildcard {
		text += ".*"
	}
	return text + ";"
}

// member renders a class body member, every line indented at depth.
func (s *renderState) member(m tree.Member, depth int) string {
	s.enter(m)
	defer s.leave()

	switch m := m.(type) {
	case *tree.ClassDeclaration:
		return s.classDecl(m, depth)
	case *tree.InterfaceDeclaration:
		return s.interfaceDecl(m, depth)
	case *tree.EnumDeclaration:
		return s.enumDecl(m, depth)
	case *tree.MethodDeclaration:
		return s.methodDecl(m, depth)
	case *tree.FieldDeclaration:
		return s.fieldDecl(m, depth)
	case *tree.ConstructorDeclaration:
		return s.constructorDecl(m, depth)
	case *tree.Initializer:
		return s.initializer(m, depth)
	}
	s.fail(m, "no rendering rule for member")
	return ""
}

func (s *renderState) classDecl(n *tree.ClassDeclaration, depth int) string {
	header := words(modifiers(n.Modifiers), "class", n.Name+s.typeParams(n, n.TypeParameters))
	if n.Extends != nil {
		header += " extends " + s.typ(n.Extends)
	}
	if len(n.Implements) > 0 {
		header += " implements " + s.typeList(n.Implements)
	}
	return s.annotationLines(n, n.Annotations, depth) + s.indent(depth) + header + " " + s.classBody(n, n.Body, depth)
}

func (s *renderState) interfaceDecl(n *tree.InterfaceDeclaration, depth int) string {
	header := words(modifiers(n.Modifiers), "interface", n.Name+s.typeParams(n, n.TypeParameters))
	if len(n.Extends) > 0 {
		header += " extends " + s.typeList(n.Extends)
	}
	return s.annotationLines(n, n.Annotations, depth) + s.indent(depth) + header + " " + s.classBody(n, n.Body, depth)
}

func (s *renderState) enumDecl(n *tree.EnumDeclaration, depth int) string {
	header := words(modifiers(n.Modifiers), "enum", n.Name)
	if len(n.Implements) > 0 {
		header += " implements " + s.typeList(n.Implements)
	}
	text := s.annotationLines(n, n.Annotations, depth) + s.indent(depth) + header + " {\n"
	if n.Body != nil {
		if body := s.enumBody(n.Body, depth+1); body != "" {
			text += body + "\n"
		}
	}
	return text + s.indent(depth) + "}"
}

// enumBody renders the constants and members of an enum, all at depth.
// The constant list is terminated with a semicolon only when members
// follow it.
func (s *renderState) enumBody(n *tree.EnumBody, depth int) string {
	s.enter(n)
	defer s.leave()

	constants := each(s, n, n.Constants, "enum constant", func(c *tree.EnumConstantDeclaration) string {
		return s.indent(depth) + s.enumConstant(c, depth)
	})
	text := strings.Join(constants, ",\n")
	if len(n.Declarations) == 0 {
		return text
	}
	if text == "" {
		text = s.indent(depth)
	}
	text += ";"
	members := each(s, n, n.Declarations, "member", func(d tree.Member) string {
		return s.member(d, depth)
	})
	return text + "\n" + strings.Join(members, "\n")
}

func (s *renderState) enumConstant(n *tree.EnumConstantDeclaration, depth int) string {
	if n.Body != nil {
		s.fail(n, "enum constant with a class body")
	}
	text := n.Name
	if len(n.Arguments) > 0 {
		text += "(" + s.exprList(n.Arguments, depth) + ")"
	}
	return words(s.annotationsInline(n, n.Annotations, depth), text)
}

// classBody renders a brace-delimited member list whose closing brace sits
// at depth.
func (s *renderState) classBody(owner tree.Node, members []tree.Member, depth int) string {
	if len(members) == 0 {
		return "{\n" + s.indent(depth) + "}"
	}
	lines := each(s, owner, members, "member", func(m tree.Member) string {
		return s.member(m, depth+1)
	})
	return "{\n" + strings.Join(lines, "\n") + "\n" + s.indent(depth) + "}"
}

func (s *renderState) methodDecl(n *tree.MethodDeclaration, depth int) string {
	returnType := "void"
	if n.ReturnType != nil {
		returnType = s.typ(n.ReturnType)
	}
	header := words(modifiers(n.Modifiers), s.typeParams(n, n.TypeParameters), returnType, n.Name+"("+s.params(n, n.Parameters)+")")
	header += s.throws(n.Throws)
	text := s.annotationLines(n, n.Annotations, depth) + s.indent(depth) + header
	if n.Body == nil {
		return text + ";"
	}
	return text + " " + s.block(n.Body.Statements, depth)
}

func (s *renderState) constructorDecl(n *tree.ConstructorDeclaration, depth int) string {
	header := words(modifiers(n.Modifiers), s.typeParams(n, n.TypeParameters), n.Name+"("+s.params(n, n.Parameters)+")")
	header += s.throws(n.Throws)
	return s.annotationLines(n, n.Annotations, depth) + s.indent(depth) + header + " " + s.block(n.Body, depth)
}

func (s *renderState) fieldDecl(n *tree.FieldDeclaration, depth int) string {
	decl := words(modifiers(n.Modifiers), s.typeOf(n, n.Type), s.declarators(n, n.Declarators, depth))
	return s.annotationLines(n, n.Annotations, depth) + s.indent(depth) + decl + ";"
}

func (s *renderState) initializer(n *tree.Initializer, depth int) string {
	text := s.indent(depth)
	if n.Static {
		text += "static "
	}
	return text + s.block(n.Body, depth)
}

func (s *renderState) throws(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return " throws " + strings.Join(names, ", ")
}

// varDecl renders a declaration without its terminator.
func (s *renderState) varDecl(n *tree.VariableDeclaration, depth int) string {
	s.enter(n)
	defer s.leave()
	return words(s.annotationsInline(n, n.Annotations, depth), modifiers(n.Modifiers), s.typeOf(n, n.Type), s.declarators(n, n.Declarators, depth))
}

func (s *renderState) declarators(owner tree.Node, list []*tree.VariableDeclarator, depth int) string {
	if len(list) == 0 {
		s.fail(owner, "empty declarator list")
	}
	parts := each(s, owner, list, "declarator", func(d *tree.VariableDeclarator) string {
		return s.declarator(d, depth)
	})
	return strings.Join(parts, ", ")
}

func (s *renderState) declarator(n *tree.VariableDeclarator, depth int) string {
	if n.Initializer == nil {
		return n.Name
	}
	return n.Name + " = " + s.expr(n.Initializer, depth)
}

func (s *renderState) params(owner tree.Node, list []*tree.FormalParameter) string {
	parts := each(s, owner, list, "parameter", s.param)
	return strings.Join(parts, ", ")
}

func (s *renderState) param(n *tree.FormalParameter) string {
	if n.Type == nil {
		return n.Name
	}
	typ := s.typ(n.Type)
	if n.Varargs {
		typ += "..."
	}
	return words(s.annotationsInline(n, n.Annotations, 0), modifiers(n.Modifiers), typ, n.Name)
}

// typeOf renders the declared type of owner, failing when it is missing.
func (s *renderState) typeOf(owner tree.Node, t tree.Type) string {
	if t == nil {
		s.fail(owner, "missing type")
	}
	return s.typ(t)
}

// annotationLines renders one line per annotation, each indented at depth
// and terminated by a newline.
func (s *renderState) annotationLines(owner tree.Node, list []*tree.Annotation, depth int) string {
	var text string
	for _, line := range each(s, owner, list, "annotation", func(a *tree.Annotation) string {
		return s.annotation(a, depth)
	}) {
		text += s.indent(depth) + line + "\n"
	}
	return text
}

func (s *renderState) annotationsInline(owner tree.Node, list []*tree.Annotation, depth int) string {
	parts := each(s, owner, list, "annotation", func(a *tree.Annotation) string {
		return s.annotation(a, depth)
	})
	return strings.Join(parts, " ")
}

func (s *renderState) annotation(n *tree.Annotation, depth int) string {
	s.enter(n)
	defer s.leave()

	switch {
	case n.Element != nil && len(n.Pairs) > 0:
		s.fail(n, "annotation with both an element and element-value pairs")
	case len(n.Pairs) > 0:
		pairs := each(s, n, n.Pairs, "element-value pair", func(p *tree.ElementValuePair) string {
			return s.elementValuePair(p, depth)
		})
		return "@" + n.Name + "(" + strings.Join(pairs, ", ") + ")"
	case n.Element != nil:
		return "@" + n.Name + "(" + s.expr(n.Element, depth) + ")"
	}
	return "@" + n.Name
}

func (s *renderState) elementValuePair(n *tree.ElementValuePair, depth int) string {
	if n.Value == nil {
		s.fail(n, "missing value")
	}
	return n.Name + " = " + s.expr(n.Value, depth)
}
