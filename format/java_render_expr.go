package format

import (
	"strings"

	"github.com/dhamidi/junparse/java/tree"
)

func (s *renderState) expr(n tree.Expression, depth int) string {
	if n == nil {
		s.fail(nil, "missing expression")
	}
	s.enter(n)
	defer s.leave()

	switch n := n.(type) {
	case *tree.Assignment:
		core := s.required(n, n.Target, "target", depth) + " " + n.Operator + " " + s.required(n, n.Value, "value", depth)
		return s.compound(&n.Compound, core, depth)
	case *tree.TernaryExpression:
		core := s.required(n, n.Condition, "condition", depth) +
			" ? " + s.required(n, n.IfTrue, "true branch", depth) +
			" : " + s.required(n, n.IfFalse, "false branch", depth)
		return s.compound(&n.Compound, core, depth)
	case *tree.BinaryOperation:
		core := s.required(n, n.Left, "left operand", depth) + " " + n.Operator + " " + s.required(n, n.Right, "right operand", depth)
		return s.compound(&n.Compound, core, depth)
	case *tree.Cast:
		core := "(" + s.typeOf(n, n.Type) + ") " + s.required(n, n.Expression, "expression", depth)
		return s.compound(&n.Compound, core, depth)
	case *tree.LambdaExpression:
		return s.compound(&n.Compound, s.lambda(n, depth), depth)

	case *tree.Literal:
		return s.primary(&n.Primary, n.Value, depth)
	case *tree.This:
		return s.primary(&n.Primary, qualified(n.Qualifier, "this"), depth)
	case *tree.MemberReference:
		return s.primary(&n.Primary, qualified(n.Qualifier, n.Member), depth)
	case *tree.SuperMemberReference:
		return s.primary(&n.Primary, "super."+n.Member, depth)
	case *tree.MethodInvocation:
		member := s.typeArgs(n, n.TypeArguments) + n.Member
		return s.primary(&n.Primary, qualified(n.Qualifier, member)+"("+s.exprList(n.Arguments, depth)+")", depth)
	case *tree.SuperMethodInvocation:
		return s.primary(&n.Primary, "super."+n.Member+"("+s.exprList(n.Arguments, depth)+")", depth)
	case *tree.ExplicitConstructorInvocation:
		return "this(" + s.exprList(n.Arguments, depth) + ")"
	case *tree.SuperConstructorInvocation:
		return "super(" + s.exprList(n.Arguments, depth) + ")"
	case *tree.ArraySelector:
		return "[" + s.required(n, n.Index, "index", depth) + "]"
	case *tree.ClassReference:
		return s.primary(&n.Primary, s.typeOf(n, n.Type)+".class", depth)
	case *tree.VoidClassReference:
		return s.primary(&n.Primary, "void.class", depth)
	case *tree.ArrayCreator:
		return s.primary(&n.Primary, s.arrayCreator(n, depth), depth)
	case *tree.ClassCreator:
		return s.classCreator(n, depth)
	case *tree.InnerClassCreator:
		core := "new " + s.typeOf(n, n.Type) + "(" + s.exprList(n.Arguments, depth) + ")" + s.anonymousBody(n, n.Body, depth)
		return s.primary(&n.Primary, core, depth)
	case *tree.ArrayInitializer:
		return s.arrayInit(n, depth)
	case *tree.MethodReference:
		method := "new"
		if n.Method != nil {
			method = n.Method.Member
		}
		return s.primary(&n.Primary, s.required(n, n.Target, "target", depth)+"::"+method, depth)

	case *tree.Annotation:
		return s.annotation(n, depth)
	case *tree.ElementArrayValue:
		return "{" + s.exprList(n.Values, depth) + "}"
	case tree.Type:
		return s.typ(n)
	}
	s.fail(n, "no rendering rule for expression")
	return ""
}

// primary decorates core with its selectors and operators.
func (s *renderState) primary(p *tree.Primary, core string, depth int) string {
	return Affix(p.PrefixOperators, core+s.selectors(p.Selectors, depth), p.PostfixOperators)
}

// compound renders core bare, or parenthesized and decorated when the
// expression is used as a primary.
func (s *renderState) compound(c *tree.Compound, core string, depth int) string {
	if !c.Grouped() {
		return core
	}
	return s.primary(&c.Primary, "("+core+")", depth)
}

func (s *renderState) selectors(list []tree.Expression, depth int) string {
	return Selectors(list, func(e tree.Expression) string {
		return s.expr(e, depth)
	})
}

func (s *renderState) arrayCreator(n *tree.ArrayCreator, depth int) string {
	text := "new " + s.typeOf(n, n.Type)
	for _, dim := range n.Dimensions {
		if dim == nil {
			text += "[]"
		} else {
			text += "[" + s.expr(dim, depth) + "]"
		}
	}
	if n.Initializer != nil {
		text += s.arrayInit(n.Initializer, depth)
	}
	return text
}

func (s *renderState) arrayInit(n *tree.ArrayInitializer, depth int) string {
	return "{" + s.exprList(n.Initializers, depth) + "}"
}

// classCreator renders new T(args). The anonymous body precedes the single
// permitted selector, as in new T() { ... }.run(); the other order is not
// valid Java.
func (s *renderState) classCreator(n *tree.ClassCreator, depth int) string {
	if len(n.Selectors) > 1 {
		s.fail(n, "class creator with more than one selector")
	}
	core := "new " + s.typeOf(n, n.Type) + "(" + s.exprList(n.Arguments, depth) + ")" + s.anonymousBody(n, n.Body, depth)
	return s.primary(&n.Primary, core, depth)
}

func (s *renderState) anonymousBody(owner tree.Node, body *tree.ClassBody, depth int) string {
	if body == nil {
		return ""
	}
	return " " + s.classBody(owner, body.Members, depth)
}

func (s *renderState) lambda(n *tree.LambdaExpression, depth int) string {
	var params string
	if len(n.Parameters) == 1 && n.Parameters[0] != nil && n.Parameters[0].Type == nil {
		params = n.Parameters[0].Name
	} else {
		params = "(" + s.params(n, n.Parameters) + ")"
	}
	switch {
	case n.Block != nil && n.Body != nil:
		s.fail(n, "lambda with both an expression and a block body")
	case n.Block != nil:
		return params + " -> " + s.block(n.Block.Statements, depth)
	case n.Body != nil:
		return params + " -> " + s.expr(n.Body, depth)
	}
	s.fail(n, "lambda without a body")
	return ""
}

func (s *renderState) exprList(list []tree.Expression, depth int) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = s.expr(e, depth)
	}
	return strings.Join(parts, ", ")
}

func qualified(qualifier, name string) string {
	if qualifier == "" {
		return name
	}
	return qualifier + "." + name
}
