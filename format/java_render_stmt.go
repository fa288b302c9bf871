package format

import (
	"strings"

	"github.com/dhamidi/junparse/java/tree"
)

// stmt renders a statement without the indentation of its first line.
// Nested lines are indented relative to depth.
func (s *renderState) stmt(n tree.Statement, depth int) string {
	if n == nil {
		s.fail(nil, "missing statement")
	}
	s.enter(n)
	defer s.leave()

	switch n := n.(type) {
	case *tree.BlockStatement:
		return s.block(n.Statements, depth)
	case *tree.LocalVariableDeclaration:
		return words(s.annotationsInline(n, n.Annotations, depth), modifiers(n.Modifiers), s.typeOf(n, n.Type), s.declarators(n, n.Declarators, depth)) + ";"
	case *tree.StatementExpression:
		return s.required(n, n.Expression, "expression", depth) + ";"
	case *tree.IfStatement:
		return s.ifStmt(n, depth)
	case *tree.WhileStatement:
		return "while (" + s.required(n, n.Condition, "condition", depth) + ") " + s.body(n, n.Body, depth)
	case *tree.DoStatement:
		return "do " + s.body(n, n.Body, depth) + " while (" + s.required(n, n.Condition, "condition", depth) + ");"
	case *tree.ForStatement:
		return s.forStmt(n, depth)
	case *tree.AssertStatement:
		text := "assert " + s.required(n, n.Condition, "condition", depth)
		if n.Value != nil {
			text += " : " + s.expr(n.Value, depth)
		}
		return text + ";"
	case *tree.BreakStatement:
		return words("break", n.Goto) + ";"
	case *tree.ContinueStatement:
		return words("continue", n.Goto) + ";"
	case *tree.ReturnStatement:
		if n.Expression == nil {
			return "return;"
		}
		return "return " + s.expr(n.Expression, depth) + ";"
	case *tree.ThrowStatement:
		return "throw " + s.required(n, n.Expression, "expression", depth) + ";"
	case *tree.SynchronizedStatement:
		return "synchronized (" + s.required(n, n.Lock, "lock", depth) + ") " + s.block(n.Block, depth)
	case *tree.TryStatement:
		return s.tryStmt(n, depth)
	case *tree.SwitchStatement:
		return s.switchStmt(n, depth)
	case *tree.EmptyStatement:
		return ";"
	case *tree.LabeledStatement:
		if n.Statement == nil {
			s.fail(n, "missing statement")
		}
		return n.Label + ": " + s.stmt(n.Statement, depth)
	case tree.TypeDeclaration:
		return strings.TrimPrefix(s.member(n, depth), s.indent(depth))
	}
	s.fail(n, "no rendering rule for statement")
	return ""
}

// block renders a brace-delimited statement list whose closing brace sits
// at depth.
func (s *renderState) block(stmts []tree.Statement, depth int) string {
	if len(stmts) == 0 {
		return "{\n" + s.indent(depth) + "}"
	}
	lines := make([]string, len(stmts))
	for i, st := range stmts {
		lines[i] = s.indent(depth+1) + s.stmt(st, depth+1)
	}
	return "{\n" + strings.Join(lines, "\n") + "\n" + s.indent(depth) + "}"
}

// body renders the statement controlled by an if, loop or similar
// construct.
func (s *renderState) body(owner tree.Node, n tree.Statement, depth int) string {
	if n == nil {
		s.fail(owner, "missing body")
	}
	return s.stmt(n, depth)
}

// required renders an expression owner cannot do without.
func (s *renderState) required(owner tree.Node, e tree.Expression, what string, depth int) string {
	if e == nil {
		s.fail(owner, "missing "+what)
	}
	return s.expr(e, depth)
}

func (s *renderState) ifStmt(n *tree.IfStatement, depth int) string {
	text := "if (" + s.required(n, n.Condition, "condition", depth) + ") " + s.body(n, n.Then, depth)
	if n.Else != nil {
		text += " else " + s.stmt(n.Else, depth)
	}
	return text
}

func (s *renderState) forStmt(n *tree.ForStatement, depth int) string {
	var control string
	switch c := n.Control.(type) {
	case *tree.ForControl:
		control = s.forControl(c, depth)
	case *tree.EnhancedForControl:
		control = s.enhancedForControl(c, depth)
	case nil:
		s.fail(n, "missing loop control")
	default:
		s.fail(c, "no rendering rule for loop control")
	}
	return "for (" + control + ") " + s.body(n, n.Body, depth)
}

func (s *renderState) forControl(n *tree.ForControl, depth int) string {
	s.enter(n)
	defer s.leave()

	var init string
	switch {
	case n.Init != nil && len(n.InitExpressions) > 0:
		s.fail(n, "both a declaration and expressions as initializer")
	case n.Init != nil:
		init = s.varDecl(n.Init, depth)
	default:
		init = s.exprList(n.InitExpressions, depth)
	}
	text := init + ";"
	if n.Condition != nil {
		text += " " + s.expr(n.Condition, depth)
	}
	text += ";"
	if len(n.Update) > 0 {
		text += " " + s.exprList(n.Update, depth)
	}
	return text
}

func (s *renderState) enhancedForControl(n *tree.EnhancedForControl, depth int) string {
	s.enter(n)
	defer s.leave()

	if n.Var == nil {
		s.fail(n, "missing variable")
	}
	if len(n.Var.Declarators) != 1 {
		s.fail(n, "loop variable must declare exactly one name")
	}
	if n.Var.Declarators[0] == nil {
		s.fail(n, "missing declarator")
	}
	if n.Var.Declarators[0].Initializer != nil {
		s.fail(n, "loop variable with an initializer")
	}
	return s.varDecl(n.Var, depth) + " : " + s.required(n, n.Iterable, "iterable", depth)
}

func (s *renderState) tryStmt(n *tree.TryStatement, depth int) string {
	text := "try "
	if len(n.Resources) > 0 {
		resources := each(s, n, n.Resources, "resource", func(r *tree.TryResource) string {
			return s.tryResource(r, depth)
		})
		text += "(" + strings.Join(resources, "; ") + ") "
	}
	text += s.block(n.Block, depth)
	for _, c := range each(s, n, n.Catches, "catch clause", func(c *tree.CatchClause) string {
		return s.catchClause(c, depth)
	}) {
		text += " " + c
	}
	if n.Finally != nil {
		text += " finally " + s.block(n.Finally.Statements, depth)
	}
	return text
}

func (s *renderState) tryResource(n *tree.TryResource, depth int) string {
	decl := words(s.annotationsInline(n, n.Annotations, depth), modifiers(n.Modifiers), s.typeOf(n, n.Type), n.Name)
	return decl + " = " + s.required(n, n.Value, "value", depth)
}

func (s *renderState) catchClause(n *tree.CatchClause, depth int) string {
	if n.Parameter == nil {
		s.fail(n, "missing parameter")
	}
	return "catch (" + s.catchParam(n.Parameter) + ") " + s.block(n.Block, depth)
}

func (s *renderState) catchParam(n *tree.CatchClauseParameter) string {
	if len(n.Types) == 0 {
		s.fail(n, "no exception types")
	}
	return words(s.annotationsInline(n, n.Annotations, 0), modifiers(n.Modifiers), strings.Join(n.Types, " | "), n.Name)
}

func (s *renderState) switchStmt(n *tree.SwitchStatement, depth int) string {
	text := "switch (" + s.required(n, n.Expression, "expression", depth) + ") {\n"
	for _, c := range each(s, n, n.Cases, "case", func(c *tree.SwitchStatementCase) string {
		return s.switchCase(c, depth+1)
	}) {
		text += c + "\n"
	}
	return text + s.indent(depth) + "}"
}

// switchCase renders the labels of a case group at depth and its
// statements one level deeper.
func (s *renderState) switchCase(n *tree.SwitchStatementCase, depth int) string {
	s.enter(n)
	defer s.leave()

	var lines []string
	if len(n.Case) == 0 {
		lines = append(lines, s.indent(depth)+"default:")
	}
	for _, label := range each(s, n, n.Case, "case label", func(e tree.Expression) string {
		return s.expr(e, depth)
	}) {
		lines = append(lines, s.indent(depth)+"case "+label+":")
	}
	for _, st := range n.Statements {
		lines = append(lines, s.indent(depth+1)+s.stmt(st, depth+1))
	}
	return strings.Join(lines, "\n")
}
