// Package tree defines the typed syntax tree consumed by the Java renderer.
//
// The taxonomy is closed: every construct is a pointer to one of the structs
// in this package, reached through one of the sealed category interfaces
// (TypeDeclaration, Member, Statement, Expression, Type, LoopControl).
// Trees are built once by an external parser, either directly as Go values
// or decoded from JSON with Unmarshal, and are never modified afterwards.
//
// Optional collections have a single absent representation: a nil slice and
// an empty slice mean the same thing. Where absence and emptiness differ in
// the source language (a method without a body versus an empty body) the
// field is a pointer.
package tree

import "fmt"

type Position struct {
	Line   int
	Column int
}

func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is implemented by every tree node.
type Node interface {
	Kind() Kind
	Pos() Position
}

// Base carries the data shared by all nodes. Embed it in every node struct.
type Base struct {
	Position Position `tree:"position"`
}

func (b Base) Pos() Position { return b.Position }

// TypeDeclaration is a class, interface or enum declaration.
type TypeDeclaration interface {
	Member
	typeDeclarationNode()
}

// Member is anything that may appear in a class body.
type Member interface {
	Node
	memberNode()
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// Type is a type reference. Types are also expressions because they appear
// as the right operand of instanceof and as method reference targets.
type Type interface {
	Expression
	typeNode()
}

// LoopControl is the parenthesized header of a for statement.
type LoopControl interface {
	Node
	loopControlNode()
}

// Primary holds the operators and trailing accesses that may decorate a
// primary expression. Selectors are rendered in order after the core text:
// array selectors in brackets, everything else after a dot.
type Primary struct {
	PrefixOperators  []string     `tree:"prefix_operators"`
	PostfixOperators []string     `tree:"postfix_operators"`
	Selectors        []Expression `tree:"selectors"`
}

func (p *Primary) primary() *Primary { return p }

// Decorated is implemented by every node embedding Primary.
type Decorated interface {
	primary() *Primary
}

// PrimaryOf returns the primary decoration of n, or nil when n cannot carry
// one.
func PrimaryOf(n Node) *Primary {
	if d, ok := n.(Decorated); ok {
		return d.primary()
	}
	return nil
}

// Compound is embedded by expressions that need parentheses to be used as a
// primary: binary operations, ternaries, assignments, casts and lambdas.
type Compound struct {
	Primary
	Parenthesized bool `tree:"parenthesized"`
}

func (c *Compound) compound() *Compound { return c }

// Grouped reports whether the compound expression must be rendered inside
// parentheses.
func (c *Compound) Grouped() bool {
	return c.Parenthesized || len(c.PrefixOperators) > 0 || len(c.PostfixOperators) > 0 || len(c.Selectors) > 0
}

type compoundNode interface {
	compound() *Compound
}
