package tree

import (
	"sort"
)

// Modifiers is the set of modifier keywords attached to a declaration.
// Order and duplicates carry no meaning.
type Modifiers []string

// Sorted returns the modifiers deduplicated and in lexicographic order.
func (m Modifiers) Sorted() []string {
	if len(m) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(m))
	out := make([]string, 0, len(m))
	for _, mod := range m {
		if mod == "" || seen[mod] {
			continue
		}
		seen[mod] = true
		out = append(out, mod)
	}
	sort.Strings(out)
	return out
}

func (m Modifiers) Has(mod string) bool {
	for _, x := range m {
		if x == mod {
			return true
		}
	}
	return false
}

type CompilationUnit struct {
	Base
	Package *PackageDeclaration `tree:"package"`
	Imports []*Import           `tree:"imports"`
	Types   []TypeDeclaration   `tree:"types"`
}

func (*CompilationUnit) Kind() Kind { return KindCompilationUnit }

type PackageDeclaration struct {
	Base
	Annotations []*Annotation `tree:"annotations"`
	Name        string        `tree:"name"`
}

func (*PackageDeclaration) Kind() Kind { return KindPackageDeclaration }

type Import struct {
	Base
	Path     string `tree:"path"`
	Static   bool   `tree:"static"`
	Wildcard bool   `tree:"wildcard"`
}

func (*Import) Kind() Kind { return KindImport }

type ClassDeclaration struct {
	Base
	Annotations    []*Annotation    `tree:"annotations"`
	Modifiers      Modifiers        `tree:"modifiers"`
	Name           string           `tree:"name"`
	TypeParameters []*TypeParameter `tree:"type_parameters"`
	Extends        Type             `tree:"extends"`
	Implements     []Type           `tree:"implements"`
	Body           []Member         `tree:"body"`
}

func (*ClassDeclaration) Kind() Kind { return KindClassDeclaration }

type InterfaceDeclaration struct {
	Base
	Annotations    []*Annotation    `tree:"annotations"`
	Modifiers      Modifiers        `tree:"modifiers"`
	Name           string           `tree:"name"`
	TypeParameters []*TypeParameter `tree:"type_parameters"`
	Extends        []Type           `tree:"extends"`
	Body           []Member         `tree:"body"`
}

func (*InterfaceDeclaration) Kind() Kind { return KindInterfaceDeclaration }

type EnumDeclaration struct {
	Base
	Annotations []*Annotation `tree:"annotations"`
	Modifiers   Modifiers     `tree:"modifiers"`
	Name        string        `tree:"name"`
	Implements  []Type        `tree:"implements"`
	Body        *EnumBody     `tree:"body"`
}

func (*EnumDeclaration) Kind() Kind { return KindEnumDeclaration }

type EnumBody struct {
	Base
	Constants    []*EnumConstantDeclaration `tree:"constants"`
	Declarations []Member                   `tree:"declarations"`
}

func (*EnumBody) Kind() Kind { return KindEnumBody }

// EnumConstantDeclaration is one enum constant. Constants with a class body
// are not renderable.
type EnumConstantDeclaration struct {
	Base
	Annotations []*Annotation `tree:"annotations"`
	Name        string        `tree:"name"`
	Arguments   []Expression  `tree:"arguments"`
	Body        *ClassBody    `tree:"body"`
}

func (*EnumConstantDeclaration) Kind() Kind { return KindEnumConstantDeclaration }

// ClassBody is the member list of an anonymous class or enum constant.
type ClassBody struct {
	Members []Member
}

type MethodDeclaration struct {
	Base
	Annotations    []*Annotation      `tree:"annotations"`
	Modifiers      Modifiers          `tree:"modifiers"`
	TypeParameters []*TypeParameter   `tree:"type_parameters"`
	ReturnType     Type               `tree:"return_type"` // nil means void
	Name           string             `tree:"name"`
	Parameters     []*FormalParameter `tree:"parameters"`
	Throws         []string           `tree:"throws"`
	Body           *BlockStatement    `tree:"body"` // nil for abstract and interface methods
}

func (*MethodDeclaration) Kind() Kind { return KindMethodDeclaration }

type FieldDeclaration struct {
	Base
	Annotations []*Annotation         `tree:"annotations"`
	Modifiers   Modifiers             `tree:"modifiers"`
	Type        Type                  `tree:"type"`
	Declarators []*VariableDeclarator `tree:"declarators"`
}

func (*FieldDeclaration) Kind() Kind { return KindFieldDeclaration }

type ConstructorDeclaration struct {
	Base
	Annotations    []*Annotation      `tree:"annotations"`
	Modifiers      Modifiers          `tree:"modifiers"`
	TypeParameters []*TypeParameter   `tree:"type_parameters"`
	Name           string             `tree:"name"`
	Parameters     []*FormalParameter `tree:"parameters"`
	Throws         []string           `tree:"throws"`
	Body           []Statement        `tree:"body"`
}

func (*ConstructorDeclaration) Kind() Kind { return KindConstructorDeclaration }

// Initializer is a static or instance initializer block in a class body.
type Initializer struct {
	Base
	Static bool        `tree:"static"`
	Body   []Statement `tree:"body"`
}

func (*Initializer) Kind() Kind { return KindInitializer }

// VariableDeclaration is a declaration without a statement terminator, as
// found in for headers.
type VariableDeclaration struct {
	Base
	Annotations []*Annotation         `tree:"annotations"`
	Modifiers   Modifiers             `tree:"modifiers"`
	Type        Type                  `tree:"type"`
	Declarators []*VariableDeclarator `tree:"declarators"`
}

func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

type LocalVariableDeclaration struct {
	Base
	Annotations []*Annotation         `tree:"annotations"`
	Modifiers   Modifiers             `tree:"modifiers"`
	Type        Type                  `tree:"type"`
	Declarators []*VariableDeclarator `tree:"declarators"`
}

func (*LocalVariableDeclaration) Kind() Kind { return KindLocalVariableDeclaration }

type VariableDeclarator struct {
	Base
	Name        string     `tree:"name"`
	Initializer Expression `tree:"initializer"`
}

func (*VariableDeclarator) Kind() Kind { return KindVariableDeclarator }

// FormalParameter is a method, constructor or lambda parameter. A nil Type
// marks an inferred lambda parameter.
type FormalParameter struct {
	Base
	Annotations []*Annotation `tree:"annotations"`
	Modifiers   Modifiers     `tree:"modifiers"`
	Type        Type          `tree:"type"`
	Name        string        `tree:"name"`
	Varargs     bool          `tree:"varargs"`
}

func (*FormalParameter) Kind() Kind { return KindFormalParameter }

// Annotation is used both on declarations and as an element value. It has
// either a single Element, a list of Pairs, or neither.
type Annotation struct {
	Base
	Name    string              `tree:"name"`
	Element Expression          `tree:"element"`
	Pairs   []*ElementValuePair `tree:"element"`
}

func (*Annotation) Kind() Kind { return KindAnnotation }

type ElementValuePair struct {
	Base
	Name  string     `tree:"name"`
	Value Expression `tree:"value"`
}

func (*ElementValuePair) Kind() Kind { return KindElementValuePair }

// ElementArrayValue is an annotation element of the form {a, b}.
type ElementArrayValue struct {
	Base
	Values []Expression `tree:"values"`
}

func (*ElementArrayValue) Kind() Kind { return KindElementArrayValue }

func (*ClassDeclaration) memberNode()       {}
func (*InterfaceDeclaration) memberNode()   {}
func (*EnumDeclaration) memberNode()        {}
func (*MethodDeclaration) memberNode()      {}
func (*FieldDeclaration) memberNode()       {}
func (*ConstructorDeclaration) memberNode() {}
func (*Initializer) memberNode()            {}

func (*ClassDeclaration) typeDeclarationNode()     {}
func (*InterfaceDeclaration) typeDeclarationNode() {}
func (*EnumDeclaration) typeDeclarationNode()      {}

// Local class, interface and enum declarations are statements.
func (*ClassDeclaration) statementNode()     {}
func (*InterfaceDeclaration) statementNode() {}
func (*EnumDeclaration) statementNode()      {}

func (*Annotation) expressionNode()        {}
func (*ElementArrayValue) expressionNode() {}
