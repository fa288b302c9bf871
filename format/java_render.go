package format

import (
	"reflect"
	"strings"

	"github.com/dhamidi/junparse/java/tree"
)

const (
	DefaultIndentWidth = 4
	DefaultMaxNesting  = 1000
)

// Renderer turns a syntax tree into Java source text. A Renderer holds only
// configuration and may be shared between goroutines.
type Renderer struct {
	unit       string
	depth      int
	maxNesting int
}

type Option func(*Renderer)

// WithIndentWidth sets the indentation unit to width spaces.
func WithIndentWidth(width int) Option {
	return func(r *Renderer) {
		if width < 0 {
			width = 0
		}
		r.unit = strings.Repeat(" ", width)
	}
}

// WithIndentUnit sets the string repeated once per indentation level, for
// example "\t".
func WithIndentUnit(unit string) Option {
	return func(r *Renderer) {
		r.unit = unit
	}
}

// WithDepth sets the indentation depth of the root node.
func WithDepth(depth int) Option {
	return func(r *Renderer) {
		if depth < 0 {
			depth = 0
		}
		r.depth = depth
	}
}

// WithMaxNesting bounds how deeply nodes may nest before rendering fails.
func WithMaxNesting(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxNesting = n
		}
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		unit:       strings.Repeat(" ", DefaultIndentWidth),
		maxNesting: DefaultMaxNesting,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders root with a Renderer configured by opts.
func Render(root tree.Node, opts ...Option) (string, error) {
	return New(opts...).Render(root)
}

// Render renders n at the configured depth.
func (r *Renderer) Render(n tree.Node) (string, error) {
	return r.RenderAt(n, r.depth)
}

// RenderAt renders n at the given indentation depth. On failure the error is
// an *UnsupportedConstructError and the text is empty.
func (r *Renderer) RenderAt(n tree.Node, depth int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			f, ok := rec.(failure)
			if !ok {
				panic(rec)
			}
			text, err = "", f.err
		}
	}()
	if depth < 0 {
		depth = 0
	}
	s := &renderState{Renderer: r}
	return s.node(n, depth), nil
}

// renderState is the per-call state of one render.
type renderState struct {
	*Renderer
	nesting int
}

func (s *renderState) fail(n tree.Node, reason string) {
	panic(failure{err: unsupported(n, reason)})
}

func (s *renderState) enter(n tree.Node) {
	if missing(n) {
		s.fail(nil, "missing node")
	}
	s.nesting++
	if s.nesting > s.maxNesting {
		s.fail(n, "nesting too deep")
	}
}

func (s *renderState) leave() {
	s.nesting--
}

func (s *renderState) indent(depth int) string {
	return strings.Repeat(s.unit, depth)
}

// node renders any node. Declarations and statements get the leading
// indentation of depth; expressions and fragments are rendered bare.
func (s *renderState) node(n tree.Node, depth int) string {
	if missing(n) {
		s.fail(nil, "missing node")
	}
	switch n := n.(type) {
	case *tree.CompilationUnit:
		return s.compilationUnit(n, depth)
	case *tree.PackageDeclaration:
		return s.indent(depth) + s.packageDecl(n)
	case *tree.Import:
		return s.indent(depth) + s.importDecl(n)
	case tree.Member:
		return s.member(n, depth)
	case tree.Statement:
		return s.indent(depth) + s.stmt(n, depth)
	case tree.Expression:
		return s.expr(n, depth)
	case *tree.EnumBody:
		return s.enumBody(n, depth)
	case *tree.EnumConstantDeclaration:
		return s.enumConstant(n, depth)
	case *tree.VariableDeclarator:
		return s.declarator(n, depth)
	case *tree.VariableDeclaration:
		return s.indent(depth) + s.varDecl(n, depth) + ";"
	case *tree.FormalParameter:
		return s.param(n)
	case *tree.TypeArgument:
		return s.typeArg(n)
	case *tree.TypeParameter:
		return s.typeParam(n)
	case *tree.ElementValuePair:
		return s.elementValuePair(n, depth)
	case *tree.ForControl:
		return s.forControl(n, depth)
	case *tree.EnhancedForControl:
		return s.enhancedForControl(n, depth)
	case *tree.CatchClause:
		return s.catchClause(n, depth)
	case *tree.CatchClauseParameter:
		return s.catchParam(n)
	case *tree.SwitchStatementCase:
		return s.switchCase(n, depth)
	case *tree.TryResource:
		return s.tryResource(n, depth)
	}
	s.fail(n, "no rendering rule")
	return ""
}

// missing reports whether n is nil or a nil pointer.
func missing(n tree.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// each renders every entry of list, failing on owner when an entry is
// missing.
func each[T tree.Node](s *renderState, owner tree.Node, list []T, what string, render func(T) string) []string {
	parts := make([]string, len(list))
	for i, item := range list {
		if missing(item) {
			s.fail(owner, "missing "+what)
		}
		parts[i] = render(item)
	}
	return parts
}

// words joins the non-empty parts with single spaces.
func words(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func modifiers(m tree.Modifiers) string {
	return strings.Join(m.Sorted(), " ")
}
