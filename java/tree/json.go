package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// The JSON form of a tree mirrors the attribute names of the upstream
// parser: every node is an object whose "kind" member names its kind and
// whose other members are the struct fields' tree tags. Lists may be
// absent, null or empty. Two quirks of upstream output are accepted:
//
//   - a bare string where an expression is expected is a member reference
//     (switch labels naming enum constants);
//   - method bodies, finally blocks, lambda blocks and anonymous class
//     bodies are plain lists rather than BlockStatement objects.
//
// A compound expression carrying a prefix_operators member was a
// parenthesized primary upstream and decodes with Parenthesized set.

var (
	nodeType      = reflect.TypeOf((*Node)(nil)).Elem()
	positionType  = reflect.TypeOf(Position{})
	blockType     = reflect.TypeOf((*BlockStatement)(nil))
	classBodyType = reflect.TypeOf((*ClassBody)(nil))
	memberRefType = reflect.TypeOf((*MemberReference)(nil))
)

var constructors = map[Kind]func() Node{
	KindCompilationUnit:               func() Node { return &CompilationUnit{} },
	KindPackageDeclaration:            func() Node { return &PackageDeclaration{} },
	KindImport:                        func() Node { return &Import{} },
	KindClassDeclaration:              func() Node { return &ClassDeclaration{} },
	KindInterfaceDeclaration:          func() Node { return &InterfaceDeclaration{} },
	KindEnumDeclaration:               func() Node { return &EnumDeclaration{} },
	KindEnumBody:                      func() Node { return &EnumBody{} },
	KindEnumConstantDeclaration:       func() Node { return &EnumConstantDeclaration{} },
	KindBasicType:                     func() Node { return &BasicType{} },
	KindReferenceType:                 func() Node { return &ReferenceType{} },
	KindTypeArgument:                  func() Node { return &TypeArgument{} },
	KindTypeParameter:                 func() Node { return &TypeParameter{} },
	KindAnnotation:                    func() Node { return &Annotation{} },
	KindElementValuePair:              func() Node { return &ElementValuePair{} },
	KindElementArrayValue:             func() Node { return &ElementArrayValue{} },
	KindMethodDeclaration:             func() Node { return &MethodDeclaration{} },
	KindFieldDeclaration:              func() Node { return &FieldDeclaration{} },
	KindConstructorDeclaration:        func() Node { return &ConstructorDeclaration{} },
	KindInitializer:                   func() Node { return &Initializer{} },
	KindVariableDeclaration:           func() Node { return &VariableDeclaration{} },
	KindLocalVariableDeclaration:      func() Node { return &LocalVariableDeclaration{} },
	KindVariableDeclarator:            func() Node { return &VariableDeclarator{} },
	KindFormalParameter:               func() Node { return &FormalParameter{} },
	KindIfStatement:                   func() Node { return &IfStatement{} },
	KindWhileStatement:                func() Node { return &WhileStatement{} },
	KindDoStatement:                   func() Node { return &DoStatement{} },
	KindForStatement:                  func() Node { return &ForStatement{} },
	KindForControl:                    func() Node { return &ForControl{} },
	KindEnhancedForControl:            func() Node { return &EnhancedForControl{} },
	KindAssertStatement:               func() Node { return &AssertStatement{} },
	KindBreakStatement:                func() Node { return &BreakStatement{} },
	KindContinueStatement:             func() Node { return &ContinueStatement{} },
	KindReturnStatement:               func() Node { return &ReturnStatement{} },
	KindThrowStatement:                func() Node { return &ThrowStatement{} },
	KindSynchronizedStatement:         func() Node { return &SynchronizedStatement{} },
	KindTryStatement:                  func() Node { return &TryStatement{} },
	KindTryResource:                   func() Node { return &TryResource{} },
	KindCatchClause:                   func() Node { return &CatchClause{} },
	KindCatchClauseParameter:          func() Node { return &CatchClauseParameter{} },
	KindSwitchStatement:               func() Node { return &SwitchStatement{} },
	KindSwitchStatementCase:           func() Node { return &SwitchStatementCase{} },
	KindBlockStatement:                func() Node { return &BlockStatement{} },
	KindStatementExpression:           func() Node { return &StatementExpression{} },
	KindEmptyStatement:                func() Node { return &EmptyStatement{} },
	KindLabeledStatement:              func() Node { return &LabeledStatement{} },
	KindAssignment:                    func() Node { return &Assignment{} },
	KindTernaryExpression:             func() Node { return &TernaryExpression{} },
	KindBinaryOperation:               func() Node { return &BinaryOperation{} },
	KindCast:                          func() Node { return &Cast{} },
	KindLiteral:                       func() Node { return &Literal{} },
	KindThis:                          func() Node { return &This{} },
	KindMemberReference:               func() Node { return &MemberReference{} },
	KindSuperMemberReference:          func() Node { return &SuperMemberReference{} },
	KindExplicitConstructorInvocation: func() Node { return &ExplicitConstructorInvocation{} },
	KindSuperConstructorInvocation:    func() Node { return &SuperConstructorInvocation{} },
	KindMethodInvocation:              func() Node { return &MethodInvocation{} },
	KindSuperMethodInvocation:         func() Node { return &SuperMethodInvocation{} },
	KindArraySelector:                 func() Node { return &ArraySelector{} },
	KindClassReference:                func() Node { return &ClassReference{} },
	KindVoidClassReference:            func() Node { return &VoidClassReference{} },
	KindArrayCreator:                  func() Node { return &ArrayCreator{} },
	KindClassCreator:                  func() Node { return &ClassCreator{} },
	KindInnerClassCreator:             func() Node { return &InnerClassCreator{} },
	KindArrayInitializer:              func() Node { return &ArrayInitializer{} },
	KindLambdaExpression:              func() Node { return &LambdaExpression{} },
	KindMethodReference:               func() Node { return &MethodReference{} },
}

// DecodeError reports a JSON tree that does not describe a valid node.
// Path locates the offending value, starting at "$" for the root.
type DecodeError struct {
	Path string
	Msg  string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tree: %s: %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("tree: %s: %s", e.Path, e.Msg)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Unmarshal decodes one JSON tree.
func Unmarshal(data []byte) (Node, error) {
	var d decoder
	n, err := d.node(json.RawMessage(data), "$")
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &DecodeError{Path: "$", Msg: "empty tree"}
	}
	return n, nil
}

// Decode reads r to the end and decodes it as one JSON tree.
func Decode(r io.Reader) (Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}
	return Unmarshal(data)
}

type decoder struct{}

func (d *decoder) node(raw json.RawMessage, path string) (Node, error) {
	if isNull(raw) {
		return nil, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, &DecodeError{Path: path, Msg: "expected node object", Err: err}
	}
	kindRaw, ok := obj["kind"]
	if !ok {
		return nil, &DecodeError{Path: path, Msg: "missing kind"}
	}
	var name string
	if err := json.Unmarshal(kindRaw, &name); err != nil {
		return nil, &DecodeError{Path: path + ".kind", Msg: "expected string", Err: err}
	}
	kind, ok := ParseKind(name)
	if !ok {
		return nil, &DecodeError{Path: path, Msg: fmt.Sprintf("unknown kind %q", name)}
	}

	n := constructors[kind]()
	if err := d.fields(reflect.ValueOf(n).Elem(), obj, path); err != nil {
		return nil, err
	}
	if c, ok := n.(compoundNode); ok {
		if _, marked := obj["prefix_operators"]; marked {
			c.compound().Parenthesized = true
		}
	}
	return n, nil
}

func (d *decoder) fields(v reflect.Value, obj map[string]json.RawMessage, path string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if err := d.fields(v.Field(i), obj, path); err != nil {
				return err
			}
			continue
		}
		name := tagName(f)
		if name == "" {
			continue
		}
		raw, ok := obj[name]
		if !ok || isNull(raw) {
			continue
		}
		// Fields sharing a name are told apart by the shape of the value.
		if sharedName(t, i, name) && listShaped(f.Type) != isArray(raw) {
			continue
		}
		if hasOption(f, "holes") {
			if err := d.list(v.Field(i), raw, path+"."+name, true); err != nil {
				return err
			}
			continue
		}
		if err := d.value(v.Field(i), raw, path+"."+name); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) value(fv reflect.Value, raw json.RawMessage, path string) error {
	if isNull(raw) {
		return nil
	}
	ft := fv.Type()
	switch {
	case ft == positionType:
		var pos struct {
			Line   int `json:"line"`
			Column int `json:"column"`
		}
		if err := json.Unmarshal(raw, &pos); err != nil {
			return &DecodeError{Path: path, Msg: "invalid position", Err: err}
		}
		fv.Set(reflect.ValueOf(Position{Line: pos.Line, Column: pos.Column}))

	case ft == blockType && isArray(raw):
		var stmts []Statement
		if err := d.value(reflect.ValueOf(&stmts).Elem(), raw, path); err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(&BlockStatement{Statements: stmts}))

	case ft == classBodyType:
		var members []Member
		if err := d.value(reflect.ValueOf(&members).Elem(), raw, path); err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(&ClassBody{Members: members}))

	case ft.Implements(nodeType):
		n, err := d.element(raw, ft, path)
		if err != nil || n == nil {
			return err
		}
		nv := reflect.ValueOf(n)
		if !nv.Type().AssignableTo(ft) {
			return &DecodeError{Path: path, Msg: fmt.Sprintf("%s is not allowed here", n.Kind())}
		}
		fv.Set(nv)

	case ft.Kind() == reflect.Slice && ft.Elem().Implements(nodeType):
		return d.list(fv, raw, path, false)

	case ft.Kind() == reflect.Int && isArray(raw):
		// Upstream encodes array dimensions as a list with one entry per
		// bracket pair.
		var dims []json.RawMessage
		if err := json.Unmarshal(raw, &dims); err != nil {
			return &DecodeError{Path: path, Msg: "invalid dimensions", Err: err}
		}
		fv.SetInt(int64(len(dims)))

	default:
		if err := json.Unmarshal(raw, fv.Addr().Interface()); err != nil {
			return &DecodeError{Path: path, Msg: "invalid " + ft.String(), Err: err}
		}
	}
	return nil
}

// list decodes a node list. A null entry is an error unless holes is set,
// in which case it stays nil.
func (d *decoder) list(fv reflect.Value, raw json.RawMessage, path string, holes bool) error {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return &DecodeError{Path: path, Msg: "expected list", Err: err}
	}
	ft := fv.Type()
	s := reflect.MakeSlice(ft, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		if isNull(item) && !holes {
			return &DecodeError{Path: itemPath, Msg: "null list entry"}
		}
		ev := reflect.New(ft.Elem()).Elem()
		if err := d.value(ev, item, itemPath); err != nil {
			return err
		}
		s = reflect.Append(s, ev)
	}
	fv.Set(s)
	return nil
}

func (d *decoder) element(raw json.RawMessage, want reflect.Type, path string) (Node, error) {
	if isString(raw) && memberRefType.AssignableTo(want) {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, &DecodeError{Path: path, Msg: "invalid name", Err: err}
		}
		return &MemberReference{Member: name}, nil
	}
	return d.node(raw, path)
}

// Marshal encodes n in the JSON tree format accepted by Unmarshal.
func Marshal(n Node) ([]byte, error) {
	var e encoder
	if err := e.node(n); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// MarshalIndent is like Marshal but indents the output like
// json.MarshalIndent.
func MarshalIndent(n Node, prefix, indent string) ([]byte, error) {
	data, err := Marshal(n)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) node(n Node) error {
	if isNilNode(n) {
		e.buf.WriteString("null")
		return nil
	}
	e.buf.WriteString(`{"kind":`)
	e.string(n.Kind().String())
	if err := e.fields(reflect.ValueOf(n).Elem()); err != nil {
		return err
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) fields(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous {
			if err := e.fields(fv); err != nil {
				return err
			}
			continue
		}
		name := tagName(f)
		if name == "" || isEmptyValue(fv) {
			continue
		}
		e.buf.WriteByte(',')
		e.string(name)
		e.buf.WriteByte(':')
		if err := e.value(fv); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) value(fv reflect.Value) error {
	ft := fv.Type()
	switch {
	case ft == positionType:
		pos := fv.Interface().(Position)
		fmt.Fprintf(&e.buf, `{"line":%d,"column":%d}`, pos.Line, pos.Column)
	case ft == blockType:
		return e.list(reflect.ValueOf(fv.Interface().(*BlockStatement).Statements))
	case ft == classBodyType:
		return e.list(reflect.ValueOf(fv.Interface().(*ClassBody).Members))
	case ft.Implements(nodeType):
		return e.node(fv.Interface().(Node))
	case ft.Kind() == reflect.Slice && ft.Elem().Implements(nodeType):
		return e.list(fv)
	default:
		data, err := json.Marshal(fv.Interface())
		if err != nil {
			return err
		}
		e.buf.Write(data)
	}
	return nil
}

func (e *encoder) list(s reflect.Value) error {
	e.buf.WriteByte('[')
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		var n Node
		if item := s.Index(i); !item.IsNil() {
			n = item.Interface().(Node)
		}
		if err := e.node(n); err != nil {
			return err
		}
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) string(s string) {
	data, _ := json.Marshal(s)
	e.buf.Write(data)
}

func tagName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(f.Tag.Get("tree"), ",")
	return name
}

func hasOption(f reflect.StructField, option string) bool {
	_, opts, _ := strings.Cut(f.Tag.Get("tree"), ",")
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == option {
			return true
		}
	}
	return false
}

func sharedName(t reflect.Type, index int, name string) bool {
	for i := 0; i < t.NumField(); i++ {
		if i != index && tagName(t.Field(i)) == name {
			return true
		}
	}
	return false
}

func listShaped(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t == blockType || t == classBodyType
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	case reflect.Struct:
		if v.Type() == positionType {
			return !v.Interface().(Position).IsValid()
		}
	}
	return v.IsZero()
}

func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isArray(raw json.RawMessage) bool  { return firstByte(raw) == '[' }
func isString(raw json.RawMessage) bool { return firstByte(raw) == '"' }
