package tree

// Assignment is target op value, where Operator is "=", "+=", and so on.
type Assignment struct {
	Base
	Compound
	Target   Expression `tree:"expressionl"`
	Value    Expression `tree:"value"`
	Operator string     `tree:"type"`
}

func (*Assignment) Kind() Kind { return KindAssignment }

type TernaryExpression struct {
	Base
	Compound
	Condition Expression `tree:"condition"`
	IfTrue    Expression `tree:"if_true"`
	IfFalse   Expression `tree:"if_false"`
}

func (*TernaryExpression) Kind() Kind { return KindTernaryExpression }

// BinaryOperation covers infix operators including instanceof, whose right
// operand is a Type.
type BinaryOperation struct {
	Base
	Compound
	Operator string     `tree:"operator"`
	Left     Expression `tree:"operandl"`
	Right    Expression `tree:"operandr"`
}

func (*BinaryOperation) Kind() Kind { return KindBinaryOperation }

type Cast struct {
	Base
	Compound
	Type       Type       `tree:"type"`
	Expression Expression `tree:"expression"`
}

func (*Cast) Kind() Kind { return KindCast }

// Literal holds the literal exactly as written, quotes and suffixes included.
type Literal struct {
	Base
	Primary
	Value string `tree:"value"`
}

func (*Literal) Kind() Kind { return KindLiteral }

type This struct {
	Base
	Primary
	Qualifier string `tree:"qualifier"`
}

func (*This) Kind() Kind { return KindThis }

// MemberReference names a variable or field, optionally qualified.
type MemberReference struct {
	Base
	Primary
	Qualifier string `tree:"qualifier"`
	Member    string `tree:"member"`
}

func (*MemberReference) Kind() Kind { return KindMemberReference }

type SuperMemberReference struct {
	Base
	Primary
	Member string `tree:"member"`
}

func (*SuperMemberReference) Kind() Kind { return KindSuperMemberReference }

// ExplicitConstructorInvocation is this(args) inside a constructor.
type ExplicitConstructorInvocation struct {
	Base
	Arguments []Expression `tree:"arguments"`
}

func (*ExplicitConstructorInvocation) Kind() Kind { return KindExplicitConstructorInvocation }

type SuperConstructorInvocation struct {
	Base
	Arguments []Expression `tree:"arguments"`
}

func (*SuperConstructorInvocation) Kind() Kind { return KindSuperConstructorInvocation }

type MethodInvocation struct {
	Base
	Primary
	Qualifier     string          `tree:"qualifier"`
	TypeArguments []*TypeArgument `tree:"type_arguments"`
	Member        string          `tree:"member"`
	Arguments     []Expression    `tree:"arguments"`
}

func (*MethodInvocation) Kind() Kind { return KindMethodInvocation }

type SuperMethodInvocation struct {
	Base
	Primary
	Member    string       `tree:"member"`
	Arguments []Expression `tree:"arguments"`
}

func (*SuperMethodInvocation) Kind() Kind { return KindSuperMethodInvocation }

// ArraySelector is an index access; it only appears in selector chains.
type ArraySelector struct {
	Base
	Index Expression `tree:"index"`
}

func (*ArraySelector) Kind() Kind { return KindArraySelector }

// ClassReference is a class literal such as String.class.
type ClassReference struct {
	Base
	Primary
	Type Type `tree:"type"`
}

func (*ClassReference) Kind() Kind { return KindClassReference }

type VoidClassReference struct {
	Base
	Primary
}

func (*VoidClassReference) Kind() Kind { return KindVoidClassReference }

// ArrayCreator is new T[n][]... A nil entry in Dimensions is an empty
// bracket pair.
type ArrayCreator struct {
	Base
	Primary
	Type        Type              `tree:"type"`
	Dimensions  []Expression      `tree:"dimensions,holes"`
	Initializer *ArrayInitializer `tree:"initializer"`
}

func (*ArrayCreator) Kind() Kind { return KindArrayCreator }

// ClassCreator is new T(args), optionally with an anonymous class body.
// At most one selector may follow it.
type ClassCreator struct {
	Base
	Primary
	Type      Type         `tree:"type"`
	Arguments []Expression `tree:"arguments"`
	Body      *ClassBody   `tree:"body"`
}

func (*ClassCreator) Kind() Kind { return KindClassCreator }

// InnerClassCreator is the new Inner(args) part of outer.new Inner(args).
type InnerClassCreator struct {
	Base
	Primary
	Type      Type         `tree:"type"`
	Arguments []Expression `tree:"arguments"`
	Body      *ClassBody   `tree:"body"`
}

func (*InnerClassCreator) Kind() Kind { return KindInnerClassCreator }

type ArrayInitializer struct {
	Base
	Initializers []Expression `tree:"initializers"`
}

func (*ArrayInitializer) Kind() Kind { return KindArrayInitializer }

// LambdaExpression has either an expression Body or a statement Block.
type LambdaExpression struct {
	Base
	Compound
	Parameters []*FormalParameter `tree:"parameters"`
	Body       Expression         `tree:"body"`
	Block      *BlockStatement    `tree:"body"`
}

func (*LambdaExpression) Kind() Kind { return KindLambdaExpression }

// MethodReference is target::method. Method is nil for constructor
// references (T::new).
type MethodReference struct {
	Base
	Primary
	Target Expression       `tree:"expression"`
	Method *MemberReference `tree:"method"`
}

func (*MethodReference) Kind() Kind { return KindMethodReference }

func (*Assignment) expressionNode()                    {}
func (*TernaryExpression) expressionNode()             {}
func (*BinaryOperation) expressionNode()               {}
func (*Cast) expressionNode()                          {}
func (*Literal) expressionNode()                       {}
func (*This) expressionNode()                          {}
func (*MemberReference) expressionNode()               {}
func (*SuperMemberReference) expressionNode()          {}
func (*ExplicitConstructorInvocation) expressionNode() {}
func (*SuperConstructorInvocation) expressionNode()    {}
func (*MethodInvocation) expressionNode()              {}
func (*SuperMethodInvocation) expressionNode()         {}
func (*ArraySelector) expressionNode()                 {}
func (*ClassReference) expressionNode()                {}
func (*VoidClassReference) expressionNode()            {}
func (*ArrayCreator) expressionNode()                  {}
func (*ClassCreator) expressionNode()                  {}
func (*InnerClassCreator) expressionNode()             {}
func (*ArrayInitializer) expressionNode()              {}
func (*LambdaExpression) expressionNode()              {}
func (*MethodReference) expressionNode()               {}
