package tree

type Kind int

const (
	KindUnknown Kind = iota

	// Compilation unit level
	KindCompilationUnit
	KindPackageDeclaration
	KindImport

	// Type declarations
	KindClassDeclaration
	KindInterfaceDeclaration
	KindEnumDeclaration
	KindEnumBody
	KindEnumConstantDeclaration

	// Type references
	KindBasicType
	KindReferenceType
	KindTypeArgument
	KindTypeParameter

	// Annotations
	KindAnnotation
	KindElementValuePair
	KindElementArrayValue

	// Members
	KindMethodDeclaration
	KindFieldDeclaration
	KindConstructorDeclaration
	KindInitializer

	// Declarators and parameters
	KindVariableDeclaration
	KindLocalVariableDeclaration
	KindVariableDeclarator
	KindFormalParameter

	// Statements
	KindIfStatement
	KindWhileStatement
	KindDoStatement
	KindForStatement
	KindForControl
	KindEnhancedForControl
	KindAssertStatement
	KindBreakStatement
	KindContinueStatement
	KindReturnStatement
	KindThrowStatement
	KindSynchronizedStatement
	KindTryStatement
	KindTryResource
	KindCatchClause
	KindCatchClauseParameter
	KindSwitchStatement
	KindSwitchStatementCase
	KindBlockStatement
	KindStatementExpression
	KindEmptyStatement
	KindLabeledStatement

	// Expressions
	KindAssignment
	KindTernaryExpression
	KindBinaryOperation
	KindCast
	KindLiteral
	KindThis
	KindMemberReference
	KindSuperMemberReference
	KindExplicitConstructorInvocation
	KindSuperConstructorInvocation
	KindMethodInvocation
	KindSuperMethodInvocation
	KindArraySelector
	KindClassReference
	KindVoidClassReference
	KindArrayCreator
	KindClassCreator
	KindInnerClassCreator
	KindArrayInitializer
	KindLambdaExpression
	KindMethodReference
)

var kindNames = map[Kind]string{
	KindUnknown:                       "Unknown",
	KindCompilationUnit:               "CompilationUnit",
	KindPackageDeclaration:            "PackageDeclaration",
	KindImport:                        "Import",
	KindClassDeclaration:              "ClassDeclaration",
	KindInterfaceDeclaration:          "InterfaceDeclaration",
	KindEnumDeclaration:               "EnumDeclaration",
	KindEnumBody:                      "EnumBody",
	KindEnumConstantDeclaration:       "EnumConstantDeclaration",
	KindBasicType:                     "BasicType",
	KindReferenceType:                 "ReferenceType",
	KindTypeArgument:                  "TypeArgument",
	KindTypeParameter:                 "TypeParameter",
	KindAnnotation:                    "Annotation",
	KindElementValuePair:              "ElementValuePair",
	KindElementArrayValue:             "ElementArrayValue",
	KindMethodDeclaration:             "MethodDeclaration",
	KindFieldDeclaration:              "FieldDeclaration",
	KindConstructorDeclaration:        "ConstructorDeclaration",
	KindInitializer:                   "Initializer",
	KindVariableDeclaration:           "VariableDeclaration",
	KindLocalVariableDeclaration:      "LocalVariableDeclaration",
	KindVariableDeclarator:            "VariableDeclarator",
	KindFormalParameter:               "FormalParameter",
	KindIfStatement:                   "IfStatement",
	KindWhileStatement:                "WhileStatement",
	KindDoStatement:                   "DoStatement",
	KindForStatement:                  "ForStatement",
	KindForControl:                    "ForControl",
	KindEnhancedForControl:            "EnhancedForControl",
	KindAssertStatement:               "AssertStatement",
	KindBreakStatement:                "BreakStatement",
	KindContinueStatement:             "ContinueStatement",
	KindReturnStatement:               "ReturnStatement",
	KindThrowStatement:                "ThrowStatement",
	KindSynchronizedStatement:         "SynchronizedStatement",
	KindTryStatement:                  "TryStatement",
	KindTryResource:                   "TryResource",
	KindCatchClause:                   "CatchClause",
	KindCatchClauseParameter:          "CatchClauseParameter",
	KindSwitchStatement:               "SwitchStatement",
	KindSwitchStatementCase:           "SwitchStatementCase",
	KindBlockStatement:                "BlockStatement",
	KindStatementExpression:           "StatementExpression",
	KindEmptyStatement:                "EmptyStatement",
	KindLabeledStatement:              "LabeledStatement",
	KindAssignment:                    "Assignment",
	KindTernaryExpression:             "TernaryExpression",
	KindBinaryOperation:               "BinaryOperation",
	KindCast:                          "Cast",
	KindLiteral:                       "Literal",
	KindThis:                          "This",
	KindMemberReference:               "MemberReference",
	KindSuperMemberReference:          "SuperMemberReference",
	KindExplicitConstructorInvocation: "ExplicitConstructorInvocation",
	KindSuperConstructorInvocation:    "SuperConstructorInvocation",
	KindMethodInvocation:              "MethodInvocation",
	KindSuperMethodInvocation:         "SuperMethodInvocation",
	KindArraySelector:                 "ArraySelector",
	KindClassReference:                "ClassReference",
	KindVoidClassReference:            "VoidClassReference",
	KindArrayCreator:                  "ArrayCreator",
	KindClassCreator:                  "ClassCreator",
	KindInnerClassCreator:             "InnerClassCreator",
	KindArrayInitializer:              "ArrayInitializer",
	KindLambdaExpression:              "LambdaExpression",
	KindMethodReference:               "MethodReference",
}

// kindAliases maps names emitted by upstream parsers onto kinds that share
// a Go representation.
var kindAliases = map[string]Kind{
	"Statement":               KindEmptyStatement,
	"InferredFormalParameter": KindFormalParameter,
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames)+len(kindAliases))
	for k, name := range kindNames {
		m[name] = k
	}
	for name, k := range kindAliases {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKind returns the kind registered under name, accepting upstream
// aliases. It reports false for names it does not know.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	if !ok || k == KindUnknown {
		return KindUnknown, false
	}
	return k, true
}
