package tree

type IfStatement struct {
	Base
	Condition Expression `tree:"condition"`
	Then      Statement  `tree:"then_statement"`
	Else      Statement  `tree:"else_statement"`
}

func (*IfStatement) Kind() Kind { return KindIfStatement }

type WhileStatement struct {
	Base
	Condition Expression `tree:"condition"`
	Body      Statement  `tree:"body"`
}

func (*WhileStatement) Kind() Kind { return KindWhileStatement }

type DoStatement struct {
	Base
	Condition Expression `tree:"condition"`
	Body      Statement  `tree:"body"`
}

func (*DoStatement) Kind() Kind { return KindDoStatement }

type ForStatement struct {
	Base
	Control LoopControl `tree:"control"`
	Body    Statement   `tree:"body"`
}

func (*ForStatement) Kind() Kind { return KindForStatement }

// ForControl is a classic for header. The initializer is either a single
// declaration (Init) or a list of expressions (InitExpressions), never both.
type ForControl struct {
	Base
	Init            *VariableDeclaration `tree:"init"`
	InitExpressions []Expression         `tree:"init"`
	Condition       Expression           `tree:"condition"`
	Update          []Expression         `tree:"update"`
}

func (*ForControl) Kind() Kind { return KindForControl }

// EnhancedForControl is a for-each header. Var declares exactly one
// variable.
type EnhancedForControl struct {
	Base
	Var      *VariableDeclaration `tree:"var"`
	Iterable Expression           `tree:"iterable"`
}

func (*EnhancedForControl) Kind() Kind { return KindEnhancedForControl }

type AssertStatement struct {
	Base
	Condition Expression `tree:"condition"`
	Value     Expression `tree:"value"`
}

func (*AssertStatement) Kind() Kind { return KindAssertStatement }

type BreakStatement struct {
	Base
	Goto string `tree:"goto"`
}

func (*BreakStatement) Kind() Kind { return KindBreakStatement }

type ContinueStatement struct {
	Base
	Goto string `tree:"goto"`
}

func (*ContinueStatement) Kind() Kind { return KindContinueStatement }

type ReturnStatement struct {
	Base
	Expression Expression `tree:"expression"`
}

func (*ReturnStatement) Kind() Kind { return KindReturnStatement }

type ThrowStatement struct {
	Base
	Expression Expression `tree:"expression"`
}

func (*ThrowStatement) Kind() Kind { return KindThrowStatement }

type SynchronizedStatement struct {
	Base
	Lock  Expression  `tree:"lock"`
	Block []Statement `tree:"block"`
}

func (*SynchronizedStatement) Kind() Kind { return KindSynchronizedStatement }

type TryStatement struct {
	Base
	Resources []*TryResource  `tree:"resources"`
	Block     []Statement     `tree:"block"`
	Catches   []*CatchClause  `tree:"catches"`
	Finally   *BlockStatement `tree:"finally_block"`
}

func (*TryStatement) Kind() Kind { return KindTryStatement }

type TryResource struct {
	Base
	Annotations []*Annotation `tree:"annotations"`
	Modifiers   Modifiers     `tree:"modifiers"`
	Type        Type          `tree:"type"`
	Name        string        `tree:"name"`
	Value       Expression    `tree:"value"`
}

func (*TryResource) Kind() Kind { return KindTryResource }

type CatchClause struct {
	Base
	Parameter *CatchClauseParameter `tree:"parameter"`
	Block     []Statement           `tree:"block"`
}

func (*CatchClause) Kind() Kind { return KindCatchClause }

// CatchClauseParameter names one or more exception types; more than one
// renders as a multi-catch.
type CatchClauseParameter struct {
	Base
	Annotations []*Annotation `tree:"annotations"`
	Modifiers   Modifiers     `tree:"modifiers"`
	Types       []string      `tree:"types"`
	Name        string        `tree:"name"`
}

func (*CatchClauseParameter) Kind() Kind { return KindCatchClauseParameter }

type SwitchStatement struct {
	Base
	Expression Expression             `tree:"expression"`
	Cases      []*SwitchStatementCase `tree:"cases"`
}

func (*SwitchStatement) Kind() Kind { return KindSwitchStatement }

// SwitchStatementCase groups the labels sharing one statement list. An
// empty label list is the default case.
type SwitchStatementCase struct {
	Base
	Case       []Expression `tree:"case"`
	Statements []Statement  `tree:"statements"`
}

func (*SwitchStatementCase) Kind() Kind { return KindSwitchStatementCase }

type BlockStatement struct {
	Base
	Statements []Statement `tree:"statements"`
}

func (*BlockStatement) Kind() Kind { return KindBlockStatement }

type StatementExpression struct {
	Base
	Expression Expression `tree:"expression"`
}

func (*StatementExpression) Kind() Kind { return KindStatementExpression }

type EmptyStatement struct {
	Base
}

func (*EmptyStatement) Kind() Kind { return KindEmptyStatement }

type LabeledStatement struct {
	Base
	Label     string    `tree:"label"`
	Statement Statement `tree:"statement"`
}

func (*LabeledStatement) Kind() Kind { return KindLabeledStatement }

func (*IfStatement) statementNode()              {}
func (*WhileStatement) statementNode()           {}
func (*DoStatement) statementNode()              {}
func (*ForStatement) statementNode()             {}
func (*AssertStatement) statementNode()          {}
func (*BreakStatement) statementNode()           {}
func (*ContinueStatement) statementNode()        {}
func (*ReturnStatement) statementNode()          {}
func (*ThrowStatement) statementNode()           {}
func (*SynchronizedStatement) statementNode()    {}
func (*TryStatement) statementNode()             {}
func (*SwitchStatement) statementNode()          {}
func (*BlockStatement) statementNode()           {}
func (*StatementExpression) statementNode()      {}
func (*EmptyStatement) statementNode()           {}
func (*LabeledStatement) statementNode()         {}
func (*LocalVariableDeclaration) statementNode() {}

func (*ForControl) loopControlNode()         {}
func (*EnhancedForControl) loopControlNode() {}
