package ast

import (
	"bytes"
	"strings"
)

// Block is an ordered sequence of statements. The parser returns a Block as
// the root of every program.
type Block struct {
	statements []Node
}

// NewBlock creates a Block holding the given statements in source order.
func NewBlock(statements []Node) *Block {
	return &Block{statements: statements}
}

func (b *Block) node()     {}
func (b *Block) stmtNode() {}

// Statements returns the statements in source order.
func (b *Block) Statements() []Node { return b.statements }

// Len returns the number of statements in the block.
func (b *Block) Len() int { return len(b.statements) }

// First returns the first statement, or nil if the block is empty.
func (b *Block) First() Node {
	if len(b.statements) == 0 {
		return nil
	}
	return b.statements[0]
}

func (b *Block) Fields() []Field {
	return []Field{{"statements", b.statements}}
}

func (b *Block) String() string {
	if len(b.statements) == 0 {
		return "{}"
	}
	return "{ " + joinStrings(b.statements, "; ") + " }"
}

// Declaration introduces a variable without an initial value, e.g. "let x".
type Declaration struct {
	keyword Keyword
	name    string
}

// NewDeclaration creates a Declaration. A const binding always requires an
// initializer, so Const is rejected with ErrConstDeclaration.
func NewDeclaration(keyword Keyword, name string) (*Declaration, error) {
	if keyword == Const {
		return nil, ErrConstDeclaration
	}
	return &Declaration{keyword: keyword, name: name}, nil
}

func (d *Declaration) node()     {}
func (d *Declaration) stmtNode() {}
func (d *Declaration) binding()  {}

func (d *Declaration) Keyword() Keyword { return d.keyword }

func (d *Declaration) Name() string { return d.name }

func (d *Declaration) Fields() []Field {
	return []Field{{"keyword", string(d.keyword)}, {"name", d.name}}
}

func (d *Declaration) String() string {
	return string(d.keyword) + " " + d.name
}

// Definition introduces a variable with an initial value, e.g. "const x = 1".
type Definition struct {
	keyword Keyword
	name    string
	value   Expr
}

// NewDefinition creates a Definition.
func NewDefinition(keyword Keyword, name string, value Expr) *Definition {
	return &Definition{keyword: keyword, name: name, value: value}
}

func (d *Definition) node()     {}
func (d *Definition) stmtNode() {}
func (d *Definition) binding()  {}

func (d *Definition) Keyword() Keyword { return d.keyword }

func (d *Definition) Name() string { return d.name }

func (d *Definition) Value() Expr { return d.value }

func (d *Definition) Fields() []Field {
	return []Field{{"keyword", string(d.keyword)}, {"name", d.name}, {"value", d.value}}
}

func (d *Definition) String() string {
	return string(d.keyword) + " " + d.name + " = " + d.value.String()
}

// ChainedDefinition holds several bindings introduced by one keyword, as in
// "let a = 1, b, c = 3".
type ChainedDefinition struct {
	keyword  Keyword
	bindings []Binding
}

// NewChainedDefinition creates a ChainedDefinition. It requires at least two
// bindings that all share the same keyword.
func NewChainedDefinition(bindings []Binding) (*ChainedDefinition, error) {
	if len(bindings) < 2 {
		return nil, ErrInvalidChain
	}
	keyword := bindings[0].Keyword()
	for _, b := range bindings[1:] {
		if b.Keyword() != keyword {
			return nil, ErrInvalidChain
		}
	}
	return &ChainedDefinition{keyword: keyword, bindings: bindings}, nil
}

func (c *ChainedDefinition) node()     {}
func (c *ChainedDefinition) stmtNode() {}

func (c *ChainedDefinition) Keyword() Keyword { return c.keyword }

// Bindings returns the declarations and definitions in source order.
func (c *ChainedDefinition) Bindings() []Binding { return c.bindings }

func (c *ChainedDefinition) Fields() []Field {
	return []Field{{"keyword", string(c.keyword)}, {"definitions", nodeList(c.bindings)}}
}

func (c *ChainedDefinition) String() string {
	var out bytes.Buffer
	out.WriteString(string(c.keyword))
	out.WriteString(" ")
	for i, b := range c.bindings {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(strings.TrimPrefix(b.String(), string(c.keyword)+" "))
	}
	return out.String()
}

// While is a pre-tested loop. Its body is nil for "while (cond);".
type While struct {
	condition Expr
	body      Node
}

func NewWhile(condition Expr, body Node) *While {
	return &While{condition: condition, body: body}
}

func (w *While) node()     {}
func (w *While) stmtNode() {}

func (w *While) Condition() Expr { return w.condition }

func (w *While) Body() Node { return w.body }

func (w *While) Fields() []Field {
	return []Field{{"condition", w.condition}, {"body", optional(w.body)}}
}

func (w *While) String() string {
	if w.body == nil {
		return "while (" + w.condition.String() + ");"
	}
	return "while (" + w.condition.String() + ") " + w.body.String()
}

// For is a C-style loop. Each of the three clauses may be absent.
type For struct {
	init      Node
	condition Expr
	iteration Expr
	body      Node
}

func NewFor(init Node, condition, iteration Expr, body Node) *For {
	return &For{init: init, condition: condition, iteration: iteration, body: body}
}

func (f *For) node()     {}
func (f *For) stmtNode() {}

// Init returns the initialization clause: a declaration, a definition, an
// expression, or nil.
func (f *For) Init() Node { return f.init }

func (f *For) Condition() Expr { return f.condition }

func (f *For) Iteration() Expr { return f.iteration }

func (f *For) Body() Node { return f.body }

func (f *For) Fields() []Field {
	return []Field{
		{"initialization", optional(f.init)},
		{"condition", optional(f.condition)},
		{"iteration", optional(f.iteration)},
		{"body", optional(f.body)},
	}
}

func (f *For) String() string {
	clause := func(n Node) string {
		if n == nil {
			return ""
		}
		return n.String()
	}
	var out bytes.Buffer
	out.WriteString("for (")
	out.WriteString(clause(f.init))
	out.WriteString("; ")
	if f.condition != nil {
		out.WriteString(f.condition.String())
	}
	out.WriteString("; ")
	if f.iteration != nil {
		out.WriteString(f.iteration.String())
	}
	out.WriteString(") ")
	out.WriteString(bodyString(f.body))
	return out.String()
}

// CaseClause is a group of consecutive case/default labels that share one
// body. The body is nil when the labels are directly followed by "}", a
// *Block when it is braced, and a *CaseBlock otherwise.
type CaseClause struct {
	labels    []Expr
	isDefault bool
	body      Node
}

func NewCaseClause(labels []Expr, isDefault bool, body Node) *CaseClause {
	return &CaseClause{labels: labels, isDefault: isDefault, body: body}
}

func (c *CaseClause) node() {}

// Labels returns the case expressions of the group, excluding default.
func (c *CaseClause) Labels() []Expr { return c.labels }

// IsDefault reports whether the group includes the default label.
func (c *CaseClause) IsDefault() bool { return c.isDefault }

func (c *CaseClause) Body() Node { return c.body }

func (c *CaseClause) Fields() []Field {
	return []Field{
		{"labels", nodeList(c.labels)},
		{"default", c.isDefault},
		{"body", optional(c.body)},
	}
}

func (c *CaseClause) String() string {
	var out bytes.Buffer
	for _, label := range c.labels {
		out.WriteString("case ")
		out.WriteString(label.String())
		out.WriteString(": ")
	}
	if c.isDefault {
		out.WriteString("default: ")
	}
	if c.body != nil {
		out.WriteString(c.body.String())
	}
	return strings.TrimRight(out.String(), " ")
}

// SwitchCase pairs one case label with the body it selects. It is a view
// over a Switch's clauses; bodies are shared between labels of one group.
type SwitchCase struct {
	Label Expr
	Body  Node
}

// Switch is a multi-way branch over the value of an expression.
type Switch struct {
	subject Expr
	clauses []*CaseClause
}

// NewSwitch creates a Switch. At most one clause may include the default label.
func NewSwitch(subject Expr, clauses []*CaseClause) (*Switch, error) {
	defaults := 0
	for _, c := range clauses {
		if c.isDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return nil, ErrDuplicateDefault
	}
	return &Switch{subject: subject, clauses: clauses}, nil
}

func (s *Switch) node()     {}
func (s *Switch) stmtNode() {}

// Subject returns the expression being switched on.
func (s *Switch) Subject() Expr { return s.subject }

// Clauses returns the label groups in source order.
func (s *Switch) Clauses() []*CaseClause { return s.clauses }

// Cases returns every case label paired with its body, in source order.
func (s *Switch) Cases() []SwitchCase {
	var cases []SwitchCase
	for _, c := range s.clauses {
		for _, label := range c.labels {
			cases = append(cases, SwitchCase{Label: label, Body: c.body})
		}
	}
	return cases
}

// Default returns the body selected by the default label and whether the
// switch has a default label at all.
func (s *Switch) Default() (Node, bool) {
	for _, c := range s.clauses {
		if c.isDefault {
			return c.body, true
		}
	}
	return nil, false
}

func (s *Switch) Fields() []Field {
	return []Field{{"expression", s.subject}, {"cases", nodeList(s.clauses)}}
}

func (s *Switch) String() string {
	var out bytes.Buffer
	out.WriteString("switch (")
	out.WriteString(s.subject.String())
	out.WriteString(") {")
	for _, c := range s.clauses {
		out.WriteString(" ")
		out.WriteString(c.String())
	}
	out.WriteString(" }")
	return out.String()
}

// CaseBlock is the run of statements following a case label when the body
// is not enclosed in braces.
type CaseBlock struct {
	statements []Node
}

func NewCaseBlock(statements []Node) *CaseBlock {
	return &CaseBlock{statements: statements}
}

func (c *CaseBlock) node()     {}
func (c *CaseBlock) stmtNode() {}

func (c *CaseBlock) Statements() []Node { return c.statements }

func (c *CaseBlock) Fields() []Field {
	return []Field{{"statements", c.statements}}
}

func (c *CaseBlock) String() string {
	return joinStrings(c.statements, "; ")
}

// If is the leading branch of an IfElse chain.
type If struct {
	condition Expr
	body      Node
}

func NewIf(condition Expr, body Node) *If {
	return &If{condition: condition, body: body}
}

func (i *If) node() {}

func (i *If) Condition() Expr { return i.condition }

func (i *If) Body() Node { return i.body }

func (i *If) Fields() []Field {
	return []Field{{"condition", i.condition}, {"body", optional(i.body)}}
}

func (i *If) String() string {
	return "if (" + i.condition.String() + ") " + bodyString(i.body)
}

// Elif is an "else if" branch of an IfElse chain.
type Elif struct {
	condition Expr
	body      Node
}

func NewElif(condition Expr, body Node) *Elif {
	return &Elif{condition: condition, body: body}
}

func (e *Elif) node() {}

func (e *Elif) Condition() Expr { return e.condition }

func (e *Elif) Body() Node { return e.body }

func (e *Elif) Fields() []Field {
	return []Field{{"condition", e.condition}, {"body", optional(e.body)}}
}

func (e *Elif) String() string {
	return "else if (" + e.condition.String() + ") " + bodyString(e.body)
}

// Else is the trailing branch of an IfElse chain.
type Else struct {
	body Node
}

func NewElse(body Node) *Else {
	return &Else{body: body}
}

func (e *Else) node() {}

func (e *Else) Body() Node { return e.body }

func (e *Else) Fields() []Field {
	return []Field{{"body", optional(e.body)}}
}

func (e *Else) String() string {
	return "else " + bodyString(e.body)
}

// IfElse is a complete conditional: one If, any number of Elif branches and
// an optional Else.
type IfElse struct {
	ifBranch *If
	elifs    []*Elif
	elseBody *Else
}

func NewIfElse(ifBranch *If, elifs []*Elif, elseBody *Else) *IfElse {
	return &IfElse{ifBranch: ifBranch, elifs: elifs, elseBody: elseBody}
}

func (i *IfElse) node()     {}
func (i *IfElse) stmtNode() {}

func (i *IfElse) If() *If { return i.ifBranch }

func (i *IfElse) Elifs() []*Elif { return i.elifs }

// Else returns the else branch, or nil if there is none.
func (i *IfElse) Else() *Else { return i.elseBody }

func (i *IfElse) Fields() []Field {
	return []Field{
		{"if", i.ifBranch},
		{"elif", nodeList(i.elifs)},
		{"else", optional(i.elseBody)},
	}
}

func (i *IfElse) String() string {
	parts := []string{i.ifBranch.String()}
	for _, elif := range i.elifs {
		parts = append(parts, elif.String())
	}
	if i.elseBody != nil {
		parts = append(parts, i.elseBody.String())
	}
	return strings.Join(parts, " ")
}

// FunctionArg is one parameter of a function, method or constructor.
type FunctionArg struct {
	name         string
	defaultValue Expr
}

func NewFunctionArg(name string, defaultValue Expr) *FunctionArg {
	return &FunctionArg{name: name, defaultValue: defaultValue}
}

func (a *FunctionArg) node() {}

func (a *FunctionArg) Name() string { return a.name }

// Default returns the default value expression, or nil.
func (a *FunctionArg) Default() Expr { return a.defaultValue }

func (a *FunctionArg) Fields() []Field {
	return []Field{{"name", a.name}, {"default", optional(a.defaultValue)}}
}

func (a *FunctionArg) String() string {
	if a.defaultValue == nil {
		return a.name
	}
	return a.name + " = " + a.defaultValue.String()
}

func argsString(args []*FunctionArg) string {
	return "(" + joinStrings(args, ", ") + ")"
}

// Function is a function declaration or function expression.
type Function struct {
	name string
	args []*FunctionArg
	body *Block
}

// NewFunction creates a Function. An empty name denotes an anonymous function.
func NewFunction(name string, args []*FunctionArg, body *Block) *Function {
	return &Function{name: name, args: args, body: body}
}

func (f *Function) node()     {}
func (f *Function) stmtNode() {}
func (f *Function) exprNode() {}

func (f *Function) Name() string { return f.name }

func (f *Function) IsAnonymous() bool { return f.name == "" }

func (f *Function) Args() []*FunctionArg { return f.args }

func (f *Function) Body() *Block { return f.body }

func (f *Function) Fields() []Field {
	return []Field{{"name", f.name}, {"args", nodeList(f.args)}, {"body", f.body}}
}

func (f *Function) String() string {
	var out bytes.Buffer
	out.WriteString("function")
	if f.name != "" {
		out.WriteString(" ")
		out.WriteString(f.name)
	}
	out.WriteString(argsString(f.args))
	out.WriteString(" ")
	out.WriteString(f.body.String())
	return out.String()
}

// Return exits the enclosing function. Value is nil for a bare return.
type Return struct {
	value Expr
}

func NewReturn(value Expr) *Return {
	return &Return{value: value}
}

func (r *Return) node()     {}
func (r *Return) stmtNode() {}

func (r *Return) Value() Expr { return r.value }

func (r *Return) Fields() []Field {
	return []Field{{"value", optional(r.value)}}
}

func (r *Return) String() string {
	if r.value == nil {
		return "return"
	}
	return "return " + r.value.String()
}

// DoWhile is a post-tested loop.
type DoWhile struct {
	condition Expr
	body      *Block
}

func NewDoWhile(condition Expr, body *Block) *DoWhile {
	return &DoWhile{condition: condition, body: body}
}

func (d *DoWhile) node()     {}
func (d *DoWhile) stmtNode() {}

func (d *DoWhile) Condition() Expr { return d.condition }

func (d *DoWhile) Body() *Block { return d.body }

func (d *DoWhile) Fields() []Field {
	return []Field{{"condition", d.condition}, {"body", d.body}}
}

func (d *DoWhile) String() string {
	return "do " + d.body.String() + " while (" + d.condition.String() + ")"
}
