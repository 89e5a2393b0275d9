package ast

import (
	"bytes"
	"strconv"
)

// Number is a numeric literal. All numbers are floating point.
type Number struct {
	value float64
}

func NewNumber(value float64) *Number {
	return &Number{value: value}
}

func (n *Number) node()     {}
func (n *Number) exprNode() {}

func (n *Number) Value() float64 { return n.value }

func (n *Number) Fields() []Field { return []Field{{"value", n.value}} }

func (n *Number) String() string { return formatNumber(n.value) }

// Boolean is a true or false literal.
type Boolean struct {
	value bool
}

func NewBoolean(value bool) *Boolean {
	return &Boolean{value: value}
}

func (b *Boolean) node()     {}
func (b *Boolean) exprNode() {}

func (b *Boolean) Value() bool { return b.value }

func (b *Boolean) Fields() []Field { return []Field{{"value", b.value}} }

func (b *Boolean) String() string { return strconv.FormatBool(b.value) }

// Null is the null literal. The undefined keyword also produces a Null, as
// does an elided array element.
type Null struct{}

func NewNull() *Null {
	return &Null{}
}

func (n *Null) node()     {}
func (n *Null) exprNode() {}

func (n *Null) Fields() []Field { return nil }

func (n *Null) String() string { return "null" }

// Identifier is a reference to a named value.
type Identifier struct {
	name string
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{name: name}
}

func (i *Identifier) node()       {}
func (i *Identifier) exprNode()   {}
func (i *Identifier) assignable() {}

func (i *Identifier) Name() string { return i.name }

func (i *Identifier) Fields() []Field { return []Field{{"name", i.name}} }

func (i *Identifier) String() string { return i.name }

// BinOp is a binary operation such as "a + b" or the comma operator "a, b".
type BinOp struct {
	op    string
	left  Expr
	right Expr
}

func NewBinOp(op string, left, right Expr) *BinOp {
	return &BinOp{op: op, left: left, right: right}
}

func (b *BinOp) node()     {}
func (b *BinOp) exprNode() {}

func (b *BinOp) Op() string { return b.op }

func (b *BinOp) Left() Expr { return b.left }

func (b *BinOp) Right() Expr { return b.right }

func (b *BinOp) Fields() []Field {
	return []Field{{"op", b.op}, {"left", b.left}, {"right", b.right}}
}

func (b *BinOp) String() string {
	if b.op == "," {
		return "(" + b.left.String() + ", " + b.right.String() + ")"
	}
	return "(" + b.left.String() + " " + b.op + " " + b.right.String() + ")"
}

// UnaryOp is a prefix operation: "+x", "-x", "++x" or "--x".
type UnaryOp struct {
	op      string
	operand Expr
}

// NewUnaryOp creates a UnaryOp. The operand of ++ and -- must be assignable,
// otherwise ErrInvalidTarget is returned.
func NewUnaryOp(op string, operand Expr) (*UnaryOp, error) {
	if isStepOp(op) && !IsAssignable(operand) {
		return nil, ErrInvalidTarget
	}
	return &UnaryOp{op: op, operand: operand}, nil
}

func (u *UnaryOp) node()     {}
func (u *UnaryOp) exprNode() {}

func (u *UnaryOp) Op() string { return u.op }

func (u *UnaryOp) Operand() Expr { return u.operand }

func (u *UnaryOp) Fields() []Field {
	return []Field{{"op", u.op}, {"operand", u.operand}}
}

func (u *UnaryOp) String() string {
	return "(" + u.op + u.operand.String() + ")"
}

// SuffixOp is a postfix increment or decrement.
type SuffixOp struct {
	op      string
	operand Assignable
}

// NewSuffixOp creates a SuffixOp. The operand type guarantees it is an
// Identifier or Accessor.
func NewSuffixOp(op string, operand Assignable) *SuffixOp {
	return &SuffixOp{op: op, operand: operand}
}

func (s *SuffixOp) node()     {}
func (s *SuffixOp) exprNode() {}

func (s *SuffixOp) Op() string { return s.op }

func (s *SuffixOp) Operand() Assignable { return s.operand }

func (s *SuffixOp) Fields() []Field {
	return []Field{{"op", s.op}, {"operand", s.operand}}
}

func (s *SuffixOp) String() string {
	return "(" + s.operand.String() + s.op + ")"
}

func isStepOp(op string) bool {
	return op == "++" || op == "--"
}

// TernaryOp is a conditional expression "cond ? a : b".
type TernaryOp struct {
	condition Expr
	onTrue    Expr
	onFalse   Expr
}

func NewTernaryOp(condition, onTrue, onFalse Expr) *TernaryOp {
	return &TernaryOp{condition: condition, onTrue: onTrue, onFalse: onFalse}
}

func (t *TernaryOp) node()     {}
func (t *TernaryOp) exprNode() {}

func (t *TernaryOp) Condition() Expr { return t.condition }

func (t *TernaryOp) OnTrue() Expr { return t.onTrue }

func (t *TernaryOp) OnFalse() Expr { return t.onFalse }

func (t *TernaryOp) Fields() []Field {
	return []Field{{"condition", t.condition}, {"on_true", t.onTrue}, {"on_false", t.onFalse}}
}

func (t *TernaryOp) String() string {
	return "(" + t.condition.String() + " ? " + t.onTrue.String() + " : " + t.onFalse.String() + ")"
}

// Call is a function call expression.
type Call struct {
	callee Expr
	args   []Expr
}

func NewCall(callee Expr, args []Expr) *Call {
	return &Call{callee: callee, args: args}
}

func (c *Call) node()     {}
func (c *Call) exprNode() {}

func (c *Call) Callee() Expr { return c.callee }

func (c *Call) Args() []Expr { return c.args }

func (c *Call) Fields() []Field {
	return []Field{{"callee", c.callee}, {"args", nodeList(c.args)}}
}

func (c *Call) String() string {
	return c.callee.String() + "(" + joinStrings(c.args, ", ") + ")"
}

// Array is an array literal. Elided elements are represented by Null.
type Array struct {
	elements []Expr
}

func NewArray(elements []Expr) *Array {
	return &Array{elements: elements}
}

func (a *Array) node()     {}
func (a *Array) exprNode() {}

func (a *Array) Elements() []Expr { return a.elements }

func (a *Array) Fields() []Field {
	return []Field{{"elements", nodeList(a.elements)}}
}

func (a *Array) String() string {
	return "[" + joinStrings(a.elements, ", ") + "]"
}

// Index is an index expression "a[i]".
type Index struct {
	array Expr
	index Expr
}

func NewIndex(array, index Expr) *Index {
	return &Index{array: array, index: index}
}

func (i *Index) node()     {}
func (i *Index) exprNode() {}

func (i *Index) Array() Expr { return i.array }

func (i *Index) Index() Expr { return i.index }

func (i *Index) Fields() []Field {
	return []Field{{"array", i.array}, {"index", i.index}}
}

func (i *Index) String() string {
	return i.array.String() + "[" + i.index.String() + "]"
}

// Accessor is a member access "a.b". The field may be a private name such
// as "#count".
type Accessor struct {
	left  Expr
	field string
}

func NewAccessor(left Expr, field string) *Accessor {
	return &Accessor{left: left, field: field}
}

func (a *Accessor) node()       {}
func (a *Accessor) exprNode()   {}
func (a *Accessor) assignable() {}

func (a *Accessor) Left() Expr { return a.left }

func (a *Accessor) Field() string { return a.field }

func (a *Accessor) Fields() []Field {
	return []Field{{"left", a.left}, {"field", a.field}}
}

func (a *Accessor) String() string {
	return a.left.String() + "." + a.field
}

// Assignment is "target op value" where op is "=" or a compound
// assignment operator such as "+=".
type Assignment struct {
	op     string
	target Assignable
	value  Expr
}

func NewAssignment(op string, target Assignable, value Expr) *Assignment {
	return &Assignment{op: op, target: target, value: value}
}

func (a *Assignment) node()     {}
func (a *Assignment) exprNode() {}

func (a *Assignment) Op() string { return a.op }

func (a *Assignment) Target() Assignable { return a.target }

func (a *Assignment) Value() Expr { return a.value }

func (a *Assignment) Fields() []Field {
	return []Field{{"op", a.op}, {"target", a.target}, {"value", a.value}}
}

func (a *Assignment) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(a.target.String())
	out.WriteString(" ")
	out.WriteString(a.op)
	out.WriteString(" ")
	out.WriteString(a.value.String())
	out.WriteString(")")
	return out.String()
}
