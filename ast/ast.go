// Package ast defines the abstract syntax tree produced by the parser.
//
// The set of node types is closed: every node implements Node through an
// unexported method, so only this package can add variants. Nodes are
// immutable once constructed and are built through New* functions, some of
// which validate their inputs so that an invalid tree cannot be represented.
package ast

import (
	"errors"
	"strconv"
	"strings"
)

// Node represents a portion of the syntax tree.
type Node interface {
	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string

	// Fields returns the node's fields in declaration order. Child nodes are
	// reported as Node or []Node values; absent children are reported as nil.
	Fields() []Field

	node()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Assignable is an expression that may appear on the left of an assignment
// or as the operand of ++ and --. Only *Identifier and *Accessor qualify.
type Assignable interface {
	Expr
	assignable()
}

// Binding is one entry of a ChainedDefinition: a *Declaration or a *Definition.
type Binding interface {
	Stmt
	Keyword() Keyword
	Name() string
	binding()
}

// Field is one named field of a node, as reported by Node.Fields.
type Field struct {
	Name  string
	Value any
}

// Keyword is the keyword that introduces a variable declaration.
type Keyword string

const (
	Let   Keyword = "let"
	Var   Keyword = "var"
	Const Keyword = "const"
)

var (
	// ErrInvalidTarget indicates an operand that is not an Identifier or Accessor
	// was given to ++, -- or an assignment.
	ErrInvalidTarget = errors.New("invalid assignment target")

	// ErrConstDeclaration indicates a const binding without an initializer.
	ErrConstDeclaration = errors.New("const declaration requires an initializer")

	// ErrInvalidChain indicates a chained definition with fewer than two
	// entries or with entries using different keywords.
	ErrInvalidChain = errors.New("invalid chained definition")

	// ErrDuplicateDefault indicates a switch with more than one default label.
	ErrDuplicateDefault = errors.New("multiple default clauses in switch")
)

// IsAssignable reports whether expr may be the target of an assignment.
func IsAssignable(expr Expr) bool {
	_, ok := expr.(Assignable)
	return ok
}

func nodeList[T Node](items []T) []Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, item)
	}
	return nodes
}

// optional converts a possibly nil child into a Field value, so that absent
// children are reported as an untyped nil.
func optional[T Node](n T) any {
	var zero T
	if any(n) == any(zero) {
		return nil
	}
	return n
}

func joinStrings[T Node](items []T, sep string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.String())
	}
	return strings.Join(parts, sep)
}

func bodyString(body Node) string {
	if body == nil {
		return ";"
	}
	return body.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
