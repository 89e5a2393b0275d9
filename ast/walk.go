package ast

import (
	"fmt"
	"iter"
)

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range Children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// Children returns the non-nil child nodes of node in field order. It panics
// if node is not one of the types defined in this package.
func Children(node Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, n := range nodes {
			if n != nil {
				out = append(out, n)
			}
		}
	}
	switch n := node.(type) {
	// Statements
	case *Block:
		add(n.statements...)
	case *Declaration:
	case *Definition:
		add(n.value)
	case *ChainedDefinition:
		add(nodeList(n.bindings)...)
	case *While:
		add(n.condition, n.body)
	case *For:
		add(n.init)
		if n.condition != nil {
			add(n.condition)
		}
		if n.iteration != nil {
			add(n.iteration)
		}
		add(n.body)
	case *Switch:
		add(n.subject)
		add(nodeList(n.clauses)...)
	case *CaseClause:
		add(nodeList(n.labels)...)
		add(n.body)
	case *CaseBlock:
		add(n.statements...)
	case *IfElse:
		add(n.ifBranch)
		add(nodeList(n.elifs)...)
		if n.elseBody != nil {
			add(n.elseBody)
		}
	case *If:
		add(n.condition, n.body)
	case *Elif:
		add(n.condition, n.body)
	case *Else:
		add(n.body)
	case *FunctionArg:
		if n.defaultValue != nil {
			add(n.defaultValue)
		}
	case *Function:
		add(nodeList(n.args)...)
		add(n.body)
	case *Return:
		if n.value != nil {
			add(n.value)
		}
	case *DoWhile:
		add(n.condition, n.body)

	// Classes
	case *Class:
		if n.constructor != nil {
			add(n.constructor)
		}
		add(nodeList(n.methods)...)
		add(nodeList(n.members)...)
	case *ClassConstructor:
		add(nodeList(n.args)...)
		add(n.body)
	case *ClassMethod:
		add(nodeList(n.args)...)
		add(n.body)
	case *ClassMember:
		if n.value != nil {
			add(n.value)
		}

	// Expressions
	case *Number, *Boolean, *Null, *Identifier:
	case *BinOp:
		add(n.left, n.right)
	case *UnaryOp:
		add(n.operand)
	case *SuffixOp:
		add(n.operand)
	case *TernaryOp:
		add(n.condition, n.onTrue, n.onFalse)
	case *Call:
		add(n.callee)
		add(nodeList(n.args)...)
	case *Array:
		add(nodeList(n.elements)...)
	case *Index:
		add(n.array, n.index)
	case *Accessor:
		add(n.left)
	case *Assignment:
		add(n.target, n.value)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", node))
	}
	return out
}
