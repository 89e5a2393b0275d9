package ast

import "bytes"

// ClassMember is a field declared in a class body, e.g. "static #count = 0".
// Value is nil for a bare "name;" field.
type ClassMember struct {
	static bool
	name   string
	value  Expr
}

func NewClassMember(static bool, name string, value Expr) *ClassMember {
	return &ClassMember{static: static, name: name, value: value}
}

func (m *ClassMember) node() {}

func (m *ClassMember) IsStatic() bool { return m.static }

func (m *ClassMember) Name() string { return m.name }

func (m *ClassMember) Value() Expr { return m.value }

func (m *ClassMember) Fields() []Field {
	return []Field{{"is_static", m.static}, {"name", m.name}, {"value", optional(m.value)}}
}

func (m *ClassMember) String() string {
	var out bytes.Buffer
	if m.static {
		out.WriteString("static ")
	}
	out.WriteString(m.name)
	if m.value != nil {
		out.WriteString(" = ")
		out.WriteString(m.value.String())
	}
	return out.String()
}

// ClassMethod is a method declared in a class body.
type ClassMethod struct {
	static bool
	name   string
	args   []*FunctionArg
	body   *Block
}

func NewClassMethod(static bool, name string, args []*FunctionArg, body *Block) *ClassMethod {
	return &ClassMethod{static: static, name: name, args: args, body: body}
}

func (m *ClassMethod) node() {}

func (m *ClassMethod) IsStatic() bool { return m.static }

func (m *ClassMethod) Name() string { return m.name }

func (m *ClassMethod) Args() []*FunctionArg { return m.args }

func (m *ClassMethod) Body() *Block { return m.body }

func (m *ClassMethod) Fields() []Field {
	return []Field{
		{"is_static", m.static},
		{"name", m.name},
		{"args", nodeList(m.args)},
		{"body", m.body},
	}
}

func (m *ClassMethod) String() string {
	prefix := ""
	if m.static {
		prefix = "static "
	}
	return prefix + m.name + argsString(m.args) + " " + m.body.String()
}

// ClassConstructor is the constructor of a class.
type ClassConstructor struct {
	args []*FunctionArg
	body *Block
}

func NewClassConstructor(args []*FunctionArg, body *Block) *ClassConstructor {
	return &ClassConstructor{args: args, body: body}
}

func (c *ClassConstructor) node() {}

func (c *ClassConstructor) Args() []*FunctionArg { return c.args }

func (c *ClassConstructor) Body() *Block { return c.body }

func (c *ClassConstructor) Fields() []Field {
	return []Field{{"args", nodeList(c.args)}, {"body", c.body}}
}

func (c *ClassConstructor) String() string {
	return "constructor" + argsString(c.args) + " " + c.body.String()
}

// Class is a class declaration or class expression. Members and methods are
// kept in source order within their own lists.
type Class struct {
	name        string
	constructor *ClassConstructor
	methods     []*ClassMethod
	members     []*ClassMember
}

// NewClass creates a Class. An empty name denotes an anonymous class and a
// nil constructor means the class declares none.
func NewClass(name string, constructor *ClassConstructor, methods []*ClassMethod, members []*ClassMember) *Class {
	return &Class{name: name, constructor: constructor, methods: methods, members: members}
}

func (c *Class) node()     {}
func (c *Class) stmtNode() {}
func (c *Class) exprNode() {}

func (c *Class) Name() string { return c.name }

func (c *Class) IsAnonymous() bool { return c.name == "" }

func (c *Class) Constructor() *ClassConstructor { return c.constructor }

func (c *Class) Methods() []*ClassMethod { return c.methods }

func (c *Class) Members() []*ClassMember { return c.members }

func (c *Class) Fields() []Field {
	return []Field{
		{"name", c.name},
		{"constructor", optional(c.constructor)},
		{"methods", nodeList(c.methods)},
		{"members", nodeList(c.members)},
	}
}

func (c *Class) String() string {
	var out bytes.Buffer
	out.WriteString("class")
	if c.name != "" {
		out.WriteString(" ")
		out.WriteString(c.name)
	}
	out.WriteString(" {")
	for _, m := range c.members {
		out.WriteString(" ")
		out.WriteString(m.String())
		out.WriteString(";")
	}
	if c.constructor != nil {
		out.WriteString(" ")
		out.WriteString(c.constructor.String())
	}
	for _, m := range c.methods {
		out.WriteString(" ")
		out.WriteString(m.String())
	}
	out.WriteString(" }")
	return out.String()
}
