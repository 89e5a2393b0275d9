package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/jsfront/ast"
	"github.com/risor-io/jsfront/parser"
)

func TestASTText(t *testing.T) {
	stdout, _, err := execute(t, "", "ast", "--code", "x = 1")
	require.NoError(t, err)
	expected := `Block
└─ statements (1)
   └─ [0] Assignment
      ├─ op: "="
      ├─ target: Identifier
      │  └─ name: "x"
      └─ value: Number
         └─ value: 1
`
	assert.Equal(t, expected, stdout)
}

func TestPrintAST(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		contains []string
	}{
		{
			name:     "number",
			code:     "42",
			contains: []string{"Block", "Number", "value: 42"},
		},
		{
			name:     "variable declaration",
			code:     "let x = 1",
			contains: []string{"Definition", `keyword: "let"`, `name: "x"`, "value: Number"},
		},
		{
			name:     "binary expression",
			code:     "1 + 2",
			contains: []string{"BinOp", `op: "+"`, "left: Number", "right: Number"},
		},
		{
			name:     "function",
			code:     "function add(a, b) { return a + b }",
			contains: []string{"Function", `name: "add"`, "args (2)", "[1] FunctionArg", "default: <none>", "Return"},
		},
		{
			name:     "if statement",
			code:     "if (x > 0) { 1 } else { 2 }",
			contains: []string{"IfElse", "if: If", "condition: BinOp", "else: Else"},
		},
		{
			name:     "array",
			code:     "[1, 2, 3]",
			contains: []string{"Array", "elements (3)", "[2] Number"},
		},
		{
			name:     "class",
			code:     "class C { static x = 1; m() {} }",
			contains: []string{"Class", "constructor: <none>", "methods (1)", "is_static: true"},
		},
		{
			name:     "member access",
			code:     "a.b[0]",
			contains: []string{"Index", "array: Accessor", `field: "b"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parser.Parse(context.Background(), tt.code)
			require.NoError(t, err)
			var buf bytes.Buffer
			newTreePrinter(&buf, false).print(program)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestPrintASTWithColor(t *testing.T) {
	program, err := parser.Parse(context.Background(), "x")
	require.NoError(t, err)
	var buf bytes.Buffer
	newTreePrinter(&buf, true).print(program)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Identifier")
}

func TestASTJSON(t *testing.T) {
	stdout, _, err := execute(t, "", "ast", "-o", "json", "--code", "x += f(1)")
	require.NoError(t, err)

	var root ASTNode
	require.NoError(t, json.Unmarshal([]byte(stdout), &root))
	assert.Equal(t, "Block", root.Type)
	require.Len(t, root.Children, 1)

	assign := root.Children[0]
	assert.Equal(t, "Assignment", assign.Type)
	assert.Equal(t, "statements", assign.Field)
	assert.Equal(t, map[string]any{"op": "+="}, assign.Value)
	require.Len(t, assign.Children, 2)
	assert.Equal(t, "target", assign.Children[0].Field)
	assert.Equal(t, map[string]any{"name": "x"}, assign.Children[0].Value)

	call := assign.Children[1]
	assert.Equal(t, "Call", call.Type)
	require.Len(t, call.Children, 2)
	assert.Equal(t, "callee", call.Children[0].Field)
	assert.Equal(t, "args", call.Children[1].Field)
	assert.Equal(t, map[string]any{"value": float64(1)}, call.Children[1].Value)
}

func TestNodeToJSONSkipsAbsentChildren(t *testing.T) {
	program, err := parser.Parse(context.Background(), "return")
	require.NoError(t, err)
	node := nodeToJSON(program, "")
	require.Len(t, node.Children, 1)
	assert.Equal(t, "Return", node.Children[0].Type)
	assert.Empty(t, node.Children[0].Children)
	assert.Nil(t, nodeToJSON(nil, ""))
}

func TestNodeToJSONInfinity(t *testing.T) {
	node := nodeToJSON(ast.NewNumber(math.Inf(1)), "")
	assert.Equal(t, "+Inf", node.Value["value"])
	_, err := json.Marshal(node)
	assert.NoError(t, err)
}

func TestASTFromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "prog.js", "let y = 2;\n")
	stdout, _, err := execute(t, "", "ast", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, `name: "y"`)
}

func TestASTFromStdin(t *testing.T) {
	stdout, _, err := execute(t, "while (x) x--", "ast", "--stdin")
	require.NoError(t, err)
	assert.Contains(t, stdout, "While")
	assert.Contains(t, stdout, "SuffixOp")
}

func TestASTErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "prog.js", "1")
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no input", []string{"ast"}, "no input provided"},
		{"code and file", []string{"ast", "--code", "1", path}, "multiple input sources specified"},
		{"code and stdin", []string{"ast", "--code", "1", "--stdin"}, "multiple input sources specified"},
		{"missing file", []string{"ast", filepath.Join(t.TempDir(), "missing.js")}, "no such file"},
		{"unknown format", []string{"ast", "-o", "yaml", "--code", "1"}, "unknown output format: yaml"},
		{"too many args", []string{"ast", path, path}, "accepts at most 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestASTParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.js", "let = 1")
	_, _, err := execute(t, "", "ast", path)
	require.Error(t, err)
	var pe parser.ParserError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, path, pe.File())
	assert.ErrorIs(t, err, parser.ErrUnexpectedToken)
}
