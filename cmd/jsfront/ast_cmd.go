package main

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/risor-io/jsfront/ast"
	"github.com/risor-io/jsfront/parser"
)

func (a *app) astCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the syntax tree of the given code",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.astHandler,
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	return cmd
}

func (a *app) astHandler(cmd *cobra.Command, args []string) error {
	sources, err := a.getSources(cmd, args)
	if err != nil {
		return err
	}
	src := sources[0]
	program, err := parser.Parse(cmd.Context(), src.code, a.parserOptions(src.name)...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "json":
		data, err := a.getOutputJSON(nodeToJSON(program, ""), out)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "text", "":
		newTreePrinter(out, a.colorEnabled(out)).print(program)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// ASTNode represents a node in the JSON AST output
type ASTNode struct {
	Type     string         `json:"type"`
	Field    string         `json:"field,omitempty"`
	Value    map[string]any `json:"value,omitempty"`
	Children []*ASTNode     `json:"children,omitempty"`
}

func nodeToJSON(node ast.Node, field string) *ASTNode {
	if isNil(node) {
		return nil
	}
	result := &ASTNode{Type: typeName(node), Field: field}
	for _, f := range node.Fields() {
		switch v := f.Value.(type) {
		case nil:
		case ast.Node:
			if child := nodeToJSON(v, f.Name); child != nil {
				result.Children = append(result.Children, child)
			}
		case []ast.Node:
			for _, item := range v {
				if child := nodeToJSON(item, f.Name); child != nil {
					result.Children = append(result.Children, child)
				}
			}
		default:
			if result.Value == nil {
				result.Value = map[string]any{}
			}
			result.Value[f.Name] = jsonScalar(v)
		}
	}
	return result
}

// jsonScalar converts a field value into something encoding/json accepts.
// Infinite numbers are written as strings.
func jsonScalar(v any) any {
	if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return v
}

func typeName(node ast.Node) string {
	t := reflect.TypeOf(node)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func isNil(node ast.Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// treePrinter writes a syntax tree as indented text, one field per line.
type treePrinter struct {
	w       io.Writer
	node    *color.Color
	field   *color.Color
	literal *color.Color
	muted   *color.Color
}

func newTreePrinter(w io.Writer, useColor bool) *treePrinter {
	p := &treePrinter{
		w:       w,
		node:    color.New(color.FgHiCyan, color.Bold),
		field:   color.New(color.FgMagenta),
		literal: color.New(color.FgYellow),
		muted:   color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.node, p.field, p.literal, p.muted} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *treePrinter) print(root ast.Node) {
	fmt.Fprintln(p.w, p.node.Sprint(typeName(root)))
	p.printFields(root, "")
}

func (p *treePrinter) printFields(node ast.Node, indent string) {
	fields := node.Fields()
	for i, f := range fields {
		p.printField(f, indent, i == len(fields)-1)
	}
}

func (p *treePrinter) printField(f ast.Field, indent string, isLast bool) {
	connector := "├─ "
	childIndent := indent + "│  "
	if isLast {
		connector = "└─ "
		childIndent = indent + "   "
	}
	prefix := p.muted.Sprint(indent+connector) + p.field.Sprint(f.Name)

	switch v := f.Value.(type) {
	case nil:
		fmt.Fprintf(p.w, "%s: %s\n", prefix, p.muted.Sprint("<none>"))
	case ast.Node:
		if isNil(v) {
			fmt.Fprintf(p.w, "%s: %s\n", prefix, p.muted.Sprint("<none>"))
			return
		}
		fmt.Fprintf(p.w, "%s: %s\n", prefix, p.node.Sprint(typeName(v)))
		p.printFields(v, childIndent)
	case []ast.Node:
		fmt.Fprintf(p.w, "%s %s\n", prefix, p.muted.Sprintf("(%d)", len(v)))
		for i, item := range v {
			p.printItem(item, i, childIndent, i == len(v)-1)
		}
	default:
		fmt.Fprintf(p.w, "%s: %s\n", prefix, p.literal.Sprint(formatScalar(v)))
	}
}

func (p *treePrinter) printItem(node ast.Node, index int, indent string, isLast bool) {
	connector := "├─ "
	childIndent := indent + "│  "
	if isLast {
		connector = "└─ "
		childIndent = indent + "   "
	}
	fmt.Fprintf(p.w, "%s%s\n",
		p.muted.Sprintf("%s%s[%d] ", indent, connector, index),
		p.node.Sprint(typeName(node)))
	p.printFields(node, childIndent)
}

func formatScalar(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
