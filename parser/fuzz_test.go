package parser

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/risor-io/jsfront/ast"
)

// FuzzParse tests that the parser doesn't panic on arbitrary input.
// The parser should either return a valid AST or an error, never crash.
func FuzzParse(f *testing.F) {
	seeds := []string{
		// Literals and operators
		"1 + 2",
		"x",
		"true",
		"null",
		"undefined",
		"[]",
		"[1, , 3]",
		"a + b - c * d / e % f",
		"-x",
		"a && b || c",
		"a === b !== c",
		"a < b <= c > d >= e",
		"a & b ^ c | d",
		"a << 2 >> 1 >>> 3",
		"1e10",
		"2.5e-3",

		// Assignment
		"x = 10",
		"x += 1",
		"x >>>= 1",
		"a = b = c",
		"a.b.c = 1",

		// Declarations
		"let x = 1",
		"const y = 2",
		"var z",
		"let a = 1, b, c = 3",

		// Functions and classes
		"function f() {}",
		"function add(a, b = 2) { return a + b }",
		"let f = function(x) { return x }",
		"class C { static x = 1; #y; constructor(a) { this.a = a } m() {} }",
		"let C = class {}",

		// Control flow
		"if (x) { y }",
		"if (a) { x } else if (b) { y } else { z }",
		"if (a) b; else c",
		"while (x) x--",
		"while (next());",
		"for (let i = 0; i < 10; i++) {}",
		"for (;;) {}",
		"do { x++ } while (x < 3);",
		"switch (x) { case 1: case 2: a; default: b }",
		"a ? b : c ? d : e",

		// Postfix and prefix
		"x++",
		"--x",
		"a.b++",

		// Nested
		"f(g(h(x)))",
		"a.b.c.d.e",
		"arr[0][1][2]",
		"((((x))))",

		// Errors
		"5++",
		"let",
		"const x;",
		"switch (x) { default: default: }",
		"class C { constructor() {} constructor() {} }",
		"class C { #1 }",
		"f(",
		"[",
		"{",
		"1.2.3",
		"1e",
		"@",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 10000 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Parser panicked on input %q: %v", truncate(input, 100), r)
			}
		}()

		program, err := Parse(ctx, input)
		if err != nil {
			if program != nil {
				t.Errorf("Parser returned both a program and an error for %q", truncate(input, 100))
			}
			return
		}

		// Every node must be reachable and printable
		str := program.String()
		if !utf8.ValidString(str) && utf8.ValidString(input) {
			t.Errorf("Program.String() produced invalid UTF-8 for input %q", truncate(input, 100))
		}
		for n := range ast.Preorder(program) {
			_ = n.String()
			_ = n.Fields()
		}
	})
}

// FuzzParseDeepNesting tests the parser handles deeply nested structures
// by returning an error rather than exhausting the stack.
func FuzzParseDeepNesting(f *testing.F) {
	f.Add(10)
	f.Add(100)
	f.Add(500)
	f.Add(1000)

	f.Fuzz(func(t *testing.T, depth int) {
		if depth < 1 || depth > 5000 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Parser panicked on depth %d: %v", depth, r)
			}
		}()

		inputs := []string{
			strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth),
			strings.Repeat("[", depth) + "x" + strings.Repeat("]", depth),
			strings.Repeat("-", depth) + "x",
			strings.Repeat("a = ", depth) + "1",
			strings.Repeat("a ? b : ", depth) + "c",
			strings.Repeat("{", depth) + strings.Repeat("}", depth),
			strings.Repeat("if (x) ", depth) + "y",
			"x" + strings.Repeat(".y", depth),
		}
		for _, input := range inputs {
			_, _ = Parse(ctx, input)
		}
	})
}

// FuzzParseStringConsistency checks that the String() form of a parsed
// expression is itself parseable and stable when parsed again.
func FuzzParseStringConsistency(f *testing.F) {
	for _, s := range []string{
		"1 + 2 * 3",
		"a = b = c",
		"a ? b : c ? d : e",
		"-a.b",
		"f(a, b)(c)",
		"[1, , 3]",
		"x++ + ++y",
		"a, b, c",
	} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1000 {
			return
		}
		ctx := context.Background()
		program, err := Parse(ctx, input)
		if err != nil || program.Len() != 1 {
			return
		}
		if _, ok := program.First().(ast.Expr); !ok {
			return
		}
		for n := range ast.Preorder(program) {
			switch n.(type) {
			case *ast.Function, *ast.Class:
				// Statement bodies are printed in a condensed form.
				return
			}
		}
		first := program.First().String()
		if strings.Contains(first, "Inf") {
			// Out of range numbers print as +Inf.
			return
		}
		reparsed, err := Parse(ctx, first)
		if err != nil {
			t.Fatalf("String() output %q of %q does not parse: %v", first, input, err)
		}
		if reparsed.First().String() != first {
			t.Errorf("String() is not stable: %q became %q", first, reparsed.First().String())
		}
	})
}

// truncate truncates a string for display
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
