package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/jsfront/token"
)

func TestNull(t *testing.T) {
	input := "a = null;"
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.IDENT, "a"},
		{token.ASSIGN, "="},
		{token.NULL, "null"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken1(t *testing.T) {
	input := "%=+(){},;?|| &&++--*=..&>>>=>>>>>=<<="

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.MOD_EQUALS, "%="},
		{token.PLUS, "+"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.COMMA, ","},
		{token.SEMICOLON, ";"},
		{token.QUESTION, "?"},
		{token.OR, "||"},
		{token.AND, "&&"},
		{token.PLUS_PLUS, "++"},
		{token.MINUS_MINUS, "--"},
		{token.ASTERISK_EQUALS, "*="},
		{token.PERIOD, "."},
		{token.PERIOD, "."},
		{token.AMPERSAND, "&"},
		{token.GT_GT_GT_EQUALS, ">>>="},
		{token.GT_GT_GT, ">>>"},
		{token.GT_GT_EQUALS, ">>="},
		{token.LT_LT_EQUALS, "<<="},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken2(t *testing.T) {
	input := `let five = 5;
const add = function(x, y) {
  return x + y;
};
if (five === 5) { five !== 6 } else { a ? b : c }
class A { static #count = 0; constructor() {} }
`
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LET, "let"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.NUMBER, "5"},
		{token.SEMICOLON, ";"},
		{token.CONST, "const"},
		{token.IDENT, "add"},
		{token.ASSIGN, "="},
		{token.FUNCTION, "function"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.IDENT, "y"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.SEMICOLON, ";"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.IDENT, "five"},
		{token.EQ_STRICT, "==="},
		{token.NUMBER, "5"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "five"},
		{token.NOT_EQ_STRICT, "!=="},
		{token.NUMBER, "6"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.IDENT, "a"},
		{token.QUESTION, "?"},
		{token.IDENT, "b"},
		{token.COLON, ":"},
		{token.IDENT, "c"},
		{token.RBRACE, "}"},
		{token.CLASS, "class"},
		{token.IDENT, "A"},
		{token.LBRACE, "{"},
		{token.STATIC, "static"},
		{token.PRIVATE, "#count"},
		{token.ASSIGN, "="},
		{token.NUMBER, "0"},
		{token.SEMICOLON, ";"},
		{token.CONSTRUCTOR, "constructor"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}
	tokens, err := Lex(input)
	require.Nil(t, err)
	require.Len(t, tokens, len(tests))
	for i, tt := range tests {
		tok := tokens[i]
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywordsAndLiterals(t *testing.T) {
	tokens, err := Lex("true false undefined null static constructor default case do while var")
	require.Nil(t, err)
	var types []token.Type
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []token.Type{
		token.TRUE, token.FALSE, token.UNDEFINED, token.NULL, token.STATIC,
		token.CONSTRUCTOR, token.DEFAULT, token.CASE, token.DO, token.WHILE,
		token.VAR, token.EOF,
	}, types)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input   string
		literal string
		value   float64
	}{
		{"0", "0", 0},
		{"42", "42", 42},
		{"3.25", "3.25", 3.25},
		{"09", "09", 9},
		{"1.", "1.", 1},
		{"1e3", "1e3", 1000},
		{"2.5e-1", "2.5e-1", 0.25},
		{"4E+2", "4E+2", 400},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			require.Nil(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, token.NUMBER, tokens[0].Type)
			assert.Equal(t, tt.literal, tokens[0].Literal)
			assert.Equal(t, tt.value, tokens[0].Number)
		})
	}
}

func TestNumberFollowedByIdentifier(t *testing.T) {
	tokens, err := Lex("12abc")
	require.Nil(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.NUMBER, tokens[0].Type)
	assert.Equal(t, token.IDENT, tokens[1].Type)
	assert.Equal(t, "abc", tokens[1].Literal)
}

func TestLeadingPeriodIsNotANumber(t *testing.T) {
	tokens, err := Lex(".5")
	require.Nil(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.PERIOD, tokens[0].Type)
	assert.Equal(t, token.NUMBER, tokens[1].Type)
}

func TestInvalidNumbers(t *testing.T) {
	tests := []struct {
		input  string
		kind   error
		char   rune
		offset int
	}{
		{"1.2.3", ErrUnexpectedChar, '.', 3},
		{"x = 1e", ErrInvalidNumber, 'e', 4},
		{"1e+", ErrInvalidNumber, 'e', 0},
		{"1e5e2", ErrInvalidNumber, 'e', 3},
		{"1e5.2", ErrUnexpectedChar, '.', 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Lex(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), err.Error())
			var lexErr *Error
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.char, lexErr.Char)
			assert.Equal(t, tt.offset, lexErr.Offset())
		})
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		input  string
		char   rune
		offset int
		line   int
		column int
	}{
		{"a = @", '@', 4, 0, 4},
		{"!x", '!', 0, 0, 0},
		{"let x = 1;\n  ~y", '~', 13, 1, 2},
		{"\"str\"", '"', 0, 0, 0},
		{"a = 世界", '世', 4, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)
			assert.True(t, errors.Is(err, ErrUnexpectedChar))
			var lexErr *Error
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.char, lexErr.Char)
			assert.Equal(t, tt.offset, lexErr.Offset())
			assert.Equal(t, tt.line, lexErr.Position.Line)
			assert.Equal(t, tt.column, lexErr.Position.Column)
		})
	}
}

func TestPrivateNames(t *testing.T) {
	tokens, err := Lex("#a1 # #9x")
	require.Nil(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, "#a1", tokens[0].Literal)
	assert.Equal(t, "#", tokens[1].Literal)
	assert.Equal(t, "#9x", tokens[2].Literal)
	for _, tok := range tokens[:3] {
		assert.Equal(t, token.PRIVATE, tok.Type)
	}
}

func TestPositions(t *testing.T) {
	input := "let x = 1;\n  foo.bar"
	l := New(input)
	l.SetFilename("main.js")
	tokens, err := l.All()
	require.Nil(t, err)

	foo := tokens[5]
	assert.Equal(t, "foo", foo.Literal)
	assert.Equal(t, 2, foo.StartPosition.LineNumber())
	assert.Equal(t, 3, foo.StartPosition.ColumnNumber())
	assert.Equal(t, 13, foo.StartPosition.Char)
	assert.Equal(t, 16, foo.EndPosition.Char)
	assert.Equal(t, "main.js", foo.StartPosition.File)
	assert.Equal(t, "  foo.bar", l.GetLineText(foo))
	assert.Equal(t, "let x = 1;", l.GetLineText(tokens[0]))

	eof := tokens[len(tokens)-1]
	assert.Equal(t, token.EOF, eof.Type)
	assert.Equal(t, len(input), eof.StartPosition.Char)
}

func TestEOFRepeats(t *testing.T) {
	l := New("  ")
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		require.Nil(t, err)
		assert.Equal(t, token.EOF, tok.Type)
	}
}
