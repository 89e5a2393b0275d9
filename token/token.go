// Package token defines language keywords and tokens used when lexing source code.
package token

import "sort"

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the input
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes on the same line.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
		File:      p.File,
	}
}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	Number        float64 // parsed value of a NUMBER token
	StartPosition Position
	EndPosition   Position
}

// Token types
const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"
	IDENT   Type = "IDENT"
	NUMBER  Type = "NUMBER"
	PRIVATE Type = "PRIVATE" // #name

	LBRACE    Type = "{"
	RBRACE    Type = "}"
	LBRACKET  Type = "["
	RBRACKET  Type = "]"
	LPAREN    Type = "("
	RPAREN    Type = ")"
	SEMICOLON Type = ";"
	COMMA     Type = ","
	PERIOD    Type = "."
	QUESTION  Type = "?"
	COLON     Type = ":"

	ASTERISK      Type = "*"
	SLASH         Type = "/"
	MOD           Type = "%"
	PLUS          Type = "+"
	MINUS         Type = "-"
	LT_LT         Type = "<<"
	GT_GT         Type = ">>"
	GT_GT_GT      Type = ">>>"
	LT            Type = "<"
	LT_EQUALS     Type = "<="
	GT            Type = ">"
	GT_EQUALS     Type = ">="
	EQ            Type = "=="
	EQ_STRICT     Type = "==="
	NOT_EQ        Type = "!="
	NOT_EQ_STRICT Type = "!=="
	AMPERSAND     Type = "&"
	CARET         Type = "^"
	BITOR         Type = "|"
	AND           Type = "&&"
	OR            Type = "||"

	ASSIGN           Type = "="
	PLUS_EQUALS      Type = "+="
	MINUS_EQUALS     Type = "-="
	ASTERISK_EQUALS  Type = "*="
	SLASH_EQUALS     Type = "/="
	MOD_EQUALS       Type = "%="
	AMPERSAND_EQUALS Type = "&="
	BITOR_EQUALS     Type = "|="
	CARET_EQUALS     Type = "^="
	LT_LT_EQUALS     Type = "<<="
	GT_GT_EQUALS     Type = ">>="
	GT_GT_GT_EQUALS  Type = ">>>="
	MINUS_MINUS      Type = "--"
	PLUS_PLUS        Type = "++"

	CLASS       Type = "CLASS"
	CONST       Type = "CONST"
	DO          Type = "DO"
	ELSE        Type = "ELSE"
	FALSE       Type = "FALSE"
	FOR         Type = "FOR"
	FUNCTION    Type = "FUNCTION"
	IF          Type = "IF"
	LET         Type = "LET"
	NULL        Type = "NULL"
	RETURN      Type = "RETURN"
	STATIC      Type = "STATIC"
	SWITCH      Type = "SWITCH"
	TRUE        Type = "TRUE"
	UNDEFINED   Type = "UNDEFINED"
	VAR         Type = "VAR"
	WHILE       Type = "WHILE"
	CASE        Type = "CASE"
	DEFAULT     Type = "DEFAULT"
	CONSTRUCTOR Type = "CONSTRUCTOR"
)

// Reserved keywords
var keywords = map[string]Type{
	"class":       CLASS,
	"const":       CONST,
	"do":          DO,
	"else":        ELSE,
	"false":       FALSE,
	"for":         FOR,
	"function":    FUNCTION,
	"if":          IF,
	"let":         LET,
	"null":        NULL,
	"return":      RETURN,
	"static":      STATIC,
	"switch":      SWITCH,
	"true":        TRUE,
	"undefined":   UNDEFINED,
	"var":         VAR,
	"while":       WHILE,
	"case":        CASE,
	"default":     DEFAULT,
	"constructor": CONSTRUCTOR,
}

// symbols maps every operator and punctuation spelling to its type. The lexer
// matches these greedily, longest spelling first.
var symbols = map[string]Type{
	">>>=": GT_GT_GT_EQUALS,

	"===": EQ_STRICT,
	"!==": NOT_EQ_STRICT,
	">>>": GT_GT_GT,
	"<<=": LT_LT_EQUALS,
	">>=": GT_GT_EQUALS,

	"<<": LT_LT,
	">>": GT_GT,
	"<=": LT_EQUALS,
	">=": GT_EQUALS,
	"==": EQ,
	"!=": NOT_EQ,
	"&&": AND,
	"||": OR,
	"+=": PLUS_EQUALS,
	"-=": MINUS_EQUALS,
	"*=": ASTERISK_EQUALS,
	"/=": SLASH_EQUALS,
	"%=": MOD_EQUALS,
	"&=": AMPERSAND_EQUALS,
	"|=": BITOR_EQUALS,
	"^=": CARET_EQUALS,
	"--": MINUS_MINUS,
	"++": PLUS_PLUS,

	"{": LBRACE,
	"}": RBRACE,
	"[": LBRACKET,
	"]": RBRACKET,
	"(": LPAREN,
	")": RPAREN,
	";": SEMICOLON,
	",": COMMA,
	".": PERIOD,
	"*": ASTERISK,
	"/": SLASH,
	"%": MOD,
	"+": PLUS,
	"-": MINUS,
	"<": LT,
	">": GT,
	"&": AMPERSAND,
	"^": CARET,
	"|": BITOR,
	"=": ASSIGN,
	"?": QUESTION,
	":": COLON,
}

// MaxSymbolLen is the length of the longest entry in the symbol table.
const MaxSymbolLen = 4

// LookupIdentifier used to determinate whether identifier is keyword nor not
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}

// LookupSymbol returns the type of the operator or punctuation spelled by s.
func LookupSymbol(s string) (Type, bool) {
	t, ok := symbols[s]
	return t, ok
}

// IsKeyword reports whether t is the type of a reserved keyword.
func IsKeyword(t Type) bool {
	_, ok := keywordSpellings[t]
	return ok
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Spelling returns the source text of a keyword type, or the type itself
// for operators and punctuation.
func Spelling(t Type) string {
	if s, ok := keywordSpellings[t]; ok {
		return s
	}
	return string(t)
}

var keywordSpellings = func() map[Type]string {
	m := make(map[Type]string, len(keywords))
	for word, t := range keywords {
		m[t] = word
	}
	return m
}()
