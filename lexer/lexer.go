// Package lexer converts source text into tokens.
//
// A Lexer is created with New and tokens are read one at a time with Next.
// Lex is a shorthand that reads the whole input into a slice terminated by
// an EOF token, which is what the parser consumes.
package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/risor-io/jsfront/token"
)

var (
	// ErrUnexpectedChar is returned for a character that cannot start a token.
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrInvalidNumber is returned for a malformed numeric literal.
	ErrInvalidNumber = errors.New("invalid number literal")
)

// Error describes a failure to tokenize the input. Lexing stops at the
// first Error.
type Error struct {
	Kind     error
	Char     rune
	Position token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q at offset %d", e.Kind, e.Char, e.Position.Char)
}

// Offset returns the byte offset of the offending character.
func (e *Error) Offset() int {
	return e.Position.Char
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Lexer holds our object-state.
type Lexer struct {
	// The input string being tokenized
	input string

	// Byte offset of the next character to read
	pos int

	// 0-indexed line number of the current position
	line int

	// Byte offset where the current line starts
	lineStart int

	// The filename of the input
	file string
}

// New creates a Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// SetFilename sets the filename recorded in token positions.
func (l *Lexer) SetFilename(filename string) {
	l.file = filename
}

// Filename returns the filename recorded in token positions.
func (l *Lexer) Filename() string {
	return l.file
}

// Lex tokenizes the entire input. The returned slice always ends with an
// EOF token unless an error is returned.
func Lex(input string) ([]token.Token, error) {
	return New(input).All()
}

// All reads every remaining token, including the terminating EOF token.
func (l *Lexer) All() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// Next returns the next token from the input. Once the input is exhausted,
// every call returns an EOF token.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		pos := l.position()
		return token.Token{Type: token.EOF, StartPosition: pos, EndPosition: pos}, nil
	}
	if tok, ok := l.readSymbol(); ok {
		return tok, nil
	}
	ch := l.input[l.pos]
	switch {
	case isDigit(ch):
		return l.readNumber()
	case isIdentChar(ch):
		return l.readIdentifier(), nil
	case ch == '#':
		return l.readPrivateName(), nil
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return l.illegal(r, l.position(), ErrUnexpectedChar)
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
		if r == '\n' {
			l.line++
			l.lineStart = l.pos
		}
	}
}

// readSymbol matches the longest operator or punctuation at the current
// position, trying 4, 3, 2 and then 1 character spans.
func (l *Lexer) readSymbol() (token.Token, bool) {
	for n := token.MaxSymbolLen; n > 0; n-- {
		if l.pos+n > len(l.input) {
			continue
		}
		text := l.input[l.pos : l.pos+n]
		if typ, ok := token.LookupSymbol(text); ok {
			return l.emit(typ, l.pos+n), true
		}
	}
	return token.Token{}, false
}

// readNumber scans digits with at most one decimal point and an optional
// exponent. The exponent marker may be followed by a sign and must be
// followed by at least one digit.
func (l *Lexer) readNumber() (token.Token, error) {
	start := l.pos
	end := l.pos
	sawDecimal, sawExponent := false, false
loop:
	for end < len(l.input) {
		ch := l.input[end]
		switch {
		case isDigit(ch):
			end++
		case ch == '.':
			if sawDecimal || sawExponent {
				return l.illegal('.', l.positionAt(end), ErrUnexpectedChar)
			}
			sawDecimal = true
			end++
		case ch == 'e' || ch == 'E':
			if sawExponent {
				return l.illegal(rune(ch), l.positionAt(end), ErrInvalidNumber)
			}
			sawExponent = true
			end++
			if end < len(l.input) && (l.input[end] == '+' || l.input[end] == '-') {
				end++
			}
			if end >= len(l.input) || !isDigit(l.input[end]) {
				return l.illegal(rune(ch), l.positionAt(start), ErrInvalidNumber)
			}
		default:
			break loop
		}
	}
	literal := l.input[start:end]
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		// Out of range values parse to ±Inf along with an error; keep the value.
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return l.illegal(rune(literal[0]), l.positionAt(start), ErrInvalidNumber)
		}
	}
	tok := l.emit(token.NUMBER, end)
	tok.Number = value
	return tok, nil
}

func (l *Lexer) readIdentifier() token.Token {
	end := l.pos
	for end < len(l.input) && isIdentChar(l.input[end]) {
		end++
	}
	typ := token.LookupIdentifier(l.input[l.pos:end])
	return l.emit(typ, end)
}

// readPrivateName scans "#" and any identifier characters that follow. The
// parser decides whether the name is acceptable.
func (l *Lexer) readPrivateName() token.Token {
	end := l.pos + 1
	for end < len(l.input) && isIdentChar(l.input[end]) {
		end++
	}
	return l.emit(token.PRIVATE, end)
}

// emit builds a token spanning from the current position to end and moves
// the lexer past it.
func (l *Lexer) emit(typ token.Type, end int) token.Token {
	start := l.position()
	tok := token.Token{
		Type:          typ,
		Literal:       l.input[l.pos:end],
		StartPosition: start,
		EndPosition:   start.Advance(end - l.pos),
	}
	l.pos = end
	return tok
}

func (l *Lexer) illegal(ch rune, pos token.Position, kind error) (token.Token, error) {
	tok := token.Token{
		Type:          token.ILLEGAL,
		Literal:       string(ch),
		StartPosition: pos,
		EndPosition:   pos.Advance(utf8.RuneLen(ch)),
	}
	return tok, &Error{Kind: kind, Char: ch, Position: pos}
}

func (l *Lexer) position() token.Position {
	return l.positionAt(l.pos)
}

// positionAt returns the position of a byte offset on the current line.
func (l *Lexer) positionAt(offset int) token.Position {
	return token.Position{
		Char:      offset,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    offset - l.lineStart,
		File:      l.file,
	}
}

// GetLineText returns the full line of source containing the given token.
func (l *Lexer) GetLineText(tok token.Token) string {
	return LineText(l.input, tok.StartPosition)
}

// LineText returns the line of input that contains pos.
func LineText(input string, pos token.Position) string {
	if pos.LineStart > len(input) {
		return ""
	}
	line := input[pos.LineStart:]
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimRight(line, "\r")
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || isDigit(ch) || ch == '_'
}
