package parser

import "github.com/risor-io/jsfront/token"

// cursor is a position within a fully materialized token slice. The slice
// always ends with an EOF token, and the cursor never moves past it.
type cursor struct {
	tokens []token.Token
	pos    int
}

func newCursor(tokens []token.Token) cursor {
	if n := len(tokens); n == 0 || tokens[n-1].Type != token.EOF {
		var eof token.Token
		if n > 0 {
			eof.StartPosition = tokens[n-1].EndPosition
			eof.EndPosition = tokens[n-1].EndPosition
		}
		eof.Type = token.EOF
		tokens = append(tokens[:n:n], eof)
	}
	return cursor{tokens: tokens}
}

// current returns the token at the cursor.
func (c *cursor) current() token.Token {
	return c.peek(0)
}

// peek returns the token n positions after the cursor. Looking past the end
// of the input returns the EOF token.
func (c *cursor) peek(n int) token.Token {
	if i := c.pos + n; i < len(c.tokens) {
		return c.tokens[i]
	}
	return c.tokens[len(c.tokens)-1]
}

// advance consumes the current token and returns it.
func (c *cursor) advance() token.Token {
	tok := c.current()
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
	return tok
}

// atEnd reports whether the cursor has reached the EOF token.
func (c *cursor) atEnd() bool {
	return c.current().Type == token.EOF
}

// curTokenIs returns true if the current token has the given type.
func (c *cursor) curTokenIs(t token.Type) bool {
	return c.current().Type == t
}

// peekTokenIs returns true if the token after the current one has the given type.
func (c *cursor) peekTokenIs(t token.Type) bool {
	return c.peek(1).Type == t
}
