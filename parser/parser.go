// Package parser is used to generate the abstract syntax tree (AST) for a program.
//
// A parser is created by calling New() with the tokens of a program. The parser
// should then be used only once, by calling parser.Parse() to produce the AST.
// Parsing stops at the first error.
package parser

import (
	"context"
	stderrors "errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/risor-io/jsfront/ast"
	"github.com/risor-io/jsfront/errors"
	"github.com/risor-io/jsfront/lexer"
	"github.com/risor-io/jsfront/token"
)

type (
	prefixParseFn func() (ast.Expr, error)
	infixParseFn  func(ast.Expr) (ast.Expr, error)
)

// operator is one entry of the Pratt dispatch table. A token type may have a
// prefix handler, an infix handler or both. The binding power applies when
// the token is used as an infix operator.
type operator struct {
	prefix prefixParseFn
	infix  infixParseFn
	bp     int
}

// Parse the provided input as source code and return the AST. This is
// shorthand way to lex the input, create a Parser and then call Parse on it.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Block, error) {
	// Extract filename from options before lexing, so that lexer errors
	// have proper location context.
	var filename string
	for _, opt := range options {
		var probe Parser
		opt(&probe)
		if probe.filename != "" {
			filename = probe.filename
		}
	}

	l := lexer.New(input)
	l.SetFilename(filename)
	tokens, err := l.All()
	if err != nil {
		return nil, NewLexError(err, input, filename)
	}

	opts := make([]Option, 0, len(options)+1)
	opts = append(opts, WithSource(input))
	opts = append(opts, options...)
	return New(tokens, opts...).Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithSource sets the source text the tokens were read from. It is used to
// show the offending line in error messages.
func WithSource(source string) Option {
	return func(p *Parser) {
		p.source = source
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithLogger sets the logger used to trace parsing. By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Parser object
type Parser struct {
	// cursor over the tokens being parsed
	cursor

	// the Context supplied in the Parse() call
	ctx context.Context

	// operators is the Pratt dispatch table, keyed by token type
	operators map[token.Type]*operator

	// The filename of the input
	filename string

	// The source text, if known
	source string

	// Current recursion depth
	depth int

	// Maximum allowed recursion depth
	maxDepth int

	logger zerolog.Logger
}

// New returns a Parser for the given tokens. The tokens are normally produced
// by lexer.Lex; an EOF token is appended if the slice does not end with one.
func New(tokens []token.Token, options ...Option) *Parser {
	p := &Parser{
		cursor:    newCursor(tokens),
		operators: map[token.Type]*operator{},
		maxDepth:  DefaultMaxDepth,
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		opt(p)
	}

	// Register prefix-functions
	p.registerPrefix(token.NUMBER, p.parseNumber)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.NULL, p.parseNull)
	p.registerPrefix(token.UNDEFINED, p.parseNull)
	p.registerPrefix(token.IDENT, p.parseIdent)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpr)
	p.registerPrefix(token.LBRACKET, p.parseArray)
	p.registerPrefix(token.PLUS, p.parsePrefixExpr)
	p.registerPrefix(token.MINUS, p.parsePrefixExpr)
	p.registerPrefix(token.PLUS_PLUS, p.parsePrefixExpr)
	p.registerPrefix(token.MINUS_MINUS, p.parsePrefixExpr)
	p.registerPrefix(token.FUNCTION, p.parseFunctionExpr)
	p.registerPrefix(token.CLASS, p.parseClassExpr)

	// Register infix functions
	p.registerInfix(token.COMMA, COMMA, p.parseInfixExpr)
	for _, t := range []token.Type{
		token.ASSIGN, token.PLUS_EQUALS, token.MINUS_EQUALS, token.ASTERISK_EQUALS,
		token.SLASH_EQUALS, token.MOD_EQUALS, token.AMPERSAND_EQUALS, token.BITOR_EQUALS,
		token.CARET_EQUALS, token.LT_LT_EQUALS, token.GT_GT_EQUALS, token.GT_GT_GT_EQUALS,
	} {
		p.registerInfix(t, ASSIGN, p.parseAssign)
	}
	p.registerInfix(token.QUESTION, ASSIGN, p.parseTernary)
	p.registerInfix(token.OR, OR, p.parseInfixExpr)
	p.registerInfix(token.AND, AND, p.parseInfixExpr)
	p.registerInfix(token.BITOR, BIT_OR, p.parseInfixExpr)
	p.registerInfix(token.CARET, BIT_XOR, p.parseInfixExpr)
	p.registerInfix(token.AMPERSAND, BIT_AND, p.parseInfixExpr)
	p.registerInfix(token.EQ, EQUALS, p.parseInfixExpr)
	p.registerInfix(token.NOT_EQ, EQUALS, p.parseInfixExpr)
	p.registerInfix(token.EQ_STRICT, EQUALS, p.parseInfixExpr)
	p.registerInfix(token.NOT_EQ_STRICT, EQUALS, p.parseInfixExpr)
	p.registerInfix(token.LT, LESSGREATER, p.parseInfixExpr)
	p.registerInfix(token.LT_EQUALS, LESSGREATER, p.parseInfixExpr)
	p.registerInfix(token.GT, LESSGREATER, p.parseInfixExpr)
	p.registerInfix(token.GT_EQUALS, LESSGREATER, p.parseInfixExpr)
	p.registerInfix(token.LT_LT, SHIFT, p.parseInfixExpr)
	p.registerInfix(token.GT_GT, SHIFT, p.parseInfixExpr)
	p.registerInfix(token.GT_GT_GT, SHIFT, p.parseInfixExpr)
	p.registerInfix(token.PLUS, SUM, p.parseInfixExpr)
	p.registerInfix(token.MINUS, SUM, p.parseInfixExpr)
	p.registerInfix(token.ASTERISK, PRODUCT, p.parseInfixExpr)
	p.registerInfix(token.SLASH, PRODUCT, p.parseInfixExpr)
	p.registerInfix(token.MOD, PRODUCT, p.parseInfixExpr)
	p.registerInfix(token.PLUS_PLUS, POSTFIX, p.parsePostfix)
	p.registerInfix(token.MINUS_MINUS, POSTFIX, p.parsePostfix)
	p.registerInfix(token.LPAREN, CALL, p.parseCall)
	p.registerInfix(token.LBRACKET, CALL, p.parseIndex)
	p.registerInfix(token.PERIOD, MEMBER, p.parseMember)

	return p
}

// Parse the program and return its statements as the root Block. Parsing
// stops at the first error, which is returned with no partial AST.
func (p *Parser) Parse(ctx context.Context) (*ast.Block, error) {
	p.ctx = ctx
	var statements []ast.Node
	for !p.atEnd() {
		// Check for context timeout
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		start := p.current()
		stmt, err := p.parseStatement()
		if err != nil {
			p.logger.Debug().
				Err(err).
				Str("file", p.filename).
				Int("line", start.StartPosition.LineNumber()).
				Msg("parse failed")
			return nil, err
		}
		if stmt == nil {
			continue
		}
		p.logger.Trace().
			Str("node", fmt.Sprintf("%T", stmt)).
			Int("line", start.StartPosition.LineNumber()).
			Msg("parsed statement")
		statements = append(statements, stmt)
	}
	return ast.NewBlock(statements), nil
}

// registerPrefix registers a function for handling a token that begins an
// expression.
func (p *Parser) registerPrefix(tokenType token.Type, fn prefixParseFn) {
	p.operatorFor(tokenType).prefix = fn
}

// registerInfix registers a function and binding power for handling a token
// that follows an expression.
func (p *Parser) registerInfix(tokenType token.Type, bp int, fn infixParseFn) {
	op := p.operatorFor(tokenType)
	op.infix = fn
	op.bp = bp
}

func (p *Parser) operatorFor(tokenType token.Type) *operator {
	op, ok := p.operators[tokenType]
	if !ok {
		op = &operator{}
		p.operators[tokenType] = op
	}
	return op
}

// infixPrecedence returns the binding power of t as an infix operator, or
// LOWEST if t is not one.
func (p *Parser) infixPrecedence(t token.Type) int {
	if op, ok := p.operators[t]; ok && op.infix != nil {
		return op.bp
	}
	return LOWEST
}

// enter increments the nesting depth. Callers must defer leave.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		tok := p.current()
		return p.newError(errors.E1009, ErrMaxDepth, tok, "", "")
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// expect consumes the current token and fails if it is not of type t.
// The context names the construct being parsed, for the error message.
func (p *Parser) expect(t token.Type, context string) (token.Token, error) {
	tok := p.advance()
	if tok.Type != t {
		return tok, p.unexpected(tok, t, context)
	}
	return tok, nil
}

func (p *Parser) newError(code errors.ErrorCode, cause error, tok token.Token, msg, hint string) *BaseParserError {
	return NewParserError(ErrorOpts{
		ErrType:       "parse error",
		Code:          code,
		Message:       msg,
		Cause:         cause,
		File:          p.filename,
		StartPosition: tok.StartPosition,
		EndPosition:   tok.EndPosition,
		SourceCode:    lexer.LineText(p.source, tok.StartPosition),
		Hint:          hint,
	})
}

// tokenError reports an error of the given kind at tok.
func (p *Parser) tokenError(code errors.ErrorCode, cause error, tok token.Token, msg string, args ...any) error {
	return p.newError(code, cause, tok, fmt.Sprintf(msg, args...), "")
}

// unexpected reports tok as not fitting the grammar. Expected may be empty
// when there is no single acceptable token type.
func (p *Parser) unexpected(tok token.Token, expected token.Type, context string) error {
	msg := fmt.Sprintf("unexpected %s while parsing %s", tokenDescription(tok), context)
	code := errors.E1001
	if expected != "" {
		msg += fmt.Sprintf(" (expected %s)", tokenTypeDescription(expected))
		if tok.Type == token.EOF && isCloser(expected) {
			code = errors.E1007
		}
		if expected == token.IDENT {
			code = errors.E1006
		}
	}
	return &UnexpectedTokenError{
		BaseParserError: p.newError(code, ErrUnexpectedToken, tok, msg, suggest(tok, expected)),
		Expected:        expected,
		Actual:          tok,
	}
}

// missingExpression reports tok as unable to begin an expression.
func (p *Parser) missingExpression(tok token.Token) error {
	msg := fmt.Sprintf("unexpected %s (expected an expression)", tokenDescription(tok))
	return &UnexpectedTokenError{
		BaseParserError: p.newError(errors.E1004, ErrUnexpectedToken, tok, msg, ""),
		Actual:          tok,
	}
}

// suggest offers the expected keyword when an identifier looks like a
// misspelling of it.
func suggest(tok token.Token, expected token.Type) string {
	if tok.Type != token.IDENT || !token.IsKeyword(expected) {
		return ""
	}
	return errors.FormatSuggestions(errors.SuggestSimilar(tok.Literal, []string{token.Spelling(expected)}))
}

func isCloser(t token.Type) bool {
	return t == token.RBRACE || t == token.RPAREN || t == token.RBRACKET
}

// NewLexError converts an error returned by the lexer into a SyntaxError
// carrying the source line and the matching error code. Other errors are
// returned unchanged.
func NewLexError(err error, source, filename string) error {
	var lexErr *lexer.Error
	if !stderrors.As(err, &lexErr) {
		return err
	}
	code := errors.E0001
	if stderrors.Is(lexErr, lexer.ErrInvalidNumber) {
		code = errors.E0002
	}
	pos := lexErr.Position
	return NewSyntaxError(ErrorOpts{
		Code:          code,
		Cause:         err,
		File:          filename,
		StartPosition: pos,
		EndPosition:   pos.Advance(max(utf8.RuneLen(lexErr.Char), 1)),
		SourceCode:    lexer.LineText(source, pos),
	})
}

// asNode converts the result of a parse function returning a concrete node
// type into an ast.Node, so that a failed parse yields an untyped nil.
func asNode[T ast.Node](n T, err error) (ast.Node, error) {
	if err != nil {
		return nil, err
	}
	return n, nil
}

// asExpr is the ast.Expr counterpart of asNode.
func asExpr[T ast.Expr](n T, err error) (ast.Expr, error) {
	if err != nil {
		return nil, err
	}
	return n, nil
}
