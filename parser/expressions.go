package parser

import (
	"github.com/risor-io/jsfront/ast"
	"github.com/risor-io/jsfront/errors"
	"github.com/risor-io/jsfront/token"
)

// Expression parsing methods for the Parser.
// This file contains the Pratt loop and the prefix and infix handlers
// registered in New:
// - Literals, identifiers and grouping
// - Prefix, infix and postfix operators
// - Assignment and the ternary operator
// - Calls, index expressions and member access
// - Array literals and the shared list helper

// parseExpression parses an expression whose operators all bind more tightly
// than minBP. If acceptEmpty is set and the current token cannot begin an
// expression, it returns a nil expression and no error.
func (p *Parser) parseExpression(minBP int, acceptEmpty bool) (ast.Expr, error) {
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}
	tok := p.current()
	op := p.operators[tok.Type]
	if op == nil || op.prefix == nil {
		if acceptEmpty {
			return nil, nil
		}
		return nil, p.missingExpression(tok)
	}
	left, err := op.prefix()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.infixPrecedence(p.current().Type) > minBP {
		infix := p.operators[p.current().Type].infix
		if left, err = infix(left); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseNumber() (ast.Expr, error) {
	tok := p.advance()
	return ast.NewNumber(tok.Number), nil
}

func (p *Parser) parseBoolean() (ast.Expr, error) {
	tok := p.advance()
	return ast.NewBoolean(tok.Type == token.TRUE), nil
}

// parseNull handles both null and undefined.
func (p *Parser) parseNull() (ast.Expr, error) {
	p.advance()
	return ast.NewNull(), nil
}

func (p *Parser) parseIdent() (ast.Expr, error) {
	tok := p.advance()
	return ast.NewIdentifier(tok.Literal), nil
}

func (p *Parser) parseGroupedExpr() (ast.Expr, error) {
	p.advance() // move past '('
	expr, err := p.parseExpression(LOWEST, false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "grouped expression"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseArray() (ast.Expr, error) {
	p.advance() // move past '['
	elements, err := p.parseElements(true)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACKET, "array"); err != nil {
		return nil, err
	}
	return ast.NewArray(elements), nil
}

// parseElements parses a comma separated list of expressions, stopping at the
// first token that cannot begin an expression. Each element is parsed above
// the comma operator's binding power so commas act as separators. A trailing
// comma is allowed. When acceptEmpty is set, a comma with no element before
// it adds a Null element, which gives arrays their elision semantics.
func (p *Parser) parseElements(acceptEmpty bool) ([]ast.Expr, error) {
	var elements []ast.Expr
	for {
		if p.curTokenIs(token.COMMA) {
			if !acceptEmpty {
				break
			}
			elements = append(elements, ast.NewNull())
			p.advance()
			continue
		}
		element, err := p.parseExpression(COMMA, true)
		if err != nil {
			return nil, err
		}
		if element == nil {
			break
		}
		elements = append(elements, element)
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return elements, nil
}

// parsePrefixExpr handles unary plus and minus and prefix increment and
// decrement. The operand binds at PREFIX, so member access, calls, indexing
// and postfix operators all apply to the operand first.
func (p *Parser) parsePrefixExpr() (ast.Expr, error) {
	opTok := p.advance()
	operandTok := p.current()
	operand, err := p.parseExpression(PREFIX, false)
	if err != nil {
		return nil, err
	}
	node, err := ast.NewUnaryOp(opTok.Literal, operand)
	if err != nil {
		return nil, p.tokenError(errors.E1005, ErrInvalidTarget, operandTok,
			"invalid operand for %s (expected an identifier or member access)", opTok.Literal)
	}
	return node, nil
}

// parseInfixExpr parses the right operand of a binary operator at the
// operator's own binding power, which makes chains of equal precedence
// group to the left.
func (p *Parser) parseInfixExpr(left ast.Expr) (ast.Expr, error) {
	opTok := p.advance()
	right, err := p.parseExpression(p.infixPrecedence(opTok.Type), false)
	if err != nil {
		return nil, err
	}
	return ast.NewBinOp(opTok.Literal, left, right), nil
}

func (p *Parser) parsePostfix(left ast.Expr) (ast.Expr, error) {
	opTok := p.advance()
	target, ok := left.(ast.Assignable)
	if !ok {
		return nil, p.tokenError(errors.E1005, ErrInvalidTarget, opTok,
			"invalid operand for %s (expected an identifier or member access)", opTok.Literal)
	}
	return ast.NewSuffixOp(opTok.Literal, target), nil
}

// parseAssign parses the value of an assignment one level below ASSIGN, so
// that chained assignments group to the right.
func (p *Parser) parseAssign(left ast.Expr) (ast.Expr, error) {
	opTok := p.advance()
	target, ok := left.(ast.Assignable)
	if !ok {
		return nil, p.tokenError(errors.E1005, ErrInvalidTarget, opTok,
			"invalid assignment target %s (expected an identifier or member access)", left)
	}
	value, err := p.parseExpression(ASSIGN-1, false)
	if err != nil {
		return nil, err
	}
	return ast.NewAssignment(opTok.Literal, target, value), nil
}

// parseTernary parses the branches of a conditional. The false branch is
// parsed one level below ASSIGN, so a ternary nested there groups to the right.
func (p *Parser) parseTernary(condition ast.Expr) (ast.Expr, error) {
	p.advance() // move past '?'
	onTrue, err := p.parseExpression(LOWEST, false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON, "ternary expression"); err != nil {
		return nil, err
	}
	onFalse, err := p.parseExpression(ASSIGN-1, false)
	if err != nil {
		return nil, err
	}
	return ast.NewTernaryOp(condition, onTrue, onFalse), nil
}

func (p *Parser) parseCall(callee ast.Expr) (ast.Expr, error) {
	p.advance() // move past '('
	args, err := p.parseElements(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "function call"); err != nil {
		return nil, err
	}
	return ast.NewCall(callee, args), nil
}

func (p *Parser) parseIndex(array ast.Expr) (ast.Expr, error) {
	p.advance() // move past '['
	index, err := p.parseExpression(LOWEST, false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACKET, "index expression"); err != nil {
		return nil, err
	}
	return ast.NewIndex(array, index), nil
}

// parseMember parses "left.field". The field may be an identifier, a
// keyword used as a property name, or a private name.
func (p *Parser) parseMember(left ast.Expr) (ast.Expr, error) {
	p.advance() // move past '.'
	tok := p.advance()
	switch {
	case tok.Type == token.IDENT, token.IsKeyword(tok.Type):
	case tok.Type == token.PRIVATE:
		if err := p.checkPrivateName(tok); err != nil {
			return nil, err
		}
	default:
		return nil, p.unexpected(tok, token.IDENT, "member access")
	}
	return ast.NewAccessor(left, tok.Literal), nil
}

func (p *Parser) parseFunctionExpr() (ast.Expr, error) {
	return asExpr(p.parseFunction())
}

func (p *Parser) parseClassExpr() (ast.Expr, error) {
	return asExpr(p.parseClass())
}
