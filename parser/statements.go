package parser

import (
	"github.com/risor-io/jsfront/ast"
	"github.com/risor-io/jsfront/errors"
	"github.com/risor-io/jsfront/token"
)

// Statement parsing methods for the Parser.
// This file contains methods that parse statement constructs:
// - Variable declarations and definitions
// - Loops (while, for, do/while)
// - Conditionals (if/else if/else, switch)
// - Functions and return
// - Blocks and statement bodies

// parseStatement parses zero or one statement. It returns a nil node for an
// empty statement.
func (p *Parser) parseStatement() (ast.Node, error) {
	defer p.leave()
	if err := p.enter(); err != nil {
		return nil, err
	}
	switch p.current().Type {
	case token.SEMICOLON:
		p.advance()
		return nil, nil
	case token.LET, token.VAR, token.CONST:
		return p.parseDefinition()
	case token.WHILE:
		return asNode(p.parseWhile())
	case token.FOR:
		return asNode(p.parseFor())
	case token.SWITCH:
		return asNode(p.parseSwitch())
	case token.IF:
		return asNode(p.parseIf())
	case token.FUNCTION:
		return asNode(p.parseFunction())
	case token.RETURN:
		return asNode(p.parseReturn())
	case token.DO:
		return asNode(p.parseDoWhile())
	case token.CLASS:
		return asNode(p.parseClass())
	default:
		return p.parseExpression(LOWEST, false)
	}
}

// parseBlock parses statements enclosed in braces.
func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(token.LBRACE, "block"); err != nil {
		return nil, err
	}
	var statements []ast.Node
	for !p.curTokenIs(token.RBRACE) && !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if _, err := p.expect(token.RBRACE, "block"); err != nil {
		return nil, err
	}
	return ast.NewBlock(statements), nil
}

// parseBody parses the body of a loop or conditional: a block, a single
// statement, or a lone ";" meaning no body at all. A ";" ending a single
// statement body is consumed with it.
func (p *Parser) parseBody() (ast.Node, error) {
	switch p.current().Type {
	case token.LBRACE:
		return asNode(p.parseBlock())
	case token.SEMICOLON:
		p.advance()
		return nil, nil
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.curTokenIs(token.SEMICOLON) {
		p.advance()
	}
	return stmt, nil
}

// parseCondition parses "( expr )" following a keyword.
func (p *Parser) parseCondition(context string) (ast.Expr, error) {
	if _, err := p.expect(token.LPAREN, context); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST, false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, context); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseDefinition parses a let, var or const statement. A single binding
// yields a Declaration or Definition; several comma separated bindings
// yield a ChainedDefinition.
func (p *Parser) parseDefinition() (ast.Node, error) {
	keyword := ast.Keyword(p.advance().Literal)
	first, err := p.parseBinding(keyword)
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.COMMA) {
		return first, nil
	}
	bindings := []ast.Binding{first}
	for p.curTokenIs(token.COMMA) {
		p.advance()
		binding, err := p.parseBinding(keyword)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, binding)
	}
	chain, err := ast.NewChainedDefinition(bindings)
	if err != nil {
		return nil, p.tokenError(errors.E1003, err, p.current(), "%s", err)
	}
	return chain, nil
}

// parseBinding parses "name" or "name = value" within a declaration.
func (p *Parser) parseBinding(keyword ast.Keyword) (ast.Binding, error) {
	nameTok, err := p.expect(token.IDENT, string(keyword)+" declaration")
	if err != nil {
		return nil, err
	}
	if p.curTokenIs(token.ASSIGN) {
		p.advance()
		value, err := p.parseExpression(COMMA, false)
		if err != nil {
			return nil, err
		}
		return ast.NewDefinition(keyword, nameTok.Literal, value), nil
	}
	switch p.current().Type {
	case token.SEMICOLON, token.COMMA, token.RBRACE, token.EOF:
	default:
		return nil, p.unexpected(p.current(), token.ASSIGN, string(keyword)+" declaration")
	}
	if keyword == ast.Const {
		return nil, p.tokenError(errors.E1015, ErrConstWithoutInit, nameTok,
			"missing initializer in const declaration of %q", nameTok.Literal)
	}
	decl, err := ast.NewDeclaration(keyword, nameTok.Literal)
	if err != nil {
		return nil, p.tokenError(errors.E1003, err, nameTok, "%s", err)
	}
	return decl, nil
}

func (p *Parser) parseWhile() (*ast.While, error) {
	p.advance() // move past 'while'
	cond, err := p.parseCondition("while loop")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(cond, body), nil
}

// parseFor parses "for ( init? ; cond? ; iter? ) body".
func (p *Parser) parseFor() (*ast.For, error) {
	p.advance() // move past 'for'
	if _, err := p.expect(token.LPAREN, "for loop"); err != nil {
		return nil, err
	}

	var init ast.Node
	var err error
	switch p.current().Type {
	case token.SEMICOLON:
	case token.LET, token.VAR, token.CONST:
		init, err = p.parseDefinition()
	default:
		init, err = p.parseExpression(LOWEST, false)
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, "for loop"); err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.curTokenIs(token.SEMICOLON) {
		if cond, err = p.parseExpression(LOWEST, false); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON, "for loop"); err != nil {
		return nil, err
	}

	var iter ast.Expr
	if !p.curTokenIs(token.RPAREN) {
		if iter, err = p.parseExpression(LOWEST, false); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RPAREN, "for loop"); err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return ast.NewFor(init, cond, iter, body), nil
}

// parseSwitch parses a switch statement. Consecutive case and default labels
// form one clause that shares the body that follows them.
func (p *Parser) parseSwitch() (*ast.Switch, error) {
	p.advance() // move past 'switch'
	subject, err := p.parseCondition("switch statement")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE, "switch statement"); err != nil {
		return nil, err
	}

	var clauses []*ast.CaseClause
	hasDefault := false
	for !p.curTokenIs(token.RBRACE) {
		if !p.curTokenIs(token.CASE) && !p.curTokenIs(token.DEFAULT) {
			return nil, p.unexpected(p.current(), token.RBRACE, "switch statement")
		}
		var labels []ast.Expr
		isDefault := false
	labels:
		for {
			switch p.current().Type {
			case token.DEFAULT:
				tok := p.advance()
				if hasDefault {
					return nil, p.tokenError(errors.E1012, ErrDuplicateDefault, tok,
						"multiple default clauses in switch statement")
				}
				hasDefault, isDefault = true, true
			case token.CASE:
				p.advance()
				label, err := p.parseExpression(LOWEST, false)
				if err != nil {
					return nil, err
				}
				labels = append(labels, label)
			default:
				break labels
			}
			if _, err := p.expect(token.COLON, "switch case"); err != nil {
				return nil, err
			}
		}

		var body ast.Node
		switch p.current().Type {
		case token.RBRACE:
		case token.LBRACE:
			if body, err = asNode(p.parseBlock()); err != nil {
				return nil, err
			}
		default:
			if body, err = asNode(p.parseCaseBlock()); err != nil {
				return nil, err
			}
		}
		clauses = append(clauses, ast.NewCaseClause(labels, isDefault, body))
	}
	p.advance() // move past '}'

	sw, err := ast.NewSwitch(subject, clauses)
	if err != nil {
		return nil, p.tokenError(errors.E1012, ErrDuplicateDefault, p.current(), "%s", err)
	}
	return sw, nil
}

// parseCaseBlock parses the statements following a case label up to the next
// label or the end of the switch.
func (p *Parser) parseCaseBlock() (*ast.CaseBlock, error) {
	var statements []ast.Node
	for !p.atEnd() {
		switch p.current().Type {
		case token.CASE, token.DEFAULT, token.RBRACE:
			return ast.NewCaseBlock(statements), nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return ast.NewCaseBlock(statements), nil
}

// parseIf parses an if statement with any number of else if branches and an
// optional else branch. "else if" is recognized by looking one token ahead.
func (p *Parser) parseIf() (*ast.IfElse, error) {
	p.advance() // move past 'if'
	cond, err := p.parseCondition("if statement")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	ifBranch := ast.NewIf(cond, body)

	var elifs []*ast.Elif
	for p.curTokenIs(token.ELSE) && p.peekTokenIs(token.IF) {
		p.advance() // move past 'else'
		p.advance() // move past 'if'
		cond, err := p.parseCondition("else if statement")
		if err != nil {
			return nil, err
		}
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		elifs = append(elifs, ast.NewElif(cond, body))
	}

	var elseBranch *ast.Else
	if p.curTokenIs(token.ELSE) {
		p.advance()
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		elseBranch = ast.NewElse(body)
	}
	return ast.NewIfElse(ifBranch, elifs, elseBranch), nil
}

// parseFunction parses "function name? ( args ) { body }".
func (p *Parser) parseFunction() (*ast.Function, error) {
	p.advance() // move past 'function'
	var name string
	if p.curTokenIs(token.IDENT) {
		name = p.advance().Literal
	}
	args, err := p.parseFunctionArgs("function parameters")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunction(name, args, body), nil
}

// parseFunctionArgs parses a parenthesized, comma separated parameter list.
// Each parameter may have a default value.
func (p *Parser) parseFunctionArgs(context string) ([]*ast.FunctionArg, error) {
	if _, err := p.expect(token.LPAREN, context); err != nil {
		return nil, err
	}
	var args []*ast.FunctionArg
	for !p.curTokenIs(token.RPAREN) {
		nameTok, err := p.expect(token.IDENT, context)
		if err != nil {
			return nil, err
		}
		var defaultValue ast.Expr
		if p.curTokenIs(token.ASSIGN) {
			p.advance()
			if defaultValue, err = p.parseExpression(COMMA, false); err != nil {
				return nil, err
			}
		}
		args = append(args, ast.NewFunctionArg(nameTok.Literal, defaultValue))
		if !p.curTokenIs(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.RPAREN, context); err != nil {
		return nil, err
	}
	return args, nil
}

// parseReturn parses a return statement. The value is omitted when the
// statement ends immediately.
func (p *Parser) parseReturn() (*ast.Return, error) {
	p.advance() // move past 'return'
	switch p.current().Type {
	case token.SEMICOLON, token.RBRACE, token.EOF:
		return ast.NewReturn(nil), nil
	}
	value, err := p.parseExpression(LOWEST, false)
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(value), nil
}

// parseDoWhile parses "do { body } while ( cond ) ;".
func (p *Parser) parseDoWhile() (*ast.DoWhile, error) {
	p.advance() // move past 'do'
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.WHILE, "do while loop"); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition("do while loop")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON, "do while loop"); err != nil {
		return nil, err
	}
	return ast.NewDoWhile(cond, body), nil
}
