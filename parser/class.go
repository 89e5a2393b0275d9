package parser

import (
	"github.com/risor-io/jsfront/ast"
	"github.com/risor-io/jsfront/errors"
	"github.com/risor-io/jsfront/token"
)

// parseClass parses "class name? { member* }". A member is a constructor, a
// method or a field, optionally preceded by a single "static" modifier.
func (p *Parser) parseClass() (*ast.Class, error) {
	p.advance() // move past 'class'
	var name string
	if p.curTokenIs(token.IDENT) {
		name = p.advance().Literal
	}
	if _, err := p.expect(token.LBRACE, "class body"); err != nil {
		return nil, err
	}

	var (
		constructor *ast.ClassConstructor
		methods     []*ast.ClassMethod
		members     []*ast.ClassMember
		static      bool
		staticTok   token.Token
	)
	for !p.curTokenIs(token.RBRACE) {
		tok := p.current()
		switch tok.Type {
		case token.STATIC:
			if static {
				return nil, p.unexpected(tok, token.IDENT, "class member")
			}
			static, staticTok = true, p.advance()
			continue
		case token.SEMICOLON:
			if static {
				return nil, p.unexpected(tok, token.IDENT, "class member")
			}
			p.advance()
			continue
		case token.CONSTRUCTOR:
			if static {
				return nil, p.tokenError(errors.E1014, ErrStaticConstructor, staticTok,
					"class constructor may not be static")
			}
			if constructor != nil {
				return nil, p.tokenError(errors.E1013, ErrDuplicateConstructor, tok,
					"a class may only have one constructor")
			}
			p.advance()
			args, err := p.parseFunctionArgs("constructor parameters")
			if err != nil {
				return nil, err
			}
			body, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			constructor = ast.NewClassConstructor(args, body)
		case token.IDENT, token.PRIVATE:
			if tok.Type == token.PRIVATE {
				if err := p.checkPrivateName(tok); err != nil {
					return nil, err
				}
			}
			p.advance()
			switch p.current().Type {
			case token.LPAREN:
				args, err := p.parseFunctionArgs("method parameters")
				if err != nil {
					return nil, err
				}
				body, err := p.parseBlock()
				if err != nil {
					return nil, err
				}
				methods = append(methods, ast.NewClassMethod(static, tok.Literal, args, body))
			case token.ASSIGN:
				p.advance()
				value, err := p.parseExpression(COMMA, false)
				if err != nil {
					return nil, err
				}
				members = append(members, ast.NewClassMember(static, tok.Literal, value))
			case token.SEMICOLON, token.RBRACE:
				members = append(members, ast.NewClassMember(static, tok.Literal, nil))
			default:
				return nil, p.unexpected(p.current(), "", "class member "+tok.Literal)
			}
		default:
			return nil, p.unexpected(tok, token.RBRACE, "class body")
		}
		static = false
	}
	p.advance() // move past '}'
	return ast.NewClass(name, constructor, methods, members), nil
}

// checkPrivateName validates a private name token, which must be "#"
// followed by an identifier that does not start with a digit.
func (p *Parser) checkPrivateName(tok token.Token) error {
	name := tok.Literal
	if len(name) < 2 {
		return p.tokenError(errors.E1016, ErrInvalidPrivateName, tok,
			"expected an identifier after '#'")
	}
	if c := name[1]; c >= '0' && c <= '9' {
		return p.tokenError(errors.E1016, ErrInvalidPrivateName, tok,
			"private name %s may not start with a digit", name)
	}
	return nil
}
