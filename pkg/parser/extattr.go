package parser

import (
	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/lexer"
)

// parseExtAttrBlock parses an optional "[ EA ( , EA )* ]" block, returning
// nil if no "[" is present.
func (p *Parser) parseExtAttrBlock() ([]*ast.ExtendedAttribute, error) {
	if _, ok := p.consume(lexer.Other, "["); !ok {
		return nil, nil
	}

	var attrs []*ast.ExtendedAttribute
	for {
		ea, err := p.parseExtendedAttribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, ea)
		if _, ok := p.consume(lexer.Other, ","); ok {
			continue
		}
		break
	}

	if _, err := p.expect(lexer.Other, "]", "extended attribute block"); err != nil {
		return nil, err
	}
	return attrs, nil
}

// parseExtendedAttribute parses one NAME ( "=" RHS )? ( "(" args ")" )?.
func (p *Parser) parseExtendedAttribute() (*ast.ExtendedAttribute, error) {
	start := p.peek().Start
	name, ok := p.readIdentifierName()
	if !ok {
		return nil, p.errorf("No extended attribute name found")
	}
	ea := &ast.ExtendedAttribute{Base: ast.Base{Start: start}, Name: name}

	if _, ok := p.consume(lexer.Other, "="); ok {
		rhs, err := p.parseExtAttrRHS()
		if err != nil {
			return nil, err
		}
		ea.RHS = rhs
	}

	if _, ok := p.consume(lexer.Other, "("); ok {
		args, err := p.parseArgumentList()
		if err != nil {
			return nil, err
		}
		ea.Arguments = args
		if _, err := p.expect(lexer.Other, ")", "extended attribute arguments"); err != nil {
			return nil, err
		}
	}

	ea.Stop = p.peek().Start
	return ea, nil
}

// parseExtAttrRHS parses the right-hand side of "Name=RHS": a single
// identifier/float/integer/string lexeme, or a parenthesised identifier
// list.
func (p *Parser) parseExtAttrRHS() (*ast.ExtAttrRHS, error) {
	if _, ok := p.consume(lexer.Other, "("); ok {
		var list []string
		for {
			name, ok := p.readIdentifierName()
			if !ok {
				return nil, p.errorf("No identifier found in identifier list")
			}
			list = append(list, name)
			if _, ok := p.consume(lexer.Other, ","); ok {
				continue
			}
			break
		}
		if _, err := p.expect(lexer.Other, ")", "identifier list"); err != nil {
			return nil, err
		}
		return &ast.ExtAttrRHS{Kind: "identifier-list", List: list}, nil
	}

	if lx, ok := p.consume(lexer.Identifier, ""); ok {
		return &ast.ExtAttrRHS{Kind: "identifier", Value: lx.Text}, nil
	}
	if lx, ok := p.consume(lexer.Float, ""); ok {
		return &ast.ExtAttrRHS{Kind: "float", Value: lx.Text}, nil
	}
	if lx, ok := p.consume(lexer.Integer, ""); ok {
		return &ast.ExtAttrRHS{Kind: "integer", Value: lx.Text}, nil
	}
	if lx, ok := p.consume(lexer.String, ""); ok {
		return &ast.ExtAttrRHS{Kind: "string", Value: unquote(lx.Text)}, nil
	}

	return nil, p.errorf("No right-hand side found after \"=\"")
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
