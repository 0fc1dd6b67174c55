package parser

import (
	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/lexer"
)

// parseDefaultValue parses a dictionary field's, argument's, or const's
// "= VALUE" right-hand side: true | false | null | Infinity | -Infinity |
// NaN | a numeric literal | a string | an empty sequence "[]".
func (p *Parser) parseDefaultValue() (*ast.DefaultValue, error) {
	start := p.peek().Start

	negative := false
	if _, ok := p.consume(lexer.Other, "-"); ok {
		negative = true
		if !p.atKeyword("Infinity") {
			return nil, p.errorf("Unexpected \"-\" in default value")
		}
	}

	switch {
	case p.consumeKeyword("true"):
		return p.dv(start, "boolean", "true", false), nil
	case p.consumeKeyword("false"):
		return p.dv(start, "boolean", "false", false), nil
	case p.consumeKeyword("null"):
		return p.dv(start, "null", "", false), nil
	case p.consumeKeyword("Infinity"):
		return p.dv(start, "Infinity", "Infinity", negative), nil
	case p.consumeKeyword("NaN"):
		return p.dv(start, "NaN", "NaN", false), nil
	}

	if lx, ok := p.consume(lexer.Float, ""); ok {
		return p.dv(start, "number", lx.Text, false), nil
	}
	if lx, ok := p.consume(lexer.Integer, ""); ok {
		return p.dv(start, "number", lx.Text, false), nil
	}
	if lx, ok := p.consume(lexer.String, ""); ok {
		return p.dv(start, "string", unquote(lx.Text), false), nil
	}
	if _, ok := p.consume(lexer.Other, "["); ok {
		if _, err := p.expect(lexer.Other, "]", "empty sequence default value"); err != nil {
			return nil, err
		}
		return p.dv(start, "sequence", "", false), nil
	}

	return nil, p.errorf("No default value found")
}

func (p *Parser) dv(start lexer.Position, kind, value string, negative bool) *ast.DefaultValue {
	return &ast.DefaultValue{Base: ast.Base{Start: start, Stop: p.peek().Start}, Kind: kind, Value: value, Negative: negative}
}
