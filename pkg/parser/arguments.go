package parser

import (
	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/lexer"
)

// parseArgumentList parses "argument ( , argument )*", empty allowed. The
// caller is responsible for the surrounding "(" ")".
func (p *Parser) parseArgumentList() ([]*ast.Argument, error) {
	if p.at(lexer.Other, ")") {
		return nil, nil
	}

	var args []*ast.Argument
	for {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if _, ok := p.consume(lexer.Other, ","); ok {
			if p.at(lexer.Other, ")") {
				return nil, p.errorf("Trailing comma in argument list")
			}
			continue
		}
		break
	}
	return args, nil
}

// parseArgument parses extAttrs, optional "optional", a type, optional
// "..." variadic marker, a name, and an optional "= default".
func (p *Parser) parseArgument() (*ast.Argument, error) {
	start := p.peek().Start
	attrs, err := p.parseExtAttrBlock()
	if err != nil {
		return nil, err
	}

	optional := p.consumeKeyword("optional")

	role := "argument-type"
	var t *ast.Type
	if optional {
		t, err = p.parseTypeWithExtendedAttributes(role)
	} else {
		t, err = p.parseType(role)
	}
	if err != nil {
		return nil, err
	}

	variadic := false
	if !optional {
		variadic = p.tryConsumeVariadic()
	}

	name, ok := p.readIdentifierName()
	if !ok {
		return nil, p.errorf("No argument name found")
	}

	arg := &ast.Argument{
		Base:     ast.Base{Start: start, Stop: p.peek().Start},
		ExtAttrs: attrs,
		Name:     name,
		IDLType:  t,
		Optional: optional,
		Variadic: variadic,
	}

	if optional {
		if _, ok := p.consume(lexer.Other, "="); ok {
			def, err := p.parseDefaultValue()
			if err != nil {
				return nil, err
			}
			arg.Default = def
		}
	}

	arg.Stop = p.peek().Start
	return arg, nil
}

// tryConsumeVariadic matches three consecutive "." other-lexemes
// (spec.md §4.2.4's 3-token lookahead for "..."), rolling back if fewer
// than three are found.
func (p *Parser) tryConsumeVariadic() bool {
	m := p.save()
	for i := 0; i < 3; i++ {
		if _, ok := p.consume(lexer.Other, "."); !ok {
			p.restore(m)
			return false
		}
	}
	return true
}
