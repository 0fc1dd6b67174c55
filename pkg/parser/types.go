package parser

import (
	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/lexer"
)

// parseReturnType is return_type: type("return-type") or the bare keyword
// "void".
func (p *Parser) parseReturnType() (*ast.Type, error) {
	start := p.peek().Start
	if p.atKeyword("void") {
		p.pos++
		return &ast.Type{Base: ast.Base{Start: start, Stop: start}, Role: "return-type", Name: "void"}, nil
	}
	return p.parseType("return-type")
}

// parseTypeWithExtendedAttributes is type_with_extended_attributes: an
// optional leading "[...]" block attached to the resulting type.
func (p *Parser) parseTypeWithExtendedAttributes(role string) (*ast.Type, error) {
	attrs, err := p.parseExtAttrBlock()
	if err != nil {
		return nil, err
	}
	t, err := p.parseType(role)
	if err != nil {
		return nil, err
	}
	t.ExtAttrs = attrs
	return t, nil
}

// parseType is single_type | union_type, followed by a type_suffix.
func (p *Parser) parseType(role string) (*ast.Type, error) {
	start := p.peek().Start

	if p.at(lexer.Other, "(") {
		t, err := p.parseUnionType(role, start)
		if err != nil {
			return nil, err
		}
		return p.parseTypeSuffix(t)
	}

	t, err := p.parseSingleType(role, start)
	if err != nil {
		return nil, err
	}
	return p.parseTypeSuffix(t)
}

// parseTypeSuffix consumes at most one "?" nullable marker. A second one,
// or one on a nullable-any type, is fatal.
func (p *Parser) parseTypeSuffix(t *ast.Type) (*ast.Type, error) {
	if _, ok := p.consume(lexer.Other, "?"); ok {
		if t.Nullable {
			return nil, p.errorf("Can't nullable more than once")
		}
		if !t.Union && t.Name == "any" {
			return nil, p.errorf("Type any cannot be made nullable")
		}
		t.Nullable = true
		t.Stop = p.peek().Start
		if _, ok := p.consume(lexer.Other, "?"); ok {
			return nil, p.errorf("Can't nullable more than once")
		}
	}
	return t, nil
}

// parseUnionType is "(" T ( "or" T )+ ")", requiring at least two members.
func (p *Parser) parseUnionType(role string, start lexer.Position) (*ast.Type, error) {
	if _, err := p.expect(lexer.Other, "(", "union type"); err != nil {
		return nil, err
	}

	var members []*ast.Type
	first, err := p.parseTypeWithExtendedAttributes("")
	if err != nil {
		return nil, err
	}
	members = append(members, first)

	for p.consumeKeyword("or") {
		m, err := p.parseTypeWithExtendedAttributes("")
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	if len(members) < 2 {
		return nil, p.errorf("Union type must have more than one member")
	}

	if _, err := p.expect(lexer.Other, ")", "union type"); err != nil {
		return nil, err
	}

	return &ast.Type{Base: ast.Base{Start: start, Stop: p.peek().Start}, Role: role, Union: true, Inner: members}, nil
}

// parseSingleType tries the primitive-type productions first, falling
// back to an identifier (user-defined or built-in name), optionally
// followed by a generic constructor's "<...>" argument list.
func (p *Parser) parseSingleType(role string, start lexer.Position) (*ast.Type, error) {
	if t, ok := p.tryPrimitiveType(role, start); ok {
		return t, nil
	}

	name, ok := p.readIdentifierName()
	if !ok {
		return nil, p.errorf("No type found")
	}

	t := &ast.Type{Base: ast.Base{Start: start, Stop: p.peek().Start}, Role: role, Name: name}

	if _, ok := p.consume(lexer.Other, "<"); ok {
		return p.parseGenericArgs(t)
	}
	return t, nil
}

// tryPrimitiveType matches integer_type, float_type, or one of
// boolean|byte|octet.
func (p *Parser) tryPrimitiveType(role string, start lexer.Position) (*ast.Type, bool) {
	m := p.save()

	unsigned := p.consumeKeyword("unsigned")
	if p.consumeKeyword("short") {
		return p.primitive(role, start, joinWords(unsigned, "short")), true
	}
	if p.consumeKeyword("long") {
		if p.consumeKeyword("long") {
			return p.primitive(role, start, joinWords(unsigned, "long long")), true
		}
		return p.primitive(role, start, joinWords(unsigned, "long")), true
	}
	if unsigned {
		// "unsigned" with neither "short" nor "long" following isn't a
		// valid integer type; roll back so the identifier path can try
		// "unsigned" as a plain (if unusual) type name instead.
		p.restore(m)
		return nil, false
	}

	unrestricted := p.consumeKeyword("unrestricted")
	if p.consumeKeyword("float") {
		return p.primitive(role, start, joinWords(unrestricted, "float")), true
	}
	if p.consumeKeyword("double") {
		return p.primitive(role, start, joinWords(unrestricted, "double")), true
	}
	if unrestricted {
		p.restore(m)
		return nil, false
	}

	if p.consumeKeyword("boolean") {
		return p.primitive(role, start, "boolean"), true
	}
	if p.consumeKeyword("byte") {
		return p.primitive(role, start, "byte"), true
	}
	if p.consumeKeyword("octet") {
		return p.primitive(role, start, "octet"), true
	}

	p.restore(m)
	return nil, false
}

func joinWords(prefixed bool, word string) string {
	if prefixed {
		return "unsigned " + word
	}
	return word
}

func (p *Parser) primitive(role string, start lexer.Position, name string) *ast.Type {
	return &ast.Type{Base: ast.Base{Start: start, Stop: p.peek().Start}, Role: role, Name: name}
}

// parseGenericArgs parses "T1, T2, ..." up to the closing ">" and enforces
// the arity/shape constraints for sequence/record/Promise.
func (p *Parser) parseGenericArgs(t *ast.Type) (*ast.Type, error) {
	t.Generic = t.Name
	t.Name = ""

	for {
		inner, err := p.parseTypeWithExtendedAttributes("")
		if err != nil {
			return nil, err
		}
		t.Inner = append(t.Inner, inner)
		if _, ok := p.consume(lexer.Other, ","); ok {
			continue
		}
		break
	}

	if _, err := p.expect(lexer.Other, ">", t.Generic+"<...>"); err != nil {
		return nil, err
	}
	t.Stop = p.peek().Start

	switch t.Generic {
	case "sequence":
		if len(t.Inner) != 1 {
			return nil, p.errorf("A sequence must have exactly one subtype")
		}
	case "record":
		if len(t.Inner) != 2 {
			return nil, p.errorf("A record must have exactly two subtypes")
		}
		key := t.Inner[0]
		if key.Name != "DOMString" && key.Name != "USVString" && key.Name != "ByteString" {
			return nil, p.errorf("Record key must be DOMString, USVString, or ByteString")
		}
		if len(key.ExtAttrs) != 0 {
			return nil, p.errorf("Record key cannot have extended attributes")
		}
	case "Promise":
		if len(t.Inner) > 0 && len(t.Inner[0].ExtAttrs) != 0 {
			return nil, p.errorf("Promise's subtype cannot have extended attributes")
		}
	}

	return t, nil
}
