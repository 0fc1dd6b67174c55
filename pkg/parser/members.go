package parser

import (
	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/lexer"
)

// Container kinds accepted by parseMembers, controlling which member
// productions are legal inside the body (spec.md §4.2.3).
const (
	containerInterface = "interface"
	containerMixin     = "interface mixin"
	containerNamespace = "namespace"
)

// parseMembers parses interface/mixin/namespace body members up to (but
// not including) the closing "}".
func (p *Parser) parseMembers(containerKind string) ([]ast.Member, error) {
	var members []ast.Member
	for {
		mk := p.save()
		leading := p.takeMemberTrivia()
		if p.at(lexer.Other, "}") || p.at(lexer.EOF, "") {
			p.restore(mk)
			break
		}
		m, err := p.parseMember(containerKind, leading)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func (p *Parser) parseMember(containerKind, leading string) (ast.Member, error) {
	start := p.peek().Start
	attrs, err := p.parseExtAttrBlock()
	if err != nil {
		return nil, err
	}

	if containerKind == containerInterface {
		if p.atKeyword("const") {
			return p.parseConst(start, attrs, leading)
		}
		if p.opts.AllowNestedTypedefs && p.atKeyword("typedef") {
			def, err := p.parseTypedef(start, attrs)
			if err != nil {
				return nil, err
			}
			td := def.(*ast.Typedef)
			td.Leading = leading
			return td, nil
		}
		if p.atKeyword("static") {
			return p.parseStaticMember(start, attrs, leading)
		}
		if p.atKeyword("stringifier") {
			return p.parseStringifierMember(start, attrs, leading, containerKind)
		}
		if m, ok, err := p.tryParseIterableFamily(start, attrs, leading); err != nil {
			return nil, err
		} else if ok {
			return m, nil
		}
	}

	if containerKind == containerMixin {
		if p.atKeyword("const") {
			return p.parseConst(start, attrs, leading)
		}
		if p.atKeyword("stringifier") {
			return p.parseStringifierMember(start, attrs, leading, containerKind)
		}
	}

	if m, ok, err := p.tryParseAttribute(start, attrs, leading, containerKind, false, false); err != nil {
		return nil, err
	} else if ok {
		return m, nil
	}

	if m, ok, err := p.tryParseOperation(start, attrs, leading, false, false); err != nil {
		return nil, err
	} else if ok {
		return m, nil
	}

	return nil, p.errorf("Unknown member")
}

func (p *Parser) parseConst(start lexer.Position, attrs []*ast.ExtendedAttribute, leading string) (*ast.Const, error) {
	if !p.consumeKeyword("const") {
		return nil, p.errorf("No `const` keyword found")
	}
	t, err := p.parseType("const-type")
	if err != nil {
		return nil, err
	}
	nullable := false
	if _, ok := p.consume(lexer.Other, "?"); ok {
		nullable = true
	}
	name, ok := p.readIdentifierName()
	if !ok {
		return nil, p.errorf("No const name found")
	}
	if _, err := p.expect(lexer.Other, "=", "const"); err != nil {
		return nil, err
	}
	val, err := p.parseDefaultValue()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Other, ";", "const"); err != nil {
		return nil, err
	}
	return &ast.Const{
		Base: ast.Base{Start: start, Stop: p.peek().Start}, Name: name, IDLType: t,
		Nullable: nullable, Value: val, ExtAttrs: attrs, Leading: leading,
	}, nil
}

// parseStaticMember parses "static" followed by a non-inherited attribute
// or a regular operation, both flagged Static.
func (p *Parser) parseStaticMember(start lexer.Position, attrs []*ast.ExtendedAttribute, leading string) (ast.Member, error) {
	if !p.consumeKeyword("static") {
		return nil, p.errorf("No `static` keyword found")
	}
	if m, ok, err := p.tryParseAttribute(start, attrs, leading, containerInterface, true, false); err != nil {
		return nil, err
	} else if ok {
		return m, nil
	}
	if m, ok, err := p.tryParseOperation(start, attrs, leading, true, false); err != nil {
		return nil, err
	} else if ok {
		return m, nil
	}
	return nil, p.errorf("No attribute or operation found after `static`")
}

// parseStringifierMember parses "stringifier" alone (standalone operation
// member), or followed by a non-inherited attribute or regular operation,
// both flagged Stringifier.
func (p *Parser) parseStringifierMember(start lexer.Position, attrs []*ast.ExtendedAttribute, leading, containerKind string) (ast.Member, error) {
	if !p.consumeKeyword("stringifier") {
		return nil, p.errorf("No `stringifier` keyword found")
	}
	if _, ok := p.consume(lexer.Other, ";"); ok {
		return &ast.Operation{
			Base: ast.Base{Start: start, Stop: p.peek().Start}, IDLType: &ast.Type{Name: "DOMString", Role: "return-type"},
			Flags: ast.OperationFlags{Stringifier: true}, ExtAttrs: attrs, Leading: leading,
		}, nil
	}
	if m, ok, err := p.tryParseAttribute(start, attrs, leading, containerKind, false, true); err != nil {
		return nil, err
	} else if ok {
		return m, nil
	}
	if m, ok, err := p.tryParseOperation(start, attrs, leading, false, true); err != nil {
		return nil, err
	} else if ok {
		return m, nil
	}
	return nil, p.errorf("No attribute, operation, or `;` found after `stringifier`")
}

// tryParseAttribute matches "[inherit] [readonly] attribute TYPE name;".
// inherit is never legal together with static or stringifier.
func (p *Parser) tryParseAttribute(start lexer.Position, attrs []*ast.ExtendedAttribute, leading, containerKind string, static, stringifier bool) (*ast.Attribute, bool, error) {
	m := p.save()

	inherit := containerKind == containerInterface && p.consumeKeyword("inherit")
	readonly := p.consumeKeyword("readonly")

	if !p.consumeKeyword("attribute") {
		p.restore(m)
		return nil, false, nil
	}
	if inherit && (static || stringifier) {
		return nil, false, p.errorf("Cannot have a static or stringifier inherit")
	}

	t, err := p.parseType("attribute-type")
	if err != nil {
		return nil, false, err
	}
	if t.Generic == "sequence" || t.Generic == "record" {
		return nil, false, p.errorf("Attributes cannot accept sequence/record types")
	}

	name, ok := p.readIdentifierName()
	if !ok {
		return nil, false, p.errorf("No attribute name found")
	}
	if _, err := p.expect(lexer.Other, ";", "attribute"); err != nil {
		return nil, false, err
	}

	return &ast.Attribute{
		Base: ast.Base{Start: start, Stop: p.peek().Start}, Name: name, IDLType: t,
		Readonly: readonly, Inherit: inherit, Static: static, Stringifier: stringifier,
		ExtAttrs: attrs, Leading: leading,
	}, true, nil
}

// tryParseOperation matches "[getter|setter|deleter]* return_type name?
// (args);".
func (p *Parser) tryParseOperation(start lexer.Position, attrs []*ast.ExtendedAttribute, leading string, static, stringifier bool) (*ast.Operation, bool, error) {
	m := p.save()

	var flags ast.OperationFlags
	flags.Static, flags.Stringifier = static, stringifier
	for {
		switch {
		case !flags.Getter && p.atKeyword("getter"):
			p.pos++
			flags.Getter = true
			continue
		case !flags.Setter && p.atKeyword("setter"):
			p.pos++
			flags.Setter = true
			continue
		case !flags.Deleter && p.atKeyword("deleter"):
			p.pos++
			flags.Deleter = true
			continue
		}
		break
	}

	t, err := p.parseReturnType()
	if err != nil {
		p.restore(m)
		return nil, false, nil
	}

	name, _ := p.readIdentifierName()

	if _, ok := p.consume(lexer.Other, "("); !ok {
		p.restore(m)
		return nil, false, nil
	}
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, false, err
	}
	if _, err := p.expect(lexer.Other, ")", "operation"); err != nil {
		return nil, false, err
	}
	if _, err := p.expect(lexer.Other, ";", "operation"); err != nil {
		return nil, false, err
	}

	return &ast.Operation{
		Base: ast.Base{Start: start, Stop: p.peek().Start}, Name: name, IDLType: t,
		Arguments: args, Flags: flags, ExtAttrs: attrs, Leading: leading,
	}, true, nil
}

// tryParseIterableFamily matches [readonly] (iterable|legacyiterable|
// maplike|setlike) "<" T ("," T)? ">" ";", enforcing each kind's arity.
func (p *Parser) tryParseIterableFamily(start lexer.Position, attrs []*ast.ExtendedAttribute, leading string) (*ast.IterableLike, bool, error) {
	m := p.save()

	readonly := p.consumeKeyword("readonly")

	var kind string
	switch {
	case p.atKeyword("iterable"):
		kind = "iterable"
	case p.atKeyword("legacyiterable"):
		kind = "legacyiterable"
	case p.atKeyword("maplike"):
		kind = "maplike"
	case p.atKeyword("setlike"):
		kind = "setlike"
	default:
		p.restore(m)
		return nil, false, nil
	}
	if readonly && kind != "maplike" && kind != "setlike" {
		p.restore(m)
		return nil, false, nil
	}
	p.pos++ // the keyword itself

	if _, err := p.expect(lexer.Other, "<", kind); err != nil {
		return nil, false, err
	}
	first, err := p.parseTypeWithExtendedAttributes("")
	if err != nil {
		return nil, false, err
	}
	types := []*ast.Type{first}
	if _, ok := p.consume(lexer.Other, ","); ok {
		second, err := p.parseTypeWithExtendedAttributes("")
		if err != nil {
			return nil, false, err
		}
		types = append(types, second)
	}
	if _, err := p.expect(lexer.Other, ">", kind); err != nil {
		return nil, false, err
	}

	switch kind {
	case "maplike":
		if len(types) != 2 {
			return nil, false, p.errorf("maplike must have exactly two subtypes")
		}
	case "legacyiterable", "setlike":
		if len(types) != 1 {
			return nil, false, p.errorf("%s must have exactly one subtype", kind)
		}
	case "iterable":
		if len(types) < 1 || len(types) > 2 {
			return nil, false, p.errorf("iterable must have one or two subtypes")
		}
	}

	if _, err := p.expect(lexer.Other, ";", kind); err != nil {
		return nil, false, err
	}

	return &ast.IterableLike{
		Base: ast.Base{Start: start, Stop: p.peek().Start}, Kind: kind, IDLType: types, Readonly: readonly, Leading: leading,
	}, true, nil
}
