package parser

import (
	"fmt"

	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/lexer"
)

// Parse runs the top-level loop: repeatedly read a leading extended
// attribute block, dispatch to the first matching top-level production in
// the ordered set from spec.md §4.2, and append the result. Any
// unconsumed lexemes left after the loop are an error.
func (p *Parser) Parse() ([]ast.Definition, error) {
	defs := []ast.Definition{}

	for {
		p.advanceTrivia()
		if p.at(lexer.EOF, "") {
			break
		}

		start := p.peek().Start
		attrs, err := p.parseExtAttrBlock()
		if err != nil {
			return nil, err
		}

		def, err := p.parseTopLevel(start, attrs)
		if err != nil {
			return nil, err
		}
		if def == nil {
			if attrs != nil {
				return nil, p.errorf("Stray extended attributes")
			}
			return nil, p.errorf("Unrecognised tokens")
		}
		defs = append(defs, def)
	}

	return defs, nil
}

// parseTopLevel dispatches to the first matching production, in the fixed
// order spec.md §4.2 prescribes. Returns (nil, nil) if nothing matches.
func (p *Parser) parseTopLevel(start lexer.Position, attrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	switch {
	case p.atKeyword("callback"):
		return p.parseCallbackOrCallbackInterface(start, attrs)
	case p.atKeyword("interface"):
		return p.parseInterface(start, attrs, false)
	case p.atKeyword("partial"):
		return p.parsePartial(start, attrs)
	case p.atKeyword("dictionary"):
		return p.parseDictionary(start, attrs, false)
	case p.atKeyword("enum"):
		return p.parseEnum(start)
	case p.atKeyword("typedef"):
		return p.parseTypedef(start, attrs)
	}

	if def, ok, err := p.tryParseImplementsOrIncludes(start); err != nil {
		return nil, err
	} else if ok {
		return def, nil
	}

	if p.atKeyword("namespace") {
		return p.parseNamespace(start, attrs, false)
	}

	return nil, nil
}

// parseCallbackOrCallbackInterface handles both forms starting with
// "callback": a callback interface (if "interface" follows) or a
// standalone callback function type.
func (p *Parser) parseCallbackOrCallbackInterface(start lexer.Position, attrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	if !p.consumeKeyword("callback") {
		return nil, p.errorf("No `callback` keyword found")
	}
	if p.consumeKeyword("interface") {
		return p.parseInterfaceBody(start, attrs, false, "callback interface")
	}

	name, ok := p.readIdentifierName()
	if !ok {
		return nil, p.errorf("No callback name found")
	}

	var def *ast.Callback
	err := p.withCurrent(fmt.Sprintf("callback %s", name), func() error {
		if _, err := p.expect(lexer.Other, "=", "callback"); err != nil {
			return err
		}
		ret, err := p.parseReturnType()
		if err != nil {
			return err
		}
		if _, err := p.expect(lexer.Other, "(", "callback"); err != nil {
			return err
		}
		args, err := p.parseArgumentList()
		if err != nil {
			return err
		}
		if _, err := p.expect(lexer.Other, ")", "callback"); err != nil {
			return err
		}
		if _, err := p.expect(lexer.Other, ";", "callback"); err != nil {
			return err
		}
		def = &ast.Callback{Base: ast.Base{Start: start, Stop: p.peek().Start}, Name: name, IDLType: ret, Arguments: args, ExtAttrs: attrs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := p.register(name, "callback"); err != nil {
		return nil, err
	}
	return def, nil
}

// parseInterface handles a plain interface or an interface mixin; the
// "interface" keyword has already been confirmed present by the caller's
// lookahead.
func (p *Parser) parseInterface(start lexer.Position, attrs []*ast.ExtendedAttribute, partial bool) (ast.Definition, error) {
	if !p.consumeKeyword("interface") {
		return nil, p.errorf("No `interface` keyword found")
	}
	m := p.save()
	if p.consumeKeyword("mixin") {
		return p.parseInterfaceBody(start, attrs, partial, "interface mixin")
	}
	// Put back the trivia the failed "mixin" lookahead drained, so it is
	// captured as the interface's BeforeName.
	p.restore(m)
	return p.parseInterfaceBody(start, attrs, partial, "interface")
}

func (p *Parser) parseInterfaceBody(start lexer.Position, attrs []*ast.ExtendedAttribute, partial bool, kind string) (ast.Definition, error) {
	beforeName := p.takeTrivia()

	name, ok := p.readIdentifierName()
	if !ok {
		return nil, p.errorf("No name found for %s", kind)
	}

	var iface *ast.Interface
	err := p.withCurrent(describeDef(partial, kind, name), func() error {
		inheritance := ""
		if kind == "interface" {
			m := p.save()
			if _, ok := p.consume(lexer.Other, ":"); ok {
				parent, ok := p.readIdentifierName()
				if !ok {
					return p.errorf("No parent interface name found after `:`")
				}
				inheritance = parent
			} else {
				p.restore(m)
			}
		}

		beforeOpen := p.takeTrivia()
		if _, err := p.expect(lexer.Other, "{", kind); err != nil {
			return err
		}

		memberKind := containerInterface
		if kind == "interface mixin" {
			memberKind = containerMixin
		}
		members, err := p.parseMembers(memberKind)
		if err != nil {
			return err
		}

		beforeClose := p.takeTrivia()
		if _, err := p.expect(lexer.Other, "}", kind); err != nil {
			return err
		}
		beforeTermination := p.takeTrivia()
		if _, err := p.expect(lexer.Other, ";", kind); err != nil {
			return err
		}

		iface = &ast.Interface{
			Base: ast.Base{Start: start, Stop: p.peek().Start}, Kind: kind, Name: name,
			Partial: partial, Inheritance: inheritance, Members: members, ExtAttrs: attrs,
			Trivia: &ast.Trivia{BeforeName: beforeName, BeforeOpen: beforeOpen, BeforeClose: beforeClose, BeforeTermination: beforeTermination},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !partial {
		if err := p.register(name, kind); err != nil {
			return nil, err
		}
	}
	return iface, nil
}

// parsePartial dispatches "partial" to dictionary, interface, or
// namespace; the wrapped definition's name is not registered.
func (p *Parser) parsePartial(start lexer.Position, attrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	if !p.consumeKeyword("partial") {
		return nil, p.errorf("No `partial` keyword found")
	}
	switch {
	case p.atKeyword("dictionary"):
		return p.parseDictionary(start, attrs, true)
	case p.atKeyword("interface"):
		return p.parseInterface(start, attrs, true)
	case p.atKeyword("namespace"):
		return p.parseNamespace(start, attrs, true)
	}
	return nil, p.errorf("No dictionary, interface, or namespace found after `partial`")
}

func (p *Parser) parseNamespace(start lexer.Position, attrs []*ast.ExtendedAttribute, partial bool) (ast.Definition, error) {
	if !p.consumeKeyword("namespace") {
		return nil, p.errorf("No `namespace` keyword found")
	}
	beforeName := p.takeTrivia()
	name, ok := p.readIdentifierName()
	if !ok {
		return nil, p.errorf("No name found for namespace")
	}

	var ns *ast.Namespace
	err := p.withCurrent(describeDef(partial, "namespace", name), func() error {
		beforeOpen := p.takeTrivia()
		if _, err := p.expect(lexer.Other, "{", "namespace"); err != nil {
			return err
		}
		members, err := p.parseMembers(containerNamespace)
		if err != nil {
			return err
		}
		beforeClose := p.takeTrivia()
		if _, err := p.expect(lexer.Other, "}", "namespace"); err != nil {
			return err
		}
		beforeTermination := p.takeTrivia()
		if _, err := p.expect(lexer.Other, ";", "namespace"); err != nil {
			return err
		}
		ns = &ast.Namespace{
			Base: ast.Base{Start: start, Stop: p.peek().Start}, Name: name, Partial: partial,
			Members: members, ExtAttrs: attrs,
			Trivia: &ast.Trivia{BeforeName: beforeName, BeforeOpen: beforeOpen, BeforeClose: beforeClose, BeforeTermination: beforeTermination},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !partial {
		if err := p.register(name, "namespace"); err != nil {
			return nil, err
		}
	}
	return ns, nil
}

func (p *Parser) parseDictionary(start lexer.Position, attrs []*ast.ExtendedAttribute, partial bool) (ast.Definition, error) {
	if !p.consumeKeyword("dictionary") {
		return nil, p.errorf("No `dictionary` keyword found")
	}
	beforeName := p.takeTrivia()
	name, ok := p.readIdentifierName()
	if !ok {
		return nil, p.errorf("No name found for dictionary")
	}

	var dict *ast.Dictionary
	err := p.withCurrent(describeDef(partial, "dictionary", name), func() error {
		inheritance := ""
		m := p.save()
		if _, ok := p.consume(lexer.Other, ":"); ok {
			parent, ok := p.readIdentifierName()
			if !ok {
				return p.errorf("No parent dictionary name found after `:`")
			}
			inheritance = parent
		} else {
			p.restore(m)
		}

		beforeOpen := p.takeTrivia()
		if _, err := p.expect(lexer.Other, "{", "dictionary"); err != nil {
			return err
		}

		var fields []*ast.Field
		for {
			m := p.save()
			leading := p.takeMemberTrivia()
			if p.at(lexer.Other, "}") || p.at(lexer.EOF, "") {
				p.restore(m)
				break
			}
			f, err := p.parseField(leading)
			if err != nil {
				return err
			}
			fields = append(fields, f)
		}

		beforeClose := p.takeTrivia()
		if _, err := p.expect(lexer.Other, "}", "dictionary"); err != nil {
			return err
		}
		beforeTermination := p.takeTrivia()
		if _, err := p.expect(lexer.Other, ";", "dictionary"); err != nil {
			return err
		}

		dict = &ast.Dictionary{
			Base: ast.Base{Start: start, Stop: p.peek().Start}, Name: name, Partial: partial,
			Inheritance: inheritance, Members: fields, ExtAttrs: attrs,
			Trivia: &ast.Trivia{BeforeName: beforeName, BeforeOpen: beforeOpen, BeforeClose: beforeClose, BeforeTermination: beforeTermination},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !partial {
		if err := p.register(name, "dictionary"); err != nil {
			return nil, err
		}
	}
	return dict, nil
}

// parseField parses a single dictionary field: extAttrs, optional
// "required", type, name, optional "= default", ";". "required" combined
// with a default is fatal.
func (p *Parser) parseField(leading string) (*ast.Field, error) {
	start := p.peek().Start
	attrs, err := p.parseExtAttrBlock()
	if err != nil {
		return nil, err
	}

	required := p.consumeKeyword("required")

	t, err := p.parseType("dictionary-type")
	if err != nil {
		return nil, err
	}
	name, ok := p.readIdentifierName()
	if !ok {
		return nil, p.errorf("No field name found")
	}

	var def *ast.DefaultValue
	if _, ok := p.consume(lexer.Other, "="); ok {
		def, err = p.parseDefaultValue()
		if err != nil {
			return nil, err
		}
	}
	if required && def != nil {
		return nil, p.errorf("Required member must not have a default")
	}

	if _, err := p.expect(lexer.Other, ";", "dictionary field"); err != nil {
		return nil, err
	}

	return &ast.Field{
		Base: ast.Base{Start: start, Stop: p.peek().Start}, Name: name, IDLType: t,
		Required: required, Default: def, ExtAttrs: attrs, Leading: leading,
	}, nil
}

func (p *Parser) parseEnum(start lexer.Position) (ast.Definition, error) {
	if !p.consumeKeyword("enum") {
		return nil, p.errorf("No `enum` keyword found")
	}
	name, ok := p.readIdentifierName()
	if !ok {
		return nil, p.errorf("No name found for enum")
	}

	var en *ast.Enum
	err := p.withCurrent(fmt.Sprintf("enum %s", name), func() error {
		if _, err := p.expect(lexer.Other, "{", "enum"); err != nil {
			return err
		}

		var values []string
		for !p.at(lexer.Other, "}") && !p.at(lexer.EOF, "") {
			lx, ok := p.consume(lexer.String, "")
			if !ok {
				return p.errorf("No string literal found in enum body")
			}
			values = append(values, unquote(lx.Text))
			if _, ok := p.consume(lexer.Other, ","); ok {
				continue
			}
			break
		}

		if _, err := p.expect(lexer.Other, "}", "enum"); err != nil {
			return err
		}
		if _, err := p.expect(lexer.Other, ";", "enum"); err != nil {
			return err
		}

		en = &ast.Enum{Base: ast.Base{Start: start, Stop: p.peek().Start}, Name: name, Values: values}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := p.register(name, "enum"); err != nil {
		return nil, err
	}
	return en, nil
}

func (p *Parser) parseTypedef(start lexer.Position, attrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	if !p.consumeKeyword("typedef") {
		return nil, p.errorf("No `typedef` keyword found")
	}

	var td *ast.Typedef
	err := p.withCurrent("typedef", func() error {
		t, err := p.parseTypeWithExtendedAttributes("typedef-type")
		if err != nil {
			return err
		}
		name, ok := p.readIdentifierName()
		if !ok {
			return p.errorf("No name found for typedef")
		}
		if _, err := p.expect(lexer.Other, ";", "typedef"); err != nil {
			return err
		}
		td = &ast.Typedef{Base: ast.Base{Start: start, Stop: p.peek().Start}, Name: name, IDLType: t, ExtAttrs: attrs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := p.register(td.Name, "typedef"); err != nil {
		return nil, err
	}
	return td, nil
}

// tryParseImplementsOrIncludes speculatively parses "A implements B;" or
// "A includes B;", rolling back cleanly to let a bare identifier be
// reconsidered elsewhere if neither keyword follows.
func (p *Parser) tryParseImplementsOrIncludes(start lexer.Position) (ast.Definition, bool, error) {
	m := p.save()

	target, ok := p.readIdentifierName()
	if !ok {
		return nil, false, nil
	}

	var keyword string
	switch {
	case p.atKeyword("implements"):
		keyword = "implements"
	case p.atKeyword("includes"):
		keyword = "includes"
	default:
		p.restore(m)
		return nil, false, nil
	}
	p.pos++

	name, ok := p.readIdentifierName()
	if !ok {
		return nil, false, p.errorf("No name found after `%s`", keyword)
	}
	if _, err := p.expect(lexer.Other, ";", keyword); err != nil {
		return nil, false, err
	}

	base := ast.Base{Start: start, Stop: p.peek().Start}
	if keyword == "implements" {
		return &ast.Implements{Base: base, Target: target, Implements: name}, true, nil
	}
	return &ast.Includes{Base: base, Target: target, Includes: name}, true, nil
}

func describeDef(partial bool, kind, name string) string {
	if partial {
		return fmt.Sprintf("partial %s %s", kind, name)
	}
	return fmt.Sprintf("%s %s", kind, name)
}
