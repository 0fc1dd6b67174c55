// Package parser implements a hand-written recursive-descent parser that
// consumes lexemes from pkg/lexer into the AST defined in pkg/ast. A
// Parser owns all of its state — the unconsumed token queue, a running
// line counter, a per-call name registry, and the "current definition"
// context used to prefix error messages — as instance fields scoped to a
// single Parse call; nothing is shared across calls.
package parser

import (
	"strings"

	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/lexer"
)

// Parser turns a lexeme sequence into an ordered list of top-level
// definitions, or the first ParseError encountered. Not safe for
// concurrent use; each Parse call should use its own Parser.
type Parser struct {
	toks []lexer.Lexeme
	pos  int
	line int

	opts  Options
	names map[string]string // name -> kind-label, for uniqueness checks
	current string          // description of the definition currently open, for errors
}

// New creates a parser over an already-tokenised lexeme sequence.
// Callers typically obtain toks from lexer.New(source).TokenizeAll().
func New(toks []lexer.Lexeme, opts Options) *Parser {
	return &Parser{toks: toks, line: 1, opts: opts, names: map[string]string{}}
}

// Parse runs the parser to completion and returns the top-level
// definitions, or the first ParseError hit along the way.
func Parse(toks []lexer.Lexeme, opts Options) ([]ast.Definition, error) {
	return New(toks, opts).Parse()
}

// mark is a restore point for backtracking: the token cursor and the line
// counter travel together so a rolled-back speculative production leaves
// no trace in either.
type mark struct {
	pos  int
	line int
}

func (p *Parser) save() mark           { return mark{p.pos, p.line} }
func (p *Parser) restore(m mark)       { p.pos, p.line = m.pos, m.line }

// advanceTrivia drains any whitespace/comment lexemes sitting at the
// cursor, advancing the line counter by the newlines they contain, and
// returns their concatenated raw text. Line numbers only move forward
// here — a run of dense, non-trivia tokens reports the line of the last
// whitespace boundary seen, not the token's own position.
func (p *Parser) advanceTrivia() string {
	var sb strings.Builder
	for p.pos < len(p.toks) {
		k := p.toks[p.pos].Kind
		if k != lexer.Whitespace && k != lexer.Comment {
			break
		}
		text := p.toks[p.pos].Text
		sb.WriteString(text)
		p.line += strings.Count(text, "\n")
		p.pos++
	}
	return sb.String()
}

// takeTrivia drains pending trivia and, only when trivia capture is
// enabled, returns its text (re-lexed into sub-lexemes via trivia.go and
// rejoined, so the AST shape is a pure function of the option). With
// capture disabled it still drains the tokens — advancing the cursor and
// line counter — but returns "", so the AST shape never depends on the
// option (spec.md §4.2.8).
func (p *Parser) takeTrivia() string {
	raw := p.advanceTrivia()
	if !p.opts.Trivia {
		return ""
	}
	return joinRefined(refineTrivia(raw, ""))
}

// takeMemberTrivia is takeTrivia for trivia collected immediately before a
// member or dictionary field (the "-pea" / post-extended-attribute suffix).
func (p *Parser) takeMemberTrivia() string {
	raw := p.advanceTrivia()
	if !p.opts.Trivia {
		return ""
	}
	return joinRefined(refineTrivia(raw, lexer.PostExtendedAttrSuffix))
}

func joinRefined(lexemes []lexer.Lexeme) string {
	var sb strings.Builder
	for _, l := range lexemes {
		sb.WriteString(l.Text)
	}
	return sb.String()
}

// peek returns the next significant lexeme without consuming it, draining
// any leading trivia first.
func (p *Parser) peek() lexer.Lexeme {
	p.advanceTrivia()
	if p.pos >= len(p.toks) {
		return lexer.Lexeme{Kind: lexer.EOF}
	}
	return p.toks[p.pos]
}

// at reports whether the next significant lexeme has the given kind and
// (if text != "") the given literal text.
func (p *Parser) at(kind lexer.Kind, text string) bool {
	lx := p.peek()
	return lx.Kind == kind && (text == "" || lx.Text == text)
}

// atKeyword reports whether the next significant lexeme is the identifier
// kw, matched against its raw, unescaped text so "_interface" never
// matches keyword "interface".
func (p *Parser) atKeyword(kw string) bool {
	return p.at(lexer.Identifier, kw)
}

// consume pops and returns the next significant lexeme if it matches kind
// and (when non-empty) text; otherwise it returns the zero Lexeme and
// false without advancing.
func (p *Parser) consume(kind lexer.Kind, text string) (lexer.Lexeme, bool) {
	if !p.at(kind, text) {
		return lexer.Lexeme{}, false
	}
	lx := p.toks[p.pos]
	p.pos++
	return lx, true
}

// consumeKeyword is consume for a specific identifier keyword.
func (p *Parser) consumeKeyword(kw string) bool {
	_, ok := p.consume(lexer.Identifier, kw)
	return ok
}

// expect consumes kind/text or raises a ParseError.
func (p *Parser) expect(kind lexer.Kind, text, context string) (lexer.Lexeme, error) {
	lx, ok := p.consume(kind, text)
	if !ok {
		return lexer.Lexeme{}, p.errorf("No %s for %s", describe(kind, text), context)
	}
	return lx, nil
}

func describe(kind lexer.Kind, text string) string {
	if text != "" {
		return "`" + text + "`"
	}
	return kind.String()
}

// readIdentifierName consumes an identifier and strips one leading
// underscore escape, so "_interface" yields the name "interface".
func (p *Parser) readIdentifierName() (string, bool) {
	lx, ok := p.consume(lexer.Identifier, "")
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(lx.Text, "_"), true
}

// register records name under kind in the per-parse name registry,
// failing if name is already taken by a different (or the same) kind.
func (p *Parser) register(name, kind string) error {
	if existing, ok := p.names[name]; ok {
		return p.errorf(`The name "%s" of type "%s" is already seen`, name, existing)
	}
	p.names[name] = kind
	return nil
}

// withCurrent sets the "current definition" error-message context for
// the duration of fn, restoring the previous context afterwards — mirrors
// how a single open container is named in spec.md §7's error examples.
func (p *Parser) withCurrent(desc string, fn func() error) error {
	prev := p.current
	p.current = desc
	err := fn()
	p.current = prev
	return err
}
