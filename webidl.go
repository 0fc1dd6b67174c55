// Package webidl is the public entry point: it turns Web IDL source text
// into an AST, or a parser.ParseError describing the first failure.
// pkg/lexer and pkg/parser hold all of the engineering weight; this
// package is a thin, stable-surface adapter over them.
package webidl

import (
	"github.com/perbu/webidlparse/pkg/ast"
	"github.com/perbu/webidlparse/pkg/lexer"
	"github.com/perbu/webidlparse/pkg/parser"
)

// Option configures a Parse call.
type Option func(*parser.Options)

// WithTrivia enables whitespace/comment trivia capture on container nodes
// and member Leading fields.
func WithTrivia() Option {
	return func(o *parser.Options) { o.Trivia = true }
}

// WithNestedTypedefs permits a typedef member inside an interface body.
func WithNestedTypedefs() Option {
	return func(o *parser.Options) { o.AllowNestedTypedefs = true }
}

// Parse tokenises and parses source, returning the top-level definitions
// in source order. On any grammar or semantic violation it returns a
// *parser.ParseError describing the first failure; parsing never
// recovers or accumulates further errors past that point.
func Parse(source string, opts ...Option) ([]ast.Definition, error) {
	var o parser.Options
	for _, apply := range opts {
		apply(&o)
	}

	toks, err := lexer.New(source).TokenizeAll()
	if err != nil {
		return nil, err
	}

	return parser.Parse(toks, o)
}
