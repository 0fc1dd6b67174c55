package parser

import (
	"fmt"

	"github.com/perbu/webidlparse/pkg/lexer"
)

// ParseError is the single error type the parser raises. The first error
// encountered aborts the parse; there is no recovery or accumulation.
type ParseError struct {
	Message string
	Line    int
	Input   string         // up to five unconsumed lexeme texts, concatenated
	Tokens  []lexer.Lexeme // the same five lexeme records
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// errorf builds a ParseError at the parser's current position, prefixing
// the raw cause with the kind and name of the definition currently being
// parsed, matching spec.md §7's message contract, e.g.:
//
//	Got an error during or right after parsing `partial interface Foo`: Missing semicolon after interface
func (p *Parser) errorf(format string, args ...any) error {
	cause := fmt.Sprintf(format, args...)
	msg := cause
	if p.current != "" {
		msg = fmt.Sprintf("Got an error during or right after parsing `%s`: %s", p.current, cause)
	}

	var tokens []lexer.Lexeme
	for i := p.pos; i < len(p.toks) && len(tokens) < 5; i++ {
		tokens = append(tokens, p.toks[i])
	}
	input := ""
	for _, t := range tokens {
		input += t.Text
	}

	return &ParseError{Message: msg, Line: p.line, Input: input, Tokens: tokens}
}
