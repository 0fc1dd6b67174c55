package lexer

import "fmt"

// Kind identifies the coarse category of a lexeme.
type Kind int

const (
	Float Kind = iota
	Integer
	Identifier
	String
	Whitespace
	Comment
	Other
	EOF
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Integer:
		return "integer"
	case Identifier:
		return "identifier"
	case String:
		return "string"
	case Whitespace:
		return "whitespace"
	case Comment:
		return "comment"
	case Other:
		return "other"
	case EOF:
		return "eof"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Refined tags finer-grained trivia produced when re-lexing a whitespace
// or comment lexeme for round-trip formatting (see Lexeme.Refined).
const (
	RefinedWS               = "ws"
	RefinedLineComment      = "line-comment"
	RefinedMultilineComment = "multiline-comment"
	// PostExtendedAttrSuffix marks trivia collected just before a member
	// or dictionary field, so downstream consumers can distinguish it from
	// trivia collected elsewhere (the "-pea" suffix from spec.md §4.2.8).
	PostExtendedAttrSuffix = "-pea"
)

// Position locates a lexeme in the source: 1-indexed line/column, 0-indexed
// byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Lexeme is a single classified run of the source text. Kind together
// with Text fully determines the lexeme; Refined is only set by the
// parser's trivia machinery when it re-lexes whitespace/comment runs
// (see pkg/parser/trivia.go) and is empty otherwise.
type Lexeme struct {
	Kind     Kind
	Text     string
	Refined  string
	Start    Position
	End      Position
}

func (l Lexeme) String() string {
	return fmt.Sprintf("%s(%q)", l.Kind, l.Text)
}
